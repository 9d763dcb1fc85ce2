// Package access decides whether a requester may view a document or
// template, and with what scope.
//
// Two entry points exist:
//
//   - ResolveDocumentAccess covers the authenticated document and template
//     pages. Team-owned resources require the requester to act inside the
//     owning team. The owner and any recipient (matched by email) are always
//     granted; everyone else is checked against the visibility table.
//
//   - ResolveDirectLinkAccess covers the public direct-link flow for
//     templates. Team membership is irrelevant there: only the link's
//     enabled flag and the access-auth requirement apply, and the grant is
//     restricted to the designated recipient and that recipient's fields.
//
// Resolution is a pure function of its inputs. Callers fetch the resource
// and the requester's team context beforehand. Ordinary denials are
// returned as Decision values; the only error a Resolver returns is a
// failure to decrypt a resource password, which includes a missing
// encryption key (domain.ErrConfiguration).
//
// The visibility table is an explicit map keyed by (visibility, role) so
// that every granted pairing is listed in one place. Any pairing absent
// from the map is denied.
package access
