package signing

import "net/url"

// DocumentsPath is the documents listing for a team, or the personal
// listing when teamURL is empty.
func DocumentsPath(teamURL string) string {
	if teamURL == "" {
		return "/documents"
	}
	return "/t/" + url.PathEscape(teamURL) + "/documents"
}

// TemplatesPath is the templates listing for a team, or the personal
// listing when teamURL is empty.
func TemplatesPath(teamURL string) string {
	if teamURL == "" {
		return "/templates"
	}
	return "/t/" + url.PathEscape(teamURL) + "/templates"
}

// EmbedDirectPath is where an embedded direct-link signer returns after
// authenticating.
func EmbedDirectPath(token string) string {
	return "/embed/direct/" + token
}

// DirectLinkSharePath is the public share path of a direct template link.
func DirectLinkSharePath(token string) string {
	return "/d/" + token
}
