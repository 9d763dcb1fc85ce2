package config

const (
	// MaxTeamURLLength is the maximum length of a team URL slug.
	// Slugs appear in every team-scoped path, so they stay short.
	MaxTeamURLLength = 30

	// MinDirectLinkTokenLength and MaxDirectLinkTokenLength bound the
	// accepted direct-link token size. Tokens outside the range are
	// treated as not found without touching the database.
	MinDirectLinkTokenLength = 8
	MaxDirectLinkTokenLength = 64

	// MaxEmailLength matches the users.email column.
	MaxEmailLength = 254

	// MaxTitleLength is the maximum length for document and template titles.
	MaxTitleLength = 255
)
