package domain

import "strings"

// FilterSpec is the caller-supplied set of optional discovery filters.
// Absent fields impose no predicate. OwnedBy takes precedence over HandleIs
type FilterSpec struct {
	Status    *Status  `json:"status"`
	MinRating *int     `json:"min_rating"`
	MaxRating *int     `json:"max_rating"`
	Tags      []string `json:"tags"`

	MinLikes    *int `json:"min_likes"`
	MaxLikes    *int `json:"max_likes"`
	MinComments *int `json:"min_comments"`
	MaxComments *int `json:"max_comments"`

	LikedBy     string `json:"liked_by"`
	CommentedBy string `json:"commented_by"`
	StaffPick   *bool  `json:"staff_pick"`

	TitleIncludes       string `json:"title_includes"`
	DescriptionIncludes string `json:"description_includes"`
	ArtistsIncludes     string `json:"artists_includes"`
	AuthorIncludes      string `json:"author_includes"`
	MetaIncludes        string `json:"meta_includes"`

	OwnedBy  string `json:"owned_by"`
	HandleIs *int64 `json:"handle_is"`
}

// DefaultStatus is applied when the caller leaves Status unset
const DefaultStatus = StatusPublic

// Substring lowercases s and wraps it in wildcard markers for a LIKE bind
// against a LOWER(column) site. strings.ToLower applies the same simple
// Unicode mapping Postgres LOWER does, so the two sides agree rune for rune.
// The value is always bound as a parameter, never spliced into query text
func Substring(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
