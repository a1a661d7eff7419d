// Package domain holds the chart catalog types shared by repo, service, and transport
package domain

import "time"

// Status is the visibility state of a chart
type Status string

// Visibility states; only PUBLIC charts appear in default discovery queries
const (
	StatusPublic   Status = "PUBLIC"
	StatusPrivate  Status = "PRIVATE"
	StatusUnlisted Status = "UNLISTED"
)

// Valid reports whether s is one of the enumerated states
func (s Status) Valid() bool {
	switch s {
	case StatusPublic, StatusPrivate, StatusUnlisted:
		return true
	}
	return false
}

// Chart is the full catalog row for one chart
type Chart struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Artists     string     `json:"artists"`
	Description *string    `json:"description"`
	Tags        []string   `json:"tags"`
	Author      string     `json:"author"`
	AuthorFull  string     `json:"author_full"`
	Handle      int64      `json:"author_handle"`
	Designer    string     `json:"chart_design"`
	StaffPick   bool       `json:"staff_pick"`
	Status      Status     `json:"status"`
	Rating      int        `json:"rating"`
	LikeCount   int        `json:"like_count"`
	Comments    int        `json:"comment_count"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ScheduledAt *time.Time `json:"scheduled_publish"`

	Files FileSet `json:"files"`

	// Liked is only populated when the query ran with a viewer identity
	Liked *bool `json:"liked,omitempty"`
}

// FileSet carries the content-addressed hashes for a chart's assets
type FileSet struct {
	Jacket       string  `json:"jacket_hash"`
	Music        string  `json:"music_hash"`
	Chart        string  `json:"chart_hash"`
	Preview      *string `json:"preview_hash"`
	Background   *string `json:"background_hash"`
	BackgroundV1 string  `json:"background_v1_hash"`
	BackgroundV3 string  `json:"background_v3_hash"`
}

// Draft is the input for creating a chart; status is always PRIVATE at insert
type Draft struct {
	// ID is generated and Author is taken from the session when absent
	ID          string   `json:"id"`
	Author      string   `json:"author"`
	Rating      int      `json:"rating"`
	Description *string  `json:"description"`
	Designer    string   `json:"chart_design" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Artists     string   `json:"artists" validate:"required"`
	Tags        []string `json:"tags"`
	Files       FileSet  `json:"files"`
}

// MetadataPatch is a present-optional SET list for chart metadata.
// ClearDescription forces description to NULL when Description is absent
type MetadataPatch struct {
	Rating           *int      `json:"rating"`
	Designer         *string   `json:"chart_design"`
	Description      *string   `json:"description"`
	Title            *string   `json:"title"`
	Artists          *string   `json:"artists"`
	Tags             *[]string `json:"tags"`
	ClearDescription bool      `json:"clear_description"`
}

// Empty reports whether the patch would produce no SET fields
func (p MetadataPatch) Empty() bool {
	return p.Rating == nil && p.Designer == nil && p.Description == nil &&
		p.Title == nil && p.Artists == nil && p.Tags == nil && !p.ClearDescription
}

// FilePatch is a present-optional SET list for asset hashes.
// A jacket change must carry regenerated v1 and v3 background hashes
type FilePatch struct {
	Jacket          *string `json:"jacket_hash"`
	BackgroundV1    *string `json:"background_v1_hash"`
	BackgroundV3    *string `json:"background_v3_hash"`
	Music           *string `json:"music_hash"`
	Chart           *string `json:"chart_hash"`
	Preview         *string `json:"preview_hash"`
	Background      *string `json:"background_hash"`
	ClearPreview    bool    `json:"clear_preview"`
	ClearBackground bool    `json:"clear_background"`
	Confirm         bool    `json:"confirm"`
}

// Empty reports whether the patch would produce no SET fields
func (p FilePatch) Empty() bool {
	return p.Jacket == nil && p.BackgroundV1 == nil && p.BackgroundV3 == nil &&
		p.Music == nil && p.Chart == nil && p.Preview == nil && p.Background == nil &&
		!p.ClearPreview && !p.ClearBackground
}

// StatusResult is an updated chart plus whether this update was its first publish
type StatusResult struct {
	Chart
	FirstPublish bool `json:"is_first_publish"`
}

// ScheduleResult is an updated chart plus whether the schedule actually changed
type ScheduleResult struct {
	Chart
	Changed bool `json:"schedule_changed"`
}

// LikeTrendPoint is one day of the 7-day cumulative like series
type LikeTrendPoint struct {
	Day   time.Time `json:"day"`
	Likes int64     `json:"total_likes"`
}
