package domain

import "math"

// Ranking names one of the closed set of orderings
type Ranking string

// Supported rankings; anything else falls back to RankCreated
const (
	RankCreated   Ranking = "created_at"
	RankPublished Ranking = "published_at"
	RankRating    Ranking = "rating"
	RankLikes     Ranking = "likes"
	RankComments  Ranking = "comments"
	RankDecaying  Ranking = "decaying_likes"
	RankAlpha     Ranking = "abc"
	RankRandom    Ranking = "random"
)

// Direction orders ascending or descending; default is descending
type Direction string

// Sort directions
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// RankingSpec pairs a ranking with a direction
type RankingSpec struct {
	By    Ranking   `json:"sort_by"`
	Order Direction `json:"sort_order"`
}

// Normalize maps unknown rankings to RankCreated and unknown directions to Desc
func (r RankingSpec) Normalize() RankingSpec {
	switch r.By {
	case RankCreated, RankPublished, RankRating, RankLikes, RankComments, RankDecaying, RankAlpha, RankRandom:
	default:
		r.By = RankCreated
	}
	if r.Order != Asc {
		r.Order = Desc
	}
	return r
}

// Decay weights; the score is a Hacker-News style decaying rank.
// The +2 hour floor avoids blow-up for items published this instant
const (
	WeightLike    = 3
	WeightComment = 4
	WeightStaff   = 30
	Gravity       = 0.35
)

// DecayingScore is the reference implementation of the popularity score.
// The repo layer expresses the identical formula in SQL over stored columns
func DecayingScore(likes, comments int, staffPick bool, ageHours float64) float64 {
	raw := float64(likes*WeightLike + comments*WeightComment)
	if staffPick {
		raw += WeightStaff
	}
	return raw / math.Pow(ageHours+2, Gravity)
}

// Pagination is a zero-based page plus page size; offset = page * size
type Pagination struct {
	Page int `json:"page" validate:"gte=0"`
	Size int `json:"page_size" validate:"gte=0"`
}

// Offset computes the row offset for the page query
func (p Pagination) Offset() int { return p.Page * p.Size }
