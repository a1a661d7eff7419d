package repo

import (
	"fmt"
	"strings"

	"chartbox/internal/services/charts/domain"
)

// listQuery is the compiled pair for one discovery request.
// Count and Page share the identical inner relation; Page appends only
// the ordering and the two trailing pagination parameters
type listQuery struct {
	CountSQL  string
	CountArgs []any
	PageSQL   string
	PageArgs  []any
	HasLiked  bool
}

// chartColumns is the projection shared by every chart-returning query
const chartColumns = `
		c.id,
		c.title,
		c.artists,
		c.description,
		c.tags,
		c.author,
		c.staff_pick,
		c.jacket_hash,
		c.music_hash,
		c.chart_hash,
		c.preview_hash,
		c.background_hash,
		c.background_v3_hash,
		c.background_v1_hash,
		c.status,
		c.rating,
		c.like_count,
		c.comment_count,
		c.created_at,
		c.published_at,
		c.updated_at,
		c.designer || '#' || a.handle AS author_full,
		a.handle AS author_handle,
		c.designer,
		c.scheduled_at`

// decayingScoreSQL mirrors domain.DecayingScore as a pure expression over
// stored columns so the ranking never depends on hidden state
var decayingScoreSQL = fmt.Sprintf(`(
		(like_count * %d + comment_count * %d + (CASE WHEN staff_pick THEN %d ELSE 0 END))
		/
		POWER((EXTRACT(EPOCH FROM (NOW() - COALESCE(published_at, created_at))) / 3600) + 2, %v)
	)`, domain.WeightLike, domain.WeightComment, domain.WeightStaff, domain.Gravity)

// rankColumn maps a normalized ranking to its ORDER BY expression
func rankColumn(by domain.Ranking) string {
	switch by {
	case domain.RankPublished:
		return "published_at"
	case domain.RankRating:
		return "rating"
	case domain.RankLikes:
		return "like_count"
	case domain.RankComments:
		return "comment_count"
	case domain.RankDecaying:
		return decayingScoreSQL
	case domain.RankAlpha:
		return "title"
	case domain.RankRandom:
		return "RANDOM()"
	default:
		return "created_at"
	}
}

// compileList turns a FilterSpec into the count/page query pair.
// Every user-controlled value is appended to args via the arg closure and
// referenced by placeholder; fragment order is fixed by the field order
// below, so compiling the same spec twice yields identical text and params
func compileList(f domain.FilterSpec, r domain.RankingSpec, p domain.Pagination, viewer string) listQuery {
	var sb strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	sb.WriteString("SELECT ")
	sb.WriteString(chartColumns)

	if viewer != "" {
		sb.WriteString(",\n\t\tCASE WHEN cl.account_id IS NULL THEN FALSE ELSE TRUE END AS liked")
	}

	sb.WriteString(`
	FROM charts c
	JOIN accounts a ON c.author = a.id`)

	if f.LikedBy != "" {
		sb.WriteString("\n\tJOIN chart_likes clb ON c.id = clb.chart_id")
	}

	var conds []string

	if viewer != "" {
		sb.WriteString("\n\tLEFT JOIN chart_likes cl ON c.id = cl.chart_id AND cl.account_id = " + arg(viewer))
	}

	status := domain.DefaultStatus
	if f.Status != nil {
		status = *f.Status
	}
	conds = append(conds, "c.status = "+arg(string(status))+"::chart_status")

	if f.StaffPick != nil {
		conds = append(conds, "c.staff_pick = "+arg(*f.StaffPick)+"::BOOL")
	}

	// rating bounds are strict comparisons against bound-1/bound+1 to
	// emulate inclusive integer-rounded bounds
	if f.MinRating != nil {
		conds = append(conds, "c.rating > "+arg(*f.MinRating-1))
	}
	if f.MaxRating != nil {
		conds = append(conds, "c.rating < "+arg(*f.MaxRating+1))
	}

	if len(f.Tags) > 0 {
		conds = append(conds, "c.tags @> "+arg(f.Tags)+"::text[]")
	}

	if f.MinLikes != nil {
		conds = append(conds, "c.like_count >= "+arg(*f.MinLikes))
	}
	if f.MaxLikes != nil {
		conds = append(conds, "c.like_count <= "+arg(*f.MaxLikes))
	}
	if f.MinComments != nil {
		conds = append(conds, "c.comment_count >= "+arg(*f.MinComments))
	}
	if f.MaxComments != nil {
		conds = append(conds, "c.comment_count <= "+arg(*f.MaxComments))
	}

	if f.LikedBy != "" {
		conds = append(conds, "clb.account_id = "+arg(f.LikedBy))
	}
	if f.CommentedBy != "" {
		sb.WriteString(`
	JOIN (
		SELECT DISTINCT chart_id
		FROM comments
		WHERE commenter = ` + arg(f.CommentedBy) + `
	) cmt ON c.id = cmt.chart_id`)
	}

	// an explicit owner id suppresses the handle filter
	if f.OwnedBy != "" {
		conds = append(conds, "c.author = "+arg(f.OwnedBy))
	} else if f.HandleIs != nil {
		conds = append(conds, "a.handle = "+arg(*f.HandleIs))
	}

	if f.TitleIncludes != "" {
		conds = append(conds, "LOWER(c.title) LIKE "+arg(domain.Substring(f.TitleIncludes)))
	}
	if f.DescriptionIncludes != "" {
		conds = append(conds, "LOWER(c.description) LIKE "+arg(domain.Substring(f.DescriptionIncludes)))
	}
	if f.ArtistsIncludes != "" {
		conds = append(conds, "LOWER(c.artists) LIKE "+arg(domain.Substring(f.ArtistsIncludes)))
	}
	if f.AuthorIncludes != "" {
		conds = append(conds, "LOWER(c.designer || '#' || a.handle) LIKE "+arg(domain.Substring(f.AuthorIncludes)))
	}
	if f.MetaIncludes != "" {
		// one bound parameter reused across four predicate sites
		ph := arg(domain.Substring(f.MetaIncludes))
		conds = append(conds,
			"(LOWER(c.title) LIKE "+ph+
				" OR LOWER(c.description) LIKE "+ph+
				" OR LOWER(c.designer || '#' || a.handle) LIKE "+ph+
				" OR LOWER(c.artists) LIKE "+ph+")")
	}

	rr := r.Normalize()

	// published_at ordering only makes sense over rows that have one; the
	// guard joins the shared predicate set so count and page stay in step
	if rr.By == domain.RankPublished {
		conds = append(conds, "c.published_at IS NOT NULL")
	}

	if len(conds) > 0 {
		sb.WriteString("\n\tWHERE " + strings.Join(conds, " AND "))
	}

	inner := sb.String()

	col := rankColumn(rr.By)
	dir := "DESC"
	if rr.Order == domain.Asc {
		dir = "ASC"
	}

	countSQL := fmt.Sprintf(`
	WITH chart_data AS (
		%s
	)
	SELECT COUNT(*) AS total_count FROM chart_data`, inner)

	countArgs := append([]any(nil), args...)

	pageSQL := fmt.Sprintf(`
	WITH chart_data AS (
		%s
	)
	SELECT *
	FROM chart_data
	ORDER BY %s %s, id
	LIMIT $%d OFFSET $%d`, inner, col, dir, len(args)+1, len(args)+2)

	pageArgs := append(append([]any(nil), args...), p.Size, p.Offset())

	return listQuery{
		CountSQL:  countSQL,
		CountArgs: countArgs,
		PageSQL:   pageSQL,
		PageArgs:  pageArgs,
		HasLiked:  viewer != "",
	}
}
