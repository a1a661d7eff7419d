package repo

import (
	"reflect"
	"strings"
	"testing"

	"chartbox/internal/services/charts/domain"
)

func intp(v int) *int                        { return &v }
func boolp(v bool) *bool                     { return &v }
func i64p(v int64) *int64                    { return &v }
func statusp(s domain.Status) *domain.Status { return &s }

func TestCompileList_Deterministic(t *testing.T) {
	f := domain.FilterSpec{
		Status:        statusp(domain.StatusUnlisted),
		MinRating:     intp(5),
		MaxRating:     intp(30),
		Tags:          []string{"vocaloid", "remix"},
		MinLikes:      intp(1),
		LikedBy:       "acct-a",
		CommentedBy:   "acct-b",
		StaffPick:     boolp(true),
		TitleIncludes: "Night",
		MetaIncludes:  "Snow",
		OwnedBy:       "acct-c",
		HandleIs:      i64p(1234),
	}
	r := domain.RankingSpec{By: domain.RankDecaying, Order: domain.Desc}
	p := domain.Pagination{Page: 3, Size: 20}

	a := compileList(f, r, p, "viewer-1")
	b := compileList(f, r, p, "viewer-1")

	if a.CountSQL != b.CountSQL || a.PageSQL != b.PageSQL {
		t.Fatal("compiling the same spec twice produced different query text")
	}
	if !reflect.DeepEqual(a.CountArgs, b.CountArgs) || !reflect.DeepEqual(a.PageArgs, b.PageArgs) {
		t.Fatal("compiling the same spec twice produced different params")
	}
}

func TestCompileList_CountAndPageSharePredicates(t *testing.T) {
	f := domain.FilterSpec{
		MinRating:       intp(10),
		Tags:            []string{"touhou"},
		ArtistsIncludes: "ZUN",
	}
	q := compileList(f, domain.RankingSpec{}, domain.Pagination{Page: 1, Size: 10}, "")

	// the shared inner relation of the count query must appear byte for
	// byte inside the page query
	inner := extractInner(t, q.CountSQL)
	if !strings.Contains(q.PageSQL, inner) {
		t.Fatalf("page query does not embed the count query's inner relation\ninner:\n%s\npage:\n%s", inner, q.PageSQL)
	}

	// params: page args are count args plus exactly (limit, offset)
	if len(q.PageArgs) != len(q.CountArgs)+2 {
		t.Fatalf("page args len %d, want count args len %d + 2", len(q.PageArgs), len(q.CountArgs))
	}
	if !reflect.DeepEqual(q.PageArgs[:len(q.CountArgs)], q.CountArgs) {
		t.Fatal("page args do not share the count args prefix")
	}
	if q.PageArgs[len(q.PageArgs)-2] != 10 || q.PageArgs[len(q.PageArgs)-1] != 10 {
		t.Fatalf("trailing pagination params = %v, want [10 10]", q.PageArgs[len(q.PageArgs)-2:])
	}
}

func extractInner(t *testing.T, countSQL string) string {
	t.Helper()
	start := strings.Index(countSQL, "SELECT")
	end := strings.LastIndex(countSQL, ")")
	if start < 0 || end < 0 || end <= start {
		t.Fatalf("cannot locate inner relation in %q", countSQL)
	}
	return strings.TrimSpace(countSQL[start:end])
}

func TestCompileList_PaginationOffset(t *testing.T) {
	q := compileList(domain.FilterSpec{}, domain.RankingSpec{}, domain.Pagination{Page: 7, Size: 25}, "")
	if got := q.PageArgs[len(q.PageArgs)-1]; got != 175 {
		t.Fatalf("offset = %v, want 175", got)
	}
	if got := q.PageArgs[len(q.PageArgs)-2]; got != 25 {
		t.Fatalf("limit = %v, want 25", got)
	}
}

func TestCompileList_RatingBoundsAreStrictShifted(t *testing.T) {
	q := compileList(domain.FilterSpec{MinRating: intp(5), MaxRating: intp(30)},
		domain.RankingSpec{}, domain.Pagination{Size: 10}, "")

	if !strings.Contains(q.CountSQL, "c.rating > ") || !strings.Contains(q.CountSQL, "c.rating < ") {
		t.Fatalf("expected strict rating comparisons, got\n%s", q.CountSQL)
	}
	// default status param is first, then the shifted bounds
	if !reflect.DeepEqual(q.CountArgs, []any{"PUBLIC", 4, 31}) {
		t.Fatalf("args = %v, want [PUBLIC 4 31]", q.CountArgs)
	}
}

func TestCompileList_MetaFilterIsOneParamFourSites(t *testing.T) {
	q := compileList(domain.FilterSpec{MetaIncludes: "Alice"},
		domain.RankingSpec{}, domain.Pagination{Size: 10}, "")

	// params: status + one meta param
	if len(q.CountArgs) != 2 {
		t.Fatalf("args = %v, want exactly [status meta]", q.CountArgs)
	}
	if q.CountArgs[1] != "%alice%" {
		t.Fatalf("meta param = %v, want %%alice%%", q.CountArgs[1])
	}
	if n := strings.Count(q.CountSQL, "LIKE $2"); n != 4 {
		t.Fatalf("meta placeholder used %d times, want 4", n)
	}
}

func TestCompileList_TextFilterMatchesSQLLower(t *testing.T) {
	q := compileList(domain.FilterSpec{TitleIncludes: "Straße"},
		domain.RankingSpec{}, domain.Pagination{Size: 10}, "")

	if !strings.Contains(q.CountSQL, "LOWER(c.title) LIKE ") {
		t.Fatalf("expected LOWER(title) predicate, got\n%s", q.CountSQL)
	}
	// the bound value must use the same lowercase mapping LOWER applies;
	// case folding would bind %strasse% and never match the column
	if q.CountArgs[1] != "%straße%" {
		t.Fatalf("title param = %v, want %%straße%%", q.CountArgs[1])
	}
}

func TestCompileList_OwnedBySuppressesHandle(t *testing.T) {
	q := compileList(domain.FilterSpec{OwnedBy: "acct-1", HandleIs: i64p(777)},
		domain.RankingSpec{}, domain.Pagination{Size: 10}, "")

	if !strings.Contains(q.CountSQL, "c.author = ") {
		t.Fatal("expected owner predicate")
	}
	if strings.Contains(q.CountSQL, "a.handle = ") {
		t.Fatal("handle predicate must be suppressed when an owner id is given")
	}
	for _, a := range q.CountArgs {
		if a == int64(777) {
			t.Fatal("handle value must not be bound when suppressed")
		}
	}

	// without an owner the handle filter applies
	q = compileList(domain.FilterSpec{HandleIs: i64p(777)},
		domain.RankingSpec{}, domain.Pagination{Size: 10}, "")
	if !strings.Contains(q.CountSQL, "a.handle = ") {
		t.Fatal("expected handle predicate without owner id")
	}
}

func TestCompileList_PublishedRankingAddsNotNullGuard(t *testing.T) {
	q := compileList(domain.FilterSpec{}, domain.RankingSpec{By: domain.RankPublished},
		domain.Pagination{Size: 10}, "")
	if !strings.Contains(q.PageSQL, "c.published_at IS NOT NULL") {
		t.Fatal("published_at ranking must filter null publish times")
	}
	// the guard is a real filter, so the count must exclude the same rows
	if !strings.Contains(q.CountSQL, "c.published_at IS NOT NULL") {
		t.Fatal("count query must carry the publish-time guard")
	}
}

func TestCompileList_UnknownRankingFallsBack(t *testing.T) {
	q := compileList(domain.FilterSpec{}, domain.RankingSpec{By: "bogus", Order: "sideways"},
		domain.Pagination{Size: 10}, "")
	if !strings.Contains(q.PageSQL, "ORDER BY created_at DESC") {
		t.Fatalf("unknown ranking must fall back to created_at desc, got\n%s", q.PageSQL)
	}
}

func TestCompileList_ViewerJoinAppearsInBothQueries(t *testing.T) {
	q := compileList(domain.FilterSpec{}, domain.RankingSpec{}, domain.Pagination{Size: 10}, "viewer-9")

	const join = "LEFT JOIN chart_likes cl"
	if !strings.Contains(q.CountSQL, join) || !strings.Contains(q.PageSQL, join) {
		t.Fatal("viewer join must be appended to both count and page queries")
	}
	if !q.HasLiked {
		t.Fatal("HasLiked must be set when a viewer is supplied")
	}
	if q.CountArgs[0] != "viewer-9" {
		t.Fatalf("viewer must be the first bound param, got %v", q.CountArgs[0])
	}
}

func TestCompileList_DecayingRankUsesStoredColumnsOnly(t *testing.T) {
	q := compileList(domain.FilterSpec{}, domain.RankingSpec{By: domain.RankDecaying},
		domain.Pagination{Size: 10}, "")
	for _, frag := range []string{"like_count * 3", "comment_count * 4", "THEN 30", "0.35"} {
		if !strings.Contains(q.PageSQL, frag) {
			t.Fatalf("decaying score SQL missing %q", frag)
		}
	}
}

func TestCompileList_TagContainment(t *testing.T) {
	q := compileList(domain.FilterSpec{Tags: []string{"a", "b"}},
		domain.RankingSpec{}, domain.Pagination{Size: 10}, "")
	if !strings.Contains(q.CountSQL, "c.tags @> ") {
		t.Fatal("expected array containment predicate for tags")
	}
}
