package stats

import (
	"context"
	"errors"
	"testing"

	"vacancy-stats/internal/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves canned pages and records the queries it receives.
type fakeSource struct {
	currency string
	pages    map[int]platform.Page
	failOn   int
	queries  []platform.Query
}

func (f *fakeSource) Name() string           { return "Fake" }
func (f *fakeSource) TargetCurrency() string { return f.currency }

func (f *fakeSource) FetchPage(ctx context.Context, q platform.Query) (platform.Page, error) {
	f.queries = append(f.queries, q)
	if f.failOn > 0 && q.Page == f.failOn {
		return platform.Page{}, errors.New("boom")
	}
	return f.pages[q.Page], nil
}

func rur(from, to float64) platform.Listing {
	return platform.Listing{SalaryFrom: from, SalaryTo: to, Currency: "RUR", HasSalary: true}
}

func TestCollect_SinglePageScenario(t *testing.T) {
	src := &fakeSource{
		currency: "RUR",
		pages: map[int]platform.Page{
			0: {Found: 2, Pages: 1, Listings: []platform.Listing{
				rur(100000, 0),
				{Currency: "RUR", HasSalary: true},
			}},
		},
	}

	got, err := Collect(context.Background(), src, "Программист Go")
	require.NoError(t, err)

	assert.Equal(t, Stats{Found: 2, Processed: 1, Average: 120000}, got)
	assert.Len(t, src.queries, 1)
}

func TestCollect_IteratesReportedPageCount(t *testing.T) {
	src := &fakeSource{
		currency: "RUR",
		pages: map[int]platform.Page{
			0: {Found: 5, Pages: 3, More: true, Listings: []platform.Listing{rur(100, 200)}},
			1: {Found: 5, Pages: 3, More: true, Listings: []platform.Listing{rur(0, 100)}},
			2: {Found: 5, Pages: 3, More: false, Listings: []platform.Listing{rur(300, 0)}},
			3: {Found: 5, Pages: 3, Listings: []platform.Listing{rur(1000000, 0)}},
		},
	}

	got, err := Collect(context.Background(), src, "Go")
	require.NoError(t, err)

	require.Len(t, src.queries, 3)
	for i, q := range src.queries {
		assert.Equal(t, platform.Query{Keyword: "Go", Page: i}, q)
	}
	// (150 + 80 + 360) / 3
	assert.Equal(t, Stats{Found: 5, Processed: 3, Average: 196}, got)
}

func TestCollect_StopsWhenNoMorePages(t *testing.T) {
	src := &fakeSource{
		currency: "rub",
		pages: map[int]platform.Page{
			0: {Found: 250, Pages: 3, More: true},
			1: {Found: 250, Pages: 3, More: false},
			2: {Found: 250, Pages: 3, More: false},
		},
	}

	_, err := Collect(context.Background(), src, "Go")
	require.NoError(t, err)
	assert.Len(t, src.queries, 2)
}

func TestCollect_NoMatchingCurrency(t *testing.T) {
	usd := platform.Listing{SalaryFrom: 3000, SalaryTo: 5000, Currency: "usd", HasSalary: true}
	src := &fakeSource{
		currency: "rub",
		pages: map[int]platform.Page{
			0: {Found: 150, Pages: 2, More: true, Listings: []platform.Listing{usd, usd}},
			1: {Found: 150, Pages: 2, More: false, Listings: []platform.Listing{usd}},
		},
	}

	got, err := Collect(context.Background(), src, "Go")
	require.NoError(t, err)
	assert.Equal(t, Stats{Found: 150, Processed: 0, Average: 0}, got)
	assert.Len(t, src.queries, 2)
}

func TestCollect_ZeroPages(t *testing.T) {
	src := &fakeSource{
		currency: "RUR",
		pages:    map[int]platform.Page{0: {Found: 0, Pages: 0}},
	}

	got, err := Collect(context.Background(), src, "Go")
	require.NoError(t, err)
	assert.Equal(t, Stats{}, got)
}

func TestCollect_FetchErrorAborts(t *testing.T) {
	src := &fakeSource{
		currency: "RUR",
		failOn:   1,
		pages: map[int]platform.Page{
			0: {Found: 40, Pages: 2, More: true, Listings: []platform.Listing{rur(100, 0)}},
		},
	}

	_, err := Collect(context.Background(), src, "Go")
	assert.Error(t, err)
}

func TestCollectAll_KeepsLanguageOrder(t *testing.T) {
	src := &fakeSource{
		currency: "RUR",
		pages:    map[int]platform.Page{0: {Found: 1, Pages: 1, Listings: []platform.Listing{rur(0, 1000)}}},
	}
	languages := []string{"Scala", "C", "Python", "Go"}

	got, err := CollectAll(context.Background(), src, "Программист %s", languages)
	require.NoError(t, err)

	require.Len(t, got, len(languages))
	for i, ls := range got {
		assert.Equal(t, languages[i], ls.Language)
		assert.Equal(t, Stats{Found: 1, Processed: 1, Average: 800}, ls.Stats)
	}
	assert.Equal(t, "Программист Scala", src.queries[0].Keyword)
	assert.Equal(t, "Программист Go", src.queries[3].Keyword)
}
