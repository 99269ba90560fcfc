package events

import (
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseQueryDefaults(t *testing.T) {
	query, err := ParseQuery(url.Values{})

	require.NoError(t, err)
	require.Equal(t, DefaultPage, query.Page)
	require.Equal(t, DefaultLimit, query.Limit)
	require.Equal(t, "createdAt", query.SortBy)
	require.Equal(t, "desc", query.SortDir)
	require.Empty(t, query.Search)
	require.Empty(t, query.Type)
}

func TestParseQueryValues(t *testing.T) {
	values := url.Values{}
	values.Set("search", "  jazz ")
	values.Set("type", "conference")
	values.Set("page", "3")
	values.Set("limit", "25")
	values.Set("sortBy", "title")
	values.Set("sortDir", "ASC")

	query, err := ParseQuery(values)

	require.NoError(t, err)
	require.Equal(t, "jazz", query.Search)
	require.Equal(t, "conference", query.Type)
	require.Equal(t, 3, query.Page)
	require.Equal(t, 25, query.Limit)
	require.Equal(t, "title", query.SortBy)
	require.Equal(t, "asc", query.SortDir)
}

func TestParseQueryMalformed(t *testing.T) {
	values := url.Values{}
	values.Set("page", "two")

	_, err := ParseQuery(values)
	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "page", validationErr.Field)

	values = url.Values{}
	values.Set("sortDir", "sideways")
	_, err = ParseQuery(values)
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "sortDir", validationErr.Field)
}

func TestParseQueryClampsNonPositive(t *testing.T) {
	values := url.Values{}
	values.Set("page", "0")
	values.Set("limit", "-5")

	query, err := ParseQuery(values)

	require.NoError(t, err)
	require.Equal(t, DefaultPage, query.Page)
	require.Equal(t, DefaultLimit, query.Limit)
}

func testEvents() []*Event {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []*Event{
		{ID: 1, Title: "FOO bar", Description: "one", EventType: "general", CreatedAt: base},
		{ID: 2, Title: "Workshop day", Description: "contains foo inside", EventType: "workshop", CreatedAt: base.Add(time.Hour)},
		{ID: 3, Title: "Social night", Description: "three", EventType: "social", CreatedAt: base.Add(2 * time.Hour)},
	}
}

func defaultQuery() Query {
	return Query{Page: 1, Limit: 10, SortBy: "createdAt", SortDir: "desc"}
}

func TestApplyQuerySearchCaseInsensitive(t *testing.T) {
	query := defaultQuery()
	query.Search = "foo"

	result := ApplyQuery(testEvents(), query)

	require.Equal(t, 2, result.TotalEvents)
	for _, event := range result.Events {
		require.Contains(t, []int64{1, 2}, event.ID)
	}
}

func TestApplyQueryTypeFilter(t *testing.T) {
	query := defaultQuery()
	query.Type = "social"

	result := ApplyQuery(testEvents(), query)

	require.Equal(t, 1, result.TotalEvents)
	require.Equal(t, int64(3), result.Events[0].ID)
}

func TestApplyQuerySortDescByCreatedAt(t *testing.T) {
	result := ApplyQuery(testEvents(), defaultQuery())

	require.Equal(t, []int64{3, 2, 1}, eventIDs(result.Events))
}

func TestApplyQuerySortAscByTitle(t *testing.T) {
	query := defaultQuery()
	query.SortBy = "title"
	query.SortDir = "asc"

	result := ApplyQuery(testEvents(), query)

	require.Equal(t, []int64{1, 3, 2}, eventIDs(result.Events))
}

func TestApplyQuerySortUnknownFieldKeepsOrder(t *testing.T) {
	query := defaultQuery()
	query.SortBy = "nonexistent"

	result := ApplyQuery(testEvents(), query)

	// Every comparison key is the empty string, so the stable sort must
	// leave the input order untouched.
	require.Equal(t, []int64{1, 2, 3}, eventIDs(result.Events))
}

func TestApplyQuerySortStability(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	list := []*Event{
		{ID: 1, Title: "same", CreatedAt: at},
		{ID: 2, Title: "same", CreatedAt: at},
		{ID: 3, Title: "same", CreatedAt: at},
	}

	query := defaultQuery()
	query.SortBy = "title"
	query.SortDir = "asc"

	result := ApplyQuery(list, query)
	require.Equal(t, []int64{1, 2, 3}, eventIDs(result.Events))
}

func TestApplyQueryPagination(t *testing.T) {
	query := defaultQuery()
	query.Limit = 1
	query.Page = 2

	result := ApplyQuery(testEvents(), query)

	require.Equal(t, 3, result.TotalEvents)
	require.Equal(t, 2, result.CurrentPage)
	require.Equal(t, 3, result.TotalPages)
	require.Len(t, result.Events, 1)
	// Second element of the desc-by-createdAt ordering.
	require.Equal(t, int64(2), result.Events[0].ID)
}

func TestApplyQueryOutOfRangePage(t *testing.T) {
	query := defaultQuery()
	query.Page = 50

	result := ApplyQuery(testEvents(), query)

	require.Empty(t, result.Events)
	require.NotNil(t, result.Events)
	require.Equal(t, 3, result.TotalEvents)
	require.Equal(t, 50, result.CurrentPage)
	require.Equal(t, 1, result.TotalPages)
}

// A client-supplied limit is only checked for positivity, so the page slice
// must be sized from the actual result window, not the raw limit.
func TestApplyQueryHugeLimit(t *testing.T) {
	query := defaultQuery()
	query.Limit = math.MaxInt

	result := ApplyQuery(testEvents(), query)

	require.Len(t, result.Events, 3)
	require.Equal(t, 3, result.TotalEvents)
	require.Equal(t, 1, result.TotalPages)
}

func TestApplyQueryHugePageDoesNotOverflow(t *testing.T) {
	query := defaultQuery()
	query.Page = math.MaxInt
	query.Limit = 2

	result := ApplyQuery(testEvents(), query)

	require.NotNil(t, result.Events)
	require.Empty(t, result.Events)
	require.Equal(t, 3, result.TotalEvents)
}

func TestApplyQueryEmptyInput(t *testing.T) {
	result := ApplyQuery(nil, defaultQuery())

	require.NotNil(t, result.Events)
	require.Empty(t, result.Events)
	require.Equal(t, 0, result.TotalEvents)
	require.Equal(t, 1, result.TotalPages)
}

func TestApplyQueryDoesNotMutateInput(t *testing.T) {
	list := testEvents()
	query := defaultQuery()
	query.SortBy = "title"
	query.SortDir = "asc"

	ApplyQuery(list, query)

	require.Equal(t, []int64{1, 2, 3}, eventIDs(list))
}

func eventIDs(list []*Event) []int64 {
	ids := make([]int64, 0, len(list))
	for _, event := range list {
		ids = append(ids, event.ID)
	}
	return ids
}
