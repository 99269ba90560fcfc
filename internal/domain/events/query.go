package events

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Query is a parsed event list request.
type Query struct {
	Search  string
	Type    string
	Page    int
	Limit   int
	SortBy  string
	SortDir string
}

// Result is a page of events plus pagination metadata. TotalEvents counts
// the filtered set before pagination.
type Result struct {
	Events      []*Event `json:"events"`
	TotalEvents int      `json:"totalEvents"`
	CurrentPage int      `json:"currentPage"`
	TotalPages  int      `json:"totalPages"`
}

// ParseQuery reads list parameters from a URL query string. Absent values
// take documented defaults; non-positive page/limit values are clamped to
// the defaults rather than rejected.
func ParseQuery(values url.Values) (Query, error) {
	query := Query{
		Search:  strings.TrimSpace(values.Get("search")),
		Type:    strings.TrimSpace(values.Get("type")),
		Page:    DefaultPage,
		Limit:   DefaultLimit,
		SortBy:  "createdAt",
		SortDir: "desc",
	}

	page, err := parsePositiveInt(values, "page", DefaultPage)
	if err != nil {
		return Query{}, err
	}
	query.Page = page

	limit, err := parsePositiveInt(values, "limit", DefaultLimit)
	if err != nil {
		return Query{}, err
	}
	query.Limit = limit

	if sortBy := strings.TrimSpace(values.Get("sortBy")); sortBy != "" {
		query.SortBy = sortBy
	}

	switch sortDir := strings.ToLower(strings.TrimSpace(values.Get("sortDir"))); sortDir {
	case "":
	case "asc", "desc":
		query.SortDir = sortDir
	default:
		return Query{}, ValidationError{Field: "sortDir", Message: "must be asc or desc"}
	}

	return query, nil
}

// ApplyQuery runs the pipeline: search filter, type filter, stable sort,
// offset pagination. The input slice is never mutated.
func ApplyQuery(all []*Event, query Query) Result {
	filtered := make([]*Event, 0, len(all))
	search := strings.ToLower(query.Search)
	for _, event := range all {
		if search != "" && !matchesSearch(event, search) {
			continue
		}
		if query.Type != "" && event.EventType != query.Type {
			continue
		}
		filtered = append(filtered, event)
	}

	sortEvents(filtered, query.SortBy, query.SortDir)

	total := len(filtered)
	totalPages := (total + query.Limit - 1) / query.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	// Clamp the window before allocating so an absurd client-supplied
	// page or limit cannot trigger a huge allocation or an overflowed
	// slice index.
	page := []*Event{}
	if start := (query.Page - 1) * query.Limit; start >= 0 && start < total {
		end := start + query.Limit
		if end > total || end < start {
			end = total
		}
		page = make([]*Event, end-start)
		copy(page, filtered[start:end])
	}

	return Result{
		Events:      page,
		TotalEvents: total,
		CurrentPage: query.Page,
		TotalPages:  totalPages,
	}
}

func matchesSearch(event *Event, loweredSearch string) bool {
	return strings.Contains(strings.ToLower(event.Title), loweredSearch) ||
		strings.Contains(strings.ToLower(event.Description), loweredSearch)
}

// sortEvents orders events by the named field. Numeric and timestamp fields
// compare naturally; everything else compares as strings, with unknown
// fields treated as empty strings so the input order survives the stable
// sort untouched.
func sortEvents(list []*Event, sortBy, sortDir string) {
	descending := sortDir == "desc"

	sort.SliceStable(list, func(i, j int) bool {
		less, equal := compareEvents(list[i], list[j], sortBy)
		if equal {
			return false
		}
		if descending {
			return !less
		}
		return less
	})
}

func compareEvents(a, b *Event, field string) (less, equal bool) {
	switch field {
	case "id":
		return a.ID < b.ID, a.ID == b.ID
	case "createdBy":
		return a.CreatedBy < b.CreatedBy, a.CreatedBy == b.CreatedBy
	case "createdAt":
		return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
	case "updatedAt":
		at, bt := timeOrZero(a.UpdatedAt), timeOrZero(b.UpdatedAt)
		return at.Before(bt), at.Equal(bt)
	default:
		av, bv := stringField(a, field), stringField(b, field)
		return av < bv, av == bv
	}
}

func stringField(event *Event, field string) string {
	switch field {
	case "title":
		return event.Title
	case "description":
		return event.Description
	case "eventType":
		return event.EventType
	case "imageUrl":
		return event.ImageURL
	case "location":
		return event.Location
	case "startDate":
		return event.StartDate
	case "endDate":
		return event.EndDate
	default:
		return ""
	}
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func parsePositiveInt(values url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ValidationError{Field: key, Message: "must be an integer"}
	}
	if parsed < 1 {
		return fallback, nil
	}
	return parsed, nil
}
