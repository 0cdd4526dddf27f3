package catalog

import (
	"sort"
	"strings"
	"time"

	"promodeck/internal/domain"
	"promodeck/internal/filters"
)

// Result is one page of a catalog query
type Result struct {
	Items      []domain.Activity
	Pagination filters.PaginationResult
	Stats      domain.StatusCounts // counts over the whole catalog, ignoring filters
}

// Query filters, sorts and paginates the store contents
func Query(store Store, c filters.Criteria) Result {
	all := store.All()

	var stats domain.StatusCounts
	for _, a := range all {
		stats.Add(a.Status)
	}

	matched := Filter(all, c)
	Sort(matched)

	page := filters.Paginate(len(matched), c.Page, c.PageSize)
	return Result{
		Items:      filters.Slice(matched, page),
		Pagination: page,
		Stats:      stats,
	}
}

// Filter returns the activities matching every active criterion
func Filter(activities []domain.Activity, c filters.Criteria) []domain.Activity {
	from, to := c.DateRange()
	keyword := strings.ToLower(strings.TrimSpace(c.Keyword))

	result := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if Matches(a, c.Status, keyword, from, to) {
			result = append(result, a)
		}
	}
	return result
}

// Matches reports whether a passes the status, keyword and date filters.
// keyword must already be lower-cased. Zero from/to leave that side open.
func Matches(a domain.Activity, status domain.Status, keyword string, from, to time.Time) bool {
	if status != domain.StatusAll && a.Status != status {
		return false
	}
	if keyword != "" &&
		!strings.Contains(strings.ToLower(a.Title), keyword) &&
		!strings.Contains(strings.ToLower(a.Description), keyword) &&
		!strings.Contains(strings.ToLower(a.Category), keyword) {
		return false
	}
	// Date range overlap: the activity must end on or after from and start on or before to
	if !from.IsZero() && !a.EndTime.IsZero() && a.EndTime.Before(from) {
		return false
	}
	if !to.IsZero() && a.StartTime.After(to) {
		return false
	}
	return true
}

// Sort orders activities featured first, then by priority descending, then by start time
func Sort(activities []domain.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		a, b := activities[i], activities[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		return a.ID < b.ID
	})
}
