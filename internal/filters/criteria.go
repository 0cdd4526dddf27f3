package filters

import (
	"math"
	"time"

	"promodeck/internal/domain"
)

// Default pagination values
const (
	DefaultPage     = 1
	DefaultPageSize = 10

	// MaxPageValue caps page and pageSize values coming from queries and patches
	MaxPageValue = math.MaxInt32
)

// DateLayout is the layout of startDate/endDate values
const DateLayout = "2006-01-02"

// Filter keys, in the order they appear in an encoded query
const (
	KeyStatus    = "status"
	KeyKeyword   = "keyword"
	KeyStartDate = "startDate"
	KeyEndDate   = "endDate"
	KeyPage      = "page"
	KeyPageSize  = "pageSize"
)

// Keys lists the recognized filter keys in canonical order
var Keys = []string{KeyStatus, KeyKeyword, KeyStartDate, KeyEndDate, KeyPage, KeyPageSize}

// IsKey reports whether name is a recognized filter key
func IsKey(name string) bool {
	for _, k := range Keys {
		if k == name {
			return true
		}
	}
	return false
}

// Criteria is the complete filter state of a list view
type Criteria struct {
	Status    domain.Status
	Keyword   string
	StartDate string // inclusive, YYYY-MM-DD, empty for no bound
	EndDate   string // inclusive, YYYY-MM-DD, empty for no bound
	Page      int
	PageSize  int
}

// Defaults returns the criteria with no filters applied
func Defaults() Criteria {
	return Criteria{Page: DefaultPage, PageSize: DefaultPageSize}
}

// ResetFilters returns the default criteria. Their encoded query is empty.
func ResetFilters() Criteria {
	return Defaults()
}

// IsDefault reports whether no filter is active and pagination is at its defaults
func (c Criteria) IsDefault() bool {
	return c == Defaults()
}

// HasFilters reports whether any narrowing filter is set, ignoring pagination
func (c Criteria) HasFilters() bool {
	return c.Status != domain.StatusAll || c.Keyword != "" || c.StartDate != "" || c.EndDate != ""
}

// DateRange returns the parsed date bounds. A zero time means the bound is open.
// The end bound is moved to the last instant of its day so the range is inclusive.
func (c Criteria) DateRange() (from, to time.Time) {
	if t, err := time.ParseInLocation(DateLayout, c.StartDate, time.Local); err == nil {
		from = t
	}
	if t, err := time.ParseInLocation(DateLayout, c.EndDate, time.Local); err == nil {
		to = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return from, to
}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
