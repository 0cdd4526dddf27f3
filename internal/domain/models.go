package domain

import (
	"strings"
	"time"
)

// Status represents the lifecycle state of an activity
type Status string

// Activity statuses. StatusAll is the empty filter value.
const (
	StatusAll      Status = ""
	StatusActive   Status = "active"
	StatusUpcoming Status = "upcoming"
	StatusEnded    Status = "ended"
)

// Statuses lists the concrete statuses in display order
var Statuses = []Status{StatusActive, StatusUpcoming, StatusEnded}

// ParseStatus parses a status name. It accepts "ongoing" and "completed" as
// aliases for active and ended. The second return is false for unknown names.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return StatusAll, true
	case "active", "ongoing":
		return StatusActive, true
	case "upcoming":
		return StatusUpcoming, true
	case "ended", "completed":
		return StatusEnded, true
	}
	return StatusAll, false
}

// Label returns the human-readable name of the status
func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusUpcoming:
		return "Upcoming"
	case StatusEnded:
		return "Ended"
	}
	return "All"
}

// ActivityType categorizes an activity by its mechanics
type ActivityType string

const (
	TypeCoupon     ActivityType = "coupon"
	TypeDiscount   ActivityType = "discount"
	TypeGift       ActivityType = "gift"
	TypeFlashSale  ActivityType = "flashSale"
	TypeNewProduct ActivityType = "newProduct"
	TypeEvent      ActivityType = "event"
)

// Activity represents one promotion or event in the catalog
type Activity struct {
	ID           string
	Title        string
	Description  string
	Type         ActivityType
	Status       Status
	Category     string
	StartTime    time.Time
	EndTime      time.Time
	Location     string
	Participants int
	Views        int
	Priority     int  // higher sorts first
	Featured     bool // featured activities sort before all others
	Rules        string
}

// StatusAt derives the status from the activity's time window.
// Used when a catalog record omits its status.
func (a Activity) StatusAt(now time.Time) Status {
	switch {
	case now.Before(a.StartTime):
		return StatusUpcoming
	case !a.EndTime.IsZero() && now.After(a.EndTime):
		return StatusEnded
	}
	return StatusActive
}

// StatusCounts holds the number of activities per status
type StatusCounts struct {
	Total    int
	Active   int
	Upcoming int
	Ended    int
}

// Add counts one activity with the given status
func (c *StatusCounts) Add(s Status) {
	c.Total++
	switch s {
	case StatusActive:
		c.Active++
	case StatusUpcoming:
		c.Upcoming++
	case StatusEnded:
		c.Ended++
	}
}

// For returns the count for a status; StatusAll returns the total
func (c StatusCounts) For(s Status) int {
	switch s {
	case StatusActive:
		return c.Active
	case StatusUpcoming:
		return c.Upcoming
	case StatusEnded:
		return c.Ended
	}
	return c.Total
}
