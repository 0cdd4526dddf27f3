package filters

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"promodeck/internal/domain"
)

// ParseQuery splits a query string into its parameters. A leading '?' is
// allowed. Malformed pairs are skipped and the first value of a repeated key wins.
func ParseQuery(query string) map[string]string {
	query = strings.TrimPrefix(strings.TrimSpace(query), "?")
	params := make(map[string]string)
	if query == "" {
		return params
	}
	// ParseQuery still returns every pair it could decode alongside an error
	values, _ := url.ParseQuery(query)
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}

// InitFromQuery builds criteria from query parameters. Missing or unparsable
// values fall back to their defaults; it never fails.
func InitFromQuery(params map[string]string) Criteria {
	c := Defaults()
	if s, ok := domain.ParseStatus(params[KeyStatus]); ok {
		c.Status = s
	}
	c.Keyword = params[KeyKeyword]
	if d := params[KeyStartDate]; validDate(d) {
		c.StartDate = d
	}
	if d := params[KeyEndDate]; validDate(d) {
		c.EndDate = d
	}
	c.Page = parsePositive(params[KeyPage], DefaultPage)
	c.PageSize = parsePositive(params[KeyPageSize], DefaultPageSize)
	return c
}

// FromQueryString is InitFromQuery(ParseQuery(query))
func FromQueryString(query string) Criteria {
	return InitFromQuery(ParseQuery(query))
}

// Encode returns the query representation of the criteria. Only non-empty,
// non-default fields are written, in canonical key order.
func (c Criteria) Encode() string {
	var parts []string
	add := func(key, value string) {
		parts = append(parts, key+"="+url.QueryEscape(value))
	}

	if c.Status != domain.StatusAll {
		add(KeyStatus, string(c.Status))
	}
	if c.Keyword != "" {
		add(KeyKeyword, c.Keyword)
	}
	if c.StartDate != "" {
		add(KeyStartDate, c.StartDate)
	}
	if c.EndDate != "" {
		add(KeyEndDate, c.EndDate)
	}
	if c.Page != DefaultPage && c.Page > 0 {
		add(KeyPage, strconv.Itoa(c.Page))
	}
	if c.PageSize != DefaultPageSize && c.PageSize > 0 {
		add(KeyPageSize, strconv.Itoa(c.PageSize))
	}
	return strings.Join(parts, "&")
}

// String returns the encoded query with a leading '?', or "" when empty
func (c Criteria) String() string {
	if q := c.Encode(); q != "" {
		return "?" + q
	}
	return ""
}

func parsePositive(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// Out of range digits still mean a large page
		if errors.Is(err, strconv.ErrRange) && n > 0 {
			return MaxPageValue
		}
		return fallback
	}
	if n <= 0 {
		return fallback
	}
	return min(n, MaxPageValue)
}
