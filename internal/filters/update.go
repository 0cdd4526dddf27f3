package filters

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"promodeck/internal/domain"
)

// Patch is a partial set of filter changes keyed by filter name
type Patch map[string]any

// UpdateFilters merges patch into current and returns the result. Unknown keys
// are logged and dropped while the valid ones still apply. Page and page size
// are coerced to positive integers, falling back to their defaults. The page is
// never reset implicitly; callers include page 1 when they want it.
func UpdateFilters(logger *zap.Logger, current Criteria, patch Patch) Criteria {
	if logger == nil {
		logger = zap.NewNop()
	}
	next := current

	for key, value := range patch {
		switch key {
		case KeyStatus:
			raw := toString(value)
			s, ok := domain.ParseStatus(raw)
			if !ok {
				logger.Warn("Unknown status filter dropped", zap.String("status", raw))
				continue
			}
			next.Status = s
		case KeyKeyword:
			next.Keyword = strings.TrimSpace(toString(value))
		case KeyStartDate, KeyEndDate:
			d := toDate(value)
			if d != "" && !validDate(d) {
				logger.Warn("Invalid date filter ignored", zap.String("key", key), zap.String("value", d))
				continue
			}
			if key == KeyStartDate {
				next.StartDate = d
			} else {
				next.EndDate = d
			}
		case KeyPage:
			next.Page = coercePositive(value, DefaultPage)
		case KeyPageSize:
			next.PageSize = coercePositive(value, DefaultPageSize)
		default:
			logger.Warn("Invalid filter name", zap.String("name", key))
		}
	}
	return next
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case domain.Status:
		return string(t)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

func toDate(v any) string {
	if t, ok := v.(time.Time); ok {
		if t.IsZero() {
			return ""
		}
		return t.Format(DateLayout)
	}
	return strings.TrimSpace(toString(v))
}

// coercePositive accepts integer values, integral floats and numeric strings.
// Values above MaxPageValue are capped.
func coercePositive(v any, fallback int) int {
	var n int
	switch t := v.(type) {
	case int:
		n = t
	case int32:
		n = int(t)
	case int64:
		if t > MaxPageValue {
			return MaxPageValue
		}
		n = int(t)
	case uint:
		if t > MaxPageValue {
			return MaxPageValue
		}
		n = int(t)
	case float64:
		if t != math.Trunc(t) || t < 1 {
			return fallback
		}
		if t > MaxPageValue {
			return MaxPageValue
		}
		n = int(t)
	case string:
		return parsePositive(t, fallback)
	default:
		return fallback
	}
	if n <= 0 {
		return fallback
	}
	return min(n, MaxPageValue)
}
