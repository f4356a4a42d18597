package orderfilter

import (
	"slices"
	"strings"
	"time"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
)

// Filter tokens understood without a custom matcher
const (
	StatusAll = "all"

	TypeScopeAll      = "all"
	TypeScopePreOrder = "pre-order"
	TypeScopeRegular  = "regular"
)

// StatusMatcher replaces the default status comparison.
// Used for aggregate tokens such as "active".
type StatusMatcher func(o *domain.Order, statusFilter string) bool

// Config describes one listing view
type Config struct {
	// CustomerID scopes the list to one customer; empty disables scoping
	CustomerID string
	FromDate   string // YYYY-MM-DD, inclusive
	ToDate     string // YYYY-MM-DD, inclusive

	StatusFilter   string
	OrderTypeScope string

	CustomFilter        func(o *domain.Order) bool
	CustomStatusMatcher StatusMatcher
	CustomSort          func(a, b *domain.Order) int

	// Location for calendar day boundaries, time.Local if nil
	Location *time.Location
}

// FilterAndSort returns the orders visible under cfg, most recent first unless
// CustomSort says otherwise. The input slice is never modified; surviving
// elements are the same pointers.
func FilterAndSort(orders []*domain.Order, cfg Config) []*domain.Order {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	result := make([]*domain.Order, 0, len(orders))
	for _, o := range orders {
		if o == nil {
			continue
		}
		if cfg.CustomerID != "" && o.CustomerID != cfg.CustomerID {
			continue
		}
		if !matchesTypeScope(o, cfg.OrderTypeScope) {
			continue
		}
		if !IsWithinDateRangeIn(o, cfg.FromDate, cfg.ToDate, loc) {
			continue
		}
		if cfg.CustomFilter != nil && !cfg.CustomFilter(o) {
			continue
		}
		if !MatchesStatusFilter(o, cfg.StatusFilter, cfg.CustomStatusMatcher) {
			continue
		}
		result = append(result, o)
	}

	cmp := cfg.CustomSort
	if cmp == nil {
		cmp = SortByMostRecent
	}
	slices.SortStableFunc(result, cmp)

	return result
}

// IsWithinDateRange checks the order timestamp against whole local calendar days
func IsWithinDateRange(o *domain.Order, fromDate, toDate string) bool {
	return IsWithinDateRangeIn(o, fromDate, toDate, time.Local)
}

// IsWithinDateRangeIn is IsWithinDateRange for an explicit location.
// fromDate starts at 00:00:00.000 and toDate ends at 23:59:59.999.
// A bound that does not parse as YYYY-MM-DD is ignored.
func IsWithinDateRangeIn(o *domain.Order, fromDate, toDate string, loc *time.Location) bool {
	ts := OrderTimestamp(o)

	if from, ok := parseDay(fromDate, loc); ok {
		if ts < float64(from.UnixMilli()) {
			return false
		}
	}
	if to, ok := parseDay(toDate, loc); ok {
		endOfDay := to.AddDate(0, 0, 1).Add(-time.Millisecond)
		if ts > float64(endOfDay.UnixMilli()) {
			return false
		}
	}
	return true
}

// MatchesStatusFilter defers to matcher when one is given. Otherwise "all" and
// an empty filter match everything and any other value must equal the status.
func MatchesStatusFilter(o *domain.Order, statusFilter string, matcher StatusMatcher) bool {
	if matcher != nil {
		return matcher(o, statusFilter)
	}
	if statusFilter == "" || statusFilter == StatusAll {
		return true
	}
	return string(o.Status) == statusFilter
}

// SortByMostRecent orders by resolved timestamp, newest first
func SortByMostRecent(a, b *domain.Order) int {
	ta, tb := OrderTimestamp(a), OrderTimestamp(b)
	switch {
	case ta > tb:
		return -1
	case ta < tb:
		return 1
	default:
		return 0
	}
}

// ActiveStatusMatcher understands the "active" token as any non-terminal status
// and falls back to the default comparison for everything else.
func ActiveStatusMatcher(o *domain.Order, statusFilter string) bool {
	if statusFilter == StatusActive {
		return o.Status.IsActive()
	}
	return MatchesStatusFilter(o, statusFilter, nil)
}

// StatusActive aggregate token handled by ActiveStatusMatcher
const StatusActive = "active"

func matchesTypeScope(o *domain.Order, scope string) bool {
	switch strings.TrimSpace(scope) {
	case TypeScopePreOrder:
		return o.OrderType == domain.OrderTypePreOrder
	case TypeScopeRegular:
		return o.OrderType != domain.OrderTypePreOrder
	default:
		return true
	}
}

func parseDay(date string, loc *time.Location) (time.Time, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(domain.DateFormat, date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
