package orderfilter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	"github.com/m04kA/SMC-OrderingService/pkg/ptr"
)

func ms(t time.Time) *float64 {
	return ptr.Ptr(float64(t.UnixMilli()))
}

// fixture: mixed timestamp fields, two customers, one pre-order
func fixture() []*domain.Order {
	day := func(d, h int) time.Time { return time.Date(2025, 1, d, h, 0, 0, 0, time.UTC) }

	return []*domain.Order{
		{ID: "o1", CustomerID: "cust1", OrderType: domain.OrderTypeDineIn, Status: domain.StatusCompleted, CreatedAt: ms(day(10, 12))},
		{ID: "o2", CustomerID: "cust2", OrderType: domain.OrderTypePreOrder, Status: domain.StatusPending, CreationTime: ms(day(15, 12))},
		{ID: "o3", CustomerID: "cust1", OrderType: domain.OrderTypeDelivery, Status: domain.StatusAccepted, CreationTime: ms(day(12, 9)), CreatedAt: ms(day(1, 9))},
		{ID: "o4", CustomerID: "cust1", OrderType: domain.OrderTypePreOrder, Status: domain.StatusCancelled, CreatedAt: ms(day(20, 18))},
		{ID: "o5", CustomerID: "cust2", OrderType: domain.OrderTypeTakeaway, Status: domain.StatusReady, CreationTime: ms(day(5, 8))},
	}
}

func ids(orders []*domain.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestFilterAndSort_AllDescending(t *testing.T) {
	orders := fixture()

	result := FilterAndSort(orders, Config{StatusFilter: StatusAll, Location: time.UTC})

	require.Len(t, result, 5)
	assert.Equal(t, []string{"o4", "o2", "o3", "o1", "o5"}, ids(result))
	for i := 1; i < len(result); i++ {
		assert.Greater(t, OrderTimestamp(result[i-1]), OrderTimestamp(result[i]))
	}
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	orders := fixture()
	before := ids(orders)

	result := FilterAndSort(orders, Config{Location: time.UTC})

	assert.Equal(t, before, ids(orders))
	assert.Same(t, orders[3], result[0])
}

func TestFilterAndSort_CustomerScope(t *testing.T) {
	orders := fixture()

	scoped := FilterAndSort(orders, Config{CustomerID: "cust1", StatusFilter: StatusAll, Location: time.UTC})
	assert.Equal(t, []string{"o4", "o3", "o1"}, ids(scoped))

	unscoped := FilterAndSort(orders, Config{CustomerID: "", StatusFilter: StatusAll, Location: time.UTC})
	assert.Len(t, unscoped, 5)
}

func TestFilterAndSort_OrderTypeScope(t *testing.T) {
	orders := fixture()

	pre := FilterAndSort(orders, Config{OrderTypeScope: TypeScopePreOrder, Location: time.UTC})
	assert.Equal(t, []string{"o4", "o2"}, ids(pre))

	regular := FilterAndSort(orders, Config{OrderTypeScope: TypeScopeRegular, Location: time.UTC})
	assert.Equal(t, []string{"o3", "o1", "o5"}, ids(regular))

	all := FilterAndSort(orders, Config{OrderTypeScope: TypeScopeAll, Location: time.UTC})
	assert.Len(t, all, 5)
}

func TestFilterAndSort_DateRange(t *testing.T) {
	orders := fixture()

	result := FilterAndSort(orders, Config{FromDate: "2025-01-10", ToDate: "2025-01-15", Location: time.UTC})
	assert.Equal(t, []string{"o2", "o3", "o1"}, ids(result))

	ignored := FilterAndSort(orders, Config{FromDate: "10/01/2025", Location: time.UTC})
	assert.Len(t, ignored, 5)
}

func TestFilterAndSort_Status(t *testing.T) {
	orders := fixture()

	exact := FilterAndSort(orders, Config{StatusFilter: string(domain.StatusPending), Location: time.UTC})
	assert.Equal(t, []string{"o2"}, ids(exact))

	active := FilterAndSort(orders, Config{
		StatusFilter:        StatusActive,
		CustomStatusMatcher: ActiveStatusMatcher,
		Location:            time.UTC,
	})
	assert.Equal(t, []string{"o2", "o3", "o5"}, ids(active))

	// without the matcher "active" is compared literally
	literal := FilterAndSort(orders, Config{StatusFilter: StatusActive, Location: time.UTC})
	assert.Empty(t, literal)
}

func TestFilterAndSort_CustomFilterAndSort(t *testing.T) {
	orders := fixture()

	result := FilterAndSort(orders, Config{
		CustomFilter: func(o *domain.Order) bool { return o.CustomerID == "cust2" },
		CustomSort: func(a, b *domain.Order) int {
			return -SortByMostRecent(a, b)
		},
		Location: time.UTC,
	})
	assert.Equal(t, []string{"o5", "o2"}, ids(result))
}

func TestFilterAndSort_Idempotent(t *testing.T) {
	cfg := Config{CustomerID: "cust1", StatusFilter: StatusAll, Location: time.UTC}

	once := FilterAndSort(fixture(), cfg)
	twice := FilterAndSort(once, cfg)

	require.Equal(t, len(once), len(twice))
	for i := range once {
		assert.Same(t, once[i], twice[i])
	}
}

func TestFilterAndSort_StableForEqualTimestamps(t *testing.T) {
	ts := ptr.Ptr(1000.0)
	orders := []*domain.Order{
		{ID: "a", CreationTime: ts},
		{ID: "b", CreationTime: ts},
		{ID: "c"},
		{ID: "d", CreationTime: ts},
	}

	result := FilterAndSort(orders, Config{})
	assert.Equal(t, []string{"a", "b", "d", "c"}, ids(result))
}

func TestIsWithinDateRange(t *testing.T) {
	noon := &domain.Order{CreatedAt: ms(time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local))}

	assert.True(t, IsWithinDateRange(noon, "2025-01-15", "2025-01-15"))
	assert.True(t, IsWithinDateRange(noon, "", ""))
	assert.True(t, IsWithinDateRange(noon, "2025-01-01", ""))
	assert.False(t, IsWithinDateRange(noon, "2025-01-16", ""))
	assert.False(t, IsWithinDateRange(noon, "", "2025-01-14"))
}

func TestIsWithinDateRangeIn_DayBoundaries(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	startOfDay := &domain.Order{CreationTime: ms(time.Date(2025, 1, 15, 0, 0, 0, 0, loc))}
	endOfDay := &domain.Order{CreationTime: ms(time.Date(2025, 1, 15, 23, 59, 59, 999_000_000, loc))}
	nextDay := &domain.Order{CreationTime: ms(time.Date(2025, 1, 16, 0, 0, 0, 0, loc))}

	assert.True(t, IsWithinDateRangeIn(startOfDay, "2025-01-15", "2025-01-15", loc))
	assert.True(t, IsWithinDateRangeIn(endOfDay, "2025-01-15", "2025-01-15", loc))
	assert.False(t, IsWithinDateRangeIn(nextDay, "2025-01-15", "2025-01-15", loc))
}

func TestMatchesStatusFilter(t *testing.T) {
	o := &domain.Order{Status: domain.StatusReady}

	assert.True(t, MatchesStatusFilter(o, StatusAll, nil))
	assert.True(t, MatchesStatusFilter(o, "", nil))
	assert.True(t, MatchesStatusFilter(o, "ready", nil))
	assert.False(t, MatchesStatusFilter(o, "pending", nil))

	never := func(*domain.Order, string) bool { return false }
	assert.False(t, MatchesStatusFilter(o, StatusAll, never))
}

func TestSortByMostRecent(t *testing.T) {
	older := &domain.Order{CreatedAt: ptr.Ptr(1.0)}
	newer := &domain.Order{CreationTime: ptr.Ptr(2.0)}

	assert.Equal(t, -1, SortByMostRecent(newer, older))
	assert.Equal(t, 1, SortByMostRecent(older, newer))
	assert.Equal(t, 0, SortByMostRecent(older, older))
}
