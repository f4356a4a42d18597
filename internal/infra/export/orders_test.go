package export

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	"github.com/m04kA/SMC-OrderingService/pkg/ptr"
)

func TestOrdersWriter_Write(t *testing.T) {
	created := time.Date(2025, 1, 15, 12, 30, 0, 0, time.UTC)
	orders := []*domain.Order{
		{
			ID:           "o1",
			CustomerID:   "cust1",
			OrderType:    domain.OrderTypePreOrder,
			Status:       domain.StatusPending,
			Items:        []domain.OrderItem{{Name: "Pelmeni", Quantity: 2, Price: 5}},
			Total:        10,
			PreorderDate: ptr.Ptr("2025-01-20"),
			PreorderTime: ptr.Ptr("13:00"),
			CreationTime: ptr.Ptr(float64(created.UnixMilli())),
		},
		{
			ID:           "o2",
			CustomerID:   "cust2",
			OrderType:    domain.OrderTypeTakeaway,
			Status:       domain.StatusDenied,
			DenialReason: ptr.Ptr("Kitchen closed"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewOrdersWriter(time.UTC).Write(&buf, orders))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Order ID", rows[0][0])
	assert.Equal(t, "o1", rows[1][0])
	assert.Equal(t, "pre-order", rows[1][2])
	assert.Equal(t, "2025-01-15 12:30", rows[1][4])
	assert.Equal(t, "1:00 PM", rows[1][6])
	assert.Equal(t, "Pelmeni x2", rows[1][7])
	assert.Equal(t, "o2", rows[2][0])
	assert.Equal(t, "", rows[2][4])
	assert.Equal(t, "Kitchen closed", rows[2][11])
}

func TestOrdersWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOrdersWriter(nil).Write(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestOrdersWriter_HeaderStyle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOrdersWriter(time.UTC).Write(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	for _, cell := range []string{"A1", "L1"} {
		idx, err := f.GetCellStyle(SheetName, cell)
		require.NoError(t, err)
		style, err := f.GetStyle(idx)
		require.NoError(t, err)
		require.NotNil(t, style.Font, cell)
		assert.True(t, style.Font.Bold, cell)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestOrdersWriter_WriteError(t *testing.T) {
	err := NewOrdersWriter(time.UTC).Write(failingWriter{}, nil)
	assert.Error(t, err)
}

func TestOrdersWriter_MalformedPreorderTime(t *testing.T) {
	orders := []*domain.Order{{ID: "o1", PreorderTime: ptr.Ptr("99:00")}}

	var buf bytes.Buffer
	require.NoError(t, NewOrdersWriter(time.UTC).Write(&buf, orders))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(SheetName, "G2")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}
