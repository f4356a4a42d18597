package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	"github.com/m04kA/SMC-OrderingService/internal/orderfilter"
	"github.com/m04kA/SMC-OrderingService/internal/schedule"
	"github.com/m04kA/SMC-OrderingService/pkg/ptr"
)

// SheetName имя листа с заказами
const SheetName = "Orders"

var header = []string{
	"Order ID",
	"Customer",
	"Type",
	"Status",
	"Created",
	"Pre-order date",
	"Pre-order time",
	"Items",
	"Total",
	"Delivery address",
	"Notes",
	"Denial reason",
}

// OrdersWriter выгружает заказы в xlsx
type OrdersWriter struct {
	loc *time.Location
}

// NewOrdersWriter создает выгрузку; время создания форматируется в loc
func NewOrdersWriter(loc *time.Location) *OrdersWriter {
	if loc == nil {
		loc = time.Local
	}
	return &OrdersWriter{loc: loc}
}

// Write пишет заказы в порядке переданного слайса
func (w *OrdersWriter) Write(out io.Writer, orders []*domain.Order) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(f, 1, toInterfaces(header)); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	endCell, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("header cell: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", endCell, style); err != nil {
		return fmt.Errorf("set header style: %w", err)
	}

	for i, o := range orders {
		if err := writeRow(f, i+2, w.row(o)); err != nil {
			return err
		}
	}

	if err := f.Write(out); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func (w *OrdersWriter) row(o *domain.Order) []interface{} {
	created := ""
	if ts := orderfilter.OrderTimestamp(o); ts > 0 {
		created = time.UnixMilli(int64(ts)).In(w.loc).Format("2006-01-02 15:04")
	}

	preorderTime := ""
	if o.PreorderTime != nil {
		preorderTime = schedule.FormatTime12h(*o.PreorderTime)
	}

	items := make([]string, len(o.Items))
	for i, item := range o.Items {
		items[i] = fmt.Sprintf("%s x%d", item.Name, item.Quantity)
	}

	return []interface{}{
		o.ID,
		o.CustomerID,
		string(o.OrderType),
		string(o.Status),
		created,
		ptr.Deref(o.PreorderDate, ""),
		preorderTime,
		strings.Join(items, ", "),
		o.Total,
		ptr.Deref(o.DeliveryAddress, ""),
		ptr.Deref(o.Notes, ""),
		ptr.Deref(o.DenialReason, ""),
	}
}

func writeRow(f *excelize.File, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	return nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
