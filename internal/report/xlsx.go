package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pickup"
)

const (
	revenueSheet = "Revenue"
	reviewSheet  = "Needs review"
)

var revenueHeader = []interface{}{
	"Period", "Orders", "Minis", "Full-size", "Small salsas", "Large salsas",
	"Delivery fees", "Revenue", "Unrecognised items",
}

// WriteXLSX writes the report as a workbook with a revenue sheet and, when
// any orders were excluded, a sheet listing them.
func WriteXLSX(rep *Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", revenueSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	if err := f.SetSheetRow(revenueSheet, "A1", &revenueHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	rows := make([]Row, 0, len(rep.Rows)+1)
	rows = append(rows, rep.Rows...)
	rows = append(rows, rep.Total)

	rowNum := 2
	for _, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)
		values := []interface{}{
			r.Label, r.Orders, r.Minis, r.Fulls, r.SalsasSmall, r.SalsasLarge,
			r.DeliveryFees.InexactFloat64(), r.Revenue.InexactFloat64(), r.Unrecognised,
		}
		if err := f.SetSheetRow(revenueSheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", rowNum, err)
		}
		rowNum++
	}
	last := rowNum - 1

	if err := f.SetCellStyle(revenueSheet, "A1", "I1", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	if err := f.SetCellStyle(revenueSheet, fmt.Sprintf("A%d", last), fmt.Sprintf("I%d", last), bold); err != nil {
		return fmt.Errorf("styling total: %w", err)
	}
	if err := f.SetCellStyle(revenueSheet, "G2", fmt.Sprintf("H%d", last), money); err != nil {
		return fmt.Errorf("styling amounts: %w", err)
	}
	if err := f.SetColWidth(revenueSheet, "A", "A", 26); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if len(rep.Excluded) > 0 {
		if err := writeReviewSheet(f, rep, bold); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeReviewSheet(f *excelize.File, rep *Report, bold int) error {
	if _, err := f.NewSheet(reviewSheet); err != nil {
		return fmt.Errorf("adding sheet: %w", err)
	}
	header := []interface{}{"Order", "Customer", "Pickup date", "Pickup time", "Status", "Total", "Pickup"}
	if err := f.SetSheetRow(reviewSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range rep.Excluded {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{
			e.Order.ID, e.Order.CustomerName, e.Order.PickupDate, e.Order.PickupTime,
			e.Order.Status.String(), e.Quote.Total.InexactFloat64(), pickup.Format(e.Pickup),
		}
		if err := f.SetSheetRow(reviewSheet, cell, &values); err != nil {
			return fmt.Errorf("writing review row %d: %w", i+2, err)
		}
	}
	if err := f.SetCellStyle(reviewSheet, "A1", "G1", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	return nil
}
