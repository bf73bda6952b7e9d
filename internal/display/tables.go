package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/desk"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pickup"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pricing"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/report"
)

// ── Table styles ─────────────────────────────────────────────────

var (
	tableBorderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#52525b"))

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bbf7d0")).
				Bold(true).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8")).
			Padding(0, 1)

	tableFlagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Padding(0, 1)

	tableTotalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true).
			Padding(0, 1)
)

// Money formats an amount as dollars with two decimals.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// ShortID returns the first eight characters of an order ID.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...)
}

// BoardTable renders entries as a numbered board. The numbers can be used
// as order references on the next command.
func BoardTable(entries []desk.Entry) string {
	if len(entries) == 0 {
		return secondaryStyle.Render("  no orders")
	}

	flagged := make(map[int]bool)
	t := newTable("#", "ID", "Customer", "Pickup", "Items", "Total", "Status", "")
	for i, e := range entries {
		flag := ""
		if e.NeedsReview() {
			flag = "review"
			flagged[i] = true
		}
		t.Row(
			strconv.Itoa(i+1),
			ShortID(e.Order.ID),
			e.Order.CustomerName,
			pickup.Format(e.Pickup),
			strconv.Itoa(e.Order.ItemCount()),
			Money(e.Quote.Total),
			e.Order.Status.String(),
			flag,
		)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return tableHeaderStyle
		}
		if flagged[row] && (col == 3 || col == 7) {
			return tableFlagStyle
		}
		return tableCellStyle
	})
	return t.String()
}

// OrderDetail renders one order with its items and price breakdown.
func OrderDetail(e desk.Entry) string {
	o := e.Order
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", headingStyle.Render(o.CustomerName), secondaryStyle.Render(o.ID))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("status:"), o.Status)
	fmt.Fprintf(&b, "%s %s %s\n", labelStyle.Render("pickup:"), pickup.Format(e.Pickup),
		secondaryStyle.Render(fmt.Sprintf("(%q %q)", o.PickupDate, o.PickupTime)))
	if o.Phone != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("phone:"), o.Phone)
	}
	if o.Notes != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("notes:"), o.Notes)
	}

	t := newTable("Item", "Qty", "Category")
	for _, item := range o.Items {
		cat, ok := pricing.CategoryOf(item)
		name := cat.String()
		if !ok {
			name += " ?"
		}
		t.Row(item.Name, strconv.Itoa(item.Quantity), name)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return tableHeaderStyle
		}
		return tableCellStyle
	})
	b.WriteString(t.String())
	b.WriteByte('\n')
	b.WriteString(QuoteTable(e.Quote))

	for _, issue := range e.Issues() {
		b.WriteByte('\n')
		b.WriteString(urgentOutputStyle.Render("! " + issue))
	}
	return b.String()
}

// QuoteTable renders a price breakdown. Lines with nothing ordered are left out.
func QuoteTable(q pricing.Breakdown) string {
	t := newTable("", "Qty", "Amount")
	rows := 0
	add := func(label string, qty int, amount decimal.Decimal) {
		if qty > 0 {
			t.Row(label, strconv.Itoa(qty), Money(amount))
			rows++
		}
	}
	add("Mini empanadas", q.MiniQty, q.Mini)
	add("Full-size empanadas", q.FullQty, q.Full)
	add("Small salsas", q.SalsaSmallQty, q.SalsaSmall)
	add("Large salsas", q.SalsaLargeQty, q.SalsaLarge)
	if !q.DeliveryFee.IsZero() {
		t.Row("Delivery", "", Money(q.DeliveryFee))
		rows++
	}
	t.Row("Total", "", Money(q.Total))

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch row {
		case table.HeaderRow:
			return tableHeaderStyle
		case rows:
			return tableTotalStyle
		}
		return tableCellStyle
	})
	return t.String()
}

// ReportTable renders a revenue report with a total row.
func ReportTable(rep *report.Report) string {
	t := newTable("Period", "Orders", "Minis", "Fulls", "Salsas", "Delivery", "Revenue")
	row := func(r report.Row) {
		t.Row(
			r.Label,
			strconv.Itoa(r.Orders),
			strconv.Itoa(r.Minis),
			strconv.Itoa(r.Fulls),
			strconv.Itoa(r.SalsasSmall+r.SalsasLarge),
			Money(r.DeliveryFees),
			Money(r.Revenue),
		)
	}
	for _, r := range rep.Rows {
		row(r)
	}
	row(rep.Total)

	totalRow := len(rep.Rows)
	t.StyleFunc(func(r, col int) lipgloss.Style {
		switch r {
		case table.HeaderRow:
			return tableHeaderStyle
		case totalRow:
			return tableTotalStyle
		}
		return tableCellStyle
	})

	var b strings.Builder
	b.WriteString(t.String())
	if n := rep.Total.Unrecognised; n > 0 {
		b.WriteByte('\n')
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("%d line item(s) charged by fallback rules", n)))
	}
	if len(rep.Excluded) > 0 {
		b.WriteByte('\n')
		b.WriteString(urgentOutputStyle.Render(fmt.Sprintf("%d order(s) left out, pickup unreadable:", len(rep.Excluded))))
		for _, e := range rep.Excluded {
			b.WriteByte('\n')
			b.WriteString(urgentOutputStyle.Render(fmt.Sprintf("  %s %s (%q %q)",
				ShortID(e.Order.ID), e.Order.CustomerName, e.Order.PickupDate, e.Order.PickupTime)))
		}
	}
	return b.String()
}
