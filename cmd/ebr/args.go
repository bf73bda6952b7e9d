package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/desk"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pickup"
)

// parseItem reads "NAME=QTY" or "QTY NAME".
func parseItem(s string) (domain.LineItem, error) {
	s = strings.TrimSpace(s)

	var name, qty string
	if i := strings.LastIndex(s, "="); i >= 0 {
		name, qty = s[:i], s[i+1:]
	} else if fields := strings.Fields(s); len(fields) > 1 {
		qty, name = fields[0], strings.Join(fields[1:], " ")
	} else {
		return domain.LineItem{}, fmt.Errorf("cannot read item %q, use NAME=QTY or QTY NAME", s)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.LineItem{}, fmt.Errorf("item %q has no name", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil || n < 0 {
		return domain.LineItem{}, fmt.Errorf("item %q: quantity must be a whole number", s)
	}
	return domain.LineItem{Name: name, Quantity: n}, nil
}

// parseQuote reads a list of items. An entry "fee=N" or "fee N" sets the
// delivery fee instead of adding an item; hasFee reports whether one did.
func parseQuote(parts []string) (items []domain.LineItem, fee decimal.Decimal, hasFee bool, err error) {

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if rest, ok := cutFee(p); ok {
			d, err := decimal.NewFromString(rest)
			if err != nil {
				return nil, decimal.Zero, false, fmt.Errorf("reading delivery fee %q: %w", rest, err)
			}
			fee, hasFee = d, true
			continue
		}
		item, err := parseItem(p)
		if err != nil {
			return nil, decimal.Zero, false, err
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, decimal.Zero, false, domain.ErrEmptyOrder
	}
	return items, fee, hasFee, nil
}

// quoteArgs reads the quote subcommand's items. An inline fee, even zero,
// wins over the -fee flag.
func quoteArgs(args []string, flagFee string) ([]domain.LineItem, decimal.Decimal, error) {
	items, fee, hasFee, err := parseQuote(args)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if hasFee {
		return items, fee, nil
	}
	fee, err = decimal.NewFromString(flagFee)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("reading delivery fee %q: %w", flagFee, err)
	}
	return items, fee, nil
}

func cutFee(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, prefix := range []string{"fee=", "fee ", "delivery=", "delivery "} {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(s[len(prefix):]), true
		}
	}
	return "", false
}

// splitList splits REPL input on commas.
func splitList(s string) []string {
	return strings.Split(s, ",")
}

// parseRange builds an inclusive day range from two dates. Either end may
// be empty; both empty returns nil.
func parseRange(from, to string, loc *time.Location) (*pickup.Range, error) {
	if from == "" && to == "" {
		return nil, nil
	}

	r := pickup.Range{
		From: time.Time{},
		To:   time.Date(9999, time.December, 31, 0, 0, 0, 0, loc),
	}
	if from != "" {
		t, ok := pickup.ParseInstantIn(loc, from, "").Time()
		if !ok {
			return nil, fmt.Errorf("cannot read date %q", from)
		}
		r.From = pickup.Day(t).From
	}
	if to != "" {
		t, ok := pickup.ParseInstantIn(loc, to, "").Time()
		if !ok {
			return nil, fmt.Errorf("cannot read date %q", to)
		}
		r.To = pickup.Day(t).To
	}
	if !r.From.Before(r.To) {
		return nil, fmt.Errorf("date range %s to %s is empty", from, to)
	}
	return &r, nil
}

// resolveRef turns a board number into the order ID shown at that line.
// Anything else is returned unchanged for the desk to resolve.
func resolveRef(ref string, board []desk.Entry) string {
	ref = strings.TrimSpace(ref)
	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 || n > len(board) {
		return ref
	}
	return board[n-1].Order.ID
}

// parseReschedule reads "REF DATE [TIME...]".
func parseReschedule(payload string) (ref, date, clock string, err error) {
	fields := strings.Fields(payload)
	if len(fields) < 2 {
		return "", "", "", fmt.Errorf("usage: move REF DATE [TIME]")
	}
	return fields[0], fields[1], strings.Join(fields[2:], " "), nil
}
