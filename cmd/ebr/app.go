package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/desk"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/display"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/logger"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/metrics"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pickup"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/report"
)

type cliApp struct {
	desk         *desk.Desk
	metrics      *metrics.Registry
	parser       domain.CommandParser
	log          *logger.Logger
	ui           *display.UI
	remindWithin time.Duration
	board        []desk.Entry // last board shown; numbers refer to it
}

func (a *cliApp) run(ctx context.Context) {
	a.ui.PrintChat("Good to see you. Here is today's board.")
	a.list(ctx, "today")
	a.summary(ctx)

	uiCh := a.ui.InputChan()
	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		cmd, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("command: %s (payload=%q)", cmd.Type, cmd.Payload)
		if quit := a.handleCommand(ctx, cmd); quit {
			return
		}
	}
}

// handleCommand dispatches one command and reports whether the desk
// should exit.
func (a *cliApp) handleCommand(ctx context.Context, cmd *domain.Command) bool {
	switch cmd.Type {
	case domain.CommandHelp:
		a.showHelp()
	case domain.CommandList:
		a.list(ctx, cmd.Payload)
	case domain.CommandShow:
		a.show(ctx, cmd.Payload)
	case domain.CommandApprove:
		a.apply(ctx, cmd.Payload, "approved", a.desk.Approve)
	case domain.CommandComplete:
		a.apply(ctx, cmd.Payload, "completed", a.desk.Complete)
	case domain.CommandCancel:
		a.apply(ctx, cmd.Payload, "cancelled", a.desk.Cancel)
	case domain.CommandReopen:
		a.apply(ctx, cmd.Payload, "reopened", a.desk.Reopen)
	case domain.CommandReschedule:
		a.reschedule(ctx, cmd.Payload)
	case domain.CommandReview:
		a.review(ctx)
	case domain.CommandQuote:
		a.quote(cmd.Payload)
	case domain.CommandReport:
		a.report(ctx, cmd.Payload)
	case domain.CommandUpcoming:
		a.upcoming(ctx)
	case domain.CommandQuit:
		a.ui.PrintChat("Bye.")
		return true
	default:
		a.ui.PrintChat(fmt.Sprintf("I didn't catch %q. Type 'help' for commands.", cmd.Payload))
	}
	return false
}

func (a *cliApp) showBoard(title string, entries []desk.Entry) {
	a.board = entries
	a.ui.PrintHeading(title)
	a.ui.PrintBlock(display.BoardTable(entries))
}

func (a *cliApp) list(ctx context.Context, payload string) {
	view, ok := desk.ParseView(payload)
	if !ok {
		a.ui.PrintUrgent(fmt.Sprintf("Unknown view %q. Try today, tomorrow, week, month or all.", payload))
		return
	}

	entries, err := a.desk.Board(ctx, view)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading orders: %v", err))
		return
	}
	title := "Pickups " + view.String()
	if r, windowed := view.Range(a.desk.Now()); windowed {
		title += fmt.Sprintf(" (%s to %s)", r.From.Format("Mon Jan 2"), r.To.Add(-time.Minute).Format("Mon Jan 2"))
	}
	a.showBoard(title, entries)
}

func (a *cliApp) show(ctx context.Context, ref string) {
	e, err := a.desk.Get(ctx, resolveRef(ref, a.board))
	if err != nil {
		a.orderError(err)
		return
	}
	a.ui.PrintBlock(display.OrderDetail(*e))
}

// apply runs a status change and prints the result.
func (a *cliApp) apply(ctx context.Context, ref, verb string, fn func(context.Context, string) (*desk.Entry, error)) {
	e, err := fn(ctx, resolveRef(ref, a.board))
	if err != nil {
		a.orderError(err)
		return
	}
	a.ui.PrintChat(fmt.Sprintf("%s's order %s, pickup %s.", e.Order.CustomerName, verb, pickup.Format(e.Pickup)))
}

func (a *cliApp) reschedule(ctx context.Context, payload string) {
	ref, date, clock, err := parseReschedule(payload)
	if err != nil {
		a.ui.PrintHint(err.Error())
		return
	}

	e, err := a.desk.Reschedule(ctx, resolveRef(ref, a.board), date, clock)
	if err != nil {
		a.orderError(err)
		return
	}
	if !e.Pickup.Valid() {
		a.ui.PrintUrgent(fmt.Sprintf("Saved, but %q %q cannot be read as a pickup. The order stays on the review list.", date, clock))
		return
	}
	a.ui.PrintChat(fmt.Sprintf("%s's pickup moved to %s.", e.Order.CustomerName, pickup.Format(e.Pickup)))
}

func (a *cliApp) review(ctx context.Context) {
	entries, err := a.desk.Review(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading orders: %v", err))
		return
	}
	if len(entries) == 0 {
		a.ui.PrintChat("Nothing needs review.")
		return
	}
	a.showBoard("Needs review", entries)
	for i, e := range entries {
		for _, issue := range e.Issues() {
			a.ui.PrintHint(fmt.Sprintf("%d. %s", i+1, issue))
		}
	}
}

func (a *cliApp) quote(payload string) {
	items, fee, _, err := parseQuote(splitList(payload))
	if err != nil {
		a.ui.PrintUrgent(err.Error())
		a.ui.PrintHint("e.g. quote 12 beef mini, Full Chicken=6, fee 5")
		return
	}

	q := a.desk.Quote(items, fee)
	a.ui.PrintBlock(display.QuoteTable(q))
	for _, w := range q.Warnings {
		a.ui.PrintHint("warning: " + w.String())
	}
}

// report reads "[day|week|month] [today|tomorrow|week|month|all]".
func (a *cliApp) report(ctx context.Context, payload string) {
	fields := strings.Fields(payload)

	bucket := report.BucketDay
	if len(fields) > 0 {
		b, ok := report.ParseBucket(fields[0])
		if !ok {
			a.ui.PrintUrgent(fmt.Sprintf("Unknown bucket %q. Try day, week or month.", fields[0]))
			return
		}
		bucket = b
	}

	var within *pickup.Range
	if len(fields) > 1 {
		view, ok := desk.ParseView(strings.Join(fields[1:], " "))
		if !ok {
			a.ui.PrintUrgent(fmt.Sprintf("Unknown range %q.", strings.Join(fields[1:], " ")))
			return
		}
		if r, windowed := view.Range(a.desk.Now()); windowed {
			within = &r
		}
	}

	entries, err := a.desk.Entries(ctx)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading orders: %v", err))
		return
	}
	rep := buildReport(a.metrics, entries, bucket, within)
	a.ui.PrintHeading("Revenue by " + bucket.String())
	a.ui.PrintBlock(display.ReportTable(rep))
}

func (a *cliApp) upcoming(ctx context.Context) {
	entries, err := a.desk.Upcoming(ctx, a.remindWithin)
	if err != nil {
		a.ui.PrintUrgent(fmt.Sprintf("Error loading orders: %v", err))
		return
	}
	if len(entries) == 0 {
		a.ui.PrintChat(fmt.Sprintf("No approved pickups in the next %s.", a.remindWithin))
		return
	}
	a.showBoard(fmt.Sprintf("Approved pickups in the next %s", a.remindWithin), entries)
}

func (a *cliApp) summary(ctx context.Context) {
	s, err := a.desk.Summarize(ctx)
	if err != nil {
		a.log.Error("summarising desk: %v", err)
		return
	}
	a.ui.PrintHint(fmt.Sprintf("%d pending, %d approved, %d need review.", s.Pending, s.Approved, s.NeedsReview))
	if s.NeedsReview > 0 {
		a.ui.PrintHint("Type 'review' to see them.")
	}
}

func (a *cliApp) orderError(err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.ui.PrintUrgent("No such order. Use a board number or the start of an order ID.")
	case errors.Is(err, domain.ErrInvalidPickup):
		a.ui.PrintUrgent("That order's pickup date cannot be read. Reschedule it before approving.")
	case errors.Is(err, domain.ErrInvalidTransition):
		a.ui.PrintUrgent(err.Error())
	default:
		a.log.Error("order command: %v", err)
		a.ui.PrintUrgent(fmt.Sprintf("Error: %v", err))
	}
}

func (a *cliApp) showHelp() {
	a.ui.PrintHeading("Commands:")
	a.ui.PrintLine("  today / tomorrow   Show that day's pickups")
	a.ui.PrintLine("  week / month / all Show a wider board")
	a.ui.PrintLine("  1, 2, 3...         Show an order from the last board")
	a.ui.PrintLine("  show REF           Show an order by number or ID prefix")
	a.ui.PrintLine("  approve REF        Approve a pending order")
	a.ui.PrintLine("  done REF           Mark an order picked up")
	a.ui.PrintLine("  cancel REF         Cancel an order")
	a.ui.PrintLine("  reopen REF         Move an approved order back to pending")
	a.ui.PrintLine("  move REF DATE TIME Change an order's pickup")
	a.ui.PrintLine("  review             Orders with unreadable dates or unknown items")
	a.ui.PrintLine("  upcoming           Approved pickups coming up soon")
	a.ui.PrintLine("  quote ITEMS        Price items, e.g. quote 12 beef mini, Full Chicken=6")
	a.ui.PrintLine("  report [B] [RANGE] Revenue by day, week or month")
	a.ui.PrintLine("  help               Show this message")
	a.ui.PrintLine("  quit / exit        Leave the desk")
}
