// ebr is the order desk for a small empanada business.
//
// Usage:
//
//	ebr [flags]                                  interactive desk
//	ebr [flags] report [-bucket day|week|month] [-from DATE] [-to DATE] [-xlsx FILE]
//	ebr [flags] quote [-fee N] "NAME=QTY" ...
//	ebr [flags] import FILE.json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/command"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/config"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/desk"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/display"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/logger"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/metrics"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/pickup"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/reminder"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/report"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/settings"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg := config.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "file to write logs to (use \"stderr\" to log to console)")
	flag.StringVar(&cfg.StoreDir, "store", cfg.StoreDir, "pebble directory for orders (empty keeps orders in memory)")
	flag.StringVar(&cfg.SettingsFile, "settings", cfg.SettingsFile, "pricing settings JSON file")
	flag.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write prometheus metrics to this file on exit")
	flag.StringVar(&cfg.TimeZone, "tz", cfg.TimeZone, "time zone pickup dates are read in (IANA name)")
	flag.DurationVar(&cfg.RemindWithin, "remind-within", cfg.RemindWithin, "announce approved pickups this far ahead")
	flag.BoolVar(&cfg.SampleOrders, "sample", cfg.SampleOrders, "seed the in-memory store with demo orders")
	flag.Parse()

	// Direct logs to a file by default so the REPL stays clean.
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" && cfg.LogFile != "stderr" {
		dir := filepath.Dir(cfg.LogFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Pebble logs through the standard log package; keep it off the terminal.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logger.LevelFromFlags(*verbose, *quiet), logOut)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	prices, err := settings.Load(cfg.SettingsFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	var store domain.OrderStore
	if cfg.StoreDir != "" {
		ps, err := storage.OpenPebbleStore(cfg.StoreDir, log)
		if err != nil {
			return err
		}
		defer ps.Close()
		store = ps
	} else {
		var seed []*domain.Order
		if cfg.SampleOrders {
			seed = storage.SampleOrders(time.Now().In(loc))
		}
		store = storage.NewMemoryStore(log, seed...)
	}

	reg := metrics.NewRegistry()
	if cfg.MetricsFile != "" {
		defer func() {
			if err := reg.WriteFile(cfg.MetricsFile); err != nil {
				log.Error("writing metrics: %v", err)
			}
		}()
	}

	d := desk.New(store, prices, log,
		desk.WithLocation(loc),
		desk.WithMetrics(reg),
	)

	args := flag.Args()
	if len(args) == 0 {
		return runDesk(ctx, cfg, d, reg, log)
	}

	switch args[0] {
	case "report":
		return runReport(ctx, d, reg, args[1:])
	case "quote":
		return runQuote(d, args[1:])
	case "import":
		return runImport(ctx, d, args[1:])
	default:
		return fmt.Errorf("unknown command %q (want report, quote or import)", args[0])
	}
}

// runDesk starts the interactive desk and blocks until the operator quits.
func runDesk(ctx context.Context, cfg config.Config, d *desk.Desk, reg *metrics.Registry, log *logger.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ui := display.NewUI(statusSegments(ctx, d))
	notifier := command.NewCLINotifier(log, ui.Printf)
	parser := command.NewKeywordParser(log)

	supervisor := reminder.New(d, notifier, log,
		reminder.WithTickInterval(cfg.RemindEvery),
		reminder.WithLookahead(cfg.RemindWithin),
		reminder.WithMetrics(reg),
	)

	app := &cliApp{
		desk:         d,
		metrics:      reg,
		parser:       parser,
		log:          log,
		ui:           ui,
		remindWithin: cfg.RemindWithin,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		supervisor.Start(ctx)
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal and blocks until quit.
	err := ui.Run()
	cancel()
	supervisor.Stop()
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// statusSegments feeds the status bar from the desk summary.
func statusSegments(ctx context.Context, d *desk.Desk) display.StatusFunc {
	return func() []display.Segment {
		s, err := d.Summarize(ctx)
		if err != nil {
			return []display.Segment{{Label: "orders", Value: "unavailable", Alert: true}}
		}
		next := "none"
		if s.Next != nil {
			next = s.Next.Order.CustomerName + ", " + pickup.Format(s.Next.Pickup)
		}
		return []display.Segment{
			{Label: "pending", Value: fmt.Sprint(s.Pending)},
			{Label: "approved", Value: fmt.Sprint(s.Approved)},
			{Label: "review", Value: fmt.Sprint(s.NeedsReview), Alert: s.NeedsReview > 0},
			{Label: "next", Value: next},
		}
	}
}

func runReport(ctx context.Context, d *desk.Desk, reg *metrics.Registry, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	bucketName := fs.String("bucket", "day", "group by day, week or month")
	from := fs.String("from", "", "first pickup date to include")
	to := fs.String("to", "", "last pickup date to include")
	xlsxPath := fs.String("xlsx", "", "also write the report to this .xlsx file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bucket, ok := report.ParseBucket(*bucketName)
	if !ok {
		return fmt.Errorf("unknown bucket %q", *bucketName)
	}
	within, err := parseRange(*from, *to, d.Location())
	if err != nil {
		return err
	}

	entries, err := d.Entries(ctx)
	if err != nil {
		return fmt.Errorf("listing orders: %w", err)
	}
	rep := buildReport(reg, entries, bucket, within)
	fmt.Println(display.ReportTable(rep))

	if *xlsxPath == "" {
		return nil
	}
	f, err := os.Create(*xlsxPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", *xlsxPath, err)
	}
	if err := report.WriteXLSX(rep, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", *xlsxPath, err)
	}
	fmt.Printf("wrote %s\n", *xlsxPath)
	return nil
}

// buildReport builds a revenue report and records how long it took.
func buildReport(reg *metrics.Registry, entries []desk.Entry, bucket report.Bucket, within *pickup.Range) *report.Report {
	timer := prometheus.NewTimer(reg.ReportSeconds)
	defer timer.ObserveDuration()
	return report.Build(entries, bucket, within)
}

func runQuote(d *desk.Desk, args []string) error {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	fee := fs.String("fee", "0", "delivery fee")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, deliveryFee, err := quoteArgs(fs.Args(), *fee)
	if err != nil {
		return err
	}

	q := d.Quote(items, deliveryFee)
	fmt.Println(display.QuoteTable(q))
	for _, w := range q.Warnings {
		fmt.Println("warning: " + w.String())
	}
	return nil
}

func runImport(ctx context.Context, d *desk.Desk, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: ebr import FILE.json")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	var orders []*domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	n, err := d.Import(ctx, orders)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d of %d orders\n", n, len(orders))
	return nil
}
