package command

import (
	"context"
	"testing"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.CommandType
		wantPayload string
	}{
		// Board
		{"list", domain.CommandList, ""},
		{"ls week", domain.CommandList, "week"},
		{"board   this   month", domain.CommandList, "this month"},
		{"today", domain.CommandList, "today"},
		{"Tomorrow", domain.CommandList, "Tomorrow"},

		// Single order
		{"3", domain.CommandShow, "3"},
		{"show ord-a", domain.CommandShow, "ord-a"},
		{"approve 2", domain.CommandApprove, "2"},
		{"ok sample-1001", domain.CommandApprove, "sample-1001"},
		{"done 4", domain.CommandComplete, "4"},
		{"picked up 4", domain.CommandComplete, "4"},
		{"cancel 1", domain.CommandCancel, "1"},
		{"reopen 1", domain.CommandReopen, "1"},
		{"move 2 03/06/2024 3:00pm", domain.CommandReschedule, "2 03/06/2024 3:00pm"},

		// Other
		{"review", domain.CommandReview, ""},
		{"quote Mini Beef=12, salsa small=2", domain.CommandQuote, "Mini Beef=12, salsa small=2"},
		{"report", domain.CommandReport, ""},
		{"report week", domain.CommandReport, "week"},
		{"upcoming", domain.CommandUpcoming, ""},
		{"help", domain.CommandHelp, ""},
		{"?", domain.CommandHelp, ""},
		{"quit", domain.CommandQuit, ""},
		{"q", domain.CommandQuit, ""},

		// Unknown
		{"", domain.CommandUnknown, ""},
		{"make me a sandwich", domain.CommandUnknown, "make me a sandwich"},
		{"approve", domain.CommandUnknown, "approve"},
		{"1234", domain.CommandUnknown, "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Type != tt.wantType {
				t.Fatalf("expected %s, got %s", tt.wantType, cmd.Type)
			}
			if cmd.Payload != tt.wantPayload {
				t.Fatalf("expected payload %q, got %q", tt.wantPayload, cmd.Payload)
			}
		})
	}
}

func TestCLINotifier(t *testing.T) {
	var lines []string
	n := NewCLINotifier(logger.New(logger.LevelOff, nil), func(format string, a ...interface{}) {
		lines = append(lines, format)
	})

	if err := n.Notify(context.Background(), "pickup soon"); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := n.NotifyUrgent(context.Background(), "late"); err != nil {
		t.Fatalf("notify urgent: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
}
