// Package command turns operator input into desk commands and delivers
// desk notifications back to the operator.
package command

import (
	"context"
	"regexp"
	"strings"

	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/domain"
	"github.com/gdemmanuel/EBR-Order-Dashboard-sub001/internal/logger"
)

// Compile-time interface check.
var _ domain.CommandParser = (*KeywordParser)(nil)

// KeywordParser matches operator input against keyword patterns. The
// first capture group of a pattern, when present, becomes the payload.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex *regexp.Regexp
	cmd   domain.CommandType
}

// NewKeywordParser creates a keyword-based command parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(?:help|h|\?)$`), domain.CommandHelp},
		{regexp.MustCompile(`(?i)^(?:quit|exit|q)$`), domain.CommandQuit},
		{regexp.MustCompile(`(?i)^(?:list|ls|board|orders)(?:\s+(.+))?$`), domain.CommandList},
		{regexp.MustCompile(`(?i)^(today|tomorrow|week|month|all)$`), domain.CommandList},
		{regexp.MustCompile(`(?i)^(?:show|view|open|o)\s+(.+)$`), domain.CommandShow},
		{regexp.MustCompile(`(?i)^(?:approve|ok|confirm|a)\s+(.+)$`), domain.CommandApprove},
		{regexp.MustCompile(`(?i)^(?:complete|done|picked up|c)\s+(.+)$`), domain.CommandComplete},
		{regexp.MustCompile(`(?i)^(?:cancel|x)\s+(.+)$`), domain.CommandCancel},
		{regexp.MustCompile(`(?i)^(?:reopen|unapprove)\s+(.+)$`), domain.CommandReopen},
		{regexp.MustCompile(`(?i)^(?:move|reschedule)\s+(.+)$`), domain.CommandReschedule},
		{regexp.MustCompile(`(?i)^(?:review|flagged|problems)$`), domain.CommandReview},
		{regexp.MustCompile(`(?i)^(?:quote|price)\s+(.+)$`), domain.CommandQuote},
		{regexp.MustCompile(`(?i)^(?:report|revenue)(?:\s+(.+))?$`), domain.CommandReport},
		{regexp.MustCompile(`(?i)^(?:upcoming|next|soon)$`), domain.CommandUpcoming},
	}
	return p
}

// Parse converts operator input into a command.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Command, error) {
	trimmed := strings.Join(strings.Fields(input), " ")
	if trimmed == "" {
		return &domain.Command{Type: domain.CommandUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	// A bare board number shows that order.
	if len(trimmed) <= 3 && isDigits(trimmed) {
		return &domain.Command{Type: domain.CommandShow, Payload: trimmed}, nil
	}

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched command: %s", rule.cmd)

		payload := ""
		if len(m) > 1 {
			payload = strings.TrimSpace(m[1])
		}
		return &domain.Command{Type: rule.cmd, Payload: payload}, nil
	}

	p.log.Debug("no match, returning unknown command")
	return &domain.Command{Type: domain.CommandUnknown, Payload: trimmed}, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
