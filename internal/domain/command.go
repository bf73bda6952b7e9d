package domain

// CommandType classifies what the operator wants the desk to do.
type CommandType int

const (
	CommandUnknown CommandType = iota
	CommandList
	CommandShow
	CommandApprove
	CommandComplete
	CommandCancel
	CommandReopen
	CommandReschedule
	CommandReview
	CommandQuote
	CommandReport
	CommandUpcoming
	CommandHelp
	CommandQuit
)

// String returns a human-readable command type.
func (c CommandType) String() string {
	switch c {
	case CommandList:
		return "list"
	case CommandShow:
		return "show"
	case CommandApprove:
		return "approve"
	case CommandComplete:
		return "complete"
	case CommandCancel:
		return "cancel"
	case CommandReopen:
		return "reopen"
	case CommandReschedule:
		return "reschedule"
	case CommandReview:
		return "review"
	case CommandQuote:
		return "quote"
	case CommandReport:
		return "report"
	case CommandUpcoming:
		return "upcoming"
	case CommandHelp:
		return "help"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a parsed operator action.
type Command struct {
	Type    CommandType
	Payload string // argument text, e.g. an order reference or a range name
}
