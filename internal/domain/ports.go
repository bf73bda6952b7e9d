package domain

import "context"

// OrderStore persists orders. Implementations can be in-memory, an
// embedded key/value store, or the hosted document database.
type OrderStore interface {
	Save(ctx context.Context, order *Order) error
	Load(ctx context.Context, id string) (*Order, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Order, error)
}

// CommandParser converts raw operator input into structured commands.
type CommandParser interface {
	Parse(ctx context.Context, input string) (*Command, error)
}

// Notifier delivers messages to the operator.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
