package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventKind names what happened in the ledger. It doubles as the routing-key
// suffix when the event is published.
type EventKind string

const (
	EventIncomeAdded     EventKind = "income.added"
	EventCategoryCreated EventKind = "category.created"
	EventBudgetSet       EventKind = "budget.set"
	EventExpenseRecorded EventKind = "expense.recorded"
	EventBudgetExceeded  EventKind = "budget.exceeded"
)

// LedgerEvent is a notification about one successful ledger mutation.
// Amounts are whole units, matching the ledger.
type LedgerEvent struct {
	ID        uuid.UUID `json:"id"`
	Kind      EventKind `json:"kind"`
	Category  string    `json:"category,omitempty"`
	Label     string    `json:"label,omitempty"`
	Amount    int64     `json:"amount"`
	Balance   int64     `json:"balance"`
	Timestamp time.Time `json:"timestamp"`
}

// NewLedgerEvent creates an event with a fresh id and the current time.
func NewLedgerEvent(kind EventKind) *LedgerEvent {
	return &LedgerEvent{
		ID:        uuid.New(),
		Kind:      kind,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
