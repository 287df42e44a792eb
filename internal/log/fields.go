package log

import (
	"errors"

	"budgetbook/internal/core"
)

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldSuccess   = "success"
	FieldError     = "error"
	FieldErrorType = "error_type"
	FieldCategory  = "category"
	FieldLabel     = "label"
	FieldAmount    = "amount"
	FieldLimit     = "limit"
	FieldBalance   = "balance"
	FieldSpent     = "spent"
	FieldEventID   = "event_id"
	FieldEventKind = "event_kind"
	FieldExchange  = "exchange"
	FieldPath      = "path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentMenu    = "menu"
	ComponentChart   = "chart"
	ComponentSeed    = "seed"
	ComponentAMQP    = "amqp"
	ComponentConfig  = "config"
	ComponentService = "service"
)

// Operations defines standard operation names
const (
	OpAddIncome      = "add_income"
	OpBalance        = "balance"
	OpCreateCategory = "create_category"
	OpSetBudget      = "set_budget"
	OpRecordExpense  = "record_expense"
	OpBudgetStatus   = "budget_status"
	OpBudgetCheck    = "budget_check"
	OpReport         = "report"
	OpChart          = "chart"
	OpSeed           = "seed"
	OpPublish        = "publish"
	OpStartup        = "startup"
	OpShutdown       = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeNetwork       = "network_error"
	ErrorTypeNotFound      = "not_found_error"
	ErrorTypeConflict      = "conflict_error"
	ErrorTypeFunds         = "insufficient_funds_error"
	ErrorTypeInternal      = "internal_error"
)

// ErrorType classifies a ledger error for the error_type log field.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidAmount), errors.Is(err, core.ErrNoBudgetLimit):
		return ErrorTypeValidation
	case errors.Is(err, core.ErrUnknownCategory):
		return ErrorTypeNotFound
	case errors.Is(err, core.ErrDuplicateCategory):
		return ErrorTypeConflict
	case errors.Is(err, core.ErrInsufficientFunds):
		return ErrorTypeFunds
	default:
		return ErrorTypeInternal
	}
}

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds the error message and its classification
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
		f[FieldErrorType] = ErrorType(err)
	}
	return f
}

// WithCategory adds category and, when set, label fields
func (f LogFields) WithCategory(category, label string) LogFields {
	f[FieldCategory] = category
	if label != "" {
		f[FieldLabel] = label
	}
	return f
}

// WithAmount adds amount field
func (f LogFields) WithAmount(amount core.Amount) LogFields {
	f[FieldAmount] = int64(amount)
	return f
}

// WithBalance adds balance field
func (f LogFields) WithBalance(balance core.Amount) LogFields {
	f[FieldBalance] = int64(balance)
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
