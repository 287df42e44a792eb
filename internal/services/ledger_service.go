package services

import (
	"context"
	"fmt"

	"budgetbook/internal/amqp"
	"budgetbook/internal/core"
	"budgetbook/internal/log"
)

// Publisher delivers ledger events to the outside world.
type Publisher interface {
	Publish(ctx context.Context, e *amqp.LedgerEvent) error
	Close() error
}

// LedgerService runs ledger operations, logs their outcome and publishes an
// event for every successful mutation. Publishing is best effort: the ledger
// has already changed by the time an event is sent.
type LedgerService struct {
	ledger    *core.Ledger
	publisher Publisher
	logger    *log.Logger
}

// NewLedgerService wraps ledger. publisher may be nil when events are disabled.
func NewLedgerService(ledger *core.Ledger, publisher Publisher, logger *log.Logger) *LedgerService {
	if logger == nil {
		logger = log.Discard()
	}
	return &LedgerService{
		ledger:    ledger,
		publisher: publisher,
		logger:    logger.WithComponent(log.ComponentService),
	}
}

// AddIncome increases the balance.
func (s *LedgerService) AddIncome(ctx context.Context, amount core.Amount) error {
	fields := log.NewFields().WithOperation(log.OpAddIncome).WithAmount(amount)
	if err := s.ledger.AddIncome(amount); err != nil {
		s.rejected(ctx, fields, err)
		return err
	}
	balance := s.ledger.Balance()
	s.accepted(ctx, fields.WithBalance(balance))

	e := amqp.NewLedgerEvent(amqp.EventIncomeAdded)
	e.Amount, e.Balance = int64(amount), int64(balance)
	s.publish(ctx, e)
	return nil
}

// Balance returns the money left to spend.
func (s *LedgerService) Balance() core.Amount {
	return s.ledger.Balance()
}

// CreateCategory adds a category with a budget limit.
func (s *LedgerService) CreateCategory(ctx context.Context, name string, limit core.Amount) error {
	fields := log.NewFields().WithOperation(log.OpCreateCategory).WithCategory(name, "").WithAmount(limit)
	if err := s.ledger.CreateCategory(name, limit); err != nil {
		s.rejected(ctx, fields, err)
		return err
	}
	s.accepted(ctx, fields)

	e := amqp.NewLedgerEvent(amqp.EventCategoryCreated)
	e.Category, e.Amount, e.Balance = name, int64(limit), int64(s.ledger.Balance())
	s.publish(ctx, e)
	return nil
}

// SetBudget assigns a limit, creating the category if needed.
func (s *LedgerService) SetBudget(ctx context.Context, name string, limit core.Amount) error {
	fields := log.NewFields().WithOperation(log.OpSetBudget).WithCategory(name, "").WithAmount(limit)
	if err := s.ledger.SetBudget(name, limit); err != nil {
		s.rejected(ctx, fields, err)
		return err
	}
	s.accepted(ctx, fields)

	e := amqp.NewLedgerEvent(amqp.EventBudgetSet)
	e.Category, e.Amount, e.Balance = name, int64(limit), int64(s.ledger.Balance())
	s.publish(ctx, e)
	return nil
}

// RecordExpense spends from the balance. When the expense pushes the category
// over its limit a budget.exceeded event follows the expense event.
func (s *LedgerService) RecordExpense(ctx context.Context, category, label string, amount core.Amount) (core.ExpenseResult, error) {
	fields := log.NewFields().WithOperation(log.OpRecordExpense).WithCategory(category, label).WithAmount(amount)
	res, err := s.ledger.RecordExpense(category, label, amount)
	if err != nil {
		s.rejected(ctx, fields, err)
		return res, err
	}
	s.accepted(ctx, fields.WithBalance(res.Balance))

	e := amqp.NewLedgerEvent(amqp.EventExpenseRecorded)
	e.Category, e.Label, e.Amount, e.Balance = category, label, int64(amount), int64(res.Balance)
	s.publish(ctx, e)

	st, err := s.ledger.BudgetStatus(category)
	if err == nil && !st.WithinBudget {
		s.logger.WarnContext(ctx, "Category over budget",
			log.FieldCategory, category,
			log.FieldSpent, int64(st.Spent),
			log.FieldLimit, int64(st.Limit))

		over := amqp.NewLedgerEvent(amqp.EventBudgetExceeded)
		over.Category, over.Amount, over.Balance = category, int64(st.Spent-st.Limit), int64(res.Balance)
		s.publish(ctx, over)
	}
	return res, nil
}

// BudgetStatus compares one category's spend with its limit.
func (s *LedgerService) BudgetStatus(ctx context.Context, category string) (core.BudgetStatus, error) {
	st, err := s.ledger.BudgetStatus(category)
	if err != nil {
		s.rejected(ctx, log.NewFields().WithOperation(log.OpBudgetStatus).WithCategory(category, ""), err)
	}
	return st, err
}

// BudgetCheck returns the status of every category with a limit.
func (s *LedgerService) BudgetCheck() []core.BudgetStatus {
	return s.ledger.BudgetCheck()
}

// Report returns a snapshot of the whole ledger.
func (s *LedgerService) Report() core.Report {
	return s.ledger.Report()
}

// ChartableSnapshot returns categories with positive spend.
func (s *LedgerService) ChartableSnapshot() []core.CategoryAmount {
	return s.ledger.ChartableSnapshot()
}

// Categories returns category names in creation order.
func (s *LedgerService) Categories() []string {
	return s.ledger.Categories()
}

func (s *LedgerService) accepted(ctx context.Context, fields log.LogFields) {
	s.logger.InfoContext(ctx, "Ledger operation applied", fields.ToSlice()...)
}

func (s *LedgerService) rejected(ctx context.Context, fields log.LogFields, err error) {
	s.logger.WarnContext(ctx, "Ledger operation rejected", fields.WithError(err).ToSlice()...)
}

func (s *LedgerService) publish(ctx context.Context, e *amqp.LedgerEvent) {
	if s.publisher == nil {
		s.logger.DebugContext(ctx, "Event publishing disabled, skipping event", log.FieldEventKind, e.Kind)
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish ledger event",
			log.FieldEventID, e.ID.String(),
			log.FieldEventKind, e.Kind,
			log.FieldError, err)
	}
}

// Close closes the publisher, if any.
func (s *LedgerService) Close() error {
	if s.publisher == nil {
		return nil
	}
	if err := s.publisher.Close(); err != nil {
		return fmt.Errorf("close publisher: %w", err)
	}
	return nil
}
