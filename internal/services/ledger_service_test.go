package services

import (
	"context"
	"errors"
	"testing"

	"budgetbook/internal/amqp"
	"budgetbook/internal/core"
)

type fakePublisher struct {
	events []*amqp.LedgerEvent
	err    error
	closed bool
}

func (f *fakePublisher) Publish(_ context.Context, e *amqp.LedgerEvent) error {
	f.events = append(f.events, e)
	return f.err
}

func (f *fakePublisher) Close() error {
	f.closed = true
	return nil
}

func (f *fakePublisher) kinds() []amqp.EventKind {
	var out []amqp.EventKind
	for _, e := range f.events {
		out = append(out, e.Kind)
	}
	return out
}

func TestLedgerService_PublishesOnSuccess(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	svc := NewLedgerService(core.NewLedger(), pub, nil)

	if err := svc.AddIncome(ctx, 100); err != nil {
		t.Fatalf("add income: %v", err)
	}
	if err := svc.CreateCategory(ctx, "Food", 50); err != nil {
		t.Fatalf("create category: %v", err)
	}
	if err := svc.SetBudget(ctx, "Fun", 5); err != nil {
		t.Fatalf("set budget: %v", err)
	}
	res, err := svc.RecordExpense(ctx, "Food", "Lunch", 30)
	if err != nil {
		t.Fatalf("record expense: %v", err)
	}
	if res.Balance != 70 || svc.Balance() != 70 {
		t.Fatalf("unexpected balance: %+v", res)
	}

	want := []amqp.EventKind{
		amqp.EventIncomeAdded,
		amqp.EventCategoryCreated,
		amqp.EventBudgetSet,
		amqp.EventExpenseRecorded,
	}
	got := pub.kinds()
	if len(got) != len(want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, got)
		}
	}

	last := pub.events[3]
	if last.Category != "Food" || last.Label != "Lunch" || last.Amount != 30 || last.Balance != 70 {
		t.Fatalf("unexpected expense event: %+v", last)
	}
}

func TestLedgerService_BudgetExceededEvent(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	svc := NewLedgerService(core.NewLedger(), pub, nil)

	_ = svc.AddIncome(ctx, 100)
	_ = svc.CreateCategory(ctx, "Food", 50)
	_, _ = svc.RecordExpense(ctx, "Food", "Lunch", 50)
	if n := len(pub.events); n != 3 {
		t.Fatalf("spend equal to the limit must not emit budget.exceeded, got %v", pub.kinds())
	}

	_, _ = svc.RecordExpense(ctx, "Food", "Dinner", 5)
	last := pub.events[len(pub.events)-1]
	if last.Kind != amqp.EventBudgetExceeded || last.Amount != 5 || last.Category != "Food" {
		t.Fatalf("expected budget.exceeded over by 5, got %+v", last)
	}
}

func TestLedgerService_RejectionsPublishNothing(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	svc := NewLedgerService(core.NewLedger(), pub, nil)

	if err := svc.AddIncome(ctx, -1); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := svc.RecordExpense(ctx, "Travel", "Taxi", 10); !errors.Is(err, core.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if _, err := svc.BudgetStatus(ctx, "Travel"); !errors.Is(err, core.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if len(pub.events) != 0 {
		t.Fatalf("rejected calls published %v", pub.kinds())
	}
}

func TestLedgerService_PublishFailureDoesNotFailCall(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewLedgerService(core.NewLedger(), pub, nil)

	if err := svc.AddIncome(ctx, 10); err != nil {
		t.Fatalf("publish failure leaked into the call: %v", err)
	}
	if svc.Balance() != 10 {
		t.Fatalf("expected balance 10, got %d", svc.Balance())
	}
}

func TestLedgerService_NilPublisher(t *testing.T) {
	ctx := context.Background()
	svc := NewLedgerService(core.NewLedger(), nil, nil)

	if err := svc.AddIncome(ctx, 10); err != nil {
		t.Fatalf("add income: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("Close should not return error without a publisher: %v", err)
	}
}

func TestLedgerService_Close(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewLedgerService(core.NewLedger(), pub, nil)
	if err := svc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !pub.closed {
		t.Fatal("publisher was not closed")
	}
}

func TestLedgerService_ReadsPassThrough(t *testing.T) {
	ctx := context.Background()
	svc := NewLedgerService(core.NewLedger(), nil, nil)
	_ = svc.AddIncome(ctx, 100)
	_ = svc.CreateCategory(ctx, "Food", 50)
	_ = svc.CreateCategory(ctx, "Fun", 50)
	_, _ = svc.RecordExpense(ctx, "Fun", "Game", 20)

	if got := svc.Categories(); len(got) != 2 || got[0] != "Food" {
		t.Fatalf("unexpected categories: %v", got)
	}
	if snap := svc.ChartableSnapshot(); len(snap) != 1 || snap[0].Name != "Fun" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if checks := svc.BudgetCheck(); len(checks) != 2 {
		t.Fatalf("unexpected budget check: %+v", checks)
	}
	if r := svc.Report(); r.Balance != 80 || len(r.Categories) != 2 {
		t.Fatalf("unexpected report: %+v", r)
	}
}
