package core

import (
	"fmt"
	"math"
	"slices"
)

// Ledger holds the running balance and every category of a session.
//
// Each mutating method validates all of its preconditions before touching any
// state, so a call that returns an error leaves the ledger exactly as it was.
// A Ledger is not safe for concurrent use.
type Ledger struct {
	balance    Amount
	categories map[string]*Category
	order      []string
}

// NewLedger returns an empty ledger with a zero balance.
func NewLedger() *Ledger {
	return &Ledger{
		categories: make(map[string]*Category),
	}
}

// AddIncome increases the balance by amount.
func (l *Ledger) AddIncome(amount Amount) error {
	if err := amount.Validate(); err != nil {
		return fmt.Errorf("%w: income %d is negative", err, amount)
	}
	if amount > math.MaxInt64-l.balance {
		return fmt.Errorf("%w: income %d, balance %d", ErrBalanceOverflow, amount, l.balance)
	}
	l.balance += amount
	return nil
}

// Balance returns the money left to spend.
func (l *Ledger) Balance() Amount {
	return l.balance
}

// CreateCategory adds a new category with the given limit. An existing name is
// rejected with ErrDuplicateCategory and left untouched.
func (l *Ledger) CreateCategory(name string, limit Amount) error {
	if err := limit.Validate(); err != nil {
		return fmt.Errorf("%w: budget limit %d is negative", err, limit)
	}
	if _, ok := l.categories[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCategory, name)
	}
	c := newCategory(name)
	c.setLimit(limit)
	l.insert(c)
	return nil
}

// SetBudget assigns a limit to a category, creating it with zero spend if it
// does not exist yet. Spending already recorded is kept.
func (l *Ledger) SetBudget(name string, limit Amount) error {
	if err := limit.Validate(); err != nil {
		return fmt.Errorf("%w: budget limit %d is negative", err, limit)
	}
	c, ok := l.categories[name]
	if !ok {
		c = newCategory(name)
		l.insert(c)
	}
	c.setLimit(limit)
	return nil
}

// RecordExpense spends amount from the balance under category and label.
//
// Checks run in a fixed order: the amount, then the category, then the funds.
// Repeated labels accumulate into a single entry.
func (l *Ledger) RecordExpense(category, label string, amount Amount) (ExpenseResult, error) {
	if err := amount.Validate(); err != nil {
		return ExpenseResult{}, fmt.Errorf("%w: expense %d is negative", err, amount)
	}
	c, ok := l.categories[category]
	if !ok {
		return ExpenseResult{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if amount > l.balance {
		return ExpenseResult{}, fmt.Errorf("%w: balance %d, expense %d", ErrInsufficientFunds, l.balance, amount)
	}

	l.balance -= amount
	entry := c.record(label, amount)
	return ExpenseResult{
		Balance:       l.balance,
		CategoryTotal: c.TotalSpent,
		Entry:         entry,
	}, nil
}

// BudgetStatus compares the spend of one category with its limit.
func (l *Ledger) BudgetStatus(category string) (BudgetStatus, error) {
	c, ok := l.categories[category]
	if !ok {
		return BudgetStatus{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if !c.LimitSet {
		return BudgetStatus{}, fmt.Errorf("%w: %q", ErrNoBudgetLimit, category)
	}
	return budgetStatusOf(c), nil
}

// BudgetCheck returns the status of every category that has a limit, in the
// order the categories were created.
func (l *Ledger) BudgetCheck() []BudgetStatus {
	out := make([]BudgetStatus, 0, len(l.order))
	for _, name := range l.order {
		c := l.categories[name]
		if !c.LimitSet {
			continue
		}
		out = append(out, budgetStatusOf(c))
	}
	return out
}

// Report returns a snapshot of the balance and all categories.
func (l *Ledger) Report() Report {
	r := Report{
		Balance:    l.balance,
		Categories: make([]CategoryReport, 0, len(l.order)),
	}
	for _, name := range l.order {
		c := l.categories[name]
		r.Categories = append(r.Categories, CategoryReport{
			Name:        c.Name,
			TotalSpent:  c.TotalSpent,
			BudgetLimit: c.Limit,
			Status:      statusOf(c),
			Expenses:    slices.Clone(c.Expenses),
		})
	}
	return r
}

// ChartableSnapshot returns the spend of every category with a positive total,
// in creation order. An empty result means there is nothing to chart.
func (l *Ledger) ChartableSnapshot() []CategoryAmount {
	var out []CategoryAmount
	for _, name := range l.order {
		c := l.categories[name]
		if c.TotalSpent > 0 {
			out = append(out, CategoryAmount{Name: c.Name, Amount: c.TotalSpent})
		}
	}
	return out
}

// Categories returns category names in creation order.
func (l *Ledger) Categories() []string {
	return slices.Clone(l.order)
}

// Category returns a copy of the named category.
func (l *Ledger) Category(name string) (Category, bool) {
	c, ok := l.categories[name]
	if !ok {
		return Category{}, false
	}
	return c.snapshot(), true
}

func (l *Ledger) insert(c *Category) {
	l.categories[c.Name] = c
	l.order = append(l.order, c.Name)
}

func budgetStatusOf(c *Category) BudgetStatus {
	return BudgetStatus{
		Category:     c.Name,
		Spent:        c.TotalSpent,
		Limit:        c.Limit,
		WithinBudget: !c.Exceeded(),
	}
}
