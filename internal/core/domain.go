package core

import (
	"errors"
	"fmt"
	"slices"
)

type (
	// Amount is a whole-unit quantity of money. There is no currency or
	// fractional part.
	Amount int64

	// ExpenseEntry is the running total recorded under one label of a category.
	ExpenseEntry struct {
		Label  string
		Amount Amount
	}

	// Category is a named spending bucket. Expenses are kept in the order their
	// labels were first used.
	Category struct {
		Name       string
		Limit      Amount
		LimitSet   bool // false until a limit has been assigned
		TotalSpent Amount
		Expenses   []ExpenseEntry

		index map[string]int // label -> position in Expenses
	}
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoBudgetLimit     = errors.New("no budget limit set")

	// ErrBalanceOverflow is an ErrInvalidAmount for income the balance cannot hold.
	ErrBalanceOverflow = fmt.Errorf("%w: balance would overflow", ErrInvalidAmount)
)

func (a Amount) Validate() error {
	if a < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func newCategory(name string) *Category {
	return &Category{
		Name:  name,
		index: make(map[string]int),
	}
}

func (c *Category) setLimit(limit Amount) {
	c.Limit = limit
	c.LimitSet = true
}

// record adds amount to the category total and to the entry for label,
// creating the entry on first use.
func (c *Category) record(label string, amount Amount) ExpenseEntry {
	c.TotalSpent += amount
	if i, ok := c.index[label]; ok {
		c.Expenses[i].Amount += amount
		return c.Expenses[i]
	}
	c.index[label] = len(c.Expenses)
	c.Expenses = append(c.Expenses, ExpenseEntry{Label: label, Amount: amount})
	return c.Expenses[len(c.Expenses)-1]
}

// Exceeded reports whether spending is strictly above the limit.
// Spending equal to the limit is within budget.
func (c *Category) Exceeded() bool {
	return c.TotalSpent > c.Limit
}

// snapshot returns a detached copy safe to hand to callers.
func (c *Category) snapshot() Category {
	return Category{
		Name:       c.Name,
		Limit:      c.Limit,
		LimitSet:   c.LimitSet,
		TotalSpent: c.TotalSpent,
		Expenses:   slices.Clone(c.Expenses),
	}
}
