package core

// Status is the outcome of comparing a category's spend to its limit.
type Status string

const (
	WithinBudget   Status = "Within Budget"
	ExceededBudget Status = "Exceeded Budget"
)

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Amount
}

// BudgetStatus compares a single category's spend with its limit.
type BudgetStatus struct {
	Category     string
	Spent        Amount
	Limit        Amount
	WithinBudget bool
}

// ExpenseResult is returned by a successful RecordExpense.
type ExpenseResult struct {
	Balance       Amount
	CategoryTotal Amount
	Entry         ExpenseEntry
}

// CategoryReport is one category line of a Report.
type CategoryReport struct {
	Name        string
	TotalSpent  Amount
	BudgetLimit Amount
	Status      Status
	Expenses    []ExpenseEntry
}

// Report is a full snapshot of the ledger, categories in insertion order.
type Report struct {
	Balance    Amount
	Categories []CategoryReport
}

func statusOf(c *Category) Status {
	if c.Exceeded() {
		return ExceededBudget
	}
	return WithinBudget
}
