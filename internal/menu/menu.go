// Package menu is the line-based front end of the ledger. It reads choices and
// values from an input stream, runs exactly one ledger operation per accepted
// input and prints the outcome.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"budgetbook/internal/chart"
	"budgetbook/internal/core"
	"budgetbook/internal/log"
)

// Ledger is what the menu drives.
type Ledger interface {
	AddIncome(ctx context.Context, amount core.Amount) error
	Balance() core.Amount
	CreateCategory(ctx context.Context, name string, limit core.Amount) error
	SetBudget(ctx context.Context, name string, limit core.Amount) error
	RecordExpense(ctx context.Context, category, label string, amount core.Amount) (core.ExpenseResult, error)
	BudgetCheck() []core.BudgetStatus
	Report() core.Report
	ChartableSnapshot() []core.CategoryAmount
	Categories() []string
}

// Chart draws the spending snapshot.
type Chart interface {
	Render(w io.Writer, data []core.CategoryAmount) error
}

const (
	msgInvalidNumber = "Invalid input. Please enter a valid number."
	msgEmptyName     = "Invalid input. Name cannot be empty."
)

const options = `
Options:
0. Add your money
1. Know your money
2. Add category
3. Add expense
4. Set budget
5. Check budget
6. Visualize expenses
7. Show report
8. Exit
`

// errQuit ends the session, either on request or because input ran out.
var errQuit = errors.New("quit")

// Session is one interactive run of the menu over an input and output stream.
type Session struct {
	ledger Ledger
	chart  Chart
	in     io.Reader
	out    io.Writer
	lines  chan string
	done   chan struct{} // closed when the input pump exits
}

// New returns a session that drives ledger and draws with c.
func New(ledger Ledger, c Chart, in io.Reader, out io.Writer) *Session {
	return &Session{
		ledger: ledger,
		chart:  c,
		in:     in,
		out:    out,
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// The input pump is released when Run returns.
func (s *Session) Run(ctx context.Context) error {
	logger := log.FromContext(ctx).WithComponent(log.ComponentMenu)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.lines = make(chan string)
	s.done = make(chan struct{})
	go s.pump(ctx)

	for {
		s.printf("%s", options)
		choice, err := s.prompt(ctx, "Enter choice: ")
		if err != nil {
			return s.finish(ctx, logger, err)
		}

		switch strings.TrimSpace(choice) {
		case "0":
			err = s.addIncome(ctx)
		case "1":
			s.printf("Your remaining balance is: %d\n", s.ledger.Balance())
		case "2":
			err = s.addCategory(ctx)
		case "3":
			err = s.addExpense(ctx)
		case "4":
			err = s.setBudget(ctx)
		case "5":
			s.checkBudget()
		case "6":
			s.visualize(logger)
		case "7":
			s.report()
		case "8":
			s.printf("Exiting...\n")
			return nil
		default:
			s.printf("Invalid choice. Please try again.\n")
		}
		if err != nil {
			return s.finish(ctx, logger, err)
		}
	}
}

func (s *Session) finish(ctx context.Context, logger *log.Logger, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Info("Menu interrupted", "reason", ctxErr)
		return ctxErr
	}
	if errors.Is(err, errQuit) {
		logger.Info("Input closed, leaving menu")
		return nil
	}
	return err
}

// pump feeds input lines to the session so a blocked read never prevents
// cancellation from being noticed.
func (s *Session) pump(ctx context.Context) {
	defer close(s.done)
	defer close(s.lines)
	sc := bufio.NewScanner(s.in)
	for sc.Scan() {
		select {
		case s.lines <- sc.Text():
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session) prompt(ctx context.Context, text string) (string, error) {
	s.printf("%s", text)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", errQuit
		}
		return line, nil
	}
}

// promptAmount returns ok=false, after telling the user, when the input is not
// a whole number.
func (s *Session) promptAmount(ctx context.Context, text string) (core.Amount, bool, error) {
	line, err := s.prompt(ctx, text)
	if err != nil {
		return 0, false, err
	}
	amount, err := core.ParseAmount(line)
	if err != nil {
		s.printf("%s\n", msgInvalidNumber)
		return 0, false, nil
	}
	return amount, true, nil
}

func (s *Session) promptName(ctx context.Context, text string) (string, bool, error) {
	line, err := s.prompt(ctx, text)
	if err != nil {
		return "", false, err
	}
	name := strings.TrimSpace(line)
	if name == "" {
		s.printf("%s\n", msgEmptyName)
		return "", false, nil
	}
	return name, true, nil
}

func (s *Session) addIncome(ctx context.Context) error {
	amount, ok, err := s.promptAmount(ctx, "Enter money amount: ")
	if !ok || err != nil {
		return err
	}
	if err := s.ledger.AddIncome(ctx, amount); err != nil {
		if errors.Is(err, core.ErrBalanceOverflow) {
			s.printf("Error: Income is too large for your balance.\n")
			return nil
		}
		s.printError(err, "Error: Income cannot be negative.")
		return nil
	}
	s.printf("Income increased by %d. Total balance: %d\n", amount, s.ledger.Balance())
	return nil
}

func (s *Session) addCategory(ctx context.Context) error {
	name, ok, err := s.promptName(ctx, "Enter category name: ")
	if !ok || err != nil {
		return err
	}
	limit, ok, err := s.promptAmount(ctx, "Enter total budget amount: ")
	if !ok || err != nil {
		return err
	}
	if err := s.ledger.CreateCategory(ctx, name, limit); err != nil {
		s.printError(err, "Error: Budget limit must be a positive value.")
		return nil
	}
	s.printf("Category '%s' added with a budget of %d.\n", name, limit)
	return nil
}

func (s *Session) addExpense(ctx context.Context) error {
	category, ok, err := s.promptName(ctx, "Enter category name for expense: ")
	if !ok || err != nil {
		return err
	}
	label, ok, err := s.promptName(ctx, "Enter expense name: ")
	if !ok || err != nil {
		return err
	}
	amount, ok, err := s.promptAmount(ctx, "Amount expense: ")
	if !ok || err != nil {
		return err
	}

	res, err := s.ledger.RecordExpense(ctx, category, label, amount)
	switch {
	case err == nil:
		s.printf("Your remaining balance is '%d'.\n", res.Balance)
		s.printf("You expensed '%d' for '%s'. Now the total expense for this category is '%d'.\n",
			amount, label, res.CategoryTotal)
	case errors.Is(err, core.ErrUnknownCategory):
		s.printf("Sorry, we don't have this category.\n")
		if hint, ok := suggest(category, s.ledger.Categories()); ok {
			s.printf("Did you mean '%s'?\n", hint)
		}
	case errors.Is(err, core.ErrInsufficientFunds):
		s.printf("Insufficient funds! You only have '%d', but you're trying to expense '%d'.\n",
			s.ledger.Balance(), amount)
	default:
		s.printError(err, "Error: Expense amount cannot be negative.")
	}
	return nil
}

func (s *Session) setBudget(ctx context.Context) error {
	name, ok, err := s.promptName(ctx, "Enter category name to set budget: ")
	if !ok || err != nil {
		return err
	}
	limit, ok, err := s.promptAmount(ctx, "Enter the budget limit: ")
	if !ok || err != nil {
		return err
	}
	if err := s.ledger.SetBudget(ctx, name, limit); err != nil {
		s.printError(err, "Error: Budget limit must be positive.")
		return nil
	}
	s.printf("Budget for %s set at %d.\n", name, limit)
	return nil
}

func (s *Session) checkBudget() {
	s.printf("\nBudget Check:\n")
	checks := s.ledger.BudgetCheck()
	if len(checks) == 0 {
		s.printf("No budgets set.\n")
		return
	}
	for _, st := range checks {
		if st.WithinBudget {
			s.printf("%s is within budget. Spent: %d, Budget: %d\n", st.Category, st.Spent, st.Limit)
		} else {
			s.printf("Warning: %s exceeded the budget. Spent: %d, Budget: %d\n", st.Category, st.Spent, st.Limit)
		}
	}
}

func (s *Session) visualize(logger *log.Logger) {
	err := s.chart.Render(s.out, s.ledger.ChartableSnapshot())
	switch {
	case errors.Is(err, chart.ErrNothingToChart):
		s.printf("No expenses to display.\n")
	case err != nil:
		logger.Error("Failed to render chart", log.FieldOperation, log.OpChart, log.FieldError, err)
		s.printf("Could not draw the chart.\n")
	}
}

func (s *Session) report() {
	r := s.ledger.Report()
	s.printf("\n--- Expense Report ---\n")
	s.printf("Remaining Balance: %d\n", r.Balance)
	s.printf("Categories:\n")
	for _, c := range r.Categories {
		s.printf("  %s:\n", c.Name)
		s.printf("    - Total Expenses: %d\n", c.TotalSpent)
		s.printf("    - Budget Limit: %d\n", c.BudgetLimit)
		s.printf("    - Status: %s\n", c.Status)
		for _, e := range c.Expenses {
			s.printf("      - %s: %d\n", e.Label, e.Amount)
		}
	}
	s.printf("-----------------------\n")
}

// printError prints the message for the ledger errors a prompt can trigger.
// negative is the wording used for ErrInvalidAmount at that prompt.
func (s *Session) printError(err error, negative string) {
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		s.printf("%s\n", negative)
	case errors.Is(err, core.ErrDuplicateCategory):
		s.printf("This category already exists.\n")
	default:
		s.printf("Error: %v\n", err)
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
