// Package seed loads an optional starting budget plan from YAML and applies it
// to a ledger through the same operations the menu uses.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"budgetbook/internal/core"
)

// Plan is the starting state of a session.
//
//	income: 1200
//	categories:
//	  - name: Food
//	    limit: 300
type Plan struct {
	Income     core.Amount     `yaml:"income"`
	Categories []CategoryLimit `yaml:"categories"`
}

// CategoryLimit is a category to create with its budget limit.
type CategoryLimit struct {
	Name  string       `yaml:"name"`
	Limit *core.Amount `yaml:"limit"`
}

// Target is the subset of ledger operations a plan needs.
type Target interface {
	AddIncome(ctx context.Context, amount core.Amount) error
	CreateCategory(ctx context.Context, name string, limit core.Amount) error
}

var (
	ErrEmptyName    = errors.New("category name is empty")
	ErrMissingLimit = errors.New("category limit is missing")
)

// Load reads a plan from a YAML file.
func Load(path string) (Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return Plan{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return Plan{}, fmt.Errorf("seed file %s: %w", path, err)
	}
	return p, nil
}

// Decode parses a plan. Unknown keys are rejected so typos do not silently
// drop a budget.
func Decode(r io.Reader) (Plan, error) {
	var p Plan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Plan{}, nil
		}
		return Plan{}, fmt.Errorf("decode yaml: %w", err)
	}

	for i, c := range p.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return Plan{}, fmt.Errorf("category #%d: %w", i+1, ErrEmptyName)
		}
		if c.Limit == nil {
			return Plan{}, fmt.Errorf("category %q: %w", name, ErrMissingLimit)
		}
		p.Categories[i].Name = name
	}
	return p, nil
}

// Apply adds the plan's income, then creates its categories in file order.
// It stops at the first rejected entry.
func Apply(ctx context.Context, t Target, p Plan) error {
	if p.Income != 0 {
		if err := t.AddIncome(ctx, p.Income); err != nil {
			return fmt.Errorf("seed income: %w", err)
		}
	}
	for _, c := range p.Categories {
		if err := t.CreateCategory(ctx, c.Name, *c.Limit); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}
	return nil
}
