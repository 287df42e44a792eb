package core

import (
	"errors"
	"testing"
)

func TestAmountValidate(t *testing.T) {
	cases := []struct {
		a  Amount
		ok bool
	}{
		{0, true},
		{1, true},
		{1 << 40, true},
		{-1, false},
	}
	for i, tc := range cases {
		err := tc.a.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("case %d expected ErrInvalidAmount, got %v", i, err)
		}
	}
}

func TestCategoryRecordAccumulatesLabels(t *testing.T) {
	c := newCategory("Food")
	c.record("Lunch", 10)
	c.record("Dinner", 5)
	got := c.record("Lunch", 7)

	if got.Amount != 17 {
		t.Fatalf("expected Lunch total 17, got %d", got.Amount)
	}
	if c.TotalSpent != 22 {
		t.Fatalf("expected total 22, got %d", c.TotalSpent)
	}
	if len(c.Expenses) != 2 || c.Expenses[0].Label != "Lunch" || c.Expenses[1].Label != "Dinner" {
		t.Fatalf("unexpected entries: %+v", c.Expenses)
	}
}

func TestCategorySnapshotIsDetached(t *testing.T) {
	c := newCategory("Food")
	c.record("Lunch", 10)
	snap := c.snapshot()
	snap.Expenses[0].Amount = 999
	if c.Expenses[0].Amount != 10 {
		t.Fatalf("snapshot shares storage with category")
	}
}
