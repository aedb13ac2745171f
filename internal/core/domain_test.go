package core

import (
	"testing"
	"time"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-09")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.String() != "2025-03-09" {
		t.Fatalf("round trip mismatch: %s", d)
	}
	if d.MonthYear() != "2025-03" {
		t.Fatalf("unexpected month-year: %s", d.MonthYear())
	}

	for _, bad := range []string{"", "2025-3-9", "03/09/2025", "not a date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -100}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestCategoryKnown(t *testing.T) {
	if !CategoryFoodDining.Known() {
		t.Fatalf("expected Food & Dining to be known")
	}
	if Category("Pet Supplies").Known() {
		t.Fatalf("custom category should not be known")
	}
	// Custom categories still validate; only emptiness is rejected.
	if err := Category("Pet Supplies").Validate(); err != nil {
		t.Fatalf("expected custom category ok, got %v", err)
	}
	if err := Category("  ").Validate(); err == nil {
		t.Fatalf("expected error for blank category")
	}
}

func TestNewExpenseValidate(t *testing.T) {
	good := NewExpense{
		Date:          NewDate(2025, 1, 1),
		Amount:        Money{Cents: 100},
		Description:   "ok",
		Category:      CategoryShopping,
		PaymentMethod: PaymentCash,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []NewExpense{
		{Date: Date{}, Amount: Money{Cents: 1}, Description: "a", Category: "c", PaymentMethod: PaymentCash},
		{Date: NewDate(2025, 1, 1), Amount: Money{Cents: 0}, Description: "a", Category: "c", PaymentMethod: PaymentCash},
		{Date: NewDate(2025, 1, 1), Amount: Money{Cents: 1}, Description: "", Category: "c", PaymentMethod: PaymentCash},
		{Date: NewDate(2025, 1, 1), Amount: Money{Cents: 1}, Description: "a", Category: "", PaymentMethod: PaymentCash},
		{Date: NewDate(2025, 1, 1), Amount: Money{Cents: 1}, Description: "a", Category: "c", PaymentMethod: "IOU"},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestNewIncomeValidate(t *testing.T) {
	good := NewIncome{Date: NewDate(2025, 1, 1), Amount: Money{Cents: 100}, Source: "salary"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (NewIncome{Date: NewDate(2025, 1, 1), Amount: Money{Cents: 100}}).Validate(); err == nil {
		t.Fatalf("expected error for empty source")
	}
}

func TestBudgetValidate(t *testing.T) {
	good := Budget{Category: CategoryTravel, Amount: Money{Cents: 50000}, MonthYear: "2025-08"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Budget{
		{Category: "", Amount: Money{Cents: 1}, MonthYear: "2025-08"},
		{Category: "c", Amount: Money{Cents: 0}, MonthYear: "2025-08"},
		{Category: "c", Amount: Money{Cents: 1}, MonthYear: "August 2025"},
		{Category: "c", Amount: Money{Cents: 1}, MonthYear: ""},
	}
	for i, b := range bads {
		if err := b.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDateRangeContains(t *testing.T) {
	rng := DateRange{Start: NewDate(2025, 1, 10), End: NewDate(2025, 1, 20)}
	cases := []struct {
		d  Date
		in bool
	}{
		{NewDate(2025, 1, 10), true}, // inclusive start
		{NewDate(2025, 1, 20), true}, // inclusive end
		{NewDate(2025, 1, 15), true},
		{NewDate(2025, 1, 9), false},
		{NewDate(2025, 1, 21), false},
	}
	for i, tc := range cases {
		if got := rng.Contains(tc.d); got != tc.in {
			t.Fatalf("case %d: Contains(%s) = %v, want %v", i, tc.d, got, tc.in)
		}
	}

	open := DateRange{}
	if !open.Contains(NewDate(1999, 1, 1)) {
		t.Fatalf("unbounded range should contain everything")
	}
}
