// Package services holds the application boundary in front of the ledger
// store. User input is validated here, before anything reaches storage;
// storage errors propagate to the caller; categorizer suggestions never fail.
package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/core"
	"fintrack/internal/export"
)

// Ports for the ledger store and the categorizer.
type (
	Store interface {
		AddExpense(ctx context.Context, e core.NewExpense) (core.Expense, error)
		AddIncome(ctx context.Context, in core.NewIncome) (core.Income, error)
		SetBudget(ctx context.Context, b core.Budget) error
		GetBudgets(ctx context.Context) ([]core.Budget, error)
		GetExpenses(ctx context.Context, rng core.DateRange) ([]core.Expense, error)
		GetIncome(ctx context.Context, rng core.DateRange) ([]core.Income, error)
		GetCategoryTotals(ctx context.Context, rng core.DateRange) ([]core.CategoryTotal, error)
		GetDailyTotals(ctx context.Context, rng core.DateRange) ([]core.DailyTotal, error)
		GetPaymentMethodTotals(ctx context.Context, rng core.DateRange) ([]core.PaymentMethodTotal, error)
	}

	Suggester interface {
		Suggest(description string) (core.Category, float64)
	}
)

// Form types carry raw user input. Parsing and validation happen in the
// service; a validation error aborts the operation before any write.
type (
	ExpenseForm struct {
		Date          string // YYYY-MM-DD, empty means today
		Amount        string
		Description   string
		Category      string
		PaymentMethod string // empty means Cash
	}

	IncomeForm struct {
		Date   string // YYYY-MM-DD, empty means today
		Amount string
		Source string
	}

	BudgetForm struct {
		Category  string
		Amount    string
		MonthYear string // YYYY-MM, empty means current month
	}
)

type LedgerService struct {
	store     Store
	suggester Suggester
}

func NewLedgerService(store Store, suggester Suggester) *LedgerService {
	return &LedgerService{store: store, suggester: suggester}
}

// AddExpense validates the form and persists a new expense record.
func (s *LedgerService) AddExpense(ctx context.Context, form ExpenseForm) (core.Expense, error) {
	date, err := parseDateOrToday(form.Date)
	if err != nil {
		return core.Expense{}, err
	}
	amount, err := core.ParseAmount(form.Amount)
	if err != nil {
		return core.Expense{}, err
	}
	method := core.PaymentMethod(strings.TrimSpace(form.PaymentMethod))
	if method == "" {
		method = core.PaymentCash
	}

	e := core.NewExpense{
		Date:          date,
		Amount:        amount,
		Description:   strings.TrimSpace(form.Description),
		Category:      core.Category(strings.TrimSpace(form.Category)),
		PaymentMethod: method,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	return s.store.AddExpense(ctx, e)
}

// AddIncome validates the form and persists a new income record.
func (s *LedgerService) AddIncome(ctx context.Context, form IncomeForm) (core.Income, error) {
	date, err := parseDateOrToday(form.Date)
	if err != nil {
		return core.Income{}, err
	}
	amount, err := core.ParseAmount(form.Amount)
	if err != nil {
		return core.Income{}, err
	}

	in := core.NewIncome{
		Date:   date,
		Amount: amount,
		Source: strings.TrimSpace(form.Source),
	}
	if err := in.Validate(); err != nil {
		return core.Income{}, err
	}
	return s.store.AddIncome(ctx, in)
}

// SetBudget validates the form and upserts the category's budget row.
func (s *LedgerService) SetBudget(ctx context.Context, form BudgetForm) (core.Budget, error) {
	amount, err := core.ParseAmount(form.Amount)
	if err != nil {
		return core.Budget{}, err
	}
	monthYear := strings.TrimSpace(form.MonthYear)
	if monthYear == "" {
		monthYear = core.Today().MonthYear()
	}

	b := core.Budget{
		Category:  core.Category(strings.TrimSpace(form.Category)),
		Amount:    amount,
		MonthYear: monthYear,
	}
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}
	if err := s.store.SetBudget(ctx, b); err != nil {
		return core.Budget{}, err
	}
	return b, nil
}

func (s *LedgerService) Expenses(ctx context.Context, rng core.DateRange) ([]core.Expense, error) {
	return s.store.GetExpenses(ctx, rng)
}

func (s *LedgerService) Income(ctx context.Context, rng core.DateRange) ([]core.Income, error) {
	return s.store.GetIncome(ctx, rng)
}

func (s *LedgerService) CategoryTotals(ctx context.Context, rng core.DateRange) ([]core.CategoryTotal, error) {
	return s.store.GetCategoryTotals(ctx, rng)
}

func (s *LedgerService) Budgets(ctx context.Context) ([]core.Budget, error) {
	return s.store.GetBudgets(ctx)
}

// Report assembles the analytics view for a date range. The four read
// queries are independent, so they fan out concurrently.
func (s *LedgerService) Report(ctx context.Context, rng core.DateRange) (core.Report, error) {
	report := core.Report{Range: rng}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		expenses, err := s.store.GetExpenses(gctx, rng)
		report.Expenses = expenses
		return err
	})
	g.Go(func() error {
		totals, err := s.store.GetCategoryTotals(gctx, rng)
		report.ByCategory = totals
		return err
	})
	g.Go(func() error {
		totals, err := s.store.GetDailyTotals(gctx, rng)
		report.ByDay = totals
		return err
	})
	g.Go(func() error {
		totals, err := s.store.GetPaymentMethodTotals(gctx, rng)
		report.ByPaymentMethod = totals
		return err
	})

	if err := g.Wait(); err != nil {
		return core.Report{}, fmt.Errorf("assemble report: %w", err)
	}
	return report, nil
}

// BudgetStatuses compares every stored budget against the actual spending
// of its own month.
func (s *LedgerService) BudgetStatuses(ctx context.Context) ([]core.BudgetStatus, error) {
	budgets, err := s.store.GetBudgets(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]core.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		rng, err := monthRange(b.MonthYear)
		if err != nil {
			return nil, fmt.Errorf("budget %s: %w", b.Category, err)
		}
		totals, err := s.store.GetCategoryTotals(ctx, rng)
		if err != nil {
			return nil, err
		}
		var spent core.Money
		for _, t := range totals {
			if t.Category == b.Category {
				spent = t.Total
				break
			}
		}
		statuses = append(statuses, core.BudgetStatus{
			Budget:    b,
			Spent:     spent,
			Remaining: b.Amount.Sub(spent),
		})
	}
	return statuses, nil
}

// SuggestCategory asks the categorizer for a suggestion. Best-effort: the
// result is always a usable category.
func (s *LedgerService) SuggestCategory(description string) (core.Category, float64) {
	return s.suggester.Suggest(description)
}

// ExportCSV writes the filtered expense set to w in the export format.
func (s *LedgerService) ExportCSV(ctx context.Context, rng core.DateRange, w io.Writer) (int, error) {
	expenses, err := s.store.GetExpenses(ctx, rng)
	if err != nil {
		return 0, err
	}
	if err := export.WriteCSV(w, expenses); err != nil {
		return 0, err
	}
	return len(expenses), nil
}

func parseDateOrToday(s string) (core.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Today(), nil
	}
	return core.ParseDate(s)
}

// monthRange expands a YYYY-MM key into the closed interval covering the
// whole month.
func monthRange(monthYear string) (core.DateRange, error) {
	t, err := time.Parse("2006-01", monthYear)
	if err != nil {
		return core.DateRange{}, core.ErrInvalidMonthYear
	}
	start := core.NewDate(t.Year(), int(t.Month()), 1)
	end := core.Date{Time: start.AddDate(0, 1, -1)}
	return core.DateRange{Start: start, End: end}, nil
}
