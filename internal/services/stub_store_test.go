package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"fintrack/internal/core"
)

// stubStore is an in-memory Store used by service tests.
type stubStore struct {
	mu       sync.Mutex
	expenses []core.Expense
	income   []core.Income
	budgets  map[core.Category]core.Budget
	nextID   int64
	err      error // forced failure for every operation when set
}

func newStubStore() *stubStore {
	return &stubStore{budgets: make(map[core.Category]core.Budget)}
}

func (s *stubStore) AddExpense(_ context.Context, e core.NewExpense) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return core.Expense{}, s.err
	}
	s.nextID++
	saved := core.Expense{
		ID:            s.nextID,
		Date:          e.Date,
		Amount:        e.Amount,
		Description:   e.Description,
		Category:      e.Category,
		PaymentMethod: e.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}
	s.expenses = append(s.expenses, saved)
	return saved, nil
}

func (s *stubStore) AddIncome(_ context.Context, in core.NewIncome) (core.Income, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return core.Income{}, s.err
	}
	s.nextID++
	saved := core.Income{
		ID:        s.nextID,
		Date:      in.Date,
		Amount:    in.Amount,
		Source:    in.Source,
		CreatedAt: time.Now().UTC(),
	}
	s.income = append(s.income, saved)
	return saved, nil
}

func (s *stubStore) SetBudget(_ context.Context, b core.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.budgets[b.Category] = b
	return nil
}

func (s *stubStore) GetBudgets(_ context.Context) ([]core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := make([]core.Budget, 0, len(s.budgets))
	for _, b := range s.budgets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (s *stubStore) GetExpenses(_ context.Context, rng core.DateRange) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []core.Expense
	for _, e := range s.expenses {
		if rng.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubStore) GetIncome(_ context.Context, rng core.DateRange) ([]core.Income, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var out []core.Income
	for _, in := range s.income {
		if rng.Contains(in.Date) {
			out = append(out, in)
		}
	}
	return out, nil
}

func (s *stubStore) GetCategoryTotals(_ context.Context, rng core.DateRange) ([]core.CategoryTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	sums := make(map[core.Category]int64)
	for _, e := range s.expenses {
		if rng.Contains(e.Date) {
			sums[e.Category] += e.Amount.Cents
		}
	}
	var out []core.CategoryTotal
	for cat, cents := range sums {
		out = append(out, core.CategoryTotal{Category: cat, Total: core.Money{Cents: cents}})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total.Cents > out[j].Total.Cents })
	return out, nil
}

func (s *stubStore) GetDailyTotals(_ context.Context, rng core.DateRange) ([]core.DailyTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	sums := make(map[string]int64)
	for _, e := range s.expenses {
		if rng.Contains(e.Date) {
			sums[e.Date.String()] += e.Amount.Cents
		}
	}
	var out []core.DailyTotal
	for day, cents := range sums {
		d, _ := core.ParseDate(day)
		out = append(out, core.DailyTotal{Date: d, Total: core.Money{Cents: cents}})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out, nil
}

func (s *stubStore) GetPaymentMethodTotals(_ context.Context, rng core.DateRange) ([]core.PaymentMethodTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	sums := make(map[core.PaymentMethod]int64)
	for _, e := range s.expenses {
		if rng.Contains(e.Date) {
			sums[e.PaymentMethod] += e.Amount.Cents
		}
	}
	var out []core.PaymentMethodTotal
	for method, cents := range sums {
		out = append(out, core.PaymentMethodTotal{Method: method, Total: core.Money{Cents: cents}})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total.Cents > out[j].Total.Cents })
	return out, nil
}

// stubSuggester returns a fixed suggestion.
type stubSuggester struct {
	category   core.Category
	confidence float64
}

func (s stubSuggester) Suggest(string) (core.Category, float64) {
	return s.category, s.confidence
}
