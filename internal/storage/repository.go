// Package storage persists ledger records in a local SQLite file.
//
// Every operation maps to a single SQL statement, so each call either fully
// commits or has no effect. No transaction spans multiple calls.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

// createdAtLayout is the stored form of creation timestamps. Second
// precision, so exported records round-trip exactly.
const createdAtLayout = time.RFC3339

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// AddExpense inserts a new expense row and returns the stored record with
// its assigned id and creation timestamp.
func (r *SQLiteRepository) AddExpense(ctx context.Context, e core.NewExpense) (core.Expense, error) {
	createdAt := time.Now().UTC().Truncate(time.Second)

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (date, amount_cents, description, category, payment_method, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Date.String(), e.Amount.Cents, e.Description, string(e.Category), string(e.PaymentMethod),
		createdAt.Format(createdAtLayout))
	if err != nil {
		return core.Expense{}, fmt.Errorf("insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Expense{}, fmt.Errorf("expense insert id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"date", e.Date.String(),
		"amount_cents", e.Amount.Cents,
		"category", e.Category)

	return core.Expense{
		ID:            id,
		Date:          e.Date,
		Amount:        e.Amount,
		Description:   e.Description,
		Category:      e.Category,
		PaymentMethod: e.PaymentMethod,
		CreatedAt:     createdAt,
	}, nil
}

// AddIncome inserts a new income row.
func (r *SQLiteRepository) AddIncome(ctx context.Context, in core.NewIncome) (core.Income, error) {
	createdAt := time.Now().UTC().Truncate(time.Second)

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO income (date, amount_cents, source, created_at)
		VALUES (?, ?, ?, ?)`,
		in.Date.String(), in.Amount.Cents, in.Source, createdAt.Format(createdAtLayout))
	if err != nil {
		return core.Income{}, fmt.Errorf("insert income: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Income{}, fmt.Errorf("income insert id: %w", err)
	}

	slog.InfoContext(ctx, "Income saved", "id", id, "date", in.Date.String(), "amount_cents", in.Amount.Cents)

	return core.Income{
		ID:        id,
		Date:      in.Date,
		Amount:    in.Amount,
		Source:    in.Source,
		CreatedAt: createdAt,
	}, nil
}

// SetBudget inserts or replaces the budget row for the category.
// Last write wins per category.
func (r *SQLiteRepository) SetBudget(ctx context.Context, b core.Budget) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO budgets (category, amount_cents, month_year)
		VALUES (?, ?, ?)
		ON CONFLICT(category) DO UPDATE SET
			amount_cents = excluded.amount_cents,
			month_year = excluded.month_year`,
		string(b.Category), b.Amount.Cents, b.MonthYear)
	if err != nil {
		return fmt.Errorf("upsert budget: %w", err)
	}

	slog.InfoContext(ctx, "Budget set", "category", b.Category, "amount_cents", b.Amount.Cents, "month_year", b.MonthYear)
	return nil
}

// GetBudgets returns all budget rows, one per category.
func (r *SQLiteRepository) GetBudgets(ctx context.Context) ([]core.Budget, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category, amount_cents, month_year FROM budgets ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []core.Budget
	for rows.Next() {
		var (
			category  string
			cents     int64
			monthYear string
		)
		if err := rows.Scan(&category, &cents, &monthYear); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, core.Budget{
			Category:  core.Category(category),
			Amount:    core.Money{Cents: cents},
			MonthYear: monthYear,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return budgets, nil
}

// GetExpenses returns expenses inside the closed date interval, newest date
// first. Rows sharing a date are ordered by id descending, so the most
// recently inserted comes first.
func (r *SQLiteRepository) GetExpenses(ctx context.Context, rng core.DateRange) ([]core.Expense, error) {
	where, args := dateClause(rng)
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, amount_cents, description, category, payment_method, created_at
		FROM expenses`+where+`
		ORDER BY date DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

// GetIncome returns income records inside the closed date interval, newest
// first.
func (r *SQLiteRepository) GetIncome(ctx context.Context, rng core.DateRange) ([]core.Income, error) {
	where, args := dateClause(rng)
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, amount_cents, source, created_at
		FROM income`+where+`
		ORDER BY date DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("query income: %w", err)
	}
	defer rows.Close()

	var incomes []core.Income
	for rows.Next() {
		var (
			in            core.Income
			date, created string
		)
		if err := rows.Scan(&in.ID, &date, &in.Amount.Cents, &in.Source, &created); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("parse income date %q: %w", date, err)
		}
		in.Date = d
		createdAt, err := time.Parse(createdAtLayout, created)
		if err != nil {
			return nil, fmt.Errorf("parse income created_at %q: %w", created, err)
		}
		in.CreatedAt = createdAt
		incomes = append(incomes, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate income: %w", err)
	}
	return incomes, nil
}

// GetCategoryTotals sums expense amounts per category over the interval,
// largest total first. Categories with no matching expenses are omitted.
func (r *SQLiteRepository) GetCategoryTotals(ctx context.Context, rng core.DateRange) ([]core.CategoryTotal, error) {
	where, args := dateClause(rng)
	rows, err := r.db.QueryContext(ctx, `
		SELECT category, SUM(amount_cents) AS total
		FROM expenses`+where+`
		GROUP BY category
		ORDER BY total DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("query category totals: %w", err)
	}
	defer rows.Close()

	var totals []core.CategoryTotal
	for rows.Next() {
		var (
			category string
			cents    int64
		)
		if err := rows.Scan(&category, &cents); err != nil {
			return nil, fmt.Errorf("scan category total: %w", err)
		}
		totals = append(totals, core.CategoryTotal{
			Category: core.Category(category),
			Total:    core.Money{Cents: cents},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category totals: %w", err)
	}
	return totals, nil
}

// GetDailyTotals sums expense amounts per calendar date over the interval,
// oldest date first.
func (r *SQLiteRepository) GetDailyTotals(ctx context.Context, rng core.DateRange) ([]core.DailyTotal, error) {
	where, args := dateClause(rng)
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, SUM(amount_cents) AS total
		FROM expenses`+where+`
		GROUP BY date
		ORDER BY date`, args...)
	if err != nil {
		return nil, fmt.Errorf("query daily totals: %w", err)
	}
	defer rows.Close()

	var totals []core.DailyTotal
	for rows.Next() {
		var (
			date  string
			cents int64
		)
		if err := rows.Scan(&date, &cents); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("parse daily total date %q: %w", date, err)
		}
		totals = append(totals, core.DailyTotal{Date: d, Total: core.Money{Cents: cents}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily totals: %w", err)
	}
	return totals, nil
}

// GetPaymentMethodTotals sums expense amounts per payment method over the
// interval, largest total first.
func (r *SQLiteRepository) GetPaymentMethodTotals(ctx context.Context, rng core.DateRange) ([]core.PaymentMethodTotal, error) {
	where, args := dateClause(rng)
	rows, err := r.db.QueryContext(ctx, `
		SELECT payment_method, SUM(amount_cents) AS total
		FROM expenses`+where+`
		GROUP BY payment_method
		ORDER BY total DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("query payment method totals: %w", err)
	}
	defer rows.Close()

	var totals []core.PaymentMethodTotal
	for rows.Next() {
		var (
			method string
			cents  int64
		)
		if err := rows.Scan(&method, &cents); err != nil {
			return nil, fmt.Errorf("scan payment method total: %w", err)
		}
		totals = append(totals, core.PaymentMethodTotal{
			Method: core.PaymentMethod(method),
			Total:  core.Money{Cents: cents},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment method totals: %w", err)
	}
	return totals, nil
}

// dateClause builds the WHERE fragment for an optional date interval.
// Dates are stored as YYYY-MM-DD text, so BETWEEN compares correctly.
func dateClause(rng core.DateRange) (string, []any) {
	switch {
	case !rng.Start.IsZero() && !rng.End.IsZero():
		return " WHERE date BETWEEN ? AND ?", []any{rng.Start.String(), rng.End.String()}
	case !rng.Start.IsZero():
		return " WHERE date >= ?", []any{rng.Start.String()}
	case !rng.End.IsZero():
		return " WHERE date <= ?", []any{rng.End.String()}
	default:
		return "", nil
	}
}

func scanExpense(rows *sql.Rows) (core.Expense, error) {
	var e core.Expense
	var date, category, method, created string
	if err := rows.Scan(&e.ID, &date, &e.Amount.Cents, &e.Description, &category, &method, &created); err != nil {
		return core.Expense{}, fmt.Errorf("scan expense: %w", err)
	}
	d, err := core.ParseDate(date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse expense date %q: %w", date, err)
	}
	createdAt, err := time.Parse(createdAtLayout, created)
	if err != nil {
		return core.Expense{}, fmt.Errorf("parse expense created_at %q: %w", created, err)
	}
	e.Date = d
	e.Category = core.Category(category)
	e.PaymentMethod = core.PaymentMethod(method)
	e.CreatedAt = createdAt
	return e, nil
}
