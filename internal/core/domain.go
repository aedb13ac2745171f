package core

import (
	"errors"
	"strings"
	"time"
)

// Category is one of the fixed expense categories. Values outside the
// predefined set are allowed and treated as user-supplied custom categories.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryTravel         Category = "Travel"
	CategoryPersonalCare   Category = "Personal Care"
	CategoryHomeGarden     Category = "Home & Garden"
	CategoryMiscellaneous  Category = "Miscellaneous"
)

// PaymentMethod is the closed set of supported payment methods.
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "Cash"
	PaymentCreditCard    PaymentMethod = "Credit Card"
	PaymentDebitCard     PaymentMethod = "Debit Card"
	PaymentBankTransfer  PaymentMethod = "Bank Transfer"
	PaymentDigitalWallet PaymentMethod = "Digital Wallet"
)

type (
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Expense is a persisted expense record. ID and CreatedAt are assigned
	// by the store on insert and never change afterwards.
	Expense struct {
		ID            int64
		Date          Date
		Amount        Money
		Description   string
		Category      Category
		PaymentMethod PaymentMethod
		CreatedAt     time.Time
	}

	// NewExpense is the caller-supplied part of an expense record.
	NewExpense struct {
		Date          Date
		Amount        Money
		Description   string
		Category      Category
		PaymentMethod PaymentMethod
	}

	// Income is a persisted income record. No categorization.
	Income struct {
		ID        int64
		Date      Date
		Amount    Money
		Source    string
		CreatedAt time.Time
	}

	NewIncome struct {
		Date   Date
		Amount Money
		Source string
	}

	// Budget is a monthly spending target for one category. Category is the
	// unique key: setting a budget for an already-budgeted category replaces
	// the previous row.
	Budget struct {
		Category  Category
		Amount    Money
		MonthYear string // YYYY-MM
	}

	// DateRange is a closed date interval. A zero Start or End leaves that
	// side of the interval unbounded.
	DateRange struct {
		Start Date
		End   Date
	}
)

var (
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrEmptyDescription     = errors.New("empty description")
	ErrEmptyCategory        = errors.New("empty category")
	ErrEmptySource          = errors.New("empty source")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidMonthYear     = errors.New("invalid month-year")
)

// Categories returns the fixed category set in its canonical order.
func Categories() []Category {
	return []Category{
		CategoryFoodDining,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryEducation,
		CategoryTravel,
		CategoryPersonalCare,
		CategoryHomeGarden,
		CategoryMiscellaneous,
	}
}

// Known reports whether the category is one of the predefined set.
func (c Category) Known() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) Validate() error {
	if strings.TrimSpace(string(c)) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// PaymentMethods returns the supported payment methods.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentCash,
		PaymentCreditCard,
		PaymentDebitCard,
		PaymentBankTransfer,
		PaymentDigitalWallet,
	}
}

func (p PaymentMethod) Validate() error {
	for _, known := range PaymentMethods() {
		if p == known {
			return nil
		}
	}
	return ErrInvalidPaymentMethod
}

// NewDate creates a Date from year, month, day. The time component is always
// midnight UTC; records carry calendar dates only.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

// MonthYear returns the YYYY-MM key for this date.
func (d Date) MonthYear() string {
	return d.Format("2006-01")
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e NewExpense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(e.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := e.Category.Validate(); err != nil {
		return err
	}
	if err := e.PaymentMethod.Validate(); err != nil {
		return err
	}
	return nil
}

func (i NewIncome) Validate() error {
	if err := i.Date.Validate(); err != nil {
		return err
	}
	if err := i.Amount.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(i.Source)) == 0 {
		return ErrEmptySource
	}
	return nil
}

func (b Budget) Validate() error {
	if err := b.Category.Validate(); err != nil {
		return err
	}
	if err := b.Amount.Validate(); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01", b.MonthYear); err != nil {
		return ErrInvalidMonthYear
	}
	return nil
}

// Contains reports whether the date falls inside the closed interval.
// Unbounded sides always match.
func (r DateRange) Contains(d Date) bool {
	if !r.Start.IsZero() && d.Before(r.Start.Time) {
		return false
	}
	if !r.End.IsZero() && d.After(r.End.Time) {
		return false
	}
	return true
}
