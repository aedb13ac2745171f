package core

// CategoryTotal is an amount aggregated by expense category.
type CategoryTotal struct {
	Category Category
	Total    Money
}

// DailyTotal is the summed spending for a single calendar date.
type DailyTotal struct {
	Date  Date
	Total Money
}

// PaymentMethodTotal is the summed spending per payment method.
type PaymentMethodTotal struct {
	Method PaymentMethod
	Total  Money
}

// Report is the aggregated view over one date range, as shown by the
// analytics screen.
type Report struct {
	Range           DateRange
	Expenses        []Expense
	ByCategory      []CategoryTotal
	ByDay           []DailyTotal
	ByPaymentMethod []PaymentMethodTotal
}

// TotalSpent sums the expense amounts in the report.
func (r Report) TotalSpent() Money {
	var total Money
	for _, e := range r.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// BudgetStatus compares one category budget against actual spending in its
// month. Remaining is negative when the budget is overspent.
type BudgetStatus struct {
	Budget    Budget
	Spent     Money
	Remaining Money
}
