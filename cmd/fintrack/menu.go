package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"fintrack/internal/core"
	"fintrack/internal/services"
)

// runMenu drives the interactive terminal UI. It is the presentation layer:
// all parsing and validation happen in the service, errors are shown and the
// loop continues.
func runMenu(ctx context.Context, svc *services.LedgerService) {
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println()
		fmt.Println("fintrack")
		fmt.Println(" 1) Add expense")
		fmt.Println(" 2) Add income")
		fmt.Println(" 3) View expenses")
		fmt.Println(" 4) Analytics report")
		fmt.Println(" 5) Set budget")
		fmt.Println(" 6) Budget status")
		fmt.Println(" 7) Export expenses to CSV")
		fmt.Println(" 0) Quit")

		switch prompt(in, "Choice") {
		case "1":
			addExpense(ctx, in, svc)
		case "2":
			addIncome(ctx, in, svc)
		case "3":
			viewExpenses(ctx, in, svc)
		case "4":
			showReport(ctx, in, svc)
		case "5":
			setBudget(ctx, in, svc)
		case "6":
			showBudgetStatus(ctx, svc)
		case "7":
			exportExpenses(ctx, in, svc)
		case "0", "q", "":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown choice")
		}
	}
}

func addExpense(ctx context.Context, in *bufio.Scanner, svc *services.LedgerService) {
	form := services.ExpenseForm{
		Date:        prompt(in, "Date (YYYY-MM-DD, empty = today)"),
		Amount:      prompt(in, "Amount"),
		Description: prompt(in, "Description"),
	}

	if suggested, confidence := svc.SuggestCategory(form.Description); confidence > 0 {
		fmt.Printf("Suggested category: %s\n", suggested)
		form.Category = prompt(in, fmt.Sprintf("Category (empty = %s)", suggested))
		if form.Category == "" {
			form.Category = string(suggested)
		}
	} else {
		form.Category = prompt(in, "Category")
	}
	form.PaymentMethod = prompt(in, "Payment method (empty = Cash)")

	e, err := svc.AddExpense(ctx, form)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Added expense #%d: %s %s (%s)\n", e.ID, e.Date, e.Amount, e.Category)
}

func addIncome(ctx context.Context, in *bufio.Scanner, svc *services.LedgerService) {
	form := services.IncomeForm{
		Date:   prompt(in, "Date (YYYY-MM-DD, empty = today)"),
		Amount: prompt(in, "Amount"),
		Source: prompt(in, "Source"),
	}

	inc, err := svc.AddIncome(ctx, form)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Added income #%d: %s %s from %s\n", inc.ID, inc.Date, inc.Amount, inc.Source)
}

func viewExpenses(ctx context.Context, in *bufio.Scanner, svc *services.LedgerService) {
	rng, err := promptRange(in)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	expenses, err := svc.Expenses(ctx, rng)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(expenses) == 0 {
		fmt.Println("No expenses in range")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDate\tAmount\tDescription\tCategory\tPayment")
	for _, e := range expenses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Date, e.Amount, e.Description, e.Category, e.PaymentMethod)
	}
	w.Flush()
}

func showReport(ctx context.Context, in *bufio.Scanner, svc *services.LedgerService) {
	rng, err := promptRange(in)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	report, err := svc.Report(ctx, rng)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Total spent: %s over %d expenses\n", report.TotalSpent(), len(report.Expenses))

	if len(report.ByCategory) > 0 {
		fmt.Println("\nBy category:")
		for _, t := range report.ByCategory {
			fmt.Printf("  %-20s %10s\n", t.Category, t.Total)
		}
	}
	if len(report.ByPaymentMethod) > 0 {
		fmt.Println("\nBy payment method:")
		for _, t := range report.ByPaymentMethod {
			fmt.Printf("  %-20s %10s\n", t.Method, t.Total)
		}
	}
	if len(report.ByDay) > 0 {
		fmt.Println("\nDaily spending:")
		for _, t := range report.ByDay {
			fmt.Printf("  %s %10s\n", t.Date, t.Total)
		}
	}
}

func setBudget(ctx context.Context, in *bufio.Scanner, svc *services.LedgerService) {
	fmt.Println("Categories:", joinCategories())
	form := services.BudgetForm{
		Category:  prompt(in, "Category"),
		Amount:    prompt(in, "Monthly budget amount"),
		MonthYear: prompt(in, "Month (YYYY-MM, empty = current)"),
	}

	b, err := svc.SetBudget(ctx, form)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Budget set: %s %s for %s\n", b.Category, b.Amount, b.MonthYear)
}

func showBudgetStatus(ctx context.Context, svc *services.LedgerService) {
	statuses, err := svc.BudgetStatuses(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(statuses) == 0 {
		fmt.Println("No budgets set")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Category\tMonth\tBudget\tSpent\tRemaining")
	for _, st := range statuses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			st.Budget.Category, st.Budget.MonthYear, st.Budget.Amount, st.Spent, st.Remaining)
	}
	w.Flush()
}

func exportExpenses(ctx context.Context, in *bufio.Scanner, svc *services.LedgerService) {
	rng, err := promptRange(in)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	path := prompt(in, "Output file")
	if path == "" {
		fmt.Println("Error: output file required")
		return
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer f.Close()

	n, err := svc.ExportCSV(ctx, rng, f)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Exported %d expenses to %s\n", n, path)
}

func promptRange(in *bufio.Scanner) (core.DateRange, error) {
	return parseRange(
		prompt(in, "From (YYYY-MM-DD, empty = all)"),
		prompt(in, "To (YYYY-MM-DD, empty = all)"),
	)
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func joinCategories() string {
	names := make([]string, 0, len(core.Categories()))
	for _, c := range core.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
