package planner

import "math"

// CategoryTotals sums expense amounts grouped by category. Categories are
// bucketed exactly as recorded, including the empty string.
func CategoryTotals(expenses []Expense) map[string]int {
	totals := make(map[string]int)
	for _, expense := range expenses {
		totals[expense.Category] += expense.Amount
	}
	return totals
}

// GrandTotal sums all expense amounts.
func GrandTotal(expenses []Expense) int {
	total := 0
	for _, expense := range expenses {
		total += expense.Amount
	}
	return total
}

// PerPersonShare is the rounded even split of a total. With no members the
// total itself is returned.
func PerPersonShare(total, memberCount int) int {
	if memberCount <= 0 {
		return total
	}
	return int(math.Round(float64(total) / float64(memberCount)))
}

// MemberBalance reports one roster member's position: a positive balance is
// owed to them by the group, a negative one is owed by them.
type MemberBalance struct {
	Name    string `json:"name"`
	Paid    int    `json:"paid"`
	Balance int    `json:"balance"`
}

// Balances computes each member's paid total minus the per-person share.
// Payers are matched against roster names by plain equality; amounts paid
// by anyone outside the roster stay in the total but are credited to no
// one. Rounding of the share may leave a residual, so balances are not
// required to net to zero.
func Balances(expenses []Expense, members []string) []MemberBalance {
	total := GrandTotal(expenses)
	share := PerPersonShare(total, len(members))

	paid := make(map[string]int, len(members))
	for _, member := range members {
		paid[member] = 0
	}
	for _, expense := range expenses {
		if expense.Payer == "" {
			continue
		}
		if _, ok := paid[expense.Payer]; ok {
			paid[expense.Payer] += expense.Amount
		}
	}

	balances := make([]MemberBalance, 0, len(members))
	for _, member := range members {
		balances = append(balances, MemberBalance{
			Name:    member,
			Paid:    paid[member],
			Balance: paid[member] - share,
		})
	}
	return balances
}

// SplitResult is the full expense-splitting view for a trip.
type SplitResult struct {
	Total     int             `json:"total"`
	PerPerson int             `json:"perPerson"`
	Balances  []MemberBalance `json:"balances"`
}

// Split computes the splitting view, reporting ok=false when it should be
// suppressed: fewer than two roster members or no expenses.
func Split(expenses []Expense, members []string) (SplitResult, bool) {
	if len(members) < 2 || len(expenses) == 0 {
		return SplitResult{}, false
	}
	total := GrandTotal(expenses)
	return SplitResult{
		Total:     total,
		PerPerson: PerPersonShare(total, len(members)),
		Balances:  Balances(expenses, members),
	}, true
}

// BudgetSummary is the derived money overview for a trip.
type BudgetSummary struct {
	Budget     int            `json:"budget"`
	Total      int            `json:"total"`
	Remaining  int            `json:"remaining"`
	PerPerson  int            `json:"perPerson"`
	Categories map[string]int `json:"categories"`
}

// SummarizeBudget derives the money overview from the trip's budget field,
// roster and expenses. Remaining may go negative when spending exceeds the
// budget.
func SummarizeBudget(trip Trip) BudgetSummary {
	budget := ParseBudget(trip.Budget)
	total := GrandTotal(trip.Expenses)
	members := ParseRoster(trip.Members)
	return BudgetSummary{
		Budget:     budget,
		Total:      total,
		Remaining:  budget - total,
		PerPerson:  PerPersonShare(total, len(members)),
		Categories: CategoryTotals(trip.Expenses),
	}
}
