package planner

import "testing"

func TestCategoryTotalsBucketsEmptyCategory(t *testing.T) {
	expenses := []Expense{
		{Title: "Lunch", Amount: 1200, Category: "food"},
		{Title: "Dinner", Amount: 3000, Category: "food"},
		{Title: "Bus", Amount: 400, Category: "transport"},
		{Title: "Misc", Amount: 100},
	}

	totals := CategoryTotals(expenses)
	if totals["food"] != 4200 {
		t.Fatalf("expected food total 4200, got %d", totals["food"])
	}
	if totals["transport"] != 400 {
		t.Fatalf("expected transport total 400, got %d", totals["transport"])
	}
	if totals[""] != 100 {
		t.Fatalf("uncategorized expenses must bucket under the empty string, got %d", totals[""])
	}
}

func TestBalancesTwoMemberScenario(t *testing.T) {
	expenses := []Expense{
		{Title: "Hotel", Amount: 3000, Payer: "A"},
		{Title: "Lunch", Amount: 1000, Payer: "B"},
	}
	members := []string{"A", "B"}

	split, ok := Split(expenses, members)
	if !ok {
		t.Fatalf("two members with expenses must produce a split")
	}
	if split.Total != 4000 {
		t.Fatalf("expected total 4000, got %d", split.Total)
	}
	if split.PerPerson != 2000 {
		t.Fatalf("expected per-person share 2000, got %d", split.PerPerson)
	}
	if len(split.Balances) != 2 {
		t.Fatalf("expected 2 balances, got %#v", split.Balances)
	}
	if split.Balances[0].Name != "A" || split.Balances[0].Balance != 1000 {
		t.Fatalf("expected A at +1000, got %#v", split.Balances[0])
	}
	if split.Balances[1].Name != "B" || split.Balances[1].Balance != -1000 {
		t.Fatalf("expected B at -1000, got %#v", split.Balances[1])
	}
}

func TestSplitSuppressedWithoutQuorum(t *testing.T) {
	expenses := []Expense{{Title: "Lunch", Amount: 1000, Payer: "A"}}

	if _, ok := Split(expenses, []string{"A"}); ok {
		t.Fatalf("a single member must suppress the split")
	}
	if _, ok := Split(nil, []string{"A", "B"}); ok {
		t.Fatalf("no expenses must suppress the split")
	}
}

func TestBalancesTolerateRoundingResidual(t *testing.T) {
	// 100 across three members rounds the share to 33; the residual stays.
	expenses := []Expense{{Title: "Snacks", Amount: 100, Payer: "A"}}
	members := []string{"A", "B", "C"}

	balances := Balances(expenses, members)
	sum := 0
	for _, balance := range balances {
		sum += balance.Balance
	}
	if sum != 1 {
		t.Fatalf("expected rounding residual of 1, got %d", sum)
	}
	if balances[0].Paid != 100 || balances[1].Paid != 0 {
		t.Fatalf("unexpected paid totals: %#v", balances)
	}
}

func TestBalancesIgnoreNonRosterPayers(t *testing.T) {
	expenses := []Expense{
		{Title: "Hotel", Amount: 2000, Payer: "A"},
		{Title: "Gift", Amount: 1000, Payer: "Grandma"},
	}
	members := []string{"A", "B"}

	balances := Balances(expenses, members)
	// Total 3000, share 1500. Grandma's payment counts toward the total
	// but is credited to nobody.
	if balances[0].Paid != 2000 || balances[0].Balance != 500 {
		t.Fatalf("unexpected balance for A: %#v", balances[0])
	}
	if balances[1].Paid != 0 || balances[1].Balance != -1500 {
		t.Fatalf("unexpected balance for B: %#v", balances[1])
	}
}

func TestPerPersonShareWithoutMembersReturnsTotal(t *testing.T) {
	if got := PerPersonShare(4000, 0); got != 4000 {
		t.Fatalf("no members must return the total, got %d", got)
	}
	if got := PerPersonShare(100, 3); got != 33 {
		t.Fatalf("expected rounded share 33, got %d", got)
	}
	if got := PerPersonShare(200, 3); got != 67 {
		t.Fatalf("expected rounded share 67, got %d", got)
	}
}

func TestSummarizeBudget(t *testing.T) {
	trip := Trip{
		Budget:  "50000",
		Members: "A, B",
		Expenses: []Expense{
			{Title: "Hotel", Amount: 30000, Category: "lodging", Payer: "A"},
			{Title: "Lunch", Amount: 2000, Category: "food", Payer: "B"},
		},
	}

	summary := SummarizeBudget(trip)
	if summary.Budget != 50000 {
		t.Fatalf("expected budget 50000, got %d", summary.Budget)
	}
	if summary.Total != 32000 {
		t.Fatalf("expected total 32000, got %d", summary.Total)
	}
	if summary.Remaining != 18000 {
		t.Fatalf("expected remaining 18000, got %d", summary.Remaining)
	}
	if summary.PerPerson != 16000 {
		t.Fatalf("expected per-person 16000, got %d", summary.PerPerson)
	}
	if summary.Categories["lodging"] != 30000 {
		t.Fatalf("unexpected category totals: %#v", summary.Categories)
	}
}

func TestSummarizeBudgetGoesNegativeWhenOverspent(t *testing.T) {
	trip := Trip{
		Budget:   "1000",
		Expenses: []Expense{{Title: "Hotel", Amount: 3000}},
	}
	summary := SummarizeBudget(trip)
	if summary.Remaining != -2000 {
		t.Fatalf("overspending must go negative, got %d", summary.Remaining)
	}
}
