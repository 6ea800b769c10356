package planner

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func line(t *testing.T, p Product, rm RawMaterial, required string) BOMLine {
	t.Helper()
	return BOMLine{Product: p, RawMaterial: rm, RequiredQuantity: dec(t, required)}
}

func product(t *testing.T, id, code, name, price string) Product {
	t.Helper()
	return Product{ID: id, Code: code, Name: name, Price: dec(t, price)}
}

func material(t *testing.T, id, code, name, stock string) RawMaterial {
	t.Helper()
	return RawMaterial{ID: id, Code: code, Name: name, StockQuantity: dec(t, stock)}
}

func TestSuggestSingleProductFloorDivision(t *testing.T) {
	p := product(t, "p1", "P100", "Steel Table", "350.00")
	rm := material(t, "m1", "RM010", "Steel Sheet", "200.000")

	plan := Suggest([]BOMLine{line(t, p, rm, "10.000")})

	if len(plan.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(plan.Items))
	}
	item := plan.Items[0]
	if item.ProductCode != "P100" {
		t.Errorf("product code = %s, want P100", item.ProductCode)
	}
	if item.SuggestedQuantity != 20 {
		t.Errorf("suggested quantity = %d, want 20", item.SuggestedQuantity)
	}
	if !item.TotalValue.Equal(dec(t, "7000.00")) {
		t.Errorf("item total = %s, want 7000.00", item.TotalValue)
	}
	if !plan.TotalValue.Equal(dec(t, "7000.00")) {
		t.Errorf("grand total = %s, want 7000.00", plan.TotalValue)
	}
}

func TestSuggestLimitingMaterialDeterminesQuantity(t *testing.T) {
	p := product(t, "p1", "P100", "Chair", "120.00")
	plenty := material(t, "m1", "RM001", "Wood", "100.000")
	scarce := material(t, "m2", "RM002", "Screws", "15.000")

	plan := Suggest([]BOMLine{
		line(t, p, plenty, "10.000"), // floor(100/10) = 10
		line(t, p, scarce, "1.000"),  // floor(15/1) = 15
	})

	if len(plan.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(plan.Items))
	}
	if got := plan.Items[0].SuggestedQuantity; got != 10 {
		t.Errorf("suggested quantity = %d, want min(10,15) = 10", got)
	}
}

func TestSuggestInsufficientStockYieldsEmptyPlan(t *testing.T) {
	p := product(t, "p1", "P100", "Table", "350.00")
	rm := material(t, "m1", "RM010", "Steel Sheet", "5.000")

	plan := Suggest([]BOMLine{line(t, p, rm, "10.000")})

	if len(plan.Items) != 0 {
		t.Fatalf("expected empty plan, got %d items", len(plan.Items))
	}
	if !plan.TotalValue.Equal(decimal.Zero) {
		t.Errorf("grand total = %s, want exact zero", plan.TotalValue)
	}
}

func TestSuggestInvalidLinePoisonsWholeProduct(t *testing.T) {
	p := product(t, "p1", "P100", "Table", "350.00")
	good := material(t, "m1", "RM001", "Wood", "500.000")
	bad := material(t, "m2", "RM002", "Glue", "500.000")

	plan := Suggest([]BOMLine{
		line(t, p, good, "1.000"),
		line(t, p, bad, "0.000"), // non-positive requirement disqualifies the product
	})

	if len(plan.Items) != 0 {
		t.Fatalf("expected product excluded, got %d items", len(plan.Items))
	}
	if !plan.TotalValue.Equal(decimal.Zero) {
		t.Errorf("grand total = %s, want zero", plan.TotalValue)
	}
}

func TestSuggestHigherPriceWinsSharedStock(t *testing.T) {
	shared := material(t, "m1", "RM010", "Steel Sheet", "200.000")
	premium := product(t, "p1", "P200", "Premium Table", "500.00")
	regular := product(t, "p2", "P100", "Regular Table", "350.00")

	plan := Suggest([]BOMLine{
		line(t, premium, shared, "20.000"), // 10 units, consumes all 200
		line(t, regular, shared, "10.000"), // would be 20 units on its own
	})

	if len(plan.Items) != 1 {
		t.Fatalf("expected only premium in plan, got %d items", len(plan.Items))
	}
	if plan.Items[0].ProductCode != "P200" {
		t.Errorf("winner = %s, want P200", plan.Items[0].ProductCode)
	}
	if plan.Items[0].SuggestedQuantity != 10 {
		t.Errorf("quantity = %d, want 10", plan.Items[0].SuggestedQuantity)
	}
	if !plan.TotalValue.Equal(dec(t, "5000.00")) {
		t.Errorf("grand total = %s, want 5000.00", plan.TotalValue)
	}
}

func TestSuggestLowerPriceGetsRemainder(t *testing.T) {
	shared := material(t, "m1", "RM010", "Steel Sheet", "250.000")
	premium := product(t, "p1", "P200", "Premium Table", "500.00")
	regular := product(t, "p2", "P100", "Regular Table", "350.00")

	plan := Suggest([]BOMLine{
		line(t, premium, shared, "20.000"), // 12 possible -> 12*20=240 consumed
		line(t, regular, shared, "10.000"), // 10 remaining -> 1 unit
	})

	if len(plan.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(plan.Items))
	}
	if plan.Items[0].ProductCode != "P200" || plan.Items[0].SuggestedQuantity != 12 {
		t.Errorf("first item = %s x%d, want P200 x12", plan.Items[0].ProductCode, plan.Items[0].SuggestedQuantity)
	}
	if plan.Items[1].ProductCode != "P100" || plan.Items[1].SuggestedQuantity != 1 {
		t.Errorf("second item = %s x%d, want P100 x1", plan.Items[1].ProductCode, plan.Items[1].SuggestedQuantity)
	}
	if !plan.TotalValue.Equal(dec(t, "6350.00")) {
		t.Errorf("grand total = %s, want 6350.00", plan.TotalValue)
	}
}

func TestSuggestDisjointMaterialsAreIndependent(t *testing.T) {
	a := product(t, "p1", "P100", "Desk", "100.00")
	b := product(t, "p2", "P200", "Shelf", "80.00")
	rmA := material(t, "m1", "RM001", "Oak", "50.000")
	rmB := material(t, "m2", "RM002", "Pine", "21.000")

	plan := Suggest([]BOMLine{
		line(t, a, rmA, "10.000"), // 5 x 100.00 = 500.00
		line(t, b, rmB, "7.000"),  // 3 x 80.00 = 240.00
	})

	if len(plan.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(plan.Items))
	}
	if !plan.TotalValue.Equal(dec(t, "740.00")) {
		t.Errorf("grand total = %s, want 740.00", plan.TotalValue)
	}
}

func TestSuggestEqualPriceTieBreaksByCode(t *testing.T) {
	shared := material(t, "m1", "RM010", "Steel Sheet", "100.000")
	first := product(t, "p1", "P100", "Table A", "200.00")
	second := product(t, "p2", "P200", "Table B", "200.00")

	// Input order deliberately reversed: the comparator, not input order, decides.
	plan := Suggest([]BOMLine{
		line(t, second, shared, "10.000"),
		line(t, first, shared, "10.000"),
	})

	if len(plan.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(plan.Items))
	}
	if plan.Items[0].ProductCode != "P100" {
		t.Errorf("winner = %s, want P100 (code ascending on equal price)", plan.Items[0].ProductCode)
	}
}

func TestSuggestStockSeededFromFirstSeenValue(t *testing.T) {
	p1 := product(t, "p1", "P100", "Desk", "300.00")
	p2 := product(t, "p2", "P200", "Bench", "100.00")
	// Same material id seen twice with different stock values; the first sighting wins.
	rmFirst := material(t, "m1", "RM001", "Oak", "30.000")
	rmStale := material(t, "m1", "RM001", "Oak", "999.000")

	plan := Suggest([]BOMLine{
		line(t, p1, rmFirst, "10.000"),
		line(t, p2, rmStale, "10.000"),
	})

	// 30 units seeded once: p1 takes 3, nothing left for p2.
	if len(plan.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(plan.Items))
	}
	if plan.Items[0].SuggestedQuantity != 3 {
		t.Errorf("quantity = %d, want 3", plan.Items[0].SuggestedQuantity)
	}
}

func TestSuggestEmptySnapshot(t *testing.T) {
	plan := Suggest(nil)

	if len(plan.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(plan.Items))
	}
	if !plan.TotalValue.Equal(decimal.Zero) {
		t.Errorf("grand total = %s, want zero", plan.TotalValue)
	}
}

func TestSuggestNonTerminatingDivisionFloors(t *testing.T) {
	p := product(t, "p1", "P100", "Widget", "10.00")
	rm := material(t, "m1", "RM001", "Resin", "1.000")

	// 1 / 3 = 0.333... must floor to 0 without error
	plan := Suggest([]BOMLine{line(t, p, rm, "3.000")})
	if len(plan.Items) != 0 {
		t.Fatalf("expected exclusion, got %d items", len(plan.Items))
	}

	// 10 / 3 = 3.333... floors to 3
	rm2 := material(t, "m1", "RM001", "Resin", "10.000")
	plan = Suggest([]BOMLine{line(t, p, rm2, "3.000")})
	if len(plan.Items) != 1 || plan.Items[0].SuggestedQuantity != 3 {
		t.Fatalf("expected quantity 3, got %+v", plan.Items)
	}
}

func TestSuggestIsPureAndIdempotent(t *testing.T) {
	shared := material(t, "m1", "RM010", "Steel Sheet", "200.000")
	premium := product(t, "p1", "P200", "Premium Table", "500.00")
	regular := product(t, "p2", "P100", "Regular Table", "350.00")

	lines := []BOMLine{
		line(t, premium, shared, "20.000"),
		line(t, regular, shared, "10.000"),
	}

	first := Suggest(lines)
	second := Suggest(lines)

	if len(first.Items) != len(second.Items) || !first.TotalValue.Equal(second.TotalValue) {
		t.Fatalf("plans differ between runs: %+v vs %+v", first, second)
	}
	for i := range first.Items {
		a, b := first.Items[i], second.Items[i]
		if a.ProductID != b.ProductID || a.SuggestedQuantity != b.SuggestedQuantity || !a.TotalValue.Equal(b.TotalValue) {
			t.Errorf("item %d differs between runs: %+v vs %+v", i, a, b)
		}
	}

	// Input snapshot must not be mutated by the run.
	if !lines[0].RawMaterial.StockQuantity.Equal(dec(t, "200.000")) {
		t.Errorf("input stock mutated to %s", lines[0].RawMaterial.StockQuantity)
	}
}
