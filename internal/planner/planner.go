// Package planner 实现生产建议计算：基于当前原材料库存与产品BOM，
// 按单价从高到低的顺序贪心分配共享库存，给出各产品的建议生产数量与总价值。
// 计算是纯函数式的，只作用于传入的快照，不回写任何持久化库存。
package planner

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Product 参与计算的产品明细
type Product struct {
	ID    string
	Code  string
	Name  string
	Price decimal.Decimal
}

// RawMaterial 参与计算的原材料明细
type RawMaterial struct {
	ID            string
	Code          string
	Name          string
	StockQuantity decimal.Decimal
}

// BOMLine 已解析的BOM行项：产品、原材料与单件用量内联
type BOMLine struct {
	Product          Product
	RawMaterial      RawMaterial
	RequiredQuantity decimal.Decimal
}

// PlanItem 单个产品的生产建议
type PlanItem struct {
	ProductID         string          `json:"product_id"`
	ProductCode       string          `json:"product_code"`
	ProductName       string          `json:"product_name"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	SuggestedQuantity int64           `json:"suggested_quantity"`
	TotalValue        decimal.Decimal `json:"total_value"`
}

// Plan 生产建议结果，条目按提交顺序排列
type Plan struct {
	Items      []PlanItem      `json:"items"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// Suggest 计算生产建议
//
// 快照按产品分组后，产品按单价降序（同价按编码升序）依次提交；
// 每个产品对当前虚拟库存做向下取整除法求最大可产数量，
// 提交后立即扣减虚拟库存，因此高价产品会挤占共享原材料。
// 数量为0的产品（含存在非法行项 required<=0 的产品）不出现在结果中。
func Suggest(lines []BOMLine) Plan {
	// 按产品分组，记录首见顺序
	bomByProduct := make(map[string][]BOMLine)
	var products []Product
	for _, line := range lines {
		if _, ok := bomByProduct[line.Product.ID]; !ok {
			products = append(products, line.Product)
		}
		bomByProduct[line.Product.ID] = append(bomByProduct[line.Product.ID], line)
	}

	// 虚拟库存账本：每种原材料只按首次出现的库存值登记一次
	ledger := make(map[string]decimal.Decimal)
	for _, line := range lines {
		if _, ok := ledger[line.RawMaterial.ID]; !ok {
			ledger[line.RawMaterial.ID] = line.RawMaterial.StockQuantity
		}
	}

	// 提交顺序：单价降序，同价按产品编码升序保证确定性
	sort.SliceStable(products, func(i, j int) bool {
		if c := products[i].Price.Cmp(products[j].Price); c != 0 {
			return c > 0
		}
		return products[i].Code < products[j].Code
	})

	plan := Plan{
		Items:      []PlanItem{},
		TotalValue: decimal.Zero,
	}

	for _, product := range products {
		bom := bomByProduct[product.ID]

		qty := maxProducibleUnits(bom, ledger)
		if qty <= 0 {
			continue
		}

		consume(bom, ledger, qty)

		totalValue := product.Price.Mul(decimal.NewFromInt(qty)).Round(2)
		plan.TotalValue = plan.TotalValue.Add(totalValue)
		plan.Items = append(plan.Items, PlanItem{
			ProductID:         product.ID,
			ProductCode:       product.Code,
			ProductName:       product.Name,
			UnitPrice:         product.Price,
			SuggestedQuantity: qty,
			TotalValue:        totalValue,
		})
	}

	return plan
}

// maxProducibleUnits 对每个行项做 floor(可用库存/单件用量)，取最小值
//
// 账本中不存在的原材料视为零库存；任一行项 required<=0 直接判定
// 整个产品不可生产。除法用 QuoRem 取精确整数商，对非负操作数
// 截断即向下取整，不会因十进制展开不终止而出错。
func maxProducibleUnits(bom []BOMLine, ledger map[string]decimal.Decimal) int64 {
	max := int64(math.MaxInt64)

	for _, line := range bom {
		if line.RequiredQuantity.Sign() <= 0 {
			return 0
		}

		available, ok := ledger[line.RawMaterial.ID]
		if !ok {
			available = decimal.Zero
		}

		q, _ := available.QuoRem(line.RequiredQuantity, 0)
		possible := q.IntPart()
		if possible < max {
			max = possible
		}
	}

	if max == math.MaxInt64 {
		return 0
	}
	return max
}

// consume 按已提交数量扣减虚拟库存
func consume(bom []BOMLine, ledger map[string]decimal.Decimal, units int64) {
	u := decimal.NewFromInt(units)
	for _, line := range bom {
		id := line.RawMaterial.ID
		available, ok := ledger[id]
		if !ok {
			available = decimal.Zero
		}
		ledger[id] = available.Sub(line.RequiredQuantity.Mul(u))
	}
}
