package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/autoflex/autoflex-erp/internal/planner"
	"github.com/autoflex/autoflex-erp/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// SuggestionService 生产建议服务：取全量BOM快照交给planner计算
type SuggestionService struct {
	bomRepo *repository.ProductMaterialRepository
	rdb     *redis.Client
	logger  *zap.Logger
}

// NewSuggestionService 创建生产建议服务
func NewSuggestionService(bomRepo *repository.ProductMaterialRepository, rdb *redis.Client, logger *zap.Logger) *SuggestionService {
	return &SuggestionService{bomRepo: bomRepo, rdb: rdb, logger: logger}
}

// Suggest 计算当前生产建议
//
// 快照在单个读内取出，计算本身不碰数据库。结果短暂缓存在redis，
// 任何产品/原材料/BOM写入都会使缓存失效；redis不可用时直接回源计算。
func (s *SuggestionService) Suggest(ctx context.Context) (*planner.Plan, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, planCacheKey).Bytes(); err == nil {
			var plan planner.Plan
			if err := json.Unmarshal(cached, &plan); err == nil {
				return &plan, nil
			}
		}
	}

	lines, err := s.bomRepo.FindAllResolved(ctx)
	if err != nil {
		return nil, fmt.Errorf("load BOM snapshot: %w", err)
	}

	snapshot := make([]planner.BOMLine, 0, len(lines))
	for _, line := range lines {
		// 外键保证关联存在；缺失明细的行项无法参与计算
		if line.Product == nil || line.RawMaterial == nil {
			continue
		}
		snapshot = append(snapshot, planner.BOMLine{
			Product: planner.Product{
				ID:    line.Product.ID,
				Code:  line.Product.Code,
				Name:  line.Product.Name,
				Price: line.Product.Price,
			},
			RawMaterial: planner.RawMaterial{
				ID:            line.RawMaterial.ID,
				Code:          line.RawMaterial.Code,
				Name:          line.RawMaterial.Name,
				StockQuantity: line.RawMaterial.StockQuantity,
			},
			RequiredQuantity: line.RequiredQuantity,
		})
	}

	plan := planner.Suggest(snapshot)

	if s.rdb != nil {
		if data, err := json.Marshal(plan); err == nil {
			if err := s.rdb.Set(ctx, planCacheKey, data, planCacheTTL).Err(); err != nil && s.logger != nil {
				s.logger.Warn("Failed to cache production plan", zap.Error(err))
			}
		}
	}

	return &plan, nil
}

// planExportHeaders 导出表头
var planExportHeaders = []string{"Code", "Product", "Unit Price", "Suggested Qty", "Total Value"}

// ExportExcel 将当前生产建议导出为xlsx
func (s *SuggestionService) ExportExcel(ctx context.Context) (*excelize.File, string, error) {
	plan, err := s.Suggest(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := "Production Plan"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range planExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, item := range plan.Items {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.ProductCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.ProductName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.UnitPrice.String())
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.SuggestedQuantity)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.TotalValue.String())
	}

	summaryRow := len(plan.Items) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", summaryRow), plan.TotalValue.String())
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("E%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("production_plan_%s.xlsx", time.Now().Format("20060102_150405"))
	return f, filename, nil
}
