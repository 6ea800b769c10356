package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/autoflex/autoflex-erp/internal/model/entity"
	"github.com/autoflex/autoflex-erp/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BOMService BOM服务：维护产品与原材料的用量关联
type BOMService struct {
	bomRepo      *repository.ProductMaterialRepository
	productRepo  *repository.ProductRepository
	materialRepo *repository.RawMaterialRepository
	rdb          *redis.Client
	logger       *zap.Logger
}

// NewBOMService 创建BOM服务
func NewBOMService(
	bomRepo *repository.ProductMaterialRepository,
	productRepo *repository.ProductRepository,
	materialRepo *repository.RawMaterialRepository,
	rdb *redis.Client,
	logger *zap.Logger,
) *BOMService {
	return &BOMService{
		bomRepo:      bomRepo,
		productRepo:  productRepo,
		materialRepo: materialRepo,
		rdb:          rdb,
		logger:       logger,
	}
}

// BOMItemRequest 单条BOM行项请求
type BOMItemRequest struct {
	RawMaterialID    string          `json:"raw_material_id" binding:"required"`
	RequiredQuantity decimal.Decimal `json:"required_quantity"`
}

// List 获取某产品的BOM行项，产品不存在返回 ErrNotFound
func (s *BOMService) List(ctx context.Context, productID string) ([]entity.ProductMaterial, error) {
	exists, err := s.productRepo.ExistsByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("product not found: %w", repository.ErrNotFound)
	}
	return s.bomRepo.ListByProductID(ctx, productID)
}

// Replace 以请求内容整体替换某产品的BOM：删除现有行项后重建，单事务提交
//
// 请求中的每个原材料必须存在且只出现一次，单件用量必须为正。
func (s *BOMService) Replace(ctx context.Context, productID string, items []BOMItemRequest) ([]entity.ProductMaterial, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("product not found: %w", repository.ErrNotFound)
		}
		return nil, err
	}

	seen := make(map[string]bool, len(items))
	now := time.Now()
	lines := make([]entity.ProductMaterial, 0, len(items))
	for _, item := range items {
		if item.RequiredQuantity.Sign() <= 0 {
			return nil, fmt.Errorf("%w: required quantity must be positive", ErrInvalid)
		}
		if seen[item.RawMaterialID] {
			return nil, fmt.Errorf("%w: duplicate raw material %s", ErrInvalid, item.RawMaterialID)
		}
		seen[item.RawMaterialID] = true

		if _, err := s.materialRepo.FindByID(ctx, item.RawMaterialID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("raw material not found: %s: %w", item.RawMaterialID, repository.ErrNotFound)
			}
			return nil, err
		}

		lines = append(lines, entity.ProductMaterial{
			ID:               uuid.New().String(),
			ProductID:        productID,
			RawMaterialID:    item.RawMaterialID,
			RequiredQuantity: item.RequiredQuantity.Round(3),
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	if err := s.bomRepo.ReplaceForProduct(ctx, productID, lines); err != nil {
		return nil, fmt.Errorf("replace BOM: %w", err)
	}

	invalidatePlanCache(ctx, s.rdb, s.logger)
	return s.bomRepo.ListByProductID(ctx, productID)
}
