package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/autoflex/autoflex-erp/internal/model/entity"
	"github.com/autoflex/autoflex-erp/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RawMaterialService 原材料服务
type RawMaterialService struct {
	repo   *repository.RawMaterialRepository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewRawMaterialService 创建原材料服务
func NewRawMaterialService(repo *repository.RawMaterialRepository, rdb *redis.Client, logger *zap.Logger) *RawMaterialService {
	return &RawMaterialService{repo: repo, rdb: rdb, logger: logger}
}

// RawMaterialRequest 创建/更新原材料请求
type RawMaterialRequest struct {
	Code          string          `json:"code" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
}

func (req *RawMaterialRequest) validate() error {
	if strings.TrimSpace(req.Code) == "" || strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: code and name are required", ErrInvalid)
	}
	if req.StockQuantity.Sign() < 0 {
		return fmt.Errorf("%w: stock quantity must not be negative", ErrInvalid)
	}
	return nil
}

// Create 创建原材料，编码重复返回 ErrConflict
func (s *RawMaterialService) Create(ctx context.Context, req *RawMaterialRequest) (*entity.RawMaterial, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByCode(ctx, strings.TrimSpace(req.Code))
	if err != nil {
		return nil, fmt.Errorf("check material code: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("raw material code already exists: %w", repository.ErrConflict)
	}

	now := time.Now()
	material := &entity.RawMaterial{
		ID:            uuid.New().String(),
		Code:          strings.TrimSpace(req.Code),
		Name:          strings.TrimSpace(req.Name),
		StockQuantity: req.StockQuantity.Round(3),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, material); err != nil {
		return nil, fmt.Errorf("create raw material: %w", err)
	}

	invalidatePlanCache(ctx, s.rdb, s.logger)
	return material, nil
}

// Get 获取原材料详情
func (s *RawMaterialService) Get(ctx context.Context, id string) (*entity.RawMaterial, error) {
	return s.repo.FindByID(ctx, id)
}

// List 获取原材料列表
func (s *RawMaterialService) List(ctx context.Context) ([]entity.RawMaterial, error) {
	return s.repo.List(ctx)
}

// Update 更新原材料，换码时校验编码唯一
func (s *RawMaterialService) Update(ctx context.Context, id string, req *RawMaterialRequest) (*entity.RawMaterial, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	material, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	if material.Code != code {
		exists, err := s.repo.ExistsByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("check material code: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("raw material code already exists: %w", repository.ErrConflict)
		}
	}

	material.Code = code
	material.Name = strings.TrimSpace(req.Name)
	material.StockQuantity = req.StockQuantity.Round(3)
	material.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, material); err != nil {
		return nil, fmt.Errorf("update raw material: %w", err)
	}

	invalidatePlanCache(ctx, s.rdb, s.logger)
	return material, nil
}

// Delete 删除原材料（连同引用它的BOM行项）
func (s *RawMaterialService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete raw material: %w", err)
	}
	invalidatePlanCache(ctx, s.rdb, s.logger)
	return nil
}
