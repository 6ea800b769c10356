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

// ProductService 产品服务
type ProductService struct {
	repo   *repository.ProductRepository
	rdb    *redis.Client
	logger *zap.Logger
}

// NewProductService 创建产品服务
func NewProductService(repo *repository.ProductRepository, rdb *redis.Client, logger *zap.Logger) *ProductService {
	return &ProductService{repo: repo, rdb: rdb, logger: logger}
}

// ProductRequest 创建/更新产品请求
type ProductRequest struct {
	Code  string          `json:"code" binding:"required"`
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
}

func (req *ProductRequest) validate() error {
	if strings.TrimSpace(req.Code) == "" || strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: code and name are required", ErrInvalid)
	}
	if req.Price.Sign() < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	return nil
}

// Create 创建产品，编码重复返回 ErrConflict
func (s *ProductService) Create(ctx context.Context, req *ProductRequest) (*entity.Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByCode(ctx, strings.TrimSpace(req.Code))
	if err != nil {
		return nil, fmt.Errorf("check product code: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("product code already exists: %w", repository.ErrConflict)
	}

	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Code:      strings.TrimSpace(req.Code),
		Name:      strings.TrimSpace(req.Name),
		Price:     req.Price.Round(2),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	invalidatePlanCache(ctx, s.rdb, s.logger)
	return product, nil
}

// Get 获取产品详情
func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// List 获取产品列表
func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.repo.List(ctx)
}

// Update 更新产品，换码时校验编码唯一
func (s *ProductService) Update(ctx context.Context, id string, req *ProductRequest) (*entity.Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(req.Code)
	if product.Code != code {
		exists, err := s.repo.ExistsByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("check product code: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("product code already exists: %w", repository.ErrConflict)
		}
	}

	product.Code = code
	product.Name = strings.TrimSpace(req.Name)
	product.Price = req.Price.Round(2)
	product.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	invalidatePlanCache(ctx, s.rdb, s.logger)
	return product, nil
}

// Delete 删除产品（连同其BOM行项）
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	invalidatePlanCache(ctx, s.rdb, s.logger)
	return nil
}
