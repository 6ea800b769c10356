package service

import (
	"context"
	"errors"
	"time"

	"github.com/autoflex/autoflex-erp/internal/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrInvalid 业务校验失败（参数不合法）
var ErrInvalid = errors.New("invalid request")

const (
	// planCacheKey 最新生产建议的缓存键
	planCacheKey = "autoflex:production_plan"
	// planCacheTTL 缓存有效期，任何产品/原材料/BOM写入都会主动失效
	planCacheTTL = 5 * time.Minute
)

// invalidatePlanCache 使生产建议缓存失效，redis不可用时静默跳过
func invalidatePlanCache(ctx context.Context, rdb *redis.Client, logger *zap.Logger) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, planCacheKey).Err(); err != nil && logger != nil {
		logger.Warn("Failed to invalidate plan cache", zap.Error(err))
	}
}

// Services 服务集合
type Services struct {
	Product     *ProductService
	RawMaterial *RawMaterialService
	BOM         *BOMService
	Suggestion  *SuggestionService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, rdb *redis.Client, logger *zap.Logger) *Services {
	return &Services{
		Product:     NewProductService(repos.Product, rdb, logger),
		RawMaterial: NewRawMaterialService(repos.RawMaterial, rdb, logger),
		BOM:         NewBOMService(repos.ProductMaterial, repos.Product, repos.RawMaterial, rdb, logger),
		Suggestion:  NewSuggestionService(repos.ProductMaterial, rdb, logger),
	}
}
