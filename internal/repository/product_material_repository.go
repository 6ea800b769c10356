package repository

import (
	"context"

	"github.com/autoflex/autoflex-erp/internal/model/entity"
	"gorm.io/gorm"
)

// ProductMaterialRepository BOM仓库
type ProductMaterialRepository struct {
	db *gorm.DB
}

// NewProductMaterialRepository 创建BOM仓库
func NewProductMaterialRepository(db *gorm.DB) *ProductMaterialRepository {
	return &ProductMaterialRepository{db: db}
}

// FindAllResolved 获取全量BOM快照，行项内联产品与原材料明细
// 一次读取完成关联解析，供生产建议计算使用
func (r *ProductMaterialRepository) FindAllResolved(ctx context.Context) ([]entity.ProductMaterial, error) {
	var lines []entity.ProductMaterial
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("RawMaterial").
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

// ListByProductID 获取某产品的BOM行项
func (r *ProductMaterialRepository) ListByProductID(ctx context.Context, productID string) ([]entity.ProductMaterial, error) {
	var lines []entity.ProductMaterial
	err := r.db.WithContext(ctx).
		Preload("RawMaterial").
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

// ReplaceForProduct 替换某产品的全部BOM行项：删除现有行项后重建，单事务完成
func (r *ProductMaterialRepository) ReplaceForProduct(ctx context.Context, productID string, lines []entity.ProductMaterial) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&entity.ProductMaterial{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}
