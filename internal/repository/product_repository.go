package repository

import (
	"context"
	"errors"

	"github.com/autoflex/autoflex-erp/internal/model/entity"
	"gorm.io/gorm"
)

// ProductRepository 产品仓库
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建产品仓库
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByID 根据ID查找产品
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// ExistsByCode 判断编码是否已存在
func (r *ProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// ExistsByID 判断产品是否存在
func (r *ProductRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// Create 创建产品
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update 更新产品
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete 删除产品及其BOM行项
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&entity.ProductMaterial{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Product{}).Error
	})
}

// List 获取产品列表
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&products).Error
	return products, err
}
