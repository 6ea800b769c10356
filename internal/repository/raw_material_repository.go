package repository

import (
	"context"
	"errors"

	"github.com/autoflex/autoflex-erp/internal/model/entity"
	"gorm.io/gorm"
)

// RawMaterialRepository 原材料仓库
type RawMaterialRepository struct {
	db *gorm.DB
}

// NewRawMaterialRepository 创建原材料仓库
func NewRawMaterialRepository(db *gorm.DB) *RawMaterialRepository {
	return &RawMaterialRepository{db: db}
}

// FindByID 根据ID查找原材料
func (r *RawMaterialRepository) FindByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	var material entity.RawMaterial
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&material).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

// ExistsByCode 判断编码是否已存在
func (r *RawMaterialRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.RawMaterial{}).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// Create 创建原材料
func (r *RawMaterialRepository) Create(ctx context.Context, material *entity.RawMaterial) error {
	return r.db.WithContext(ctx).Create(material).Error
}

// Update 更新原材料
func (r *RawMaterialRepository) Update(ctx context.Context, material *entity.RawMaterial) error {
	return r.db.WithContext(ctx).Save(material).Error
}

// Delete 删除原材料及引用它的BOM行项
func (r *RawMaterialRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("raw_material_id = ?", id).Delete(&entity.ProductMaterial{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.RawMaterial{}).Error
	})
}

// List 获取原材料列表
func (r *RawMaterialRepository) List(ctx context.Context) ([]entity.RawMaterial, error) {
	var materials []entity.RawMaterial
	err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&materials).Error
	return materials, err
}
