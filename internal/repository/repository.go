package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrConflict 唯一约束冲突（如编码重复）
	ErrConflict = errors.New("record already exists")
)

// Repositories 仓库集合
type Repositories struct {
	Product         *ProductRepository
	RawMaterial     *RawMaterialRepository
	ProductMaterial *ProductMaterialRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Product:         NewProductRepository(db),
		RawMaterial:     NewRawMaterialRepository(db),
		ProductMaterial: NewProductMaterialRepository(db),
	}
}
