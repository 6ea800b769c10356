package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductMaterial BOM行项：某产品每生产一件所需的某原材料数量
// 约束：同一产品不允许重复引用同一原材料
type ProductMaterial struct {
	ID               string          `json:"id" gorm:"primaryKey;size:36"`
	ProductID        string          `json:"product_id" gorm:"size:36;not null;uniqueIndex:uq_product_material"`
	RawMaterialID    string          `json:"raw_material_id" gorm:"size:36;not null;uniqueIndex:uq_product_material"`
	RequiredQuantity decimal.Decimal `json:"required_quantity" gorm:"type:decimal(14,3);not null"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// 关联
	Product     *Product     `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	RawMaterial *RawMaterial `json:"raw_material,omitempty" gorm:"foreignKey:RawMaterialID"`
}

func (ProductMaterial) TableName() string {
	return "product_materials"
}
