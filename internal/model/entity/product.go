package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product 产品实体
type Product struct {
	ID        string          `json:"id" gorm:"primaryKey;size:36"`
	Code      string          `json:"code" gorm:"size:64;not null;uniqueIndex"`
	Name      string          `json:"name" gorm:"size:128;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(14,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// 关联
	Materials []ProductMaterial `json:"materials,omitempty" gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "products"
}
