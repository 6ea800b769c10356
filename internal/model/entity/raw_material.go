package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterial 原材料实体
type RawMaterial struct {
	ID            string          `json:"id" gorm:"primaryKey;size:36"`
	Code          string          `json:"code" gorm:"size:64;not null;uniqueIndex"`
	Name          string          `json:"name" gorm:"size:128;not null"`
	StockQuantity decimal.Decimal `json:"stock_quantity" gorm:"type:decimal(14,3);not null"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (RawMaterial) TableName() string {
	return "raw_materials"
}
