package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Variants, images and tags are stored as JSONB columns.
type ProductModel struct {
	ID        string                                  `gorm:"column:id;type:varchar(64);primaryKey"`
	NameEN    string                                  `gorm:"column:name_en;type:varchar(255);not null"`
	NameAR    string                                  `gorm:"column:name_ar;type:varchar(255)"`
	Images    datatypes.JSONSlice[string]             `gorm:"column:images;type:jsonb"`
	Price     float64                                 `gorm:"column:price;type:numeric(12,2);not null;default:0"`
	OldPrice  float64                                 `gorm:"column:old_price;type:numeric(12,2);not null;default:0"`
	Variants  datatypes.JSONSlice[ProductVariantModel] `gorm:"column:variants;type:jsonb"`
	Tags      datatypes.JSONSlice[string]             `gorm:"column:tags;type:jsonb"`
	Position  int                                     `gorm:"column:position;not null;default:0;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// ProductVariantModel is one element of the variants JSONB column.
type ProductVariantModel struct {
	Watts    string  `json:"watts"`
	Price    float64 `json:"price"`
	OldPrice float64 `json:"oldprice"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
