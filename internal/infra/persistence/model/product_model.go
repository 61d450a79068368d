package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. ActivationCode is stored upper-cased.
type ProductModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	BrandID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(200);not null"`
	Description    string    `gorm:"type:text"`
	ActivationCode string    `gorm:"type:varchar(50);uniqueIndex:uq_products_activation_code;not null"`
	Category       string    `gorm:"type:varchar(100)"`
	Price          *float64  `gorm:"type:numeric(10,2)"`
	ImageURL       string    `gorm:"type:varchar(255)"`
	Active         bool      `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// RewardTemplateModel mirrors the 'reward_templates' table.
type RewardTemplateModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	ProductID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name        string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text"`
	Type        string     `gorm:"type:varchar(20);not null"`
	Value       string     `gorm:"type:varchar(100);not null"`
	CouponCode  *string    `gorm:"type:varchar(50)"`
	ExpiresAt   *time.Time `gorm:"index"`
	Active      bool       `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RewardTemplateModel) TableName() string {
	return "reward_templates"
}
