package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivationModel mirrors the append-only 'activations' table.
// (user_id, product_id) is unique: uq_activations_user_product.
type ActivationModel struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_activations_user_product,priority:1"`
	ProductID     uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:uq_activations_user_product,priority:2"`
	PointsAwarded int           `gorm:"not null"`
	ActivatedAt   time.Time     `gorm:"not null"`
	Product       *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ActivationModel) TableName() string {
	return "activations"
}

// RewardGrantModel mirrors the 'reward_grants' table.
type RewardGrantModel struct {
	ID         uuid.UUID            `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID            `gorm:"type:uuid;not null;index"`
	TemplateID uuid.UUID            `gorm:"type:uuid;not null;index"`
	State      string               `gorm:"type:varchar(20);not null"`
	GrantedAt  time.Time            `gorm:"not null"`
	ClaimedAt  *time.Time
	Template   *RewardTemplateModel `gorm:"foreignKey:TemplateID"`
}

// TableName explicitly sets the table name for GORM.
func (RewardGrantModel) TableName() string {
	return "reward_grants"
}
