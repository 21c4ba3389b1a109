package models

import (
	"github.com/google/uuid"
)

// Recognition is a peer-to-peer kudos message tagged with a company value.
type Recognition struct {
	BaseModel
	FromUserID uuid.UUID    `json:"from_user_id" gorm:"type:uuid;not null;index" validate:"required"`
	ToUserID   uuid.UUID    `json:"to_user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Value      CompanyValue `json:"value" gorm:"size:30;not null" validate:"required,oneof=customer_first ownership excellence teamwork innovation"`
	Message    string       `json:"message" gorm:"size:1000;not null" validate:"required,min=1,max=1000"`
	IsPublic   bool         `json:"is_public" gorm:"not null;default:true"`

	// Relationships
	FromUser *User `json:"from_user,omitempty" gorm:"foreignKey:FromUserID;constraint:OnDelete:CASCADE"`
	ToUser   *User `json:"to_user,omitempty" gorm:"foreignKey:ToUserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Recognition
func (Recognition) TableName() string {
	return "recognitions"
}
