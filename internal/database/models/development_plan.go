package models

import (
	"time"

	"github.com/google/uuid"
)

// DevelopmentPlan tracks a user's growth effort, optionally tied to a
// competency. Progress here is independent of the competency's own level.
type DevelopmentPlan struct {
	BaseModel
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	CompetencyID *uuid.UUID `json:"competency_id,omitempty" gorm:"type:uuid;index"`
	Title        string     `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description  string     `json:"description" gorm:"size:1000" validate:"max=1000"`
	Status       PlanStatus `json:"status" gorm:"size:20;not null;default:'in_progress'" validate:"required,oneof=in_progress completed on_hold"`
	Progress     int        `json:"progress" gorm:"not null;default:0" validate:"gte=0,lte=100"`
	DueDate      *time.Time `json:"due_date,omitempty"`

	// Relationships
	User       *User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Competency *Competency `json:"competency,omitempty" gorm:"foreignKey:CompetencyID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for DevelopmentPlan
func (DevelopmentPlan) TableName() string {
	return "development_plans"
}
