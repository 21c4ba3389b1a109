package models

import (
	"time"

	"github.com/google/uuid"
)

// Goal is the individual OKR tier. The two objective links are independent
// optional foreign keys; both set at once forms a full 3-tier alignment chain.
type Goal struct {
	BaseModel
	UserID             uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamObjectiveID    *uuid.UUID      `json:"team_objective_id,omitempty" gorm:"type:uuid;index"`
	CompanyObjectiveID *uuid.UUID      `json:"company_objective_id,omitempty" gorm:"type:uuid;index"`
	Title              string          `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description        string          `json:"description" gorm:"size:1000" validate:"max=1000"`
	TargetValue        float64         `json:"target_value" gorm:"not null" validate:"required,gt=0"`
	CurrentValue       float64         `json:"current_value" gorm:"not null;default:0" validate:"gte=0"`
	Unit               string          `json:"unit" gorm:"size:30" validate:"max=30"`
	StartDate          time.Time       `json:"start_date" gorm:"not null" validate:"required"`
	EndDate            time.Time       `json:"end_date" gorm:"not null" validate:"required"`
	Confidence         ConfidenceLevel `json:"confidence" gorm:"size:10;not null;default:'green'" validate:"required,oneof=green amber red"`
	IsActive           bool            `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	User             *User             `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TeamObjective    *TeamObjective    `json:"team_objective,omitempty" gorm:"foreignKey:TeamObjectiveID"`
	CompanyObjective *CompanyObjective `json:"company_objective,omitempty" gorm:"foreignKey:CompanyObjectiveID"`
	CheckIns         []CheckIn         `json:"check_ins,omitempty" gorm:"foreignKey:GoalID"`
}

// TableName returns the table name for Goal
func (Goal) TableName() string {
	return "goals"
}

// IsCompleted reports whether the goal has reached its target. Derived,
// never persisted.
func (g *Goal) IsCompleted() bool {
	return g.CurrentValue >= g.TargetValue
}

// ProgressPercent returns current/target as a percentage clamped to [0, 100].
func (g *Goal) ProgressPercent() float64 {
	return completionPercent(g.CurrentValue, g.TargetValue)
}

// IsOverdue reports whether the goal's end date has passed without completion.
func (g *Goal) IsOverdue(now time.Time) bool {
	return !g.IsCompleted() && now.After(g.EndDate)
}
