package models

import (
	"github.com/google/uuid"
)

// KeyResult is a quantitative measure under a company objective.
type KeyResult struct {
	BaseModel
	ObjectiveID  uuid.UUID `json:"objective_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title        string    `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	TargetValue  float64   `json:"target_value" gorm:"not null" validate:"required,gt=0"`
	CurrentValue float64   `json:"current_value" gorm:"not null;default:0" validate:"gte=0"`
	Unit         string    `json:"unit" gorm:"size:30" validate:"max=30"`

	// Relationships
	Objective *CompanyObjective `json:"objective,omitempty" gorm:"foreignKey:ObjectiveID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for KeyResult
func (KeyResult) TableName() string {
	return "key_results"
}

// CompletionPercent returns current/target as a percentage clamped to [0, 100].
func (kr *KeyResult) CompletionPercent() float64 {
	return completionPercent(kr.CurrentValue, kr.TargetValue)
}

func completionPercent(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	pct := current / target * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
