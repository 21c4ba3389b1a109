package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamObjective is the middle OKR tier, scoped to a team and optionally
// aligned to a company objective.
type TeamObjective struct {
	BaseModel
	TeamID             uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	CompanyObjectiveID *uuid.UUID `json:"company_objective_id,omitempty" gorm:"type:uuid;index"`
	Title              string     `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Description        string     `json:"description" gorm:"size:1000" validate:"max=1000"`
	StartDate          time.Time  `json:"start_date" gorm:"not null" validate:"required"`
	EndDate            time.Time  `json:"end_date" gorm:"not null" validate:"required"`
	CreatedBy          uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	IsActive           bool       `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Team             *Team             `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:RESTRICT"`
	CompanyObjective *CompanyObjective `json:"company_objective,omitempty" gorm:"foreignKey:CompanyObjectiveID"`
	KeyResults       []TeamKeyResult   `json:"key_results,omitempty" gorm:"foreignKey:ObjectiveID"`
}

// TableName returns the table name for TeamObjective
func (TeamObjective) TableName() string {
	return "team_objectives"
}

// Progress returns the objective's completion as the mean of its key results,
// clamped to [0, 100].
func (o *TeamObjective) Progress() float64 {
	if len(o.KeyResults) == 0 {
		return 0
	}
	var sum float64
	for i := range o.KeyResults {
		sum += o.KeyResults[i].CompletionPercent()
	}
	return sum / float64(len(o.KeyResults))
}

// TeamKeyResult is a quantitative measure under a team objective. Ownership
// is either shared by the whole team or assigned to a single member.
type TeamKeyResult struct {
	BaseModel
	ObjectiveID  uuid.UUID          `json:"objective_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title        string             `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	TargetValue  float64            `json:"target_value" gorm:"not null" validate:"required,gt=0"`
	CurrentValue float64            `json:"current_value" gorm:"not null;default:0" validate:"gte=0"`
	Unit         string             `json:"unit" gorm:"size:30" validate:"max=30"`
	Ownership    KeyResultOwnership `json:"ownership" gorm:"size:20;not null;default:'shared'" validate:"required,oneof=shared assigned"`
	AssigneeID   *uuid.UUID         `json:"assignee_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Objective *TeamObjective `json:"objective,omitempty" gorm:"foreignKey:ObjectiveID;constraint:OnDelete:CASCADE"`
	Assignee  *User          `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
}

// TableName returns the table name for TeamKeyResult
func (TeamKeyResult) TableName() string {
	return "team_key_results"
}

// CompletionPercent returns current/target as a percentage clamped to [0, 100].
func (kr *TeamKeyResult) CompletionPercent() float64 {
	return completionPercent(kr.CurrentValue, kr.TargetValue)
}
