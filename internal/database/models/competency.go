package models

import (
	"time"

	"github.com/google/uuid"
)

// Competency is a catalog entry for a named skill or capability.
type Competency struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Category    string `json:"category" gorm:"size:100;not null;index" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`
}

// TableName returns the table name for Competency
func (Competency) TableName() string {
	return "competencies"
}

// UserCompetency is a per-user proficiency pair on a 0-100 scale.
type UserCompetency struct {
	BaseModel
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:idx_user_competency,unique" validate:"required"`
	CompetencyID   uuid.UUID  `json:"competency_id" gorm:"type:uuid;not null;index:idx_user_competency,unique" validate:"required"`
	CurrentLevel   int        `json:"current_level" gorm:"not null;default:0" validate:"gte=0,lte=100"`
	TargetLevel    int        `json:"target_level" gorm:"not null;default:0" validate:"gte=0,lte=100"`
	LastAssessedAt *time.Time `json:"last_assessed_at,omitempty"`

	// Relationships
	User       *User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Competency *Competency `json:"competency,omitempty" gorm:"foreignKey:CompetencyID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for UserCompetency
func (UserCompetency) TableName() string {
	return "user_competencies"
}

// Gap returns how far the current level is below target. Never negative.
func (uc *UserCompetency) Gap() int {
	if uc.CurrentLevel >= uc.TargetLevel {
		return 0
	}
	return uc.TargetLevel - uc.CurrentLevel
}
