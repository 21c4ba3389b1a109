package models

import (
	"github.com/google/uuid"
)

// Team is a node in the org hierarchy. ParentTeamID forms a tree/forest;
// the schema does not prevent cycles, traversal code must guard against them.
type Team struct {
	BaseModel
	Name         string     `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Description  string     `json:"description" gorm:"size:500" validate:"max=500"`
	ParentTeamID *uuid.UUID `json:"parent_team_id,omitempty" gorm:"type:uuid;index"`
	TeamLeadID   uuid.UUID  `json:"team_lead_id" gorm:"type:uuid;not null" validate:"required"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty" gorm:"type:uuid;index"`
	IsActive     bool       `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	ParentTeam *Team       `json:"parent_team,omitempty" gorm:"foreignKey:ParentTeamID;constraint:OnDelete:RESTRICT"`
	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT"`
	Members    []User      `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
