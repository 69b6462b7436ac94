package models

import (
	"github.com/google/uuid"
)

// TeamMember represents a person belonging to at most one team at a time.
// A nil TeamID means the member is unassigned, which is a valid persisted state.
type TeamMember struct {
	BaseModel
	Name   string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Email  string     `json:"email" gorm:"not null;size:100;uniqueIndex" validate:"required,email,max=100"`
	Role   string     `json:"role" gorm:"size:50" validate:"max=50"`
	TeamID *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
