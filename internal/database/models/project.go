package models

// Project represents a unit of work associated with zero or more teams
type Project struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:100;uniqueIndex" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`

	// Owning side of the Project<->Team many-to-many, stored in project_teams.
	Teams []Team `json:"teams,omitempty" gorm:"many2many:project_teams;"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
