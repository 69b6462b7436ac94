package models

// Team represents a named grouping of members that may work on multiple projects
type Team struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:100;uniqueIndex" validate:"required,min=1,max=100"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`

	// Read-side views. Members is derived from the foreign key on the member
	// row; Projects is the non-owning side of the many-to-many. Both are
	// populated only via explicit preloads, never maintained in memory.
	Members  []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Projects []Project    `json:"projects,omitempty" gorm:"many2many:project_teams;"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
