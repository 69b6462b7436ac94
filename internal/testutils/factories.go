package testutils

import (
	"time"

	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all entity factories for convenient test setup
type FactorySet struct {
	Team    *TeamFactory
	Member  *TeamMemberFactory
	Project *ProjectFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:    NewTeamFactory(),
		Member:  NewTeamMemberFactory(),
		Project: NewProjectFactory(),
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Team " + id.String()[:8],
		Description: "A team for testing purposes",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values and a unique email
func (f *TeamMemberFactory) Create() *models.TeamMember {
	id := uuid.New()
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   "John Doe",
		Email:  "john.doe+" + id.String()[:8] + "@test.com",
		Role:   "Developer",
		TeamID: nil,
	}
}

// WithEmail sets a custom email for the member
func (f *TeamMemberFactory) WithEmail(email string) *models.TeamMember {
	member := f.Create()
	member.Email = email
	return member
}

// WithTeam assigns the member to a team
func (f *TeamMemberFactory) WithTeam(teamID uuid.UUID) *models.TeamMember {
	member := f.Create()
	member.TeamID = &teamID
	return member
}

// WithRole sets a custom role for the member
func (f *TeamMemberFactory) WithRole(role string) *models.TeamMember {
	member := f.Create()
	member.Role = role
	return member
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Project " + id.String()[:8],
		Description: "A project for testing purposes",
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// WithTeams links the project to the given teams
func (f *ProjectFactory) WithTeams(teams ...models.Team) *models.Project {
	project := f.Create()
	project.Teams = teams
	return project
}
