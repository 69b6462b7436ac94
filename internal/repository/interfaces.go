package repository

import (
	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetWithRelations(id uuid.UUID) (*models.Team, error)
	GetAllWithRelations() ([]models.Team, error)
	SearchByName(keyword string) ([]models.Team, error)
	ExistsByID(id uuid.UUID) (bool, error)
	ExistsByName(name string) (bool, error)
	CountMembers(teamID uuid.UUID) (int64, error)
	Update(team *models.Team) error
	DeleteCascade(id uuid.UUID) error
}

// TeamMemberRepositoryInterface defines the interface for team member repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByID(id uuid.UUID) (*models.TeamMember, error)
	GetWithTeam(id uuid.UUID) (*models.TeamMember, error)
	GetAll() ([]models.TeamMember, error)
	GetByTeamID(teamID uuid.UUID) ([]models.TeamMember, error)
	GetByRole(role string) ([]models.TeamMember, error)
	SearchByName(keyword string) ([]models.TeamMember, error)
	ExistsByEmail(email string) (bool, error)
	Update(member *models.TeamMember) error
	Delete(id uuid.UUID) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetWithTeams(id uuid.UUID) (*models.Project, error)
	GetAllWithTeams() ([]models.Project, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Project, error)
	Search(keyword string) ([]models.Project, error)
	ExistsByName(name string) (bool, error)
	Update(project *models.Project) error
	UpdateWithTeams(project *models.Project, teams []models.Team) error
	AddTeam(project *models.Project, team *models.Team) error
	RemoveTeam(project *models.Project, team *models.Team) error
	DeleteWithAssociations(id uuid.UUID) error
}
