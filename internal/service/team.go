package service

import (
	"errors"
	"fmt"

	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/logger"
	"team-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const timestampFormat = "2006-01-02T15:04:05Z07:00"

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// TeamRequest represents the request body to create or update a team
type TeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// TeamSummary is the compact team view embedded in member and project responses
type TeamSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	MemberCount int       `json:"member_count"`
}

// MemberSummary is the compact member view embedded in detailed team responses
type MemberSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role,omitempty"`
}

// ProjectSummary is the compact project view embedded in detailed team responses
type ProjectSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TeamCount int       `json:"team_count"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	MemberCount  int              `json:"member_count"`
	ProjectCount int              `json:"project_count"`
	Members      []MemberSummary  `json:"members,omitempty"`
	Projects     []ProjectSummary `json:"projects,omitempty"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}

// Create creates a new team. The name must be unique across all teams.
func (s *TeamService) Create(req *TeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationErrors(err)
	}

	exists, err := s.repo.ExistsByName(req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if exists {
		return nil, apperrors.NewTeamNameExists(req.Name)
	}

	team := &models.Team{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(team); err != nil {
		// The unique index is the backstop for a concurrent writer winning
		// the race between the check above and this insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewTeamNameExists(req.Name)
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.New().WithField("team_id", team.ID).Infof("Created team '%s'", team.Name)

	return s.toResponse(team, false), nil
}

// GetByID retrieves a team by ID with member and project counts
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewTeamNotFound(id)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponse(team, false), nil
}

// GetByIDWithMembers retrieves a team by ID with its member and project sets expanded
func (s *TeamService) GetByIDWithMembers(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewTeamNotFound(id)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponse(team, true), nil
}

// GetAll retrieves all teams with member and project counts
func (s *TeamService) GetAll() ([]TeamResponse, error) {
	return s.list(false)
}

// GetAllWithMembers retrieves all teams with their member and project sets expanded
func (s *TeamService) GetAllWithMembers() ([]TeamResponse, error) {
	return s.list(true)
}

func (s *TeamService) list(detailed bool) ([]TeamResponse, error) {
	teams, err := s.repo.GetAllWithRelations()
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *s.toResponse(&team, detailed)
	}
	return responses, nil
}

// Search searches teams by name, case-insensitive
func (s *TeamService) Search(keyword string) ([]TeamResponse, error) {
	teams, err := s.repo.SearchByName(keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *s.toResponse(&team, false)
	}
	return responses, nil
}

// Update updates a team's name and description. A name change is rejected
// when the new name collides with another team.
func (s *TeamService) Update(id uuid.UUID, req *TeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationErrors(err)
	}

	team, err := s.repo.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewTeamNotFound(id)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if team.Name != req.Name {
		exists, err := s.repo.ExistsByName(req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing team by name: %w", err)
		}
		if exists {
			return nil, apperrors.NewTeamNameExists(req.Name)
		}
	}

	team.Name = req.Name
	team.Description = req.Description

	if err := s.repo.Update(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewTeamNameExists(req.Name)
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team, false), nil
}

// Delete deletes a team and cascades to every member it owns. Project
// associations are removed; the projects themselves are untouched.
func (s *TeamService) Delete(id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check team: %w", err)
	}
	if !exists {
		return apperrors.NewTeamNotFound(id)
	}

	if err := s.repo.DeleteCascade(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	logger.New().WithField("team_id", id).Info("Deleted team with its members and project links")

	return nil
}

// toResponse converts a team model to a response. Relations must be
// preloaded; counts fall out of the loaded slices.
func (s *TeamService) toResponse(team *models.Team, detailed bool) *TeamResponse {
	resp := &TeamResponse{
		ID:           team.ID,
		Name:         team.Name,
		Description:  team.Description,
		MemberCount:  len(team.Members),
		ProjectCount: len(team.Projects),
		CreatedAt:    team.CreatedAt.Format(timestampFormat),
		UpdatedAt:    team.UpdatedAt.Format(timestampFormat),
	}

	if detailed {
		resp.Members = make([]MemberSummary, len(team.Members))
		for i, member := range team.Members {
			resp.Members[i] = MemberSummary{
				ID:    member.ID,
				Name:  member.Name,
				Email: member.Email,
				Role:  member.Role,
			}
		}
		resp.Projects = make([]ProjectSummary, len(team.Projects))
		for i, project := range team.Projects {
			resp.Projects[i] = ProjectSummary{
				ID:        project.ID,
				Name:      project.Name,
				TeamCount: len(project.Teams),
			}
		}
	}

	return resp
}
