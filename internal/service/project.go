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

// ProjectService handles business logic for projects and the symmetric
// project-team many-to-many association
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name        string      `json:"name" validate:"required,min=1,max=100"`
	Description string      `json:"description" validate:"max=500"`
	TeamIDs     []uuid.UUID `json:"team_ids"`
}

// UpdateProjectRequest represents the request to update a project. A nil
// TeamIDs leaves the associations untouched; a present set, including the
// empty set, replaces them in full.
type UpdateProjectRequest struct {
	Name        string       `json:"name" validate:"required,min=1,max=100"`
	Description string       `json:"description" validate:"max=500"`
	TeamIDs     *[]uuid.UUID `json:"team_ids"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Teams       []TeamSummary `json:"teams"`
	TeamCount   int           `json:"team_count"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}

// Create creates a new project, optionally associated with teams. Every
// team id must resolve before anything is persisted; the project row and
// the association rows are then written in one transaction.
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationErrors(err)
	}

	exists, err := s.repo.ExistsByName(req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing project by name: %w", err)
	}
	if exists {
		return nil, apperrors.NewProjectNameExists(req.Name)
	}

	project := &models.Project{
		Name:        req.Name,
		Description: req.Description,
	}

	if len(req.TeamIDs) > 0 {
		teams, err := s.resolveTeams(req.TeamIDs)
		if err != nil {
			return nil, err
		}
		project.Teams = teams
	}

	if err := s.repo.Create(project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewProjectNameExists(req.Name)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	logger.New().WithField("project_id", project.ID).Infof("Created project '%s'", project.Name)

	return s.respond(project.ID)
}

// GetByID retrieves a project by ID with its assigned teams
func (s *ProjectService) GetByID(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.repo.GetWithTeams(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewProjectNotFound(id)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return s.toResponse(project), nil
}

// GetAll retrieves all projects with their assigned teams
func (s *ProjectService) GetAll() ([]ProjectResponse, error) {
	projects, err := s.repo.GetAllWithTeams()
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return s.toResponses(projects), nil
}

// GetByTeam retrieves all projects associated with a team
func (s *ProjectService) GetByTeam(teamID uuid.UUID) ([]ProjectResponse, error) {
	exists, err := s.teamRepo.ExistsByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to check team: %w", err)
	}
	if !exists {
		return nil, apperrors.NewTeamNotFound(teamID)
	}

	projects, err := s.repo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects by team: %w", err)
	}
	return s.toResponses(projects), nil
}

// Search searches projects by name or description, case-insensitive
func (s *ProjectService) Search(keyword string) ([]ProjectResponse, error) {
	projects, err := s.repo.Search(keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search projects: %w", err)
	}
	return s.toResponses(projects), nil
}

// Update updates a project. When TeamIDs is present the full association
// set is replaced; every id must resolve before any mutation is applied.
func (s *ProjectService) Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationErrors(err)
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewProjectNotFound(id)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project.Name != req.Name {
		exists, err := s.repo.ExistsByName(req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing project by name: %w", err)
		}
		if exists {
			return nil, apperrors.NewProjectNameExists(req.Name)
		}
	}

	project.Name = req.Name
	project.Description = req.Description

	if req.TeamIDs != nil {
		teams, err := s.resolveTeams(*req.TeamIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.UpdateWithTeams(project, teams); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.NewProjectNameExists(req.Name)
			}
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
	} else {
		if err := s.repo.Update(project); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.NewProjectNameExists(req.Name)
			}
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
	}

	return s.respond(project.ID)
}

// AssignTeam adds a team to a project. Adding an already-assigned team is
// idempotent: no duplicate, no error.
func (s *ProjectService) AssignTeam(projectID, teamID uuid.UUID) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewProjectNotFound(projectID)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	team, err := s.resolveTeam(teamID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddTeam(project, team); err != nil {
		return nil, fmt.Errorf("failed to assign team to project: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"project_id": projectID,
		"team_id":    teamID,
	}).Info("Assigned team to project")

	return s.respond(projectID)
}

// RemoveTeam removes a team from a project. Removing an absent association
// is a silent no-op, unlike unassigning an unassigned member.
func (s *ProjectService) RemoveTeam(projectID, teamID uuid.UUID) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewProjectNotFound(projectID)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	team, err := s.resolveTeam(teamID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RemoveTeam(project, team); err != nil {
		return nil, fmt.Errorf("failed to remove team from project: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"project_id": projectID,
		"team_id":    teamID,
	}).Info("Removed team from project")

	return s.respond(projectID)
}

// Delete deletes a project and its association rows only; the referenced
// teams always survive a project delete.
func (s *ProjectService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewProjectNotFound(id)
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.repo.DeleteWithAssociations(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	logger.New().WithField("project_id", id).Info("Deleted project and its team links")

	return nil
}

// resolveTeams resolves every id or fails on the first missing one, before
// any mutation happens (all-or-nothing).
func (s *ProjectService) resolveTeams(teamIDs []uuid.UUID) ([]models.Team, error) {
	teams := make([]models.Team, 0, len(teamIDs))
	seen := make(map[uuid.UUID]struct{}, len(teamIDs))
	for _, teamID := range teamIDs {
		if _, ok := seen[teamID]; ok {
			continue
		}
		seen[teamID] = struct{}{}

		team, err := s.resolveTeam(teamID)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	return teams, nil
}

func (s *ProjectService) resolveTeam(teamID uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewTeamNotFound(teamID)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// respond re-reads the project with teams preloaded so the response
// reflects the committed association state.
func (s *ProjectService) respond(id uuid.UUID) (*ProjectResponse, error) {
	project, err := s.repo.GetWithTeams(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload project: %w", err)
	}
	return s.toResponse(project), nil
}

func (s *ProjectService) toResponse(project *models.Project) *ProjectResponse {
	teams := make([]TeamSummary, len(project.Teams))
	for i, team := range project.Teams {
		teams[i] = TeamSummary{
			ID:          team.ID,
			Name:        team.Name,
			MemberCount: len(team.Members),
		}
	}

	return &ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Teams:       teams,
		TeamCount:   len(teams),
		CreatedAt:   project.CreatedAt.Format(timestampFormat),
		UpdatedAt:   project.UpdatedAt.Format(timestampFormat),
	}
}

func (s *ProjectService) toResponses(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *s.toResponse(&projects[i])
	}
	return responses
}
