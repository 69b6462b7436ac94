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

// TeamMemberService handles business logic for team members, including the
// owning side of the team-member association
type TeamMemberService struct {
	repo      repository.TeamMemberRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamMemberService creates a new team member service
func NewTeamMemberService(repo repository.TeamMemberRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamMemberService {
	return &TeamMemberService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// MemberRequest represents the request body to create or update a member.
// A nil TeamID on update unassigns the member; there is no way to leave the
// assignment untouched.
type MemberRequest struct {
	Name   string     `json:"name" validate:"required,min=1,max=100"`
	Email  string     `json:"email" validate:"required,email,max=100"`
	Role   string     `json:"role" validate:"max=50"`
	TeamID *uuid.UUID `json:"team_id"`
}

// MemberResponse represents the response for member operations
type MemberResponse struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Role      string       `json:"role,omitempty"`
	Team      *TeamSummary `json:"team,omitempty"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
}

// Create creates a new member, optionally assigned to a team. The email
// must be unique across all members.
func (s *TeamMemberService) Create(req *MemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationErrors(err)
	}

	exists, err := s.repo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing member by email: %w", err)
	}
	if exists {
		return nil, apperrors.NewMemberEmailExists(req.Email)
	}

	member := &models.TeamMember{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}

	if req.TeamID != nil {
		if _, err := s.resolveTeam(*req.TeamID); err != nil {
			return nil, err
		}
		member.TeamID = req.TeamID
	}

	if err := s.repo.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewMemberEmailExists(req.Email)
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	logger.New().WithField("member_id", member.ID).Infof("Created member '%s'", member.Email)

	return s.toResponse(member)
}

// GetByID retrieves a member by ID
func (s *TeamMemberService) GetByID(id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetWithTeam(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewMemberNotFound(id)
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return s.toResponse(member)
}

// GetAll retrieves all members
func (s *TeamMemberService) GetAll() ([]MemberResponse, error) {
	members, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	return s.toResponses(members)
}

// GetByTeam retrieves all members assigned to a team
func (s *TeamMemberService) GetByTeam(teamID uuid.UUID) ([]MemberResponse, error) {
	exists, err := s.teamRepo.ExistsByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to check team: %w", err)
	}
	if !exists {
		return nil, apperrors.NewTeamNotFound(teamID)
	}

	members, err := s.repo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	return s.toResponses(members)
}

// GetByRole retrieves all members with the given role
func (s *TeamMemberService) GetByRole(role string) ([]MemberResponse, error) {
	members, err := s.repo.GetByRole(role)
	if err != nil {
		return nil, fmt.Errorf("failed to get members by role: %w", err)
	}
	return s.toResponses(members)
}

// Search searches members by name, case-insensitive
func (s *TeamMemberService) Search(keyword string) ([]MemberResponse, error) {
	members, err := s.repo.SearchByName(keyword)
	if err != nil {
		return nil, fmt.Errorf("failed to search members: %w", err)
	}
	return s.toResponses(members)
}

// Update updates a member. An email change is rejected when the new email
// collides with another member. A nil TeamID clears the assignment.
func (s *TeamMemberService) Update(id uuid.UUID, req *MemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationErrors(err)
	}

	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewMemberNotFound(id)
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if member.Email != req.Email {
		exists, err := s.repo.ExistsByEmail(req.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing member by email: %w", err)
		}
		if exists {
			return nil, apperrors.NewMemberEmailExists(req.Email)
		}
	}

	member.Name = req.Name
	member.Email = req.Email
	member.Role = req.Role

	if req.TeamID != nil {
		if _, err := s.resolveTeam(*req.TeamID); err != nil {
			return nil, err
		}
		member.TeamID = req.TeamID
	} else {
		member.TeamID = nil
	}

	if err := s.repo.Update(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewMemberEmailExists(req.Email)
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return s.toResponse(member)
}

// AssignToTeam assigns a member to a team. Re-assigning to the same team is
// a no-op beyond the update timestamp refresh.
func (s *TeamMemberService) AssignToTeam(memberID, teamID uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewMemberNotFound(memberID)
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if _, err := s.resolveTeam(teamID); err != nil {
		return nil, err
	}

	member.TeamID = &teamID
	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to assign member to team: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"member_id": memberID,
		"team_id":   teamID,
	}).Info("Assigned member to team")

	return s.toResponse(member)
}

// RemoveFromTeam clears a member's team assignment. Unassigning a member
// that has no team is a caller error, not a silent no-op.
func (s *TeamMemberService) RemoveFromTeam(memberID uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewMemberNotFound(memberID)
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	if member.TeamID == nil {
		return nil, apperrors.ErrMemberNotAssigned
	}

	member.TeamID = nil
	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to remove member from team: %w", err)
	}

	logger.New().WithField("member_id", memberID).Info("Removed member from team")

	return s.toResponse(member)
}

// Delete deletes a member
func (s *TeamMemberService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewMemberNotFound(id)
		}
		return fmt.Errorf("failed to get member: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	logger.New().WithField("member_id", id).Info("Deleted member")

	return nil
}

func (s *TeamMemberService) resolveTeam(teamID uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewTeamNotFound(teamID)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// toResponse converts a member model to a response. The team summary is
// computed on read from the team row and its member count.
func (s *TeamMemberService) toResponse(member *models.TeamMember) (*MemberResponse, error) {
	resp := &MemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		Email:     member.Email,
		Role:      member.Role,
		CreatedAt: member.CreatedAt.Format(timestampFormat),
		UpdatedAt: member.UpdatedAt.Format(timestampFormat),
	}

	if member.TeamID != nil {
		team := member.Team
		if team == nil {
			var err error
			team, err = s.resolveTeam(*member.TeamID)
			if err != nil {
				return nil, err
			}
		}
		count, err := s.teamRepo.CountMembers(team.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count team members: %w", err)
		}
		resp.Team = &TeamSummary{
			ID:          team.ID,
			Name:        team.Name,
			MemberCount: int(count),
		}
	}

	return resp, nil
}

func (s *TeamMemberService) toResponses(members []models.TeamMember) ([]MemberResponse, error) {
	responses := make([]MemberResponse, len(members))
	for i := range members {
		resp, err := s.toResponse(&members[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}
	return responses, nil
}
