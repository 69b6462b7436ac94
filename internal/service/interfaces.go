package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for the team service
type TeamServiceInterface interface {
	Create(req *TeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	GetByIDWithMembers(id uuid.UUID) (*TeamResponse, error)
	GetAll() ([]TeamResponse, error)
	GetAllWithMembers() ([]TeamResponse, error)
	Search(keyword string) ([]TeamResponse, error)
	Update(id uuid.UUID, req *TeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
}

// TeamMemberServiceInterface defines the interface for the team member service
type TeamMemberServiceInterface interface {
	Create(req *MemberRequest) (*MemberResponse, error)
	GetByID(id uuid.UUID) (*MemberResponse, error)
	GetAll() ([]MemberResponse, error)
	GetByTeam(teamID uuid.UUID) ([]MemberResponse, error)
	GetByRole(role string) ([]MemberResponse, error)
	Search(keyword string) ([]MemberResponse, error)
	Update(id uuid.UUID, req *MemberRequest) (*MemberResponse, error)
	AssignToTeam(memberID, teamID uuid.UUID) (*MemberResponse, error)
	RemoveFromTeam(memberID uuid.UUID) (*MemberResponse, error)
	Delete(id uuid.UUID) error
}

// ProjectServiceInterface defines the interface for the project service
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectResponse, error)
	GetAll() ([]ProjectResponse, error)
	GetByTeam(teamID uuid.UUID) ([]ProjectResponse, error)
	Search(keyword string) ([]ProjectResponse, error)
	Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	AssignTeam(projectID, teamID uuid.UUID) (*ProjectResponse, error)
	RemoveTeam(projectID, teamID uuid.UUID) (*ProjectResponse, error)
	Delete(id uuid.UUID) error
}
