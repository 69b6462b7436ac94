package repository

import (
	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new team member
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID without relations
func (r *TeamMemberRepository) GetByID(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetWithTeam retrieves a member with their team preloaded
func (r *TeamMemberRepository) GetWithTeam(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.Preload("Team").First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll retrieves all members with their teams preloaded
func (r *TeamMemberRepository) GetAll() ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Preload("Team").Order("team_members.name").Find(&members).Error
	return members, err
}

// GetByTeamID retrieves all members assigned to a team
func (r *TeamMemberRepository) GetByTeamID(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Preload("Team").Where("team_id = ?", teamID).Order("team_members.name").Find(&members).Error
	return members, err
}

// GetByRole retrieves all members with the given role
func (r *TeamMemberRepository) GetByRole(role string) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Preload("Team").Where("role = ?", role).Order("team_members.name").Find(&members).Error
	return members, err
}

// SearchByName searches members by name, case-insensitive substring match
func (r *TeamMemberRepository) SearchByName(keyword string) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Preload("Team").
		Where("name ILIKE ?", "%"+keyword+"%").
		Order("team_members.name").
		Find(&members).Error
	return members, err
}

// ExistsByEmail checks if a member with the given email exists
func (r *TeamMemberRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Update updates a member. Save writes all columns, so a nil TeamID
// clears the team_id foreign key.
func (r *TeamMemberRepository) Update(member *models.TeamMember) error {
	return r.db.Omit(clause.Associations).Save(member).Error
}

// Delete deletes a member
func (r *TeamMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.TeamMember{}, "id = ?", id).Error
}
