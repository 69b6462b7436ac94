package repository

import (
	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID without relations
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithRelations retrieves a team with its members and projects preloaded
func (r *TeamRepository) GetWithRelations(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").Preload("Projects.Teams").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAllWithRelations retrieves all teams with members and projects preloaded
func (r *TeamRepository) GetAllWithRelations() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Members").Preload("Projects.Teams").Order("teams.name").Find(&teams).Error
	return teams, err
}

// SearchByName searches teams by name, case-insensitive substring match
func (r *TeamRepository) SearchByName(keyword string) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Members").Preload("Projects.Teams").
		Where("name ILIKE ?", "%"+keyword+"%").
		Order("teams.name").
		Find(&teams).Error
	return teams, err
}

// ExistsByID checks if a team exists by ID
func (r *TeamRepository) ExistsByID(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ExistsByName checks if a team with the given name exists
func (r *TeamRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// CountMembers returns the number of members in a team
func (r *TeamRepository) CountMembers(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// Update updates a team's own columns. Preloaded relations are omitted so
// a Save never writes through to member or project rows.
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Omit(clause.Associations).Save(team).Error
}

// DeleteCascade deletes a team together with every member it owns and its
// project associations, in a single transaction. The cascade is explicit
// application logic: a member row is removed only here, never when the
// association alone is cleared.
func (r *TeamRepository) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TeamMember{}, "team_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM project_teams WHERE team_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, "id = ?", id).Error
	})
}
