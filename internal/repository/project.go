package repository

import (
	"time"

	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects and the
// project_teams association
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project. When project.Teams is populated the join
// rows are inserted in the same transaction as the project row, so a
// failed association insert leaves no partial project behind.
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID without relations
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithTeams retrieves a project with its teams and their members preloaded
func (r *ProjectRepository) GetWithTeams(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Teams.Members").First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAllWithTeams retrieves all projects with teams and their members preloaded
func (r *ProjectRepository) GetAllWithTeams() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Teams.Members").Order("projects.name").Find(&projects).Error
	return projects, err
}

// GetByTeamID retrieves all projects associated with a team
func (r *ProjectRepository) GetByTeamID(teamID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Teams.Members").
		Joins("JOIN project_teams ON project_teams.project_id = projects.id").
		Where("project_teams.team_id = ?", teamID).
		Order("projects.name").
		Find(&projects).Error
	return projects, err
}

// Search searches projects by name or description, case-insensitive substring match
func (r *ProjectRepository) Search(keyword string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Teams.Members").
		Where("name ILIKE ? OR description ILIKE ?", "%"+keyword+"%", "%"+keyword+"%").
		Order("projects.name").
		Find(&projects).Error
	return projects, err
}

// ExistsByName checks if a project with the given name exists
func (r *ProjectRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Update updates a project's own columns; associations are managed separately
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Omit(clause.Associations).Save(project).Error
}

// UpdateWithTeams updates the project's columns and replaces its full team
// association in one transaction, so a failed replace rolls back the field
// changes too. An empty slice clears every association.
func (r *ProjectRepository) UpdateWithTeams(project *models.Project, teams []models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(project).Error; err != nil {
			return err
		}
		assoc := tx.Model(project).Omit("Teams.*").Association("Teams")
		if len(teams) == 0 {
			return assoc.Clear()
		}
		return assoc.Replace(teams)
	})
}

// AddTeam inserts the project-team association. The join-table upsert makes
// a repeated add a no-op, so the operation is idempotent. The project's
// update timestamp is refreshed in the same transaction.
func (r *ProjectRepository) AddTeam(project *models.Project, team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(project).Omit("Teams.*").Association("Teams").Append(team); err != nil {
			return err
		}
		return tx.Model(&models.Project{}).Where("id = ?", project.ID).
			Update("updated_at", time.Now()).Error
	})
}

// RemoveTeam deletes the project-team association. Removing an absent
// association is a no-op.
func (r *ProjectRepository) RemoveTeam(project *models.Project, team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(project).Association("Teams").Delete(team); err != nil {
			return err
		}
		return tx.Model(&models.Project{}).Where("id = ?", project.ID).
			Update("updated_at", time.Now()).Error
	})
}

// DeleteWithAssociations removes the project and its association rows only.
// Teams are never touched by a project delete.
func (r *ProjectRepository) DeleteWithAssociations(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM project_teams WHERE project_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}
