package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"team-management-backend/internal/config"
	"team-management-backend/internal/database"
	"team-management-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed file schema
type TeamData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type MemberData struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role,omitempty"`
	TeamName string `yaml:"team_name,omitempty"`
}

type ProjectData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	TeamNames   []string `yaml:"team_names,omitempty"`
}

type SeedData struct {
	Teams    []TeamData    `yaml:"teams"`
	Members  []MemberData  `yaml:"members"`
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 30, 2*time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seedFile := "scripts/data/seed.yaml"
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}

	if err := loadSeedFile(db, seedFile); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range data.Teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(data.Teams))

	memberCreated := 0
	for _, memberData := range data.Members {
		_, created, err := createMember(db, memberData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create member %s: %w", memberData.Email, err)
		}
		if created {
			memberCreated++
		}
	}
	log.Printf("Members: %d created, %d total", memberCreated, len(data.Members))

	projectCreated := 0
	for _, projectData := range data.Projects {
		_, created, err := createProject(db, projectData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create project %s: %w", projectData.Name, err)
		}
		if created {
			projectCreated++
		}
	}
	log.Printf("Projects: %d created, %d total", projectCreated, len(data.Projects))

	return nil
}

func createTeam(db *gorm.DB, data TeamData) (*models.Team, bool, error) {
	var existing models.Team
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	team := models.Team{
		Name:        data.Name,
		Description: data.Description,
	}
	if err := db.Create(&team).Error; err != nil {
		return nil, false, err
	}
	return &team, true, nil
}

func createMember(db *gorm.DB, data MemberData, teamMap map[string]*models.Team) (*models.TeamMember, bool, error) {
	var existing models.TeamMember
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	member := models.TeamMember{
		Name:  data.Name,
		Email: data.Email,
		Role:  data.Role,
	}
	if data.TeamName != "" {
		team, ok := teamMap[data.TeamName]
		if !ok {
			return nil, false, fmt.Errorf("unknown team %q", data.TeamName)
		}
		member.TeamID = &team.ID
	}
	if err := db.Create(&member).Error; err != nil {
		return nil, false, err
	}
	return &member, true, nil
}

func createProject(db *gorm.DB, data ProjectData, teamMap map[string]*models.Team) (*models.Project, bool, error) {
	var existing models.Project
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	project := models.Project{
		Name:        data.Name,
		Description: data.Description,
	}
	for _, teamName := range data.TeamNames {
		team, ok := teamMap[teamName]
		if !ok {
			return nil, false, fmt.Errorf("unknown team %q", teamName)
		}
		project.Teams = append(project.Teams, *team)
	}
	if err := db.Create(&project).Error; err != nil {
		return nil, false, err
	}
	return &project, true, nil
}
