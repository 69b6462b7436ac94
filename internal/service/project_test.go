package service_test

import (
	"testing"

	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/mocks"
	"team-management-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockTeamRepo    *mocks.MockTeamRepositoryInterface
	projectService  *service.ProjectService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.projectService = service.NewProjectService(suite.mockProjectRepo, suite.mockTeamRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateProject tests creating a project without teams
func (suite *ProjectServiceTestSuite) TestCreateProject() {
	req := &service.CreateProjectRequest{
		Name:        "Checkout Revamp",
		Description: "New checkout flow",
	}

	suite.mockProjectRepo.EXPECT().
		ExistsByName(req.Name).
		Return(false, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Project) error {
			p.ID = uuid.New()
			return nil
		}).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetWithTeams(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.Project, error) {
			return &models.Project{
				BaseModel:   models.BaseModel{ID: id},
				Name:        req.Name,
				Description: req.Description,
			}, nil
		}).
		Times(1)

	response, err := suite.projectService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), 0, response.TeamCount)
	assert.Empty(suite.T(), response.Teams)
}

// TestCreateProjectWithTeams tests all-or-nothing team resolution on create
func (suite *ProjectServiceTestSuite) TestCreateProjectWithTeams() {
	teamA := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Payments"}
	teamB := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Mobile"}
	req := &service.CreateProjectRequest{
		Name:    "Checkout Revamp",
		TeamIDs: []uuid.UUID{teamA.ID, teamB.ID},
	}

	suite.mockProjectRepo.EXPECT().
		ExistsByName(req.Name).
		Return(false, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(teamA.ID).
		Return(&teamA, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(teamB.ID).
		Return(&teamB, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Project) error {
			assert.Len(suite.T(), p.Teams, 2)
			p.ID = uuid.New()
			return nil
		}).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetWithTeams(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.Project, error) {
			return &models.Project{
				BaseModel: models.BaseModel{ID: id},
				Name:      req.Name,
				Teams:     []models.Team{teamA, teamB},
			}, nil
		}).
		Times(1)

	response, err := suite.projectService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, response.TeamCount)
	assert.Len(suite.T(), response.Teams, 2)
}

// TestCreateProjectWithMissingTeam tests that one unknown team id fails the
// whole create before anything is persisted
func (suite *ProjectServiceTestSuite) TestCreateProjectWithMissingTeam() {
	knownID := uuid.New()
	missingID := uuid.New()
	req := &service.CreateProjectRequest{
		Name:    "Checkout Revamp",
		TeamIDs: []uuid.UUID{knownID, missingID},
	}

	suite.mockProjectRepo.EXPECT().
		ExistsByName(req.Name).
		Return(false, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(knownID).
		Return(&models.Team{BaseModel: models.BaseModel{ID: knownID}}, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(missingID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.projectService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
	assert.Equal(suite.T(), "Team not found with id: "+missingID.String(), err.Error())
}

// TestCreateProjectDuplicateTeamIDs tests that duplicate ids collapse to one
func (suite *ProjectServiceTestSuite) TestCreateProjectDuplicateTeamIDs() {
	team := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Payments"}
	req := &service.CreateProjectRequest{
		Name:    "Checkout Revamp",
		TeamIDs: []uuid.UUID{team.ID, team.ID},
	}

	suite.mockProjectRepo.EXPECT().
		ExistsByName(req.Name).
		Return(false, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(team.ID).
		Return(&team, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Project) error {
			assert.Len(suite.T(), p.Teams, 1)
			p.ID = uuid.New()
			return nil
		}).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetWithTeams(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.Project, error) {
			return &models.Project{
				BaseModel: models.BaseModel{ID: id},
				Name:      req.Name,
				Teams:     []models.Team{team},
			}, nil
		}).
		Times(1)

	response, err := suite.projectService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.TeamCount)
}

// TestCreateProjectDuplicateName tests creating a project with a taken name
func (suite *ProjectServiceTestSuite) TestCreateProjectDuplicateName() {
	req := &service.CreateProjectRequest{Name: "Checkout Revamp"}

	suite.mockProjectRepo.EXPECT().
		ExistsByName(req.Name).
		Return(true, nil).
		Times(1)

	response, err := suite.projectService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
	assert.Equal(suite.T(), "Project with name 'Checkout Revamp' already exists", err.Error())
}

// TestGetProjectByIDNotFound tests retrieving a missing project
func (suite *ProjectServiceTestSuite) TestGetProjectByIDNotFound() {
	projectID := uuid.New()

	suite.mockProjectRepo.EXPECT().
		GetWithTeams(projectID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.projectService.GetByID(projectID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), "Project not found with id: "+projectID.String(), err.Error())
}

// TestGetProjectsByTeamNotFound tests listing projects of a missing team
func (suite *ProjectServiceTestSuite) TestGetProjectsByTeamNotFound() {
	teamID := uuid.New()

	suite.mockTeamRepo.EXPECT().
		ExistsByID(teamID).
		Return(false, nil).
		Times(1)

	responses, err := suite.projectService.GetByTeam(teamID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), responses)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestUpdateProjectWithoutTeamIDs tests that a nil team set leaves
// associations untouched
func (suite *ProjectServiceTestSuite) TestUpdateProjectWithoutTeamIDs() {
	projectID := uuid.New()
	project := &models.Project{
		BaseModel: models.BaseModel{ID: projectID},
		Name:      "Checkout Revamp",
	}
	req := &service.UpdateProjectRequest{
		Name:        "Checkout Revamp",
		Description: "Updated description",
	}

	suite.mockProjectRepo.EXPECT().
		GetByID(projectID).
		Return(project, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetWithTeams(projectID).
		Return(&models.Project{
			BaseModel:   models.BaseModel{ID: projectID},
			Name:        req.Name,
			Description: req.Description,
		}, nil).
		Times(1)

	response, err := suite.projectService.Update(projectID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Updated description", response.Description)
}

// TestUpdateProjectReplacesTeams tests that a present team set replaces in full
func (suite *ProjectServiceTestSuite) TestUpdateProjectReplacesTeams() {
	projectID := uuid.New()
	team := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Mobile"}
	project := &models.Project{
		BaseModel: models.BaseModel{ID: projectID},
		Name:      "Checkout Revamp",
	}
	teamIDs := []uuid.UUID{team.ID}
	req := &service.UpdateProjectRequest{
		Name:    "Checkout Revamp",
		TeamIDs: &teamIDs,
	}

	suite.mockProjectRepo.EXPECT().
		GetByID(projectID).
		Return(project, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(team.ID).
		Return(&team, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		UpdateWithTeams(gomock.Any(), gomock.Len(1)).
		Return(nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetWithTeams(projectID).
		Return(&models.Project{
			BaseModel: models.BaseModel{ID: projectID},
			Name:      req.Name,
			Teams:     []models.Team{team},
		}, nil).
		Times(1)

	response, err := suite.projectService.Update(projectID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.TeamCount)
	assert.Equal(suite.T(), "Mobile", response.Teams[0].Name)
}

// TestUpdateProjectClearsTeamsWithEmptySet tests that an empty team set
// clears every association
func (suite *ProjectServiceTestSuite) TestUpdateProjectClearsTeamsWithEmptySet() {
	projectID := uuid.New()
	project := &models.Project{
		BaseModel: models.BaseModel{ID: projectID},
		Name:      "Checkout Revamp",
	}
	teamIDs := []uuid.UUID{}
	req := &service.UpdateProjectRequest{
		Name:    "Checkout Revamp",
		TeamIDs: &teamIDs,
	}

	suite.mockProjectRepo.EXPECT().
		GetByID(projectID).
		Return(project, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		UpdateWithTeams(gomock.Any(), gomock.Len(0)).
		Return(nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetWithTeams(projectID).
		Return(&models.Project{
			BaseModel: models.BaseModel{ID: projectID},
			Name:      req.Name,
		}, nil).
		Times(1)

	response, err := suite.projectService.Update(projectID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, response.TeamCount)
}

// TestAssignTeam tests adding a team to a project
func (suite *ProjectServiceTestSuite) TestAssignTeam() {
	projectID := uuid.New()
	team := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Payments"}
	project := &models.Project{
		BaseModel: models.BaseModel{ID: projectID},
		Name:      "Checkout Revamp",
	}

	suite.mockProjectRepo.EXPECT().
		GetByID(projectID).
		Return(project, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(team.ID).
		Return(&team, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		AddTeam(project, &team).
		Return(nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetWithTeams(projectID).
		Return(&models.Project{
			BaseModel: models.BaseModel{ID: projectID},
			Name:      project.Name,
			Teams:     []models.Team{team},
		}, nil).
		Times(1)

	response, err := suite.projectService.AssignTeam(projectID, team.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.TeamCount)
}

// TestAssignTeamMissingTeam tests that assigning a missing team fails
func (suite *ProjectServiceTestSuite) TestAssignTeamMissingTeam() {
	projectID := uuid.New()
	teamID := uuid.New()
	project := &models.Project{
		BaseModel: models.BaseModel{ID: projectID},
		Name:      "Checkout Revamp",
	}

	suite.mockProjectRepo.EXPECT().
		GetByID(projectID).
		Return(project, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(teamID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.projectService.AssignTeam(projectID, teamID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

// TestRemoveTeamAbsentAssociation tests that removing an unlinked team is
// a silent no-op
func (suite *ProjectServiceTestSuite) TestRemoveTeamAbsentAssociation() {
	projectID := uuid.New()
	team := models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Payments"}
	project := &models.Project{
		BaseModel: models.BaseModel{ID: projectID},
		Name:      "Checkout Revamp",
	}

	suite.mockProjectRepo.EXPECT().
		GetByID(projectID).
		Return(project, nil).
		Times(1)

	suite.mockTeamRepo.EXPECT().
		GetByID(team.ID).
		Return(&team, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		RemoveTeam(project, &team).
		Return(nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetWithTeams(projectID).
		Return(&models.Project{
			BaseModel: models.BaseModel{ID: projectID},
			Name:      project.Name,
		}, nil).
		Times(1)

	response, err := suite.projectService.RemoveTeam(projectID, team.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, response.TeamCount)
}

// TestDeleteProject tests that a project delete removes associations only
func (suite *ProjectServiceTestSuite) TestDeleteProject() {
	projectID := uuid.New()
	project := &models.Project{
		BaseModel: models.BaseModel{ID: projectID},
		Name:      "Checkout Revamp",
	}

	suite.mockProjectRepo.EXPECT().
		GetByID(projectID).
		Return(project, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		DeleteWithAssociations(projectID).
		Return(nil).
		Times(1)

	err := suite.projectService.Delete(projectID)

	assert.NoError(suite.T(), err)
}

// TestDeleteProjectNotFound tests deleting a missing project
func (suite *ProjectServiceTestSuite) TestDeleteProjectNotFound() {
	projectID := uuid.New()

	suite.mockProjectRepo.EXPECT().
		GetByID(projectID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.projectService.Delete(projectID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
