//go:build integration
// +build integration

package repository

import (
	"testing"

	"team-management-backend/internal/database/models"
	"team-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.Create()

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
	suite.NotZero(team.UpdatedAt)
}

// TestCreateDuplicateName tests that the unique index rejects a second
// team with the same name
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	team1 := suite.factories.Team.WithName("duplicate-team")
	err := suite.repo.Create(team1)
	suite.NoError(err)

	team2 := suite.factories.Team.WithName("duplicate-team")

	err = suite.repo.Create(team2)
	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByID tests retrieving a team by ID
func (suite *TeamRepositoryTestSuite) TestGetByID() {
	team := suite.factories.Team.Create()
	err := suite.repo.Create(team)
	suite.NoError(err)

	found, err := suite.repo.GetByID(team.ID)

	suite.NoError(err)
	suite.Equal(team.ID, found.ID)
	suite.Equal(team.Name, found.Name)
}

// TestGetByIDNotFound tests retrieving a non-existent team
func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetWithRelations tests that members and projects come back preloaded
func (suite *TeamRepositoryTestSuite) TestGetWithRelations() {
	team := suite.factories.Team.Create()
	err := suite.repo.Create(team)
	suite.NoError(err)

	member := suite.factories.Member.WithTeam(team.ID)
	err = suite.baseTestSuite.DB.Create(member).Error
	suite.NoError(err)

	project := suite.factories.Project.WithTeams(*team)
	err = suite.baseTestSuite.DB.Create(project).Error
	suite.NoError(err)

	found, err := suite.repo.GetWithRelations(team.ID)

	suite.NoError(err)
	suite.Len(found.Members, 1)
	suite.Equal(member.Email, found.Members[0].Email)
	suite.Len(found.Projects, 1)
	suite.Equal(project.Name, found.Projects[0].Name)
	suite.Len(found.Projects[0].Teams, 1)
}

// TestGetAllWithRelations tests listing all teams ordered by name
func (suite *TeamRepositoryTestSuite) TestGetAllWithRelations() {
	teamB := suite.factories.Team.WithName("beta-team")
	teamA := suite.factories.Team.WithName("alpha-team")
	suite.NoError(suite.repo.Create(teamB))
	suite.NoError(suite.repo.Create(teamA))

	teams, err := suite.repo.GetAllWithRelations()

	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal("alpha-team", teams[0].Name)
	suite.Equal("beta-team", teams[1].Name)
}

// TestSearchByName tests case-insensitive substring search
func (suite *TeamRepositoryTestSuite) TestSearchByName() {
	suite.NoError(suite.repo.Create(suite.factories.Team.WithName("Platform Engineering")))
	suite.NoError(suite.repo.Create(suite.factories.Team.WithName("Mobile")))

	teams, err := suite.repo.SearchByName("platform")

	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal("Platform Engineering", teams[0].Name)
}

// TestSearchByNameNoMatch tests that search returns an empty slice, not an error
func (suite *TeamRepositoryTestSuite) TestSearchByNameNoMatch() {
	suite.NoError(suite.repo.Create(suite.factories.Team.WithName("Mobile")))

	teams, err := suite.repo.SearchByName("nonexistent")

	suite.NoError(err)
	suite.Empty(teams)
}

// TestExistsByID tests the existence check by ID
func (suite *TeamRepositoryTestSuite) TestExistsByID() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	exists, err := suite.repo.ExistsByID(team.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.ExistsByID(uuid.New())
	suite.NoError(err)
	suite.False(exists)
}

// TestExistsByName tests the existence check by name
func (suite *TeamRepositoryTestSuite) TestExistsByName() {
	team := suite.factories.Team.WithName("Payments")
	suite.NoError(suite.repo.Create(team))

	exists, err := suite.repo.ExistsByName("Payments")
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.ExistsByName("payments")
	suite.NoError(err)
	suite.False(exists)
}

// TestCountMembers tests counting the members of a team
func (suite *TeamRepositoryTestSuite) TestCountMembers() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	count, err := suite.repo.CountMembers(team.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Member.WithTeam(team.ID)).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Member.WithTeam(team.ID)).Error)

	count, err = suite.repo.CountMembers(team.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestUpdate tests updating a team's own columns
func (suite *TeamRepositoryTestSuite) TestUpdate() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	team.Name = "renamed-team"
	team.Description = "updated description"
	err := suite.repo.Update(team)
	suite.NoError(err)

	found, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal("renamed-team", found.Name)
	suite.Equal("updated description", found.Description)
}

// TestUpdateDoesNotTouchMembers tests that a Save with preloaded relations
// leaves member rows alone
func (suite *TeamRepositoryTestSuite) TestUpdateDoesNotTouchMembers() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	member := suite.factories.Member.WithTeam(team.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(member).Error)

	loaded, err := suite.repo.GetWithRelations(team.ID)
	suite.NoError(err)
	loaded.Members[0].Name = "should not persist"
	loaded.Description = "only this persists"

	suite.NoError(suite.repo.Update(loaded))

	var stored models.TeamMember
	suite.NoError(suite.baseTestSuite.DB.First(&stored, "id = ?", member.ID).Error)
	suite.Equal(member.Name, stored.Name)
}

// TestDeleteCascade tests that deleting a team removes its members and
// project associations but not the projects themselves
func (suite *TeamRepositoryTestSuite) TestDeleteCascade() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	member := suite.factories.Member.WithTeam(team.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(member).Error)

	project := suite.factories.Project.WithTeams(*team)
	suite.NoError(suite.baseTestSuite.DB.Create(project).Error)

	err := suite.repo.DeleteCascade(team.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var memberCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.TeamMember{}).
		Where("id = ?", member.ID).Count(&memberCount).Error)
	suite.Equal(int64(0), memberCount)

	var joinCount int64
	suite.NoError(suite.baseTestSuite.DB.Table("project_teams").
		Where("team_id = ?", team.ID).Count(&joinCount).Error)
	suite.Equal(int64(0), joinCount)

	var storedProject models.Project
	suite.NoError(suite.baseTestSuite.DB.First(&storedProject, "id = ?", project.ID).Error)
	suite.Equal(project.Name, storedProject.Name)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
