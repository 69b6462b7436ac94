package handlers_test

import (
	"net/http"
	"testing"

	"team-management-backend/internal/api/handlers"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/mocks"
	"team-management-backend/internal/service"
	"team-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamMemberHandlerTestSuite defines the test suite for TeamMemberHandler
type TeamMemberHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamMemberServiceInterface
	handler     *handlers.TeamMemberHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamMemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamMemberServiceInterface(suite.ctrl)

	suite.handler = handlers.NewTeamMemberHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api")
	members := api.Group("/members")
	{
		members.GET("", suite.handler.GetMembers)
		members.POST("", suite.handler.CreateMember)
		members.GET("/search", suite.handler.SearchMembers)
		members.GET("/role", suite.handler.GetMembersByRole)
		members.GET("/team/:teamId", suite.handler.GetMembersByTeam)
		members.GET("/:id", suite.handler.GetMember)
		members.PUT("/:id", suite.handler.UpdateMember)
		members.DELETE("/:id", suite.handler.DeleteMember)
		members.PUT("/:id/assign/:teamId", suite.handler.AssignMemberToTeam)
		members.PUT("/:id/remove-from-team", suite.handler.RemoveMemberFromTeam)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamMemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMember tests the CreateMember handler
func (suite *TeamMemberHandlerTestSuite) TestCreateMember() {
	suite.T().Run("Success", func(t *testing.T) {
		memberID := uuid.New()
		teamID := uuid.New()

		requestBody := map[string]interface{}{
			"name":    "Jane Smith",
			"email":   "jane@example.com",
			"role":    "Developer",
			"team_id": teamID.String(),
		}

		expectedResponse := &service.MemberResponse{
			ID:    memberID,
			Name:  "Jane Smith",
			Email: "jane@example.com",
			Role:  "Developer",
			Team:  &service.TeamSummary{ID: teamID, Name: "Platform", MemberCount: 1},
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/members", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.MemberResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "jane@example.com", response.Email)
		assert.NotNil(t, response.Team)
		assert.Equal(t, "Platform", response.Team.Name)
	})

	suite.T().Run("Duplicate Email", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":  "Jane Smith",
			"email": "jane@example.com",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.NewMemberEmailExists("jane@example.com")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/members", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict,
			"Member with email 'jane@example.com' already exists")
	})

	suite.T().Run("Unknown Team", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{
			"name":    "Jane Smith",
			"email":   "jane@example.com",
			"team_id": teamID.String(),
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.NewTeamNotFound(teamID)).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/members", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Team not found")
	})

	suite.T().Run("Invalid Email", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":  "Jane Smith",
			"email": "not-an-email",
		}

		verr := &apperrors.ValidationErrors{Fields: map[string]string{
			"email": "Email should be valid",
		}}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, verr).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/members", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		fields := response["errors"].(map[string]interface{})
		assert.Equal(t, "Email should be valid", fields["email"])
	})
}

// TestGetMembers tests the GetMembers handler
func (suite *TeamMemberHandlerTestSuite) TestGetMembers() {
	expectedMembers := []service.MemberResponse{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"},
		{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"},
	}

	suite.mockService.EXPECT().
		GetAll().
		Return(expectedMembers, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/members", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.MemberResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestGetMember tests the GetMember handler
func (suite *TeamMemberHandlerTestSuite) TestGetMember() {
	suite.T().Run("Success", func(t *testing.T) {
		memberID := uuid.New()
		expectedResponse := &service.MemberResponse{
			ID:    memberID,
			Name:  "Jane Smith",
			Email: "jane@example.com",
		}

		suite.mockService.EXPECT().
			GetByID(memberID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/members/"+memberID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.MemberResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, memberID, response.ID)
		assert.Nil(t, response.Team)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		memberID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(memberID).
			Return(nil, apperrors.NewMemberNotFound(memberID)).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/members/"+memberID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound,
			"Team member not found with id: "+memberID.String())
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/members/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid member id")
	})
}

// TestGetMembersByTeam tests the GetMembersByTeam handler
func (suite *TeamMemberHandlerTestSuite) TestGetMembersByTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		expectedMembers := []service.MemberResponse{
			{ID: uuid.New(), Name: "Alice", Team: &service.TeamSummary{ID: teamID, Name: "Platform"}},
		}

		suite.mockService.EXPECT().
			GetByTeam(teamID).
			Return(expectedMembers, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/members/team/"+teamID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.MemberResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 1)
	})

	suite.T().Run("Team Not Found", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			GetByTeam(teamID).
			Return(nil, apperrors.NewTeamNotFound(teamID)).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/members/team/"+teamID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Team not found")
	})
}

// TestGetMembersByRole tests the GetMembersByRole handler
func (suite *TeamMemberHandlerTestSuite) TestGetMembersByRole() {
	expectedMembers := []service.MemberResponse{
		{ID: uuid.New(), Name: "Alice", Role: "Developer"},
	}

	suite.mockService.EXPECT().
		GetByRole("Developer").
		Return(expectedMembers, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/members/role?role=Developer", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.MemberResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Developer", response[0].Role)
}

// TestSearchMembers tests the SearchMembers handler
func (suite *TeamMemberHandlerTestSuite) TestSearchMembers() {
	expectedMembers := []service.MemberResponse{
		{ID: uuid.New(), Name: "Jane Smith"},
	}

	suite.mockService.EXPECT().
		Search("smith").
		Return(expectedMembers, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/members/search?keyword=smith", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.MemberResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
}

// TestUpdateMember tests the UpdateMember handler
func (suite *TeamMemberHandlerTestSuite) TestUpdateMember() {
	suite.T().Run("Success", func(t *testing.T) {
		memberID := uuid.New()
		requestBody := map[string]interface{}{
			"name":  "Jane Doe",
			"email": "jane@example.com",
		}

		expectedResponse := &service.MemberResponse{
			ID:    memberID,
			Name:  "Jane Doe",
			Email: "jane@example.com",
		}

		suite.mockService.EXPECT().
			Update(memberID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/members/"+memberID.String(), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.MemberResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Jane Doe", response.Name)
	})

	suite.T().Run("Email Collision", func(t *testing.T) {
		memberID := uuid.New()
		requestBody := map[string]interface{}{
			"name":  "Jane Doe",
			"email": "taken@example.com",
		}

		suite.mockService.EXPECT().
			Update(memberID, gomock.Any()).
			Return(nil, apperrors.NewMemberEmailExists("taken@example.com")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/members/"+memberID.String(), requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})
}

// TestAssignMemberToTeam tests the AssignMemberToTeam handler
func (suite *TeamMemberHandlerTestSuite) TestAssignMemberToTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		memberID := uuid.New()
		teamID := uuid.New()

		expectedResponse := &service.MemberResponse{
			ID:   memberID,
			Name: "Jane Smith",
			Team: &service.TeamSummary{ID: teamID, Name: "Platform", MemberCount: 3},
		}

		suite.mockService.EXPECT().
			AssignToTeam(memberID, teamID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT",
			"/api/members/"+memberID.String()+"/assign/"+teamID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.MemberResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, teamID, response.Team.ID)
	})

	suite.T().Run("Invalid Team ID", func(t *testing.T) {
		memberID := uuid.New()

		recorder := suite.httpSuite.MakeRequest("PUT",
			"/api/members/"+memberID.String()+"/assign/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team id")
	})
}

// TestRemoveMemberFromTeam tests the RemoveMemberFromTeam handler
func (suite *TeamMemberHandlerTestSuite) TestRemoveMemberFromTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		memberID := uuid.New()

		expectedResponse := &service.MemberResponse{
			ID:   memberID,
			Name: "Jane Smith",
		}

		suite.mockService.EXPECT().
			RemoveFromTeam(memberID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT",
			"/api/members/"+memberID.String()+"/remove-from-team", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.MemberResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Nil(t, response.Team)
	})

	suite.T().Run("Not Assigned", func(t *testing.T) {
		memberID := uuid.New()

		suite.mockService.EXPECT().
			RemoveFromTeam(memberID).
			Return(nil, apperrors.ErrMemberNotAssigned).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT",
			"/api/members/"+memberID.String()+"/remove-from-team", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest,
			"Member is not assigned to any team")
	})
}

// TestDeleteMember tests the DeleteMember handler
func (suite *TeamMemberHandlerTestSuite) TestDeleteMember() {
	suite.T().Run("Success", func(t *testing.T) {
		memberID := uuid.New()

		suite.mockService.EXPECT().
			Delete(memberID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/members/"+memberID.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		memberID := uuid.New()

		suite.mockService.EXPECT().
			Delete(memberID).
			Return(apperrors.NewMemberNotFound(memberID)).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/members/"+memberID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Team member not found")
	})
}

// TestTeamMemberHandlerTestSuite runs the test suite
func TestTeamMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberHandlerTestSuite))
}
