package handlers

import (
	"net/http"

	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	service service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(svc service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{service: svc}
}

// CreateTeam creates a new team
// @Summary Create a team
// @Description Creates a team with a unique name
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.TeamRequest true "Team to create"
// @Success 201 {object} service.TeamResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	team, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeams lists all teams
// @Summary List teams
// @Description Returns all teams ordered by name. With includeMembers=true the
// member and project summaries are embedded.
// @Tags teams
// @Produce json
// @Param includeMembers query bool false "Embed member and project summaries"
// @Success 200 {array} service.TeamResponse
// @Router /api/teams [get]
func (h *TeamHandler) GetTeams(c *gin.Context) {
	var (
		teams []service.TeamResponse
		err   error
	)
	if c.Query("includeMembers") == "true" {
		teams, err = h.service.GetAllWithMembers()
	} else {
		teams, err = h.service.GetAll()
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam returns a single team by id
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Param includeMembers query bool false "Embed member and project summaries"
// @Success 200 {object} service.TeamResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "team id")
		return
	}

	var team *service.TeamResponse
	if c.Query("includeMembers") == "true" {
		team, err = h.service.GetByIDWithMembers(id)
	} else {
		team, err = h.service.GetByID(id)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeamStats returns the count view of a team
// @Summary Get team statistics
// @Description Returns the team with its member and project counts
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} service.TeamResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/teams/{id}/stats [get]
func (h *TeamHandler) GetTeamStats(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "team id")
		return
	}

	team, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// SearchTeams searches teams by name
// @Summary Search teams
// @Description Case-insensitive substring search over team names
// @Tags teams
// @Produce json
// @Param keyword query string true "Search keyword"
// @Success 200 {array} service.TeamResponse
// @Router /api/teams/search [get]
func (h *TeamHandler) SearchTeams(c *gin.Context) {
	teams, err := h.service.Search(c.Query("keyword"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// UpdateTeam replaces a team's fields
// @Summary Update a team
// @Description Full update of name and description
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body service.TeamRequest true "New team fields"
// @Success 200 {object} service.TeamResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "team id")
		return
	}

	var req service.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	team, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam deletes a team and everything it owns
// @Summary Delete a team
// @Description Deletes the team, its members and its project associations
// @Tags teams
// @Param id path string true "Team ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /api/teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "team id")
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
