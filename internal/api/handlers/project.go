package handlers

import (
	"net/http"

	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	service service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(svc service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{service: svc}
}

// CreateProject creates a new project
// @Summary Create a project
// @Description Creates a project with a unique name, optionally linked to teams.
// Team resolution is all-or-nothing: any unknown team id fails the whole request.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project to create"
// @Success 201 {object} service.ProjectResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProjects lists all projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} service.ProjectResponse
// @Router /api/projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject returns a single project by id
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} service.ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "project id")
		return
	}

	project, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetProjectsByTeam lists the projects a team works on
// @Summary List projects of a team
// @Tags projects
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {array} service.ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/projects/team/{teamId} [get]
func (h *ProjectHandler) GetProjectsByTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		respondInvalidID(c, "team id")
		return
	}

	projects, err := h.service.GetByTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// SearchProjects searches projects by name or description
// @Summary Search projects
// @Description Case-insensitive substring search over project names and descriptions
// @Tags projects
// @Produce json
// @Param keyword query string true "Search keyword"
// @Success 200 {array} service.ProjectResponse
// @Router /api/projects/search [get]
func (h *ProjectHandler) SearchProjects(c *gin.Context) {
	projects, err := h.service.Search(c.Query("keyword"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// UpdateProject replaces a project's fields
// @Summary Update a project
// @Description Full update of name and description. When team_ids is present the
// team set is replaced wholesale; when absent it is left untouched.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body service.UpdateProjectRequest true "New project fields"
// @Success 200 {object} service.ProjectResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "project id")
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// AssignTeamToProject links a team to a project
// @Summary Assign a team to a project
// @Description Idempotent; assigning an already linked team changes nothing
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Param teamId path string true "Team ID"
// @Success 200 {object} service.ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/projects/{id}/teams/{teamId} [post]
func (h *ProjectHandler) AssignTeamToProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "project id")
		return
	}
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		respondInvalidID(c, "team id")
		return
	}

	project, err := h.service.AssignTeam(projectID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// RemoveTeamFromProject unlinks a team from a project
// @Summary Remove a team from a project
// @Description Idempotent; removing a team that is not linked changes nothing
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Param teamId path string true "Team ID"
// @Success 200 {object} service.ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/projects/{id}/teams/{teamId} [delete]
func (h *ProjectHandler) RemoveTeamFromProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "project id")
		return
	}
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		respondInvalidID(c, "team id")
		return
	}

	project, err := h.service.RemoveTeam(projectID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject deletes a project
// @Summary Delete a project
// @Description Deletes the project and its team associations; teams survive
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "project id")
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
