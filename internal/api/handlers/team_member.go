package handlers

import (
	"net/http"

	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamMemberHandler handles HTTP requests for team member operations
type TeamMemberHandler struct {
	service service.TeamMemberServiceInterface
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(svc service.TeamMemberServiceInterface) *TeamMemberHandler {
	return &TeamMemberHandler{service: svc}
}

// CreateMember creates a new team member
// @Summary Create a member
// @Description Creates a member with a unique email, optionally assigned to a team
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.MemberRequest true "Member to create"
// @Success 201 {object} service.MemberResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/members [post]
func (h *TeamMemberHandler) CreateMember(c *gin.Context) {
	var req service.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.service.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMembers lists all members
// @Summary List members
// @Tags members
// @Produce json
// @Success 200 {array} service.MemberResponse
// @Router /api/members [get]
func (h *TeamMemberHandler) GetMembers(c *gin.Context) {
	members, err := h.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetMember returns a single member by id
// @Summary Get a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} service.MemberResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/members/{id} [get]
func (h *TeamMemberHandler) GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "member id")
		return
	}

	member, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// GetMembersByTeam lists the members of a team
// @Summary List members of a team
// @Tags members
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {array} service.MemberResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/members/team/{teamId} [get]
func (h *TeamMemberHandler) GetMembersByTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		respondInvalidID(c, "team id")
		return
	}

	members, err := h.service.GetByTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetMembersByRole lists members with an exact role
// @Summary List members by role
// @Tags members
// @Produce json
// @Param role query string true "Role to match"
// @Success 200 {array} service.MemberResponse
// @Router /api/members/role [get]
func (h *TeamMemberHandler) GetMembersByRole(c *gin.Context) {
	members, err := h.service.GetByRole(c.Query("role"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// SearchMembers searches members by name
// @Summary Search members
// @Description Case-insensitive substring search over member names
// @Tags members
// @Produce json
// @Param keyword query string true "Search keyword"
// @Success 200 {array} service.MemberResponse
// @Router /api/members/search [get]
func (h *TeamMemberHandler) SearchMembers(c *gin.Context) {
	members, err := h.service.Search(c.Query("keyword"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateMember replaces a member's fields
// @Summary Update a member
// @Description Full update; a null team_id unassigns the member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body service.MemberRequest true "New member fields"
// @Success 200 {object} service.MemberResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/members/{id} [put]
func (h *TeamMemberHandler) UpdateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "member id")
		return
	}

	var req service.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// AssignMemberToTeam moves a member onto a team
// @Summary Assign a member to a team
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Param teamId path string true "Team ID"
// @Success 200 {object} service.MemberResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/members/{id}/assign/{teamId} [put]
func (h *TeamMemberHandler) AssignMemberToTeam(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "member id")
		return
	}
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		respondInvalidID(c, "team id")
		return
	}

	member, err := h.service.AssignToTeam(memberID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMemberFromTeam unassigns a member from their team
// @Summary Remove a member from their team
// @Description Fails when the member is not assigned to any team
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} service.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/members/{id}/remove-from-team [put]
func (h *TeamMemberHandler) RemoveMemberFromTeam(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "member id")
		return
	}

	member, err := h.service.RemoveFromTeam(memberID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember deletes a member
// @Summary Delete a member
// @Tags members
// @Param id path string true "Member ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /api/members/{id} [delete]
func (h *TeamMemberHandler) DeleteMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondInvalidID(c, "member id")
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
