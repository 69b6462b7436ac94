package routes

import (
	"team-management-backend/internal/api/handlers"
	"team-management-backend/internal/api/middleware"
	"team-management-backend/internal/config"
	"team-management-backend/internal/repository"
	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, validate)
	memberService := service.NewTeamMemberService(memberRepo, teamRepo, validate)
	projectService := service.NewProjectService(projectRepo, teamRepo, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	memberHandler := handlers.NewTeamMemberHandler(memberService)
	projectHandler := handlers.NewProjectHandler(projectService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Team routes
		teams := api.Group("/teams")
		{
			teams.GET("", teamHandler.GetTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/search", teamHandler.SearchTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.GET("/:id/stats", teamHandler.GetTeamStats)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		// Team member routes
		members := api.Group("/members")
		{
			members.GET("", memberHandler.GetMembers)
			members.POST("", memberHandler.CreateMember)
			members.GET("/search", memberHandler.SearchMembers)
			members.GET("/role", memberHandler.GetMembersByRole)
			members.GET("/team/:teamId", memberHandler.GetMembersByTeam)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.PUT("/:id/assign/:teamId", memberHandler.AssignMemberToTeam)
			members.PUT("/:id/remove-from-team", memberHandler.RemoveMemberFromTeam)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		// Project routes
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.GetProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/search", projectHandler.SearchProjects)
			projects.GET("/team/:teamId", projectHandler.GetProjectsByTeam)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.POST("/:id/teams/:teamId", projectHandler.AssignTeamToProject)
			projects.DELETE("/:id/teams/:teamId", projectHandler.RemoveTeamFromProject)
		}
	}

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
