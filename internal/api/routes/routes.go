package routes

import (
	"log"

	"peakform-backend/internal/api/handlers"
	"peakform-backend/internal/api/middleware"
	"peakform-backend/internal/auth"
	"peakform-backend/internal/cache"
	"peakform-backend/internal/config"
	"peakform-backend/internal/repository"
	"peakform-backend/internal/service"
	"peakform-backend/internal/webhook"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, qc *cache.QueryCache) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()
	dispatcher := webhook.NewDispatcher()

	// Repositories
	departmentRepo := repository.NewDepartmentRepository(db)
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	objectiveRepo := repository.NewCompanyObjectiveRepository(db)
	teamObjectiveRepo := repository.NewTeamObjectiveRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	checkInRepo := repository.NewCheckInRepository(db)
	competencyRepo := repository.NewCompetencyRepository(db)
	planRepo := repository.NewDevelopmentPlanRepository(db)
	resourceRepo := repository.NewLearningResourceRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	recognitionRepo := repository.NewRecognitionRepository(db)
	webhookRepo := repository.NewWebhookConfigRepository(db)

	// Services
	departmentService := service.NewDepartmentService(departmentRepo, qc, validate)
	userService := service.NewUserService(userRepo, teamRepo, qc, validate)
	teamService := service.NewTeamService(teamRepo, userRepo, departmentRepo, qc, validate)
	objectiveService := service.NewCompanyObjectiveService(objectiveRepo, qc, validate)
	teamObjectiveService := service.NewTeamObjectiveService(teamObjectiveRepo, teamRepo, objectiveRepo, userRepo, qc, validate)
	goalService := service.NewGoalService(goalRepo, checkInRepo, userRepo, teamObjectiveRepo, objectiveRepo, qc, validate)
	competencyService := service.NewCompetencyService(competencyRepo, userRepo, qc, validate)
	planService := service.NewDevelopmentPlanService(planRepo, userRepo, competencyRepo, qc, validate)
	resourceService := service.NewLearningResourceService(resourceRepo, competencyRepo, qc, validate)
	meetingService := service.NewMeetingService(meetingRepo, userRepo, qc, validate)
	recognitionService := service.NewRecognitionService(recognitionRepo, userRepo, qc, validate)
	webhookService := service.NewWebhookService(webhookRepo, dispatcher, qc, validate)
	reportsService := service.NewReportsService(userRepo, teamRepo, departmentRepo, objectiveRepo, teamObjectiveRepo, goalRepo, checkInRepo, competencyRepo, planRepo, recognitionRepo, qc)

	// Auth
	authConfig, err := auth.LoadConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: failed to load auth config: %v", err)
		authConfig = nil
	}

	var authHandlers *auth.Handlers
	var authMiddleware *auth.Middleware
	if authConfig != nil {
		authService := auth.NewService(authConfig)
		authHandlers = auth.NewHandlers(authService, authConfig, userRepo)
		authMiddleware = auth.NewMiddleware(authService, authConfig)
	}

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	userHandler := handlers.NewUserHandler(userService, reportsService)
	teamHandler := handlers.NewTeamHandler(teamService)
	objectiveHandler := handlers.NewCompanyObjectiveHandler(objectiveService)
	teamObjectiveHandler := handlers.NewTeamObjectiveHandler(teamObjectiveService)
	goalHandler := handlers.NewGoalHandler(goalService)
	competencyHandler := handlers.NewCompetencyHandler(competencyService)
	planHandler := handlers.NewDevelopmentPlanHandler(planService)
	resourceHandler := handlers.NewLearningResourceHandler(resourceService)
	meetingHandler := handlers.NewMeetingHandler(meetingService)
	recognitionHandler := handlers.NewRecognitionHandler(recognitionService)
	webhookHandler := handlers.NewWebhookHandler(webhookService)
	reportsHandler := handlers.NewReportsHandler(reportsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Auth routes stay outside the session requirement
	if authHandlers != nil {
		authGroup := v1.Group("/auth")
		{
			authGroup.GET("/login", authHandlers.Login)
			authGroup.GET("/callback", authHandlers.Callback)
			authGroup.GET("/logout", authHandlers.Logout)
			authGroup.GET("/me", authMiddleware.RequireSession(), authHandlers.Me)
		}

		v1.Use(authMiddleware.RequireSession())
	} else {
		log.Printf("Warning: running without session authentication")
	}

	// Department routes
	departments := v1.Group("/departments")
	{
		departments.POST("", departmentHandler.CreateDepartment)
		departments.GET("", departmentHandler.ListDepartments)
		departments.GET("/:id", departmentHandler.GetDepartment)
		departments.PUT("/:id", departmentHandler.UpdateDepartment)
		departments.DELETE("/:id", departmentHandler.DeleteDepartment)
	}

	// User routes
	users := v1.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
		users.GET("/:id/reports", userHandler.GetDirectReports)
		users.GET("/:id/profile", userHandler.GetUserProfile)
		users.GET("/:id/competencies", competencyHandler.ListUserCompetencies)
		users.PUT("/:id/competencies", competencyHandler.SetUserCompetency)
		users.GET("/:id/development-plans", planHandler.ListPlans)
	}

	// Team routes
	teams := v1.Group("/teams")
	{
		teams.POST("", teamHandler.CreateTeam)
		teams.GET("", teamHandler.ListTeams)
		teams.GET("/hierarchy", teamHandler.GetTeamHierarchy)
		teams.GET("/:id", teamHandler.GetTeam)
		teams.GET("/:id/members", teamHandler.GetTeamMembers)
		teams.PUT("/:id", teamHandler.UpdateTeam)
		teams.DELETE("/:id", teamHandler.DeleteTeam)
	}

	// Company objective routes
	objectives := v1.Group("/objectives")
	{
		objectives.POST("", objectiveHandler.CreateObjective)
		objectives.GET("", objectiveHandler.ListObjectives)
		objectives.GET("/:id", objectiveHandler.GetObjective)
		objectives.GET("/:id/progress", objectiveHandler.GetObjectiveProgress)
		objectives.PUT("/:id", objectiveHandler.UpdateObjective)
		objectives.DELETE("/:id", objectiveHandler.DeleteObjective)
		objectives.POST("/:id/key-results", objectiveHandler.AddKeyResult)
	}
	keyResults := v1.Group("/key-results")
	{
		keyResults.PUT("/:id", objectiveHandler.UpdateKeyResult)
		keyResults.DELETE("/:id", objectiveHandler.DeleteKeyResult)
	}

	// Team objective routes
	teamObjectives := v1.Group("/team-objectives")
	{
		teamObjectives.POST("", teamObjectiveHandler.CreateTeamObjective)
		teamObjectives.GET("", teamObjectiveHandler.ListTeamObjectives)
		teamObjectives.GET("/:id", teamObjectiveHandler.GetTeamObjective)
		teamObjectives.GET("/:id/progress", teamObjectiveHandler.GetTeamObjectiveProgress)
		teamObjectives.PUT("/:id", teamObjectiveHandler.UpdateTeamObjective)
		teamObjectives.DELETE("/:id", teamObjectiveHandler.DeleteTeamObjective)
		teamObjectives.POST("/:id/key-results", teamObjectiveHandler.AddTeamKeyResult)
	}
	teamKeyResults := v1.Group("/team-key-results")
	{
		teamKeyResults.PUT("/:id", teamObjectiveHandler.UpdateTeamKeyResult)
		teamKeyResults.DELETE("/:id", teamObjectiveHandler.DeleteTeamKeyResult)
	}

	// Goal and check-in routes
	goals := v1.Group("/goals")
	{
		goals.POST("", goalHandler.CreateGoal)
		goals.GET("", goalHandler.ListGoals)
		goals.GET("/:id", goalHandler.GetGoal)
		goals.PUT("/:id", goalHandler.UpdateGoal)
		goals.DELETE("/:id", goalHandler.DeleteGoal)
		goals.POST("/:id/checkins", goalHandler.SubmitCheckIn)
		goals.GET("/:id/checkins", goalHandler.ListCheckIns)
	}

	// Competency routes
	competencies := v1.Group("/competencies")
	{
		competencies.POST("", competencyHandler.CreateCompetency)
		competencies.GET("", competencyHandler.ListCompetencies)
		competencies.GET("/:id", competencyHandler.GetCompetency)
		competencies.PUT("/:id", competencyHandler.UpdateCompetency)
		competencies.DELETE("/:id", competencyHandler.DeleteCompetency)
	}
	v1.DELETE("/user-competencies/:id", competencyHandler.DeleteUserCompetency)

	// Development plan routes
	plans := v1.Group("/development-plans")
	{
		plans.POST("", planHandler.CreatePlan)
		plans.GET("/:id", planHandler.GetPlan)
		plans.PUT("/:id", planHandler.UpdatePlan)
		plans.DELETE("/:id", planHandler.DeletePlan)
	}

	// Learning resource routes
	resources := v1.Group("/learning-resources")
	{
		resources.POST("", resourceHandler.CreateResource)
		resources.GET("", resourceHandler.ListResources)
		resources.GET("/:id", resourceHandler.GetResource)
		resources.PUT("/:id", resourceHandler.UpdateResource)
		resources.DELETE("/:id", resourceHandler.DeleteResource)
	}

	// Meeting routes
	meetings := v1.Group("/meetings")
	{
		meetings.POST("", meetingHandler.CreateMeeting)
		meetings.GET("", meetingHandler.ListMeetings)
		meetings.GET("/:id", meetingHandler.GetMeeting)
		meetings.PUT("/:id", meetingHandler.UpdateMeeting)
		meetings.DELETE("/:id", meetingHandler.DeleteMeeting)
	}

	// Recognition routes
	recognitions := v1.Group("/recognitions")
	{
		recognitions.POST("", recognitionHandler.CreateRecognition)
		recognitions.GET("", recognitionHandler.ListRecognitions)
		recognitions.GET("/leaderboard", recognitionHandler.GetLeaderboard)
		recognitions.GET("/:id", recognitionHandler.GetRecognition)
		recognitions.DELETE("/:id", recognitionHandler.DeleteRecognition)
	}

	// Webhook configuration routes
	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("", webhookHandler.CreateWebhook)
		webhooks.GET("", webhookHandler.ListWebhooks)
		webhooks.GET("/:id", webhookHandler.GetWebhook)
		webhooks.PUT("/:id", webhookHandler.UpdateWebhook)
		webhooks.PATCH("/:id/toggle", webhookHandler.ToggleWebhook)
		webhooks.POST("/:id/test", webhookHandler.TestWebhook)
		webhooks.DELETE("/:id", webhookHandler.DeleteWebhook)
	}

	// Report routes
	reports := v1.Group("/reports")
	{
		reports.GET("/company", reportsHandler.GetCompanyReport)
		reports.GET("/teams/:id", reportsHandler.GetTeamReport)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

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
