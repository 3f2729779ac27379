package routes

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/MehmoodAhmad21/Trackme/config"
	"github.com/MehmoodAhmad21/Trackme/controllers"
	"github.com/MehmoodAhmad21/Trackme/middlewares"
	"github.com/MehmoodAhmad21/Trackme/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Trackme API", "version": "1.0.0"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	nutrition := services.NewNutritionService()
	recognizer, err := services.NewRecognitionService()
	if err != nil {
		log.Printf("food recognition unavailable: %v", err)
	}

	goalCtl := controllers.NewGoalController(services.NewGoalService(config.DB))
	dietCtl := controllers.NewDietController(services.NewMealService(config.DB, nutrition), nutrition, recognizer)
	insightCtl := controllers.NewInsightController(services.NewInsightsService(config.DB))

	api := r.Group("/api/v1")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}
	auth.GET("/me", middlewares.AuthMiddleware(), controllers.Me)

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		profile := protected.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PATCH("", controllers.UpdateProfile)
			profile.GET("/goals", goalCtl.GetGoals)
			profile.PATCH("/goals", goalCtl.UpdateGoals)
			profile.GET("/connections", goalCtl.GetConnections)
			profile.PATCH("/connections", goalCtl.UpdateConnections)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", controllers.ListTasks)
			tasks.POST("", controllers.CreateTask)
			tasks.GET("/:id", controllers.GetTask)
			tasks.PATCH("/:id", controllers.UpdateTask)
			tasks.DELETE("/:id", controllers.DeleteTask)
		}

		events := protected.Group("/events")
		{
			events.GET("", controllers.ListEvents)
			events.POST("", controllers.CreateEvent)
			events.GET("/:id", controllers.GetEvent)
			events.PATCH("/:id", controllers.UpdateEvent)
			events.DELETE("/:id", controllers.DeleteEvent)
		}

		diet := protected.Group("/diet")
		{
			diet.GET("/meals", dietCtl.ListMeals)
			diet.POST("/meals", dietCtl.LogMeal)
			diet.GET("/meals/:id", dietCtl.GetMeal)
			diet.PATCH("/meals/:id", dietCtl.UpdateMeal)
			diet.DELETE("/meals/:id", dietCtl.DeleteMeal)
			diet.GET("/summary", dietCtl.GetDietSummary)
			diet.POST("/recognize", dietCtl.RecognizeFood)
		}

		health := protected.Group("/health")
		{
			health.POST("/steps", controllers.UpsertSteps)
			health.GET("/steps/summary", controllers.GetStepSummary)
			health.POST("/vitals", controllers.CreateVital)
			health.GET("/vitals/:type", controllers.GetVitalsByType)
			health.POST("/activities", controllers.CreateActivity)
			health.GET("/activities", controllers.ListActivities)
			health.DELETE("/activities/:id", controllers.DeleteActivity)
		}

		insights := protected.Group("/insights")
		{
			insights.GET("/today", insightCtl.GetToday)
			insights.POST("/generate", insightCtl.Generate)
			insights.GET("/current", insightCtl.GetCurrent)
			insights.POST("/:id/dismiss", insightCtl.Dismiss)
		}
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	origins := []string{"http://localhost:8081", "http://localhost:19006"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})
}
