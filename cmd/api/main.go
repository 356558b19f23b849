package main

import (
	"os"
	"time"

	"github.com/Ojuara-e/asteca-seguranca1.0/internal/handlers"
	"github.com/Ojuara-e/asteca-seguranca1.0/internal/middleware"
	"github.com/Ojuara-e/asteca-seguranca1.0/internal/models"
	"github.com/Ojuara-e/asteca-seguranca1.0/internal/scheduling"
	"github.com/Ojuara-e/asteca-seguranca1.0/internal/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment defaults")
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})

	// Initialize the in-memory stores
	users, err := store.NewUserStore()
	if err != nil {
		logrus.Fatalf("Failed to initialize user store: %v", err)
	}
	catalog := store.NewCatalog()

	ledger := scheduling.NewLedger(nil, catalog.CourseName)
	ledger.Load(demoExams())

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	r.Use(middleware.RequestLogger())

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Login(users))
			auth.POST("/verify-token", handlers.VerifyToken(users))
			auth.POST("/logout", handlers.Logout())
			auth.POST("/register", handlers.Register(users))
		}

		api.GET("/courses", handlers.GetCourses(catalog))
		api.GET("/courses/:courseId", handlers.GetCourseDetails(catalog))
		api.GET("/ranking/teams", handlers.GetTeamRanking(catalog))
		api.GET("/ranking/individual", handlers.GetIndividualRanking(catalog))
		api.GET("/badges", handlers.GetBadges(catalog))
		api.GET("/available-times", handlers.GetAvailableTimes(ledger))
		api.GET("/business-hours", handlers.GetBusinessHours())

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/profile", handlers.GetProfile(users))
			protected.GET("/user-progress", handlers.GetUserProgress())
			protected.GET("/user-badges", handlers.GetUserBadges(users, catalog))
			protected.POST("/enroll/:courseId", handlers.EnrollCourse(catalog))
			protected.POST("/complete-module", handlers.CompleteModule(catalog))

			protected.POST("/schedule-exam", handlers.ScheduleExam(ledger))
			protected.GET("/my-exams", handlers.GetMyExams(ledger))
			protected.PUT("/reschedule-exam/:examId", handlers.RescheduleExam(ledger))
			protected.DELETE("/cancel-exam/:examId", handlers.CancelExam(ledger))
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

// demoExams seeds the ledger with the demo account's confirmed booking.
func demoExams() []models.Exam {
	return []models.Exam{
		{
			ID:         1,
			UserEmail:  "teste@astecaseguranca.com.br",
			CourseID:   "nr35",
			CourseName: "NR-35 - Trabalho em Altura",
			Date:       "2025-02-15",
			Time:       "14:00",
			Status:     models.ExamStatusConfirmed,
			Notes:      "",
			CreatedAt:  time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		},
	}
}
