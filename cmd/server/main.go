package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/journalapp/journal-api/internal/config"
	"github.com/journalapp/journal-api/internal/database"
	"github.com/journalapp/journal-api/internal/handlers"
	"github.com/journalapp/journal-api/internal/middleware"
	"github.com/journalapp/journal-api/internal/repository"
	"github.com/journalapp/journal-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Session cookie middleware
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions("journal_session", store))
	r.Use(middleware.EnsureSession())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	journalRepo := repository.NewJournalRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	tagService := services.NewTagService(tagRepo, userRepo)
	journalService := services.NewJournalService(journalRepo, tagRepo, userRepo)
	exportService := services.NewExportService()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	tagHandler := handlers.NewTagHandler(tagService)
	journalHandler := handlers.NewJournalHandler(journalService, exportService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Journal API is running",
		})
	})

	// User routes
	users := r.Group("/login/users")
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.GET("/:id", userHandler.Retrieve)
		users.PATCH("/:id", userHandler.PartialUpdate)
		users.DELETE("/:id", userHandler.Remove)
	}

	// Tag routes
	tags := r.Group("/dashboard/tags")
	{
		tags.POST("/add_tag", tagHandler.AddTag)
		tags.GET("", tagHandler.List)
		tags.POST("/user_tags", tagHandler.UserTags)
		tags.POST("/get_tag", tagHandler.GetTag)
		tags.POST("/check_name", tagHandler.CheckName)
		tags.PATCH("/update_tag", tagHandler.UpdateTag)
		tags.DELETE("/remove_tag", tagHandler.RemoveTag)
	}

	// Journal routes
	journals := r.Group("/journal/journals")
	{
		journals.POST("/add_journal", journalHandler.AddJournal)
		journals.GET("", journalHandler.List)
		journals.POST("/user_journals", journalHandler.UserJournals)
		journals.POST("/search_journals", journalHandler.SearchJournals)
		journals.POST("/get_journal", journalHandler.GetJournal)
		journals.POST("/export_journal", journalHandler.ExportJournal)
		journals.PATCH("/update_journal", journalHandler.UpdateJournal)
		journals.DELETE("/remove_journal", journalHandler.RemoveJournal)
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
