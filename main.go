package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hemisphere-backend/checkin"
	"hemisphere-backend/handlers"
	"hemisphere-backend/store"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using default environment variables")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Unable to create data directory: %v\n", err)
	}

	baseURL := os.Getenv("PORTAL_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	// Stores
	attendees := store.NewAttendees(dataDir)
	events := store.NewEvents(dataDir)
	leads := store.NewLeads(dataDir)
	scanLog := store.NewScanLog(dataDir)
	tokens := store.NewTokens(dataDir)

	// Create handlers
	attendeeHandler := handlers.NewAttendeeHandler(attendees)
	checkinHandler := handlers.NewCheckinHandler(checkin.NewService(attendees, scanLog))
	scanLogHandler := handlers.NewScanLogHandler(scanLog)
	eventHandler := handlers.NewEventHandler(events)
	exhibitorHandler := handlers.NewExhibitorHandler(leads, tokens, baseURL)

	// Setup Gin
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:3001", "http://localhost:3002"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Attendee routes
	router.POST("/register", attendeeHandler.Register)
	router.GET("/attendees", attendeeHandler.List)
	router.GET("/attendees/:id", attendeeHandler.Get)
	router.PATCH("/attendees/:id", attendeeHandler.Update)

	// Check-in routes
	router.POST("/scan", checkinHandler.Scan)
	router.POST("/checkin", checkinHandler.CheckIn)
	router.GET("/scanlog", scanLogHandler.List)
	router.POST("/scanlog", scanLogHandler.Append)
	router.GET("/scanlog/export", scanLogHandler.ExportCSV)

	// Event routes
	router.GET("/events", eventHandler.List)
	router.POST("/events", eventHandler.Create)
	router.POST("/activate", eventHandler.Activate)

	// Exhibitor routes
	router.GET("/leads", exhibitorHandler.ListLeads)
	router.POST("/leads", exhibitorHandler.CaptureLead)
	router.GET("/exhibitors/leads", exhibitorHandler.PortalLeads)
	router.POST("/exhibitors/request-link", exhibitorHandler.RequestLink)
	router.GET("/exhibitors/list", exhibitorHandler.ListExhibitors)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v\n", err)
	}
}
