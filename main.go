package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Saketh-S5/mobile-store/routes"
	"github.com/Saketh-S5/mobile-store/session"
	"github.com/Saketh-S5/mobile-store/store"
)

func main() {
	log.Println("✅ Starting mobile store...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB and seed the sample catalog + default admin
	dbPath := getEnv("DB_PATH", "products.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("❌ DB init failed: %v", err)
	}
	if err := store.Seed(db); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Signed-cookie sessions (user, admin flag, cart, flashes)
	r.Use(session.Middleware(getEnv("SESSION_SECRET", "secretkey")))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Optional daily database backup at 2 AM, keep 4 days
	if backupDir := os.Getenv("BACKUP_DIR"); backupDir != "" {
		go store.StartDailyBackup(dbPath, backupDir, 4*24*time.Hour, 2, 0)
	}

	// Start server
	port := getEnv("PORT", "8080")
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
