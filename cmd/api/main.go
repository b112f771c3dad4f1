package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/formflowhq/formflow/internal/api/middleware"
	"github.com/formflowhq/formflow/internal/api/routes"
	"github.com/formflowhq/formflow/internal/config"
	"github.com/formflowhq/formflow/internal/config/db"
	"github.com/formflowhq/formflow/internal/domain/form"
	"github.com/formflowhq/formflow/internal/domain/response"
	"github.com/formflowhq/formflow/internal/domain/user"
	"github.com/formflowhq/formflow/internal/session"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&form.Form{},
		&response.FormView{},
		&response.Response{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	sessions := newSessionStore()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, db.DB, sessions)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}

func newSessionStore() session.Store {
	if config.SessionBackend == "redis" {
		store, err := session.NewRedisStore(session.RedisOptions{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
		})
		if err != nil {
			log.Fatalf("Failed to connect session store: %v", err)
		}
		return store
	}
	return session.NewMemoryStore()
}
