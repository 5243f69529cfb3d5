package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hiredeck/talentgate/internal/migrations"
	"github.com/hiredeck/talentgate/pkg/iam/auth"
	"github.com/hiredeck/talentgate/pkg/logx"
	"github.com/hiredeck/talentgate/recruitment/application/applicationapi"
	"github.com/hiredeck/talentgate/recruitment/application/applicationinfra"
	"github.com/hiredeck/talentgate/recruitment/application/applicationsrv"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Services
	TokenService       auth.TokenService
	ApplicationService *applicationsrv.ApplicationService

	// API Handlers
	ApplicationHandlers *applicationapi.Handlers

	// Middleware
	AuthMiddleware *auth.Middleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Schema Migrations
	if err := migrations.Up(db.DB); err != nil {
		logx.Fatalf("Failed to run migrations: %v", err)
	}

	// 3. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}
}

func (c *Container) initServices() {
	// Token Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = auth.NewJWTService(jwtSecret, 24*time.Hour, "talentgate")

	// Middleware
	revocationStore := auth.NewRedisRevocationStore(c.Redis)
	c.AuthMiddleware = auth.NewMiddleware(c.TokenService, revocationStore)

	// Repositories
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)

	// Domain Services
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo)

	// Handlers
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
}
