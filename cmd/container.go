package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/talentsift/cvanalyzer/pkg/logx"
	"github.com/talentsift/cvanalyzer/recruitment/candidate/candidateapi"
	"github.com/talentsift/cvanalyzer/recruitment/candidate/candidateinfra"
	"github.com/talentsift/cvanalyzer/recruitment/candidate/candidatesrv"
	"github.com/talentsift/cvanalyzer/recruitment/resume/resumeinfra"
	"github.com/talentsift/cvanalyzer/recruitment/screening/screeningapi"
	"github.com/talentsift/cvanalyzer/recruitment/screening/screeninginfra"
	"github.com/talentsift/cvanalyzer/recruitment/screening/screeningsrv"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// Services
	CandidateService *candidatesrv.CandidateService
	ScreeningService *screeningsrv.Service

	// API Handlers
	CandidateHandlers *candidateapi.Handlers
	ScreeningHandlers *screeningapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// Local development convenience; a missing .env is fine
	if err := godotenv.Load(); err != nil {
		logx.Debugf("No .env file loaded: %v", err)
	}

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

	// 2. Redis Connection (analysis cache; the API degrades gracefully
	// without it)
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
	// --- Record Store Repositories ---
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	resumeRepo := resumeinfra.NewPostgresResumeRepository(c.DB)

	// --- Infrastructure Services ---
	analysisCache := screeninginfra.NewRedisResultCache(c.Redis, "screening:analysis")

	// --- Domain Services ---
	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo, resumeRepo)
	c.ScreeningService = screeningsrv.NewService(resumeRepo, analysisCache)

	// --- Handlers ---
	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
	c.ScreeningHandlers = screeningapi.NewHandlers(c.ScreeningService)
}
