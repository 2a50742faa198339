package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"perfmonitor/database"
	"perfmonitor/handlers"
	"perfmonitor/middlewares"
	repository "perfmonitor/repositories"
	routes "perfmonitor/routes"
	services "perfmonitor/services"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg("No .env file loaded")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal().Msg("JWT_SECRET environment variable is required")
	}

	tokenTTL := 24 * time.Hour
	if hours := os.Getenv("JWT_TTL_HOURS"); hours != "" {
		parsed, err := strconv.Atoi(hours)
		if err != nil || parsed <= 0 {
			logger.Fatal().Str("value", hours).Msg("Invalid JWT_TTL_HOURS")
		}
		tokenTTL = time.Duration(parsed) * time.Hour
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			logger.Fatal().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal().Err(err).Msg("Failed to ping MongoDB")
	}
	logger.Info().Msg("Connected to MongoDB")

	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "perfmonitor"
	}
	db := client.Database(dbName)

	if err := database.CreateIndexes(db); err != nil {
		logger.Warn().Err(err).Msg("Failed to create database indexes")
	}

	orgRepo := repository.NewOrganizationRepository(db)
	deliverableRepo := repository.NewDeliverableRepository(db)
	performanceRepo := repository.NewPerformanceRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	userRepo := repository.NewUserRepository(db)

	orgService := services.NewOrganizationService(orgRepo)
	deliverableService := services.NewDeliverableService(deliverableRepo)
	performanceService := services.NewPerformanceService(performanceRepo, orgRepo)
	projectService := services.NewProjectService(projectRepo, orgRepo, deliverableRepo)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, jwtSecret, tokenTTL)

	mux := routes.Setup(routes.Handlers{
		Auth:         handlers.NewAuthHandler(authService),
		User:         handlers.NewUserHandler(userService),
		Organization: handlers.NewOrganizationHandler(orgService),
		Deliverable:  handlers.NewDeliverableHandler(deliverableService),
		Performance:  handlers.NewPerformanceHandler(performanceService),
		Project:      handlers.NewProjectHandler(projectService),
	}, jwtSecret)

	handler := middlewares.RequestLogger(logger)(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	logger.Info().Str("port", port).Msg("Server starting")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}
