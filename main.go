package main

import (
	"os"

	"forum-api/config"
	"forum-api/handlers"
	"forum-api/helper"
	"forum-api/repositories"
	"forum-api/services"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	db, err := config.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	httpHelper := helper.NewHTTPHelper()
	sanitizer := helper.NewSanitizer()
	validator, err := helper.NewValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize validator")
	}

	userRepo := repositories.NewUserRepository(db)
	topicRepo := repositories.NewTopicRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	recordRepo := repositories.NewRecordRepository(db)

	authService := services.NewAuthService(userRepo, cfg, sanitizer, validator)
	userService := services.NewUserService(userRepo, articleRepo, commentRepo, sanitizer, validator)
	topicService := services.NewTopicService(topicRepo, sanitizer, validator)
	articleService := services.NewArticleService(articleRepo, topicRepo, commentRepo, likeRepo, sanitizer, validator)
	commentService := services.NewCommentService(commentRepo, articleRepo, likeRepo, sanitizer, validator)

	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper, sanitizer)
	topicHandler := handlers.NewTopicHandler(topicService, httpHelper, sanitizer)
	articleHandler := handlers.NewArticleHandler(articleService, commentService, httpHelper, sanitizer)
	commentHandler := handlers.NewCommentHandler(commentService, httpHelper)

	router := handlers.NewRouter(httpHelper, authService, recordRepo, authHandler, userHandler, topicHandler, articleHandler, commentHandler)

	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
