package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sanjay-dhavanam/CivicConnect/internal/config"
	"github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/dynamo"
	"github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/memory"
	s3infra "github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/s3"
	"github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/sns"
	"github.com/sanjay-dhavanam/CivicConnect/internal/infrastructure/translate"
	transporthttp "github.com/sanjay-dhavanam/CivicConnect/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	deps := &transporthttp.Deps{
		IssueRepo:          memory.NewIssueRepo(),
		CommentRepo:        memory.NewCommentRepo(),
		VoteRepo:           memory.NewVoteRepo(),
		BudgetRepo:         memory.NewBudgetRepo(),
		RepresentativeRepo: memory.NewRepresentativeRepo(),
		LocationRepo:       memory.NewLocationRepo(),
		SpeechRepo:         memory.NewSpeechRepo(),
		Translator:         translate.NewStaticTranslator(),
	}

	switch cfg.StorageBackend {
	case "dynamo":
		// Bootstrap DynamoDB tables (creates them if they don't exist).
		dynamoClient := dynamo.NewClient(cfg)
		dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)
		deps.UserRepo = dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users)
		deps.SessionRepo = dynamo.NewSessionRepo(dynamoClient, cfg.DynamoTables.Sessions)
		deps.OTPRepo = dynamo.NewOTPRepo(dynamoClient, cfg.DynamoTables.Otps)
	default:
		deps.UserRepo = memory.NewUserRepo()
		deps.SessionRepo = memory.NewSessionRepo()
		deps.OTPRepo = memory.NewOTPRepo()
	}

	// SNS SMS sender in production; the log channel otherwise.
	if cfg.SMSDelivery == "sns" {
		sender, err := sns.NewSender(cfg)
		if err != nil {
			log.Fatalf("SNS sender: %v", err)
		}
		deps.SMSSender = sender
	} else {
		deps.SMSSender = sns.NewLogSender()
	}

	// S3 media store (optional — uploads answer 503 without it).
	if cfg.S3BucketName != "" {
		s3Client := s3infra.NewClient(cfg)
		deps.S3Store = s3infra.NewStore(s3Client, cfg.S3BucketName)
	}

	memory.Seed(context.Background(), deps.LocationRepo, deps.RepresentativeRepo, deps.BudgetRepo, deps.SpeechRepo)

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, storage=%s)", cfg.AppPort, cfg.AppEnv, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
