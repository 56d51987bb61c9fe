package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	animationRepository "github.com/animaforge/scene-forge/internal/animations/repository"
	"github.com/animaforge/scene-forge/internal/config"
	"github.com/animaforge/scene-forge/internal/script"
	"github.com/animaforge/scene-forge/internal/worker"
	"github.com/animaforge/scene-forge/pkg/db/aws"
	"github.com/animaforge/scene-forge/pkg/db/postgres"
	clientRedis "github.com/animaforge/scene-forge/pkg/db/redis"
	"github.com/animaforge/scene-forge/pkg/logger"
)

// Standalone drain binary. Runs the same dispatcher as the server but
// without the HTTP surface, re-enqueueing whatever was left queued in
// postgres. Useful after a crash or for working through a backlog.
func main() {
	configFile := "config.yml"
	cfgFile, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("loadConfig: %v", err)
	}
	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("parseConfig: %v", err)
	}
	appLogger := logger.NewApiLogger(cfg)
	appLogger.InitLogger()

	psqlDB, err := postgres.NewPsqlDB(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to db: %s", err)
	}
	defer psqlDB.Close()

	redisClient, err := clientRedis.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatalf("could not connect to redis: %s", err)
	}
	defer redisClient.Close()

	s3Client, presignClient, err := aws.NewAWSClient(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.AccessKey, cfg.S3.SecretKey)
	if err != nil {
		appLogger.Fatalf("could not connect to s3: %s", err)
	}

	jobRepo := animationRepository.NewAnimationRepo(psqlDB)
	jobRedisRepo := animationRepository.NewAnimationRedisRepo(redisClient)
	jobAWSRepo := animationRepository.NewAwsRepository(s3Client, presignClient, cfg.S3.Bucket)
	scriptClient := script.NewScriptClient(cfg, appLogger)

	processor := worker.NewProcessor(cfg, jobRepo, jobRedisRepo, jobAWSRepo, scriptClient, appLogger)
	dispatcher := worker.NewDispatcher(cfg, processor, appLogger)

	dispatcher.Start()
	if err = dispatcher.Recover(context.Background()); err != nil {
		appLogger.Errorf("recovery: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit

	dispatcher.Stop()
}
