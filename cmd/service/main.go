package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/codigohunt/solutions-backend/internal"
	"github.com/codigohunt/solutions-backend/internal/config"
	"github.com/codigohunt/solutions-backend/internal/logging"
	"github.com/codigohunt/solutions-backend/pkg"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "main-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	adminUsername := os.Getenv("CODIGOHUNT_ADMIN_USERNAME")
	adminPasswordHash := os.Getenv("CODIGOHUNT_ADMIN_PASSWORD_HASH")
	if adminUsername == "" || adminPasswordHash == "" {
		log.Errorf("admin username and password not set. use CODIGOHUNT_ADMIN_USERNAME and CODIGOHUNT_ADMIN_PASSWORD_HASH")
	}

	assistantAPIKey := os.Getenv("CODIGOHUNT_ASSISTANT_API_KEY")
	if assistantAPIKey == "" {
		log.Errorf("assistant API key not set, chat will run on fallback replies. use CODIGOHUNT_ASSISTANT_API_KEY")
	}

	redisPassword := os.Getenv("CODIGOHUNT_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use CODIGOHUNT_REDIS_PASS")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:            cfg,
			VersionInfo:       versionInfo,
			AdminUsername:     adminUsername,
			AdminPasswordHash: adminPasswordHash,
			RedisPassword:     redisPassword,
			AssistantAPIKey:   assistantAPIKey,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
