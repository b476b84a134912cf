package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/duckup/duckup/internal/backup"
	configenv "github.com/duckup/duckup/internal/config/sources/env"
	"github.com/duckup/duckup/internal/duckdns"
	"github.com/duckup/duckup/internal/health"
	"github.com/duckup/duckup/internal/models"
	"github.com/duckup/duckup/internal/publicip"
	"github.com/duckup/duckup/internal/server"
	"github.com/duckup/duckup/internal/shoutrrr"
	"github.com/duckup/duckup/internal/store"
	"github.com/duckup/duckup/internal/update"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, os.Args, logger, buildInfo, time.Now)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		}
	}

	if health.IsClientMode(args) {
		// Ephemeral instance querying the long running instance
		// about its status, used by the Docker healthcheck.
		config, err := configenv.New(logger).Read()
		if err != nil {
			return fmt.Errorf("reading health settings: %w", err)
		}
		config.SetDefaults()

		client := health.NewClient()
		return client.Query(ctx, config.Health.ServerAddress)
	}

	printSplash(buildInfo)

	config, err := configenv.New(logger).Read()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	config.Shoutrrr.Logger = logger.New(log.SetComponent("shoutrrr"))
	shoutrrrClient, err := shoutrrr.New(config.Shoutrrr)
	if err != nil {
		return fmt.Errorf("setting up shoutrrr: %w", err)
	}

	documentStore, err := store.New(*config.Paths.DataDir,
		logger.New(log.SetComponent("store")))
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("creating document store: %w", err)
	}

	client := &http.Client{Timeout: config.Client.Timeout}
	defer client.CloseIdleConnections()

	ipGetter := publicip.New(publicip.Settings{
		Client:     client,
		Timeout:    config.PubIP.FetchTimeout,
		IPv4URLs:   config.PubIP.HTTPIPv4URLs,
		IPv6URLs:   config.PubIP.HTTPIPv6URLs,
		DNSEnabled: config.PubIP.DNSEnabled,
		Logger:     logger.New(log.SetComponent("publicip")),
	})

	duckDNSClient := duckdns.New(client)
	updater := update.NewUpdater(duckDNSClient, ipGetter,
		logger.New(log.SetComponent("updater")), timeNow)
	runner := update.NewRunner(documentStore, updater,
		logger.New(log.SetComponent("runner")))
	runner.AddObserver(func(result models.Result) {
		shoutrrrClient.Notify(result.Message)
	})

	runnerDone := make(chan struct{})
	go runner.Run(ctx, runnerDone)

	isHealthy := health.MakeIsHealthy(runner)
	healthLogger := logger.New(log.SetComponent("health server"))
	healthServer := health.NewServer(config.Health.ServerAddress,
		healthLogger, isHealthy)
	healthServerDone := make(chan struct{})
	go healthServer.Run(ctx, healthServerDone)

	backupLogger := logger.New(log.SetComponent("backup"))
	backupService := backup.New(*config.Backup.Period, *config.Paths.DataDir,
		*config.Backup.Directory, backupLogger)
	backupDone := make(chan struct{})
	go backupService.Run(ctx, backupDone)

	serverDone := make(chan struct{})
	if *config.Server.Enabled {
		rootURL := strings.TrimSuffix(config.Server.RootURL, "/")
		serverLogger := logger.New(log.SetComponent("http server"))
		mainServer := server.New(config.Server.ListeningAddress, rootURL,
			serverLogger, runner, buildInfo)
		go mainServer.Run(ctx, serverDone)
	} else {
		close(serverDone)
	}

	<-ctx.Done()

	waitForDone(runnerDone, healthServerDone, backupDone, serverDone)
	return nil
}

func waitForDone(doneChannels ...<-chan struct{}) {
	for _, done := range doneChannels {
		<-done
	}
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "duckup",
		Repository: "duckup",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}
