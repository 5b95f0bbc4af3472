// snapshotd samples the memory of a running FireRed core over RetroArch's
// network command interface, decodes it into game snapshots on a fixed
// cadence and publishes them to the configured sinks.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/retrosnap/firered/internal/api"
	"github.com/retrosnap/firered/internal/config"
	"github.com/retrosnap/firered/internal/decode"
	"github.com/retrosnap/firered/internal/gba"
	"github.com/retrosnap/firered/internal/influx"
	"github.com/retrosnap/firered/internal/logging"
	"github.com/retrosnap/firered/internal/mem"
	"github.com/retrosnap/firered/internal/monitor"
	intOtel "github.com/retrosnap/firered/internal/otel"
	"github.com/retrosnap/firered/internal/sampler"
	"github.com/retrosnap/firered/internal/storage"
	"github.com/retrosnap/firered/internal/worker"
)

// Version can be set at build time via ldflags.
var Version = "0.0.1"

const frameRate = 60 // GBA frames per second

func main() {
	configDir := flag.String("config", ".", "directory containing snapshotd.cfg.json")
	once := flag.Bool("once", false, "decode and publish a single snapshot, then exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("snapshotd", Version)
		return
	}

	if err := run(*configDir, *once); err != nil {
		fmt.Fprintln(os.Stderr, "snapshotd:", err)
		os.Exit(1)
	}
}

func run(configDir string, once bool) error {
	sessionStart := time.Now()

	if err := config.Load(configDir); err != nil {
		// Defaults are complete; a missing config file is not fatal.
		fmt.Fprintln(os.Stderr, "snapshotd: using defaults:", err)
	}

	logsDir := viper.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	logFile, err := os.Create(logging.LogFilePath(logsDir, "snapshotd", sessionStart))
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer logFile.Close()

	// OTel first so the slog manager can bridge into it.
	otelCfg := config.GetOTelConfig()
	var otelLogFile *os.File
	if otelCfg.Enabled {
		otelLogFile, err = os.Create(logging.LogFilePath(logsDir, "snapshotd.otel", sessionStart))
		if err != nil {
			return fmt.Errorf("creating otel log file: %w", err)
		}
		defer otelLogFile.Close()
	}
	otelProvider, err := intOtel.New(intOtel.Config{
		Enabled:      otelCfg.Enabled,
		ServiceName:  otelCfg.ServiceName,
		BatchTimeout: otelCfg.BatchTimeout,
		LogWriter:    otelLogFile,
		Endpoint:     otelCfg.Endpoint,
		Insecure:     otelCfg.Insecure,
	})
	if err != nil {
		return fmt.Errorf("initializing otel: %w", err)
	}

	logManager := logging.NewManager()
	logManager.Setup(logFile, viper.GetString("logLevel"), otelProvider.LoggerProvider())
	logger := logManager.Logger()
	logger.Info("snapshotd starting", "version", Version)

	zlog := zerolog.New(logFile).With().Timestamp().Logger()

	samplerCfg := config.GetSamplerConfig()
	layout, ok := gba.ByName(samplerCfg.Layout)
	if !ok {
		return fmt.Errorf("unknown memory layout %q", samplerCfg.Layout)
	}

	raCfg := config.GetRetroArchConfig()
	reader, err := mem.DialRetroArch(raCfg.Host, raCfg.Port, raCfg.Timeout, logger)
	if err != nil {
		return fmt.Errorf("connecting to retroarch: %w", err)
	}
	defer reader.Close()
	logger.Info("Connected to RetroArch", "host", raCfg.Host, "port", raCfg.Port,
		"layout", layout.Name)

	decoder := decode.New(reader, layout,
		decode.Options{TrackDexIDs: samplerCfg.TrackDexIDs}, logger)

	// The file artifact is written synchronously on the sampling path;
	// everything else goes through the async queue.
	fileSink, err := storage.NewBackend("file", logger, zlog)
	if err != nil {
		return fmt.Errorf("creating file sink: %w", err)
	}
	syncSinks := []storage.Backend{fileSink}

	var asyncSinks []storage.Backend
	if viper.GetBool("db.enabled") {
		dbSink, err := storage.NewBackend("gorm", logger, zlog)
		if err != nil {
			return fmt.Errorf("creating db sink: %w", err)
		}
		asyncSinks = append(asyncSinks, dbSink)
	}
	if viper.GetBool("influx.enabled") {
		backupPath := filepath.Join(logsDir, "influx_backup.gz")
		asyncSinks = append(asyncSinks, influx.NewManager(zlog, backupPath, layout.Name))
	}

	apiCfg := config.GetAPIConfig()
	if apiCfg.Enabled {
		asyncSinks = append(asyncSinks, api.NewServer(apiCfg.Listen, logger))
	}

	publisher, err := worker.New(logger, syncSinks, asyncSinks)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	if err := publisher.Init(); err != nil {
		return fmt.Errorf("initializing sinks: %w", err)
	}
	publisher.Start()

	smp, err := sampler.New(decoder, publisher, samplerCfg.Cadence, samplerCfg.TrackDexIDs, logger)
	if err != nil {
		return fmt.Errorf("creating sampler: %w", err)
	}

	// Loop-side logs carry the current sampling tick.
	loopLog := slog.New(logging.NewContextHandler(logger.Handler(), func() []slog.Attr {
		return []slog.Attr{slog.Uint64("tick", smp.Tick())}
	}))

	mon := monitor.NewService(monitor.Dependencies{
		Logger:     logger,
		Sampler:    smp,
		Publisher:  publisher,
		StatusPath: filepath.Join(logsDir, "status.json"),
		Interval:   5 * time.Second,
	})
	if err := mon.Start(); err != nil {
		return fmt.Errorf("starting monitor: %w", err)
	}

	if once {
		// Advance one full cadence so exactly one snapshot publishes.
		cadence := samplerCfg.Cadence
		if cadence < 1 {
			cadence = sampler.DefaultCadence
		}
		for i := 0; i < cadence; i++ {
			smp.OnTick()
		}
	} else {
		runLoop(smp, loopLog)
	}

	loopLog.Info("snapshotd stopping")
	mon.Stop()
	publisher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := logManager.Flush(ctx); err != nil {
		logger.Warn("Log flush failed", "error", err)
	}
	if err := otelProvider.Shutdown(ctx); err != nil {
		logger.Warn("OTel shutdown failed", "error", err)
	}
	return nil
}

// runLoop drives the sampler at the platform frame rate until SIGINT or
// SIGTERM.
func runLoop(smp *sampler.Sampler, logger *slog.Logger) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			smp.OnTick()
		case s := <-sig:
			logger.Info("Signal received, shutting down", "signal", s.String())
			return
		}
	}
}
