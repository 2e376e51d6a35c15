package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/process-flow/internal/classifier"
	"github.com/nguyentantai21042004/process-flow/internal/config"
	"github.com/nguyentantai21042004/process-flow/internal/extractor"
	"github.com/nguyentantai21042004/process-flow/internal/flowchart"
	"github.com/nguyentantai21042004/process-flow/internal/generator"
	"github.com/nguyentantai21042004/process-flow/internal/logger"
	"github.com/nguyentantai21042004/process-flow/internal/matcher"
	"github.com/nguyentantai21042004/process-flow/internal/similarity"
	"github.com/nguyentantai21042004/process-flow/internal/watcher"
	"github.com/nguyentantai21042004/process-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Process-Model Extraction Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies. Without API keys the synthesizer runs
	// deterministically only.
	var gen flowchart.Generator
	if len(cfg.Gemini.APIKeys) > 0 {
		gen = generator.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
		log.Info(ctx, "Flowchart delegation enabled (model: %s, %d keys)", cfg.Gemini.Model, len(cfg.Gemini.APIKeys))
	} else {
		log.Info(ctx, "No Gemini API keys configured, deterministic synthesis only")
	}

	cls := classifier.New(classifier.DefaultTables(), cfg.Flowchart.MaxLabelWords)
	syn := flowchart.New(gen, log, time.Duration(cfg.Flowchart.TimeoutSeconds)*time.Second)
	m := matcher.New(similarity.New(similarity.DefaultTables()), cfg.Matcher, log)
	exec := executor.New()
	ext := extractor.New(cfg, cls, syn, m, exec, log)

	// Create watcher with the extractor as handler
	w, err := watcher.New(cfg.Paths.Input, ext.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Extraction pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Drop a numbered step file (.txt/.steps) to start a run")
	log.Info(ctx, "Optional: add <name>.frames.yaml next to it for frame matching")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Extraction pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
