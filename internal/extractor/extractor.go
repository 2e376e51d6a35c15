package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/process-flow/internal/flowchart"
)

// Process runs the full extraction pipeline for one step file: parse, filter,
// classify, synthesize the flowchart, render it, match frames if a manifest
// is present, and archive the input.
func (e *implExtractor) Process(ctx context.Context, stepsPath string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(stepsPath), filepath.Ext(stepsPath))

	e.logger.Info(ctx, "========================================")
	e.logger.Info(ctx, "Starting process extraction: %s", stepsPath)
	e.logger.Info(ctx, "========================================")

	// Step 1: Read and parse the raw step list
	raw, err := os.ReadFile(stepsPath)
	if err != nil {
		return fmt.Errorf("read steps file: %w", err)
	}

	lines := ParseSteps(string(raw))
	if len(lines) == 0 {
		return fmt.Errorf("no process steps found in %s", stepsPath)
	}

	// Step 2: Drop conversational steps and cap the flow size
	lines = e.classifier.FilterConversational(lines)
	if max := e.cfg.Flowchart.MaxSteps; len(lines) > max {
		e.logger.Debug(ctx, "Capping %d steps to %d", len(lines), max)
		lines = lines[:max]
	}

	// Step 3: Classify
	steps := e.classifier.Classify(lines)
	e.logger.Info(ctx, "Classified %d steps", len(steps))

	// Step 4: Synthesize and render the flowchart
	graph := e.synthesizer.Synthesize(ctx, steps)

	dotPath := filepath.Join(e.cfg.Paths.Output, name+".dot")
	if err := os.WriteFile(dotPath, []byte(flowchart.ToDOT(graph)), 0644); err != nil {
		return fmt.Errorf("write DOT: %w", err)
	}
	e.logger.Info(ctx, "Flowchart DOT written: %s", dotPath)

	if imagePath, err := e.render(ctx, dotPath, name); err != nil {
		e.logger.Warn(ctx, "Failed to render flowchart image: %v", err)
	} else {
		e.logger.Info(ctx, "Flowchart image written: %s", imagePath)
	}

	// Step 5: Match candidate frames when a manifest accompanies the input
	manifestPath := filepath.Join(filepath.Dir(stepsPath), name+".frames.yaml")
	frames, err := loadFrames(manifestPath)
	if err != nil {
		return fmt.Errorf("load frames: %w", err)
	}
	if len(frames) > 0 {
		assignment := e.matcher.Match(ctx, frames, steps)

		assignmentPath := filepath.Join(e.cfg.Paths.Output, name+".assignment.yaml")
		if err := writeAssignment(assignmentPath, assignment); err != nil {
			return fmt.Errorf("write assignment: %w", err)
		}
		e.logger.Info(ctx, "Frame assignment written: %s (%d/%d matched)",
			assignmentPath, assignment.Matched(), len(steps))
	} else {
		e.logger.Debug(ctx, "No frame manifest at %s, skipping matching", manifestPath)
	}

	// Step 6: Archive the input so it is not re-processed
	if err := e.archive(ctx, stepsPath); err != nil {
		e.logger.Warn(ctx, "Failed to archive input: %v", err)
	}

	e.logger.Info(ctx, "========================================")
	e.logger.Info(ctx, "Extraction completed in %s", time.Since(startTime))
	e.logger.Info(ctx, "========================================")

	return nil
}

// render shells out to the Graphviz binary for the image artifact.
func (e *implExtractor) render(ctx context.Context, dotPath, name string) (string, error) {
	imagePath := filepath.Join(e.cfg.Paths.Output, name+"."+e.cfg.Graphviz.Format)

	args := []string{
		"-T" + e.cfg.Graphviz.Format,
		"-o", imagePath,
		dotPath,
	}

	if _, err := e.executor.Execute(ctx, e.cfg.Graphviz.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("graphviz render: %w", err)
	}

	return imagePath, nil
}

func (e *implExtractor) archive(ctx context.Context, stepsPath string) error {
	destPath := filepath.Join(e.cfg.Paths.Archived, filepath.Base(stepsPath))

	e.logger.Debug(ctx, "Archiving: %s -> %s", stepsPath, destPath)

	if err := os.Rename(stepsPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}
