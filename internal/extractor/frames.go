package extractor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/process-flow/internal/matcher"
)

// frameManifest is the optional sidecar file carrying candidate frames for a
// step file, produced by the upstream frame-extraction/OCR stage.
type frameManifest struct {
	Frames []matcher.FrameCandidate `yaml:"frames"`
}

// loadFrames reads a frame manifest. A missing file is not an error: the run
// simply skips frame matching.
func loadFrames(path string) ([]matcher.FrameCandidate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read frame manifest: %w", err)
	}

	var manifest frameManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse frame manifest: %w", err)
	}

	return manifest.Frames, nil
}

// assignmentDocument is the YAML shape written for a completed matching run.
type assignmentDocument struct {
	Steps []matcher.Entry `yaml:"steps"`
}

func writeAssignment(path string, assignment matcher.Assignment) error {
	data, err := yaml.Marshal(assignmentDocument{Steps: assignment})
	if err != nil {
		return fmt.Errorf("marshal assignment: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write assignment: %w", err)
	}

	return nil
}
