package datasync

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/demureom-ctrl/Game/internal/question"
)

// YAMLQuestionSink writes questions to a YAML file.
type YAMLQuestionSink struct {
	outputDir string
}

// NewYAMLQuestionSink creates a new YAMLQuestionSink.
func NewYAMLQuestionSink(outputDir string) *YAMLQuestionSink {
	return &YAMLQuestionSink{outputDir: outputDir}
}

// WriteAll writes questions to questions.yml and returns its path.
func (s *YAMLQuestionSink) WriteAll(questions []question.Question) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(s.outputDir, "questions.yml")
	if questions == nil {
		questions = []question.Question{}
	}
	if err := writeYAML(path, questions); err != nil {
		return "", fmt.Errorf("write questions.yml: %w", err)
	}
	return path, nil
}

func writeYAML(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}
