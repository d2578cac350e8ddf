package datasync

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/demureom-ctrl/Game/internal/proverb"
	"github.com/demureom-ctrl/Game/internal/question"
	"github.com/demureom-ctrl/Game/internal/word"
)

// SeedData is the content of a seed file.
type SeedData struct {
	Questions []question.Record `yaml:"questions"`
	Proverbs  []string          `yaml:"proverbs"`
	Words     []SeedWord        `yaml:"words"`
}

type SeedWord struct {
	Category string `yaml:"category"`
	Content  string `yaml:"content"`
}

// SeedResult tracks counts for a seed run.
type SeedResult struct {
	Questions ImportResult
	Proverbs  int
	Words     ImportResult
}

// LoadSeedFile reads a YAML seed file.
func LoadSeedFile(path string) (*SeedData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	var data SeedData
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
	}
	for i, r := range data.Questions {
		if strings.TrimSpace(r.Category) == "" || strings.TrimSpace(r.Question) == "" || strings.TrimSpace(r.Answer) == "" {
			return nil, fmt.Errorf("%s: question %d: category, question and answer are required", path, i)
		}
		if r.Difficulty == 0 {
			data.Questions[i].Difficulty = 1
		}
	}
	for i, w := range data.Words {
		if strings.TrimSpace(w.Category) == "" || strings.TrimSpace(w.Content) == "" {
			return nil, fmt.Errorf("%s: word %d: category and content are required", path, i)
		}
	}
	return &data, nil
}

// Seeder fills the store with bundled content.
//
// Questions go through the Importer and its dedup key. Proverbs are only
// inserted into an empty table. Words are skipped when their (category, content)
// pair is already stored.
type Seeder struct {
	importer    *Importer
	proverbRepo proverb.ProverbRepository
	wordRepo    word.WordRepository
	writer      io.Writer
}

// NewSeeder creates a new Seeder. Per-question progress lines are not printed.
func NewSeeder(questionRepo question.QuestionRepository, proverbRepo proverb.ProverbRepository, wordRepo word.WordRepository, writer io.Writer) *Seeder {
	return &Seeder{
		importer:    NewImporter(questionRepo, io.Discard),
		proverbRepo: proverbRepo,
		wordRepo:    wordRepo,
		writer:      writer,
	}
}

func (s *Seeder) Seed(ctx context.Context, data *SeedData) (*SeedResult, error) {
	var result SeedResult
	var err error

	if len(data.Questions) > 0 {
		questions, err := s.importer.ImportQuestions(ctx, data.Questions, ImportOptions{})
		if err != nil {
			return nil, fmt.Errorf("seed questions: %w", err)
		}
		result.Questions = *questions
		if questions.Inserted > 0 {
			fmt.Fprintf(s.writer, "Added %d new questions to database.\n", questions.Inserted)
		}
	}

	if result.Proverbs, err = s.seedProverbs(ctx, data.Proverbs); err != nil {
		return nil, fmt.Errorf("seed proverbs: %w", err)
	}
	if result.Proverbs > 0 {
		fmt.Fprintf(s.writer, "Added %d proverbs to database.\n", result.Proverbs)
	}

	words, err := s.seedWords(ctx, data.Words)
	if err != nil {
		return nil, fmt.Errorf("seed words: %w", err)
	}
	result.Words = *words
	if words.Inserted > 0 {
		fmt.Fprintf(s.writer, "Added %d new words to database.\n", words.Inserted)
	}

	slog.Debug("seeded store",
		"questions", result.Questions.Inserted,
		"proverbs", result.Proverbs,
		"words", result.Words.Inserted)
	return &result, nil
}

func (s *Seeder) seedProverbs(ctx context.Context, contents []string) (int, error) {
	if len(contents) == 0 {
		return 0, nil
	}
	count, err := s.proverbRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if count > 0 {
		return 0, nil
	}

	proverbs := make([]*proverb.Proverb, len(contents))
	for i, c := range contents {
		proverbs[i] = &proverb.Proverb{Content: c}
	}
	if err := s.proverbRepo.BatchCreate(ctx, proverbs); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return len(proverbs), nil
}

func (s *Seeder) seedWords(ctx context.Context, seedWords []SeedWord) (*ImportResult, error) {
	var result ImportResult
	if len(seedWords) == 0 {
		return &result, nil
	}
	existing, err := s.wordRepo.FindAllKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	newWords := make([]*word.Word, 0, len(seedWords))
	for _, sw := range seedWords {
		w := &word.Word{Category: sw.Category, Content: sw.Content}
		if _, ok := existing[w.Key()]; ok {
			result.Skipped++
			continue
		}
		newWords = append(newWords, w)
	}
	result.Inserted = len(newWords)
	if len(newWords) == 0 {
		return &result, nil
	}
	if err := s.wordRepo.BatchCreate(ctx, newWords); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return &result, nil
}
