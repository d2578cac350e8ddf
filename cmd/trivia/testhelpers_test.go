package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDocument = `<html>
<body>
<script>
  const FULL_QUESTIONS_DB = [
    {category: 'Tech', difficulty: 2, question: 'Q1?', answer: 'A1', options: ['x', 'y']},
    {category: 'ثقافة عامة', difficulty: 1, question: 'Q2?', answer: 'A2'},
    {category: 'معلومات عامة', difficulty: 3, question: 'Q3?', answer: 'A3', options: []},
  ];
</script>
</body>
</html>
`

// setConfigFile points the commands at cfgPath for the duration of the test.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	orig := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = orig })
}

func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("database: [unclosed\n"), 0644))
	return cfgPath
}

// setupTestConfig writes a config using a sqlite database and the test document under dir.
func setupTestConfig(t *testing.T, dir string) string {
	t.Helper()
	documentPath := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(documentPath, []byte(testDocument), 0644))

	content := fmt.Sprintf(`database:
  driver: sqlite3
  path: %s
import:
  document: %s
  literal_name: FULL_QUESTIONS_DB
export:
  directory: %s
seed:
  file: %s
maintenance:
  category_merges:
    - from: ثقافة عامة
      to: معلومات عامة
`, filepath.Join(dir, "questions.db"), documentPath, filepath.Join(dir, "export"), filepath.Join(dir, "seeds.yml"))
	cfgPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

const testSeeds = `questions:
  - category: Tech
    difficulty: 2
    question: Q1?
    answer: A1
    options: [x, y]
  - category: Math
    question: 2+2?
    answer: "4"
proverbs:
  - الصبر مفتاح الفرج
  - العقل زينة
words:
  - category: حيوانات
    content: زرافة
  - category: أفلام
    content: زرافة
`

func writeSeedFile(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seeds.yml"), []byte(testSeeds), 0644))
}
