package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skills.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewVocabulary_DeduplicatesAndTrims(t *testing.T) {
	v := NewVocabulary([]string{" Python ", "SQL", "python", "", "AWS"})

	assert.Equal(t, []string{"Python", "SQL", "AWS"}, v.Skills())
	assert.Equal(t, 3, v.Len())
}

func TestLoadVocabulary(t *testing.T) {
	path := writeTempCSV(t, "Role,Skills\nBackend,\"Python, SQL, Docker\"\nData,\"Python, Pandas\"\n")

	v, err := LoadVocabulary(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "SQL", "Docker", "Pandas"}, v.Skills())
}

func TestLoadVocabulary_HeaderWhitespace(t *testing.T) {
	path := writeTempCSV(t, " Skills \nGo\n")

	v, err := LoadVocabulary(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, v.Skills())
}

func TestLoadVocabulary_MissingColumn(t *testing.T) {
	path := writeTempCSV(t, "Role,Tools\nBackend,Python\n")

	_, err := LoadVocabulary(path)

	assert.ErrorContains(t, err, "no Skills column")
}

func TestLoadVocabulary_MissingFile(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "absent.csv"))

	assert.Error(t, err)
}

func TestLoadVocabulary_NoSkills(t *testing.T) {
	path := writeTempCSV(t, "Skills\n\n")

	_, err := LoadVocabulary(path)

	assert.ErrorContains(t, err, "contains no skills")
}
