// Package skills extracts canonical skills from free text against a known
// vocabulary and fuzzy-compares skill sets.
package skills

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Vocabulary is the canonical set of known skill names. It is loaded once
// at startup and read-only afterwards, so it is safe to share across
// goroutines. Construct one with NewVocabulary or LoadVocabulary and pass
// it to the components that need it.
type Vocabulary struct {
	skills []string
}

// NewVocabulary builds a vocabulary from a list of skill names, trimming
// whitespace and dropping duplicates (case-insensitive) and empty names.
// Input order is preserved.
func NewVocabulary(names []string) *Vocabulary {
	seen := make(map[string]bool, len(names))
	skills := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, name)
	}
	return &Vocabulary{skills: skills}
}

// LoadVocabulary reads a vocabulary from a CSV reference table. The table
// must have a header row containing a "Skills" column; each cell in that
// column holds one or more comma-separated skill names.
func LoadVocabulary(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary CSV %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("vocabulary CSV %s is empty", path)
	}

	skillsCol := -1
	for i, name := range records[0] {
		if strings.EqualFold(strings.TrimSpace(name), "Skills") {
			skillsCol = i
			break
		}
	}
	if skillsCol == -1 {
		return nil, fmt.Errorf("vocabulary CSV %s has no Skills column", path)
	}

	var names []string
	for _, record := range records[1:] {
		if skillsCol >= len(record) {
			continue
		}
		names = append(names, strings.Split(record[skillsCol], ",")...)
	}

	vocab := NewVocabulary(names)
	if vocab.Len() == 0 {
		return nil, fmt.Errorf("vocabulary CSV %s contains no skills", path)
	}
	return vocab, nil
}

// Skills returns a copy of the vocabulary's skill names.
func (v *Vocabulary) Skills() []string {
	out := make([]string, len(v.skills))
	copy(out, v.skills)
	return out
}

// Len returns the number of skills in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.skills)
}
