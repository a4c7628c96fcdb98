package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmatsuda/resume-screener/internal/ingestion"
	"github.com/jmatsuda/resume-screener/internal/observability"
	"github.com/jmatsuda/resume-screener/internal/ranking"
	"github.com/jmatsuda/resume-screener/internal/skills"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank resumes against a job description offline",
	Long:  "Extracts skills and experience from resume files in a directory, scores each against a job description, and prints the ranked results as JSON without requiring a database.",
	RunE:  runRank,
}

var (
	rankJobPath    string
	rankResumesDir string
	rankVocabPath  string
	rankOutput     string
	rankVerbose    bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankJobPath, "job", "j", "", "Path to job description text file (required)")
	rankCmd.Flags().StringVarP(&rankResumesDir, "resumes", "r", "", "Directory of resume files to rank (required)")
	rankCmd.Flags().StringVarP(&rankVocabPath, "vocabulary", "s", "RoleSkills.csv", "Path to skill vocabulary CSV")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print formatted summaries of each stage")

	if err := rankCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("resumes"); err != nil {
		panic(fmt.Sprintf("failed to mark resumes flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	jobText, err := os.ReadFile(rankJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description file %s: %w", rankJobPath, err)
	}

	vocab, err := skills.LoadVocabulary(rankVocabPath)
	if err != nil {
		return fmt.Errorf("failed to load skill vocabulary: %w", err)
	}

	ranker := ranking.NewRanker(vocab)

	candidates, err := loadCandidates(ranker, rankResumesDir)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no readable resumes found in %s", rankResumesDir)
	}

	results, err := ranker.Rank(string(jobText), candidates)
	if err != nil {
		return fmt.Errorf("failed to rank resumes: %w", err)
	}

	if rankVerbose {
		printer := observability.NewPrinter(os.Stderr)
		job := ranker.ExtractJobAttributes(string(jobText))
		printer.PrintJobAttributes(&job)
		printer.PrintRankedResults(results)
	}

	jsonOutput, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranked results to JSON: %w", err)
	}

	if rankOutput == "" {
		fmt.Println(string(jsonOutput))
		return nil
	}
	if dir := filepath.Dir(rankOutput); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(rankOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", rankOutput, err)
	}
	fmt.Printf("Ranked %d resumes, results written to %s\n", len(results), rankOutput)
	return nil
}

// loadCandidates reads every supported resume file in dir. Files that
// fail text extraction are skipped with a warning rather than aborting
// the whole run.
func loadCandidates(ranker *ranking.Ranker, dir string) ([]ranking.Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resumes directory %s: %w", dir, err)
	}

	// os.ReadDir sorts by filename, so equal scores rank alphabetically.
	var candidates []ranking.Candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)

		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", name, err)
			continue
		}

		var text string
		switch strings.ToLower(filepath.Ext(name)) {
		case ".txt":
			text = string(data)
		default:
			text, err = ingestion.ExtractText(name, data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", name, err)
				continue
			}
		}

		cleaned := ingestion.CleanText(text)
		attrs := ranker.ExtractResumeAttributes(cleaned)
		candidates = append(candidates, ranking.Candidate{
			ID:        name,
			Text:      cleaned,
			Education: attrs.Education,
		})
	}
	return candidates, nil
}
