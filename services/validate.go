package services

import (
	"fmt"
	"strings"

	"skillforge/models"
)

// ValidateQuizQuestion rejects malformed candidates before they reach a
// quiz: too-short question text, a wrong option count, blank options or
// an out-of-range answer index.
func ValidateQuizQuestion(q models.QuizQuestion) error {
	if len(strings.TrimSpace(q.Question)) < 10 {
		return fmt.Errorf("question text too short")
	}
	if len(q.Options) != 4 {
		return fmt.Errorf("expected 4 options, got %d", len(q.Options))
	}
	seen := make(map[string]bool, 4)
	for i, opt := range q.Options {
		trimmed := strings.TrimSpace(opt)
		if trimmed == "" {
			return fmt.Errorf("option %d is empty", i)
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			return fmt.Errorf("option %d duplicates another option", i)
		}
		seen[key] = true
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
		return fmt.Errorf("correct answer index %d out of range", q.CorrectAnswer)
	}
	return nil
}

// ValidateLearningModule rejects module candidates that are too thin to
// schedule.
func ValidateLearningModule(m models.LearningModule) error {
	if m.Week < 1 {
		return fmt.Errorf("week must be positive")
	}
	if len(strings.TrimSpace(m.Title)) < 5 {
		return fmt.Errorf("module title too short")
	}
	if len(strings.TrimSpace(m.Description)) < 10 {
		return fmt.Errorf("module description too short")
	}
	return nil
}

// questionKey normalizes question text for duplicate detection: case
// and runs of whitespace are ignored.
func questionKey(question string) string {
	return strings.ToLower(strings.Join(strings.Fields(question), " "))
}

// dedupeQuestions keeps the first occurrence of each distinct question.
func dedupeQuestions(items []models.QuizQuestion) []models.QuizQuestion {
	seen := make(map[string]bool, len(items))
	out := make([]models.QuizQuestion, 0, len(items))
	for _, q := range items {
		key := questionKey(q.Question)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
	}
	return out
}
