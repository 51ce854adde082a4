package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizRequestValidate(t *testing.T) {
	req := QuizRequest{Topic: "  Go  ", Difficulty: "beginner"}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "Go", req.Topic)
	assert.Equal(t, 10, req.NumQuestions)
	assert.Equal(t, "technical", req.Category)

	assert.Error(t, (&QuizRequest{Topic: "x", Difficulty: "beginner"}).Validate())
	assert.Error(t, (&QuizRequest{Topic: "Go", Difficulty: "hardcore"}).Validate())
	assert.Error(t, (&QuizRequest{Topic: "Go", Difficulty: "beginner", NumQuestions: 51}).Validate())
	assert.Error(t, (&QuizRequest{Topic: "Go", Difficulty: "beginner", TimeLimit: 3}).Validate())
}

func TestLearningPathRequestValidate(t *testing.T) {
	req := LearningPathRequest{
		Goal:          "learn go",
		Timeline:      30,
		CurrentSkills: []string{" python ", "", "sql"},
	}
	assert.NoError(t, req.Validate())
	assert.Equal(t, []string{"python", "sql"}, req.CurrentSkills)
	assert.Equal(t, "mixed", req.LearningStyle)
	assert.Equal(t, 10, req.HoursPerWeek)

	assert.Error(t, (&LearningPathRequest{Goal: "go", Timeline: 30}).Validate())
	assert.Error(t, (&LearningPathRequest{Goal: "learn go", Timeline: 5}).Validate())
	assert.Error(t, (&LearningPathRequest{Goal: "learn go", Timeline: 400}).Validate())
	assert.Error(t, (&LearningPathRequest{Goal: "learn go", Timeline: 30, HoursPerWeek: 41}).Validate())
	assert.Error(t, (&LearningPathRequest{Goal: "learn go", Timeline: 30, CurrentSkills: make([]string, 51)}).Validate())
}

func TestResumeAnalysisRequestValidate(t *testing.T) {
	ok := ResumeAnalysisRequest{Text: strings.Repeat("experience ", 20)}
	assert.NoError(t, ok.Validate())

	assert.Error(t, (&ResumeAnalysisRequest{Text: "too short"}).Validate())
	assert.Error(t, (&ResumeAnalysisRequest{Text: strings.Repeat("x", 50001)}).Validate())
	assert.Error(t, (&ResumeAnalysisRequest{Text: strings.Repeat("x", 200), TargetRole: "x"}).Validate())
}

func TestTutorRequestValidate(t *testing.T) {
	req := TutorRequest{Question: "  What is a pointer?  "}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "What is a pointer?", req.Question)

	assert.Error(t, (&TutorRequest{Question: "why"}).Validate())
	assert.Error(t, (&TutorRequest{Question: strings.Repeat("x", 2001)}).Validate())
	assert.Error(t, (&TutorRequest{Question: "valid question", Context: strings.Repeat("x", 5001)}).Validate())
	assert.Error(t, (&TutorRequest{Question: "valid question", Subject: "x"}).Validate())
}
