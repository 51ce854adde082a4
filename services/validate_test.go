package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillforge/models"
)

func validQuestion() models.QuizQuestion {
	return models.QuizQuestion{
		Question:      "What is the zero value of a pointer in Go?",
		Options:       []string{"nil", "0", "empty struct", "undefined"},
		CorrectAnswer: 0,
	}
}

func TestValidateQuizQuestion(t *testing.T) {
	assert.NoError(t, ValidateQuizQuestion(validQuestion()))

	q := validQuestion()
	q.Question = "short?"
	assert.Error(t, ValidateQuizQuestion(q))

	q = validQuestion()
	q.Options = q.Options[:3]
	assert.Error(t, ValidateQuizQuestion(q))

	q = validQuestion()
	q.Options[2] = "   "
	assert.Error(t, ValidateQuizQuestion(q))

	q = validQuestion()
	q.CorrectAnswer = 4
	assert.Error(t, ValidateQuizQuestion(q))

	q = validQuestion()
	q.CorrectAnswer = -1
	assert.Error(t, ValidateQuizQuestion(q))
}

func TestValidateLearningModule(t *testing.T) {
	m := models.LearningModule{
		Week:        1,
		Title:       "Getting Started",
		Description: "Install the toolchain and write a first program.",
	}
	assert.NoError(t, ValidateLearningModule(m))

	m.Week = 0
	assert.Error(t, ValidateLearningModule(m))

	m.Week = 1
	m.Title = "abc"
	assert.Error(t, ValidateLearningModule(m))

	m.Title = "Getting Started"
	m.Description = "too short"
	assert.Error(t, ValidateLearningModule(m))
}

func TestDedupeQuestionsNormalizesCaseAndWhitespace(t *testing.T) {
	items := []models.QuizQuestion{
		{Question: "What is a   channel in Go?"},
		{Question: "what is a channel in go?"},
		{Question: "  WHAT IS A CHANNEL IN GO?  "},
		{Question: "What is a mutex in Go?"},
	}
	out := dedupeQuestions(items)
	require.Len(t, out, 2)
	assert.Equal(t, "What is a   channel in Go?", out[0].Question)
	assert.Equal(t, "What is a mutex in Go?", out[1].Question)
}
