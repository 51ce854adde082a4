package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillforge/models"
)

const validQuizJSON = `{
  "questions": [
    {
      "question": "What does a goroutine run on?",
      "options": ["A scheduler-managed thread", "A separate process", "A GPU core", "A kernel interrupt"],
      "correct_answer": 0,
      "explanation": "Goroutines are multiplexed onto OS threads by the runtime scheduler."
    },
    {
      "question": "Which keyword starts a goroutine?",
      "options": ["go", "run", "spawn", "fork"],
      "correct_answer": 0,
      "explanation": "The go keyword launches a function as a goroutine."
    },
    {
      "question": "What synchronizes goroutines idiomatically?",
      "options": ["Channels", "Global flags", "Busy waiting", "Signals"],
      "correct_answer": 0,
      "explanation": "Channels communicate and synchronize between goroutines."
    }
  ]
}`

func TestParseQuizResponseCleanJSON(t *testing.T) {
	items := ParseQuizResponse(validQuizJSON, "Go", 3)
	require.Len(t, items, 3)
	for _, q := range items {
		assert.Equal(t, models.SourceAIJSON, q.Source)
		assert.Len(t, q.Options, 4)
	}
}

func TestParseQuizResponseFencedJSONWithProse(t *testing.T) {
	raw := "Here is your quiz:\n```json\n" + validQuizJSON + "\n```\nGood luck!"
	items := ParseQuizResponse(raw, "Go", 3)
	require.Len(t, items, 3)
	assert.Equal(t, models.SourceAIJSON, items[0].Source)
}

func TestParseQuizResponseFallsBackToText(t *testing.T) {
	raw := `1. What is the capital of France located on the Seine?
A) Paris
B) London
C) Berlin
D) Madrid
Answer: A

2. Which planet is known as the red planet in our solar system?
A) Venus
B) Mars
C) Jupiter
D) Saturn
Answer: B

3. What gas do plants absorb from the atmosphere during photosynthesis?
A) Oxygen
B) Nitrogen
C) Carbon dioxide
D) Helium
Answer: C`

	items := ParseQuizResponse(raw, "science", 3)
	require.Len(t, items, 3)
	assert.Equal(t, models.SourceAIText, items[0].Source)
	assert.Equal(t, 0, items[0].CorrectAnswer)
	assert.Equal(t, 1, items[1].CorrectAnswer)
	assert.Equal(t, 2, items[2].CorrectAnswer)
}

func TestParseQuizTextUnmarkedAnswerIsTagged(t *testing.T) {
	raw := `1. Which of these is a compiled language used for systems work?
A) Rust
B) HTML
C) CSS
D) Markdown`

	items := parseQuizText(raw, "languages")
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].CorrectAnswer)
	assert.Contains(t, items[0].Tags, "unverified-answer")
}

func TestParseQuizResponseHeuristicLastResort(t *testing.T) {
	raw := "When studying databases you will encounter Structured Query Language, " +
		"the Relational Model and tools like Query Execution Plans. " +
		"Many teams also rely on Write Ahead Logging for durability."

	items := ParseQuizResponse(raw, "databases", 10)
	require.NotEmpty(t, items)
	for _, q := range items {
		assert.Equal(t, models.SourceHeuristic, q.Source)
		assert.Contains(t, q.Tags, "heuristic")
		assert.Len(t, q.Options, 4)
		assert.Equal(t, 0, q.CorrectAnswer)
	}
}

func TestParseQuizTextInlineCorrectMarker(t *testing.T) {
	raw := `What mechanism does Go use to reclaim unused memory automatically?
A) Reference counting
B) Garbage collection (correct)
C) Manual free calls
D) Region inference`

	items := parseQuizText(raw, "Go")
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].CorrectAnswer)
	assert.Equal(t, "Garbage collection", items[0].Options[1])
	assert.NotContains(t, items[0].Tags, "unverified-answer")
}

func TestSufficiencyThreshold(t *testing.T) {
	assert.Equal(t, 3, sufficiencyThreshold(1))
	assert.Equal(t, 3, sufficiencyThreshold(6))
	assert.Equal(t, 5, sufficiencyThreshold(10))
	assert.Equal(t, 25, sufficiencyThreshold(50))
}

func TestExtractJSONObjectIgnoresBracesInStrings(t *testing.T) {
	raw := `noise before {"text": "a } inside a string", "n": 1} noise after`
	doc, ok := extractJSONObject(raw)
	require.True(t, ok)
	assert.Equal(t, `{"text": "a } inside a string", "n": 1}`, doc)
}

func TestExtractJSONObjectUnbalanced(t *testing.T) {
	_, ok := extractJSONObject(`{"never": "closed"`)
	assert.False(t, ok)
	_, ok = extractJSONObject("no json here")
	assert.False(t, ok)
}

func TestParseLearningPathResponseJSON(t *testing.T) {
	raw := `{
  "modules": [
    {"week": 1, "title": "Python Basics", "description": "Syntax, types and control flow.", "skills": ["Python"], "estimated_hours": 8, "project": "Number guessing game"},
    {"week": 2, "title": "Data Structures", "description": "Lists, dicts, sets and tuples in practice.", "skills": ["data structures"], "estimated_hours": 8, "project": "Contact book"},
    {"week": 3, "title": "Files and Errors", "description": "Reading files and handling exceptions.", "skills": ["file IO"], "estimated_hours": 8, "project": "Log parser"}
  ]
}`
	modules := ParseLearningPathResponse(raw, 3)
	require.Len(t, modules, 3)
	assert.Equal(t, 1, modules[0].Week)
	assert.Equal(t, models.SourceAIJSON, modules[0].Source)
}

func TestParseLearningPathResponseWeekHeadings(t *testing.T) {
	raw := `Week 1: Getting Started
Learn the basic toolchain and write your first program.

Week 2: Core Concepts
Work through the fundamental building blocks of the language.

Week 3: First Project
Apply what you learned in a small end-to-end project.`

	modules := ParseLearningPathResponse(raw, 3)
	require.Len(t, modules, 3)
	assert.Equal(t, "Getting Started", modules[0].Title)
	assert.Equal(t, 2, modules[1].Week)
	assert.Equal(t, models.SourceAIText, modules[0].Source)
}

func TestParseResumeInsights(t *testing.T) {
	raw := "```json\n{\"strengths\": [\"solid backend skills\"], \"improvements\": [\"add metrics\"], \"summary\": \"A capable engineer.\"}\n```"
	insights, ok := ParseResumeInsights(raw)
	require.True(t, ok)
	assert.Equal(t, []string{"solid backend skills"}, insights["strengths"])

	_, ok = ParseResumeInsights("not json at all")
	assert.False(t, ok)
}
