package services

import (
	"fmt"
	"strings"

	"skillforge/models"
)

// DifficultySettings drive both prompt wording and quiz scoring.
type DifficultySettings struct {
	TimePerQuestion int // minutes
	PassingScore    int // percent
	PointsPerItem   int
	Complexity      string
	QuestionTypes   string
}

var difficultySettings = map[string]DifficultySettings{
	"beginner": {
		TimePerQuestion: 2,
		PassingScore:    70,
		PointsPerItem:   1,
		Complexity:      "basic concepts and definitions",
		QuestionTypes:   "recall and simple comprehension questions",
	},
	"intermediate": {
		TimePerQuestion: 3,
		PassingScore:    75,
		PointsPerItem:   2,
		Complexity:      "practical application and analysis",
		QuestionTypes:   "application and scenario-based questions",
	},
	"advanced": {
		TimePerQuestion: 4,
		PassingScore:    80,
		PointsPerItem:   3,
		Complexity:      "deep technical detail and edge cases",
		QuestionTypes:   "analysis, evaluation and design questions",
	},
}

// SettingsFor returns the tuning for a difficulty, defaulting to
// intermediate for unknown values.
func SettingsFor(difficulty string) DifficultySettings {
	if s, ok := difficultySettings[difficulty]; ok {
		return s
	}
	return difficultySettings["intermediate"]
}

func buildQuizPrompt(topic, difficulty string, count int) string {
	s := SettingsFor(difficulty)
	return fmt.Sprintf(`Generate exactly %d multiple-choice quiz questions about "%s" at %s level.

Focus on %s. Prefer %s.

Required Output Format (JSON):
{
  "questions": [
    {
      "question": "The question text",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct_answer": 0,
      "explanation": "Why this answer is correct"
    }
  ]
}

Rules:
- Exactly 4 options per question.
- "correct_answer" is the zero-based index of the correct option.
- Every question must be about %s, no meta commentary.
- Provide ONLY the JSON object described above, without any additional text.`,
		count, topic, difficulty, s.Complexity, s.QuestionTypes, topic)
}

func buildSupplementPrompt(topic, difficulty string, count int, existing []models.QuizQuestion) string {
	var sb strings.Builder
	for i, q := range existing {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&sb, "- %s\n", q.Question)
	}
	return fmt.Sprintf(`Generate exactly %d additional multiple-choice quiz questions about "%s" at %s level.

Do NOT repeat any of these already generated questions:
%s
Required Output Format (JSON):
{
  "questions": [
    {
      "question": "The question text",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correct_answer": 0,
      "explanation": "Why this answer is correct"
    }
  ]
}

Provide ONLY the JSON object, without any additional text.`,
		count, topic, difficulty, sb.String())
}

func buildLearningPathPrompt(req models.LearningPathRequest, weeks int) string {
	skills := "none listed"
	if len(req.CurrentSkills) > 0 {
		skills = strings.Join(req.CurrentSkills, ", ")
	}
	return fmt.Sprintf(`Create a %d-week learning path for the goal: "%s".

Learner profile:
- Current skills: %s
- Preferred learning style: %s
- Available time: %d hours per week
- Total timeline: %d days

Required Output Format (JSON):
{
  "modules": [
    {
      "week": 1,
      "title": "Module title",
      "description": "What the learner covers this week",
      "skills": ["skill one", "skill two"],
      "estimated_hours": %d,
      "project": "A small hands-on project for this week"
    }
  ]
}

Rules:
- Exactly %d modules, one per week, week numbers starting at 1.
- Each module must list at least one skill and a project.
- Provide ONLY the JSON object, without any additional text.`,
		weeks, req.Goal, skills, req.LearningStyle, req.HoursPerWeek, req.Timeline,
		req.HoursPerWeek, weeks)
}

func buildResumeInsightsPrompt(text, targetRole string, skills []string) string {
	role := targetRole
	if role == "" {
		role = "a technology role matching the candidate's profile"
	}
	excerpt := text
	if len(excerpt) > 3000 {
		excerpt = excerpt[:3000]
	}
	return fmt.Sprintf(`Analyze this resume for a candidate targeting %s.

Detected skills: %s

Resume text:
%s

Required Output Format (JSON):
{
  "strengths": ["strength one", "strength two"],
  "improvements": ["improvement one", "improvement two"],
  "summary": "Two or three sentence professional summary"
}

Provide ONLY the JSON object, without any additional text.`,
		role, strings.Join(skills, ", "), excerpt)
}

func buildTutorPrompt(question, context, subject string) string {
	var sb strings.Builder
	sb.WriteString("You are answering a learner's question.")
	if subject != "" {
		fmt.Fprintf(&sb, " Subject area: %s.", subject)
	}
	sb.WriteString("\n\n")
	if context != "" {
		fmt.Fprintf(&sb, "Additional context from the learner:\n%s\n\n", context)
	}
	fmt.Fprintf(&sb, "Question: %s\n\n", question)
	sb.WriteString("Answer clearly and concisely for the learner's level. Use short paragraphs and, where helpful, a brief example.")
	return sb.String()
}
