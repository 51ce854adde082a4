package models

import (
	"fmt"
	"strings"
)

var validDifficulties = map[string]bool{
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
}

var validLearningStyles = map[string]bool{
	"visual":      true,
	"auditory":    true,
	"kinesthetic": true,
	"mixed":       true,
}

type QuizRequest struct {
	Topic        string `json:"topic" binding:"required"`
	Difficulty   string `json:"difficulty" binding:"required"`
	NumQuestions int    `json:"num_questions"`
	TimeLimit    int    `json:"time_limit,omitempty"` // minutes
	Category     string `json:"category"`
}

// Validate normalizes the request in place and reports the first violated
// constraint.
func (r *QuizRequest) Validate() error {
	r.Topic = strings.TrimSpace(r.Topic)
	if len(r.Topic) < 2 {
		return fmt.Errorf("topic must be at least 2 characters")
	}
	if !validDifficulties[r.Difficulty] {
		return fmt.Errorf("difficulty must be beginner, intermediate or advanced")
	}
	if r.NumQuestions == 0 {
		r.NumQuestions = 10
	}
	if r.NumQuestions < 1 || r.NumQuestions > 50 {
		return fmt.Errorf("number of questions must be between 1 and 50")
	}
	if r.TimeLimit != 0 && (r.TimeLimit < 5 || r.TimeLimit > 180) {
		return fmt.Errorf("time limit must be between 5 and 180 minutes")
	}
	if r.Category == "" {
		r.Category = "technical"
	}
	return nil
}

type LearningPathRequest struct {
	Goal          string   `json:"goal" binding:"required"`
	Timeline      int      `json:"timeline" binding:"required"` // days
	CurrentSkills []string `json:"current_skills"`
	LearningStyle string   `json:"learning_style"`
	HoursPerWeek  int      `json:"hours_per_week"`
}

func (r *LearningPathRequest) Validate() error {
	r.Goal = strings.TrimSpace(r.Goal)
	if len(r.Goal) < 3 {
		return fmt.Errorf("goal must be at least 3 characters")
	}
	if r.Timeline < 7 || r.Timeline > 365 {
		return fmt.Errorf("timeline must be between 7 and 365 days")
	}
	if len(r.CurrentSkills) > 50 {
		return fmt.Errorf("maximum 50 current skills allowed")
	}
	skills := make([]string, 0, len(r.CurrentSkills))
	for _, s := range r.CurrentSkills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	r.CurrentSkills = skills
	if r.LearningStyle == "" {
		r.LearningStyle = "mixed"
	}
	if !validLearningStyles[r.LearningStyle] {
		return fmt.Errorf("learning style must be visual, auditory, kinesthetic or mixed")
	}
	if r.HoursPerWeek == 0 {
		r.HoursPerWeek = 10
	}
	if r.HoursPerWeek < 1 || r.HoursPerWeek > 40 {
		return fmt.Errorf("hours per week must be between 1 and 40")
	}
	return nil
}

type ResumeAnalysisRequest struct {
	Text       string `json:"text" binding:"required"`
	TargetRole string `json:"target_role"`
}

func (r *ResumeAnalysisRequest) Validate() error {
	r.Text = strings.TrimSpace(r.Text)
	if len(r.Text) < 100 {
		return fmt.Errorf("resume text must be at least 100 characters")
	}
	if len(r.Text) > 50000 {
		return fmt.Errorf("resume text must not exceed 50,000 characters")
	}
	r.TargetRole = strings.TrimSpace(r.TargetRole)
	if r.TargetRole != "" && len(r.TargetRole) < 2 {
		return fmt.Errorf("target role must be at least 2 characters")
	}
	return nil
}

type TutorRequest struct {
	Question       string `json:"question" binding:"required"`
	Context        string `json:"context"`
	Subject        string `json:"subject"`
	ConversationID string `json:"conversation_id"`
}

func (r *TutorRequest) Validate() error {
	r.Question = strings.TrimSpace(r.Question)
	if len(r.Question) < 5 {
		return fmt.Errorf("question must be at least 5 characters")
	}
	if len(r.Question) > 2000 {
		return fmt.Errorf("question must not exceed 2000 characters")
	}
	if len(r.Context) > 5000 {
		return fmt.Errorf("context must not exceed 5000 characters")
	}
	r.Context = strings.TrimSpace(r.Context)
	r.Subject = strings.TrimSpace(r.Subject)
	if r.Subject != "" && len(r.Subject) < 2 {
		return fmt.Errorf("subject must be at least 2 characters")
	}
	return nil
}
