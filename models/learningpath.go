package models

type LearningResource struct {
	Title      string   `json:"title"`
	URL        string   `json:"url,omitempty"`
	Type       string   `json:"type"` // course, article, book, practice, video, project
	Duration   int      `json:"duration,omitempty"` // minutes
	Difficulty string   `json:"difficulty,omitempty"`
	Provider   string   `json:"provider,omitempty"`
	IsPaid     bool     `json:"is_paid"`
	Rating     float64  `json:"rating,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

type LearningAssessment struct {
	Type            string `json:"type"` // quiz, assignment, project, peer-review
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	PassingCriteria string `json:"passing_criteria,omitempty"`
}

type LearningModule struct {
	ID                 string               `json:"id"`
	Week               int                  `json:"week"`
	Title              string               `json:"title"`
	Description        string               `json:"description"`
	Order              int                  `json:"order"`
	EstimatedHours     int                  `json:"estimated_hours"`
	Skills             []string             `json:"skills"`
	Prerequisites      []string             `json:"prerequisites"`
	LearningObjectives []string             `json:"learning_objectives"`
	Resources          []LearningResource   `json:"resources"`
	Assessments        []LearningAssessment `json:"assessments"`
	Project            string               `json:"project,omitempty"`

	// Source mirrors QuizQuestion.Source; diagnostics only.
	Source string `json:"-"`
}

type LearningPath struct {
	Goal                  string           `json:"goal"`
	Timeline              int              `json:"timeline"` // days
	Difficulty            string           `json:"difficulty"`
	CurrentSkills         []string         `json:"current_skills"`
	TargetSkills          []string         `json:"target_skills"`
	TotalModules          int              `json:"total_modules"`
	Modules               []LearningModule `json:"modules"`
	TotalEstimatedHours   int              `json:"total_estimated_hours"`
	EstimatedHoursPerWeek int              `json:"estimated_hours_per_week"`
	Category              string           `json:"category"`
	GeneratedBy           string           `json:"generated_by"`
}
