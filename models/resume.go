package models

type SkillCategory struct {
	Name        string   `json:"name"`
	Skills      []string `json:"skills"`
	Proficiency string   `json:"proficiency"`
}

type SkillAnalysis struct {
	Identified []string            `json:"identified"`
	ByCategory map[string][]string `json:"by_category"`
	Missing    []string            `json:"missing"`
	Categories []SkillCategory     `json:"categories"`
}

type ExperienceSummary struct {
	TotalYears int    `json:"total_years"`
	Level      string `json:"level"`
}

type EducationSummary struct {
	Degrees        []string `json:"degrees"`
	Certifications []string `json:"certifications"`
}

type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type JobSuggestion struct {
	Title           string      `json:"title"`
	MatchPercentage int         `json:"match_percentage"`
	Requirements    []string    `json:"requirements"`
	MissingSkills   []string    `json:"missing_skills"`
	SalaryRange     SalaryRange `json:"salary_range"`
}

type ResumeScore struct {
	Overall  int            `json:"overall"`
	Sections map[string]int `json:"sections"`
}

// ResumeAnalysis combines the deterministic keyword/regex stage with the
// AI-generated insight payload. AIInsights is kept schemaless because the
// provider may answer with structured JSON or with plain prose.
type ResumeAnalysis struct {
	Skills          SkillAnalysis     `json:"skills"`
	Experience      ExperienceSummary `json:"experience"`
	Education       EducationSummary  `json:"education"`
	Score           ResumeScore       `json:"score"`
	Recommendations []string          `json:"recommendations"`
	AIInsights      map[string]any    `json:"ai_insights"`
	JobSuggestions  []JobSuggestion   `json:"job_suggestions"`
}
