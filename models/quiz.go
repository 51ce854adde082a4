package models

// Question provenance tags. They stay internal to the pipeline; only the
// batch-level GeneratedBy field is reported to callers.
const (
	SourceAIJSON    = "ai-json"
	SourceAIText    = "ai-text"
	SourceHeuristic = "heuristic"
	SourceTemplate  = "template"
)

// Batch-level provenance reported through GeneratedBy.
const (
	GeneratedByAI       = "ai"
	GeneratedByTemplate = "template"
	GeneratedByMixed    = "mixed"
)

type QuizQuestion struct {
	QuestionID    string   `json:"question_id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Points        int      `json:"points"`
	Tags          []string `json:"tags"`

	// Source records which pipeline stage produced the question
	// (ai-json, ai-text, heuristic, template). Diagnostics only.
	Source string `json:"-"`
}

type QuizSettings struct {
	TimeLimit          int  `json:"time_limit"` // minutes
	PassingScore       int  `json:"passing_score"`
	ShuffleQuestions   bool `json:"shuffle_questions"`
	ShowCorrectAnswers bool `json:"show_correct_answers"`
	AllowRetakes       bool `json:"allow_retakes"`
}

type Quiz struct {
	Title          string         `json:"title"`
	Topic          string         `json:"topic"`
	Questions      []QuizQuestion `json:"questions"`
	Settings       QuizSettings   `json:"settings"`
	Difficulty     string         `json:"difficulty"`
	Category       string         `json:"category"`
	TotalQuestions int            `json:"total_questions"`
	TotalPoints    int            `json:"total_points"`
	GeneratedBy    string         `json:"generated_by"`
}
