package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"skillforge/logger"
	"skillforge/models"
)

// QuizGenerator turns a quiz request into a complete quiz. Provider
// failures never surface to the caller: the template fallback absorbs
// whatever the provider could not deliver.
type QuizGenerator struct {
	gen TextGenerator
	log *logger.Logger
}

func NewQuizGenerator(gen TextGenerator, log *logger.Logger) *QuizGenerator {
	return &QuizGenerator{
		gen: gen,
		log: log.With("component", "quiz"),
	}
}

// Generate produces a quiz with exactly req.NumQuestions questions.
func (g *QuizGenerator) Generate(ctx context.Context, req models.QuizRequest) *models.Quiz {
	target := req.NumQuestions
	questions := g.collect(ctx, req, target)

	// rand.Rand is not safe for concurrent use, so each request gets
	// its own.
	rng := rand.New(rand.NewSource(rand.Int63()))

	if deficit := target - len(questions); deficit > 0 {
		g.log.Info("filling quiz deficit from templates",
			"topic", req.Topic, "deficit", deficit)
		questions = append(questions, FallbackQuestions(req.Topic, req.Difficulty, deficit, rng)...)
		questions = dedupeQuestions(questions)
		// Template text is unique by construction, so one more round
		// always closes the gap.
		if deficit = target - len(questions); deficit > 0 {
			questions = append(questions, FallbackQuestions(req.Topic, req.Difficulty, deficit, rng)...)
		}
	}
	if len(questions) > target {
		questions = questions[:target]
	}
	return g.finalize(req, questions, rng)
}

// maxPrimaryAttempts bounds how many times a full-size generation is
// re-issued when the reply parses too thin. This is distinct from the
// client's network retries.
const maxPrimaryAttempts = 3

// collect runs primary generation plus at most one deficit-sized
// supplement round against the provider.
func (g *QuizGenerator) collect(ctx context.Context, req models.QuizRequest, target int) []models.QuizQuestion {
	if g.gen == nil {
		return nil
	}
	var questions []models.QuizQuestion
	for attempt := 0; attempt < maxPrimaryAttempts; attempt++ {
		prompt := buildQuizPrompt(req.Topic, req.Difficulty, target)
		if attempt > 0 {
			prompt += "\n\nIMPORTANT: your previous response could not be used. Respond with valid JSON in exactly the format above."
		}
		raw, err := g.gen.Chat(ctx, prompt, ChatOptions{MaxTokens: 2000})
		if err != nil {
			g.log.Warn("primary quiz generation failed", "topic", req.Topic, "error", err)
			return questions
		}
		questions = dedupeQuestions(ParseQuizResponse(raw, req.Topic, target))
		if len(questions) >= sufficiencyThreshold(target) {
			break
		}
		g.log.Warn("quiz reply too thin, regenerating",
			"topic", req.Topic, "attempt", attempt+1, "got", len(questions))
	}

	deficit := target - len(questions)
	if deficit <= 0 {
		return questions
	}
	if len(questions) == 0 {
		// nothing usable came back at all, go straight to templates
		return nil
	}
	g.log.Info("supplementing quiz", "topic", req.Topic, "have", len(questions), "need", deficit)

	raw, err := g.gen.Chat(ctx, buildSupplementPrompt(req.Topic, req.Difficulty, deficit, questions), ChatOptions{
		MaxTokens: 2000,
	})
	if err != nil {
		g.log.Warn("quiz supplementation failed", "topic", req.Topic, "error", err)
		return questions
	}
	extra := ParseQuizResponse(raw, req.Topic, deficit)
	return dedupeQuestions(append(questions, extra...))
}

// finalize stamps IDs, points and settings, and derives provenance from
// where each question came from.
func (g *QuizGenerator) finalize(req models.QuizRequest, questions []models.QuizQuestion, rng *rand.Rand) *models.Quiz {
	settings := SettingsFor(req.Difficulty)

	rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	totalPoints := 0
	fromAI, fromTemplate := false, false
	for i := range questions {
		questions[i].QuestionID = "q_" + shortID()
		questions[i].Points = settings.PointsPerItem
		totalPoints += settings.PointsPerItem
		if questions[i].Source == models.SourceTemplate {
			fromTemplate = true
		} else {
			fromAI = true
		}
	}

	timeLimit := req.TimeLimit
	if timeLimit == 0 {
		timeLimit = len(questions) * settings.TimePerQuestion
	}

	generatedBy := models.GeneratedByAI
	switch {
	case fromAI && fromTemplate:
		generatedBy = models.GeneratedByMixed
	case fromTemplate:
		generatedBy = models.GeneratedByTemplate
	}

	return &models.Quiz{
		Title:          fmt.Sprintf("%s Quiz", titleCase(req.Topic)),
		Topic:          req.Topic,
		Questions:      questions,
		Difficulty:     req.Difficulty,
		Category:       req.Category,
		TotalQuestions: len(questions),
		TotalPoints:    totalPoints,
		GeneratedBy:    generatedBy,
		Settings: models.QuizSettings{
			TimeLimit:          timeLimit,
			PassingScore:       settings.PassingScore,
			ShuffleQuestions:   true,
			ShowCorrectAnswers: true,
			AllowRetakes:       true,
		},
	}
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
