package services

import (
	"context"
	"fmt"
	"strings"

	"skillforge/logger"
	"skillforge/models"
)

// PathGenerator builds week-by-week learning paths, falling back to
// curated track templates when the provider cannot deliver a usable
// plan.
type PathGenerator struct {
	gen TextGenerator
	log *logger.Logger
}

func NewPathGenerator(gen TextGenerator, log *logger.Logger) *PathGenerator {
	return &PathGenerator{gen: gen, log: log.With("component", "learning_path")}
}

// Generate produces a complete learning path for the request. AI
// modules that made it through validation are always kept; templates
// only cover what the provider could not deliver.
func (g *PathGenerator) Generate(ctx context.Context, req models.LearningPathRequest) *models.LearningPath {
	weeks := req.Timeline / 7
	if weeks < 1 {
		weeks = 1
	}

	modules := g.collect(ctx, req, weeks)
	if len(modules) == 0 {
		g.log.Info("building template learning path", "goal", req.Goal)
		modules = TemplateModules(req)
	} else {
		if len(modules) > weeks {
			modules = modules[:weeks]
		}
		if deficit := weeks - len(modules); deficit > 0 {
			g.log.Info("filling learning path deficit from templates",
				"goal", req.Goal, "deficit", deficit)
			modules = append(modules, templateModulesFor(req, weeks)[len(modules):]...)
		}
	}
	return g.finalize(req, modules)
}

func (g *PathGenerator) collect(ctx context.Context, req models.LearningPathRequest, weeks int) []models.LearningModule {
	if g.gen == nil {
		return nil
	}
	var best []models.LearningModule
	for attempt := 0; attempt < maxPrimaryAttempts; attempt++ {
		prompt := buildLearningPathPrompt(req, weeks)
		if attempt > 0 {
			prompt += "\n\nIMPORTANT: your previous response could not be used. Respond with valid JSON in exactly the format above."
		}
		raw, err := g.gen.Chat(ctx, prompt, ChatOptions{MaxTokens: 3000})
		if err != nil {
			g.log.Warn("learning path generation failed", "goal", req.Goal, "error", err)
			return best
		}
		modules := ParseLearningPathResponse(raw, weeks)
		if len(modules) >= sufficiencyThreshold(weeks) || len(modules) >= weeks {
			return modules
		}
		if len(modules) > len(best) {
			best = modules
		}
		g.log.Warn("learning path reply too thin, regenerating",
			"goal", req.Goal, "attempt", attempt+1, "got", len(modules), "want", weeks)
	}
	return best
}

// finalize stamps IDs and ordering, fills in scheduling defaults and
// attaches a weekly assessment to every module.
func (g *PathGenerator) finalize(req models.LearningPathRequest, modules []models.LearningModule) *models.LearningPath {
	fromAI, fromTemplate := false, false
	totalHours := 0
	for i := range modules {
		m := &modules[i]
		m.ID = "module_" + shortID()
		m.Order = i + 1
		if m.Week == 0 {
			m.Week = i + 1
		}
		if m.EstimatedHours == 0 {
			m.EstimatedHours = req.HoursPerWeek
		}
		if len(m.LearningObjectives) == 0 {
			for _, s := range m.Skills {
				m.LearningObjectives = append(m.LearningObjectives,
					fmt.Sprintf("Gain working knowledge of %s", s))
			}
		}
		if i > 0 {
			m.Prerequisites = []string{modules[i-1].Title}
		}
		if len(m.Resources) == 0 {
			m.Resources = defaultResources(m.Title, req.LearningStyle)
		}
		if len(m.Assessments) == 0 {
			m.Assessments = []models.LearningAssessment{{
				Type:            "quiz",
				Title:           fmt.Sprintf("Week %d Check-In", m.Week),
				Description:     fmt.Sprintf("Short self-assessment covering %s.", m.Title),
				PassingCriteria: "70% or higher",
			}}
		}
		totalHours += m.EstimatedHours
		if m.Source == models.SourceTemplate {
			fromTemplate = true
		} else {
			fromAI = true
		}
	}

	generatedBy := models.GeneratedByAI
	switch {
	case fromAI && fromTemplate:
		generatedBy = models.GeneratedByMixed
	case fromTemplate:
		generatedBy = models.GeneratedByTemplate
	}

	return &models.LearningPath{
		Goal:                  req.Goal,
		Timeline:              req.Timeline,
		Difficulty:            difficultyForSkills(req.CurrentSkills),
		CurrentSkills:         req.CurrentSkills,
		TargetSkills:          collectTargetSkills(modules),
		TotalModules:          len(modules),
		Modules:               modules,
		TotalEstimatedHours:   totalHours,
		EstimatedHoursPerWeek: req.HoursPerWeek,
		Category:              categoryForGoal(req.Goal),
		GeneratedBy:           generatedBy,
	}
}

// defaultResources suggests generic study material for a module, biased
// by the learner's preferred style.
func defaultResources(title, style string) []models.LearningResource {
	resources := []models.LearningResource{
		{
			Title:      fmt.Sprintf("Official documentation and guides for %s", title),
			Type:       "documentation",
			Difficulty: "all levels",
			IsPaid:     false,
		},
		{
			Title:      fmt.Sprintf("Hands-on exercises: %s", title),
			Type:       "practice",
			Difficulty: "all levels",
			IsPaid:     false,
		},
	}
	if style == "visual" || style == "mixed" {
		resources = append(resources, models.LearningResource{
			Title:      fmt.Sprintf("Video course covering %s", title),
			Type:       "video",
			Difficulty: "all levels",
			IsPaid:     false,
		})
	}
	return resources
}

func difficultyForSkills(current []string) string {
	switch {
	case len(current) == 0:
		return "beginner"
	case len(current) < 5:
		return "intermediate"
	default:
		return "advanced"
	}
}

func collectTargetSkills(modules []models.LearningModule) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range modules {
		for _, s := range m.Skills {
			key := strings.ToLower(s)
			if !seen[key] {
				seen[key] = true
				out = append(out, s)
			}
		}
	}
	return out
}

func categoryForGoal(goal string) string {
	lower := strings.ToLower(goal)
	switch {
	case containsAny(lower, "web", "frontend", "front-end", "react", "javascript", "fullstack", "full-stack", "full stack"):
		return "web development"
	case containsAny(lower, "backend", "back-end", "back end", "server-side", "api development"):
		return "backend development"
	case containsAny(lower, "data", "machine learning", "ml", "analytics", "ai"):
		return "data science"
	case containsAny(lower, "devops", "cloud", "docker", "kubernetes", "infrastructure"):
		return "devops"
	case containsAny(lower, "mobile", "android", "ios", "flutter"):
		return "mobile development"
	default:
		return "general"
	}
}

func containsAny(s string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
