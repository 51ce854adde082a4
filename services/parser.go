package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"skillforge/models"
)

// sufficiencyThreshold is the minimum number of usable items a parse
// strategy must yield before later strategies are skipped.
func sufficiencyThreshold(target int) int {
	if t := target / 2; t > 3 {
		return t
	}
	return 3
}

// stripCodeFences removes markdown code fences the model sometimes
// wraps around its output.
func stripCodeFences(raw string) string {
	out := strings.TrimSpace(raw)
	if strings.HasPrefix(out, "```") {
		if idx := strings.Index(out, "\n"); idx != -1 {
			out = out[idx+1:]
		} else {
			out = strings.TrimPrefix(out, "```")
		}
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}

// extractJSONObject pulls the first balanced top-level JSON object out
// of surrounding prose, tracking string literals so braces inside
// quoted text do not confuse the balance count.
func extractJSONObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start == -1 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return raw[start : i+1], true
				}
			}
		}
	}
	return "", false
}

type quizPayload struct {
	Questions []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
	} `json:"questions"`
}

// ParseQuizResponse runs the strategy cascade over a raw model reply.
// Strategies run in order of decreasing fidelity; the first one whose
// validated yield meets the sufficiency threshold wins. If none does,
// the largest yield is returned and the caller decides how to top up.
func ParseQuizResponse(raw, topic string, target int) []models.QuizQuestion {
	cleaned := stripCodeFences(raw)
	threshold := sufficiencyThreshold(target)

	var best []models.QuizQuestion
	for _, parse := range []func(string, string) []models.QuizQuestion{
		parseQuizJSON,
		parseQuizText,
		parseQuizHeuristic,
	} {
		items := validQuestions(parse(cleaned, topic))
		if len(items) >= threshold {
			return items
		}
		if len(items) > len(best) {
			best = items
		}
	}
	return best
}

func validQuestions(items []models.QuizQuestion) []models.QuizQuestion {
	out := items[:0:0]
	for _, q := range items {
		if ValidateQuizQuestion(q) == nil {
			out = append(out, q)
		}
	}
	return out
}

// parseQuizJSON handles the well-behaved case: the reply is, or
// contains, the requested JSON document.
func parseQuizJSON(cleaned, _ string) []models.QuizQuestion {
	doc, ok := extractJSONObject(cleaned)
	if !ok {
		return nil
	}
	var payload quizPayload
	if err := json.Unmarshal([]byte(doc), &payload); err != nil {
		return nil
	}
	items := make([]models.QuizQuestion, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		items = append(items, models.QuizQuestion{
			Question:      strings.TrimSpace(q.Question),
			Options:       trimAll(q.Options),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   strings.TrimSpace(q.Explanation),
			Source:        models.SourceAIJSON,
		})
	}
	return items
}

var (
	questionLineRe = regexp.MustCompile(`^(?:Q(?:uestion)?\s*)?(\d+)[.):]\s*(.+)$`)
	optionLineRe   = regexp.MustCompile(`^([A-Da-d])[.)]\s*(.+)$`)
	answerLineRe   = regexp.MustCompile(`(?i)^(?:correct\s*)?answer\s*[:\-]?\s*\(?([A-Da-d])\)?`)
	optionMarkRe   = regexp.MustCompile(`(?i)\s*(?:\*+|\(correct\)|\bcorrect\b)\s*$`)
)

// parseQuizText recovers questions from plain-text output: numbered or
// interrogative question lines followed by four lettered options. The
// correct option may be flagged inline (asterisk or "correct" marker)
// or by a trailing answer line. Items with no marker at all keep the
// first option as the answer and carry a tag flagging the guess.
func parseQuizText(cleaned, _ string) []models.QuizQuestion {
	var items []models.QuizQuestion
	var current *models.QuizQuestion
	answered := false

	flush := func() {
		if current == nil {
			return
		}
		if len(current.Options) == 4 {
			if !answered {
				current.CorrectAnswer = 0
				current.Tags = append(current.Tags, "unverified-answer")
			}
			items = append(items, *current)
		}
		current = nil
	}
	start := func(question string) {
		flush()
		current = &models.QuizQuestion{
			Question: strings.TrimSpace(question),
			Source:   models.SourceAIText,
		}
		answered = false
	}

	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := questionLineRe.FindStringSubmatch(line); m != nil {
			start(m[2])
			continue
		}
		if current != nil {
			if m := optionLineRe.FindStringSubmatch(line); m != nil && len(current.Options) < 4 {
				opt := strings.TrimSpace(m[2])
				if marked := optionMarkRe.ReplaceAllString(opt, ""); marked != opt {
					current.CorrectAnswer = len(current.Options)
					answered = true
					opt = strings.TrimSpace(marked)
				}
				current.Options = append(current.Options, opt)
				continue
			}
			if m := answerLineRe.FindStringSubmatch(line); m != nil {
				idx := int(strings.ToUpper(m[1])[0] - 'A')
				if idx >= 0 && idx < 4 {
					current.CorrectAnswer = idx
					answered = true
				}
				continue
			}
		}
		if strings.HasSuffix(line, "?") && len(line) > 20 {
			start(line)
		}
	}
	flush()
	return items
}

var capitalizedPhraseRe = regexp.MustCompile(`\b[A-Z][\w+#.-]*(?:\s+[A-Z][\w+#.-]*)+\b`)

// parseQuizHeuristic is the last resort: mine capitalized multi-word
// terms out of free-form prose and synthesize a recognition question
// per term. The real term always sits at index 0; callers treat these
// as low-confidence material.
func parseQuizHeuristic(cleaned, topic string) []models.QuizQuestion {
	topicLower := strings.ToLower(topic)
	seen := make(map[string]bool)
	var items []models.QuizQuestion

	for _, phrase := range capitalizedPhraseRe.FindAllString(cleaned, -1) {
		phrase = strings.TrimSpace(phrase)
		key := strings.ToLower(phrase)
		if seen[key] {
			continue
		}
		if !strings.Contains(key, topicLower) && len(phrase) < 12 {
			continue
		}
		seen[key] = true
		items = append(items, models.QuizQuestion{
			Question: fmt.Sprintf("In the context of %s, what best describes \"%s\"?", topic, phrase),
			Options: []string{
				fmt.Sprintf("A concept or tool used when working with %s", topic),
				"An unrelated accounting standard",
				"A deprecated hardware interface",
				"A fictional placeholder term",
			},
			CorrectAnswer: 0,
			Explanation:   fmt.Sprintf("%s appears in study material about %s.", phrase, topic),
			Source:        models.SourceHeuristic,
			Tags:          []string{"heuristic"},
		})
		if len(items) >= 10 {
			break
		}
	}
	return items
}

type learningPathPayload struct {
	Modules []struct {
		Week           int      `json:"week"`
		Title          string   `json:"title"`
		Description    string   `json:"description"`
		Skills         []string `json:"skills"`
		EstimatedHours int      `json:"estimated_hours"`
		Project        string   `json:"project"`
	} `json:"modules"`
}

// ParseLearningPathResponse applies the same cascade shape to learning
// path replies: structured JSON first, then week headings in prose.
func ParseLearningPathResponse(raw string, target int) []models.LearningModule {
	cleaned := stripCodeFences(raw)
	threshold := sufficiencyThreshold(target)

	var best []models.LearningModule
	for _, parse := range []func(string) []models.LearningModule{
		parseModulesJSON,
		parseModulesText,
	} {
		items := validModules(parse(cleaned))
		if len(items) >= threshold {
			return items
		}
		if len(items) > len(best) {
			best = items
		}
	}
	return best
}

func validModules(items []models.LearningModule) []models.LearningModule {
	out := items[:0:0]
	for _, m := range items {
		if ValidateLearningModule(m) == nil {
			out = append(out, m)
		}
	}
	return out
}

func parseModulesJSON(cleaned string) []models.LearningModule {
	doc, ok := extractJSONObject(cleaned)
	if !ok {
		return nil
	}
	var payload learningPathPayload
	if err := json.Unmarshal([]byte(doc), &payload); err != nil {
		return nil
	}
	items := make([]models.LearningModule, 0, len(payload.Modules))
	for i, m := range payload.Modules {
		week := m.Week
		if week == 0 {
			week = i + 1
		}
		items = append(items, models.LearningModule{
			Week:           week,
			Title:          strings.TrimSpace(m.Title),
			Description:    strings.TrimSpace(m.Description),
			Order:          i + 1,
			EstimatedHours: m.EstimatedHours,
			Skills:         trimAll(m.Skills),
			Project:        strings.TrimSpace(m.Project),
			Source:         models.SourceAIJSON,
		})
	}
	return items
}

var weekHeadingRe = regexp.MustCompile(`(?im)^(?:#+\s*)?week\s+(\d+)\s*[:\-]\s*(.+)$`)

func parseModulesText(cleaned string) []models.LearningModule {
	locs := weekHeadingRe.FindAllStringSubmatchIndex(cleaned, -1)
	if len(locs) == 0 {
		return nil
	}
	items := make([]models.LearningModule, 0, len(locs))
	for i, loc := range locs {
		week := 0
		fmt.Sscanf(cleaned[loc[2]:loc[3]], "%d", &week)
		title := strings.TrimSpace(cleaned[loc[4]:loc[5]])

		end := len(cleaned)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := strings.TrimSpace(cleaned[loc[1]:end])
		desc := firstParagraph(body)
		if desc == "" {
			desc = fmt.Sprintf("Focused study week covering %s.", title)
		}
		items = append(items, models.LearningModule{
			Week:        week,
			Title:       title,
			Description: desc,
			Order:       i + 1,
			Skills:      []string{title},
			Source:      models.SourceAIText,
		})
	}
	return items
}

func firstParagraph(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• "))
		if len(line) >= 10 {
			return line
		}
	}
	return ""
}

type insightsPayload struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Summary      string   `json:"summary"`
}

// ParseResumeInsights extracts the structured insight block from a
// resume analysis reply, or nothing if the model ignored the format.
func ParseResumeInsights(raw string) (map[string]any, bool) {
	doc, ok := extractJSONObject(stripCodeFences(raw))
	if !ok {
		return nil, false
	}
	var payload insightsPayload
	if err := json.Unmarshal([]byte(doc), &payload); err != nil {
		return nil, false
	}
	if len(payload.Strengths) == 0 && len(payload.Improvements) == 0 && payload.Summary == "" {
		return nil, false
	}
	return map[string]any{
		"strengths":    payload.Strengths,
		"improvements": payload.Improvements,
		"summary":      payload.Summary,
	}, true
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
