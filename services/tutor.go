package services

import (
	"context"
	"strings"
	"time"

	"skillforge/logger"
	"skillforge/models"
)

// historyTurnsSpliced is how many recent turns are replayed to the
// provider for continuity.
const historyTurnsSpliced = 3

var subjectContexts = map[string]string{
	"programming": "You are an expert programming tutor. Explain with short, runnable code examples where helpful.",
	"mathematics": "You are a patient mathematics tutor. Walk through reasoning step by step.",
	"data science": "You are a data science tutor. Connect concepts to practical analysis workflows.",
	"web development": "You are a web development tutor. Relate answers to how browsers and servers actually behave.",
	"career": "You are a technology career mentor. Give actionable, realistic advice.",
}

type questionType int

const (
	questionGeneral questionType = iota
	questionConceptual
	questionPractical
	questionDebugging
	questionComparison
)

func classifyQuestion(q string) questionType {
	lower := strings.ToLower(q)
	switch {
	case containsAny(lower, "error", "bug", "doesn't work", "not working", "fails", "exception", "crash"):
		return questionDebugging
	case containsAny(lower, " vs ", "versus", "difference between", "compared to", "better than"):
		return questionComparison
	case containsAny(lower, "how do i", "how to", "how can i", "show me", "example of"):
		return questionPractical
	case containsAny(lower, "what is", "what are", "why does", "why is", "explain", "meaning of"):
		return questionConceptual
	}
	return questionGeneral
}

var followUps = map[questionType][]string{
	questionGeneral: {
		"Can you give me an example of this in practice?",
		"What should I learn next on this topic?",
		"What are common mistakes beginners make here?",
	},
	questionConceptual: {
		"How is this concept applied in real projects?",
		"What are the limitations of this approach?",
		"How does this relate to similar concepts?",
	},
	questionPractical: {
		"What edge cases should I watch out for?",
		"Is there a more idiomatic way to do this?",
		"How would I test this?",
	},
	questionDebugging: {
		"How can I prevent this kind of bug in the future?",
		"What debugging tools would help here?",
		"Are there related failure modes I should check?",
	},
	questionComparison: {
		"When would I choose one over the other?",
		"Which is more commonly used in industry?",
		"Can they be combined in one project?",
	},
}

// Tutor answers learner questions with bounded conversation memory.
type Tutor struct {
	gen   TextGenerator
	store ConversationStore
	log   *logger.Logger
}

func NewTutor(gen TextGenerator, store ConversationStore, log *logger.Logger) *Tutor {
	return &Tutor{gen: gen, store: store, log: log.With("component", "tutor")}
}

// Ask resolves one tutor turn. The returned answer always carries a
// conversation ID; failed turns set Error and are not recorded in
// history.
func (t *Tutor) Ask(ctx context.Context, req models.TutorRequest) *models.TutorAnswer {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = "conv_" + shortID()
	}

	answer := &models.TutorAnswer{
		Question:       req.Question,
		Subject:        req.Subject,
		ConversationID: conversationID,
		Suggestions:    followUps[classifyQuestion(req.Question)],
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}

	if t.gen == nil {
		answer.Answer = unavailableAnswer(req.Question)
		answer.Error = true
		return answer
	}

	history := t.store.History(conversationID)
	prompt := buildTutorPrompt(req.Question, req.Context, req.Subject)

	text, err := t.gen.Chat(ctx, prompt, ChatOptions{
		SystemPrompt: systemPromptFor(req.Subject),
		History:      compressTurns(history, historyTurnsSpliced),
		MaxTokens:    1500,
	})
	if err != nil {
		t.log.Warn("tutor generation failed", "conversation_id", conversationID, "error", err)
		answer.Answer = unavailableAnswer(req.Question)
		answer.Error = true
		return answer
	}

	answer.Answer = strings.TrimSpace(text)
	t.store.Append(conversationID, models.ConversationTurn{
		Question:  req.Question,
		Answer:    answer.Answer,
		Subject:   req.Subject,
		Timestamp: nowUTC(),
	})
	return answer
}

func systemPromptFor(subject string) string {
	if subject == "" {
		return defaultSystemPrompt
	}
	lower := strings.ToLower(subject)
	for key, prompt := range subjectContexts {
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return prompt
		}
	}
	return defaultSystemPrompt
}

func unavailableAnswer(question string) string {
	return "I am unable to answer your question right now because the tutoring service is temporarily unavailable. " +
		"Your question was: \"" + clip(question, 100) + "\". Please try again in a few moments."
}
