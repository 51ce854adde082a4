package services

import (
	"fmt"
	"math/rand"
	"strings"

	"skillforge/models"
)

// questionPattern is a fill-in template. The correct option always sits
// at index 0 before shuffling.
type questionPattern struct {
	question    string
	options     [4]string
	explanation string
}

var fallbackPatterns = map[string][]questionPattern{
	"beginner": {
		{
			question: "What is the primary purpose of %s?",
			options: [4]string{
				"To solve problems in its domain using established concepts and tools",
				"To replace all other technologies in the field",
				"It has no practical purpose",
				"To make systems intentionally harder to use",
			},
			explanation: "Understanding the core purpose of %s is the starting point for learning it.",
		},
		{
			question: "Which of the following best describes a key characteristic of %s?",
			options: [4]string{
				"It follows well-defined principles that can be learned step by step",
				"It behaves randomly and cannot be studied",
				"It is identical to every other technology",
				"It changes its fundamentals every day",
			},
			explanation: "%s is built on consistent fundamentals that reward systematic study.",
		},
		{
			question: "When starting to learn %s, what is generally the best first step?",
			options: [4]string{
				"Understanding the basic concepts and terminology",
				"Memorizing advanced edge cases first",
				"Skipping the fundamentals entirely",
				"Avoiding any hands-on practice",
			},
			explanation: "Fundamentals come first; advanced topics in %s build on them.",
		},
	},
	"intermediate": {
		{
			question: "In a practical project, how is %s most effectively applied?",
			options: [4]string{
				"By combining its core techniques with sound engineering practices",
				"By ignoring its documented best practices",
				"By using it only in theoretical discussions",
				"By avoiding integration with other tools",
			},
			explanation: "Applied %s work combines domain techniques with general engineering discipline.",
		},
		{
			question: "What is a common pitfall when working with %s in real projects?",
			options: [4]string{
				"Skipping validation and testing of assumptions",
				"Reading too much documentation",
				"Writing code that is too maintainable",
				"Collaborating with other developers",
			},
			explanation: "Unvalidated assumptions are a frequent source of defects in %s work.",
		},
		{
			question: "Which approach best improves your proficiency with %s?",
			options: [4]string{
				"Building progressively harder projects and reviewing feedback",
				"Only watching videos without practicing",
				"Avoiding all documentation",
				"Practicing once and never again",
			},
			explanation: "Deliberate, increasingly difficult practice builds real %s skill.",
		},
	},
	"advanced": {
		{
			question: "When designing a large system involving %s, which concern matters most?",
			options: [4]string{
				"Trade-offs between correctness, performance and maintainability",
				"Using every available feature at once",
				"Minimizing the amount of testing performed",
				"Avoiding any documentation of decisions",
			},
			explanation: "Advanced %s work is dominated by reasoning about trade-offs.",
		},
		{
			question: "How should edge cases in %s be handled at an expert level?",
			options: [4]string{
				"Identified systematically and covered with targeted tests",
				"Ignored until they cause production failures",
				"Handled only when convenient",
				"Delegated entirely to end users",
			},
			explanation: "Experts enumerate and test edge cases in %s deliberately.",
		},
		{
			question: "What distinguishes expert-level understanding of %s?",
			options: [4]string{
				"Knowing why the underlying mechanisms behave the way they do",
				"Memorizing syntax without understanding",
				"Avoiding difficult problems",
				"Refusing to learn related technologies",
			},
			explanation: "Depth of mechanism-level understanding marks expertise in %s.",
		},
	},
}

// applyPermutation reorders options by perm and returns the new index
// of the previously correct option. perm[i] gives the source index for
// destination slot i. It never mutates its inputs.
func applyPermutation(options []string, correct int, perm []int) ([]string, int) {
	out := make([]string, len(options))
	newCorrect := correct
	for dst, src := range perm {
		out[dst] = options[src]
		if src == correct {
			newCorrect = dst
		}
	}
	return out, newCorrect
}

// ShuffleOptions randomly reorders the options using rng, returning the
// shuffled copy and the relocated correct index.
func ShuffleOptions(options []string, correct int, rng *rand.Rand) ([]string, int) {
	perm := rng.Perm(len(options))
	return applyPermutation(options, correct, perm)
}

// FallbackQuestions synthesizes exactly count questions for the topic
// without any provider involvement. When the pattern bank runs out the
// patterns cycle with a variation prefix so question text stays unique.
func FallbackQuestions(topic, difficulty string, count int, rng *rand.Rand) []models.QuizQuestion {
	patterns, ok := fallbackPatterns[difficulty]
	if !ok {
		patterns = fallbackPatterns["intermediate"]
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(int64(len(topic)) + int64(count)))
	}

	items := make([]models.QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		p := patterns[i%len(patterns)]
		question := fmt.Sprintf(p.question, topic)
		if cycle := i / len(patterns); cycle > 0 {
			question = strings.Repeat("(Variation) ", cycle) + question
		}
		options, correct := ShuffleOptions(p.options[:], 0, rng)
		items = append(items, models.QuizQuestion{
			Question:      question,
			Options:       options,
			CorrectAnswer: correct,
			Explanation:   fmt.Sprintf(p.explanation, topic),
			Source:        models.SourceTemplate,
			Tags:          []string{"fallback"},
		})
	}
	return items
}

// learningTrack is a skill ladder used when the provider cannot supply
// a path. Each phase expands into one or more weeks.
type learningTrack struct {
	keywords []string
	phases   []trackPhase
}

type trackPhase struct {
	title       string
	description string
	skills      []string
	project     string
}

var learningTracks = []learningTrack{
	{
		keywords: []string{"web", "frontend", "front-end", "react", "javascript", "fullstack", "full-stack", "full stack"},
		phases: []trackPhase{
			{"HTML, CSS and the Browser", "Structure and style pages, and understand how browsers load and render them.", []string{"HTML", "CSS", "browser devtools"}, "Build and style a personal landing page"},
			{"JavaScript Fundamentals", "Variables, functions, arrays, objects and the event loop.", []string{"JavaScript", "DOM manipulation"}, "Build an interactive to-do list"},
			{"Working with APIs", "Fetch data from HTTP APIs and render it dynamically.", []string{"REST APIs", "fetch", "JSON"}, "Build a weather dashboard backed by a public API"},
			{"A Frontend Framework", "Components, state and routing in a modern framework.", []string{"components", "state management", "routing"}, "Rebuild the to-do list as a component-based app"},
			{"Backend Basics", "A simple server, persistence and authentication.", []string{"HTTP servers", "databases", "authentication"}, "Add a backend with user accounts to your app"},
			{"Capstone Project", "Combine everything into a deployed, portfolio-ready application.", []string{"deployment", "testing", "debugging"}, "Ship a full-stack application end to end"},
		},
	},
	{
		keywords: []string{"data", "machine learning", "ml", "analytics", "python", "ai"},
		phases: []trackPhase{
			{"Python Foundations", "Core Python syntax, data structures and scripting.", []string{"Python", "data structures"}, "Write scripts that clean a messy CSV file"},
			{"Data Manipulation", "Loading, transforming and summarizing tabular data.", []string{"pandas", "NumPy"}, "Produce a summary report from a public dataset"},
			{"Data Visualization", "Communicating findings with charts and dashboards.", []string{"matplotlib", "visualization"}, "Build a visual exploration of a dataset you choose"},
			{"Statistics for Analysis", "Distributions, hypothesis testing and correlation.", []string{"statistics", "probability"}, "Run and interpret an A/B-test style analysis"},
			{"Machine Learning Basics", "Supervised learning, evaluation and overfitting.", []string{"scikit-learn", "model evaluation"}, "Train and evaluate a classifier on real data"},
			{"Capstone Project", "An end-to-end analysis or model with a written report.", []string{"end-to-end workflow", "communication"}, "Publish a complete data project with conclusions"},
		},
	},
	{
		keywords: []string{"backend", "back-end", "back end", "server-side", "api development"},
		phases: []trackPhase{
			{"A Server-Side Language", "Core syntax, data structures and tooling of a backend language.", []string{"Python", "Go", "data structures"}, "Write a command-line tool that processes structured data"},
			{"HTTP and REST APIs", "Request handling, routing, status codes and JSON payloads.", []string{"HTTP", "REST APIs", "JSON"}, "Build a small CRUD API"},
			{"Databases and Persistence", "Relational modeling, queries and migrations from application code.", []string{"SQL", "PostgreSQL", "data modeling"}, "Back your API with a relational database"},
			{"Authentication and Security", "Sessions, tokens, password storage and common vulnerabilities.", []string{"authentication", "security basics"}, "Add user accounts and protected endpoints to your API"},
			{"Testing and Deployment", "Automated tests, containerization and shipping to a server.", []string{"testing", "Docker", "deployment"}, "Deploy your tested API behind a reverse proxy"},
			{"Capstone Project", "A production-shaped backend service with documentation.", []string{"system design", "documentation"}, "Design, build and deploy a complete backend service"},
		},
	},
	{
		keywords: []string{"devops", "cloud", "docker", "kubernetes", "infrastructure"},
		phases: []trackPhase{
			{"Linux and the Shell", "Filesystems, processes, permissions and shell scripting.", []string{"Linux", "bash"}, "Automate a backup task with a shell script"},
			{"Version Control and CI", "Git workflows and automated build pipelines.", []string{"git", "CI/CD"}, "Set up a pipeline that tests every commit"},
			{"Containers", "Building, running and composing container images.", []string{"Docker", "containerization"}, "Containerize a small multi-service application"},
			{"Cloud Fundamentals", "Compute, storage, networking and identity in a cloud provider.", []string{"cloud services", "networking"}, "Deploy your containerized app to a cloud VM"},
			{"Orchestration", "Scheduling, scaling and operating containers in a cluster.", []string{"Kubernetes", "observability"}, "Run your application on a managed cluster"},
			{"Capstone Project", "Infrastructure as code for a reproducible environment.", []string{"IaC", "monitoring"}, "Define and deploy a full environment from code"},
		},
	},
}

var genericPhases = []trackPhase{
	{"Fundamentals", "Core concepts, terminology and the mental model of the field.", []string{"core concepts"}, "Summarize the fundamentals in your own words with examples"},
	{"Guided Practice", "Hands-on exercises applying the fundamentals.", []string{"applied basics"}, "Complete a set of small guided exercises"},
	{"Intermediate Techniques", "The tools and techniques used in day-to-day work.", []string{"practical techniques"}, "Build a small self-contained project"},
	{"Real-World Application", "How practitioners combine techniques on real problems.", []string{"problem solving"}, "Reproduce a realistic worked example from scratch"},
	{"Advanced Topics", "Deeper material, edge cases and performance concerns.", []string{"advanced topics"}, "Extend your project with an advanced feature"},
	{"Capstone Project", "A complete project demonstrating everything learned.", []string{"independent work"}, "Plan, build and present a capstone project"},
}

func trackFor(goal string) []trackPhase {
	lower := strings.ToLower(goal)
	for _, track := range learningTracks {
		for _, kw := range track.keywords {
			if strings.Contains(lower, kw) {
				return track.phases
			}
		}
	}
	return genericPhases
}

// fallbackWeekCount converts a timeline in days into a template module
// count: at least four weeks, at most twelve.
func fallbackWeekCount(timelineDays int) int {
	weeks := timelineDays / 7
	if weeks < 4 {
		weeks = 4
	}
	if weeks > 12 {
		weeks = 12
	}
	return weeks
}

// TemplateModules builds a full template learning path for the goal,
// stretching or repeating track phases to fill the week count.
func TemplateModules(req models.LearningPathRequest) []models.LearningModule {
	return templateModulesFor(req, fallbackWeekCount(req.Timeline))
}

// templateModulesFor builds template modules for an explicit week
// count, used when topping up a partial AI path.
func templateModulesFor(req models.LearningPathRequest, weeks int) []models.LearningModule {
	phases := trackFor(req.Goal)

	modules := make([]models.LearningModule, 0, weeks)
	phaseUse := make(map[int]int, len(phases))
	for week := 1; week <= weeks; week++ {
		// Spread phases evenly across the available weeks.
		idx := (week - 1) * len(phases) / weeks
		phase := phases[idx]
		phaseUse[idx]++
		title := phase.title
		if phaseUse[idx] > 1 {
			title = fmt.Sprintf("%s (Part %d)", phase.title, phaseUse[idx])
		}
		modules = append(modules, models.LearningModule{
			Week:           week,
			Title:          title,
			Description:    phase.description,
			Order:          week,
			EstimatedHours: req.HoursPerWeek,
			Skills:         append([]string(nil), phase.skills...),
			Project:        phase.project,
			Source:         models.SourceTemplate,
		})
	}
	return modules
}
