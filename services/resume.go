package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"skillforge/logger"
	"skillforge/models"
)

// skillCategory maps a category name to the keywords that place a
// skill in it. Matching is case-insensitive and word-bounded.
type skillCategory struct {
	name     string
	keywords []string
}

var skillCategories = []skillCategory{
	{"programming_languages", []string{
		"python", "java", "javascript", "typescript", "go", "golang", "c++", "c#",
		"ruby", "php", "swift", "kotlin", "rust", "scala",
	}},
	{"web_technologies", []string{
		"react", "angular", "vue", "node.js", "nodejs", "django", "flask", "spring",
		"html", "css", "rest", "graphql", "express",
	}},
	{"databases", []string{
		"sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "elasticsearch",
		"sqlite", "oracle", "cassandra", "dynamodb",
	}},
	{"cloud_platforms", []string{
		"aws", "azure", "gcp", "google cloud", "heroku", "digitalocean",
	}},
	{"devops_tools", []string{
		"docker", "kubernetes", "jenkins", "terraform", "ansible", "git", "ci/cd",
		"github actions", "gitlab",
	}},
	{"data_science", []string{
		"machine learning", "deep learning", "pandas", "numpy", "tensorflow",
		"pytorch", "scikit-learn", "tableau", "power bi", "spark",
	}},
	{"soft_skills", []string{
		"leadership", "communication", "teamwork", "problem solving", "agile",
		"scrum", "mentoring", "project management",
	}},
}

// jobRole pairs a title with the skills it expects and a typical
// salary band.
type jobRole struct {
	title    string
	required []string
	salary   models.SalaryRange
}

var jobRoles = []jobRole{
	{"Backend Developer", []string{"python", "java", "go", "sql", "rest", "docker"},
		models.SalaryRange{Min: 70000, Max: 130000, Currency: "USD"}},
	{"Frontend Developer", []string{"javascript", "typescript", "react", "html", "css"},
		models.SalaryRange{Min: 65000, Max: 120000, Currency: "USD"}},
	{"Full Stack Developer", []string{"javascript", "react", "node.js", "sql", "rest"},
		models.SalaryRange{Min: 75000, Max: 140000, Currency: "USD"}},
	{"Data Scientist", []string{"python", "machine learning", "pandas", "sql", "numpy"},
		models.SalaryRange{Min: 85000, Max: 150000, Currency: "USD"}},
	{"DevOps Engineer", []string{"docker", "kubernetes", "terraform", "aws", "ci/cd"},
		models.SalaryRange{Min: 80000, Max: 145000, Currency: "USD"}},
	{"Data Engineer", []string{"python", "sql", "spark", "aws", "elasticsearch"},
		models.SalaryRange{Min: 80000, Max: 140000, Currency: "USD"}},
}

var (
	yearsExpRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)(?:\s+of)?\s+(?:experience|exp)`)
	degreeRe   = regexp.MustCompile(`(?i)\b(bachelor(?:'s)?|master(?:'s)?|ph\.?d|b\.?s\.?c?|m\.?s\.?c?|mba|b\.?tech|m\.?tech)\b`)
	certRe     = regexp.MustCompile(`(?i)\b(aws certified[\w\s-]*|google cloud certified[\w\s-]*|azure [\w\s]*certified|certified kubernetes[\w\s-]*|pmp|cissp|ccna|comptia \w+)\b`)
)

// ResumeAnalyzer runs the deterministic keyword analysis and layers
// provider-generated insights on top when available.
type ResumeAnalyzer struct {
	gen TextGenerator
	log *logger.Logger
}

func NewResumeAnalyzer(gen TextGenerator, log *logger.Logger) *ResumeAnalyzer {
	return &ResumeAnalyzer{gen: gen, log: log.With("component", "resume")}
}

// Analyze produces a complete resume analysis. The keyword stage never
// fails; AI insights degrade to a canned block when the provider is
// down.
func (a *ResumeAnalyzer) Analyze(ctx context.Context, req models.ResumeAnalysisRequest) *models.ResumeAnalysis {
	lower := strings.ToLower(req.Text)

	skills := extractSkills(lower)
	skills.Missing = missingForRole(skills.Identified, req.TargetRole)
	experience := extractExperience(lower)
	education := extractEducation(req.Text)
	score := scoreResume(skills, experience, education)

	analysis := &models.ResumeAnalysis{
		Skills:          skills,
		Experience:      experience,
		Education:       education,
		Score:           score,
		Recommendations: buildRecommendations(skills, experience, education),
		JobSuggestions:  suggestJobs(skills.Identified, req.TargetRole),
		AIInsights:      a.insights(ctx, req, skills.Identified),
	}
	return analysis
}

func extractSkills(lower string) models.SkillAnalysis {
	byCategory := make(map[string][]string)
	var identified []string
	var categories []models.SkillCategory
	seen := make(map[string]bool)

	for _, cat := range skillCategories {
		var found []string
		for _, kw := range cat.keywords {
			if !keywordPresent(lower, kw) || seen[kw] {
				continue
			}
			seen[kw] = true
			identified = append(identified, kw)
			found = append(found, kw)
		}
		if len(found) > 0 {
			byCategory[cat.name] = found
			categories = append(categories, models.SkillCategory{
				Name:        cat.name,
				Skills:      found,
				Proficiency: proficiencyFor(len(found)),
			})
		}
	}

	return models.SkillAnalysis{
		Identified: identified,
		ByCategory: byCategory,
		Categories: categories,
	}
}

func proficiencyFor(count int) string {
	switch {
	case count >= 5:
		return "strong"
	case count >= 3:
		return "moderate"
	default:
		return "basic"
	}
}

// keywordPresent matches a keyword as a whole token so "go" does not
// match inside "google".
func keywordPresent(lower, kw string) bool {
	idx := 0
	for {
		i := strings.Index(lower[idx:], kw)
		if i == -1 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		before := start == 0 || !isWordByte(lower[start-1])
		after := end == len(lower) || !isWordByte(lower[end])
		if before && after {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

func extractExperience(lower string) models.ExperienceSummary {
	years := 0
	for _, m := range yearsExpRe.FindAllStringSubmatch(lower, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > years && n <= 50 {
			years = n
		}
	}
	level := "entry"
	switch {
	case years >= 10:
		level = "lead"
	case years >= 5:
		level = "senior"
	case years >= 2:
		level = "mid"
	}
	return models.ExperienceSummary{
		TotalYears: years,
		Level:      level,
	}
}

func extractEducation(text string) models.EducationSummary {
	var summary models.EducationSummary
	seen := make(map[string]bool)
	for _, m := range degreeRe.FindAllString(text, -1) {
		key := strings.ToLower(m)
		if !seen[key] {
			seen[key] = true
			summary.Degrees = append(summary.Degrees, m)
		}
	}
	seen = make(map[string]bool)
	for _, m := range certRe.FindAllString(text, -1) {
		key := strings.ToLower(strings.TrimSpace(m))
		if !seen[key] {
			seen[key] = true
			summary.Certifications = append(summary.Certifications, strings.TrimSpace(m))
		}
	}
	return summary
}

// scoreResume weighs skills up to 40 points, experience up to 35 and
// education up to 25.
func scoreResume(skills models.SkillAnalysis, exp models.ExperienceSummary, edu models.EducationSummary) models.ResumeScore {
	skillScore := len(skills.Identified) * 4
	if skillScore > 40 {
		skillScore = 40
	}
	expScore := exp.TotalYears * 5
	if expScore > 35 {
		expScore = 35
	}
	eduScore := len(edu.Degrees)*10 + len(edu.Certifications)*5
	if eduScore > 25 {
		eduScore = 25
	}
	return models.ResumeScore{
		Overall: skillScore + expScore + eduScore,
		Sections: map[string]int{
			"skills":     skillScore,
			"experience": expScore,
			"education":  eduScore,
		},
	}
}

func buildRecommendations(skills models.SkillAnalysis, exp models.ExperienceSummary, edu models.EducationSummary) []string {
	var recs []string
	if len(skills.Identified) < 5 {
		recs = append(recs, "List more specific technical skills; recruiters and screening tools match on them directly.")
	}
	if exp.TotalYears == 0 {
		recs = append(recs, "State your years of experience explicitly, for example \"3 years of experience in backend development\".")
	}
	if len(edu.Degrees) == 0 {
		recs = append(recs, "Add an education section with your degree or relevant coursework.")
	}
	if len(edu.Certifications) == 0 {
		recs = append(recs, "Industry certifications (cloud, security, project management) strengthen your profile.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Quantify your achievements with concrete metrics to make your impact measurable.")
	}
	return recs
}

// missingForRole lists the target role's expected skills the resume
// does not mention. Empty when no target role was given or it is not a
// role we know.
func missingForRole(identified []string, targetRole string) []string {
	if targetRole == "" {
		return nil
	}
	have := make(map[string]bool, len(identified))
	for _, s := range identified {
		have[strings.ToLower(s)] = true
	}
	for _, role := range jobRoles {
		if !strings.EqualFold(role.title, targetRole) {
			continue
		}
		var missing []string
		for _, req := range role.required {
			if !have[req] {
				missing = append(missing, req)
			}
		}
		return missing
	}
	return nil
}

func suggestJobs(identified []string, targetRole string) []models.JobSuggestion {
	have := make(map[string]bool, len(identified))
	for _, s := range identified {
		have[strings.ToLower(s)] = true
	}

	var suggestions []models.JobSuggestion
	for _, role := range jobRoles {
		matched := 0
		var missing []string
		for _, req := range role.required {
			if have[req] {
				matched++
			} else {
				missing = append(missing, req)
			}
		}
		pct := matched * 100 / len(role.required)
		if pct == 0 && !strings.EqualFold(role.title, targetRole) {
			continue
		}
		suggestions = append(suggestions, models.JobSuggestion{
			Title:           role.title,
			MatchPercentage: pct,
			Requirements:    append([]string(nil), role.required...),
			MissingSkills:   missing,
			SalaryRange:     role.salary,
		})
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchPercentage > suggestions[j].MatchPercentage
	})
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

func (a *ResumeAnalyzer) insights(ctx context.Context, req models.ResumeAnalysisRequest, skills []string) map[string]any {
	if a.gen != nil {
		raw, err := a.gen.Chat(ctx, buildResumeInsightsPrompt(req.Text, req.TargetRole, skills), ChatOptions{
			MaxTokens: 1000,
		})
		if err == nil {
			if insights, ok := ParseResumeInsights(raw); ok {
				insights["generated_by"] = models.GeneratedByAI
				return insights
			}
			// the model answered in prose, keep it as a plain analysis
			if text := strings.TrimSpace(stripCodeFences(raw)); text != "" {
				return map[string]any{
					"analysis":     text,
					"generated_by": models.GeneratedByAI,
				}
			}
			a.log.Warn("resume insights reply was empty")
		} else {
			a.log.Warn("resume insights generation failed", "error", err)
		}
	}
	return defaultInsights(skills)
}

func defaultInsights(skills []string) map[string]any {
	strengths := []string{"Technical background covering multiple tools and technologies"}
	if len(skills) >= 5 {
		strengths = append(strengths, fmt.Sprintf("Broad skill set spanning %d identified technologies", len(skills)))
	}
	return map[string]any{
		"strengths": strengths,
		"improvements": []string{
			"Quantify achievements with measurable outcomes",
			"Tailor the resume to each specific role you apply for",
		},
		"summary":      "A technology professional with a demonstrable skill set. Detailed AI review was unavailable for this analysis.",
		"generated_by": models.GeneratedByTemplate,
	}
}
