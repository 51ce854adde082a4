package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillforge/logger"
	"skillforge/models"
)

const sampleResume = `Jane Doe
Senior Software Engineer with 6 years of experience building backend systems.

Skills: Python, Go, PostgreSQL, Docker, Kubernetes, AWS, Git

Experience:
Led a team migrating services to Kubernetes on AWS.
Built REST APIs in Python and Go backed by PostgreSQL.

Education:
Bachelor of Science in Computer Science
AWS Certified Solutions Architect`

func resumeRequest(text string) models.ResumeAnalysisRequest {
	return models.ResumeAnalysisRequest{Text: text}
}

func TestAnalyzeExtractsSkills(t *testing.T) {
	a := NewResumeAnalyzer(nil, logger.NewNop())
	res := a.Analyze(context.Background(), resumeRequest(sampleResume))

	assert.Contains(t, res.Skills.Identified, "python")
	assert.Contains(t, res.Skills.Identified, "go")
	assert.Contains(t, res.Skills.Identified, "postgresql")
	assert.Contains(t, res.Skills.ByCategory["devops_tools"], "docker")
	assert.NotEmpty(t, res.Skills.Categories)
}

func TestKeywordPresentIsWordBounded(t *testing.T) {
	assert.True(t, keywordPresent("i write go every day", "go"))
	assert.False(t, keywordPresent("i searched google for it", "go"))
	assert.True(t, keywordPresent("skills: go, python", "go"))
	assert.True(t, keywordPresent("machine learning models", "machine learning"))
}

func TestExtractExperience(t *testing.T) {
	exp := extractExperience("engineer with 6 years of experience in backend work")
	assert.Equal(t, 6, exp.TotalYears)
	assert.Equal(t, "senior", exp.Level)

	exp = extractExperience("1 year of experience")
	assert.Equal(t, "entry", exp.Level)

	exp = extractExperience("over 12 years experience leading teams")
	assert.Equal(t, 12, exp.TotalYears)
	assert.Equal(t, "lead", exp.Level)

	exp = extractExperience("no mention of duration here")
	assert.Equal(t, 0, exp.TotalYears)
}

func TestExtractEducation(t *testing.T) {
	edu := extractEducation(sampleResume)
	require.NotEmpty(t, edu.Degrees)
	assert.NotEmpty(t, edu.Certifications)
	assert.Contains(t, strings.ToLower(edu.Certifications[0]), "aws certified")
}

func TestScoreResumeCaps(t *testing.T) {
	skills := models.SkillAnalysis{Identified: make([]string, 20)}
	exp := models.ExperienceSummary{TotalYears: 20}
	edu := models.EducationSummary{Degrees: []string{"BS", "MS", "PhD"}, Certifications: []string{"a", "b"}}

	score := scoreResume(skills, exp, edu)
	assert.Equal(t, 40, score.Sections["skills"])
	assert.Equal(t, 35, score.Sections["experience"])
	assert.Equal(t, 25, score.Sections["education"])
	assert.Equal(t, 100, score.Overall)
}

func TestSuggestJobsRanksByMatch(t *testing.T) {
	suggestions := suggestJobs([]string{"python", "machine learning", "pandas", "sql", "numpy"}, "")
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "Data Scientist", suggestions[0].Title)
	assert.Equal(t, 100, suggestions[0].MatchPercentage)
	assert.LessOrEqual(t, len(suggestions), 3)
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].MatchPercentage, suggestions[i].MatchPercentage)
	}
}

func TestMissingForRole(t *testing.T) {
	missing := missingForRole([]string{"docker", "aws"}, "DevOps Engineer")
	assert.ElementsMatch(t, []string{"kubernetes", "terraform", "ci/cd"}, missing)
	assert.Nil(t, missingForRole([]string{"docker"}, ""))
	assert.Nil(t, missingForRole([]string{"docker"}, "Astronaut"))
}

func TestAnalyzeWithAIInsights(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{
		`{"strengths": ["clear progression"], "improvements": ["add metrics"], "summary": "Strong backend profile."}`,
	}}
	a := NewResumeAnalyzer(gen, logger.NewNop())
	res := a.Analyze(context.Background(), resumeRequest(sampleResume))

	require.Equal(t, models.GeneratedByAI, res.AIInsights["generated_by"])
	assert.Equal(t, "Strong backend profile.", res.AIInsights["summary"])
}

func TestAnalyzeKeepsProseInsights(t *testing.T) {
	gen := &scriptedGenerator{replies: []string{
		"The candidate shows solid backend depth but should quantify impact in each role.",
	}}
	a := NewResumeAnalyzer(gen, logger.NewNop())
	res := a.Analyze(context.Background(), resumeRequest(sampleResume))

	require.Equal(t, models.GeneratedByAI, res.AIInsights["generated_by"])
	assert.Equal(t,
		"The candidate shows solid backend depth but should quantify impact in each role.",
		res.AIInsights["analysis"])
}

func TestAnalyzeProviderDownUsesDefaultInsights(t *testing.T) {
	gen := &scriptedGenerator{errs: []error{ErrProviderUnavailable}}
	a := NewResumeAnalyzer(gen, logger.NewNop())
	res := a.Analyze(context.Background(), resumeRequest(sampleResume))

	assert.Equal(t, models.GeneratedByTemplate, res.AIInsights["generated_by"])
	assert.NotEmpty(t, res.Recommendations)
	assert.Positive(t, res.Score.Overall)
}
