package extractor

import (
	"regexp"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// technicalSkills is the canonical technical vocabulary
var technicalSkills = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "ruby", "go", "rust",
	"php", "swift", "kotlin", "scala", "r", "matlab", "sql", "html", "css",

	// Frameworks and libraries
	"react", "angular", "vue", "django", "flask", "fastapi", "spring", "express",
	"node.js", "nodejs", ".net", "rails", "laravel", "tensorflow", "pytorch", "keras",
	"pandas", "numpy", "scipy", "scikit-learn", "matplotlib", "seaborn",

	// Databases
	"postgresql", "postgres", "mysql", "mongodb", "mongo", "redis", "elasticsearch", "cassandra",
	"dynamodb", "oracle", "sql server", "sqlite", "snowflake", "redshift", "bigquery",

	// Cloud and DevOps
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s", "terraform", "ansible",
	"jenkins", "gitlab", "github actions", "circleci", "ci/cd", "linux", "bash", "shell",

	// Data and analytics
	"spark", "hadoop", "kafka", "airflow", "tableau", "power bi", "looker", "dbt",
	"data analysis", "machine learning", "deep learning", "nlp", "computer vision",

	// Other
	"git", "agile", "scrum", "rest api", "graphql", "microservices", "oauth", "jwt",
	"testing", "unit testing", "selenium", "cypress", "jest", "pytest",
}

// businessSkills is the canonical business vocabulary
var businessSkills = []string{
	// Finance and accounting
	"financial modeling", "financial analysis", "valuation", "dcf", "lbo", "excel",
	"bloomberg", "capital iq", "accounting", "gaap", "ifrs", "budgeting", "forecasting",
	"fp&a", "investment banking", "private equity", "venture capital",

	// Marketing and sales
	"market research", "brand strategy", "digital marketing", "seo", "sem", "social media",
	"content marketing", "email marketing", "crm", "salesforce", "hubspot", "google analytics",
	"marketing automation", "growth hacking", "copywriting", "b2b", "b2c", "saas sales",

	// Operations and strategy
	"supply chain", "logistics", "operations management", "process improvement",
	"six sigma", "lean", "kaizen", "project management", "program management",
	"business strategy", "corporate strategy", "consulting", "management consulting",

	// Product
	"product management", "product strategy", "roadmap", "user stories", "agile",
	"scrum", "kanban", "user research", "a/b testing", "wireframing", "figma",

	// General
	"powerpoint", "presentation", "communication", "leadership", "team management",
	"problem solving", "analytical skills", "negotiation", "stakeholder management",
}

// skillPattern pairs a canonical skill name with its compiled word-boundary
// matcher. Patterns are compiled once at package load.
type skillPattern struct {
	skill   string
	pattern *regexp.Regexp
}

var skillPatterns = buildSkillPatterns()

func buildSkillPatterns() []skillPattern {
	vocabulary := mapset.NewThreadUnsafeSet[string]()
	for _, s := range technicalSkills {
		vocabulary.Add(s)
	}
	for _, s := range businessSkills {
		vocabulary.Add(s)
	}

	patterns := make([]skillPattern, 0, vocabulary.Cardinality())
	for skill := range vocabulary.Iter() {
		patterns = append(patterns, skillPattern{
			skill:   skill,
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`),
		})
	}
	return patterns
}

// Enricher supplements dictionary matching with additional skill candidates,
// typically from named-entity recognition. Candidates outside the known
// vocabulary are ignored. Implementations must be safe to skip entirely; the
// dictionary match works standalone.
type Enricher interface {
	EnrichSkills(text string) []string
}

// ExtractSkills returns the sorted set of recognized skill keywords found in
// the text, lower-cased canonical names. Matching is a word-boundary
// dictionary test; the optional enricher is best-effort and may be nil.
func ExtractSkills(text string, enricher Enricher) []string {
	textLower := strings.ToLower(text)
	found := mapset.NewThreadUnsafeSet[string]()

	for _, sp := range skillPatterns {
		if sp.pattern.MatchString(textLower) {
			found.Add(sp.skill)
		}
	}

	if enricher != nil {
		for _, candidate := range enricher.EnrichSkills(text) {
			candidate = strings.ToLower(candidate)
			if isKnownSkill(candidate) {
				found.Add(candidate)
			}
		}
	}

	skills := found.ToSlice()
	sort.Strings(skills)
	return skills
}

func isKnownSkill(skill string) bool {
	for _, sp := range skillPatterns {
		if sp.skill == skill {
			return true
		}
	}
	return false
}
