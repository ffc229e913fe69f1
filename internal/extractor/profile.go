package extractor

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"resumi/pkg/models"
)

// roleFamily pairs a family label with its keyword list. Order matters: ties
// between equally scoring families resolve to the earliest entry.
type roleFamily struct {
	name     string
	keywords []string
}

var roleFamilies = []roleFamily{
	{"software engineer", []string{"software", "developer", "engineer", "stack", "coding"}},
	{"data scientist", []string{"data", "scientist", "analyst", "machine learning", "analytics"}},
	{"product manager", []string{"product", "manager", "owner", "roadmap", "strategy"}},
	{"designer", []string{"design", "ui", "ux", "creative", "graphic"}},
	{"marketing", []string{"marketing", "brand", "social", "content", "growth"}},
	{"sales", []string{"sales", "business development", "account", "client"}},
	{"finance", []string{"finance", "accounting", "investment", "analyst", "banking"}},
	{"hr", []string{"hr", "human resources", "recruiter", "talent", "people"}},
	{"consulting", []string{"consultant", "strategy", "advisory", "client"}},
	{"operations", []string{"operations", "logistics", "supply chain", "process"}},
}

// seniorityLevel pairs a seniority label with its keyword list. Scanned in
// order, first keyword hit wins.
type seniorityLevel struct {
	name     string
	keywords []string
}

var seniorityLevels = []seniorityLevel{
	{"junior", []string{"junior", "entry", "associate", "graduate", "intern"}},
	{"mid", []string{"mid-level", "intermediate", "engineer ii", "developer ii"}},
	{"senior", []string{"senior", "sr", "lead", "principal", "staff", "expert"}},
	{"lead", []string{"lead", "team lead", "tech lead", "engineering manager"}},
	{"principal", []string{"principal", "distinguished", "fellow", "architect"}},
}

var toolKeywords = mapset.NewThreadUnsafeSet(
	"git", "docker", "kubernetes", "jenkins", "gitlab", "jira",
	"trello", "asana", "slack", "zoom", "teams",
)

var clusterMappings = []struct {
	name   string
	skills mapset.Set[string]
}{
	{"backend", mapset.NewThreadUnsafeSet("python", "java", "node.js", "django", "flask", "fastapi", "spring")},
	{"frontend", mapset.NewThreadUnsafeSet("react", "angular", "vue", "javascript", "typescript", "html", "css")},
	{"cloud", mapset.NewThreadUnsafeSet("aws", "azure", "gcp", "docker", "kubernetes", "terraform")},
	{"data", mapset.NewThreadUnsafeSet("sql", "postgresql", "mysql", "mongodb", "data analysis", "spark")},
	{"ml", mapset.NewThreadUnsafeSet("machine learning", "tensorflow", "pytorch", "scikit-learn")},
}

var commonPlaces = []string{
	"Remote", "Bangalore", "Bengaluru", "Mumbai", "Delhi", "Hyderabad",
	"Chennai", "Pune", "New York", "London", "San Francisco",
}

var (
	experienceRegex = regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`)
	titleRegex      = regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+){0,2})\s(?:Manager|Engineer|Developer|Analyst|Consultant|Director|Lead)`)
)

// ExtractRoleFamily determines the most likely role family from resume text
// and extracted job titles. Returns "general" when no family keywords hit.
func ExtractRoleFamily(text string, jobTitles []string) string {
	combined := strings.ToLower(text) + " " + strings.ToLower(strings.Join(jobTitles, " "))

	best := ""
	bestScore := 0
	for _, family := range roleFamilies {
		score := 0
		for _, kw := range family.keywords {
			if strings.Contains(combined, kw) {
				score++
			}
		}
		if score > bestScore {
			best = family.name
			bestScore = score
		}
	}

	if bestScore == 0 {
		return "general"
	}
	return best
}

// ExtractExperienceYears looks for explicit "N years of experience" phrases
// and returns the largest value found, defaulting to 1.
func ExtractExperienceYears(text string) int {
	matches := experienceRegex.FindAllStringSubmatch(strings.ToLower(text), -1)

	best := 0
	for _, m := range matches {
		years, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if years > best {
			best = years
		}
	}

	if best == 0 {
		return 1
	}
	return best
}

// ExtractSeniority determines the seniority label from explicit keywords,
// falling back to an experience-based estimate.
func ExtractSeniority(text string, experienceYears int) string {
	textLower := strings.ToLower(text)

	for _, level := range seniorityLevels {
		for _, keyword := range level.keywords {
			if strings.Contains(textLower, keyword) {
				return level.name
			}
		}
	}

	switch {
	case experienceYears < 2:
		return "junior"
	case experienceYears < 5:
		return "mid"
	case experienceYears < 8:
		return "senior"
	default:
		return "lead"
	}
}

// ExtractProfile runs the full extraction pipeline over resume text. Returns
// nil for text too short to carry any signal. The enricher may be nil.
func ExtractProfile(text string, enricher Enricher) *models.Profile {
	if len(text) < 10 {
		return nil
	}

	allSkills := ExtractSkills(text, enricher)

	var skills, tools []string
	for _, s := range allSkills {
		if toolKeywords.Contains(strings.ToLower(s)) {
			tools = append(tools, s)
		} else {
			skills = append(skills, s)
		}
	}

	titles := extractJobTitles(text)
	experienceYears := ExtractExperienceYears(text)

	return &models.Profile{
		PrimaryRole:      ExtractRoleFamily(text, titles),
		Seniority:        ExtractSeniority(text, experienceYears),
		Skills:           skills,
		Tools:            tools,
		ExperienceYears:  experienceYears,
		Education:        extractEducation(text),
		LocationMentions: extractLocations(text),
		SkillClusters:    clusterSkills(allSkills),
		JobTitles:        titles,
	}
}

// extractJobTitles captures up to three capitalized titles ending in a known
// role noun, deduplicated.
func extractJobTitles(text string) []string {
	matches := titleRegex.FindAllStringSubmatch(text, -1)

	seen := mapset.NewThreadUnsafeSet[string]()
	var titles []string
	for _, m := range matches {
		if seen.Contains(m[1]) {
			continue
		}
		seen.Add(m[1])
		titles = append(titles, m[1])
		if len(titles) == 3 {
			break
		}
	}
	return titles
}

func extractEducation(text string) []string {
	textLower := strings.ToLower(text)

	var education []string
	if strings.Contains(textLower, "bachelor") || strings.Contains(textLower, "bs ") || strings.Contains(textLower, "b.s.") {
		education = append(education, "Bachelor's")
	}
	if strings.Contains(textLower, "master") || strings.Contains(textLower, "ms ") ||
		strings.Contains(textLower, "m.s.") || strings.Contains(textLower, "mba") {
		education = append(education, "Master's/MBA")
	}
	if strings.Contains(textLower, "phd") || strings.Contains(textLower, "doctorate") {
		education = append(education, "PhD")
	}
	return education
}

func extractLocations(text string) []string {
	textLower := strings.ToLower(text)

	locations := mapset.NewThreadUnsafeSet[string]()
	for _, place := range commonPlaces {
		if strings.Contains(textLower, strings.ToLower(place)) {
			locations.Add(place)
		}
	}

	result := locations.ToSlice()
	sort.Strings(result)
	return result
}

// clusterSkills groups extracted skills into high-level capability clusters.
func clusterSkills(skills []string) []string {
	skillSet := mapset.NewThreadUnsafeSet[string]()
	for _, s := range skills {
		skillSet.Add(strings.ToLower(s))
	}

	clusters := mapset.NewThreadUnsafeSet[string]()
	for _, mapping := range clusterMappings {
		if skillSet.Intersect(mapping.skills).Cardinality() > 0 {
			clusters.Add(mapping.name)
		}
	}

	result := clusters.ToSlice()
	sort.Strings(result)
	return result
}
