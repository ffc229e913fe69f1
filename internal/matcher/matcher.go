package matcher

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"resumi/internal/location"
	"resumi/pkg/models"
)

// minTotalScore is the floor below which a match is dropped entirely.
const minTotalScore = 0.3

// DefaultMaxResults caps the ranked list when the caller doesn't specify.
const DefaultMaxResults = 20

var seniorityLevels = map[string]int{
	"junior":    1,
	"mid":       2,
	"senior":    3,
	"lead":      4,
	"principal": 5,
}

// businessRoles are the role families scored with the business weighting,
// which leans on skills and domain fit over location.
var businessRoles = mapset.NewThreadUnsafeSet(
	"strategy", "consulting", "operations", "marketing", "sales", "finance", "hr",
)

// domainKeywords maps business role families to the keywords that signal a
// job belongs to that domain.
var domainKeywords = map[string][]string{
	"strategy":   {"strategy", "strategic", "business strategy", "corporate strategy"},
	"consulting": {"consultant", "consulting", "advisory", "advisory services"},
	"operations": {"operations", "ops", "supply chain", "logistics", "process"},
	"marketing":  {"marketing", "brand", "digital marketing", "growth", "demand gen"},
	"sales":      {"sales", "business development", "account", "revenue"},
	"finance":    {"finance", "financial", "fp&a", "investment", "accounting"},
	"hr":         {"hr", "human resources", "talent", "people", "recruiting"},
}

// MatchJobs filters, scores and ranks jobs against the user's profile and
// preferences. Scoring each job is a pure function of job, profile and
// preferences; no cross-job state. Never fails for well-formed input.
func MatchJobs(jobs []*models.NormalizedJob, profile *models.Profile, prefs *models.UserPreferences, maxResults int) []*models.JobMatch {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	filtered := applyHardFilters(jobs, prefs)

	matches := make([]*models.JobMatch, 0, len(filtered))
	for _, job := range filtered {
		match := scoreJob(job, profile, prefs)
		if match.TotalScore >= minTotalScore {
			matches = append(matches, match)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].TotalScore > matches[j].TotalScore
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// applyHardFilters drops jobs that can never match. Remote-only is the one
// hard filter today; new ones slot in here.
func applyHardFilters(jobs []*models.NormalizedJob, prefs *models.UserPreferences) []*models.NormalizedJob {
	filtered := make([]*models.NormalizedJob, 0, len(jobs))
	for _, job := range jobs {
		if prefs.RemoteOnly && job.Location.Type != location.TypeRemote {
			continue
		}
		filtered = append(filtered, job)
	}
	return filtered
}

func scoreJob(job *models.NormalizedJob, profile *models.Profile, prefs *models.UserPreferences) *models.JobMatch {
	jobLocation := location.NormalizedLocation{
		City:    job.Location.City,
		Country: job.Location.Country,
		Type:    job.Location.Type,
		Raw:     job.Location.Raw,
	}

	locationScore := location.Score(
		jobLocation,
		prefs.PreferredLocations,
		prefs.OpenToRelocation,
		prefs.OpenToInternational,
		prefs.RemoteOnly,
	)

	userSkills := append(append([]string{}, profile.Skills...), profile.Tools...)
	skillScore := skillSimilarity(userSkills, job.RequiredSkills)

	careerScore := careerFit(profile.Seniority, job.Title)
	domainScore := domainFit(profile.PrimaryRole, job.Title, job.Description)

	var total float64
	if businessRoles.Contains(profile.PrimaryRole) {
		total = 0.3*locationScore + 0.4*skillScore + 0.2*careerScore + 0.1*domainScore
	} else {
		total = 0.5*locationScore + 0.4*skillScore + 0.1*careerScore
	}

	return &models.JobMatch{
		Job:           job,
		TotalScore:    total,
		LocationScore: locationScore,
		SkillScore:    skillScore,
		CareerScore:   careerScore,
	}
}

// skillSimilarity is the Jaccard similarity of the two skill sets,
// case-insensitive. A broad overlap (intersection of 5 or more) earns a 1.2x
// boost, clamped to 1.0.
func skillSimilarity(userSkills, jobSkills []string) float64 {
	if len(userSkills) == 0 || len(jobSkills) == 0 {
		return 0.0
	}

	userSet := toLowerSet(userSkills)
	jobSet := toLowerSet(jobSkills)

	intersection := userSet.Intersect(jobSet).Cardinality()
	union := userSet.Union(jobSet).Cardinality()
	if union == 0 {
		return 0.0
	}

	jaccard := float64(intersection) / float64(union)
	if intersection >= 5 {
		jaccard = min(1.0, jaccard*1.2)
	}
	return jaccard
}

func toLowerSet(values []string) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, v := range values {
		set.Add(strings.ToLower(v))
	}
	return set
}

// careerFit maps user seniority and job title to integer levels and scores
// the signed level difference from a fixed lookup table.
func careerFit(userSeniority, jobTitle string) float64 {
	titleLower := strings.ToLower(jobTitle)

	userLevel, ok := seniorityLevels[userSeniority]
	if !ok {
		userLevel = 2
	}

	jobLevel := 2
	switch {
	case containsAny(titleLower, "junior", "entry", "associate"):
		jobLevel = 1
	case containsAny(titleLower, "senior", "sr"):
		jobLevel = 3
	case containsAny(titleLower, "lead", "staff", "principal"):
		jobLevel = 4
	}

	switch diff := jobLevel - userLevel; {
	case diff == 0:
		return 0.7 // lateral move
	case diff == 1:
		return 0.9 // promotion
	case diff == -1:
		return 0.4 // slight downgrade
	case diff >= 2:
		return 0.6 // ambitious jump
	default:
		return 0.2 // downgrade
	}
}

// domainFit counts role-family keyword hits in the job title and description.
func domainFit(userRole, jobTitle, jobDescription string) float64 {
	keywords, ok := domainKeywords[userRole]
	if !ok {
		return 0.5
	}

	jobText := strings.ToLower(jobTitle + " " + jobDescription)
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(jobText, keyword) {
			hits++
		}
	}

	switch {
	case hits >= 2:
		return 1.0
	case hits == 1:
		return 0.7
	default:
		return 0.3
	}
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
