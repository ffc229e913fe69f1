package explain

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"resumi/internal/location"
	"resumi/pkg/models"
)

const (
	maxSkillMatches = 8
	maxSkillGaps    = 5
)

// Generate turns a match's sub-scores into short natural-language strings.
// Returns nil when no reason could be generated or the skill overlap is
// empty; both must hold for a non-nil result.
func Generate(match *models.JobMatch, profile *models.Profile) *models.Explanation {
	job := match.Job

	userSkills := append(append([]string{}, profile.Skills...), profile.Tools...)

	whyMatch := generateWhyMatch(match, profile)
	skillMatches := findSkillMatches(userSkills, job.RequiredSkills)
	skillGaps := findSkillGaps(userSkills, job.RequiredSkills)

	if whyMatch == "" || len(skillMatches) == 0 {
		return nil
	}

	if len(skillMatches) > maxSkillMatches {
		skillMatches = skillMatches[:maxSkillMatches]
	}
	if len(skillGaps) > maxSkillGaps {
		skillGaps = skillGaps[:maxSkillGaps]
	}

	return &models.Explanation{
		WhyMatch:          whyMatch,
		SkillMatches:      skillMatches,
		SkillGaps:         skillGaps,
		LocationReasoning: generateLocationReasoning(match, job),
	}
}

func generateWhyMatch(match *models.JobMatch, profile *models.Profile) string {
	job := match.Job

	var reasons []string

	if match.SkillScore >= 0.6 {
		reasons = append(reasons, fmt.Sprintf("Strong alignment with your %s background", profile.PrimaryRole))
	} else if match.SkillScore >= 0.4 {
		reasons = append(reasons, fmt.Sprintf("Good fit for your %s experience", profile.PrimaryRole))
	}

	if match.CareerScore >= 0.8 {
		reasons = append(reasons, "Excellent career progression opportunity")
	} else if match.CareerScore >= 0.6 {
		reasons = append(reasons, "Aligns with your career level")
	}

	if match.LocationScore >= 0.9 {
		reasons = append(reasons, "Perfect location match")
	} else if match.LocationScore >= 0.7 {
		reasons = append(reasons, "Good location fit")
	}

	if len(profile.SkillClusters) > 0 {
		titleLower := strings.ToLower(job.Title)
		descLower := strings.ToLower(job.Description)

		for _, cluster := range profile.SkillClusters {
			if strings.Contains(titleLower, cluster) || strings.Contains(descLower, cluster) {
				shown := profile.SkillClusters
				if len(shown) > 2 {
					shown = shown[:2]
				}
				reasons = append(reasons, fmt.Sprintf("Matches your expertise in %s", strings.Join(shown, ", ")))
				break
			}
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Potential fit based on your background")
	}

	return strings.Join(reasons, ". ") + "."
}

// findSkillMatches returns overlapping skills in the user's casing and order.
func findSkillMatches(userSkills, jobSkills []string) []string {
	jobSet := toLowerSet(jobSkills)

	var matches []string
	for _, skill := range userSkills {
		if jobSet.Contains(strings.ToLower(skill)) {
			matches = append(matches, skill)
		}
	}
	return matches
}

// findSkillGaps returns required skills the user lacks, in the job's casing
// and order.
func findSkillGaps(userSkills, jobSkills []string) []string {
	userSet := toLowerSet(userSkills)

	var gaps []string
	for _, skill := range jobSkills {
		if !userSet.Contains(strings.ToLower(skill)) {
			gaps = append(gaps, skill)
		}
	}
	return gaps
}

func generateLocationReasoning(match *models.JobMatch, job *models.NormalizedJob) string {
	loc := job.Location

	if loc.Type == location.TypeRemote {
		return "Remote position - work from anywhere"
	}

	switch {
	case match.LocationScore >= 0.9:
		return fmt.Sprintf("Located in your preferred area: %s", loc.Raw)
	case match.LocationScore >= 0.7:
		return fmt.Sprintf("Same country as your preference: %s", loc.Country)
	case match.LocationScore >= 0.5:
		return fmt.Sprintf("Relocation opportunity to %s", loc.Raw)
	default:
		return fmt.Sprintf("Location: %s", loc.Raw)
	}
}

func toLowerSet(values []string) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, v := range values {
		set.Add(strings.ToLower(v))
	}
	return set
}
