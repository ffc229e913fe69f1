package jobs

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"resumi/internal/extractor"
	"resumi/internal/location"
	"resumi/pkg/models"
	"resumi/pkg/utils"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	maxDescriptionLength = 1000
	maxRequiredSkills    = 10
)

// Normalizer converts heterogeneous raw job postings into canonical records.
// The enricher is passed through to skill extraction and may be nil.
type Normalizer struct {
	enricher extractor.Enricher
}

func NewNormalizer(enricher extractor.Enricher) *Normalizer {
	return &Normalizer{enricher: enricher}
}

// Normalize maps a raw job to the canonical schema. Returns nil when the raw
// job carries no usable fields; callers drop nil results rather than failing
// the batch.
func (n *Normalizer) Normalize(raw models.RawJob) *models.NormalizedJob {
	if raw == nil {
		return nil
	}

	locationRaw := raw.String("location_raw")
	loc := location.Normalize(locationRaw)

	description := raw.String("description")
	skills := extractor.ExtractSkills(description, n.enricher)
	if len(skills) > maxRequiredSkills {
		skills = skills[:maxRequiredSkills]
	}

	return &models.NormalizedJob{
		ID:      GenerateJobID(raw.String("title"), raw.String("company"), locationRaw),
		Title:   raw.StringOr("title", "Unknown"),
		Company: raw.StringOr("company", "Unknown"),
		Location: models.JobLocation{
			City:    loc.City,
			Country: loc.Country,
			Type:    loc.Type,
			Raw:     loc.Raw,
		},
		Source:          raw.StringOr("source", "unknown"),
		ApplyURL:        raw.String("apply_url"),
		Description:     utils.Truncate(description, maxDescriptionLength),
		RequiredSkills:  skills,
		PreferredSkills: []string{},
		EmploymentType:  raw.StringOr("employment_type", "full-time"),
		Departments:     raw.StringList("departments"),
		RawData:         raw,
	}
}

// NormalizeAll normalizes a batch, dropping entries that fail to normalize.
func (n *Normalizer) NormalizeAll(raws []models.RawJob) []*models.NormalizedJob {
	normalized := make([]*models.NormalizedJob, 0, len(raws))
	for _, raw := range raws {
		if job := n.Normalize(raw); job != nil {
			normalized = append(normalized, job)
		}
	}
	return normalized
}

// GenerateJobID derives a stable id from the identifying fields. The same
// title, company and location always hash to the same id regardless of case.
func GenerateJobID(title, company, locationRaw string) string {
	combined := strings.ToLower(fmt.Sprintf("%s|%s|%s", title, company, locationRaw))
	sum := md5.Sum([]byte(combined))
	return hex.EncodeToString(sum[:])[:16]
}

// Deduplicate removes jobs with duplicate ids, keeping the first occurrence
// and preserving input order. Idempotent.
func Deduplicate(jobs []*models.NormalizedJob) []*models.NormalizedJob {
	seen := mapset.NewThreadUnsafeSet[string]()
	unique := make([]*models.NormalizedJob, 0, len(jobs))

	for _, job := range jobs {
		if seen.Contains(job.ID) {
			continue
		}
		seen.Add(job.ID)
		unique = append(unique, job)
	}

	return unique
}
