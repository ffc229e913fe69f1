package collector

import (
	"context"

	"resumi/pkg/models"
)

// Collector fetches raw job postings from one external source.
type Collector interface {
	// Name returns the source identifier used in job records and rate limits
	Name() string

	// Collect fetches up to maxJobs raw jobs from the source
	Collect(ctx context.Context, maxJobs int) ([]models.RawJob, error)
}
