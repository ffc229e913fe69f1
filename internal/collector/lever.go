package collector

import (
	"context"
	"fmt"
	"strings"

	"resumi/internal/config"
	"resumi/internal/logging"
	"resumi/pkg/models"
)

// leverCompanies are companies with public Lever boards
var leverCompanies = []string{
	// US tech
	"netflix", "shopify", "grammarly", "canva", "elastic",
	"hubspot", "twilio", "segment", "miro", "zapier",
	"asana", "atlassian", "zendesk", "dropbox", "square",

	// India
	"ola", "flipkart", "paytm",
}

type leverPosting struct {
	ID               string `json:"id"`
	Text             string `json:"text"`
	Description      string `json:"description"`
	DescriptionPlain string `json:"descriptionPlain"`
	HostedURL        string `json:"hostedUrl"`
	Categories       struct {
		Location   string `json:"location"`
		Commitment string `json:"commitment"`
		Team       string `json:"team"`
	} `json:"categories"`
}

// LeverCollector collects jobs from public Lever posting APIs
type LeverCollector struct {
	client    *Client
	baseURL   string
	companies []string
}

func NewLeverCollector(client *Client, cfg *config.Config) *LeverCollector {
	return &LeverCollector{
		client:    client,
		baseURL:   cfg.Collector.LeverBaseURL,
		companies: leverCompanies,
	}
}

func (l *LeverCollector) Name() string {
	return "lever"
}

// Collect fetches postings company by company until maxJobs is reached,
// skipping companies whose boards fail.
func (l *LeverCollector) Collect(ctx context.Context, maxJobs int) ([]models.RawJob, error) {
	logger := logging.GetGlobalLogger().WithField("source", l.Name())

	var allJobs []models.RawJob
	for _, company := range l.companies {
		if len(allJobs) >= maxJobs {
			break
		}
		if ctx.Err() != nil {
			return allJobs, ctx.Err()
		}

		jobs, err := l.fetchCompanyPostings(ctx, company)
		if err != nil {
			logger.Warn("Failed to collect company postings", map[string]interface{}{
				"company": company,
				"error":   err.Error(),
			})
			continue
		}

		allJobs = append(allJobs, jobs...)
		logger.Debug("Collected company postings", map[string]interface{}{
			"company": company,
			"jobs":    len(jobs),
		})
	}

	if len(allJobs) > maxJobs {
		allJobs = allJobs[:maxJobs]
	}
	return allJobs, nil
}

func (l *LeverCollector) fetchCompanyPostings(ctx context.Context, company string) ([]models.RawJob, error) {
	url := fmt.Sprintf("%s/%s?mode=json", l.baseURL, company)

	var postings []leverPosting
	if err := l.client.FetchJSON(ctx, l.Name(), url, &postings); err != nil {
		return nil, err
	}

	jobs := make([]models.RawJob, 0, len(postings))
	for _, posting := range postings {
		description := posting.DescriptionPlain
		if description == "" {
			description = CleanDescription(posting.Description)
		}

		commitment := posting.Categories.Commitment
		if commitment == "" {
			commitment = "Full-time"
		}

		var departments []string
		if posting.Categories.Team != "" {
			departments = []string{posting.Categories.Team}
		}

		location := posting.Categories.Location
		if location == "" {
			location = "Not specified"
		}

		jobs = append(jobs, models.RawJob{
			"source":          l.Name(),
			"source_id":       posting.ID,
			"title":           posting.Text,
			"company":         titleCase(company),
			"location_raw":    location,
			"description":     description,
			"apply_url":       posting.HostedURL,
			"departments":     departments,
			"employment_type": strings.ToLower(commitment),
		})
	}
	return jobs, nil
}
