package collector

import (
	"context"
	"fmt"
	"strconv"

	"resumi/internal/config"
	"resumi/internal/logging"
	"resumi/pkg/models"
)

// greenhouseCompanies are companies with public Greenhouse boards
var greenhouseCompanies = []string{
	// US tech
	"airbnb", "stripe", "doordash", "robinhood", "coinbase",
	"gitlab", "databricks", "figma", "notion", "airtable",
	"plaid", "checkr", "gusto", "lattice", "verkada",

	// India
	"razorpay", "swiggy", "zomato", "cred", "meesho",

	// UAE
	"careem", "noon",
}

type greenhouseJob struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	AbsoluteURL string `json:"absolute_url"`
	Departments []struct {
		Name string `json:"name"`
	} `json:"departments"`
}

type greenhouseResponse struct {
	Jobs []greenhouseJob `json:"jobs"`
}

// GreenhouseCollector collects jobs from public Greenhouse board APIs
type GreenhouseCollector struct {
	client    *Client
	baseURL   string
	companies []string
}

func NewGreenhouseCollector(client *Client, cfg *config.Config) *GreenhouseCollector {
	return &GreenhouseCollector{
		client:    client,
		baseURL:   cfg.Collector.GreenhouseBaseURL,
		companies: greenhouseCompanies,
	}
}

func (g *GreenhouseCollector) Name() string {
	return "greenhouse"
}

// Collect fetches jobs board by board until maxJobs is reached. A failing
// board is logged and skipped; one bad company never fails the run.
func (g *GreenhouseCollector) Collect(ctx context.Context, maxJobs int) ([]models.RawJob, error) {
	logger := logging.GetGlobalLogger().WithField("source", g.Name())

	var allJobs []models.RawJob
	for _, company := range g.companies {
		if len(allJobs) >= maxJobs {
			break
		}
		if ctx.Err() != nil {
			return allJobs, ctx.Err()
		}

		jobs, err := g.fetchCompanyJobs(ctx, company)
		if err != nil {
			logger.Warn("Failed to collect company board", map[string]interface{}{
				"company": company,
				"error":   err.Error(),
			})
			continue
		}

		allJobs = append(allJobs, jobs...)
		logger.Debug("Collected company board", map[string]interface{}{
			"company": company,
			"jobs":    len(jobs),
		})
	}

	if len(allJobs) > maxJobs {
		allJobs = allJobs[:maxJobs]
	}
	return allJobs, nil
}

func (g *GreenhouseCollector) fetchCompanyJobs(ctx context.Context, company string) ([]models.RawJob, error) {
	url := fmt.Sprintf("%s/%s/jobs?content=true", g.baseURL, company)

	var resp greenhouseResponse
	if err := g.client.FetchJSON(ctx, g.Name(), url, &resp); err != nil {
		return nil, err
	}

	jobs := make([]models.RawJob, 0, len(resp.Jobs))
	for _, job := range resp.Jobs {
		departments := make([]string, 0, len(job.Departments))
		for _, dept := range job.Departments {
			if dept.Name != "" {
				departments = append(departments, dept.Name)
			}
		}

		jobs = append(jobs, models.RawJob{
			"source":          g.Name(),
			"source_id":       strconv.FormatInt(job.ID, 10),
			"title":           job.Title,
			"company":         titleCase(company),
			"location_raw":    job.Location.Name,
			"description":     CleanDescription(job.Content),
			"apply_url":       job.AbsoluteURL,
			"departments":     departments,
			"employment_type": "full-time",
		})
	}
	return jobs, nil
}
