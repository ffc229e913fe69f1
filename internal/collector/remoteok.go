package collector

import (
	"context"
	"encoding/json"

	"resumi/internal/config"
	"resumi/internal/logging"
	"resumi/pkg/models"
)

type remoteOKJob struct {
	ID          json.Number `json:"id"`
	Position    string      `json:"position"`
	Company     string      `json:"company"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	Tags        []string    `json:"tags"`
}

// RemoteOKCollector collects jobs from the RemoteOK public API
type RemoteOKCollector struct {
	client  *Client
	baseURL string
}

func NewRemoteOKCollector(client *Client, cfg *config.Config) *RemoteOKCollector {
	return &RemoteOKCollector{
		client:  client,
		baseURL: cfg.Collector.RemoteOKBaseURL,
	}
}

func (r *RemoteOKCollector) Name() string {
	return "remoteok"
}

// Collect fetches the full feed in one request. The first element of the
// response is API metadata and is skipped.
func (r *RemoteOKCollector) Collect(ctx context.Context, maxJobs int) ([]models.RawJob, error) {
	var feed []json.RawMessage
	if err := r.client.FetchJSON(ctx, r.Name(), r.baseURL, &feed); err != nil {
		return nil, err
	}

	if len(feed) <= 1 {
		return nil, nil
	}

	logger := logging.GetGlobalLogger().WithField("source", r.Name())

	jobs := make([]models.RawJob, 0, len(feed)-1)
	for _, raw := range feed[1:] {
		if len(jobs) >= maxJobs {
			break
		}

		var job remoteOKJob
		if err := json.Unmarshal(raw, &job); err != nil {
			logger.Debug("Skipping malformed feed entry", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}

		location := job.Location
		if location == "" {
			location = "Remote"
		}

		var departments []string
		if len(job.Tags) > 0 {
			departments = []string{job.Tags[0]}
		}

		jobs = append(jobs, models.RawJob{
			"source":          r.Name(),
			"source_id":       job.ID.String(),
			"title":           job.Position,
			"company":         job.Company,
			"location_raw":    location,
			"description":     CleanDescription(job.Description),
			"apply_url":       job.URL,
			"departments":     departments,
			"employment_type": "full-time",
			"tags":            job.Tags,
		})
	}

	logger.Info("Collected feed", map[string]interface{}{"jobs": len(jobs)})
	return jobs, nil
}
