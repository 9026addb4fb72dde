package connectors

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/env"
)

const defaultAnalyticsBaseURL = "https://analyticsdata.googleapis.com"

// GoogleAnalyticsConnector reads session and user totals from the GA4 Data API.
type GoogleAnalyticsConnector struct {
	BaseURL    string
	PropertyID string
}

func NewGoogleAnalyticsConnector() *GoogleAnalyticsConnector {
	return &GoogleAnalyticsConnector{
		BaseURL:    env.GetEnv("GA_BASE_URL", defaultAnalyticsBaseURL),
		PropertyID: env.GetEnv("GA_PROPERTY_ID", ""),
	}
}

func (g *GoogleAnalyticsConnector) Provider() string {
	return models.ProviderGoogleAnalytics
}

type analyticsReport struct {
	Rows []struct {
		MetricValues []struct {
			Value string `json:"value"`
		} `json:"metricValues"`
	} `json:"rows"`
}

func (g *GoogleAnalyticsConnector) FetchMetrics(ctx context.Context, accessToken string) ([]MetricSample, error) {
	url := fmt.Sprintf("%s/v1beta/properties/%s:runReport?metrics=sessions,totalUsers", g.BaseURL, g.PropertyID)
	req, err := newAPIRequest(ctx, "POST", url, accessToken)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google analytics request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("google analytics returned status %d", resp.StatusCode)
	}

	var report analyticsReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode google analytics response: %v", err)
	}

	var sessions, users int64
	for _, row := range report.Rows {
		if len(row.MetricValues) >= 2 {
			if v, err := strconv.ParseInt(row.MetricValues[0].Value, 10, 64); err == nil {
				sessions += v
			}
			if v, err := strconv.ParseInt(row.MetricValues[1].Value, 10, 64); err == nil {
				users += v
			}
		}
	}

	return []MetricSample{
		{Name: "Sessions", Type: models.MetricTypeNumber, Value: strconv.FormatInt(sessions, 10)},
		{Name: "Total Users", Type: models.MetricTypeNumber, Value: strconv.FormatInt(users, 10)},
	}, nil
}
