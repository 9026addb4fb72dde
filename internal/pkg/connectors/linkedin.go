package connectors

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/env"
)

const defaultLinkedInBaseURL = "https://api.linkedin.com"

// LinkedInConnector reads sponsored content analytics from the Ad Analytics API.
type LinkedInConnector struct {
	BaseURL   string
	AccountID string
}

func NewLinkedInConnector() *LinkedInConnector {
	return &LinkedInConnector{
		BaseURL:   env.GetEnv("LINKEDIN_BASE_URL", defaultLinkedInBaseURL),
		AccountID: env.GetEnv("LINKEDIN_ACCOUNT_ID", ""),
	}
}

func (l *LinkedInConnector) Provider() string {
	return models.ProviderLinkedIn
}

type linkedinAnalytics struct {
	Elements []struct {
		Clicks      int64 `json:"clicks"`
		Impressions int64 `json:"impressions"`
	} `json:"elements"`
}

func (l *LinkedInConnector) FetchMetrics(ctx context.Context, accessToken string) ([]MetricSample, error) {
	url := fmt.Sprintf("%s/v2/adAnalytics?q=accounts&accounts=urn:li:sponsoredAccount:%s", l.BaseURL, l.AccountID)
	req, err := newAPIRequest(ctx, "GET", url, accessToken)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("linkedin analytics request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("linkedin analytics returned status %d", resp.StatusCode)
	}

	var analytics linkedinAnalytics
	if err := json.NewDecoder(resp.Body).Decode(&analytics); err != nil {
		return nil, fmt.Errorf("failed to decode linkedin analytics response: %v", err)
	}

	var clicks, impressions int64
	for _, el := range analytics.Elements {
		clicks += el.Clicks
		impressions += el.Impressions
	}

	return []MetricSample{
		{Name: "LinkedIn Clicks", Type: models.MetricTypeNumber, Value: strconv.FormatInt(clicks, 10)},
		{Name: "LinkedIn Impressions", Type: models.MetricTypeNumber, Value: strconv.FormatInt(impressions, 10)},
	}, nil
}
