package connectors

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/env"
)

const defaultMetaBaseURL = "https://graph.facebook.com"

// MetaConnector reads ad spend and impressions from the Marketing API insights
// endpoint of a single ad account.
type MetaConnector struct {
	BaseURL     string
	AdAccountID string
}

func NewMetaConnector() *MetaConnector {
	return &MetaConnector{
		BaseURL:     env.GetEnv("META_BASE_URL", defaultMetaBaseURL),
		AdAccountID: env.GetEnv("META_AD_ACCOUNT_ID", ""),
	}
}

func (m *MetaConnector) Provider() string {
	return models.ProviderMeta
}

type metaInsights struct {
	Data []struct {
		Spend       string `json:"spend"`
		Impressions string `json:"impressions"`
	} `json:"data"`
}

func (m *MetaConnector) FetchMetrics(ctx context.Context, accessToken string) ([]MetricSample, error) {
	url := fmt.Sprintf("%s/v19.0/act_%s/insights?fields=spend,impressions&date_preset=last_30d", m.BaseURL, m.AdAccountID)
	req, err := newAPIRequest(ctx, "GET", url, accessToken)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("meta insights request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("meta insights returned status %d", resp.StatusCode)
	}

	var insights metaInsights
	if err := json.NewDecoder(resp.Body).Decode(&insights); err != nil {
		return nil, fmt.Errorf("failed to decode meta insights response: %v", err)
	}

	var spend float64
	var impressions int64
	for _, row := range insights.Data {
		if v, err := strconv.ParseFloat(row.Spend, 64); err == nil {
			spend += v
		}
		if v, err := strconv.ParseInt(row.Impressions, 10, 64); err == nil {
			impressions += v
		}
	}

	return []MetricSample{
		{Name: "Ad Spend (30d)", Type: models.MetricTypeNumber, Value: strconv.FormatFloat(spend, 'f', 2, 64)},
		{Name: "Ad Impressions (30d)", Type: models.MetricTypeNumber, Value: strconv.FormatInt(impressions, 10)},
	}, nil
}
