package connectors

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/joegirolamo/obsidian-sub002/app/models"
)

// MetricSample is one metric value pulled from an external provider. Name matches
// the upsert key on the metrics table, so repeated syncs update in place.
type MetricSample struct {
	Name  string
	Type  string
	Value string
}

// Connector reads a small set of reporting metrics from one provider API using a
// previously granted OAuth access token.
type Connector interface {
	Provider() string
	FetchMetrics(ctx context.Context, accessToken string) ([]MetricSample, error)
}

var httpClient = &http.Client{Timeout: 15 * time.Second}

// ForProvider returns the connector for a provider name, matching the provider
// names stored on tools and tool connections.
func ForProvider(provider string) (Connector, error) {
	switch provider {
	case models.ProviderGoogleAnalytics:
		return NewGoogleAnalyticsConnector(), nil
	case models.ProviderMeta:
		return NewMetaConnector(), nil
	case models.ProviderLinkedIn:
		return NewLinkedInConnector(), nil
	case models.ProviderShopify:
		return NewShopifyConnector(), nil
	default:
		return nil, fmt.Errorf("no connector for provider %s", provider)
	}
}

func newAPIRequest(ctx context.Context, method, url, accessToken string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
