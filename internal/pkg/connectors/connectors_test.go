package connectors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joegirolamo/obsidian-sub002/app/models"
)

func TestForProvider(t *testing.T) {
	t.Parallel()

	for _, provider := range []string{
		models.ProviderGoogleAnalytics,
		models.ProviderMeta,
		models.ProviderLinkedIn,
		models.ProviderShopify,
	} {
		conn, err := ForProvider(provider)
		require.NoError(t, err)
		assert.Equal(t, provider, conn.Provider())
	}

	_, err := ForProvider("myspace")
	assert.Error(t, err)
}

func TestGoogleAnalyticsFetchMetrics(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"rows":[
			{"metricValues":[{"value":"120"},{"value":"80"}]},
			{"metricValues":[{"value":"30"},{"value":"20"}]}
		]}`))
	}))
	defer srv.Close()

	conn := &GoogleAnalyticsConnector{BaseURL: srv.URL, PropertyID: "12345"}
	samples, err := conn.FetchMetrics(context.Background(), "test-token")
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, "Sessions", samples[0].Name)
	assert.Equal(t, "150", samples[0].Value)
	assert.Equal(t, "Total Users", samples[1].Name)
	assert.Equal(t, "100", samples[1].Value)
}

func TestMetaFetchMetrics(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"spend":"100.50","impressions":"5000"},
			{"spend":"49.50","impressions":"2500"}
		]}`))
	}))
	defer srv.Close()

	conn := &MetaConnector{BaseURL: srv.URL, AdAccountID: "act123"}
	samples, err := conn.FetchMetrics(context.Background(), "test-token")
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, "150.00", samples[0].Value)
	assert.Equal(t, "7500", samples[1].Value)
}

func TestShopifyFetchMetricsUsesTokenHeader(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "shop-token", r.Header.Get("X-Shopify-Access-Token"))
		w.Write([]byte(`{"orders":[{"total_price":"19.99"},{"total_price":"5.01"}]}`))
	}))
	defer srv.Close()

	conn := &ShopifyConnector{BaseURL: srv.URL}
	samples, err := conn.FetchMetrics(context.Background(), "shop-token")
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, "2", samples[0].Value)
	assert.Equal(t, "25.00", samples[1].Value)
}

func TestConnectorErrorOnBadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	conn := &LinkedInConnector{BaseURL: srv.URL, AccountID: "1"}
	_, err := conn.FetchMetrics(context.Background(), "expired-token")
	assert.Error(t, err)
}
