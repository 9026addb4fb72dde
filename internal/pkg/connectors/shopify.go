package connectors

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/env"
)

// ShopifyConnector reads order totals from the shop's Admin REST API. The shop
// domain comes from configuration because Shopify tokens are per-shop.
type ShopifyConnector struct {
	BaseURL string
}

func NewShopifyConnector() *ShopifyConnector {
	base := env.GetEnv("SHOPIFY_BASE_URL", "")
	if base == "" {
		shop := env.GetEnv("SHOPIFY_SHOP_NAME", "")
		base = fmt.Sprintf("https://%s.myshopify.com", shop)
	}
	return &ShopifyConnector{BaseURL: base}
}

func (s *ShopifyConnector) Provider() string {
	return models.ProviderShopify
}

type shopifyOrders struct {
	Orders []struct {
		TotalPrice string `json:"total_price"`
	} `json:"orders"`
}

func (s *ShopifyConnector) FetchMetrics(ctx context.Context, accessToken string) ([]MetricSample, error) {
	url := s.BaseURL + "/admin/api/2024-01/orders.json?status=any&limit=250"
	req, err := newAPIRequest(ctx, "GET", url, accessToken)
	if err != nil {
		return nil, err
	}
	// Shopify uses a custom token header instead of a bearer token
	req.Header.Del("Authorization")
	req.Header.Set("X-Shopify-Access-Token", accessToken)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shopify orders request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("shopify orders returned status %d", resp.StatusCode)
	}

	var orders shopifyOrders
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("failed to decode shopify orders response: %v", err)
	}

	var revenue float64
	for _, o := range orders.Orders {
		if v, err := strconv.ParseFloat(o.TotalPrice, 64); err == nil {
			revenue += v
		}
	}

	return []MetricSample{
		{Name: "Order Count", Type: models.MetricTypeNumber, Value: strconv.Itoa(len(orders.Orders))},
		{Name: "Order Revenue", Type: models.MetricTypeNumber, Value: strconv.FormatFloat(revenue, 'f', 2, 64)},
	}, nil
}
