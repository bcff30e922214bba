package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ofertas-api/internal/offer"
)

const (
	catalogCurrency = "USD"
	catalogMerchant = "Fake Store"
)

// catalogItem es el esquema estable del catálogo de respaldo.
type catalogItem struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}

// CatalogClient fetches the fixed fallback catalog. Unlike the shopping
// provider it has a stable schema, so its results come back already
// normalized. Errors are not recovered here: the catalog is the last resort
// and is allowed to fail loudly.
type CatalogClient struct {
	baseURL string
}

func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{baseURL: baseURL}
}

func (c *CatalogClient) fetch(ctx context.Context) ([]catalogItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var items []catalogItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return items, nil
}

// Search pulls the whole catalog (the upstream takes no query parameter) and
// filters locally by case-insensitive substring match on the title.
func (c *CatalogClient) Search(ctx context.Context, query string) ([]offer.Offer, error) {
	items, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	offers := make([]offer.Offer, 0)
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Title), q) {
			continue
		}

		price := item.Price
		currency := catalogCurrency
		merchant := catalogMerchant
		link := fmt.Sprintf("%s/products/%d", c.baseURL, item.ID)

		o := offer.Offer{
			Title:    item.Title,
			Price:    &price,
			Currency: &currency,
			Link:     &link,
			Merchant: &merchant,
			Raw:      item,
		}
		if item.Image != "" {
			image := item.Image
			o.Image = &image
		}
		offers = append(offers, o)
	}
	return offers, nil
}

// Titles returns every catalog title, for suggestion matching.
func (c *CatalogClient) Titles(ctx context.Context) ([]string, error) {
	items, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title)
	}
	return titles, nil
}
