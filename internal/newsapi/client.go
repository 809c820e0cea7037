// Package newsapi is a minimal client for the NewsAPI /v2/everything
// endpoint: one request per call, no retries, no pagination beyond the
// first page.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/newsmood/newsmood/internal/models"
	"github.com/newsmood/newsmood/internal/processing"
)

// Client calls NewsAPI with a fixed credential.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// New builds a client against baseURL (https://newsapi.org in production,
// a test server in tests).
func New(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// Everything fetches one page of recent English-language articles matching
// query, sorted by publication time, covering the last 24 hours. Articles
// come back in API response order.
func (c *Client) Everything(ctx context.Context, query string, pageSize int) ([]models.Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("from", c.now().UTC().AddDate(0, 0, -1).Format("2006-01-02"))
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(pageSize))

	endpoint := c.baseURL + "/v2/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw everythingResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	if resp.StatusCode != http.StatusOK || raw.Status == "error" {
		if raw.Message != "" {
			return nil, fmt.Errorf("newsapi request failed: %s (%s)", raw.Message, raw.Code)
		}
		return nil, fmt.Errorf("newsapi request failed: %s", resp.Status)
	}

	articles := make([]models.Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		id := processing.BuildArticleID(item.Title, item.URL)
		if id == "" {
			id = uuid.NewString()
		}

		articles = append(articles, models.Article{
			ID:          id,
			Title:       item.Title,
			Source:      item.Source.Name,
			URL:         item.URL,
			Description: item.Description,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

type everythingResponse struct {
	Status       string        `json:"status"`
	TotalResults int           `json:"totalResults"`
	Articles     []articleItem `json:"articles"`

	// Populated on error responses.
	Code    string `json:"code"`
	Message string `json:"message"`
}

type articleItem struct {
	Source      sourceItem `json:"source"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	PublishedAt string     `json:"publishedAt"`
}

type sourceItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
