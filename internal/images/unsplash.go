package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const defaultEndpoint = "https://api.unsplash.com"

// Photo is one image-search candidate.
type Photo struct {
	ID          string
	FullURL     string
	ThumbURL    string
	Width       int
	Height      int
	Description string
}

// Client talks to an Unsplash-compatible photo search API. Searches
// are rate limited client-side (the free tier is 50 requests/hour) and
// cached per query so repeated generations with similar prompts do not
// burn quota.
type Client struct {
	accessKey  string
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *gocache.Cache
}

// NewClient creates a photo search client. endpoint may be empty to
// use the public API.
func NewClient(accessKey, endpoint string) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		accessKey: accessKey,
		endpoint:  endpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 3),
		cache:   gocache.New(10*time.Minute, 30*time.Minute),
	}
}

type searchResponse struct {
	Results []struct {
		ID          string `json:"id"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		Description string `json:"description"`
		URLs        struct {
			Regular string `json:"regular"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
	} `json:"results"`
}

// Search returns up to count landscape photos for a query.
func (c *Client) Search(ctx context.Context, query string, count int) ([]Photo, error) {
	if c.accessKey == "" {
		return nil, fmt.Errorf("image search: no access key configured")
	}

	cacheKey := query + "|" + strconv.Itoa(count)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]Photo), nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("image search rate limit: %w", err)
	}

	apiURL := fmt.Sprintf("%s/search/photos?query=%s&per_page=%d&orientation=landscape",
		c.endpoint, url.QueryEscape(query), count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("image search request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image search call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image search returned status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("image search decode: %w", err)
	}

	photos := make([]Photo, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		photos = append(photos, Photo{
			ID:          r.ID,
			FullURL:     r.URLs.Regular,
			ThumbURL:    r.URLs.Thumb,
			Width:       r.Width,
			Height:      r.Height,
			Description: r.Description,
		})
	}

	c.cache.Set(cacheKey, photos, gocache.DefaultExpiration)
	return photos, nil
}
