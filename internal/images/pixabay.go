// Package images provides the Pixabay search collaborator used to decorate
// exports with illustrative images. Absence of results is never an error:
// it degrades to "no image".
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultPixabayURL = "https://pixabay.com/api/"

// Image is one search hit.
type Image struct {
	ID         int    `json:"id"`
	PageURL    string `json:"pageURL"`
	Tags       string `json:"tags"`
	PreviewURL string `json:"previewURL"`
	WebURL     string `json:"webformatURL"`
	LargeURL   string `json:"largeImageURL"`
	Width      int    `json:"imageWidth"`
	Height     int    `json:"imageHeight"`
	User       string `json:"user"`
}

// Client searches Pixabay. A client with an empty API key is valid and
// always returns empty results.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultPixabayURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// Search returns up to perPage photo results for a topic. The topic is
// reduced to search keywords first.
func (c *Client) Search(ctx context.Context, topic string, perPage int) ([]Image, error) {
	if c.apiKey == "" {
		return nil, nil
	}
	if perPage <= 0 {
		perPage = 10
	}

	query := ExtractKeywords(topic)
	if len(query) > 100 {
		query = query[:100]
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("q", query)
	q.Set("image_type", "photo")
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("safesearch", "true")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pixabay: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pixabay status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed struct {
		Hits []Image `json:"hits"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return parsed.Hits, nil
}

// Random picks one result for a topic, falling back to a generic query when
// the topic yields nothing. Returns nil when no image is available.
func (c *Client) Random(ctx context.Context, topic string) (*Image, error) {
	hits, err := c.Search(ctx, topic, 10)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		hits, err = c.Search(ctx, "technology business", 10)
		if err != nil || len(hits) == 0 {
			return nil, err
		}
	}
	img := hits[rand.IntN(len(hits))]
	return &img, nil
}

// genericTerms are dropped from topics before searching: they describe the
// document, not its subject, and poison image relevance.
var genericTerms = map[string]bool{
	"professional": true, "presentation": true, "slide": true, "corporate": true,
	"business": true, "technical": true, "report": true, "document": true,
	"paper": true, "research": true, "academic": true, "conference": true,
	"thesis": true, "dissertation": true, "study": true, "analysis": true,
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true,
}

// ExtractKeywords reduces a document topic to an image search query.
func ExtractKeywords(topic string) string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(topic)) {
		if len(w) > 3 && !genericTerms[w] {
			words = append(words, w)
		}
		if len(words) == 8 {
			break
		}
	}
	return strings.TrimSpace(strings.Join(words, " ") + " technology")
}
