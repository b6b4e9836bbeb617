// Package marmiton is a client for the Marmiton recipe API.
package marmiton

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
	mHttp "github.com/matt-dz/cookingpuppy/internal/http"
)

const DefaultBaseURL = "https://api-uno.marmiton.org/recipe"

var ErrEmptyID = errors.New("empty recipe id")

type Step struct {
	Text string `json:"text"`
}

type Servings struct {
	Count int `json:"count"`
}

type Item struct {
	IngredientQuantity float64 `json:"ingredientQuantity"`
	Name               string  `json:"name"`
	UnitName           string  `json:"unitName"`
}

type IngredientGroup struct {
	Items []Item `json:"items"`
}

// Record is the subset of a Marmiton recipe document the importer reads.
type Record struct {
	Title            string            `json:"title"`
	TotalTime        int               `json:"totalTime"` // seconds
	Steps            []Step            `json:"steps"`
	Servings         Servings          `json:"servings"`
	IngredientGroups []IngredientGroup `json:"ingredientGroups"`
}

type Client struct {
	http    mHttp.HTTPDoer
	baseURL string
}

// New returns a client fetching records from baseURL. An empty baseURL
// uses DefaultBaseURL.
func New(doer mHttp.HTTPDoer, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    doer,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (c *Client) recordURL(id string) string {
	return c.baseURL + "/" + url.PathEscape(id)
}

// Fetch retrieves the record with the given id.
func (c *Client) Fetch(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrEmptyID
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.recordURL(id), nil)
	if err != nil {
		return Record{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Record{}, fmt.Errorf("requesting recipe %s: %w", id, err)
	}
	if err := mHttp.ExpectStatus2xx(resp); err != nil {
		return Record{}, fmt.Errorf("requesting recipe %s: %w", id, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var record Record
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return Record{}, fmt.Errorf("decoding recipe %s: %w", id, err)
	}
	return record, nil
}
