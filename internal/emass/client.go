package emass

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bugraisin/emass-tui/internal/filter"
)

// API defines the listing and favorites operations the UI consumes.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	Search(ctx context.Context, endpoint filter.Endpoint, params url.Values) ([]Listing, error)
	Listing(ctx context.Context, id string) (*Listing, error)
	Listings(ctx context.Context) ([]Listing, error)

	Favorites(ctx context.Context, userID string) ([]Listing, error)
	AddFavorite(ctx context.Context, listingID string) error
	RemoveFavorite(ctx context.Context, listingID string) error
	IsFavorite(ctx context.Context, listingID, userID string) (bool, error)
	FavoriteCount(ctx context.Context, listingID string) (int64, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the emass HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	token     string
}

const (
	defaultAPIBase   = "127.0.0.1:8080"
	defaultUserAgent = "emass-tui/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given API base URL or host:port value.
func NewClient(apiBase string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// SetToken attaches a bearer token to subsequent requests. An empty token
// reverts to anonymous requests.
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// Search runs a compiled filter against one of the six search sub-resources.
func (c *Client) Search(ctx context.Context, endpoint filter.Endpoint, params url.Values) ([]Listing, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: filter.SearchPath(endpoint), RawQuery: params.Encode()}
	var payload []Listing
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Listing retrieves a single listing by id.
func (c *Client) Listing(ctx context.Context, id string) (*Listing, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("listing id required")
	}
	var payload Listing
	if err := c.do(ctx, http.MethodGet, "/api/listings/"+id, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Listings retrieves the unfiltered listing collection.
func (c *Client) Listings(ctx context.Context) ([]Listing, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Listing
	if err := c.do(ctx, http.MethodGet, "/api/listings/get-all", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Favorites retrieves the user's favorite listings.
func (c *Client) Favorites(ctx context.Context, userID string) ([]Listing, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("userId", userID)
	rel := &url.URL{Path: "/api/favorites", RawQuery: values.Encode()}
	var payload []Listing
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// AddFavorite marks a listing as favorite for the authenticated user.
func (c *Client) AddFavorite(ctx context.Context, listingID string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/api/favorites/"+listingID, nil)
}

// RemoveFavorite removes a listing from the authenticated user's favorites.
func (c *Client) RemoveFavorite(ctx context.Context, listingID string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, "/api/favorites/"+listingID, nil)
}

// IsFavorite reports the server-side favorite status of a listing.
func (c *Client) IsFavorite(ctx context.Context, listingID, userID string) (bool, error) {
	if c == nil {
		return false, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("userId", userID)
	rel := &url.URL{Path: "/api/favorites/" + listingID + "/check", RawQuery: values.Encode()}
	var payload bool
	if err := c.doURL(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return false, err
	}
	return payload, nil
}

// FavoriteCount returns how many users favorited a listing.
func (c *Client) FavoriteCount(ctx context.Context, listingID string) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}
	var payload int64
	if err := c.do(ctx, http.MethodGet, "/api/favorites/count/"+listingID, &payload); err != nil {
		return 0, err
	}
	return payload, nil
}

// Login authenticates and returns the resulting session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Session
	rel := &url.URL{Path: "/api/auth/login"}
	if err := c.doURL(ctx, http.MethodPost, rel, loginRequest{Email: email, Password: password}, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Register creates an account and returns the resulting session.
func (c *Client) Register(ctx context.Context, username, email, password string) (*Session, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Session
	rel := &url.URL{Path: "/api/auth/register"}
	req := registerRequest{Username: username, Email: email, Password: password}
	if err := c.doURL(ctx, http.MethodPost, rel, req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, nil, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body any, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
