package emass

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bugraisin/emass-tui/internal/filter"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBase {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBase)
	}

	u, err = parseBaseURL("https://emass.example.com/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_SearchEncodesEndpointAndParams(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotQuery url.Values
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Listing{{ID: "42", Title: "Daire"}})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	params := url.Values{}
	params.Set("city", "İstanbul")
	params.Set("minPrice", "500000")

	listings, err := c.Search(ctx, filter.House, params)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != "42" {
		t.Fatalf("Search = %#v, want 1 listing id=42", listings)
	}
	if gotPath != "/api/listings/search/house" {
		t.Fatalf("path = %q, want /api/listings/search/house", gotPath)
	}
	if gotQuery.Get("city") != "İstanbul" || gotQuery.Get("minPrice") != "500000" {
		t.Fatalf("query = %v, want params encoded", gotQuery)
	}
	if !strings.HasPrefix(gotUserAgent, "emass-tui/") {
		t.Fatalf("User-Agent = %q, want emass-tui/*", gotUserAgent)
	}
}

func TestClient_ListingAndListings(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/listings/7":
			_ = json.NewEncoder(w).Encode(Listing{ID: "7", Title: "Villa"})
		case "/api/listings/get-all":
			_ = json.NewEncoder(w).Encode([]Listing{{ID: "1"}, {ID: "2"}})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	listing, err := c.Listing(context.Background(), "7")
	if err != nil {
		t.Fatalf("Listing returned error: %v", err)
	}
	if listing.Title != "Villa" {
		t.Fatalf("Listing = %#v, want Villa", listing)
	}

	if _, err := c.Listing(context.Background(), " "); err == nil {
		t.Fatalf("Listing with blank id returned nil error, want error")
	}

	all, err := c.Listings(context.Background())
	if err != nil {
		t.Fatalf("Listings returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Listings = %#v, want 2", all)
	}
}

func TestClient_FavoritesEndpoints(t *testing.T) {
	t.Parallel()

	var gotMethods []string
	var gotCheckQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethods = append(gotMethods, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/favorites" && r.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode([]Listing{{ID: "9"}})
		case r.URL.Path == "/api/favorites/9" && r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
		case r.URL.Path == "/api/favorites/9" && r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case r.URL.Path == "/api/favorites/9/check":
			gotCheckQuery = r.URL.Query()
			_, _ = w.Write([]byte("true"))
		case r.URL.Path == "/api/favorites/count/9":
			_, _ = w.Write([]byte("12"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	favs, err := c.Favorites(ctx, "u1")
	if err != nil {
		t.Fatalf("Favorites returned error: %v", err)
	}
	if len(favs) != 1 || favs[0].ID != "9" {
		t.Fatalf("Favorites = %#v, want listing 9", favs)
	}

	if err := c.AddFavorite(ctx, "9"); err != nil {
		t.Fatalf("AddFavorite returned error: %v", err)
	}
	if err := c.RemoveFavorite(ctx, "9"); err != nil {
		t.Fatalf("RemoveFavorite returned error: %v", err)
	}

	favorited, err := c.IsFavorite(ctx, "9", "u1")
	if err != nil {
		t.Fatalf("IsFavorite returned error: %v", err)
	}
	if !favorited {
		t.Fatalf("IsFavorite = false, want true")
	}
	if gotCheckQuery.Get("userId") != "u1" {
		t.Fatalf("check query = %v, want userId=u1", gotCheckQuery)
	}

	count, err := c.FavoriteCount(ctx, "9")
	if err != nil {
		t.Fatalf("FavoriteCount returned error: %v", err)
	}
	if count != 12 {
		t.Fatalf("FavoriteCount = %d, want 12", count)
	}

	want := []string{
		"GET /api/favorites",
		"POST /api/favorites/9",
		"DELETE /api/favorites/9",
		"GET /api/favorites/9/check",
		"GET /api/favorites/count/9",
	}
	if len(gotMethods) != len(want) {
		t.Fatalf("requests = %v, want %v", gotMethods, want)
	}
	for i := range want {
		if gotMethods[i] != want[i] {
			t.Fatalf("request #%d = %q, want %q", i, gotMethods[i], want[i])
		}
	}
}

func TestClient_AuthSendsJSONBodyAndBearer(t *testing.T) {
	t.Parallel()

	var gotBody map[string]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_ = json.NewEncoder(w).Encode(Session{UserID: "u1", Token: "tok"})
		case "/api/listings/get-all":
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode([]Listing{})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	sess, err := c.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if !sess.LoggedIn() {
		t.Fatalf("session = %#v, want logged in", sess)
	}
	if gotBody["email"] != "a@b.c" || gotBody["password"] != "secret" {
		t.Fatalf("login body = %v", gotBody)
	}

	c.SetToken(sess.Token)
	if _, err := c.Listings(context.Background()); err != nil {
		t.Fatalf("Listings returned error: %v", err)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("Authorization = %q, want Bearer tok", gotAuth)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/listings/get-all":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Listings(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("Listings error = %v, want decode response error", err)
	}

	_, err = c.Listing(context.Background(), "1")
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("Listing error = %v, want status 500 error", err)
	}
}

func TestListing_ThumbnailSourceAndTimestamps(t *testing.T) {
	l := Listing{CreatedAt: "2024-01-01T00:00:00Z", Photos: []Photo{{URL: "p"}}}
	if got := l.ThumbnailSource(); got != "p" {
		t.Fatalf("ThumbnailSource = %q, want p", got)
	}
	if l.ParsedCreatedAt().IsZero() {
		t.Fatalf("ParsedCreatedAt returned zero time for RFC3339 input")
	}
	if !(Listing{CreatedAt: "garbage"}).ParsedCreatedAt().IsZero() {
		t.Fatalf("ParsedCreatedAt should return zero time for junk input")
	}
}
