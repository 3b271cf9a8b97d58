package emass

import "time"

// Listing mirrors a classified record as returned by the listings API.
// Prices are decimal strings so no precision is lost in transit.
type Listing struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        string  `json:"price"`
	ListingType  string  `json:"listingType"`
	PropertyType string  `json:"propertyType"`
	Subtype      string  `json:"subtype"`
	City         string  `json:"city"`
	District     string  `json:"district"`
	Neighborhood string  `json:"neighborhood"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	ImageURL     string  `json:"imageUrl"`
	Image        string  `json:"image"`
	Photos       []Photo `json:"photos"`
	CreatedAt    string  `json:"createdAt"`
}

// Photo is one gallery image of a listing.
type Photo struct {
	URL string `json:"url"`
}

// ThumbnailSource returns the best available image URL, falling back through
// thumbnail, imageUrl, image, and finally the first photo.
func (l Listing) ThumbnailSource() string {
	if l.ThumbnailURL != "" {
		return l.ThumbnailURL
	}
	if l.ImageURL != "" {
		return l.ImageURL
	}
	if l.Image != "" {
		return l.Image
	}
	if len(l.Photos) > 0 {
		return l.Photos[0].URL
	}
	return ""
}

// ParsedCreatedAt returns the creation timestamp as time.Time when possible.
func (l Listing) ParsedCreatedAt() time.Time {
	return parseTime(l.CreatedAt)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// Session is the payload returned by the auth endpoints.
type Session struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// LoggedIn reports whether the session carries usable credentials.
func (s Session) LoggedIn() bool {
	return s.UserID != "" && s.Token != ""
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
