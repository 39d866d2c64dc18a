package model

// NewsRequest holds the raw query parameters of GET /api/news.
// Page is kept as text so the service can reject malformed values.
type NewsRequest struct {
	Category string
	Search   string
	Page     string
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status                string `json:"status"`
	UpstreamKeyConfigured bool   `json:"upstream_key_configured"`
}
