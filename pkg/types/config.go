package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client-side timeout;
	// callers then rely on the request context.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "restaurant-lookup/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PlacesConfig holds settings for the place-search provider.
type PlacesConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the provider credential. It is required; a client cannot be
	// built without it.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL replaces the provider host and path prefix
	// (default https://maps.googleapis.com/maps/api/place).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// ServerConfig holds settings for the inbound HTTP endpoint.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// AllowedOrigins lists CORS origins. Empty means every origin.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
}

// StoreConfig holds settings for the records journal.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "data/restaurants.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Config groups all settings read from the config file.
type Config struct {
	Places PlacesConfig `json:"places" yaml:"places"`
	Server ServerConfig `json:"server" yaml:"server"`
	Store  StoreConfig  `json:"store" yaml:"store"`
}
