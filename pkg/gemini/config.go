package gemini

import (
	"errors"
	"net/http"
)

// Config holds Gemini client configuration.
type Config struct {
	APIKey      string
	Model       string
	APIURL      string
	Temperature float64
	HTTPClient  *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("gemini: api key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}
