package config

import (
	"os"
	"strings"

	"github.com/vitalvas/oasgen/openapi"
)

const (
	EnvAppName           = "APP_NAME"
	EnvAppVersion        = "APP_VERSION"
	EnvAppURL            = "APP_URL"
	EnvAppTermsOfService = "APP_TERMS_OF_SERVICE"
	EnvAppDescription    = "APP_DESCRIPTION"
	EnvContactName       = "CONTACT_NAME"
	EnvContactEmail      = "CONTACT_EMAIL"
)

// InfoConfig holds the document info object and the server URL.
type InfoConfig struct {
	Title          string `toml:"title"`
	Version        string `toml:"version"`
	Description    string `toml:"description"`
	TermsOfService string `toml:"terms_of_service"`
	URL            string `toml:"url"`
	ContactName    string `toml:"contact_name"`
	ContactEmail   string `toml:"contact_email"`

	// ContactURL defaults to URL + "/contact".
	ContactURL string `toml:"contact_url"`
}

// Finalize applies defaults and environment variable overrides.
func (c *InfoConfig) Finalize() {
	c.loadDefaults()
	c.loadEnv()
	if c.ContactURL == "" {
		c.ContactURL = strings.TrimSuffix(c.URL, "/") + "/contact"
	}
}

// Merge overwrites non-zero fields from overlay.
func (c *InfoConfig) Merge(overlay *InfoConfig) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.TermsOfService != "" {
		c.TermsOfService = overlay.TermsOfService
	}
	if overlay.URL != "" {
		c.URL = overlay.URL
	}
	if overlay.ContactName != "" {
		c.ContactName = overlay.ContactName
	}
	if overlay.ContactEmail != "" {
		c.ContactEmail = overlay.ContactEmail
	}
	if overlay.ContactURL != "" {
		c.ContactURL = overlay.ContactURL
	}
}

// Info returns the OpenAPI info object.
func (c *InfoConfig) Info() openapi.Info {
	return openapi.Info{
		Title:   c.Title,
		Version: c.Version,
		Contact: &openapi.Contact{
			Name:  c.ContactName,
			URL:   c.ContactURL,
			Email: c.ContactEmail,
		},
		TermsOfService: c.TermsOfService,
		Description:    c.Description,
	}
}

// Servers returns the single server entry built from URL.
func (c *InfoConfig) Servers() []openapi.Server {
	return []openapi.Server{{URL: c.URL}}
}

func (c *InfoConfig) loadDefaults() {
	if c.Title == "" {
		c.Title = "Masonite OpenAPI App"
	}
	if c.Version == "" {
		c.Version = "testing"
	}
	if c.Description == "" {
		c.Description = "Masonite OpenAPI Specification"
	}
	if c.TermsOfService == "" {
		c.TermsOfService = "/contact"
	}
	if c.URL == "" {
		c.URL = "http://localhost:8000"
	}
	if c.ContactName == "" {
		c.ContactName = "John Doe"
	}
	if c.ContactEmail == "" {
		c.ContactEmail = "john@example.com"
	}
}

func (c *InfoConfig) loadEnv() {
	if v := os.Getenv(EnvAppName); v != "" {
		c.Title = v
	}
	if v := os.Getenv(EnvAppVersion); v != "" {
		c.Version = v
	}
	if v := os.Getenv(EnvAppDescription); v != "" {
		c.Description = v
	}
	if v := os.Getenv(EnvAppTermsOfService); v != "" {
		c.TermsOfService = v
	}
	if v := os.Getenv(EnvAppURL); v != "" {
		c.URL = v
	}
	if v := os.Getenv(EnvContactName); v != "" {
		c.ContactName = v
	}
	if v := os.Getenv(EnvContactEmail); v != "" {
		c.ContactEmail = v
	}
}
