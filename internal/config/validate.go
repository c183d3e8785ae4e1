package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// maxListCount matches the largest page size the listing endpoint serves.
const maxListCount = 250

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateIMDB(); err != nil {
		return err
	}
	if err := c.validateTVMaze(); err != nil {
		return err
	}
	if err := c.validateList(); err != nil {
		return err
	}
	if err := c.validateNotifications(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateIMDB() error {
	if err := ensureHTTPURL("imdb.base_url", c.IMDB.BaseURL); err != nil {
		return err
	}
	if strings.TrimSpace(c.IMDB.UserAgent) == "" {
		return errors.New("imdb.user_agent must be set")
	}
	if c.IMDB.TimeoutSeconds <= 0 {
		return errors.New("imdb.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateTVMaze() error {
	if err := ensureHTTPURL("tvmaze.base_url", c.TVMaze.BaseURL); err != nil {
		return err
	}
	if c.TVMaze.TimeoutSeconds <= 0 {
		return errors.New("tvmaze.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateList() error {
	if c.List.Count < 1 || c.List.Count > maxListCount {
		return fmt.Errorf("list.count must be between 1 and %d", maxListCount)
	}
	if strings.TrimSpace(c.List.Output) == "" {
		return errors.New("list.output must be set")
	}
	return nil
}

func (c *Config) validateNotifications() error {
	if c.Notifications.RequestTimeout <= 0 {
		return errors.New("notifications.request_timeout must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

func ensureHTTPURL(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must be set", key)
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", key, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https", key)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s must include a host", key)
	}
	return nil
}
