package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeIMDB()
	c.normalizeTVMaze()
	if err := c.normalizeList(); err != nil {
		return err
	}
	c.normalizeNotifications()
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeIMDB() {
	c.IMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.IMDB.BaseURL), "/")
	if c.IMDB.BaseURL == "" {
		c.IMDB.BaseURL = defaultIMDBBaseURL
	}
	c.IMDB.UserAgent = strings.TrimSpace(c.IMDB.UserAgent)
	if c.IMDB.UserAgent == "" {
		c.IMDB.UserAgent = defaultIMDBUserAgent
	}
	if c.IMDB.TimeoutSeconds <= 0 {
		c.IMDB.TimeoutSeconds = defaultIMDBTimeoutSeconds
	}
}

func (c *Config) normalizeTVMaze() {
	c.TVMaze.BaseURL = strings.TrimRight(strings.TrimSpace(c.TVMaze.BaseURL), "/")
	if c.TVMaze.BaseURL == "" {
		c.TVMaze.BaseURL = defaultTVMazeBaseURL
	}
	if c.TVMaze.TimeoutSeconds <= 0 {
		c.TVMaze.TimeoutSeconds = defaultTVMazeTimeoutSeconds
	}
}

func (c *Config) normalizeList() error {
	c.List.Output = strings.TrimSpace(c.List.Output)
	if c.List.Output == "" {
		c.List.Output = defaultListOutput
	}
	expanded, err := expandPath(c.List.Output)
	if err != nil {
		return fmt.Errorf("list.output: %w", err)
	}
	c.List.Output = expanded
	return nil
}

func (c *Config) normalizeNotifications() {
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.NtfyTopic == "" {
		if value, ok := os.LookupEnv("ANTENNA_NTFY_TOPIC"); ok {
			c.Notifications.NtfyTopic = strings.TrimSpace(value)
		}
	}
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNotifyRequestTimeout
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Directory = strings.TrimSpace(c.Logging.Directory)
	if c.Logging.Directory != "" {
		expanded, err := expandPath(c.Logging.Directory)
		if err != nil {
			return fmt.Errorf("logging.directory: %w", err)
		}
		c.Logging.Directory = expanded
	}
	return nil
}
