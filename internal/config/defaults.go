package config

const (
	defaultIMDBBaseURL          = "https://www.imdb.com"
	defaultIMDBUserAgent        = "Mozilla/5.0 (compatible; antenna/0.1)"
	defaultIMDBTimeoutSeconds   = 15
	defaultTVMazeBaseURL        = "https://api.tvmaze.com"
	defaultTVMazeTimeoutSeconds = 10
	defaultListCount            = 25
	defaultListOutput           = "top_25.json"
	defaultNotifyRequestTimeout = 10
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		IMDB: IMDB{
			BaseURL:        defaultIMDBBaseURL,
			UserAgent:      defaultIMDBUserAgent,
			TimeoutSeconds: defaultIMDBTimeoutSeconds,
		},
		TVMaze: TVMaze{
			BaseURL:        defaultTVMazeBaseURL,
			TimeoutSeconds: defaultTVMazeTimeoutSeconds,
		},
		List: List{
			Count:  defaultListCount,
			Output: defaultListOutput,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyRequestTimeout,
			Generated:      true,
			Errors:         true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
