package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/akazakov/jobtrack/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are given in whole seconds so config files stay plain.
type jsonConfig struct {
	APIBaseURL        string `json:"api_base_url"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
	StorePath         string `json:"store_path"`
}

// parseJSON overlays cfg with values loaded from the JSON file named by
// the -c/-config flag. When no file is named, nothing happens. Read or
// unmarshal errors panic, matching the flag parser's behavior: a config
// file that exists but cannot be used is a startup defect, not something
// to silently skip.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
}
