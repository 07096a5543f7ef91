// internal/workers/credit/score-predict/config.go
package scorepredict

import "time"

type Config struct {
	ModelVersion string
	CacheTTL     time.Duration
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		ModelVersion: "heuristic-v2.1",
		CacheTTL:     15 * time.Minute,
		Timeout:      10 * time.Second,
	}
}
