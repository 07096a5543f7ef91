// internal/workers/credit/risk-breakdown/config.go
package riskbreakdown

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
