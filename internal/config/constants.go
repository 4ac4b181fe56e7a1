package config

import "time"

const (
	envConfigPath = "GAMESCOUT_CONFIG"
	envDotenvPath = "GAMESCOUT_DOTENV"

	defaultDotenvPath = ".env"

	defaultPort              = "4000"
	defaultRAWGBaseURL       = "https://api.rawg.io/api"
	defaultCheapSharkBaseURL = "https://www.cheapshark.com/api/1.0"
	defaultHTTPTimeout       = 10 * time.Second
	defaultLogLevel          = "info"
	defaultLogFormat         = "json"
	defaultMetricsPort       = "9090"
	defaultServiceName       = "gamescout-service"
)
