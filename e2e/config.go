package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BaseURL string `envconfig:"E2E_BASE_URL"`
	// Room and tokens are printed by cmd/seed
	RoomID string `envconfig:"E2E_ROOM_ID"`
	TokenA string `envconfig:"E2E_TOKEN_A"`
	TokenB string `envconfig:"E2E_TOKEN_B"`
	// E2E_DEBUG_JSON allows dumping full HTTP request/response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
