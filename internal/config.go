package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Host                   string        `env:"HOST,default=0.0.0.0"`
	Port                   int           `env:"PORT,default=5001"`
	LogLevel               string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath         string        `env:"BADGER_FILEPATH,required=true"`
	JWTSecret              string        `env:"JWT_SECRET,required=true"`
	NumberOfWorkers        int           `env:"NUMBER_OF_WORKERS,default=4"`
	RestartInterval        time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	ConnectionBufferSize   int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	SinkTimeout            time.Duration `env:"SINK_TIMEOUT,default=2s"`
	WriteWait              time.Duration `env:"WRITE_WAIT,default=10s"`
	PongWait               time.Duration `env:"PONG_WAIT,default=60s"`
	PingInterval           time.Duration `env:"PING_INTERVAL,default=54s"`
	MaxMessageSize         int64         `env:"MAX_MESSAGE_SIZE,default=8192"`
	InboundRate            float64       `env:"INBOUND_RATE,default=5"`
	InboundBurst           int           `env:"INBOUND_BURST,default=10"`
	AllowedOrigins         string        `env:"ALLOWED_ORIGINS"`
	JoinRequiresMembership bool          `env:"JOIN_REQUIRES_MEMBERSHIP,default=true"`
	CensoredWordsDir       string        `env:"CENSORED_WORDS_DIR"`
	CensorCharacter        string        `env:"CENSOR_CHARACTER,default=*"`
	NameCacheSize          int64         `env:"NAME_CACHE_SIZE,default=10000"`
	MaxTotalMessages       int           `env:"MAX_TOTAL_MESSAGES,default=10"`
	MaxSenderMessages      int           `env:"MAX_SENDER_MESSAGES,default=5"`
	ShutdownTimeout        time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	positives := map[string]int64{
		"PORT":                   int64(c.Port),
		"NUMBER_OF_WORKERS":      int64(c.NumberOfWorkers),
		"CONNECTION_BUFFER_SIZE": int64(c.ConnectionBufferSize),
		"MAX_MESSAGE_SIZE":       c.MaxMessageSize,
		"INBOUND_BURST":          int64(c.InboundBurst),
		"NAME_CACHE_SIZE":        c.NameCacheSize,
		"SINK_TIMEOUT":           int64(c.SinkTimeout),
		"WRITE_WAIT":             int64(c.WriteWait),
		"PONG_WAIT":              int64(c.PongWait),
		"PING_INTERVAL":          int64(c.PingInterval),
		"SHUTDOWN_TIMEOUT":       int64(c.ShutdownTimeout),
	}
	for name, value := range positives {
		if value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, value)
		}
	}
	if c.InboundRate <= 0 {
		return fmt.Errorf("INBOUND_RATE must be positive, got %v", c.InboundRate)
	}
	if c.PingInterval >= c.PongWait {
		return fmt.Errorf("PING_INTERVAL (%s) must be shorter than PONG_WAIT (%s)", c.PingInterval, c.PongWait)
	}
	// A room must be able to hold at least one message before closing.
	if c.MaxTotalMessages < 2 || c.MaxSenderMessages < 2 {
		return fmt.Errorf("MAX_TOTAL_MESSAGES and MAX_SENDER_MESSAGES must be at least 2, got %d and %d",
			c.MaxTotalMessages, c.MaxSenderMessages)
	}
	if _, err := CharacterRune(c.CensorCharacter); err != nil {
		return err
	}
	return nil
}

// Origins splits ALLOWED_ORIGINS, an empty list accepts every origin.
func (c Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
