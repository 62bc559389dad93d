package report

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sitebook/backend/internal/finance"
)

// DefaultLocale is used when neither LOCALE nor the organization set one.
const DefaultLocale = "en"

// Config holds the server wide defaults for computing reports.
type Config struct {
	Location *time.Location // Defines which calendar day a timestamp falls on
	Locale   string         // Label language for organizations without a locale
}

// ConfigFromEnv reads the configuration from the TIMEZONE and LOCALE
// environment variables.
//
// An unknown time zone is logged and the local time zone is used instead.
func ConfigFromEnv() Config {
	config := Config{
		Location: time.Local,
		Locale:   DefaultLocale,
	}

	if name := os.Getenv("TIMEZONE"); name != "" {
		location, err := time.LoadLocation(name)
		if err != nil {
			log.Warn().Str("timezone", name).Err(err).Msg("Unknown time zone, using local time")
		} else {
			config.Location = location
		}
	}

	if locale := os.Getenv("LOCALE"); locale != "" {
		config.Locale = locale
	}

	return config
}

// Language returns the label language the default locale resolves to.
func (c Config) Language() string {
	return finance.NewLabeler(c.Locale).Language().String()
}
