package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config contains runtime configuration required by the service.
type Config struct {
	DBURL string
	Addr  string

	// AdminKey protects the admin-only endpoints (X-Admin-Key header).
	AdminKey string

	// MaxGuests caps the party size accepted on a submission.
	MaxGuests int

	// CookieSecure marks the session cookie Secure; enable behind HTTPS.
	CookieSecure bool

	// Spotify client-credentials pair. Empty disables the token endpoint.
	SpotifyClientID     string
	SpotifyClientSecret string

	// Telegram notification target for new confirmations. Empty disables it.
	TelegramBotToken string
	TelegramChatID   int64

	Wedding Wedding

	// Themes the site offers; preference updates validate against this list.
	Themes []string
}

// Wedding holds the celebration details served to the informational pages.
type Wedding struct {
	Couple   string `json:"couple"`
	Date     string `json:"date"`
	Venue    string `json:"venue"`
	City     string `json:"city"`
	Schedule string `json:"schedule"`
}

// maxGuestsDefault bounds guests so a buggy client cannot corrupt the totals.
const maxGuestsDefault = 20

// Load reads required values from environment variables.
// DB_URL is mandatory; everything else has a local-dev fallback.
func Load() (Config, error) {
	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return Config{}, errors.New("DB_URL required")
	}

	var chatID int64
	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, errors.New("TELEGRAM_CHAT_ID must be an integer")
		}
		chatID = parsed
	}

	cookieSecure := false
	if raw := strings.TrimSpace(os.Getenv("COOKIE_SECURE")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, errors.New("COOKIE_SECURE must be a boolean")
		}
		cookieSecure = parsed
	}

	themes := strings.Split(getEnv("THEMES", "classico,romantico,noturno"), ",")
	for i := range themes {
		themes[i] = strings.TrimSpace(themes[i])
	}

	return Config{
		DBURL: dbURL,
		Addr:  getEnv("ADDR", ":8080"),

		// Local dev fallback so the service runs out-of-the-box.
		AdminKey: getEnv("ADMIN_KEY", "admin-key-123"),

		MaxGuests: maxGuestsDefault,

		CookieSecure: cookieSecure,

		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   chatID,

		Wedding: Wedding{
			Couple:   getEnv("WEDDING_COUPLE", "Ana & Rafael"),
			Date:     getEnv("WEDDING_DATE", "2026-10-17"),
			Venue:    getEnv("WEDDING_VENUE", "Espaço Jardim das Acácias"),
			City:     getEnv("WEDDING_CITY", "Belo Horizonte"),
			Schedule: getEnv("WEDDING_SCHEDULE", "16:00 cerimônia, 18:00 recepção, 20:00 festa"),
		},

		Themes: themes,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
