package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment         string        `mapstructure:"ENVIRONMENT"`
	AllowedOrigins      []string      `mapstructure:"ALLOWED_ORIGINS"`
	DatabaseURL         string        `mapstructure:"DATABASE_URL"`
	HTTPServerAddress   string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSecretKey      string        `mapstructure:"TOKEN_SECRET_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	GoogleClientID      string        `mapstructure:"GOOGLE_CLIENT_ID"`
	RedisServerAddress  string        `mapstructure:"REDIS_SERVER_ADDRESS"`

	// Razorpay
	RazorpayKeyID         string `mapstructure:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret     string `mapstructure:"RAZORPAY_KEY_SECRET"`
	RazorpayWebhookSecret string `mapstructure:"RAZORPAY_WEBHOOK_SECRET"`
	WebhookServerAddress  string `mapstructure:"WEBHOOK_SERVER_ADDRESS"`
	NgrokAuthToken        string `mapstructure:"NGROK_AUTHTOKEN"`
	NgrokDomain           string `mapstructure:"NGROK_DOMAIN"`

	// Notifications
	NotificationsEnabled    bool     `mapstructure:"NOTIFICATIONS_ENABLED"`
	NotificationChannels    []string `mapstructure:"NOTIFICATION_CHANNELS"`
	FirebaseCredentialsFile string   `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	OneSignalAppID          string   `mapstructure:"ONESIGNAL_APP_ID"`
	OneSignalAPIKey         string   `mapstructure:"ONESIGNAL_API_KEY"`
	SMTPHost                string   `mapstructure:"SMTP_HOST"`
	SMTPPort                int      `mapstructure:"SMTP_PORT"`
	SMTPUsername            string   `mapstructure:"SMTP_USERNAME"`
	SMTPPassword            string   `mapstructure:"SMTP_PASSWORD"`
	MailFromAddress         string   `mapstructure:"MAIL_FROM_ADDRESS"`
	DiscordBotToken         string   `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordChannelID        string   `mapstructure:"DISCORD_CHANNEL_ID"`

	// Bootstrap admin account, created on startup when missing
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
}

// IsProduction reports whether the app runs with ENVIRONMENT=production.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	// Set defaults for non-sensitive config
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001", "http://localhost:3002"})
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("WEBHOOK_SERVER_ADDRESS", "0.0.0.0:8081")
	v.SetDefault("ACCESS_TOKEN_DURATION", "24h")
	v.SetDefault("NOTIFICATIONS_ENABLED", false)
	v.SetDefault("NOTIFICATION_CHANNELS", []string{"firestore"})
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)

	// Prefer environment variables over config file
	v.AutomaticEnv()

	// Load config file
	v.SetConfigFile(path)
	if err = v.ReadInConfig(); err != nil {
		return
	}

	// Unmarshal config into struct
	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	// Validate required configuration
	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if config.TokenSecretKey == "" {
		return fmt.Errorf("TOKEN_SECRET_KEY is required")
	}
	if len(config.TokenSecretKey) < 32 {
		return fmt.Errorf("TOKEN_SECRET_KEY must be at least 32 characters")
	}
	if config.RazorpayKeyID == "" {
		return fmt.Errorf("RAZORPAY_KEY_ID is required")
	}
	if config.RazorpayKeySecret == "" {
		return fmt.Errorf("RAZORPAY_KEY_SECRET is required")
	}
	if config.NotificationsEnabled && config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required when NOTIFICATIONS_ENABLED is set")
	}

	return nil
}
