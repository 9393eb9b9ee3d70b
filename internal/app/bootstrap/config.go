package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the full runtime configuration for the clubsite server.
// Values come from flags, environment variables, and an optional .env file,
// in that order of precedence.
type Config struct {
	Port int    `mapstructure:"port"`
	Env  string `mapstructure:"env"`

	MongoURI      string `mapstructure:"mongodb-uri"`
	MongoDatabase string `mapstructure:"mongodb-database"`

	CORSOrigins []string `mapstructure:"cors-origins"`

	UploadDir       string `mapstructure:"upload-dir"`
	UploadURLPrefix string `mapstructure:"upload-url-prefix"`

	SessionName   string        `mapstructure:"session-name"`
	SessionMaxAge time.Duration `mapstructure:"session-max-age"`

	SMTPHost     string `mapstructure:"smtp-host"`
	SMTPPort     int    `mapstructure:"smtp-port"`
	SMTPUser     string `mapstructure:"smtp-user"`
	SMTPPass     string `mapstructure:"smtp-pass"`
	MailFrom     string `mapstructure:"mail-from"`
	MailFromName string `mapstructure:"mail-from-name"`
	ContactEmail string `mapstructure:"contact-email"`

	SeedAdminName     string `mapstructure:"seed-admin-name"`
	SeedAdminEmail    string `mapstructure:"seed-admin-email"`
	SeedAdminPassword string `mapstructure:"seed-admin-password"`
}

// IsProd reports whether the server runs in production mode. Session
// cookies are marked Secure only in production.
func (c Config) IsProd() bool {
	return c.Env == "prod"
}

// LoadConfig reads configuration from flags, the environment, and an
// optional .env file in the working directory.
func LoadConfig(args []string) (Config, error) {
	// A missing .env file is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	fs := pflag.NewFlagSet("clubsite", pflag.ContinueOnError)
	fs.Int("port", 5000, "HTTP listen port")
	fs.String("env", "dev", "runtime environment (dev or prod)")
	fs.String("mongodb-uri", "mongodb://localhost:27017", "MongoDB connection URI")
	fs.String("mongodb-database", "clubsite", "MongoDB database name")
	fs.StringSlice("cors-origins", []string{"http://localhost:3000", "http://localhost:5173"}, "allowed CORS origins")
	fs.String("upload-dir", "uploads", "directory for uploaded files")
	fs.String("upload-url-prefix", "/resources", "URL prefix for serving uploaded files")
	fs.String("session-name", "clubsite_session", "session cookie name")
	fs.Duration("session-max-age", 7*24*time.Hour, "session lifetime")
	fs.String("smtp-host", "", "SMTP host for contact notifications")
	fs.Int("smtp-port", 587, "SMTP port")
	fs.String("smtp-user", "", "SMTP username")
	fs.String("smtp-pass", "", "SMTP password")
	fs.String("mail-from", "", "sender address for notification mail")
	fs.String("mail-from-name", "Club Website", "sender display name")
	fs.String("contact-email", "", "recipient for contact form notifications")
	fs.String("seed-admin-name", "", "name for the seeded admin account")
	fs.String("seed-admin-email", "", "email for the seeded admin account")
	fs.String("seed-admin-password", "", "password for the seeded admin account")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MongoURI == "" {
		return fmt.Errorf("mongodb-uri is required")
	}
	if c.MongoDatabase == "" {
		return fmt.Errorf("mongodb-database is required")
	}
	if !strings.HasPrefix(c.UploadURLPrefix, "/") {
		return fmt.Errorf("upload-url-prefix must start with /")
	}
	return nil
}
