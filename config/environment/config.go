// Package environment reads the API configuration from the process
// environment. A .env file, if present, is loaded by main before Load runs.
package environment

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverMongo     = "mongo"
	DriverFirestore = "firestore"
	DriverMemory    = "memory"

	PasswordPolicyBcrypt = "bcrypt"
	PasswordPolicyPlain  = "plain"

	UploadDriverLocal = "local"
	UploadDriverS3    = "s3"
)

type Config struct {
	Port            string        `env:"PORT" env-default:"5000"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	PublicDir       string        `env:"PUBLIC_DIR"`

	Database DatabaseConfig
	Password PasswordConfig
	Upload   UploadConfig
	Email    EmailConfig
}

type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER" env-default:"mongo"`

	MongoURI      string `env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" env-default:"virtual_classroom"`

	FirebaseCredentials string `env:"FIREBASE_CREDENTIALS_BASE64"`
	FirebaseProjectID   string `env:"FIREBASE_PROJECT_ID"`
	FirestoreEmulator   string `env:"FIRESTORE_EMULATOR_HOST"`
}

type PasswordConfig struct {
	Policy     string `env:"PASSWORD_POLICY" env-default:"bcrypt"`
	BcryptCost int    `env:"BCRYPT_COST" env-default:"10"`
}

type UploadConfig struct {
	Driver string `env:"UPLOAD_DRIVER" env-default:"local"`
	Dir    string `env:"UPLOAD_DIR" env-default:"./uploads"`

	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION" env-default:"us-east-1"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
}

// EmailConfig holds the SMTP sender used for feedback notifications.
// User doubles as the sender address, as with a Gmail app password.
type EmailConfig struct {
	User       string `env:"EMAIL_USER"`
	Password   string `env:"EMAIL_PASS"`
	Host       string `env:"EMAIL_HOST" env-default:"smtp.gmail.com"`
	Port       int    `env:"EMAIL_PORT" env-default:"587"`
	AdminEmail string `env:"ADMIN_EMAIL"`
}

// Enabled reports whether sender credentials were supplied.
func (e EmailConfig) Enabled() bool {
	return e.User != "" && e.Password != ""
}

// Recipient is the admin address, defaulting to the sender itself.
func (e EmailConfig) Recipient() string {
	if e.AdminEmail != "" {
		return e.AdminEmail
	}
	return e.User
}

// Load builds a Config from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate collects every problem instead of stopping at the first one.
func (c *Config) Validate() error {
	var errs []string

	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.MongoURI == "" {
			errs = append(errs, "MONGO_URI is required for the mongo driver")
		}
	case DriverFirestore:
		if c.Database.FirebaseProjectID == "" {
			errs = append(errs, "FIREBASE_PROJECT_ID is required for the firestore driver")
		}
		if c.Database.FirebaseCredentials == "" && c.Database.FirestoreEmulator == "" {
			errs = append(errs, "FIREBASE_CREDENTIALS_BASE64 is required unless FIRESTORE_EMULATOR_HOST is set")
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Sprintf("invalid DB_DRIVER %q: expected mongo, firestore or memory", c.Database.Driver))
	}

	switch c.Password.Policy {
	case PasswordPolicyBcrypt:
		if c.Password.BcryptCost < 4 || c.Password.BcryptCost > 31 {
			errs = append(errs, fmt.Sprintf("invalid BCRYPT_COST %d: expected 4..31", c.Password.BcryptCost))
		}
	case PasswordPolicyPlain:
	default:
		errs = append(errs, fmt.Sprintf("invalid PASSWORD_POLICY %q: expected bcrypt or plain", c.Password.Policy))
	}

	switch c.Upload.Driver {
	case UploadDriverLocal:
		if c.Upload.Dir == "" {
			errs = append(errs, "UPLOAD_DIR is required for the local upload driver")
		}
	case UploadDriverS3:
		if c.Upload.S3Bucket == "" {
			errs = append(errs, "S3_BUCKET is required for the s3 upload driver")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid UPLOAD_DRIVER %q: expected local or s3", c.Upload.Driver))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
