// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string

	// AdminPassword is the password the "admin" account is reset to on
	// every process start. It always overrides any manually-set password.
	AdminPassword string

	// CaptchaSecret is the secret key for the human-verification service.
	// An empty value disables the captcha check at login.
	CaptchaSecret string

	// TOTPIssuer is the issuer name shown in authenticator apps.
	TOTPIssuer string

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.AdminPassword, "admin-password", "", "password the admin account is reset to on start")
	flag.StringVar(&options.CaptchaSecret, "captcha-secret", "", "captcha secret key (empty disables captcha)")
	flag.StringVar(&options.TOTPIssuer, "totp-issuer", "henrique.tec.br", "issuer name for authenticator apps")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Port = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if adminPassword := os.Getenv("ADMIN_PASSWORD"); adminPassword != "" {
		options.AdminPassword = adminPassword
	}
	if captchaSecret := os.Getenv("CAPTCHA_SECRET"); captchaSecret != "" {
		options.CaptchaSecret = captchaSecret
	}
	if issuer := os.Getenv("TOTP_ISSUER"); issuer != "" {
		options.TOTPIssuer = issuer
	}

	return options
}
