package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName  string
	Env      string // DEV (local; default), TEST, QA, PROD
	Build    string
	Debug    bool
	TestMode bool
	WorkDir  string
	DataDir  string

	// BoardOwner is the userId whose board this instance serves.
	// Stand-in for an authenticated-session lookup; resolved once here and
	// passed as an explicit parameter everywhere else.
	BoardOwner string

	DefaultFromEmail mail.Address
	SendgridApiKey   string
	RollbarToken     string

	Server struct {
		Addr            string
		DebugAddr       string
		ShutdownTimeout time.Duration
	}
}

// NewConfig loads the app configuration: defaults first, then an optional
// config/.env.<env> file, then <ENV>_-prefixed environment variables.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Workboard")
	conf.SetDefault("build", "dev")
	conf.SetDefault("dataDir", "data")
	conf.SetDefault("boardOwner", "metarama")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("sendgridApiKey", "")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverDebugAddr", ":4000")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)

	var testMode bool
	env := os.Getenv("ENV") // DEV, TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	wd := Getwd()
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	dataDir := conf.GetString("dataDir")
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(wd, dataDir)
	}

	c := &Config{
		AppName:          conf.GetString("appName"),
		Env:              env,
		Build:            conf.GetString("build"),
		Debug:            conf.GetBool("debug"),
		TestMode:         testMode,
		WorkDir:          wd,
		DataDir:          dataDir,
		BoardOwner:       conf.GetString("boardOwner"),
		DefaultFromEmail: mail.Address{Name: conf.GetString("appName"), Address: conf.GetString("defaultFromEmail")},
		SendgridApiKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
	}
	c.Server.Addr = conf.GetString("serverAddr")
	c.Server.DebugAddr = conf.GetString("serverDebugAddr")
	c.Server.ShutdownTimeout = conf.GetDuration("serverShutdownTimeout")
	return c
}
