package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env          string
	Debug        bool
	TestMode     bool
	AppName      string
	Build        string
	Host         string
	RollbarToken string
	NoColor      bool

	// identities behind the fixed demo logins
	StudentRollNumber string
	TeacherName       string
}

// NewConfig reads the configuration from the environment (prefixed with the ENV name)
// and from an optional `config/.env.<env>` file in the working directory.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Mahudhurio")
	conf.SetDefault("build", "dev")
	conf.SetDefault("host", hostname())
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("noColor", false)
	conf.SetDefault("studentRollNumber", "CS2021001")
	conf.SetDefault("teacherName", "Dr. Smith")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
		conf.SetDefault("noColor", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("config.os.Getwd(): %v", err)
	}
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:               env,
		Debug:             conf.GetBool("debug"),
		TestMode:          conf.GetBool("testMode"),
		AppName:           conf.GetString("appName"),
		Build:             conf.GetString("build"),
		Host:              conf.GetString("host"),
		RollbarToken:      conf.GetString("rollbarToken"),
		NoColor:           conf.GetBool("noColor"),
		StudentRollNumber: conf.GetString("studentRollNumber"),
		TeacherName:       conf.GetString("teacherName"),
	}
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return h
}
