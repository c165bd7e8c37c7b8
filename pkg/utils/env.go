package utils

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads the given .env files into the process environment, then
// returns the whole environment as a map. Variables already set in the
// environment win over file values.
func LoadEnv(files ...string) map[string]string {
	for _, file := range files {
		if file == "" {
			continue
		}
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			log.Printf("[UTILS]: Warning, could not load %s: %v\n", file, err)
		}
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}
	return env
}

// EnvFiles returns the .env files to load: ENV_FILE when set, otherwise ".env"
func EnvFiles() []string {
	if file := os.Getenv("ENV_FILE"); file != "" {
		return []string{file}
	}
	return []string{".env"}
}
