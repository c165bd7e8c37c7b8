package utils

import (
	"fmt"
	"os"
	"strings"
)

// LoadPrompt reads a prompt file and trims surrounding whitespace
func LoadPrompt(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt %s: %w", path, err)
	}

	prompt := strings.TrimSpace(string(content))
	if prompt == "" {
		return "", fmt.Errorf("prompt %s is empty", path)
	}
	return prompt, nil
}

// LoadPromptWithFallback reads a prompt file, returning fallback when the path
// is empty or the file cannot be used
func LoadPromptWithFallback(path, fallback string) string {
	if path == "" {
		return fallback
	}
	if prompt, err := LoadPrompt(path); err == nil {
		return prompt
	}
	return fallback
}
