package bankcore

import (
	"os"
	"strconv"
	"strings"
)

// GetenvOrDefault returns the value of the environment variable named by key,
// or defaultValue when the variable is unset, empty, or whitespace-only.
func GetenvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	return value
}

// GetenvBoolOrDefault parses the environment variable named by key as a bool,
// returning defaultValue when the variable is unset or not a valid bool.
func GetenvBoolOrDefault(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}
