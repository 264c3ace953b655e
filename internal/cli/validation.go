package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/example/casework/internal/config"
	"github.com/example/casework/internal/logging"
)

// parseSequence parses whitespace-separated integers.
// Returns an error naming the first token that is not an integer.
func parseSequence(input string) ([]int, error) {
	fields := strings.Fields(input)
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer '%s'. Enter integers separated by spaces", f)
		}
		values = append(values, v)
	}
	return values, nil
}

// parseInt parses a single integer for the named field.
func parseInt(field, input string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s'. Enter an integer", field, strings.TrimSpace(input))
	}
	return v, nil
}

// ValidateLogLevel checks the --log-level flag, or CASEWORK_LOG_LEVEL when
// the flag is unset, before any service is built.
func ValidateLogLevel(flagValue string) error {
	source, level := "--log-level", flagValue
	if level == "" {
		source, level = config.EnvLogLevel, os.Getenv(config.EnvLogLevel)
	}
	if _, err := logging.ParseLevel(level); err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	return nil
}
