package ciutil

import (
	"log/slog"
	"net/url"
	"os"
	"strings"
)

// Environment variable names read by this package and its callers.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvTravisCI      = "TRAVIS"
	EnvCircleCI      = "CIRCLECI"

	// EnvDatabaseURL is preferred; EnvBankTestDBURL is the test-only fallback.
	EnvDatabaseURL   = "DATABASE_URL"
	EnvBankTestDBURL = "BANK_TEST_DB_URL"
)

// maskedURL replaces URLs whose credentials cannot be located for masking.
const maskedURL = "invalid-url"

// IsCI returns true if any of the common CI provider variables is set.
func IsCI() bool {
	for _, name := range []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvTravisCI, EnvCircleCI} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// GetEnvWithFallbacks returns the value of the first non-empty environment
// variable in envVars, or defaultValue when none is set. A warning is logged
// when a variable other than the first one supplies the value.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, envVar := range envVars {
		val := os.Getenv(envVar)
		if val == "" {
			continue
		}
		if i > 0 && logger != nil {
			logger.Warn("Using fallback environment variable",
				"used_var", envVar,
				"preferred_var", envVars[0],
				"value", MaskSensitiveValue(val),
			)
		}
		return val
	}
	return defaultValue
}

// MaskSensitiveValue hides the password of a database URL and the middle of
// values that look like keys, tokens or secrets. Anything else is returned unchanged.
func MaskSensitiveValue(value string) string {
	if strings.Contains(value, "://") {
		return maskURL(value)
	}

	lower := strings.ToLower(value)
	if len(value) > 8 && (strings.Contains(lower, "key") ||
		strings.Contains(lower, "token") ||
		strings.Contains(lower, "secret")) {
		return value[:4] + "****" + value[len(value)-4:]
	}

	return value
}

func maskURL(value string) string {
	parsed, err := url.Parse(value)
	if err != nil {
		return maskedURL
	}
	if parsed.User == nil {
		return value
	}
	if _, ok := parsed.User.Password(); !ok {
		return value
	}

	masked := strings.Replace(value, parsed.User.String()+"@", parsed.User.Username()+":****@", 1)
	if masked == value {
		return maskedURL
	}
	return masked
}
