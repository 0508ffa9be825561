// This file adds a lightweight linter/validator for Config values. It
// performs static checks and returns a list of issues (errors and warnings)
// that callers can surface in a CLI or tests.
package config

import (
	"fmt"
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a configuration warning that should be surfaced
	// to users but may not necessarily block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding. Path is a dotted path into the
// config (e.g. "db.host"); Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a single
// error in contexts that expect error.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Validate performs static validation of a Config. It does not mutate the
// config; callers decide whether warnings block execution.
func Validate(c *Config) []Issue {
	var issues []Issue

	switch c.DBKind {
	case "mysql", "postgres":
	case "":
		issues = append(issues, Issue{SeverityError, "db.kind", "db kind must not be empty"})
	default:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "db.kind",
			Message:  fmt.Sprintf("unknown db kind %q; expected mysql or postgres", c.DBKind),
		})
	}

	if strings.TrimSpace(c.DBHost) == "" {
		issues = append(issues, Issue{SeverityError, "db.host", "database host must not be empty"})
	}
	if c.DBPort <= 0 || c.DBPort > 65535 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "db.port",
			Message:  fmt.Sprintf("port %d out of range", c.DBPort),
		})
	}
	if strings.TrimSpace(c.DBUser) == "" {
		issues = append(issues, Issue{SeverityError, "db.user", "database user must not be empty"})
	}
	if strings.TrimSpace(c.DBName) == "" {
		issues = append(issues, Issue{SeverityError, "db.name", "database name must not be empty"})
	}
	if c.DBPassword == "" {
		issues = append(issues, Issue{SeverityWarning, "db.password", "database password is empty"})
	}

	if strings.TrimSpace(c.S3Bucket) == "" {
		issues = append(issues, Issue{SeverityError, "s3.bucket", "export bucket must not be empty"})
	}
	if strings.HasPrefix(c.S3Prefix, "/") || strings.HasSuffix(c.S3Prefix, "/") {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "s3.prefix",
			Message:  "prefix should not start or end with a slash; object keys are joined with slashes",
		})
	}

	if c.MetricsBackend != "" && c.MetricsBackend != "none" && c.MetricsBackend != "pushgateway" {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "metrics.backend",
			Message:  fmt.Sprintf("unknown metrics backend %q; metrics will be disabled", c.MetricsBackend),
		})
	}
	if c.MetricsBackend == "pushgateway" && strings.TrimSpace(c.PushgatewayURL) == "" {
		issues = append(issues, Issue{SeverityError, "metrics.pushgateway_url", "pushgateway backend requires a URL"})
	}

	return issues
}

// HasError reports whether any issue is severity error.
func HasError(issues []Issue) bool {
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			return true
		}
	}
	return false
}
