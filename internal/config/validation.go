package config

import (
	"fmt"
	"strings"
)

// ValidationIssue describes a single problem found in the user config
type ValidationIssue struct {
	Field   string // Config section, e.g. "appearance"
	Key     string // Offending key or value
	Message string
}

// ValidationResult collects validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether validation found fatal problems
func (r *ValidationResult) HasErrors() bool { return len(r.Errors) > 0 }

// HasWarnings reports whether validation found non-fatal problems
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

func (r *ValidationResult) addError(field, key, message string) {
	r.Errors = append(r.Errors, ValidationIssue{Field: field, Key: key, Message: message})
}

func (r *ValidationResult) addWarning(field, key, message string) {
	r.Warnings = append(r.Warnings, ValidationIssue{Field: field, Key: key, Message: message})
}

var validBorderStyles = map[string]bool{
	"rounded":          true,
	"normal":           true,
	"thick":            true,
	"double":           true,
	"hidden":           true,
	"block":            true,
	"ascii":            true,
	"outer-half-block": true,
	"inner-half-block": true,
}

var validButtonNames = map[string]bool{
	"minimize": true,
	"maximize": true,
	"close":    true,
}

// ParseButtonOrder parses a comma-separated caption button list such as
// "minimize,maximize,close". Empty input yields an empty list. Unknown
// button names and duplicates within the list are errors.
func ParseButtonOrder(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var order []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if !validButtonNames[name] {
			return nil, fmt.Errorf("unknown caption button %q (valid: minimize, maximize, close)", name)
		}
		if seen[name] {
			return nil, fmt.Errorf("caption button %q listed twice", name)
		}
		seen[name] = true
		order = append(order, name)
	}
	return order, nil
}

// ValidateConfig checks the merged user configuration for problems.
// Errors are fatal; warnings fall back to defaults at runtime.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	result := &ValidationResult{}

	if cfg.Appearance.BorderStyle != "" && !validBorderStyles[cfg.Appearance.BorderStyle] {
		result.addWarning("appearance", cfg.Appearance.BorderStyle,
			"unknown border style, falling back to rounded")
	}

	leading, err := ParseButtonOrder(cfg.Frame.ButtonOrderLeading)
	if err != nil {
		result.addError("frame", "button_order_leading", err.Error())
	}
	trailing, err := ParseButtonOrder(cfg.Frame.ButtonOrderTrailing)
	if err != nil {
		result.addError("frame", "button_order_trailing", err.Error())
	}

	// A button may be placed at one edge only
	onLeading := make(map[string]bool, len(leading))
	for _, name := range leading {
		onLeading[name] = true
	}
	for _, name := range trailing {
		if onLeading[name] {
			result.addError("frame", name, "caption button placed on both edges")
		}
	}

	if cfg.Frame.OverlayHeight < 0 {
		result.addError("frame", "overlay_height", "must not be negative")
	}

	return result
}
