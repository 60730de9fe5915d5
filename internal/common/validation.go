package common

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateOutputFormat checks format against the configured allow-list. An
// empty list means the deployment accepts any format.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil
	}
	if slices.Contains(supportedFormats, format) {
		return nil
	}
	return fmt.Errorf("output format %q is not supported (choose one of: %s)",
		format, strings.Join(supportedFormats, ", "))
}

// GetSupportedFormats returns a copy of the configured formats so shell
// completion callers cannot mutate configuration state.
func GetSupportedFormats(supportedFormats []string) []string {
	return slices.Clone(supportedFormats)
}
