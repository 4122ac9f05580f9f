// Package testutil holds helpers shared by view-level tests.
package testutil

import "regexp"

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// StripANSI removes SGR escape sequences so assertions can target plain text.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
