package packet

import "strings"

// quote wraps a CSV text field in double quotes, doubling internal quotes.
// Text fields are always quoted.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// csvLines joins rows with \n and no trailing newline
func csvLines(header string, rows []string) string {
	return strings.Join(append([]string{header}, rows...), "\n")
}
