package packet

import (
	"path"
	"regexp"
	"strconv"
	"strings"
)

// FallbackToken stands in for an order ID that sanitizes to nothing
const FallbackToken = "case"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeOrderID replaces every character outside [A-Za-z0-9_-] with an
// underscore and strips leading and trailing underscores
func SanitizeOrderID(orderID string) string {
	s := unsafeFilenameChars.ReplaceAllString(orderID, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return FallbackToken
	}
	return s
}

// Filename is the download name of the ZIP packet
func Filename(orderID string) string {
	return "dispute-evidence-" + SanitizeOrderID(orderID) + ".zip"
}

// PDFFilename is the download name of the standalone PDF
func PDFFilename(orderID string) string {
	return "dispute-evidence-" + SanitizeOrderID(orderID) + ".pdf"
}

// reservedNames are generated files that share the attachments folder
var reservedNames = []string{
	path.Base(EntryAttachmentsNote),
	path.Base(EntryAttachmentIndex),
}

// entryNames assigns each attachment its name inside the archive: the base
// name only, with " (n)" before the extension for repeats. Names of the
// generated files in the folder count as already taken.
func entryNames(filenames []string) []string {
	seen := make(map[string]int, len(filenames)+len(reservedNames))
	for _, name := range reservedNames {
		seen[strings.ToLower(name)] = 1
	}
	out := make([]string, len(filenames))
	for i, name := range filenames {
		base := baseName(name)
		n := seen[strings.ToLower(base)]
		seen[strings.ToLower(base)] = n + 1
		if n == 0 {
			out[i] = base
			continue
		}
		ext := path.Ext(base)
		stem := strings.TrimSuffix(base, ext)
		candidate := stem + " (" + strconv.Itoa(n+1) + ")" + ext
		for seen[strings.ToLower(candidate)] > 0 {
			n++
			candidate = stem + " (" + strconv.Itoa(n+1) + ")" + ext
		}
		seen[strings.ToLower(candidate)] = 1
		out[i] = candidate
	}
	return out
}

func baseName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return "attachment"
	}
	return name
}
