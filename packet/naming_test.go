package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
		want    string
	}{
		{"spaces and slashes", "ORD 10/42", "dispute-evidence-ORD_10_42.zip"},
		{"keeps case and dashes", "Ab_c-9", "dispute-evidence-Ab_c-9.zip"},
		{"trims underscores", "  #A1# ", "dispute-evidence-A1.zip"},
		{"empty", "", "dispute-evidence-case.zip"},
		{"nothing usable", "///", "dispute-evidence-case.zip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.orderID))
		})
	}
	assert.Equal(t, "dispute-evidence-ORD_10_42.pdf", PDFFilename("ORD 10/42"))
}

func TestEntryNames(t *testing.T) {
	got := entryNames([]string{"a.png", `C:\tmp\a.png`, "A.png", "a (2).png", "", "notes"})
	assert.Equal(t, []string{"a.png", "a (2).png", "A (3).png", "a (2) (2).png", "attachment", "notes"}, got)
}
