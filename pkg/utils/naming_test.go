package utils

import "testing"

func TestChunkID(t *testing.T) {
	tests := []struct {
		parentID string
		index    int
		want     string
	}{
		{"report", 0, "report_chunk_0"},
		{"employee_handbook", 12, "employee_handbook_chunk_12"},
		{"q3-sales", 3, "q3-sales_chunk_3"},
	}

	for _, tt := range tests {
		if got := ChunkID(tt.parentID, tt.index); got != tt.want {
			t.Errorf("ChunkID(%q, %d) = %q, want %q", tt.parentID, tt.index, got, tt.want)
		}
	}
}

func TestFormatTitle(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{"quarterly-sales_report", "Quarterly Sales Report"},
		{"ANNUAL_SUMMARY", "Annual Summary"},
		{"readme", "Readme"},
		{"multi--dash__name", "Multi Dash Name"},
		{"already Capitalized", "Already Capitalized"},
	}

	for _, tt := range tests {
		if got := FormatTitle(tt.identifier); got != tt.want {
			t.Errorf("FormatTitle(%q) = %q, want %q", tt.identifier, got, tt.want)
		}
	}
}
