package common

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	supported := []string{"json", "text", "markdown"}

	tests := []struct {
		name      string
		format    string
		supported []string
		wantErr   bool
	}{
		{"json accepted", "json", supported, false},
		{"text accepted", "text", supported, false},
		{"markdown accepted", "markdown", supported, false},
		{"xml rejected", "xml", supported, true},
		{"matching is case sensitive", "JSON", supported, true},
		{"empty format rejected", "", supported, true},
		{"empty allow-list accepts anything", "xml", nil, false},
		{"single-entry allow-list", "text", []string{"json"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.supported)
			if tt.wantErr && err == nil {
				t.Fatalf("ValidateOutputFormat(%q) = nil, want error", tt.format)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ValidateOutputFormat(%q) = %v, want nil", tt.format, err)
			}
		})
	}
}

func TestValidateOutputFormatErrorListsChoices(t *testing.T) {
	err := ValidateOutputFormat("csv", []string{"json", "text"})
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
	want := `output format "csv" is not supported (choose one of: json, text)`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestGetSupportedFormatsCopies(t *testing.T) {
	configured := []string{"json", "text"}
	got := GetSupportedFormats(configured)
	if len(got) != 2 || got[0] != "json" || got[1] != "text" {
		t.Fatalf("GetSupportedFormats = %v", got)
	}
	got[0] = "mutated"
	if configured[0] != "json" {
		t.Error("mutating the returned slice must not touch the configured list")
	}
}
