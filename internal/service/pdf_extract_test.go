package service

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

func frag(s string, y float64) pdf.Text {
	return pdf.Text{S: s, Y: y}
}

func TestGroupFragmentLines(t *testing.T) {
	tests := []struct {
		name  string
		frags []pdf.Text
		want  string
	}{
		{
			name: "fragments on one visual line join with spaces",
			frags: []pdf.Text{
				frag("Twin", 700), frag("Mercury", 700), frag("300HP", 699.8),
			},
			want: "Twin Mercury 300HP",
		},
		{
			name: "separate lines split at the threshold",
			frags: []pdf.Text{
				frag("ENGINE OPTIONS", 710),
				frag("Twin Mercury 300HP", 695),
				frag("Bow Thruster", 680),
			},
			want: "ENGINE OPTIONS\nTwin Mercury 300HP\nBow Thruster",
		},
		{
			name: "top of page comes first regardless of input order",
			frags: []pdf.Text{
				frag("second", 600),
				frag("first", 700),
			},
			want: "first\nsecond",
		},
		{
			name: "blank fragments are dropped",
			frags: []pdf.Text{
				frag("  ", 700), frag("kept", 700), frag("", 690),
			},
			want: "kept",
		},
		{
			name: "just under the threshold stays on one line",
			frags: []pdf.Text{
				frag("a", 700), frag("b", 695.1),
			},
			want: "a b",
		},
		{
			name: "exactly the threshold starts a new line",
			frags: []pdf.Text{
				frag("a", 700), frag("b", 695),
			},
			want: "a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := groupFragmentLines(tt.frags); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractOrderText_RejectsGarbage(t *testing.T) {
	if _, err := ExtractOrderText([]byte("definitely not a pdf")); err == nil {
		t.Error("garbage bytes should not parse as a PDF")
	}
}
