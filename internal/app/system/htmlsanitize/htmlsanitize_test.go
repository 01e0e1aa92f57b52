package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/classment/internal/app/system/htmlsanitize"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace", "   ", ""},
		{"plain", "Grade 5A", "Grade 5A"},
		{"trimmed", "  Ms. Rivera ", "Ms. Rivera"},
		{"lone less-than", "5 < 10", "5 < 10"},
		{"ampersand kept", "Math & Science", "Math & Science"},
		{"bold stripped", "<b>Algebra</b> quiz", "Algebra quiz"},
		{"script removed", "Essay<script>alert('xss')</script>", "Essay"},
		{"entity inside markup", "<i>Q&amp;A</i>", "Q&A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlsanitize.PlainText(tt.input); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsPlainText(t *testing.T) {
	if !htmlsanitize.IsPlainText("") {
		t.Error("expected empty string to be plain text")
	}
	if !htmlsanitize.IsPlainText("5 > 3") {
		t.Error("expected string with only > to be plain text")
	}
	if htmlsanitize.IsPlainText("<p>Hello</p>") {
		t.Error("expected markup not to be plain text")
	}
}

func TestAvatarURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{" http://example.com/b.jpg ", "http://example.com/b.jpg"},
		{"javascript:alert(1)", ""},
		{"data:image/png;base64,AAAA", ""},
		{"/relative/path.png", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := htmlsanitize.AvatarURL(tt.input); got != tt.want {
				t.Errorf("AvatarURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
