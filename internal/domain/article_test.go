package domain_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonesrussell/news-aggregator/internal/domain"
)

func TestTruncateSummary(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantRunes int
	}{
		{"short untouched", "a brief summary", 15},
		{"exactly at limit", strings.Repeat("x", domain.SummaryMaxLength), domain.SummaryMaxLength},
		{"ascii over limit", strings.Repeat("x", 500), domain.SummaryMaxLength},
		{"cjk over limit", strings.Repeat("新", 400), domain.SummaryMaxLength},
		{"cjk under byte limit in runes", strings.Repeat("新", 200), 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.TruncateSummary(tt.in)
			if n := utf8.RuneCountInString(got); n != tt.wantRunes {
				t.Errorf("kept %d chars, want %d", n, tt.wantRunes)
			}
			if !utf8.ValidString(got) {
				t.Error("truncation produced invalid UTF-8")
			}
			if !strings.HasPrefix(tt.in, got) {
				t.Error("truncation changed the kept prefix")
			}
		})
	}
}
