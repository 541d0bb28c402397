package main

import (
	"testing"

	"github.com/nao1215/sunriset/internal/config"
	"github.com/nao1215/sunriset/internal/report"
)

// TestGetVerboseFlag tests the verbose flag retrieval.
func TestGetVerboseFlag(t *testing.T) {
	t.Run("returns false when flag not set", func(t *testing.T) {
		if getVerboseFlag(NewRangeCmd()) {
			t.Error("expected false when flag not set")
		}
	})

	t.Run("returns value from parent verbose flag", func(t *testing.T) {
		root := NewRootCmd()
		_ = root.PersistentFlags().Set("verbose", "true")

		rangeCmd, _, err := root.Find([]string{"range"})
		if err != nil {
			t.Fatalf("failed to find range command: %v", err)
		}
		if !getVerboseFlag(rangeCmd) {
			t.Error("expected true from parent verbose flag")
		}
	})
}

// TestNewReportWriter tests format selection.
func TestNewReportWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{name: "simple by default", cfg: config.Config{}, want: "*report.SimpleWriter"},
		{name: "json", cfg: config.Config{JSONReport: true}, want: "*report.JSONWriter"},
		{name: "markdown", cfg: config.Config{MarkdownReport: true}, want: "*report.MarkdownWriter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := newReportWriter(&tt.cfg, nil)
			var got string
			switch w.(type) {
			case *report.SimpleWriter:
				got = "*report.SimpleWriter"
			case *report.JSONWriter:
				got = "*report.JSONWriter"
			case *report.MarkdownWriter:
				got = "*report.MarkdownWriter"
			}
			if got != tt.want {
				t.Errorf("expected %s, got %T", tt.want, w)
			}
		})
	}
}
