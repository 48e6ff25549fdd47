package main

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ravenclaw900/dst-farming-ui/internal/config"
	"github.com/ravenclaw900/dst-farming-ui/internal/plant"
)

func testConfig() *config.Config {
	return &config.Config{
		FarmSize: plant.FarmSize{Width: 10, Height: 10},
		Format:   "text",
		LogLevel: slog.LevelError,
	}
}

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-season", "Autumn", "-ratio", "1:1"}, testConfig(), &out); err != nil {
		t.Fatalf("run got unexpected error: %v", err)
	}
	for _, want := range []string{"Autumn 1:1", "Toma Root", "Eggplant", "Filled plot: 10 x 10 = 100 cells"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestRunYAML(t *testing.T) {
	var out bytes.Buffer
	args := []string{"-season", "Spring", "-ratio", "2:1", "-size", "4x6", "-format", "yaml"}
	if err := run(args, testConfig(), &out); err != nil {
		t.Fatalf("run got unexpected error: %v", err)
	}
	for _, want := range []string{"season: Spring", "filled_total: 12", "abbreviation: Wm Wm Pg"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected YAML to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestRunCatalog(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-plants", "-format", "yaml"}, testConfig(), &out); err != nil {
		t.Fatalf("run got unexpected error: %v", err)
	}
	if got := strings.Count(out.String(), "- name: "); got != 14 {
		t.Errorf("Expected 14 catalog entries, got %d:\n%s", got, out.String())
	}
}

func TestRunErrors(t *testing.T) {
	for _, test := range []struct {
		args []string
		want error
	}{
		{[]string{"-season", "Fall", "-ratio", "1:1"}, plant.ErrUnknownSeason},
		{[]string{"-season", "Spring", "-ratio", "3:1"}, plant.ErrUnknownRatio},
		{[]string{"-season", "Spring", "-ratio", "1:1", "-size", "0x0"}, plant.ErrInvalidFarmSize},
	} {
		var out bytes.Buffer
		if err := run(test.args, testConfig(), &out); !errors.Is(err, test.want) {
			t.Errorf("run(%v) error = %v, want %v", test.args, err, test.want)
		}
	}

	var out bytes.Buffer
	if err := run([]string{"-season", "Spring"}, testConfig(), &out); err == nil {
		t.Error("Expected an error when -ratio is missing")
	}
	if err := run([]string{"-season", "Spring", "-ratio", "1:1", "-format", "xml"}, testConfig(), &out); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}
