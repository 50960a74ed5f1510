package audit

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/grovehq/contrastaudit/internal/assets"
)

// writeToken writes a two-variant colorset record for a gray token.
func writeToken(t *testing.T, root, token string, light, dark float64) {
	t.Helper()

	dir := filepath.Join(root, token+".colorset")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create colorset dir: %v", err)
	}

	contents := fmt.Sprintf(`{
  "colors": [
    {"color": {"components": {"red": "%[1]f", "green": "%[1]f", "blue": "%[1]f"}}},
    {
      "appearances": [{"appearance": "luminosity", "value": "dark"}],
      "color": {"components": {"red": "%[2]f", "green": "%[2]f", "blue": "%[2]f"}}
    }
  ]
}`, light, dark)

	if err := os.WriteFile(filepath.Join(dir, "Contents.json"), []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write Contents.json: %v", err)
	}
}

// testStore builds a catalog with three gray tokens:
//
//	ink:   black in light mode, white in dark mode
//	paper: white in light mode, black in dark mode
//	mist:  mid gray in both modes
func testStore(t *testing.T) *assets.Store {
	t.Helper()

	root := t.TempDir()
	writeToken(t, root, "ink", 0.0, 1.0)
	writeToken(t, root, "paper", 1.0, 0.0)
	writeToken(t, root, "mist", 0.5, 0.5)
	return assets.NewStore(root, nil)
}

func TestRunPassAndFail(t *testing.T) {
	store := testStore(t)

	pairs := []Pair{
		{"ink", "paper"},
		{"mist", "paper"},
	}

	report, err := New(pairs, nil).Run(store)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(report.Results) != 2 {
		t.Fatalf("Run() produced %d results, want 2", len(report.Results))
	}

	// ink on paper is maximum contrast in both variants.
	inkPaper := report.Results[0]
	if !inkPaper.OK() {
		t.Errorf("ink on paper: OK() = false, want true")
	}
	if math.Abs(inkPaper.LightRatio-21.0) > 0.01 || math.Abs(inkPaper.DarkRatio-21.0) > 0.01 {
		t.Errorf("ink on paper ratios = %.2f/%.2f, want 21.00/21.00",
			inkPaper.LightRatio, inkPaper.DarkRatio)
	}

	// mist on paper passes dark (5.28) but fails light (3.98), so the pair
	// fails as a whole.
	mistPaper := report.Results[1]
	if math.Abs(mistPaper.LightRatio-3.98) > 0.01 {
		t.Errorf("mist on paper light ratio = %.2f, want 3.98", mistPaper.LightRatio)
	}
	if math.Abs(mistPaper.DarkRatio-5.28) > 0.01 {
		t.Errorf("mist on paper dark ratio = %.2f, want 5.28", mistPaper.DarkRatio)
	}
	if mistPaper.LightOK {
		t.Error("mist on paper: LightOK = true, want false")
	}
	if !mistPaper.DarkOK {
		t.Error("mist on paper: DarkOK = false, want true")
	}
	if mistPaper.OK() {
		t.Error("mist on paper: OK() = true, want false")
	}

	if report.AllPass {
		t.Error("AllPass = true, want false")
	}
	if math.Abs(report.MinRatio-3.98) > 0.01 {
		t.Errorf("MinRatio = %.2f, want 3.98", report.MinRatio)
	}
	if report.MinPair != "mist on paper" {
		t.Errorf("MinPair = %q, want %q", report.MinPair, "mist on paper")
	}
}

func TestRunAllPass(t *testing.T) {
	store := testStore(t)

	report, err := New([]Pair{{"ink", "paper"}}, nil).Run(store)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !report.AllPass {
		t.Error("AllPass = false, want true")
	}
}

func TestRunMinimumTieKeepsFirstPair(t *testing.T) {
	store := testStore(t)

	// Both pairs produce identical ratios; the first-seen minimum must hold.
	pairs := []Pair{
		{"ink", "paper"},
		{"paper", "ink"},
	}

	report, err := New(pairs, nil).Run(store)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if report.MinPair != "ink on paper" {
		t.Errorf("MinPair = %q, want first-seen %q", report.MinPair, "ink on paper")
	}
}

func TestRunAbortsOnLoadFailure(t *testing.T) {
	store := testStore(t)

	pairs := []Pair{
		{"ink", "paper"},
		{"ink", "missing"},
		{"mist", "paper"},
	}

	report, err := New(pairs, nil).Run(store)
	if err == nil {
		t.Fatal("Run() expected error for unresolvable token")
	}
	if report != nil {
		t.Errorf("Run() returned partial report %+v with error, want nil", report)
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("Run() error = %v, want mention of the offending token", err)
	}
}

func TestReportWrite(t *testing.T) {
	color.NoColor = true

	store := testStore(t)
	report, err := New([]Pair{{"ink", "paper"}, {"mist", "paper"}}, nil).Run(store)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	var buf bytes.Buffer
	report.Write(&buf)

	want := strings.Join([]string{
		"Token contrast check (WCAG AA >= 4.5 for normal text)",
		"",
		"PASS ink           on paper      light=21.00 dark=21.00",
		"FAIL mist          on paper      light=3.98 dark=5.28",
		"",
		"Lowest ratio: 3.98 (mist on paper)",
		"",
	}, "\n")

	if got := buf.String(); got != want {
		t.Errorf("Write() output:\n%s\nwant:\n%s", got, want)
	}
}
