// Package audit evaluates the configured token pairs against the WCAG AA
// contrast threshold and renders the run report.
package audit

import (
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/grovehq/contrastaudit/internal/assets"
	"github.com/grovehq/contrastaudit/internal/colour"
)

// MinRatio is the WCAG AA minimum contrast ratio for normal-weight text.
const MinRatio = 4.5

// Pair names a foreground token to check against a background token. Order
// matters for reporting only; the ratio itself is symmetric.
type Pair struct {
	Foreground string
	Background string
}

// Label returns the "<fg> on <bg>" form used in the report summary.
func (p Pair) Label() string {
	return p.Foreground + " on " + p.Background
}

// DefaultPairs is the fixed list of token pairs the audit covers, in report
// order. Every secondary-and-below text token is checked against every
// surface it renders on.
var DefaultPairs = []Pair{
	{"textSecondary", "bgPrimary"},
	{"textSecondary", "bgCard"},
	{"textSecondary", "bgSidebar"},
	{"textSecondary", "bgInspector"},
	{"textTertiary", "bgPrimary"},
	{"textTertiary", "bgCard"},
	{"textTertiary", "bgSidebar"},
	{"textTertiary", "bgInspector"},
	{"textMuted", "bgPrimary"},
	{"textMuted", "bgCard"},
	{"textMuted", "bgSidebar"},
	{"textMuted", "bgInspector"},
}

// Result holds the computed ratios and per-variant verdicts for one pair.
type Result struct {
	Pair       Pair
	LightRatio float64
	DarkRatio  float64
	LightOK    bool
	DarkOK     bool
}

// OK reports whether the pair passes in both appearance variants. Passing in
// only one variant is a failure for the pair.
func (r Result) OK() bool {
	return r.LightOK && r.DarkOK
}

// Report aggregates one audit run. MinRatio and MinPair identify the single
// lowest ratio observed across all pairs and both variants.
type Report struct {
	Results  []Result
	MinRatio float64
	MinPair  string
	AllPass  bool
}

// Auditor runs a fixed pair list against a token store.
type Auditor struct {
	pairs  []Pair
	logger hclog.Logger
}

// New creates an auditor for the given pairs. A nil logger disables debug
// output.
func New(pairs []Pair, logger hclog.Logger) *Auditor {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Auditor{pairs: pairs, logger: logger}
}

// Run evaluates every configured pair in order. Light samples are only ever
// compared with light samples, and dark with dark. A token that fails to
// load aborts the whole run; a ratio below the threshold does not.
func (a *Auditor) Run(store *assets.Store) (*Report, error) {
	report := &Report{
		AllPass:  true,
		MinRatio: math.Inf(1),
	}

	for _, pair := range a.pairs {
		fg, err := store.Variants(pair.Foreground)
		if err != nil {
			return nil, err
		}
		bg, err := store.Variants(pair.Background)
		if err != nil {
			return nil, err
		}

		res := Result{
			Pair:       pair,
			LightRatio: colour.ContrastRatio(fg.Light, bg.Light),
			DarkRatio:  colour.ContrastRatio(fg.Dark, bg.Dark),
		}
		res.LightOK = res.LightRatio >= MinRatio
		res.DarkOK = res.DarkRatio >= MinRatio
		if !res.OK() {
			report.AllPass = false
		}

		// Strict < so ties keep the first pair that reached the minimum.
		for _, ratio := range []float64{res.LightRatio, res.DarkRatio} {
			if ratio < report.MinRatio {
				report.MinRatio = ratio
				report.MinPair = pair.Label()
			}
		}

		a.logger.Debug("evaluated pair",
			"foreground", pair.Foreground,
			"background", pair.Background,
			"light", res.LightRatio,
			"dark", res.DarkRatio,
			"pass", res.OK())

		report.Results = append(report.Results, res)
	}

	return report, nil
}
