package audit

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Write renders the report as plain text: a header, one status line per pair
// with both ratios to two decimals, and the lowest ratio seen across every
// pair and variant. Status labels are coloured unless colour output is
// disabled globally.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintf(w, "Token contrast check (WCAG AA >= %.1f for normal text)\n\n", MinRatio)

	pass := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	for _, res := range r.Results {
		status := pass.Sprint("PASS")
		if !res.OK() {
			status = fail.Sprint("FAIL")
		}
		fmt.Fprintf(w, "%s %-13s on %-10s light=%.2f dark=%.2f\n",
			status, res.Pair.Foreground, res.Pair.Background,
			res.LightRatio, res.DarkRatio)
	}

	fmt.Fprintf(w, "\nLowest ratio: %.2f (%s)\n", r.MinRatio, r.MinPair)
}
