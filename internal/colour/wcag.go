// Package colour implements the WCAG 2.0 colorimetric math used by the
// contrast audit.
package colour

import "math"

// RGB is a single colour sample with channel values nominally in [0, 1].
// Out-of-range channels are not rejected: the formulas below remain defined
// and such values propagate uncorrected, matching how the asset catalog is
// read elsewhere.
type RGB struct {
	R, G, B float64
}

// Linearize converts a gamma-encoded sRGB channel value to linear light.
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Linearize(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
func Luminance(c RGB) float64 {
	return 0.2126*Linearize(c.R) + 0.7152*Linearize(c.G) + 0.0722*Linearize(c.B)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum contrast
// (black vs white). The result is symmetric in its arguments; which sample is
// the foreground only matters for reporting.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}
