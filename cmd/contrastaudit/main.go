// Contrastaudit - WCAG contrast audit for design-system colour tokens
//
// Contrastaudit reads colour token definitions from an Xcode asset catalog
// and verifies that every configured foreground/background pair meets the
// WCAG AA contrast ratio in both light and dark appearance variants.
package main

import (
	"github.com/grovehq/contrastaudit/internal/cli"
)

func main() {
	cli.Execute()
}
