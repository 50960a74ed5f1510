package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/grovehq/contrastaudit/internal/assets"
	"github.com/grovehq/contrastaudit/internal/audit"
)

// defaultAssetRoot is where the grove app keeps its token colorsets,
// relative to the repository root.
const defaultAssetRoot = "grove/Resources/Assets.xcassets"

var (
	// Check command flags
	checkAssets  string
	checkNoColor bool
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check token pairs against the WCAG AA contrast threshold",
	Long: `Check every configured foreground/background token pair for WCAG AA
contrast (ratio >= 4.5) in both light and dark appearance variants.

Each token is loaded from <assets>/<token>.colorset/Contents.json. A pair
passes only when both its light and dark ratios meet the threshold; passing
in one appearance mode alone is a failure.

Examples:
  # Audit the default asset catalog
  contrastaudit check

  # Audit a catalog from another checkout
  contrastaudit check --assets ~/src/grove/grove/Resources/Assets.xcassets

  # Plain output for CI logs
  contrastaudit check --no-color`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkAssets, "assets", defaultAssetRoot, "path to the asset catalog containing the token colorsets")
	checkCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "disable coloured status output")
}

// runCheck executes the check command. A token that fails to load aborts the
// run with its error; threshold failures print as FAIL lines and surface only
// through the exit status.
func runCheck(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd)

	if checkNoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	// Validate the catalog path
	if err := assets.ValidateRoot(checkAssets); err != nil {
		return fmt.Errorf("invalid asset catalog: %w", err)
	}

	store := assets.NewStore(checkAssets, logger)
	report, err := audit.New(audit.DefaultPairs, logger).Run(store)
	if err != nil {
		return err
	}

	report.Write(cmd.OutOrStdout())

	if !report.AllPass {
		failed := 0
		for _, res := range report.Results {
			if !res.OK() {
				failed++
			}
		}
		return fmt.Errorf("%d of %d pairs below WCAG AA contrast", failed, len(report.Results))
	}

	return nil
}
