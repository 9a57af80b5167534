package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateFlags struct {
	catalog string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a catalogue file",
	Long: `Validate loads a catalogue and runs the full structural checks:
taxonomy integrity, item-bank shape, signature references, thresholds and
label tables. Without --catalog it checks the embedded catalogue.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFlags.catalog, "catalog", "", "Catalogue file (default: embedded catalogue)")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(validateFlags.catalog)
	if err != nil {
		return err
	}
	// Load already validates; report what passed.
	fmt.Fprintf(cmd.OutOrStdout(), "catalogue %s: OK (%d territories, %d dimensions, %d items, %d signatures)\n",
		cat.Version, len(cat.Territories), len(cat.Dimensions), len(cat.Items), len(cat.Signatures))
	return nil
}
