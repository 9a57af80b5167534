package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"compass/internal/catalog"
)

var catalogFlags struct {
	catalog string
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Describe the active catalogue",
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFlags.catalog, "catalog", "", "Catalogue file (default: embedded catalogue)")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(catalogFlags.catalog)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Catalogue %s\n\n", cat.Version)

	for _, t := range cat.Territories {
		fmt.Fprintf(out, "%s (%s)\n", t.Name, t.ID)
		for _, d := range cat.Dimensions {
			if d.Territory != t.ID {
				continue
			}
			counts := itemCounts(cat, d.ID)
			fmt.Fprintf(out, "  %-22s %s\n", d.ID, counts)
		}
	}

	fmt.Fprintf(out, "\nArchetypes (%d)\n", len(cat.Signatures))
	for _, sig := range cat.Signatures {
		if sig.IMFlag {
			fmt.Fprintf(out, "  %-24s response style\n", sig.Name)
			continue
		}
		var parts []string
		if len(sig.High) > 0 {
			parts = append(parts, "high: "+strings.Join(sig.High, ", "))
		}
		if len(sig.Low) > 0 {
			parts = append(parts, "low: "+strings.Join(sig.Low, ", "))
		}
		fmt.Fprintf(out, "  %-24s %s\n", sig.Name, strings.Join(parts, "; "))
	}
	return nil
}

func itemCounts(cat *catalog.Catalog, dimID string) string {
	var behavioral, situational, mirror int
	for _, it := range cat.Items {
		if it.Dimension != dimID {
			continue
		}
		switch it.Kind {
		case catalog.KindBehavioral:
			behavioral++
		case catalog.KindSituational:
			situational++
		case catalog.KindMirror:
			mirror++
		}
	}
	return fmt.Sprintf("%d behavioral, %d situational, %d mirror", behavioral, situational, mirror)
}
