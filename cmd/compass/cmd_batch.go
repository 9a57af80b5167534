package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"compass/internal/assess"
	"compass/internal/logging"
)

var batchFlags struct {
	catalog  string
	format   string
	outDir   string
	parallel int
}

var batchCmd = &cobra.Command{
	Use:   "batch <attempt-file>...",
	Short: "Score many attempts concurrently",
	Long: `Batch scores every attempt file given on the command line. With --out,
each result is written next to its attempt name in the output directory;
without it, a one-line summary per attempt goes to stdout. A failed attempt
aborts the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchFlags.catalog, "catalog", "", "Catalogue file (default: embedded catalogue)")
	f.StringVar(&batchFlags.format, "format", "json", "Result format for --out files (json, yaml, text)")
	f.StringVar(&batchFlags.outDir, "out", "", "Directory for per-attempt result files")
	f.IntVar(&batchFlags.parallel, "parallel", 4, "Number of concurrent scoring workers")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(batchFlags.catalog)
	if err != nil {
		return err
	}
	engine, err := assess.New(cat)
	if err != nil {
		return err
	}

	if batchFlags.outDir != "" {
		if err := os.MkdirAll(batchFlags.outDir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	parallel := batchFlags.parallel
	if parallel < 1 {
		parallel = 1
	}

	logger := logging.New("cli")
	logger.Info("batch scoring", "attempts", len(args), "parallel", parallel)

	type line struct {
		path    string
		summary string
	}
	var mu sync.Mutex
	var lines []line

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(parallel)
	for _, path := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			input, err := loadAttempt(path)
			if err != nil {
				return err
			}
			result, err := engine.Score(input)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if batchFlags.outDir != "" {
				if err := writeBatchResult(path, result); err != nil {
					return err
				}
			}

			mu.Lock()
			lines = append(lines, line{path: path, summary: batchSummary(result)})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].path < lines[j].path })
	out := cmd.OutOrStdout()
	for _, l := range lines {
		fmt.Fprintf(out, "%s  %s\n", l.path, l.summary)
	}
	fmt.Fprintf(out, "scored %d attempt(s)\n", len(lines))
	return nil
}

func writeBatchResult(attemptPath string, result *assess.Result) error {
	data, err := encodeResult(result, batchFlags.format)
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(attemptPath), filepath.Ext(attemptPath))
	dest := filepath.Join(batchFlags.outDir, name+"."+batchExt(batchFlags.format))
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("write result for %s: %w", attemptPath, err)
	}
	return nil
}

func batchExt(format string) string {
	switch format {
	case "yaml":
		return "yaml"
	case "text":
		return "txt"
	default:
		return "json"
	}
}

func batchSummary(r *assess.Result) string {
	index := "index=n/a"
	if r.Index != nil {
		index = fmt.Sprintf("index=%.1f (%s)", r.Index.Value, r.Index.Label)
	}
	top := "no archetype"
	if len(r.Archetypes) > 0 {
		top = r.Archetypes[0].Name
	}
	return fmt.Sprintf("%s  top=%s  flags=%d", index, top, len(r.Flags))
}
