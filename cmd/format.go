package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ddlshape/ddlshape/internal/config"
	"github.com/ddlshape/ddlshape/internal/logger"
	"github.com/ddlshape/ddlshape/ir"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var formatConfigFile string

var FormatCmd = &cobra.Command{
	Use:   "format [file...]",
	Short: "Reconcile statement-record files into entity JSON",
	Long: `Read one or more JSON files holding an ordered array of parsed DDL
statement records and fold each into its final entity list.

Each input file is an independent run with its own table registry. With a
single input (or stdin) the result is written to stdout; with --out, one
<name>.json file per input is written into the given directory.`,
	Args: cobra.ArbitraryArgs,
	RunE: runFormat,
}

func init() {
	FormatCmd.Flags().StringVarP(&formatConfigFile, "config", "c", "", "Path to config file (default ./ddlshape.yaml)")
	FormatCmd.Flags().StringP("output-mode", "m", "sql", "Target dialect for output shaping")
	FormatCmd.Flags().BoolP("group-by-type", "g", false, "Group final entities by kind")
	FormatCmd.Flags().Bool("pretty", false, "Indent JSON output")
	FormatCmd.Flags().StringP("out", "o", "", "Directory for per-input output files (default stdout)")
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(formatConfigFile, cmd.Flags())
	if err != nil {
		return err
	}

	if len(args) == 0 {
		data, err := formatStream(cmd.InOrStdin(), cfg)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), data)
	}

	if cfg.Out == "" {
		if len(args) > 1 {
			return fmt.Errorf("multiple input files require --out to avoid interleaving results")
		}
		data, err := formatFile(args[0], cfg)
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), data)
	}

	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Independent runs may proceed in parallel: each input gets its own
	// formatter and registry, and statement order inside a file is still
	// a strict fold.
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, path := range args {
		path := path
		g.Go(func() error {
			data, err := formatFile(path, cfg)
			if err != nil {
				return err
			}
			outPath := outputPath(cfg.Out, path)
			if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			logger.Get().Debug("wrote entities", "input", path, "output", outPath)
			return nil
		})
	}
	return g.Wait()
}

// formatFile runs one reconciliation over the records in path.
func formatFile(path string, cfg *config.Config) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := formatStream(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// formatStream decodes a statement-record array, folds it, and marshals
// the resulting entities.
func formatStream(r io.Reader, cfg *config.Config) ([]byte, error) {
	var stmts []ir.Record
	if err := json.NewDecoder(r).Decode(&stmts); err != nil {
		return nil, fmt.Errorf("failed to decode statement records: %w", err)
	}

	formatter, err := ir.NewFormatter(ir.Options{
		OutputMode:  ir.Dialect(cfg.OutputMode),
		GroupByType: cfg.GroupByType,
	})
	if err != nil {
		return nil, err
	}

	result, err := formatter.Format(stmts)
	if err != nil {
		return nil, err
	}

	if cfg.Pretty {
		return json.MarshalIndent(result.Output(), "", "  ")
	}
	return json.Marshal(result.Output())
}

// outputPath maps an input file to its per-run output file inside dir.
func outputPath(dir, input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+".json")
}

func writeResult(w io.Writer, data []byte) error {
	_, err := fmt.Fprintln(w, string(data))
	return err
}
