// Command dlmcat reads a delimited-text file and prints a summary of
// the columns it inferred: a first line with the row and column
// counts, then one line per column with its name, type, and whether
// it is optional. It exists mainly as a way to exercise pkg/dlm end to
// end against real files from the command line.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shapestone/shape-dlm/internal/metrics"
	"github.com/shapestone/shape-dlm/pkg/dlm"
)

var version = "0.1.0"

func main() {
	var (
		delimiter      string
		quote          string
		noHeader       bool
		noQuote        bool
		trimSpace      bool
		lzString       bool
		skipBlank      bool
		comment        string
		skipLines      int
		chunkBits      int
		normalizeNames bool
		noDetectDates  bool
		logLevel       string
		metricsAddr    string
		configFile     string
	)

	root := &cobra.Command{
		Use:   "dlmcat [file]",
		Short: "Read a delimited-text file and summarize its columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				viper.SetConfigFile(configFile)
				if err := viper.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config: %w", err)
				}
			}

			logger, err := newLogger(coalesce(logLevel, viper.GetString("log-level"), "info"))
			if err != nil {
				return err
			}
			defer logger.Sync()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			opts := dlm.DefaultOptions()
			opts.HasHeader = !noHeader
			opts.NoQuote = noQuote
			opts.TrimSpace = trimSpace
			opts.LZString = lzString
			opts.SkipBlankLines = skipBlank
			opts.SkipLines = skipLines
			opts.ChunkBits = chunkBits
			opts.NormalizeNames = normalizeNames
			opts.DetectDates = !noDetectDates
			opts.Logger = logger
			if delimiter != "" {
				opts.Delimiter = delimiter[0]
			}
			if quote != "" {
				opts.Quote = quote[0]
			}
			if comment != "" {
				opts.Comment = []byte(comment)
			}

			var stop func()
			if metricsAddr != "" {
				reg := prometheus.NewRegistry()
				opts.Metrics = metrics.New(reg)
				stop = serveMetrics(metricsAddr, reg, logger)
				defer stop()
			}

			tbl, err := dlm.ReadDelim(f, opts)
			if err != nil {
				return err
			}
			printSummary(tbl)
			return nil
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("dlmcat v" + version)
		},
	})

	flags := root.Flags()
	flags.StringVar(&delimiter, "delimiter", "", "field delimiter byte (default: guess from the first line)")
	flags.StringVar(&quote, "quote", "\"", "quote byte")
	flags.BoolVar(&noHeader, "no-header", false, "treat the first line as data, not column names")
	flags.BoolVar(&noQuote, "no-quote", false, "disable quote handling entirely")
	flags.BoolVar(&trimSpace, "trim", false, "trim leading/trailing spaces from unquoted fields")
	flags.BoolVar(&lzString, "lzstring", false, "treat leading-zero numerics as strings")
	flags.BoolVar(&skipBlank, "skip-blank", false, "skip blank lines")
	flags.StringVar(&comment, "comment", "", "line-comment prefix")
	flags.IntVar(&skipLines, "skip-lines", 0, "number of leading lines to discard unconditionally")
	flags.IntVar(&chunkBits, "chunkbits", 0, "log2 of the initial chunk size in bytes; 0 reads the whole input as a single chunk")
	flags.BoolVar(&normalizeNames, "normalize-names", false, "rewrite column names into valid identifiers")
	flags.BoolVar(&noDetectDates, "no-detect-dates", false, "disable the date/datetime detection pass")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "expose prometheus metrics on this address while reading")
	flags.StringVar(&configFile, "config", "", "optional config file; its log-level is used when --log-level is unset")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func coalesce(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn("metrics server stopped", zap.Error(err))
		}
	}()
	return func() { srv.Close() }
}

func printSummary(tbl *dlm.Table) {
	fmt.Printf("%d rows, %d columns\n", tbl.NumRows(), tbl.NumCols())
	for i, name := range tbl.Names() {
		fmt.Printf("  %-24s %-10s optional=%v\n", name, tbl.ColumnType(i), tbl.IsOptional(i))
	}
}
