// Command gtfs-validator loads a GTFS Schedule feed from a directory and
// validates it, printing the first diagnostic encountered and exiting
// non-zero if the feed is invalid.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/transitdata/gtfs-dataset/loader"
	"github.com/transitdata/gtfs-dataset/logging"
	"github.com/transitdata/gtfs-dataset/validator"
)

func main() {
	var quiet bool
	var verbose bool
	var jsonLogs bool

	rootCmd := &cobra.Command{
		Use:   "gtfs-validator <feed-directory>",
		Short: "Validate a GTFS Schedule feed",
		Long: `gtfs-validator loads the recognized GTFS Schedule text files from a
directory, checks every record's own conditional-presence rules, then
checks the cross-table references and invariants spanning the whole
feed, and reports the first problem it finds.

Examples:
  gtfs-validator ./my-feed
  gtfs-validator -q ./my-feed
  gtfs-validator --verbose --json-logs ./my-feed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(jsonLogs, verbose)
			if quiet {
				log.SetLevel(logging.ERROR + 1)
			}
			return run(args[0], quiet, log)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only PASS/FAIL, no diagnostic detail")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "log each loading and validation stage at debug level")
	rootCmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "emit logs as JSON lines instead of text")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(jsonLogs, verbose bool) logging.Logger {
	var log logging.Logger
	if jsonLogs {
		log = logging.NewJSONLogger()
	} else {
		log = logging.NewLogger()
	}
	if verbose {
		log.SetLevel(logging.DEBUG)
	}
	return log
}

func run(dir string, quiet bool, log logging.Logger) error {
	log.Debug("loading feed", logging.Field{Key: "dir", Value: dir})
	ds, err := loader.Load(dir)
	if err != nil {
		log.Error("failed to load feed", logging.Field{Key: "error", Value: err.Error()})
		if quiet {
			fmt.Println("FAIL")
		} else {
			fmt.Fprintf(os.Stderr, "gtfs-validator: invalid feed: failed to load: %v\n", err)
		}
		os.Exit(1)
	}

	log.Debug("running validation")
	if err := validator.Validate(ds); err != nil {
		log.Warn("feed is invalid", logging.Field{Key: "error", Value: err.Error()})
		if quiet {
			fmt.Println("FAIL")
		} else {
			fmt.Fprintf(os.Stderr, "gtfs-validator: invalid feed: %v\n", err)
		}
		os.Exit(1)
	}

	log.Info("feed is valid")
	if quiet {
		fmt.Println("PASS")
	} else {
		fmt.Println("feed is valid")
	}
	return nil
}
