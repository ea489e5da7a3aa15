package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/objfactory/pkg/errors"
	"github.com/arthur-debert/objfactory/pkg/logging"
	"github.com/arthur-debert/objfactory/pkg/readers"
)

var version = "dev"

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "objfactory",
		Short: "Inspect documents through the registered format readers",
		Long: `objfactory decodes structured documents (json, xml, yaml, toml)
through its registry of format readers. Formats are self-registered at
startup; 'objfactory formats' shows the set compiled into this binary.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newFormatsCmd())
	rootCmd.AddCommand(newDecodeCmd())

	return rootCmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the registered document formats",
		Run: func(cmd *cobra.Command, args []string) {
			for _, format := range readers.List() {
				fmt.Fprintln(cmd.OutOrStdout(), format)
			}
		},
	}
}

func newDecodeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a document and print its top-level keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogDuration(time.Now(), "decode")

			path := args[0]
			name := format
			if name == "" {
				name = strings.TrimPrefix(filepath.Ext(path), ".")
			}
			if name == "" {
				return errors.Newf(errors.ErrInvalidInput,
					"cannot infer format from '%s', pass --format", path)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					return errors.Wrapf(err, errors.ErrFileNotFound, "no such file '%s'", path)
				}
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot read '%s'", path)
			}

			decoded, err := readers.Decode(name, data)
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(decoded))
			for key := range decoded {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", key, decoded[key])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "",
		"Format to decode with (default: inferred from the file extension)")

	return cmd
}
