// Command tjsdoc validates, converts and inspects TJS 1.0 documents.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"geotjs/pkg/logger"
)

func main() {
	if err := execRootCmd(os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, out io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args[1:])
	cmd.SetOut(out)
	return cmd.ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "tjsdoc",
		Short:         "TJS 1.0 document tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger.New(logger.Config{Level: logLevel, OutputPaths: []string{"stderr"}})
			if err != nil {
				return err
			}
			cmd.SetContext(logger.WithLogger(cmd.Context(), log.WithComponent("tjsdoc")))
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newNewCmd())

	return cmd
}
