package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"geotjs/internal/domain/validation"
	"geotjs/internal/infrastructure/xmlcodec"
	"geotjs/pkg/logger"
)

var errInvalid = errors.New("invalid documents")

func newValidateCmd() *cobra.Command {
	var maxBytes int64

	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "check documents against the schema rules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				ok, err := validateFile(cmd.Context(), cmd.OutOrStdout(), path, maxBytes)
				if err != nil {
					return err
				}
				if !ok {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalid, failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", 0, "reject documents larger than this after decompression")
	return cmd
}

// validateFile prints one line per issue, or "ok". Unreadable or
// malformed files count as invalid; only I/O on the output fails the run.
func validateFile(ctx context.Context, out io.Writer, path string, maxBytes int64) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn(ctx, "cannot open document", "file", path, "error", err)
		_, werr := fmt.Fprintf(out, "%s: %v\n", path, err)
		return false, werr
	}
	defer f.Close()

	doc, err := xmlcodec.DecodeWithOptions(ctx, f, xmlcodec.DecodeOptions{MaxBytes: maxBytes})
	if err != nil {
		logger.Warn(ctx, "cannot decode document", "file", path, "error", err)
		_, werr := fmt.Fprintf(out, "%s: %v\n", path, err)
		return false, werr
	}

	report := validation.Default().Validate(ctx, doc)
	logger.Debug(ctx, "validated", "file", path, "issues", len(report.Issues))
	if report.Valid {
		_, err := fmt.Fprintf(out, "%s: ok\n", path)
		return true, err
	}
	for _, is := range report.Issues {
		if _, err := fmt.Fprintf(out, "%s: %s: %s\n", path, is.Path, is.Message); err != nil {
			return false, err
		}
	}
	return false, nil
}
