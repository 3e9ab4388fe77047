package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"geotjs/internal/infrastructure/xmlcodec"
	"geotjs/pkg/logger"
)

func newConvertCmd() *cobra.Command {
	var (
		output   string
		indent   bool
		compress string
	)

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "re-encode a document, optionally compressed",
		Long:  "Reads FILE (plain, gzip or zstd; \"-\" for stdin) and writes it with canonical namespace declarations.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			compression, err := xmlcodec.ParseCompression(compress)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			doc, err := xmlcodec.Decode(cmd.Context(), in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, cerr := os.Create(output)
				if cerr != nil {
					return cerr
				}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
				}()
				out = f
			}

			element, _ := doc.Element()
			logger.Info(cmd.Context(), "converting", "element", element, "compression", compression)
			return xmlcodec.Encode(cmd.Context(), out, doc, xmlcodec.Options{Indent: indent, Compression: compression})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&indent, "indent", true, "pretty-print the output")
	cmd.Flags().StringVar(&compress, "compress", "none", "output compression: none, gzip or zstd")
	return cmd
}
