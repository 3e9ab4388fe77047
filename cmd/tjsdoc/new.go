package main

import (
	"github.com/spf13/cobra"

	"geotjs/internal/domain/tjs10"
	"geotjs/internal/infrastructure/xmlcodec"
)

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new CLASS",
		Short: "print an empty instance of a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := tjs10.DefaultFactory().CreateByName(args[0])
			if err != nil {
				return err
			}
			return xmlcodec.EncodeInstance(cmd.Context(), cmd.OutOrStdout(), args[0], obj, xmlcodec.Options{Indent: true})
		},
	}
	return cmd
}
