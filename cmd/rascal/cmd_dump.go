package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/rascal/internal/dump"
	"github.com/tangzhangming/rascal/internal/i18n"
	"github.com/tangzhangming/rascal/internal/symbol"
)

func newDumpCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Export the syntax tree as YAML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := dump.Format(format)
			if f != dump.FormatYAML && f != dump.FormatJSON {
				return errors.New(i18n.T(i18n.ErrUnknownFormat, format))
			}

			b, prog, err := a.parse(args[0])
			if err != nil {
				return err
			}
			defer a.release(b, prog)

			for _, err := range symbol.Resolve(prog) {
				a.printWarning(args[0] + ": " + err.Error())
			}
			return dump.Write(a.stdout, prog, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	return cmd
}
