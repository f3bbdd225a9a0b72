package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/rascal/internal/i18n"
	"github.com/tangzhangming/rascal/internal/symbol"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Resolve names and check types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			b, prog, err := a.parse(path)
			if err != nil {
				return err
			}
			defer a.release(b, prog)

			errs := symbol.Resolve(prog)
			for _, err := range errs {
				a.printError(path + ": " + err.Error())
			}
			if len(errs) > 0 {
				return errors.New(i18n.T(i18n.ErrCheckFailed, path, len(errs)))
			}
			fmt.Fprintln(a.stdout, okStyle.Render(i18n.T(i18n.MsgCheckOK, path)))
			return nil
		},
	}
}
