package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/rascal/internal/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	var comments bool

	cmd := &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a Rascal program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.readSource(args[0])
			if err != nil {
				return err
			}
			for _, tok := range lexer.Tokenize(src) {
				if tok.Type == lexer.TOKEN_COMMENT && !comments {
					continue
				}
				fmt.Fprintf(a.stdout, "%d:%d\t%s\t%s\n", tok.Line, tok.Column, tok.Type, tok.Literal)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&comments, "comments", false, "include comment tokens")
	return cmd
}
