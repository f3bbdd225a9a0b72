package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/rascal/internal/ast"
	"github.com/tangzhangming/rascal/internal/symbol"
)

// newASTCmd 解析 -> 打印 -> 释放
func newASTCmd(a *app) *cobra.Command {
	var (
		mode  string
		ascii bool
		types bool
		color bool
	)

	cmd := &cobra.Command{
		Use:   "ast FILE",
		Short: "Print the syntax tree of a Rascal program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.PrinterOptions()
			useColor := a.cfg.Printer.Color

			// 命令行参数覆盖配置文件
			flags := cmd.Flags()
			if flags.Changed("mode") {
				switch mode {
				case "box":
					opts.Mode = ast.ModeBox
				case "indent":
					opts.Mode = ast.ModeIndent
				default:
					return fmt.Errorf("--mode: %q is not one of box, indent", mode)
				}
			}
			if flags.Changed("ascii") {
				opts.Charset = ast.CharsetUnicode
				if ascii {
					opts.Charset = ast.CharsetASCII
				}
			}
			if flags.Changed("types") {
				opts.ShowTypes = types
			}
			if flags.Changed("color") {
				useColor = color
			}
			if useColor {
				opts.Highlight = highlight
			}

			b, prog, err := a.parse(args[0])
			if err != nil {
				return err
			}
			defer a.release(b, prog)

			// 类型只有在语义分析之后才有意义
			if opts.ShowTypes {
				for _, err := range symbol.Resolve(prog) {
					a.printWarning(args[0] + ": " + err.Error())
				}
			}
			return ast.Fprint(a.stdout, prog, opts)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "box", "layout: box or indent")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "use ASCII branch markers instead of box-drawing characters")
	cmd.Flags().BoolVar(&types, "types", false, "resolve names and show expression types")
	cmd.Flags().BoolVar(&color, "color", false, "colorize node labels")
	return cmd
}
