package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/rascal/internal/ast"
	"github.com/tangzhangming/rascal/internal/config"
	"github.com/tangzhangming/rascal/internal/i18n"
	"github.com/tangzhangming/rascal/internal/logging"
	"github.com/tangzhangming/rascal/internal/parser"
)

// app 各子命令共享的状态
type app struct {
	cfgFile string
	verbose bool
	lang    string

	cfg *config.Config
	log *slog.Logger

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "rascal",
		Short: "Rascal front-end: parse, check and inspect syntax trees",
		Long: `rascal parses Rascal programs and renders their abstract syntax tree.

Commands:
  ast     print the syntax tree as a box-drawing or indented diagram
  dump    export the syntax tree as YAML or JSON
  check   run name resolution and type checking
  tokens  print the token stream`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: rascal.toml searched upward from the input)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.lang, "lang", "", "message language: en, zh or pt")

	root.AddCommand(
		newASTCmd(a),
		newDumpCmd(a),
		newCheckCmd(a),
		newTokensCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup 加载配置、设置语言并创建日志
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.lang != "" {
		lang, ok := i18n.ParseLanguage(a.lang)
		if !ok {
			return fmt.Errorf("--lang: unsupported language %q", a.lang)
		}
		i18n.SetLanguage(lang)
	}

	cfg, path, err := a.loadConfig(args)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.lang == "" && cfg.I18n.Language != "" {
		lang, _ := i18n.ParseLanguage(cfg.I18n.Language)
		i18n.SetLanguage(lang)
	}

	lc := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: a.stderr}
	if a.verbose {
		lc.Level = "debug"
	}
	a.log = logging.New(lc)
	a.log.Debug("config", "path", path, "language", i18n.GetLanguage())
	return nil
}

// loadConfig --config 优先，否则从输入文件所在目录向上查找
func (a *app) loadConfig(args []string) (*config.Config, string, error) {
	if a.cfgFile != "" {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return nil, "", errors.New(i18n.T(i18n.ErrCannotLoadConfig, err))
		}
		return cfg, a.cfgFile, nil
	}

	dir := "."
	if len(args) > 0 && args[0] != "-" {
		dir = filepath.Dir(args[0])
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", errors.New(i18n.T(i18n.ErrCannotGetCwd, err))
	}
	cfg, path, err := config.FindAndLoad(abs)
	if err != nil {
		return nil, "", errors.New(i18n.T(i18n.ErrCannotLoadConfig, err))
	}
	return cfg, path, nil
}

// readSource 读取源文件，"-" 表示标准输入
func (a *app) readSource(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.New(i18n.T(i18n.ErrCannotReadFile, path, err))
	}
	return string(data), nil
}

// parse 读取并解析源文件，语法错误逐条输出到 stderr
func (a *app) parse(path string) (*ast.Builder, *ast.Program, error) {
	src, err := a.readSource(path)
	if err != nil {
		return nil, nil, err
	}

	b := ast.NewBuilder()
	start := time.Now()
	prog, err := parser.ParseWithBuilder(b, src)
	if err != nil {
		var list parser.ErrorList
		if !errors.As(err, &list) {
			return nil, nil, err
		}
		for _, msg := range list {
			a.printError(path + ": " + msg)
		}
		return nil, nil, errors.New(i18n.T(i18n.ErrParseError, path, len(list)))
	}

	alloc := b.Allocated()
	a.log.Debug("parsed", "file", path, "nodes", alloc.Nodes, "names", alloc.Names, "elapsed", time.Since(start))
	return b, prog, nil
}

// release 释放语法树并记录统计
func (a *app) release(b *ast.Builder, prog *ast.Program) {
	freed := b.Release(prog)
	live := b.Live()
	a.log.Debug("released", "nodes", freed.Nodes, "names", freed.Names,
		"live_nodes", live.Nodes, "live_names", live.Names)
}

func (a *app) printError(msg string) {
	fmt.Fprintln(a.stderr, errorStyle.Render(msg))
}

func (a *app) printWarning(msg string) {
	fmt.Fprintln(a.stderr, warnStyle.Render(msg))
}
