package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tangzhangming/rascal/internal/ast"
	"github.com/tangzhangming/rascal/internal/i18n"
)

// Config rascal 项目配置
type Config struct {
	Printer PrinterConfig `toml:"printer" yaml:"printer"`
	Log     LogConfig     `toml:"log" yaml:"log"`
	I18n    I18nConfig    `toml:"i18n" yaml:"i18n"`
}

// PrinterConfig 语法树打印配置
type PrinterConfig struct {
	Mode    string `toml:"mode" yaml:"mode"`       // box 或 indent
	Charset string `toml:"charset" yaml:"charset"` // unicode 或 ascii
	Types   bool   `toml:"types" yaml:"types"`     // 显示表达式类型
	Color   bool   `toml:"color" yaml:"color"`     // 终端着色
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn, error
	Format string `toml:"format" yaml:"format"` // text 或 json
}

// I18nConfig 语言配置，为空时根据环境变量检测
type I18nConfig struct {
	Language string `toml:"language" yaml:"language"`
}

// 按优先级排列的配置文件名
var fileNames = []string{"rascal.toml", "rascal.yaml", "rascal.yml"}

// Error 配置文件无法读取或内容无效
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Printer: PrinterConfig{
			Mode:    "box",
			Charset: "unicode",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// FindAndLoad 从指定目录向上查找配置文件并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 rascal.toml / rascal.yaml / rascal.yml
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		for _, name := range fileNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件，格式由扩展名决定，未设置的项保留默认值
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, config)
	default:
		err = toml.Unmarshal(content, config)
	}
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	if err := config.Validate(); err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return config, nil
}

// Validate 检查枚举类配置项
func (c *Config) Validate() error {
	if err := oneOf("printer.mode", c.Printer.Mode, "box", "indent"); err != nil {
		return err
	}
	if err := oneOf("printer.charset", c.Printer.Charset, "unicode", "ascii"); err != nil {
		return err
	}
	if err := oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error"); err != nil {
		return err
	}
	if err := oneOf("log.format", c.Log.Format, "text", "json"); err != nil {
		return err
	}
	if c.I18n.Language != "" {
		if _, ok := i18n.ParseLanguage(c.I18n.Language); !ok {
			return fmt.Errorf("i18n.language: unsupported language %q", c.I18n.Language)
		}
	}
	return nil
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s: %q is not one of %s", key, value, strings.Join(allowed, ", "))
}

// PrinterOptions 转换为打印选项，着色由调用方设置
func (c *Config) PrinterOptions() ast.Options {
	opts := ast.Options{ShowTypes: c.Printer.Types}
	if c.Printer.Mode == "indent" {
		opts.Mode = ast.ModeIndent
	}
	if c.Printer.Charset == "ascii" {
		opts.Charset = ast.CharsetASCII
	}
	return opts
}
