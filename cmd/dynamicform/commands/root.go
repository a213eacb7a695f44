// Package commands implements the dynamicform command line tool.
package commands

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-dynamicform/pkg/assets"
	"github.com/goliatone/go-dynamicform/pkg/config"
)

// EnvPrefix namespaces environment overrides, e.g. DYNAMICFORM_ENV.
const EnvPrefix = "DYNAMICFORM"

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// Option customises the command tree, mainly for tests.
type Option func(*app)

// WithAsk replaces the interactive prompt used by init.
func WithAsk(ask func(qs []*survey.Question, response any, opts ...survey.AskOpt) error) Option {
	return func(a *app) {
		if ask != nil {
			a.ask = ask
		}
	}
}

// WithViper supplies the viper instance flags and environment are bound to.
func WithViper(v *viper.Viper) Option {
	return func(a *app) {
		if v != nil {
			a.viper = v
		}
	}
}

type settings struct {
	Env         string
	Definitions string
	Templates   string
	BaseURL     string
	LogLevel    string
}

type app struct {
	viper   *viper.Viper
	ask     func(qs []*survey.Question, response any, opts ...survey.AskOpt) error
	cfgFile string
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{viper: viper.New(), ask: survey.Ask}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	root := &cobra.Command{
		Use:   "dynamicform",
		Short: "Render and scaffold dynamic form widgets",
		Long: `dynamicform renders repeatable form groups from widget definitions and
prints the markup together with the scripts the browser runtime needs.

Definitions are YAML or JSON files with a top level "widgets" map. Without
--definitions the bundled examples are used.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	flags.String("env", "prod", "asset environment; dev serves unminified scripts")
	flags.String("definitions", "", "directory holding widget definitions (default: bundled examples)")
	flags.String("templates", "", "directory holding body templates (default: the definitions directory)")
	flags.String("base-url", assets.DefaultBaseURL, "URL prefix for published asset bundles")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	_ = a.viper.BindPFlags(flags)

	root.AddCommand(newRenderCommand(a), newInitCommand(a), newFieldsCommand())
	return root
}

func (a *app) initConfig() error {
	a.viper.SetEnvPrefix(EnvPrefix)
	a.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.viper.AutomaticEnv()

	if a.cfgFile == "" {
		return nil
	}
	a.viper.SetConfigFile(a.cfgFile)
	if err := a.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", a.cfgFile, err)
	}
	return nil
}

func (a *app) settings() settings {
	return settings{
		Env:         a.viper.GetString("env"),
		Definitions: a.viper.GetString("definitions"),
		Templates:   a.viper.GetString("templates"),
		BaseURL:     a.viper.GetString("base-url"),
		LogLevel:    a.viper.GetString("log-level"),
	}
}

func (s settings) definitionsFS() fs.FS {
	if s.Definitions == "" {
		return config.EmbeddedFS()
	}
	return os.DirFS(s.Definitions)
}

func (s settings) templatesFS() fs.FS {
	if s.Templates == "" {
		return s.definitionsFS()
	}
	return os.DirFS(s.Templates)
}

func (s settings) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
