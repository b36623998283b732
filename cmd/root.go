/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/acervo/internal/ioapi"
	"github.com/gnames/acervo/internal/iofs"
	"github.com/gnames/acervo/internal/iologger"
	"github.com/gnames/acervo/internal/ioterm"
	acervo "github.com/gnames/acervo/pkg"
	"github.com/gnames/acervo/pkg/app"
	"github.com/gnames/acervo/pkg/config"
	"github.com/gnames/acervo/pkg/parserpool"
	"github.com/gnames/acervo/pkg/view"
	"github.com/gnames/gn"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir   string
	opts      []config.Option
	cfg       *config.Config
	logWriter io.Writer

	cfgFile string
	apiURL  string
	timeout int
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", acervo.Version, acervo.Build),
		Use:     "acervo",
		Short:   "Acervo manages a plant catalog served by a REST API",
		Long: `Acervo is a client for a plant catalog ("acervo de plantas").

It fetches the whole catalog from the REST backend, searches it by popular
name, scientific name or family, and adds, edits and deletes plants.
The same operations are available in the browser with 'acervo serve'.

Configuration precedence (highest to lowest):
  1. CLI flags (--api-url, --timeout, --addr)
  2. Environment variables (ACERVO_*), also read from a local .env file
  3. Config file (~/.config/acervo/config.yaml)
  4. Built-in defaults

Environment Variables:
    ACERVO_API_BASE_URL       Backend root, e.g. http://127.0.0.1:8000
    ACERVO_API_TIMEOUT        Request timeout in seconds (0 = none)
    ACERVO_WEB_ADDR           Address of the browser UI
    ACERVO_LOG_LEVEL          Log level (debug/info/warn/error)
    ACERVO_LOG_FORMAT         Log format (json/text/tint)
    ACERVO_LOG_DESTINATION    Log destination (file/stderr/stdout)`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "acervo version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for acervo")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/acervo/config.yaml)")
	pf.StringVarP(&apiURL, "api-url", "u", "",
		"base URL of the plant catalog API")
	pf.IntVar(&timeout, "timeout", 0,
		"request timeout in seconds (0 = none)")

	rootCmd.AddCommand(
		getServeCmd(),
		getListCmd(),
		getShowCmd(),
		getAddCmd(),
		getEditCmd(),
		getDeleteCmd(),
		getSeedCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// The web UI keeps the log of previous runs, other commands start it
	// fresh. Only this first Init may truncate the file.
	appendLog := cmd.Name() == "serve"

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	closeLog()
	if logWriter, err = iologger.Init(config.LogDir(homeDir), defaultLog, appendLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	slog.Info("Starting acervo", "command", cmd.Name())

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	loadDotenv()

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, flagOptions(cmd)...)
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	closeLog()
	if logWriter, err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", configPath(homeDir),
		"api", cfg.API.BaseURL,
	)

	return nil
}

// flagOptions converts command line flags to config options. Only flags
// given explicitly override the configuration.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	fs := cmd.Flags()
	if fs.Changed("api-url") {
		res = append(res, config.OptAPIBaseURL(apiURL))
	}
	if fs.Changed("timeout") {
		res = append(res, config.OptAPITimeout(timeout))
	}
	if fs.Lookup("addr") != nil && fs.Changed("addr") {
		addr, _ := fs.GetString("addr")
		res = append(res, config.OptWebAddr(addr))
	}
	return res
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// closeLog closes the log file opened by bootstrap, standard streams are
// left open.
func closeLog() {
	if f, ok := logWriter.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		_ = f.Close()
	}
	logWriter = nil
}

func configPath(home string) string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.ConfigFilePath(home)
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := configPath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions().
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := func(s string) string {
		return config.EnvPrefix + "_" + s
	}

	// API configuration
	_ = v.BindEnv("api.base_url", env("API_BASE_URL"))
	_ = v.BindEnv("api.timeout", env("API_TIMEOUT"))

	// Web configuration
	_ = v.BindEnv("web.addr", env("WEB_ADDR"))

	// Log configuration
	_ = v.BindEnv("log.level", env("LOG_LEVEL"))
	_ = v.BindEnv("log.format", env("LOG_FORMAT"))
	_ = v.BindEnv("log.destination", env("LOG_DESTINATION"))

	v.AutomaticEnv()
}

// loadDotenv reads .env from the working directory. Variables already set
// in the environment are not overridden.
func loadDotenv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(".env"); err != nil {
		slog.Warn("Cannot load .env", "error", err)
	}
}

// newApp creates the application root for terminal commands. The returned
// function releases the parser pool.
func newApp(confirm app.Confirmer) (*app.App, func()) {
	pool := parserpool.NewPool(0)
	a := app.New(ioapi.New(cfg),
		app.OptRenderer(view.NewRenderer(pool)),
		app.OptNotifier(ioterm.NewNotifier()),
		app.OptConfirmer(confirm),
	)
	return a, pool.Close
}

// loadCatalog fetches the catalog, reporting failure to the user.
func loadCatalog(ctx context.Context, a *app.App) error {
	if err := a.Refresh(ctx); err != nil {
		gn.Warn("<warn>%s</warn>", app.MsgUnavailable)
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
