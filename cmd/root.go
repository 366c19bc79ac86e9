package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"book_browser/browse"
	"book_browser/catalog"
	"book_browser/lang"
	"book_browser/ui"
	"book_browser/utils"
)

type rootFlags struct {
	configPath  string
	catalogPath string
	pageSize    int
	theme       string
	language    string
	logLevel    string
	logFile     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "book_browser",
		Short:         "Browse a book catalog in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", utils.DefaultConfigPath(), "Path to config.toml")
	pf.StringVar(&flags.catalogPath, "catalog", "", "Catalog file (.json, .yaml, .toml); the built-in sample when empty")
	pf.IntVar(&flags.pageSize, "page-size", browse.DefaultPageSize, "Books revealed per page")
	pf.StringVar(&flags.theme, "theme", "system", "Colour theme: day, night or system")
	pf.StringVar(&flags.language, "lang", string(lang.LocaleEnglish), "Interface language")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error, disabled)")
	pf.StringVar(&flags.logFile, "log-file", "", "Log file; defaults to browser.log in the config dir")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// app is everything a command needs once config, catalog and logger are ready.
type app struct {
	cfg     utils.Config
	log     *utils.Logger
	session *browse.Session
	closers []io.Closer
}

func (a *app) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// config reads the config file and lets explicitly set flags win.
func (f *rootFlags) config(cmd *cobra.Command) (utils.Config, error) {
	cfg, err := utils.LoadConfig(f.configPath)
	if err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("catalog") {
		cfg.Catalog.Path = f.catalogPath
	}
	if changed("page-size") {
		cfg.Catalog.PageSize = f.pageSize
	}
	if changed("theme") {
		cfg.UI.Theme = f.theme
	}
	if changed("lang") {
		cfg.UI.Language = f.language
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-file") {
		cfg.Log.File = f.logFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load prepares an app. Interactive runs own the terminal, so their logs
// always go to a file.
func (f *rootFlags) load(cmd *cobra.Command, interactive bool) (*app, error) {
	cfg, err := f.config(cmd)
	if err != nil {
		return nil, err
	}
	lang.SetLocale(lang.Locale(cfg.UI.Language))

	a := &app{cfg: cfg}

	opts := utils.LogOptions{Level: cfg.Log.Level, HumanReadable: true}
	switch {
	case cfg.Log.Level == "disabled":
		opts.Writer = io.Discard
	case interactive || cfg.Log.File != "":
		file, err := utils.OpenLogFile(cfg.Log.File)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		a.closers = append(a.closers, file)
		opts.Writer = file
	default:
		opts.Writer = cmd.ErrOrStderr()
	}
	a.log, err = utils.NewLogger(opts)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	store, err := openCatalog(cfg.Catalog.Path)
	if err != nil {
		a.log.Error(err, "catalog load failed")
		a.Close()
		return nil, err
	}
	a.log.WithFields(map[string]any{"books": store.Len(), "path": cfg.Catalog.Path}).Info("catalog loaded")

	a.session = browse.NewSession(store, cfg.Catalog.PageSize, a.log)
	return a, nil
}

func openCatalog(path string) (*catalog.Store, error) {
	if path == "" {
		return catalog.LoadSample()
	}
	return catalog.Load(path)
}

func runBrowser(cmd *cobra.Command, flags *rootFlags) error {
	a, err := flags.load(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	return ui.RunApp(a.session, ui.Options{
		Theme: ui.ResolveTheme(a.cfg.UI.Theme),
		Log:   a.log,
	})
}
