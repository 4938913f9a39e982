// Package cli implements the addressbook command-line interface. It is the
// presentation layer: it trims and validates input, checks for duplicate
// names before adding, calls the address book and renders the results.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/addressbook/internal/logging"
	"github.com/mesh-intelligence/addressbook/internal/paths"
	"github.com/mesh-intelligence/addressbook/pkg/addressbook"
	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	file      string
	jsonMode  bool
	logLevel  string
	logFormat string
}

// app carries the state of one command invocation.
type app struct {
	flags    rootFlags
	cfg      *viper.Viper
	logger   *slog.Logger
	closeLog func() error
	book     types.AddressBook
	bookPath string
}

// ExitError carries the process exit code for an error returned by a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// userError marks err as caused by input: bad flags, validation, not found.
func userError(err error) error {
	return &ExitError{Code: exitUserError, Err: err}
}

// sysError marks err as an environment failure: I/O, persistence, config.
func sysError(err error) error {
	return &ExitError{Code: exitSysError, Err: err}
}

// NewRootCmd creates the top-level "addressbook" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "addressbook",
		Short: "A personal contact book",
		Long: `addressbook keeps personal contacts (name, phone, email, address) in a
single JSON file and lets you add, list, search, update and delete them.`,
		Version:       addressbook.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/addressbook)")
	root.PersistentFlags().StringVar(&a.flags.file, "file", "", "contacts file (default: $(CWD)/contacts.json)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.flags.logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newUpdateCmd(a))
	root.AddCommand(newDeleteCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newImportCmd(a))
	root.AddCommand(newCheckCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	a := &app{}
	if err := run(a, newRootCmd(a)); err != nil {
		fmt.Fprintln(os.Stderr, "addressbook:", err)
		os.Exit(exitCode(err))
	}
}

// run executes root and then releases the resources setup acquired, whether
// or not the command failed.
func run(a *app, root *cobra.Command) error {
	err := root.Execute()
	if cerr := a.teardown(); cerr != nil && err == nil {
		err = sysError(fmt.Errorf("close log file: %w", cerr))
	}
	return err
}

// exitCode maps an error from a command to a process exit code. Errors that
// did not come through userError or sysError are flag and argument errors
// raised by cobra.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return exitUserError
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	a.cfg = cfg

	level := a.flags.logLevel
	if level == "" {
		level = cfg.GetString(cfgKeyLogLevel)
	}
	format := a.flags.logFormat
	if format == "" {
		format = cfg.GetString(cfgKeyLogFormat)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:   level,
		Format:  format,
		Logfile: cfg.GetString(cfgKeyLogFile),
	}, cmd.ErrOrStderr())
	if err != nil {
		return userError(err)
	}
	a.logger = logger
	a.closeLog = closeLog
	a.logger.Debug("configuration loaded", "config_dir", configDir, "command", cmd.Name())
	return nil
}

// teardown closes the log file, if any. It is safe to call more than once.
func (a *app) teardown() error {
	if a.closeLog == nil {
		return nil
	}
	closeLog := a.closeLog
	a.closeLog = nil
	return closeLog()
}

// resolveFile returns the contacts file following flag > config > env > default.
func (a *app) resolveFile() (string, error) {
	var configured string
	if a.cfg != nil {
		configured = a.cfg.GetString(cfgKeyFile)
	}
	return paths.ResolveFile(a.flags.file, configured)
}

// loadPolicy returns the configured load policy.
func (a *app) loadPolicy() string {
	if a.cfg == nil {
		return ""
	}
	return a.cfg.GetString(cfgKeyLoadPolicy)
}

// openBook opens the address book once per invocation.
func (a *app) openBook() (types.AddressBook, error) {
	if a.book != nil {
		return a.book, nil
	}

	path, err := a.resolveFile()
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve contacts file: %w", err))
	}

	book, err := addressbook.Open(types.Config{File: path, LoadPolicy: a.loadPolicy()}, a.logger)
	if err != nil {
		if errors.Is(err, types.ErrLoadPolicyUnknown) {
			return nil, userError(err)
		}
		return nil, sysError(err)
	}
	a.book = book
	a.bookPath = path
	return book, nil
}

// persistError reports a failed save. The change stays applied in memory but
// may not be on disk.
func persistError(w io.Writer, err error) error {
	fmt.Fprintln(w, "warning: the change may not have been saved")
	return sysError(err)
}
