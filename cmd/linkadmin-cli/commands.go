package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/trifall/link-shortener-ui/internal/bootstrap"
	"github.com/trifall/link-shortener-ui/internal/service"
)

const (
	defaultValidateTimeout  = 10 * time.Second
	defaultMigrationTimeout = 5 * time.Minute
)

type validateOptions struct {
	Key     string
	Timeout time.Duration
	ShowKey bool
}

func parseValidateFlags(args []string) (validateOptions, error) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts validateOptions
	fs.DurationVar(&opts.Timeout, "timeout", defaultValidateTimeout, "Backend request timeout")
	fs.BoolVar(&opts.ShowKey, "show-key", false, "Print the key unmasked")

	if err := fs.Parse(args); err != nil {
		return validateOptions{}, err
	}
	if fs.NArg() != 1 {
		return validateOptions{}, errors.New("usage: validate [flags] <key|->")
	}
	opts.Key = fs.Arg(0)
	if opts.Timeout <= 0 {
		opts.Timeout = defaultValidateTimeout
	}
	return opts, nil
}

// readKey returns the key argument, or the first line of in when the argument is "-".
func readKey(arg string, in io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	if in == nil {
		return "", errors.New("no input to read key from")
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read key: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runValidate(cmdCtx *commandContext, args []string) error {
	opts, err := parseValidateFlags(args)
	if err != nil {
		return err
	}
	key, err := readKey(opts.Key, cmdCtx.In)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := service.NewKeyValidationClient(service.KeyValidationClientOptions{
		BaseURL:    cmdCtx.Config.API.PublicURL,
		HTTPClient: &http.Client{Timeout: opts.Timeout},
		Logger:     cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	res := client.Validate(ctx, key)
	rec, ok := res.Record()
	if !ok {
		return errors.New(res.Error)
	}
	if !opts.ShowKey {
		rec = rec.Redacted()
	}
	if err := writeJSON(cmdCtx.Out, rec); err != nil {
		return err
	}
	if !rec.IsValid() {
		return errors.New("passkey is not active")
	}
	return nil
}

type settingsOptions struct {
	SaveKey *bool
}

func parseSettingsFlags(args []string) (settingsOptions, error) {
	fs := flag.NewFlagSet("settings", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts settingsOptions
	fs.Func("save-key", "Remember validated keys in a cookie (true|false)", func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", v)
		}
		opts.SaveKey = &b
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return settingsOptions{}, err
	}
	if fs.NArg() > 0 {
		return settingsOptions{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

func runSettings(cmdCtx *commandContext, args []string) error {
	opts, err := parseSettingsFlags(args)
	if err != nil {
		return err
	}
	ctx := cmdCtx.Ctx

	opened, err := bootstrap.OpenStore(ctx, cmdCtx.Config.Store, cmdCtx.Logger)
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	defer func() {
		if closeErr := opened.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("settings store close failed", "error", closeErr)
		}
	}()

	persist, err := service.NewPersistence(service.PersistenceOptions{
		Store:  opened.Store,
		Config: service.PersistenceConfig{DefaultSaveKey: cmdCtx.Config.Passkey.DefaultSaveKey},
		Logger: cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	if opts.SaveKey != nil {
		settings, loadErr := persist.LoadSettings(ctx)
		if loadErr != nil {
			return loadErr
		}
		settings.SaveKey = *opts.SaveKey
		if saveErr := persist.SaveSettings(ctx, settings); saveErr != nil {
			return saveErr
		}
		cmdCtx.Logger.Info("settings updated", "save_key", settings.SaveKey)
	}

	settings, err := persist.LoadSettings(ctx)
	if err != nil {
		return err
	}
	return writeJSON(cmdCtx.Out, settings)
}

type migrateOptions struct {
	Timeout time.Duration
}

func parseMigrateFlags(args []string) (migrateOptions, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts migrateOptions
	fs.DurationVar(&opts.Timeout, "timeout", defaultMigrationTimeout, "Maximum time to wait for migrations")

	if err := fs.Parse(args); err != nil {
		return migrateOptions{}, err
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultMigrationTimeout
	}
	return opts, nil
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Store.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("db close failed", "error", closeErr)
		}
	}()

	cmdCtx.Logger.Info("running database migrations")

	if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
		return fmt.Errorf("run migrations: %w", migrateErr)
	}

	cmdCtx.Logger.Info("migrations completed successfully")
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
