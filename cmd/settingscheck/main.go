// Command settingscheck validates user settings and related records read from
// a file or stdin and prints the parsed result as JSON.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/usersettings/internal/account"
	"github.com/mtlprog/usersettings/internal/config"
	"github.com/mtlprog/usersettings/internal/schema"
	"github.com/mtlprog/usersettings/internal/settings"
)

func main() {
	cfg := config.Load()
	slog.SetDefault(newLogger(cfg, os.Stderr))

	if err := newApp(cfg, os.Stdin, os.Stdout).Run(os.Args); err != nil {
		slog.Error("check failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

type runner struct {
	cfg    config.Config
	stdin  io.Reader
	stdout io.Writer
}

func newApp(cfg config.Config, stdin io.Reader, stdout io.Writer) *cli.App {
	r := &runner{cfg: cfg, stdin: stdin, stdout: stdout}

	return &cli.App{
		Name:  "settingscheck",
		Usage: "validate portfolio user settings payloads",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "unknown-fields",
				Usage: `what to do with undeclared keys: "drop" or "error"`,
				Value: string(cfg.UnknownFieldPolicy()),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "settings",
				Usage:     "validate a flat settings record and print the grouped settings",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "flatten", Usage: "print the normalized flat record instead"},
				},
				Action: r.settings,
			},
			payloadCommand(r, "account", "validate a user account record", account.ParseUserAccount),
			payloadCommand(r, "keys", "validate external service keys", account.ParseExternalServiceKeys),
			payloadCommand(r, "tags", "validate a tags record", account.ParseTags),
			payloadCommand(r, "rates", "validate an exchange rates record", account.ParseExchangeRates),
		},
	}
}

func payloadCommand[T any](r *runner, name, usage string, parse func(any, ...schema.Option) (T, error)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "[file]",
		Action: func(c *cli.Context) error {
			payload, opts, err := r.input(c)
			if err != nil {
				return err
			}
			v, err := parse(payload, opts...)
			if err != nil {
				return report(name, err)
			}
			return r.print(v)
		},
	}
}

func (r *runner) settings(c *cli.Context) error {
	payload, opts, err := r.input(c)
	if err != nil {
		return err
	}
	model, err := settings.Parse(payload, opts...)
	if err != nil {
		return report("settings", err)
	}
	if !c.Bool("flatten") {
		return r.print(model)
	}

	record, err := settings.Flatten(model)
	if err != nil {
		return fmt.Errorf("flattening settings: %w", err)
	}
	return r.print(record)
}

// input reads the payload named by the first argument, or stdin when there
// is none, and resolves the validation options from global flags.
func (r *runner) input(c *cli.Context) ([]byte, []schema.Option, error) {
	policy, err := schema.ParseUnknownFieldPolicy(c.String("unknown-fields"))
	if err != nil {
		return nil, nil, err
	}

	src := r.stdin
	if path := c.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening payload: %w", err)
		}
		defer f.Close()
		src = f
	}

	limit := int64(r.cfg.MaxPayloadBytes)
	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, nil, fmt.Errorf("reading payload: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, nil, fmt.Errorf("payload exceeds %d bytes", limit)
	}

	slog.Debug("payload read", "command", c.Command.Name, "bytes", len(data), "unknown_fields", policy)
	return data, []schema.Option{schema.WithUnknownFields(policy)}, nil
}

func (r *runner) print(v any) error {
	enc := json.NewEncoder(r.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

// report logs each validation issue and returns err for the exit status.
func report(command string, err error) error {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		for _, issue := range verr.Issues {
			slog.Warn("validation issue", "command", command, "path", issue.Path, "code", issue.Code, "message", issue.Message)
		}
		return fmt.Errorf("%s: %d validation issues", verr.Schema, len(verr.Issues))
	}

	var rerr *settings.ResolutionError
	if errors.As(err, &rerr) {
		slog.Warn("unresolved main currency", "command", command, "ticker", rerr.Ticker)
	}
	return err
}
