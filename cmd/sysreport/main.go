// sysreport takes a one-shot telemetry snapshot of the local host and
// prints a console summary, optionally writing the full report as
// indented JSON. Partial data-source failures never change the exit
// status; they show up as markers inside the report.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"sysreport/internal/collect"
	"sysreport/internal/config"
	"sysreport/internal/export"
	"sysreport/internal/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	report := collect.Collect(cfg)

	if !cfg.Quiet {
		text := render.Render(report)
		if cfg.Interactive {
			if err := render.Page(text); err != nil {
				return fmt.Errorf("interactive view: %w", err)
			}
		} else {
			fmt.Print(text)
		}
	}

	if cfg.JSON {
		if err := export.Write(report, config.OutputFile); err != nil {
			return err
		}
		fmt.Printf("report written to %s\n", config.OutputFile)
	}

	return nil
}
