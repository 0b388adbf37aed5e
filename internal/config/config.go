package config

import (
	"github.com/spf13/pflag"
)

// OutputFile is the fixed name the JSON report is written to.
const OutputFile = "system_report.json"

// DefaultTopN is the process ranking size when --top is not given.
const DefaultTopN = 5

// Config carries the run options for one invocation. It is built once
// from the command line and passed by value; nothing mutates it later.
type Config struct {
	TopN        int
	JSON        bool
	Quiet       bool
	Interactive bool
}

func Default() Config {
	return Config{TopN: DefaultTopN}
}

// Load parses args (not including the program name) into a Config.
// The returned error is pflag.ErrHelp for --help, or a usage error.
func Load(args []string) (Config, error) {
	cfg := Default()

	fs := pflag.NewFlagSet("sysreport", pflag.ContinueOnError)
	fs.IntVar(&cfg.TopN, "top", cfg.TopN, "how many processes to keep in each top ranking")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "write the report to "+OutputFile)
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "skip the console summary")
	fs.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "page the console summary in a scrollable view")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.TopN < 0 {
		cfg.TopN = 0
	}
	return cfg, nil
}
