// Command giongo compiles Japanese onomatopoeia sources (a tab-delimited
// word list and the manga sound-effect sheets) into one lookup table keyed
// by phonetic form.
//
// Run without arguments it compiles with the default paths. Subcommands
// check and preview work on an already compiled dictionary.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	giongoerr "github.com/takaryo1010/giongo/internal/errors"
	"github.com/takaryo1010/giongo/internal/logging"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config    string `name:"config" short:"c" help:"YAML config file." type:"path"`
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn or error."`
	LogFormat string `name:"log-format" help:"Log format: text or json."`
}

// CLI defines the command-line interface for giongo.
type CLI struct {
	Globals

	Compile CompileCmd `cmd:"" default:"1" help:"Compile the sources into one dictionary (default)."`
	Check   CheckCmd   `cmd:"" help:"Validate a compiled dictionary."`
	Preview PreviewCmd `cmd:"" help:"Render a compiled dictionary as an HTML page."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("giongo"),
		kong.Description("Compile Japanese onomatopoeia sources into one lookup table."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// setup loads the configuration and builds the logger. Flags override
// config values.
func (g *Globals) setup() (*Config, *slog.Logger, error) {
	cfg, err := LoadConfig(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	return cfg, logging.NewLogger(cfg.Log, os.Stderr), nil
}

// CompileCmd compiles every source and writes the dictionary.
type CompileCmd struct {
	Output string `name:"output" short:"o" help:"Output path (.json, .yaml or .yml)." type:"path"`
	Format string `name:"format" short:"f" help:"Output format: json or yaml. Defaults to the output extension."`
	DryRun bool   `name:"dry-run" help:"Compile and report without writing the dictionary."`
}

func (c *CompileCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if _, err := compile(cfg, logger); err != nil {
		var pe *giongoerr.ParseError
		if giongoerr.As(err, &pe) {
			logger.Error("malformed source",
				slog.String("format", pe.Format),
				slog.String("path", pe.Path),
				slog.Int("row", pe.Row),
			)
		}
		return err
	}
	return nil
}

func (c *CompileCmd) apply(cfg *Config) {
	if c.Output != "" {
		cfg.OutputPath = c.Output
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}
	if c.DryRun {
		cfg.DryRun = true
	}
}

// CheckCmd validates a compiled dictionary.
type CheckCmd struct {
	Path string `arg:"" optional:"" help:"Compiled dictionary. Defaults to the configured output path." type:"path"`
}

func (c *CheckCmd) Run(g *Globals) error {
	cfg, _, err := g.setup()
	if err != nil {
		return err
	}
	path := c.Path
	if path == "" {
		path = cfg.OutputPath
	}
	return validateDictionary(path)
}

// PreviewCmd renders a compiled dictionary as HTML.
type PreviewCmd struct {
	Path  string `arg:"" optional:"" help:"Compiled dictionary. Defaults to the configured output path." type:"path"`
	Out   string `name:"out" short:"o" help:"Write the page to this file instead of stdout." type:"path"`
	Title string `name:"title" help:"Page title." default:"Onomatopoeia"`
}

func (c *PreviewCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	path := c.Path
	if path == "" {
		path = cfg.OutputPath
	}

	dict, err := LoadDictionary(path)
	if err != nil {
		return err
	}
	page, err := RenderPreview(dict, c.Title, logger)
	if err != nil {
		return err
	}

	if c.Out == "" {
		_, err := os.Stdout.Write(page)
		return err
	}
	if err := os.WriteFile(c.Out, page, 0644); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	fmt.Printf("File '%s' has been updated.\n", c.Out)
	return nil
}
