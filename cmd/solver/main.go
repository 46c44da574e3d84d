package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// stdout receives command output; logs go to stderr.
var stdout io.Writer = os.Stdout

// Globals are flags shared by every command.
type Globals struct {
	Debug     bool   `help:"enable debug logging" env:"POSTFLOP_DEBUG"`
	LogFormat string `help:"log output format" enum:"console,json" default:"console" env:"POSTFLOP_LOG_FORMAT"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Solve   SolveCmd         `cmd:"" help:"Solve a post-flop spot and write a snapshot"`
	Show    ShowCmd          `cmd:"" help:"Show strategies from a snapshot"`
	Export  ExportCmd        `cmd:"" help:"Export a snapshot as a TOML report"`
	ICM     ICMCmd           `cmd:"icm" help:"Print ICM equities for two stacks"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("solver"),
		kong.Description("Post-flop CFR subgame solver"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
