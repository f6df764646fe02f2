package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/cs2kit/cs2/cli/disasm"
	"github.com/cs2kit/cs2/cli/scan"
	"github.com/cs2kit/cs2/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "cs2\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates a cs2 instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "cs2"
	ctl.Version = config.Version
	ctl.Usage = "CS2 bytecode disassembler and control flow analyzer"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, disasm.NewCommands()...)
	ctl.Commands = append(ctl.Commands, scan.NewCommands()...)
	return ctl
}
