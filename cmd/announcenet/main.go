// Command announcenet analyzes whether a compromised MAPF agent can reach
// a forbidden cell undetected, under a chosen announcement strategy.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "announcenet",
		Usage: "analyze attacker behavior against MAPF announcement strategies",
		Commands: []*cli.Command{
			analyzeAttackersCommand(),
			generatePlotsCommand(),
			computeSecureAnnouncementsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
