package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gitsper/announcenet/plotting"
)

// generatePlotsCommand reads a newline-separated list of result-document
// paths from stdin and renders the named plot.
func generatePlotsCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate-plots",
		Usage:     "read result-document paths from stdin and render a plot",
		ArgsUsage: "<plot> <output>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "overwrite existing plots"},
		},
		Action: func(c *cli.Context) error {
			plot := c.Args().Get(0)
			output := c.Args().Get(1)
			if plot == "" || output == "" {
				return cli.Exit("usage: generate-plots <plot> <output>", 1)
			}

			var paths []string
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := scanner.Text()
				if line != "" {
					paths = append(paths, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading result paths from stdin: %w", err)
			}

			fmt.Printf("generating %s to %q\n", plot, output)
			fmt.Printf("force: %v\n", c.Bool("force"))
			if err := plotting.Render(plot, paths, output, c.Bool("force")); err != nil {
				return err
			}
			fmt.Println("done.")
			return nil
		},
	}
}
