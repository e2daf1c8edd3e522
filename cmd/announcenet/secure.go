package main

import "github.com/urfave/cli/v2"

// computeSecureAnnouncementsCommand mirrors the original analysis's
// unimplemented subcommand: it always exits 1 with a message, since no
// announcement-synthesis algorithm was ever specified.
func computeSecureAnnouncementsCommand() *cli.Command {
	return &cli.Command{
		Name:  "compute-secure-announcements",
		Usage: "synthesize an announcement strategy that secures every candidate safe cell (not implemented)",
		Action: func(c *cli.Context) error {
			return cli.Exit("feature not implemented, exiting", 1)
		},
	}
}
