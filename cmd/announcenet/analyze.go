package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/gitsper/announcenet/announce"
	"github.com/gitsper/announcenet/experiment"
	"github.com/gitsper/announcenet/mapf"
	"github.com/gitsper/announcenet/yamldoc"
)

// analyzeAttackersCommand simulates or analyzes a population of
// (attacker, safe cell) candidates against a chosen announcement
// strategy, writing a bold or cautious result document.
func analyzeAttackersCommand() *cli.Command {
	return &cli.Command{
		Name:  "analyze-attackers",
		Usage: "run bold or cautious attacker analysis over an instance/solution pair",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Required: true, Usage: "attacker type: bold or cautious"},
			&cli.StringFlag{Name: "mapf-instance", Aliases: []string{"m"}, Required: true, Usage: "path to instance YAML"},
			&cli.StringFlag{Name: "mapf-solution", Aliases: []string{"s"}, Required: true, Usage: "path to solution YAML"},
			&cli.StringFlag{Name: "announcement-strategy", Aliases: []string{"a"}, Required: true, Usage: "kahead, kgrouped, robust, or custom"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: "path to output file"},
			&cli.IntFlag{Name: "lookahead", Aliases: []string{"k"}, Usage: "fixed lookahead (kahead) or grouping size (kgrouped)"},
			&cli.StringFlag{Name: "custom-announcements", Aliases: []string{"c"}, Usage: "path to custom announcements YAML"},
			&cli.BoolFlag{Name: "skip-large", Aliases: []string{"x"}, Usage: "do nothing if lookahead exceeds makespan+1"},
			&cli.BoolFlag{Name: "no-mitigation", Aliases: []string{"n"}, Usage: "disable mitigation-branch detections in the bold simulator"},
		},
		Action: runAnalyzeAttackers,
	}
}

func runAnalyzeAttackers(c *cli.Context) error {
	attackerType := c.String("type")
	if attackerType != "bold" && attackerType != "cautious" {
		return cli.Exit(fmt.Sprintf("unknown attacker type %q, want bold or cautious", attackerType), 1)
	}

	instance, err := yamldoc.LoadInstance(c.String("mapf-instance"))
	if err != nil {
		return err
	}
	solution, err := yamldoc.LoadSolution(c.String("mapf-solution"))
	if err != nil {
		return err
	}

	announcements, err := resolveAnnouncements(c, instance, solution)
	if err != nil {
		return err
	}

	ctx := context.Background()
	output := c.String("output")

	switch attackerType {
	case "bold":
		result := experiment.RunBold(ctx, instance, solution, announcements, !c.Bool("no-mitigation"))
		missRate, _ := result.MissRate()
		fmt.Printf("%5d / %5d dangerous and undetected. %.2f miss rate\n",
			result.DangerousUndetectedCount(), len(result.Attempts), missRate)
		if err := yamldoc.SaveBoldResult(output, result, false); err != nil {
			return err
		}
	case "cautious":
		result := experiment.RunCautious(ctx, instance, solution, announcements)
		fmt.Printf("%5d / %5d secure.\n", result.SecureCount(), len(result.Attempts))
		if err := yamldoc.SaveCautiousResult(output, result, false); err != nil {
			return err
		}
	}
	return nil
}

func resolveAnnouncements(c *cli.Context, instance mapf.Instance, solution mapf.Solution) (mapf.Announcements, error) {
	agentNames := make([]string, len(instance.Agents))
	for i, a := range instance.Agents {
		agentNames[i] = a.Name
	}
	makespan := solution.Statistics.Makespan

	switch strategy := c.String("announcement-strategy"); strategy {
	case "kahead":
		if !c.IsSet("lookahead") {
			return mapf.Announcements{}, cli.Exit("lookahead (-k) is required for the kahead strategy", 1)
		}
		k := c.Int("lookahead")
		if c.Bool("skip-large") {
			if err := announce.CheckLookahead(k, makespan); err != nil {
				return mapf.Announcements{}, err
			}
		}
		return announce.KAhead(agentNames, k, makespan), nil
	case "kgrouped":
		if !c.IsSet("lookahead") {
			return mapf.Announcements{}, cli.Exit("lookahead (-k) is required for the kgrouped strategy", 1)
		}
		k := c.Int("lookahead")
		if c.Bool("skip-large") {
			if err := announce.CheckLookahead(k, makespan); err != nil {
				return mapf.Announcements{}, err
			}
		}
		return announce.KGrouped(agentNames, k, makespan), nil
	case "robust":
		return announce.Robust(instance, solution), nil
	case "custom":
		path := c.String("custom-announcements")
		if path == "" {
			return mapf.Announcements{}, cli.Exit("custom-announcements path is required for the custom strategy", 1)
		}
		return yamldoc.LoadAnnouncements(path)
	default:
		return mapf.Announcements{}, cli.Exit(fmt.Sprintf("unknown announcement strategy %q", strategy), 1)
	}
}
