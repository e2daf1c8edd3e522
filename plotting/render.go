package plotting

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gitsper/announcenet/bold"
	"github.com/gitsper/announcenet/cautious"
	"github.com/gitsper/announcenet/yamldoc"
)

const (
	chartWidth  = 5.16 * vg.Inch
	chartHeight = 4.80 * vg.Inch
)

// Render loads every result document named in resultPaths, aggregates it
// by the metric the named plot tracks, and writes the rendered SVG to
// plotPath. It refuses to overwrite an existing plotPath unless force is
// set. name must be one of the eight plot names: succ-vs-kahead,
// succ-vs-kgrouped, succ-vs-max-inter-obs, succ-vs-robust,
// secure-vs-kahead, secure-vs-kgrouped, secure-vs-max-inter-obs, or
// secure-vs-robust, which always returns ErrUnimplemented.
func Render(name string, resultPaths []string, plotPath string, force bool) error {
	if !force {
		if _, err := os.Stat(plotPath); err == nil {
			return ErrOutputExists
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("plotting: checking output path %s: %w", plotPath, err)
		}
	}
	if len(resultPaths) == 0 {
		return ErrEmptyPopulation
	}

	switch name {
	case "succ-vs-kahead":
		return renderBoldBucketed(resultPaths, plotPath,
			"Balanced Bold Attacker Behavior vs Fixed Lookahead", "fixed lookahead",
			func(a bold.AttemptResult) int { return a.MinLookahead })
	case "succ-vs-kgrouped":
		return renderBoldBucketed(resultPaths, plotPath,
			"Balanced Bold Attacker vs Inter-Announcement Time", "inter-announcement time",
			func(a bold.AttemptResult) int { return a.MinInterAnnouncementTime })
	case "succ-vs-max-inter-obs":
		return renderBoldBucketed(resultPaths, plotPath,
			"Balanced Bold Attacker Behavior vs Inter-Observation Time", "attacker max inter-observation time",
			func(a bold.AttemptResult) int { return a.MaxInterObservationTime })
	case "succ-vs-robust":
		return renderBoldRobust(resultPaths, plotPath)
	case "secure-vs-kahead":
		return renderSecureBucketed(resultPaths, plotPath,
			"Secure Rate vs Lookahead", "fixed lookahead",
			func(a cautious.AttemptResult) int { return a.MinLookahead })
	case "secure-vs-kgrouped":
		return renderSecureBucketed(resultPaths, plotPath,
			"Secure Rate vs Inter-Announcement Time", "inter-announcement time",
			func(a cautious.AttemptResult) int { return a.MinInterAnnouncementTime })
	case "secure-vs-max-inter-obs":
		return renderSecureBucketed(resultPaths, plotPath,
			"Secure Rate vs Inter-Observation Time", "attacker max inter-observation time",
			func(a cautious.AttemptResult) int { return a.MaxInterObservationTime })
	case "secure-vs-robust":
		return ErrUnimplemented
	default:
		return ErrUnknownPlot
	}
}

func loadBoldResults(paths []string) ([]bold.ExperimentResult, error) {
	results := make([]bold.ExperimentResult, 0, len(paths))
	for _, path := range paths {
		result, err := yamldoc.LoadBoldResult(path)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func loadCautiousResults(paths []string) ([]cautious.ExperimentResult, error) {
	results := make([]cautious.ExperimentResult, 0, len(paths))
	for _, path := range paths {
		result, err := yamldoc.LoadCautiousResult(path)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func renderBoldBucketed(paths []string, plotPath, title, xDesc string, keyOf func(bold.AttemptResult) int) error {
	results, err := loadBoldResults(paths)
	if err != nil {
		return err
	}
	series := newBoldSeries()
	for _, result := range results {
		series.addBold(result, keyOf)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xDesc
	p.Y.Label.Text = "rate"
	p.Y.Min, p.Y.Max = 0, 1.1

	if err := addLine(p, "attacker success ratio", series.success.points()); err != nil {
		return err
	}
	if err := addLine(p, "attacker attempt ratio", series.attempt.points()); err != nil {
		return err
	}
	if err := addLine(p, "early alarm ratio", series.alarm.points()); err != nil {
		return err
	}
	if err := addLine(p, "miss ratio", series.miss.points()); err != nil {
		return err
	}
	return save(p, plotPath)
}

func renderBoldRobust(paths []string, plotPath string) error {
	results, err := loadBoldResults(paths)
	if err != nil {
		return err
	}
	points := newRobustPoints()
	for _, result := range results {
		points.addBold(result)
	}

	p := plot.New()
	p.Title.Text = "Balanced Bold Attacker Behavior vs Robust Announcement"
	p.X.Label.Text = "average lookahead"
	p.Y.Label.Text = "rate"
	p.Y.Min, p.Y.Max = 0, 1.1

	if err := addScatter(p, "attacker success ratio", points.success); err != nil {
		return err
	}
	if err := addScatter(p, "attacker attempt ratio", points.attempt); err != nil {
		return err
	}
	if err := addScatter(p, "early alarm ratio", points.alarm); err != nil {
		return err
	}
	if err := addScatter(p, "miss ratio", points.miss); err != nil {
		return err
	}
	return save(p, plotPath)
}

func renderSecureBucketed(paths []string, plotPath, title, xDesc string, keyOf func(cautious.AttemptResult) int) error {
	results, err := loadCautiousResults(paths)
	if err != nil {
		return err
	}
	series := newSecureSeries()
	for _, result := range results {
		series.addCautious(result, keyOf)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xDesc
	p.Y.Label.Text = "secure ratio"
	p.Y.Min, p.Y.Max = 0, 1.1

	if err := addLine(p, "secure ratio", series.secure.points()); err != nil {
		return err
	}
	return save(p, plotPath)
}

func addLine(p *plot.Plot, label string, pts plotter.XYs) error {
	if len(pts) == 0 {
		return nil
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plotting: building %q line: %w", label, err)
	}
	p.Add(line)
	p.Legend.Add(label, line)
	return nil
}

func addScatter(p *plot.Plot, label string, pts plotter.XYs) error {
	if len(pts) == 0 {
		return nil
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plotting: building %q scatter: %w", label, err)
	}
	p.Add(scatter)
	p.Legend.Add(label, scatter)
	return nil
}

func save(p *plot.Plot, plotPath string) error {
	if err := p.Save(chartWidth, chartHeight, plotPath); err != nil {
		return fmt.Errorf("plotting: saving %s: %w", plotPath, err)
	}
	return nil
}
