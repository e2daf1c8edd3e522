package yamldoc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitsper/announcenet/bold"
	"github.com/gitsper/announcenet/cautious"
	"github.com/gitsper/announcenet/mapf"
)

// LoadInstance reads and parses an instance document from path.
func LoadInstance(path string) (mapf.Instance, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return mapf.Instance{}, fmt.Errorf("yamldoc: reading instance %s: %w", path, err)
	}
	var instance mapf.Instance
	if err := yaml.Unmarshal(raw, &instance); err != nil {
		return mapf.Instance{}, fmt.Errorf("yamldoc: parsing instance %s: %w", path, err)
	}
	return instance, nil
}

// LoadSolution reads and parses a solution document from path, then
// extends every agent's schedule by staying in place so every downstream
// component can assume schedule length >= makespan+2.
func LoadSolution(path string) (mapf.Solution, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return mapf.Solution{}, fmt.Errorf("yamldoc: reading solution %s: %w", path, err)
	}
	var solution mapf.Solution
	if err := yaml.Unmarshal(raw, &solution); err != nil {
		return mapf.Solution{}, fmt.Errorf("yamldoc: parsing solution %s: %w", path, err)
	}
	solution.ExtendStayInPlace()
	return solution, nil
}

// LoadBoldResult reads and parses a bold result document from path.
func LoadBoldResult(path string) (bold.ExperimentResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return bold.ExperimentResult{}, fmt.Errorf("yamldoc: reading bold result %s: %w", path, err)
	}
	var result bold.ExperimentResult
	if err := yaml.Unmarshal(raw, &result); err != nil {
		return bold.ExperimentResult{}, fmt.Errorf("yamldoc: parsing bold result %s: %w", path, err)
	}
	return result, nil
}

// LoadCautiousResult reads and parses a cautious result document from path.
func LoadCautiousResult(path string) (cautious.ExperimentResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return cautious.ExperimentResult{}, fmt.Errorf("yamldoc: reading cautious result %s: %w", path, err)
	}
	var result cautious.ExperimentResult
	if err := yaml.Unmarshal(raw, &result); err != nil {
		return cautious.ExperimentResult{}, fmt.Errorf("yamldoc: parsing cautious result %s: %w", path, err)
	}
	return result, nil
}

// LoadAnnouncements reads and parses an announcements document from path.
func LoadAnnouncements(path string) (mapf.Announcements, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return mapf.Announcements{}, fmt.Errorf("yamldoc: reading announcements %s: %w", path, err)
	}
	var announcements mapf.Announcements
	if err := yaml.Unmarshal(raw, &announcements); err != nil {
		return mapf.Announcements{}, fmt.Errorf("yamldoc: parsing announcements %s: %w", path, err)
	}
	return announcements, nil
}
