package yamldoc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitsper/announcenet/bold"
	"github.com/gitsper/announcenet/cautious"
)

// SaveBoldResult writes result to path, refusing to overwrite an existing
// file unless force is true.
func SaveBoldResult(path string, result bold.ExperimentResult, force bool) error {
	raw, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("yamldoc: marshaling bold result: %w", err)
	}
	return writeNew(path, raw, force)
}

// SaveCautiousResult writes result to path, refusing to overwrite an
// existing file unless force is true.
func SaveCautiousResult(path string, result cautious.ExperimentResult, force bool) error {
	raw, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("yamldoc: marshaling cautious result: %w", err)
	}
	return writeNew(path, raw, force)
}

func writeNew(path string, raw []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return ErrOutputExists
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("yamldoc: checking output path %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("yamldoc: writing %s: %w", path, err)
	}
	return nil
}
