package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkim-ops/ec2detail/internal/models"
	"github.com/mkim-ops/ec2detail/pkg/utils"
)

// BuildResult assembles the structured report for one lookup. The
// timestamp mirrors the first matched instance's launch time and stays
// unset when nothing matched.
func BuildResult(name string, region string, instances []models.InstanceRecord) models.ReportResult {
	result := models.ReportResult{
		SearchQuery:   name,
		Region:        region,
		InstanceCount: len(instances),
		Instances:     instances,
	}

	if len(instances) > 0 {
		launchTime := instances[0].LaunchTime
		result.Timestamp = &launchTime
	}

	return result
}

// DefaultOutputPath derives the report file path from the searched name.
// Path separators in the name are flattened so the name cannot escape the
// output directory.
func DefaultOutputPath(name string) string {
	cleanName := strings.NewReplacer("/", "_", "\\", "_").Replace(name)
	return filepath.Join("output", cleanName+"_details.json")
}

// WriteResultFile writes the report as indented JSON, creating the parent
// directory when needed
func WriteResultFile(path string, result models.ReportResult) error {
	out, err := utils.FormatJSON(result)
	if err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}

	return nil
}
