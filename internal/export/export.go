// Package export writes the report to disk as indented JSON. Export
// only happens when explicitly requested; I/O failures propagate to
// the caller instead of being absorbed like data-source failures.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"sysreport/internal/model"
)

// Write serializes the full report to path, UTF-8, two-space indent.
func Write(r *model.Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
