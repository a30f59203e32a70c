package report

import (
	"encoding/json"
	"fmt"

	"salesops/sales-analytics/internal/models"
)

// Generate renders the report in the requested format ("text" or "json")
// and returns it as a byte slice.
func Generate(r models.Report, format string) ([]byte, error) {
	switch format {
	case "text":
		return []byte(RenderText(r)), nil
	case "json":
		return generateJSON(r)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func generateJSON(r models.Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		log.Errorf("Failed to marshal JSON report: %v", err)
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}
