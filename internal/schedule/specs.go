package schedule

import (
	"strings"

	"github.com/BTCElectrician/ohmni-oracle-refined/internal/entity"
)

// ScanSpecifications walks a table's rows looking for specification labels and
// reads each label's value from the cell to its right. Recognized labels map
// to the fixed specification keys the panel record carries; dimension text is
// split on "x" into height, width, depth.
func ScanSpecifications(rows [][]string) (map[string]string, entity.Dimensions) {
	specs := make(map[string]string)
	var dims entity.Dimensions

	for _, row := range rows {
		for col, cell := range row {
			text := strings.ToLower(cell)
			if text == "" {
				continue
			}
			value := adjacentCell(row, col)
			switch {
			case strings.Contains(text, "nema"):
				setSpec(specs, "nema_enclosure", value)
			case strings.Contains(text, "section"):
				setSpec(specs, "sections", value)
			case strings.Contains(text, "dimension") || strings.Contains(text, "size"):
				if d, ok := parseDimensions(value); ok {
					dims = d
				}
			case strings.Contains(text, "voltage"):
				setSpec(specs, "voltage", value)
			case strings.Contains(text, "frequency"):
				setSpec(specs, "frequency", value)
			case strings.Contains(text, "phase"):
				setSpec(specs, "phases", value)
			case strings.Contains(text, "amp") || strings.Contains(text, "rating"):
				setSpec(specs, "amps", value)
			}
		}
	}
	return specs, dims
}

func adjacentCell(row []string, col int) string {
	if col+1 >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col+1])
}

func setSpec(specs map[string]string, key, value string) {
	if value == "" {
		return
	}
	if _, exists := specs[key]; exists {
		return
	}
	specs[key] = value
}

// parseDimensions splits "H x W x D" style text into its three parts.
func parseDimensions(text string) (entity.Dimensions, bool) {
	parts := strings.Split(strings.ToLower(text), "x")
	if len(parts) < 3 {
		return entity.Dimensions{}, false
	}
	return entity.Dimensions{
		Height: strings.TrimSpace(parts[0]),
		Width:  strings.TrimSpace(parts[1]),
		Depth:  strings.TrimSpace(parts[2]),
	}, true
}
