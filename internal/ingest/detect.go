package ingest

import (
	"path/filepath"
	"strings"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
)

// IsPanelSchedule reports whether a filename alone suggests a panel schedule.
// Routing is filename-based only: content never influences the decision, so
// misnamed schedules are skipped and misnamed non-schedules reach the
// pipeline, which then finds no circuit tables.
func IsPanelSchedule(filename string) bool {
	name := strings.ToLower(filepath.Base(filename))
	for _, kw := range constants.PanelScheduleNameKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	// "panel" and "schedule" may appear apart ("Panel L1 Schedule.pdf")
	return strings.Contains(name, "panel") && strings.Contains(name, "sched")
}
