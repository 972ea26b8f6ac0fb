package llm

import (
	"encoding/json"
	"fmt"

	"github.com/BTCElectrician/ohmni-oracle-refined/internal/common"
)

// PanelPayload is the decoded panel-metadata variant response.
type PanelPayload struct {
	PanelName      string              `json:"PanelName"`
	PanelType      string              `json:"PanelType"`
	Circuits       []map[string]string `json:"circuits"`
	Specifications map[string]string   `json:"specifications"`
	Dimensions     map[string]string   `json:"dimensions"`
	PanelTotals    map[string]string   `json:"panel_totals"`
}

// ParsePanelPayload strictly validates and decodes a panel payload response.
// Parsing is strict on shape but tolerant of absence: any missing key is
// backfilled with its type-appropriate empty default before the payload is
// handed to the caller.
func ParsePanelPayload(raw []byte) (PanelPayload, error) {
	if err := ValidateJSONAgainstSchema(BuildPanelPayloadSchema(), raw); err != nil {
		return PanelPayload{}, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}
	var p PanelPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return PanelPayload{}, fmt.Errorf("%w: decode payload: %v", common.ErrMalformedResponse, err)
	}
	p.backfill()
	return p, nil
}

func (p *PanelPayload) backfill() {
	if p.Circuits == nil {
		p.Circuits = []map[string]string{}
	}
	if p.Specifications == nil {
		p.Specifications = map[string]string{}
	}
	if p.Dimensions == nil {
		p.Dimensions = map[string]string{}
	}
	if p.PanelTotals == nil {
		p.PanelTotals = map[string]string{}
	}
}
