package schedule

import (
	"strings"

	"github.com/BTCElectrician/ohmni-oracle-refined/internal/entity"
)

// MergeFragments unifies per-table fragments into one panel per identity key.
// The enumeration order is part of the contract, not an iteration accident:
// fragments arrive table index ascending (and, within a table, chunk index
// ascending), and later fragments' map keys overwrite earlier ones. Reordering
// fragment processing would change merge results.
//
// Per group: circuits are concatenated in arrival order then deduplicated;
// specification/dimension/total keys are last-write-wins per key; the name is
// filled by the first fragment supplying a non-empty one; the type upgrades
// from "Other" to the first non-"Other" value observed and never downgrades.
func MergeFragments(fragments []entity.PanelFragment) []entity.PanelRecord {
	var order []string
	byKey := make(map[string]*entity.PanelRecord)

	for _, frag := range fragments {
		key := entity.IdentityKey(frag.Name)
		panel, ok := byKey[key]
		if !ok {
			panel = &entity.PanelRecord{
				Type:           entity.PanelTypeOther,
				Circuits:       []entity.CircuitRecord{},
				Specifications: map[string]string{},
				Totals:         map[string]string{},
			}
			byKey[key] = panel
			order = append(order, key)
		}

		if panel.Name == "" {
			panel.Name = strings.TrimSpace(frag.Name)
		}
		if panel.Type == entity.PanelTypeOther && frag.Type != "" && frag.Type != entity.PanelTypeOther {
			panel.Type = frag.Type
		}

		panel.Circuits = append(panel.Circuits, frag.Circuits...)

		for k, v := range frag.Specifications {
			panel.Specifications[k] = v
		}
		for k, v := range frag.Totals {
			panel.Totals[k] = v
		}
		// empty dimension fields mean "absent", not "overwrite with empty"
		if frag.Dimensions.Height != "" {
			panel.Dimensions.Height = frag.Dimensions.Height
		}
		if frag.Dimensions.Width != "" {
			panel.Dimensions.Width = frag.Dimensions.Width
		}
		if frag.Dimensions.Depth != "" {
			panel.Dimensions.Depth = frag.Dimensions.Depth
		}
	}

	out := make([]entity.PanelRecord, 0, len(order))
	for _, key := range order {
		panel := byKey[key]
		panel.Circuits = Deduplicate(panel.Circuits)
		out = append(out, *panel)
	}
	return out
}
