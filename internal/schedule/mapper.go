package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/BTCElectrician/ohmni-oracle-refined/constants"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/common"
	"github.com/BTCElectrician/ohmni-oracle-refined/internal/llm"
)

// ColumnMapping associates a column index with a canonical field label.
// A mapping is scoped to exactly one chunk: header wording and position may
// drift between tables and even between chunks, so mappings are never reused
// across scopes.
type ColumnMapping map[int]constants.Field

// ColumnMapper earns a ColumnMapping per chunk from the completion service.
type ColumnMapper struct {
	completer llm.Completer
	log       *slog.Logger
}

func NewColumnMapper(completer llm.Completer, logger *slog.Logger) *ColumnMapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &ColumnMapper{completer: completer, log: logger}
}

// MapColumns sends one chunk's rows to the completion service and parses the
// response into a mapping. Any failure (service error, malformed response,
// schema violation) degrades to an empty mapping. An empty mapping is an
// error signal telling the caller to drop the chunk; it is not "all columns
// unused", which would still count rows as mapped-but-empty.
func (m *ColumnMapper) MapColumns(ctx context.Context, chunk [][]string) ColumnMapping {
	user, err := llm.BuildColumnMappingUserPrompt(chunk)
	if err != nil {
		m.log.Warn("schedule.mapcolumns.encode_error", "error", err)
		return nil
	}

	text, err := m.completer.Complete(ctx, llm.BuildColumnMappingSystemPrompt(), user)
	if err != nil {
		m.log.Warn("schedule.mapcolumns.service_error", "error", err)
		return nil
	}

	mapping, err := ParseColumnMapping([]byte(strings.TrimSpace(text)))
	if err != nil {
		m.log.Warn("schedule.mapcolumns.malformed_response", "error", err)
		return nil
	}
	return mapping
}

// ParseColumnMapping strictly parses completion output as a column mapping:
// schema-validated first, then keys converted to integers. Responses that do
// not conform are rejected whole rather than salvaged key by key.
func ParseColumnMapping(raw []byte) (ColumnMapping, error) {
	if err := llm.ValidateJSONAgainstSchema(llm.BuildColumnMappingSchema(), raw); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode mapping: %v", common.ErrMalformedResponse, err)
	}

	mapping := make(ColumnMapping, len(decoded))
	for key, label := range decoded {
		col, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: column key %q is not an integer", common.ErrMalformedResponse, key)
		}
		field, ok := constants.CanonicalizeField(label)
		if !ok {
			return nil, fmt.Errorf("%w: label %q outside vocabulary", common.ErrMalformedResponse, label)
		}
		mapping[col] = field
	}
	return mapping, nil
}

// PanelExtractor runs the panel-metadata completion variant on a table's
// header area.
type PanelExtractor struct {
	completer llm.Completer
	log       *slog.Logger
}

func NewPanelExtractor(completer llm.Completer, logger *slog.Logger) *PanelExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PanelExtractor{completer: completer, log: logger}
}

// ExtractPanel returns the panel payload for one table's header rows, or
// ok=false when the call or parse failed. Failures degrade: the table keeps
// its row-mapped circuits and simply loses the metadata contribution.
func (e *PanelExtractor) ExtractPanel(ctx context.Context, rows [][]string) (llm.PanelPayload, bool) {
	user, err := llm.BuildPanelUserPrompt(rows)
	if err != nil {
		e.log.Warn("schedule.panelmeta.encode_error", "error", err)
		return llm.PanelPayload{}, false
	}

	text, err := e.completer.Complete(ctx, llm.BuildPanelSystemPrompt(), user)
	if err != nil {
		e.log.Warn("schedule.panelmeta.service_error", "error", err)
		return llm.PanelPayload{}, false
	}

	payload, err := llm.ParsePanelPayload([]byte(strings.TrimSpace(text)))
	if err != nil {
		e.log.Warn("schedule.panelmeta.malformed_response", "error", err)
		return llm.PanelPayload{}, false
	}
	return payload, true
}
