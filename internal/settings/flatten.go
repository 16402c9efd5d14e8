package settings

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mtlprog/usersettings/internal/domain"
)

var listFields = []string{
	"activeModules",
	"currentPriceOracles",
	"historicalPriceOracles",
	"taxableLedgerActions",
}

// Flatten rebuilds the wire record for m: mainCurrency becomes its ticker,
// frontendSettings a JSON string and nil lists empty arrays. Parsing the
// result yields m again.
func Flatten(m domain.UserSettingsModel) (map[string]any, error) {
	flat := Flat(m)

	data, err := json.Marshal(flat)
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var record map[string]any
	if err := dec.Decode(&record); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}

	frontend, err := json.Marshal(flat.FrontendSettings)
	if err != nil {
		return nil, fmt.Errorf("encoding frontend settings: %w", err)
	}
	record["frontendSettings"] = string(frontend)
	record["mainCurrency"] = flat.MainCurrency.TickerSymbol

	for _, key := range listFields {
		if record[key] == nil {
			record[key] = []any{}
		}
	}
	return record, nil
}
