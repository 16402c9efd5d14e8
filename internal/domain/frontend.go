package domain

import (
	"encoding/json"
	"fmt"
)

// Theme selects the UI color scheme.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
	ThemeAuto
)

// FrontendSettings holds UI display preferences. The backend stores them as
// an opaque JSON string; every key is optional and falls back to its default.
// Keys this type does not know are kept in Extra.
type FrontendSettings struct {
	DefiSetupDone               bool   `json:"defiSetupDone" schema:"optional"`
	Language                    string `json:"language" schema:"optional" validate:"required"`
	TimeframeSetting            string `json:"timeframeSetting" schema:"optional" validate:"required"`
	QueryPeriod                 int    `json:"queryPeriod" schema:"optional" validate:"min=5,max=3600"`
	ThousandSeparator           string `json:"thousandSeparator" schema:"optional" validate:"len=1,nefield=DecimalSeparator"`
	DecimalSeparator            string `json:"decimalSeparator" schema:"optional" validate:"len=1"`
	CurrencyLocation            string `json:"currencyLocation" schema:"optional" validate:"oneof=before after"`
	RefreshPeriod               int    `json:"refreshPeriod" schema:"optional" validate:"min=-1"`
	ItemsPerPage                int    `json:"itemsPerPage" schema:"optional" validate:"min=1"`
	SelectedTheme               Theme  `json:"selectedTheme" schema:"optional" validate:"min=0,max=2"`
	GraphZeroBased              bool   `json:"graphZeroBased" schema:"optional"`
	NftsInNetValue              bool   `json:"nftsInNetValue" schema:"optional"`
	DateInputFormat             string `json:"dateInputFormat" schema:"optional" validate:"required"`
	VersionUpdateCheckFrequency int    `json:"versionUpdateCheckFrequency" schema:"optional" validate:"min=-1"`
	EnableEthNames              bool   `json:"enableEthNames" schema:"optional"`

	Extra map[string]any `json:"-"`
}

// DefaultFrontendSettings returns the settings used for an empty payload.
func DefaultFrontendSettings() FrontendSettings {
	return FrontendSettings{
		Language:                    "en",
		TimeframeSetting:            "REMEMBER",
		QueryPeriod:                 5,
		ThousandSeparator:           ",",
		DecimalSeparator:            ".",
		CurrencyLocation:            "after",
		RefreshPeriod:               -1,
		ItemsPerPage:                10,
		SelectedTheme:               ThemeAuto,
		NftsInNetValue:              true,
		DateInputFormat:             "%d/%m/%Y %H:%M:%S",
		VersionUpdateCheckFrequency: 24,
		EnableEthNames:              true,
	}
}

// MarshalJSON writes known and extra keys as one flat object. Known keys win
// over an extra key of the same name.
func (f FrontendSettings) MarshalJSON() ([]byte, error) {
	type plain FrontendSettings
	known, err := json.Marshal(plain(f))
	if err != nil || len(f.Extra) == 0 {
		return known, err
	}

	var fields map[string]any
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, fmt.Errorf("merging frontend settings: %w", err)
	}

	merged := make(map[string]any, len(fields)+len(f.Extra))
	for k, v := range f.Extra {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}
