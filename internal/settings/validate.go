// Package settings validates flat user settings payloads and reshapes them
// into the grouped settings model.
package settings

import (
	"fmt"

	"github.com/mtlprog/usersettings/internal/domain"
	"github.com/mtlprog/usersettings/internal/schema"
)

const schemaName = "user settings"

// Validate checks raw against the settings schema and resolves it into a
// flat UserSettings. raw may be a decoded JSON value, raw JSON bytes, or any
// value encoding/json can marshal.
//
// Shape and constraint failures, including a bad frontendSettings payload,
// are reported together as a *schema.ValidationError. An unknown mainCurrency
// is reported as a *ResolutionError once everything else is valid.
func Validate(raw any, opts ...schema.Option) (domain.UserSettings, error) {
	o := schema.NewOptions(opts...)

	record, err := schema.Record(raw)
	if err != nil {
		return domain.UserSettings{}, schema.Fail(schemaName, []schema.Issue{schema.RecordIssue(err)})
	}

	var w wireSettings
	if err := schema.Fail(schemaName, schema.Struct(record, &w, "", o)); err != nil {
		return domain.UserSettings{}, err
	}
	return resolve(w)
}

// resolve runs the resolution passes over a structurally valid record.
func resolve(w wireSettings) (domain.UserSettings, error) {
	frequency, freqErr := balanceSaveFrequency(w.BalanceSaveFrequency)
	frontend, frontendErr := frontendSettings(w.FrontendSettings)
	if err := schema.Collect(schemaName, freqErr, frontendErr); err != nil {
		return domain.UserSettings{}, err
	}

	currency, err := mainCurrency(w.MainCurrency)
	if err != nil {
		return domain.UserSettings{}, err
	}

	var kraken *domain.KrakenAccountType
	if w.KrakenAccountType != nil && *w.KrakenAccountType != "" {
		k := *w.KrakenAccountType
		kraken = &k
	}

	return domain.UserSettings{
		UIFloatingPrecision:    w.UIFloatingPrecision,
		EthRPCEndpoint:         w.EthRPCEndpoint,
		KsmRPCEndpoint:         w.KsmRPCEndpoint,
		DotRPCEndpoint:         w.DotRPCEndpoint,
		BalanceSaveFrequency:   frequency,
		DateDisplayFormat:      w.DateDisplayFormat,
		MainCurrency:           currency,
		ActiveModules:          w.ActiveModules,
		BtcDerivationGapLimit:  w.BtcDerivationGapLimit,
		DisplayDateInLocaltime: w.DisplayDateInLocaltime,
		SubmitUsageAnalytics:   w.SubmitUsageAnalytics,
		CurrentPriceOracles:    w.CurrentPriceOracles,
		HistoricalPriceOracles: w.HistoricalPriceOracles,
		Ssf0graphMultiplier:    w.Ssf0graphMultiplier,

		CalculatePastCostBasis:    w.CalculatePastCostBasis,
		IncludeCrypto2crypto:      w.IncludeCrypto2crypto,
		IncludeGasCosts:           w.IncludeGasCosts,
		AccountForAssetsMovements: w.AccountForAssetsMovements,
		PnlCsvWithFormulas:        w.PnlCsvWithFormulas,
		PnlCsvHaveSummary:         w.PnlCsvHaveSummary,
		TaxfreeAfterPeriod:        w.TaxfreeAfterPeriod,
		TaxableLedgerActions:      w.TaxableLedgerActions,

		KrakenAccountType: kraken,
		FrontendSettings:  frontend,
		PremiumShouldSync: w.PremiumShouldSync,
		HavePremium:       w.HavePremium,

		Version:          w.Version,
		LastWriteTs:      w.LastWriteTs,
		LastDataUploadTs: w.LastDataUploadTs,
		LastBalanceSave:  w.LastBalanceSave,
	}, nil
}

// balanceSaveFrequency reads the value as an integer and lowers it to
// domain.MaxHoursDelay. It never raises a value.
func balanceSaveFrequency(v any) (int64, error) {
	const field = "balanceSaveFrequency"

	n, err := schema.ParseInt(v)
	if err != nil {
		return 0, schema.Fail(schemaName, []schema.Issue{{
			Path:    field,
			Code:    schema.CodeNotANumber,
			Message: fmt.Sprintf("expected an integer, received %v", v),
			Err:     err,
		}})
	}

	n = min(n, domain.MaxHoursDelay)
	if n < 0 {
		return 0, schema.Fail(schemaName, []schema.Issue{{
			Path:    field,
			Code:    schema.CodeTooSmall,
			Message: "must be at least 0",
		}})
	}
	return n, nil
}

func mainCurrency(ticker string) (domain.Currency, error) {
	currency, ok := domain.CurrencyByTicker(ticker)
	if !ok {
		return domain.Currency{}, &ResolutionError{Ticker: ticker}
	}
	return currency, nil
}
