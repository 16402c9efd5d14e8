package settings

import (
	"github.com/mtlprog/usersettings/internal/domain"
	"github.com/mtlprog/usersettings/internal/schema"
)

// Parse validates raw and groups the result. It is Validate followed by
// ToModel and fails the same way Validate does.
func Parse(raw any, opts ...schema.Option) (domain.UserSettingsModel, error) {
	s, err := Validate(raw, opts...)
	if err != nil {
		return domain.UserSettingsModel{}, err
	}
	return ToModel(s), nil
}

// ToModel splits flat settings into their four groups.
func ToModel(s domain.UserSettings) domain.UserSettingsModel {
	return domain.UserSettingsModel{
		General:    General(s),
		Accounting: Accounting(s),
		Other:      Other(s),
		Data:       Data(s),
	}
}

func General(s domain.UserSettings) domain.GeneralSettings {
	return domain.GeneralSettings{
		UIFloatingPrecision:    s.UIFloatingPrecision,
		EthRPCEndpoint:         s.EthRPCEndpoint,
		KsmRPCEndpoint:         s.KsmRPCEndpoint,
		DotRPCEndpoint:         s.DotRPCEndpoint,
		BalanceSaveFrequency:   s.BalanceSaveFrequency,
		DateDisplayFormat:      s.DateDisplayFormat,
		MainCurrency:           s.MainCurrency,
		ActiveModules:          s.ActiveModules,
		BtcDerivationGapLimit:  s.BtcDerivationGapLimit,
		DisplayDateInLocaltime: s.DisplayDateInLocaltime,
		SubmitUsageAnalytics:   s.SubmitUsageAnalytics,
		CurrentPriceOracles:    s.CurrentPriceOracles,
		HistoricalPriceOracles: s.HistoricalPriceOracles,
		Ssf0graphMultiplier:    s.Ssf0graphMultiplier,
	}
}

func Accounting(s domain.UserSettings) domain.AccountingSettings {
	return domain.AccountingSettings{
		CalculatePastCostBasis:    s.CalculatePastCostBasis,
		IncludeCrypto2crypto:      s.IncludeCrypto2crypto,
		IncludeGasCosts:           s.IncludeGasCosts,
		AccountForAssetsMovements: s.AccountForAssetsMovements,
		PnlCsvWithFormulas:        s.PnlCsvWithFormulas,
		PnlCsvHaveSummary:         s.PnlCsvHaveSummary,
		TaxfreeAfterPeriod:        s.TaxfreeAfterPeriod,
		TaxableLedgerActions:      s.TaxableLedgerActions,
	}
}

func Other(s domain.UserSettings) domain.OtherSettings {
	return domain.OtherSettings{
		KrakenAccountType: s.KrakenAccountType,
		FrontendSettings:  s.FrontendSettings,
		PremiumShouldSync: s.PremiumShouldSync,
		HavePremium:       s.HavePremium,
	}
}

func Data(s domain.UserSettings) domain.BaseData {
	return domain.BaseData{
		Version:          s.Version,
		LastWriteTs:      s.LastWriteTs,
		LastDataUploadTs: s.LastDataUploadTs,
		LastBalanceSave:  s.LastBalanceSave,
	}
}

// Flat merges the groups of m back into one record. It is the inverse of
// ToModel.
func Flat(m domain.UserSettingsModel) domain.UserSettings {
	g, a, o, d := m.General, m.Accounting, m.Other, m.Data
	return domain.UserSettings{
		UIFloatingPrecision:    g.UIFloatingPrecision,
		EthRPCEndpoint:         g.EthRPCEndpoint,
		KsmRPCEndpoint:         g.KsmRPCEndpoint,
		DotRPCEndpoint:         g.DotRPCEndpoint,
		BalanceSaveFrequency:   g.BalanceSaveFrequency,
		DateDisplayFormat:      g.DateDisplayFormat,
		MainCurrency:           g.MainCurrency,
		ActiveModules:          g.ActiveModules,
		BtcDerivationGapLimit:  g.BtcDerivationGapLimit,
		DisplayDateInLocaltime: g.DisplayDateInLocaltime,
		SubmitUsageAnalytics:   g.SubmitUsageAnalytics,
		CurrentPriceOracles:    g.CurrentPriceOracles,
		HistoricalPriceOracles: g.HistoricalPriceOracles,
		Ssf0graphMultiplier:    g.Ssf0graphMultiplier,

		CalculatePastCostBasis:    a.CalculatePastCostBasis,
		IncludeCrypto2crypto:      a.IncludeCrypto2crypto,
		IncludeGasCosts:           a.IncludeGasCosts,
		AccountForAssetsMovements: a.AccountForAssetsMovements,
		PnlCsvWithFormulas:        a.PnlCsvWithFormulas,
		PnlCsvHaveSummary:         a.PnlCsvHaveSummary,
		TaxfreeAfterPeriod:        a.TaxfreeAfterPeriod,
		TaxableLedgerActions:      a.TaxableLedgerActions,

		KrakenAccountType: o.KrakenAccountType,
		FrontendSettings:  o.FrontendSettings,
		PremiumShouldSync: o.PremiumShouldSync,
		HavePremium:       o.HavePremium,

		Version:          d.Version,
		LastWriteTs:      d.LastWriteTs,
		LastDataUploadTs: d.LastDataUploadTs,
		LastBalanceSave:  d.LastBalanceSave,
	}
}
