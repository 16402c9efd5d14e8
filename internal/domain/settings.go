package domain

// MaxHoursDelay is the ceiling for balanceSaveFrequency, in hours. Larger
// values are lowered to it rather than rejected.
const MaxHoursDelay int64 = 2562047788015

// GeneralSettings groups display, network and pricing preferences.
type GeneralSettings struct {
	UIFloatingPrecision    int           `json:"uiFloatingPrecision"`
	EthRPCEndpoint         string        `json:"ethRpcEndpoint"`
	KsmRPCEndpoint         string        `json:"ksmRpcEndpoint"`
	DotRPCEndpoint         string        `json:"dotRpcEndpoint"`
	BalanceSaveFrequency   int64         `json:"balanceSaveFrequency"`
	DateDisplayFormat      string        `json:"dateDisplayFormat"`
	MainCurrency           Currency      `json:"mainCurrency"`
	ActiveModules          []Module      `json:"activeModules"`
	BtcDerivationGapLimit  int           `json:"btcDerivationGapLimit"`
	DisplayDateInLocaltime bool          `json:"displayDateInLocaltime"`
	SubmitUsageAnalytics   bool          `json:"submitUsageAnalytics"`
	CurrentPriceOracles    []PriceOracle `json:"currentPriceOracles"`
	HistoricalPriceOracles []PriceOracle `json:"historicalPriceOracles"`
	Ssf0graphMultiplier    float64       `json:"ssf0graphMultiplier"`
}

// AccountingSettings groups the cost basis and PnL report options.
type AccountingSettings struct {
	CalculatePastCostBasis    bool `json:"calculatePastCostBasis"`
	IncludeCrypto2crypto      bool `json:"includeCrypto2crypto"`
	IncludeGasCosts           bool `json:"includeGasCosts"`
	AccountForAssetsMovements bool `json:"accountForAssetsMovements"`
	PnlCsvWithFormulas        bool `json:"pnlCsvWithFormulas"`
	PnlCsvHaveSummary         bool `json:"pnlCsvHaveSummary"`
	// TaxfreeAfterPeriod is in seconds; nil disables the tax free period.
	TaxfreeAfterPeriod   *int64         `json:"taxfreeAfterPeriod"`
	TaxableLedgerActions []LedgerAction `json:"taxableLedgerActions"`
}

// OtherSettings groups exchange, frontend and premium preferences.
type OtherSettings struct {
	KrakenAccountType *KrakenAccountType `json:"krakenAccountType,omitempty"`
	FrontendSettings  FrontendSettings   `json:"frontendSettings"`
	PremiumShouldSync bool               `json:"premiumShouldSync"`
	HavePremium       bool               `json:"havePremium"`
}

// BaseData holds database bookkeeping values.
type BaseData struct {
	Version          int   `json:"version"`
	LastWriteTs      int64 `json:"lastWriteTs"`
	LastDataUploadTs int64 `json:"lastDataUploadTs"`
	LastBalanceSave  int64 `json:"lastBalanceSave"`
}

// UserSettings is the validated flat settings record, keyed like the wire
// payload. Every field belongs to exactly one of the four groups of
// UserSettingsModel.
type UserSettings struct {
	UIFloatingPrecision    int           `json:"uiFloatingPrecision"`
	EthRPCEndpoint         string        `json:"ethRpcEndpoint"`
	KsmRPCEndpoint         string        `json:"ksmRpcEndpoint"`
	DotRPCEndpoint         string        `json:"dotRpcEndpoint"`
	BalanceSaveFrequency   int64         `json:"balanceSaveFrequency"`
	DateDisplayFormat      string        `json:"dateDisplayFormat"`
	MainCurrency           Currency      `json:"mainCurrency"`
	ActiveModules          []Module      `json:"activeModules"`
	BtcDerivationGapLimit  int           `json:"btcDerivationGapLimit"`
	DisplayDateInLocaltime bool          `json:"displayDateInLocaltime"`
	SubmitUsageAnalytics   bool          `json:"submitUsageAnalytics"`
	CurrentPriceOracles    []PriceOracle `json:"currentPriceOracles"`
	HistoricalPriceOracles []PriceOracle `json:"historicalPriceOracles"`
	Ssf0graphMultiplier    float64       `json:"ssf0graphMultiplier"`

	CalculatePastCostBasis    bool           `json:"calculatePastCostBasis"`
	IncludeCrypto2crypto      bool           `json:"includeCrypto2crypto"`
	IncludeGasCosts           bool           `json:"includeGasCosts"`
	AccountForAssetsMovements bool           `json:"accountForAssetsMovements"`
	PnlCsvWithFormulas        bool           `json:"pnlCsvWithFormulas"`
	PnlCsvHaveSummary         bool           `json:"pnlCsvHaveSummary"`
	TaxfreeAfterPeriod        *int64         `json:"taxfreeAfterPeriod"`
	TaxableLedgerActions      []LedgerAction `json:"taxableLedgerActions"`

	KrakenAccountType *KrakenAccountType `json:"krakenAccountType,omitempty"`
	FrontendSettings  FrontendSettings   `json:"frontendSettings"`
	PremiumShouldSync bool               `json:"premiumShouldSync"`
	HavePremium       bool               `json:"havePremium"`

	Version          int   `json:"version"`
	LastWriteTs      int64 `json:"lastWriteTs"`
	LastDataUploadTs int64 `json:"lastDataUploadTs"`
	LastBalanceSave  int64 `json:"lastBalanceSave"`
}

// UserSettingsModel is the grouped, application-facing settings shape.
type UserSettingsModel struct {
	General    GeneralSettings    `json:"general"`
	Accounting AccountingSettings `json:"accounting"`
	Other      OtherSettings      `json:"other"`
	Data       BaseData           `json:"data"`
}
