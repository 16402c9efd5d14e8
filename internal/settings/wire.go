package settings

import "github.com/mtlprog/usersettings/internal/domain"

// wireSettings is the structurally validated but unresolved settings record.
// mainCurrency is still a ticker, balanceSaveFrequency is still whatever the
// backend sent and frontendSettings is still a JSON string.
type wireSettings struct {
	UIFloatingPrecision    int                  `json:"uiFloatingPrecision" validate:"min=0"`
	EthRPCEndpoint         string               `json:"ethRpcEndpoint"`
	KsmRPCEndpoint         string               `json:"ksmRpcEndpoint"`
	DotRPCEndpoint         string               `json:"dotRpcEndpoint"`
	BalanceSaveFrequency   any                  `json:"balanceSaveFrequency"`
	DateDisplayFormat      string               `json:"dateDisplayFormat"`
	MainCurrency           string               `json:"mainCurrency"`
	ActiveModules          []domain.Module      `json:"activeModules" validate:"dive,module"`
	BtcDerivationGapLimit  int                  `json:"btcDerivationGapLimit"`
	DisplayDateInLocaltime bool                 `json:"displayDateInLocaltime"`
	SubmitUsageAnalytics   bool                 `json:"submitUsageAnalytics"`
	CurrentPriceOracles    []domain.PriceOracle `json:"currentPriceOracles" validate:"dive,price_oracle"`
	HistoricalPriceOracles []domain.PriceOracle `json:"historicalPriceOracles" validate:"dive,price_oracle"`
	Ssf0graphMultiplier    float64              `json:"ssf0graphMultiplier" schema:"optional"`

	CalculatePastCostBasis    bool                  `json:"calculatePastCostBasis"`
	IncludeCrypto2crypto      bool                  `json:"includeCrypto2crypto"`
	IncludeGasCosts           bool                  `json:"includeGasCosts"`
	AccountForAssetsMovements bool                  `json:"accountForAssetsMovements"`
	PnlCsvWithFormulas        bool                  `json:"pnlCsvWithFormulas"`
	PnlCsvHaveSummary         bool                  `json:"pnlCsvHaveSummary"`
	TaxfreeAfterPeriod        *int64                `json:"taxfreeAfterPeriod" schema:"nullable" validate:"omitempty,min=0"`
	TaxableLedgerActions      []domain.LedgerAction `json:"taxableLedgerActions" validate:"dive,ledger_action"`

	KrakenAccountType *domain.KrakenAccountType `json:"krakenAccountType" schema:"optional" validate:"omitempty,kraken_account_type"`
	FrontendSettings  string                    `json:"frontendSettings"`
	PremiumShouldSync bool                      `json:"premiumShouldSync"`
	HavePremium       bool                      `json:"havePremium"`

	Version          int   `json:"version"`
	LastWriteTs      int64 `json:"lastWriteTs"`
	LastDataUploadTs int64 `json:"lastDataUploadTs"`
	LastBalanceSave  int64 `json:"lastBalanceSave"`
}
