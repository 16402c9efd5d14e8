package domain

import "github.com/samber/lo"

// PriceOracle names a source of asset price data.
type PriceOracle string

const (
	PriceOracleCryptocompare PriceOracle = "cryptocompare"
	PriceOracleCoingecko     PriceOracle = "coingecko"
	PriceOracleManual        PriceOracle = "manual"
)

var priceOracles = []PriceOracle{
	PriceOracleCryptocompare,
	PriceOracleCoingecko,
	PriceOracleManual,
}

// PriceOracles returns all supported price oracles.
func PriceOracles() []PriceOracle { return append([]PriceOracle(nil), priceOracles...) }

// IsValid reports whether p is a supported price oracle.
func (p PriceOracle) IsValid() bool { return lo.Contains(priceOracles, p) }

// KrakenAccountType is the verification tier of a Kraken account, which
// determines its API rate limits.
type KrakenAccountType string

const (
	KrakenAccountStarter      KrakenAccountType = "starter"
	KrakenAccountIntermediate KrakenAccountType = "intermediate"
	KrakenAccountPro          KrakenAccountType = "pro"
)

var krakenAccountTypes = []KrakenAccountType{
	KrakenAccountStarter,
	KrakenAccountIntermediate,
	KrakenAccountPro,
}

// KrakenAccountTypes returns all Kraken account tiers.
func KrakenAccountTypes() []KrakenAccountType {
	return append([]KrakenAccountType(nil), krakenAccountTypes...)
}

func (k KrakenAccountType) IsValid() bool { return lo.Contains(krakenAccountTypes, k) }

// Module is an optional on-chain feature module a user can activate.
type Module string

const (
	ModuleAave           Module = "aave"
	ModuleBalancer       Module = "balancer"
	ModuleCompound       Module = "compound"
	ModuleLoopring       Module = "loopring"
	ModuleMakerdaoDSR    Module = "makerdao_dsr"
	ModuleMakerdaoVaults Module = "makerdao_vaults"
	ModuleUniswap        Module = "uniswap"
	ModuleYearnVaults    Module = "yearn_vaults"
	ModuleEth2           Module = "eth2"
	ModuleYearnVaultsV2  Module = "yearn_vaults_v2"
	ModuleSushiswap      Module = "sushiswap"
	ModuleLiquity        Module = "liquity"
	ModulePickleFinance  Module = "pickle_finance"
	ModuleNfts           Module = "nfts"
	ModuleIlluvium       Module = "illuvium"
)

var modules = []Module{
	ModuleAave,
	ModuleBalancer,
	ModuleCompound,
	ModuleLoopring,
	ModuleMakerdaoDSR,
	ModuleMakerdaoVaults,
	ModuleUniswap,
	ModuleYearnVaults,
	ModuleEth2,
	ModuleYearnVaultsV2,
	ModuleSushiswap,
	ModuleLiquity,
	ModulePickleFinance,
	ModuleNfts,
	ModuleIlluvium,
}

// Modules returns all feature modules.
func Modules() []Module { return append([]Module(nil), modules...) }

func (m Module) IsValid() bool { return lo.Contains(modules, m) }

// LedgerAction is a categorized financial event relevant to tax accounting.
type LedgerAction string

const (
	LedgerActionIncome           LedgerAction = "income"
	LedgerActionExpense          LedgerAction = "expense"
	LedgerActionLoss             LedgerAction = "loss"
	LedgerActionDividendsIncome  LedgerAction = "dividends income"
	LedgerActionDonationReceived LedgerAction = "donation received"
	LedgerActionAirdrop          LedgerAction = "airdrop"
	LedgerActionGift             LedgerAction = "gift"
	LedgerActionGrant            LedgerAction = "grant"
)

var ledgerActions = []LedgerAction{
	LedgerActionIncome,
	LedgerActionExpense,
	LedgerActionLoss,
	LedgerActionDividendsIncome,
	LedgerActionDonationReceived,
	LedgerActionAirdrop,
	LedgerActionGift,
	LedgerActionGrant,
}

// LedgerActions returns all ledger action kinds.
func LedgerActions() []LedgerAction { return append([]LedgerAction(nil), ledgerActions...) }

func (l LedgerAction) IsValid() bool { return lo.Contains(ledgerActions, l) }

// SupportedExchange identifies a centralized exchange location.
type SupportedExchange string

const (
	ExchangeKraken             SupportedExchange = "kraken"
	ExchangePoloniex           SupportedExchange = "poloniex"
	ExchangeBittrex            SupportedExchange = "bittrex"
	ExchangeBitmex             SupportedExchange = "bitmex"
	ExchangeBinance            SupportedExchange = "binance"
	ExchangeBinanceUS          SupportedExchange = "binanceus"
	ExchangeCoinbase           SupportedExchange = "coinbase"
	ExchangeCoinbasePro        SupportedExchange = "coinbasepro"
	ExchangeGemini             SupportedExchange = "gemini"
	ExchangeBitstamp           SupportedExchange = "bitstamp"
	ExchangeBitfinex           SupportedExchange = "bitfinex"
	ExchangeBitpanda           SupportedExchange = "bitpanda"
	ExchangeFTX                SupportedExchange = "ftx"
	ExchangeFTXUS              SupportedExchange = "ftxus"
	ExchangeIconomi            SupportedExchange = "iconomi"
	ExchangeKucoin             SupportedExchange = "kucoin"
	ExchangeIndependentReserve SupportedExchange = "independentreserve"
)

var supportedExchanges = []SupportedExchange{
	ExchangeKraken,
	ExchangePoloniex,
	ExchangeBittrex,
	ExchangeBitmex,
	ExchangeBinance,
	ExchangeBinanceUS,
	ExchangeCoinbase,
	ExchangeCoinbasePro,
	ExchangeGemini,
	ExchangeBitstamp,
	ExchangeBitfinex,
	ExchangeBitpanda,
	ExchangeFTX,
	ExchangeFTXUS,
	ExchangeIconomi,
	ExchangeKucoin,
	ExchangeIndependentReserve,
}

// SupportedExchanges returns all exchange locations.
func SupportedExchanges() []SupportedExchange {
	return append([]SupportedExchange(nil), supportedExchanges...)
}

func (e SupportedExchange) IsValid() bool { return lo.Contains(supportedExchanges, e) }
