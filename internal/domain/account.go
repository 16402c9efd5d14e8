package domain

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Exchange is a connected exchange account.
type Exchange struct {
	Location          SupportedExchange  `json:"location" validate:"exchange"`
	Name              string             `json:"name" validate:"required"`
	KrakenAccountType *KrakenAccountType `json:"krakenAccountType,omitempty" schema:"optional" validate:"omitempty,kraken_account_type"`
}

// UserAccount is the payload returned after login.
type UserAccount struct {
	Settings  UserSettingsModel `json:"settings"`
	Exchanges []Exchange        `json:"exchanges"`
}

// ExternalService names a third party API the user can supply a key for.
type ExternalService string

const (
	ServiceEtherscan     ExternalService = "etherscan"
	ServiceCryptocompare ExternalService = "cryptocompare"
	ServiceCovalent      ExternalService = "covalent"
	ServiceBeaconchain   ExternalService = "beaconchain"
	ServiceLoopring      ExternalService = "loopring"
)

var externalServices = []ExternalService{
	ServiceEtherscan,
	ServiceCryptocompare,
	ServiceCovalent,
	ServiceBeaconchain,
	ServiceLoopring,
}

// ExternalServices returns the closed set of external services.
func ExternalServices() []ExternalService {
	return append([]ExternalService(nil), externalServices...)
}

func (s ExternalService) IsValid() bool { return lo.Contains(externalServices, s) }

// ExternalServiceKey is the credential stored for one external service.
type ExternalServiceKey struct {
	APIKey string `json:"apiKey" validate:"required"`
}

// ExternalServiceKeys holds the optional key of every external service.
type ExternalServiceKeys struct {
	Etherscan     *ExternalServiceKey `json:"etherscan,omitempty" schema:"optional"`
	Cryptocompare *ExternalServiceKey `json:"cryptocompare,omitempty" schema:"optional"`
	Covalent      *ExternalServiceKey `json:"covalent,omitempty" schema:"optional"`
	Beaconchain   *ExternalServiceKey `json:"beaconchain,omitempty" schema:"optional"`
	Loopring      *ExternalServiceKey `json:"loopring,omitempty" schema:"optional"`
}

// Key returns the key configured for service, if any.
func (k ExternalServiceKeys) Key(service ExternalService) (ExternalServiceKey, bool) {
	var key *ExternalServiceKey
	switch service {
	case ServiceEtherscan:
		key = k.Etherscan
	case ServiceCryptocompare:
		key = k.Cryptocompare
	case ServiceCovalent:
		key = k.Covalent
	case ServiceBeaconchain:
		key = k.Beaconchain
	case ServiceLoopring:
		key = k.Loopring
	}
	if key == nil {
		return ExternalServiceKey{}, false
	}
	return *key, true
}

// Tag labels accounts and events in the UI.
type Tag struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	BackgroundColor string `json:"backgroundColor"`
	ForegroundColor string `json:"foregroundColor"`
}

// Tags maps a tag name to its definition.
type Tags map[string]Tag

// ExchangeRates maps a currency ticker to its rate against USD.
type ExchangeRates map[string]decimal.Decimal

// Rate returns the rate for ticker, if known.
func (r ExchangeRates) Rate(ticker string) (decimal.Decimal, bool) {
	d, ok := r[ticker]
	return d, ok
}
