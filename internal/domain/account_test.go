package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExternalServiceKeysKey(t *testing.T) {
	keys := ExternalServiceKeys{
		Etherscan:   &ExternalServiceKey{APIKey: "e"},
		Beaconchain: &ExternalServiceKey{APIKey: "b"},
	}

	tests := []struct {
		service ExternalService
		want    string
		found   bool
	}{
		{ServiceEtherscan, "e", true},
		{ServiceBeaconchain, "b", true},
		{ServiceCryptocompare, "", false},
		{ServiceCovalent, "", false},
		{ServiceLoopring, "", false},
		{ExternalService("infura"), "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.service), func(t *testing.T) {
			got, ok := keys.Key(tt.service)
			if ok != tt.found || got.APIKey != tt.want {
				t.Errorf("Key(%s) = %+v, %v, want %q, %v", tt.service, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestExchangeRatesRate(t *testing.T) {
	rates := ExchangeRates{"EUR": decimal.RequireFromString("0.92")}

	if r, ok := rates.Rate("EUR"); !ok || !r.Equal(decimal.RequireFromString("0.92")) {
		t.Errorf("Rate(EUR) = %s, %v", r, ok)
	}
	if r, ok := rates.Rate("GBP"); ok || !r.IsZero() {
		t.Errorf("Rate(GBP) = %s, %v, want zero and false", r, ok)
	}
}
