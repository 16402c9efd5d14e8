package account

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mtlprog/usersettings/internal/domain"
	"github.com/mtlprog/usersettings/internal/schema"
	"github.com/mtlprog/usersettings/internal/settings"
)

func settingsPayload() map[string]any {
	return map[string]any{
		"uiFloatingPrecision":       2,
		"ethRpcEndpoint":            "",
		"ksmRpcEndpoint":            "",
		"dotRpcEndpoint":            "",
		"balanceSaveFrequency":      24,
		"dateDisplayFormat":         "%d/%m/%Y",
		"mainCurrency":              "EUR",
		"activeModules":             []any{"aave"},
		"btcDerivationGapLimit":     20,
		"displayDateInLocaltime":    true,
		"submitUsageAnalytics":      true,
		"currentPriceOracles":       []any{"coingecko"},
		"historicalPriceOracles":    []any{"cryptocompare"},
		"calculatePastCostBasis":    true,
		"includeCrypto2crypto":      true,
		"includeGasCosts":           true,
		"accountForAssetsMovements": true,
		"pnlCsvWithFormulas":        false,
		"pnlCsvHaveSummary":         false,
		"taxfreeAfterPeriod":        nil,
		"taxableLedgerActions":      []any{},
		"frontendSettings":          "",
		"premiumShouldSync":         false,
		"havePremium":               false,
		"version":                   30,
		"lastWriteTs":               0,
		"lastDataUploadTs":          0,
		"lastBalanceSave":           0,
	}
}

func accountPayload() map[string]any {
	return map[string]any{
		"settings": settingsPayload(),
		"exchanges": []any{
			map[string]any{"location": "kraken", "name": "main", "krakenAccountType": "pro"},
			map[string]any{"location": "binance", "name": "trading"},
		},
	}
}

func validationError(t *testing.T, err error) *schema.ValidationError {
	t.Helper()
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *schema.ValidationError", err)
	}
	return verr
}

func TestParseUserAccount(t *testing.T) {
	acc, err := ParseUserAccount(accountPayload())
	if err != nil {
		t.Fatalf("ParseUserAccount() error = %v", err)
	}

	if acc.Settings.General.MainCurrency.TickerSymbol != "EUR" {
		t.Errorf("MainCurrency = %+v", acc.Settings.General.MainCurrency)
	}
	if len(acc.Exchanges) != 2 {
		t.Fatalf("Exchanges = %v", acc.Exchanges)
	}
	kraken := acc.Exchanges[0]
	if kraken.Location != domain.ExchangeKraken || kraken.Name != "main" || kraken.KrakenAccountType == nil || *kraken.KrakenAccountType != domain.KrakenAccountPro {
		t.Errorf("Exchanges[0] = %+v", kraken)
	}
	if acc.Exchanges[1].KrakenAccountType != nil {
		t.Errorf("Exchanges[1].KrakenAccountType = %v, want nil", *acc.Exchanges[1].KrakenAccountType)
	}
}

func TestParseUserAccountIssues(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p map[string]any)
		path     string
		wantCode schema.IssueCode
	}{
		{
			name:     "missing settings",
			mutate:   func(p map[string]any) { delete(p, "settings") },
			path:     "settings",
			wantCode: schema.CodeRequired,
		},
		{
			name:     "exchanges not a list",
			mutate:   func(p map[string]any) { p["exchanges"] = "kraken" },
			path:     "exchanges",
			wantCode: schema.CodeInvalidType,
		},
		{
			name:     "settings issue is prefixed",
			mutate:   func(p map[string]any) { delete(p["settings"].(map[string]any), "version") },
			path:     "settings.version",
			wantCode: schema.CodeRequired,
		},
		{
			name: "unsupported exchange",
			mutate: func(p map[string]any) {
				p["exchanges"] = []any{map[string]any{"location": "mtgox", "name": "old"}}
			},
			path:     "exchanges[0].location",
			wantCode: schema.CodeInvalidEnum,
		},
		{
			name: "exchange without name",
			mutate: func(p map[string]any) {
				p["exchanges"] = []any{
					map[string]any{"location": "kraken", "name": "main"},
					map[string]any{"location": "gemini"},
				}
			},
			path:     "exchanges[1].name",
			wantCode: schema.CodeRequired,
		},
		{
			name: "exchange not an object",
			mutate: func(p map[string]any) {
				p["exchanges"] = []any{"kraken"}
			},
			path:     "exchanges[0]",
			wantCode: schema.CodeInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := accountPayload()
			tt.mutate(p)

			_, err := ParseUserAccount(p)
			verr := validationError(t, err)
			issue, ok := verr.Issue(tt.path)
			if !ok {
				t.Fatalf("no issue at %s in %v", tt.path, verr.Issues)
			}
			if issue.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", issue.Code, tt.wantCode)
			}
			if verr.Schema != "user account" {
				t.Errorf("Schema = %q", verr.Schema)
			}
		})
	}
}

func TestParseUserAccountUnknownCurrency(t *testing.T) {
	p := accountPayload()
	p["settings"].(map[string]any)["mainCurrency"] = "ABC"

	_, err := ParseUserAccount(p)
	if !errors.Is(err, settings.ErrUnknownCurrency) {
		t.Fatalf("error = %v, want ErrUnknownCurrency", err)
	}

	// Exchange issues are reported before currency resolution.
	p["exchanges"] = []any{map[string]any{"location": "mtgox", "name": "old"}}
	_, err = ParseUserAccount(p)
	validationError(t, err)
}

func TestParseUserAccountUnknownFields(t *testing.T) {
	p := accountPayload()
	p["sessionToken"] = "abc"
	p["exchanges"].([]any)[1].(map[string]any)["apiSecret"] = "s"

	if _, err := ParseUserAccount(p); err != nil {
		t.Fatalf("ParseUserAccount() with drop policy error = %v", err)
	}

	_, err := ParseUserAccount(p, schema.WithUnknownFields(schema.UnknownFieldsError))
	verr := validationError(t, err)
	for _, path := range []string{"sessionToken", "exchanges[1].apiSecret"} {
		if issue, ok := verr.Issue(path); !ok || issue.Code != schema.CodeUnrecognizedKey {
			t.Errorf("issue at %s = %+v, %v", path, issue, ok)
		}
	}
}

func TestParseUserAccountUnknownFieldsWithOtherIssues(t *testing.T) {
	p := accountPayload()
	p["sessionToken"] = "abc"
	p["exchanges"] = []any{map[string]any{"location": "mtgox", "name": "old"}}
	delete(p["settings"].(map[string]any), "version")

	_, err := ParseUserAccount(p, schema.WithUnknownFields(schema.UnknownFieldsError))
	verr := validationError(t, err)
	want := map[string]schema.IssueCode{
		"sessionToken":          schema.CodeUnrecognizedKey,
		"settings.version":      schema.CodeRequired,
		"exchanges[0].location": schema.CodeInvalidEnum,
	}
	for path, code := range want {
		if issue, ok := verr.Issue(path); !ok || issue.Code != code {
			t.Errorf("issue at %s = %+v, %v, want %s", path, issue, ok, code)
		}
	}
}

func TestParseUserAccountEmptyKrakenAccountType(t *testing.T) {
	p := accountPayload()
	p["exchanges"] = []any{
		map[string]any{"location": "kraken", "name": "main", "krakenAccountType": ""},
	}

	acc, err := ParseUserAccount(p)
	if err != nil {
		t.Fatalf("ParseUserAccount() error = %v", err)
	}
	if acc.Exchanges[0].KrakenAccountType != nil {
		t.Errorf("KrakenAccountType = %v, want nil", *acc.Exchanges[0].KrakenAccountType)
	}

	p["exchanges"] = []any{
		map[string]any{"location": "kraken", "name": "main", "krakenAccountType": "platinum"},
	}
	_, err = ParseUserAccount(p)
	verr := validationError(t, err)
	if issue, ok := verr.Issue("exchanges[0].krakenAccountType"); !ok || issue.Code != schema.CodeInvalidEnum {
		t.Errorf("issue = %+v, %v, want invalid enum", issue, ok)
	}
}

func TestParseExternalServiceKeys(t *testing.T) {
	keys, err := ParseExternalServiceKeys(map[string]any{
		"etherscan": map[string]any{"apiKey": "ether-key"},
		"loopring":  map[string]any{"apiKey": "loop-key"},
	})
	if err != nil {
		t.Fatalf("ParseExternalServiceKeys() error = %v", err)
	}

	if k, ok := keys.Key(domain.ServiceEtherscan); !ok || k.APIKey != "ether-key" {
		t.Errorf("Key(etherscan) = %+v, %v", k, ok)
	}
	if k, ok := keys.Key(domain.ServiceLoopring); !ok || k.APIKey != "loop-key" {
		t.Errorf("Key(loopring) = %+v, %v", k, ok)
	}
	if _, ok := keys.Key(domain.ServiceCovalent); ok {
		t.Error("Key(covalent) found an absent key")
	}
}

func TestParseExternalServiceKeysIssues(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		opts     []schema.Option
		path     string
		wantCode schema.IssueCode
	}{
		{"empty api key", map[string]any{"covalent": map[string]any{"apiKey": ""}}, nil, "covalent.apiKey", schema.CodeRequired},
		{"missing api key", map[string]any{"beaconchain": map[string]any{}}, nil, "beaconchain.apiKey", schema.CodeRequired},
		{"key not an object", map[string]any{"etherscan": "plain"}, nil, "etherscan", schema.CodeInvalidType},
		{"null key", map[string]any{"etherscan": nil}, nil, "etherscan", schema.CodeInvalidType},
		{
			"unknown service",
			map[string]any{"infura": map[string]any{"apiKey": "x"}},
			[]schema.Option{schema.WithUnknownFields(schema.UnknownFieldsError)},
			"infura",
			schema.CodeUnrecognizedKey,
		},
		{"not an object", []any{}, nil, "", schema.CodeInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExternalServiceKeys(tt.raw, tt.opts...)
			verr := validationError(t, err)
			issue, ok := verr.Issue(tt.path)
			if !ok || issue.Code != tt.wantCode {
				t.Errorf("issues = %v, want %s at %q", verr.Issues, tt.wantCode, tt.path)
			}
		})
	}
}

func TestParseExternalServiceKeysEmpty(t *testing.T) {
	keys, err := ParseExternalServiceKeys([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseExternalServiceKeys() error = %v", err)
	}
	for _, s := range domain.ExternalServices() {
		if _, ok := keys.Key(s); ok {
			t.Errorf("Key(%s) found a key in an empty record", s)
		}
	}
}

func TestParseTags(t *testing.T) {
	tags, err := ParseTags([]byte(`{
		"hodl": {"name": "hodl", "description": "long term", "backgroundColor": "ffffff", "foregroundColor": "000000"},
		"defi": {"name": "defi", "description": "", "backgroundColor": "00ff00", "foregroundColor": "ffffff"}
	}`))
	if err != nil {
		t.Fatalf("ParseTags() error = %v", err)
	}
	if len(tags) != 2 || tags["hodl"].Description != "long term" || tags["defi"].BackgroundColor != "00ff00" {
		t.Errorf("ParseTags() = %+v", tags)
	}
}

func TestParseTagsIssues(t *testing.T) {
	raw := map[string]any{
		"hodl": map[string]any{"name": "hodl", "description": "", "backgroundColor": "fff"},
		"defi": map[string]any{"name": 3, "description": "", "backgroundColor": "0f0", "foregroundColor": "fff"},
		"bad":  "not a tag",
	}

	_, err := ParseTags(raw)
	verr := validationError(t, err)

	want := map[string]schema.IssueCode{
		"hodl.foregroundColor": schema.CodeRequired,
		"defi.name":            schema.CodeInvalidType,
		"bad":                  schema.CodeInvalidType,
	}
	for path, code := range want {
		if issue, ok := verr.Issue(path); !ok || issue.Code != code {
			t.Errorf("issue at %s = %+v, %v, want %s", path, issue, ok, code)
		}
	}
	// Issues come out in key order.
	if verr.Issues[0].Path != "bad" {
		t.Errorf("first issue at %q, want bad", verr.Issues[0].Path)
	}
}

func TestParseTagsEmpty(t *testing.T) {
	tags, err := ParseTags(map[string]any{})
	if err != nil || len(tags) != 0 {
		t.Errorf("ParseTags({}) = %v, %v", tags, err)
	}
	if _, err := ParseTags("tags"); !errors.Is(err, schema.ErrNotObject) {
		t.Errorf("ParseTags(string) error = %v, want ErrNotObject", err)
	}
}

func TestParseExchangeRates(t *testing.T) {
	rates, err := ParseExchangeRates([]byte(`{"EUR": "0.92", "BTC": "0.0000153", "JPY": 149.5, "USD": "1"}`))
	if err != nil {
		t.Fatalf("ParseExchangeRates() error = %v", err)
	}

	tests := map[string]string{
		"EUR": "0.92",
		"BTC": "0.0000153",
		"JPY": "149.5",
		"USD": "1",
	}
	for ticker, want := range tests {
		got, ok := rates.Rate(ticker)
		if !ok || !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("Rate(%s) = %s, %v, want %s", ticker, got, ok, want)
		}
	}
	if _, ok := rates.Rate("GBP"); ok {
		t.Error("Rate(GBP) found a missing rate")
	}
}

func TestParseExchangeRatesIssues(t *testing.T) {
	_, err := ParseExchangeRates(map[string]any{
		"EUR": "0.92",
		"GBP": "n/a",
		"CHF": nil,
		"JPY": true,
	})
	verr := validationError(t, err)

	if len(verr.Issues) != 3 {
		t.Fatalf("Issues = %v, want 3", verr.Issues)
	}
	for _, ticker := range []string{"CHF", "GBP", "JPY"} {
		if issue, ok := verr.Issue(ticker); !ok || issue.Code != schema.CodeNotANumber {
			t.Errorf("issue at %s = %+v, %v", ticker, issue, ok)
		}
	}
	if !errors.Is(err, schema.ErrNotANumber) {
		t.Error("errors.Is(err, ErrNotANumber) = false")
	}
}

func TestParseExchangeRatesMalformed(t *testing.T) {
	_, err := ParseExchangeRates([]byte(`{"EUR": `))
	verr := validationError(t, err)
	if !verr.Has(schema.CodeInvalidJSON) {
		t.Errorf("issues = %v, want invalid_json", verr.Issues)
	}
}
