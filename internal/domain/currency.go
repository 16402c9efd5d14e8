package domain

import "github.com/samber/lo"

// Currency is a fiat or crypto currency a user can pick as main currency.
type Currency struct {
	Name          string `json:"name"`
	TickerSymbol  string `json:"tickerSymbol"`
	UnicodeSymbol string `json:"unicodeSymbol"`
}

// currencies is unexported to prevent external mutation.
var currencies = []Currency{
	{Name: "United States Dollar", TickerSymbol: "USD", UnicodeSymbol: "$"},
	{Name: "Euro", TickerSymbol: "EUR", UnicodeSymbol: "€"},
	{Name: "British Pound", TickerSymbol: "GBP", UnicodeSymbol: "£"},
	{Name: "Japanese Yen", TickerSymbol: "JPY", UnicodeSymbol: "¥"},
	{Name: "Chinese Yuan", TickerSymbol: "CNY", UnicodeSymbol: "¥"},
	{Name: "Indian Rupee", TickerSymbol: "INR", UnicodeSymbol: "₹"},
	{Name: "South Korean Won", TickerSymbol: "KRW", UnicodeSymbol: "₩"},
	{Name: "Canadian Dollar", TickerSymbol: "CAD", UnicodeSymbol: "$"},
	{Name: "Russian Ruble", TickerSymbol: "RUB", UnicodeSymbol: "₽"},
	{Name: "Swiss Franc", TickerSymbol: "CHF", UnicodeSymbol: "Fr"},
	{Name: "Turkish Lira", TickerSymbol: "TRY", UnicodeSymbol: "₺"},
	{Name: "South African Rand", TickerSymbol: "ZAR", UnicodeSymbol: "R"},
	{Name: "Australian Dollar", TickerSymbol: "AUD", UnicodeSymbol: "$"},
	{Name: "New Zealand Dollar", TickerSymbol: "NZD", UnicodeSymbol: "$"},
	{Name: "Brazilian Real", TickerSymbol: "BRL", UnicodeSymbol: "R$"},
	{Name: "New Taiwan Dollar", TickerSymbol: "TWD", UnicodeSymbol: "NT$"},
	{Name: "Danish Krone", TickerSymbol: "DKK", UnicodeSymbol: "kr"},
	{Name: "Swedish Krona", TickerSymbol: "SEK", UnicodeSymbol: "kr"},
	{Name: "Norwegian Krone", TickerSymbol: "NOK", UnicodeSymbol: "kr"},
	{Name: "Polish Zloty", TickerSymbol: "PLN", UnicodeSymbol: "zł"},
	{Name: "Hong Kong Dollar", TickerSymbol: "HKD", UnicodeSymbol: "$"},
	{Name: "Singapore Dollar", TickerSymbol: "SGD", UnicodeSymbol: "$"},
	{Name: "Ether", TickerSymbol: "ETH", UnicodeSymbol: "Ξ"},
	{Name: "Bitcoin", TickerSymbol: "BTC", UnicodeSymbol: "₿"},
}

// Currencies returns a copy of the currency reference table.
func Currencies() []Currency {
	return append([]Currency(nil), currencies...)
}

// CurrencyTickers returns the ticker symbols of all known currencies.
func CurrencyTickers() []string {
	return lo.Map(currencies, func(c Currency, _ int) string {
		return c.TickerSymbol
	})
}

// CurrencyByTicker looks up a currency by its exact ticker symbol.
// Returns the currency and true if found, zero value and false otherwise.
func CurrencyByTicker(ticker string) (Currency, bool) {
	return lo.Find(currencies, func(c Currency) bool {
		return c.TickerSymbol == ticker
	})
}
