package account

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/mtlprog/usersettings/internal/domain"
	"github.com/mtlprog/usersettings/internal/schema"
)

// ParseTags validates a record mapping tag names to tags. Issues are
// addressed by tag name.
func ParseTags(raw any, opts ...schema.Option) (domain.Tags, error) {
	const name = "tags"
	o := schema.NewOptions(opts...)

	obj, err := object(name, raw)
	if err != nil {
		return nil, err
	}

	tags := make(domain.Tags, len(obj))
	var issues []schema.Issue
	for _, key := range sortedKeys(obj) {
		var tag domain.Tag
		found := schema.Struct(obj[key], &tag, key, o)
		if len(found) > 0 {
			issues = append(issues, found...)
			continue
		}
		tags[key] = tag
	}

	if err := schema.Fail(name, issues); err != nil {
		return nil, err
	}
	return tags, nil
}

// ParseExchangeRates validates a record mapping currency tickers to rates.
// Rates may be numbers or numeric strings; both are read exactly.
func ParseExchangeRates(raw any, _ ...schema.Option) (domain.ExchangeRates, error) {
	const name = "exchange rates"

	obj, err := object(name, raw)
	if err != nil {
		return nil, err
	}

	rates := make(domain.ExchangeRates, len(obj))
	var issues []schema.Issue
	for _, ticker := range sortedKeys(obj) {
		rate, err := schema.ParseDecimal(obj[ticker])
		if err != nil {
			issues = append(issues, schema.Issue{
				Path:    ticker,
				Code:    schema.CodeNotANumber,
				Message: fmt.Sprintf("expected a numeric string, received %s", schema.TypeOf(obj[ticker])),
				Err:     err,
			})
			continue
		}
		rates[ticker] = rate
	}

	if err := schema.Fail(name, issues); err != nil {
		return nil, err
	}
	return rates, nil
}

// object decodes raw and asserts it is a JSON object.
func object(name string, raw any) (map[string]any, error) {
	record, err := schema.Record(raw)
	if err != nil {
		return nil, schema.Fail(name, []schema.Issue{schema.RecordIssue(err)})
	}
	obj, issues := schema.Object(record, "")
	if err := schema.Fail(name, issues); err != nil {
		return nil, err
	}
	return obj, nil
}

func sortedKeys(obj map[string]any) []string {
	keys := lo.Keys(obj)
	slices.Sort(keys)
	return keys
}
