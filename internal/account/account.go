// Package account validates the records that accompany user settings: the
// user account returned after login, external service keys, tags and
// exchange rates.
package account

import (
	"errors"

	"github.com/samber/lo"

	"github.com/mtlprog/usersettings/internal/domain"
	"github.com/mtlprog/usersettings/internal/schema"
	"github.com/mtlprog/usersettings/internal/settings"
)

type wireAccount struct {
	Settings  any   `json:"settings"`
	Exchanges []any `json:"exchanges"`
}

// ParseUserAccount validates a user account record. Settings issues are
// reported under "settings" and exchange issues under "exchanges[i]", all in
// one *schema.ValidationError along with unrecognized top-level keys. A
// missing or mistyped top-level field stops validation early. An unknown main
// currency is reported as a *settings.ResolutionError only when nothing else
// is wrong.
func ParseUserAccount(raw any, opts ...schema.Option) (domain.UserAccount, error) {
	const name = "user account"
	o := schema.NewOptions(opts...)

	record, err := schema.Record(raw)
	if err != nil {
		return domain.UserAccount{}, schema.Fail(name, []schema.Issue{schema.RecordIssue(err)})
	}

	var w wireAccount
	issues := schema.Struct(record, &w, "", o)
	if lo.SomeBy(issues, func(i schema.Issue) bool { return i.Code != schema.CodeUnrecognizedKey }) {
		return domain.UserAccount{}, schema.Fail(name, issues)
	}

	var resolution error
	model, settingsErr := settings.Parse(w.Settings, opts...)
	var rerr *settings.ResolutionError
	if errors.As(settingsErr, &rerr) {
		resolution, settingsErr = settingsErr, nil
	}

	exchanges := make([]domain.Exchange, len(w.Exchanges))
	for i, raw := range w.Exchanges {
		issues = append(issues, schema.Struct(raw, &exchanges[i], schema.Index("exchanges", i), o)...)
		if k := exchanges[i].KrakenAccountType; k != nil && *k == "" {
			exchanges[i].KrakenAccountType = nil
		}
	}

	if err := schema.Collect(name, schema.Prefix(settingsErr, "settings", name), schema.Fail(name, issues)); err != nil {
		return domain.UserAccount{}, err
	}
	if resolution != nil {
		return domain.UserAccount{}, resolution
	}
	return domain.UserAccount{Settings: model, Exchanges: exchanges}, nil
}

// ParseExternalServiceKeys validates the API keys record. Every service is
// optional; a present service needs a non-empty apiKey.
func ParseExternalServiceKeys(raw any, opts ...schema.Option) (domain.ExternalServiceKeys, error) {
	const name = "external service keys"

	record, err := schema.Record(raw)
	if err != nil {
		return domain.ExternalServiceKeys{}, schema.Fail(name, []schema.Issue{schema.RecordIssue(err)})
	}

	var keys domain.ExternalServiceKeys
	if err := schema.Fail(name, schema.Struct(record, &keys, "", schema.NewOptions(opts...))); err != nil {
		return domain.ExternalServiceKeys{}, err
	}
	return keys, nil
}
