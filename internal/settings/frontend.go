package settings

import (
	"encoding/json"
	"errors"

	"github.com/samber/lo"

	"github.com/mtlprog/usersettings/internal/casing"
	"github.com/mtlprog/usersettings/internal/domain"
	"github.com/mtlprog/usersettings/internal/schema"
)

const frontendField = "frontendSettings"

var errFrontendSchema = errors.New("does not match the frontend settings schema")

// frontendSettings decodes the JSON-encoded frontend settings. An empty
// string stands for an empty object. Keys are camelCased before decoding,
// absent keys take their defaults and unknown keys are kept in Extra.
func frontendSettings(raw string) (domain.FrontendSettings, error) {
	if raw == "" {
		raw = "{}"
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return domain.FrontendSettings{}, schema.Fail(schemaName, []schema.Issue{{
			Path:    frontendField,
			Code:    schema.CodeInvalidJSON,
			Message: "invalid JSON: " + err.Error(),
			Err:     &NestedParseError{Field: frontendField, Err: err},
		}})
	}

	normalized := casing.Keys(decoded)
	fs := domain.DefaultFrontendSettings()
	issues := schema.Struct(normalized, &fs, frontendField, schema.NewOptions())
	if len(issues) > 0 {
		issues = lo.Map(issues, func(i schema.Issue, _ int) schema.Issue {
			cause := i.Err
			if cause == nil {
				cause = errFrontendSchema
			}
			i.Err = &NestedParseError{Field: frontendField, Err: cause}
			return i
		})
		return domain.FrontendSettings{}, schema.Fail(schemaName, issues)
	}

	// Struct succeeded, so normalized is an object.
	obj := normalized.(map[string]any)
	if unknown := schema.UnknownKeys(obj, &fs); len(unknown) > 0 {
		fs.Extra = lo.SliceToMap(unknown, func(k string) (string, any) { return k, obj[k] })
	}
	return fs, nil
}
