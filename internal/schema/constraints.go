package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mtlprog/usersettings/internal/domain"
)

// enumTags maps custom validate tags to their enum checks. An empty kraken
// account type means unset and passes.
var enumTags = map[string]func(string) bool{
	"price_oracle":        func(s string) bool { return domain.PriceOracle(s).IsValid() },
	"kraken_account_type": func(s string) bool { return s == "" || domain.KrakenAccountType(s).IsValid() },
	"module":              func(s string) bool { return domain.Module(s).IsValid() },
	"ledger_action":       func(s string) bool { return domain.LedgerAction(s).IsValid() },
	"exchange":            func(s string) bool { return domain.SupportedExchange(s).IsValid() },
	"external_service":    func(s string) bool { return domain.ExternalService(s).IsValid() },
}

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, valid := range enumTags {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
		if err != nil {
			panic(fmt.Sprintf("registering %s validation: %v", tag, err))
		}
	}
	return v
}

// Constraints checks the `validate` tags of the struct dst points to and
// returns one issue per failed constraint, rooted at path.
func Constraints(dst any, path string) []Issue {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Issue{{Path: path, Code: CodeInvalidValue, Message: err.Error(), Err: err}}
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, issueFromFieldError(fe, path))
	}
	return issues
}

func issueFromFieldError(fe validator.FieldError, path string) Issue {
	// Namespace starts with the root struct's type name.
	_, rel, _ := strings.Cut(fe.Namespace(), ".")
	issue := Issue{Path: Join(path, rel)}

	switch tag := fe.Tag(); {
	case tag == "oneof" || enumTags[tag] != nil:
		issue.Code = CodeInvalidEnum
		issue.Message = fmt.Sprintf("invalid enum value %v", fe.Value())
	case tag == "required":
		issue.Code = CodeRequired
		issue.Message = "required"
	case tag == "min" || tag == "gte":
		issue.Code = CodeTooSmall
		issue.Message = fmt.Sprintf("must be at least %s", fe.Param())
	case tag == "max" || tag == "lte":
		issue.Code = CodeTooBig
		issue.Message = fmt.Sprintf("must be at most %s", fe.Param())
	case tag == "len":
		issue.Code = CodeInvalidValue
		issue.Message = fmt.Sprintf("length must be %s", fe.Param())
	case tag == "nefield":
		issue.Code = CodeInvalidValue
		issue.Message = fmt.Sprintf("must differ from %s", fe.Param())
	default:
		issue.Code = CodeInvalidValue
		issue.Message = fmt.Sprintf("failed %s constraint", tag)
	}
	return issue
}
