package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrNotObject marks a value that had to be a JSON object.
var ErrNotObject = errors.New("expected object")

// ErrNotANumber marks a value that could not be read as a number.
var ErrNotANumber = errors.New("not a number")

// IssueCode classifies a single validation failure.
type IssueCode string

const (
	CodeInvalidType     IssueCode = "invalid_type"
	CodeRequired        IssueCode = "required"
	CodeInvalidEnum     IssueCode = "invalid_enum_value"
	CodeUnrecognizedKey IssueCode = "unrecognized_keys"
	CodeTooSmall        IssueCode = "too_small"
	CodeTooBig          IssueCode = "too_big"
	CodeNotANumber      IssueCode = "not_a_number"
	CodeInvalidJSON     IssueCode = "invalid_json"
	CodeInvalidValue    IssueCode = "invalid_value"
)

// Issue is one failed check, addressed by a dotted path such as
// "activeModules[1]". An empty path means the record itself.
type Issue struct {
	Path    string
	Code    IssueCode
	Message string
	Err     error
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError reports every issue found while validating one schema.
type ValidationError struct {
	Schema string
	Issues []Issue
}

func (e *ValidationError) Error() string {
	msgs := lo.Map(e.Issues, func(i Issue, _ int) string { return i.String() })
	return fmt.Sprintf("invalid %s: %s", e.Schema, strings.Join(msgs, "; "))
}

// Unwrap exposes the causes attached to issues, so errors.Is and errors.As
// see through the aggregate.
func (e *ValidationError) Unwrap() []error {
	return lo.FilterMap(e.Issues, func(i Issue, _ int) (error, bool) {
		return i.Err, i.Err != nil
	})
}

// Has reports whether any issue carries code.
func (e *ValidationError) Has(code IssueCode) bool {
	return lo.ContainsBy(e.Issues, func(i Issue) bool { return i.Code == code })
}

// Issue returns the first issue at path.
func (e *ValidationError) Issue(path string) (Issue, bool) {
	return lo.Find(e.Issues, func(i Issue) bool { return i.Path == path })
}

// Fail wraps issues into a *ValidationError, or returns nil when there are none.
func Fail(schema string, issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Schema: schema, Issues: issues}
}

// Collect merges the issues of every *ValidationError in errs under one
// schema name. Any other non-nil error becomes an invalid_value issue.
func Collect(schema string, errs ...error) error {
	var issues []Issue
	for _, err := range errs {
		if err == nil {
			continue
		}
		var verr *ValidationError
		if errors.As(err, &verr) {
			issues = append(issues, verr.Issues...)
			continue
		}
		issues = append(issues, Issue{Code: CodeInvalidValue, Message: err.Error(), Err: err})
	}
	return Fail(schema, issues)
}

// Prefix re-roots the issues of a *ValidationError under path and renames
// the schema. Other errors are returned unchanged.
func Prefix(err error, path, schema string) error {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	issues := lo.Map(verr.Issues, func(i Issue, _ int) Issue {
		i.Path = Join(path, i.Path)
		return i
	})
	return &ValidationError{Schema: schema, Issues: issues}
}

// Join appends a key to a path.
func Join(path, key string) string {
	switch {
	case path == "":
		return key
	case key == "":
		return path
	case strings.HasPrefix(key, "["):
		return path + key
	default:
		return path + "." + key
	}
}

// Index appends a list index to a path.
func Index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
