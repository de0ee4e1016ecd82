package converter

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by conversion errors.
const (
	CodeEmptyMarkdown       = "EMPTY_MARKDOWN"
	CodeInvalidMode         = "INVALID_MODE"
	CodeInvalidImageTimeout = "INVALID_IMAGE_TIMEOUT"
	CodeInvalidOptions      = "INVALID_OPTIONS"
	CodeAssemblyFailed      = "DOCUMENT_ASSEMBLY_FAILED"

	styleCodePrefix = "INVALID_STYLE_"
)

// ErrEmptyMarkdown is the cause of the error returned for blank input.
var ErrEmptyMarkdown = errors.New("markdown input is empty")

func validationError(err error, code, field, message string) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, message).
		WithTextCode(code).
		WithMetadata(map[string]any{"field": field})
}

// styleError converts an ozzo validation result into one structured error
// for the first offending field in name order.
func styleError(err error) error {
	var fields validation.Errors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return validationError(err, CodeInvalidOptions, "style", "invalid style options")
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	field := names[0]

	return validationError(err, StyleFieldCode(field), field, "invalid style option "+field+": "+fields[field].Error())
}

func assemblyError(err error) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "document assembly failed").
		WithTextCode(CodeAssemblyFailed)
}

// StyleFieldCode returns the text code reported for an invalid style
// field, e.g. titleSize becomes INVALID_STYLE_TITLE_SIZE.
func StyleFieldCode(field string) string {
	var b strings.Builder
	b.WriteString(styleCodePrefix)
	for idx, r := range field {
		if unicode.IsUpper(r) && idx > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// ErrorCode returns the text code of a conversion error, or "" when err
// carries none.
func ErrorCode(err error) string {
	var structured *goerrors.Error
	if errors.As(err, &structured) {
		return structured.TextCode
	}
	return ""
}

// IsValidation reports whether err rejected the input before parsing.
func IsValidation(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}
