package domain

import "errors"

// Sentinel errors for the label domain. Use errors.Is() to check these.
var (
	// ErrEmptyInput indicates the SKU generator received a blank business name.
	// The composer validates first, so this should not reach callers.
	ErrEmptyInput = errors.New("business name cannot be empty")

	// ErrMissingRequiredField indicates business name or product name is blank.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidPrice indicates the price is shown but is not a positive finite number.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrGenerationFailed wraps any unexpected failure of the SKU generation step.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrUnsupportedCodeType indicates a code type outside the configured option set.
	ErrUnsupportedCodeType = errors.New("unsupported code type")

	// ErrLabelNotFound indicates no label has been generated in the current session.
	ErrLabelNotFound = errors.New("label not found")

	// ErrCodeNotOnLabel indicates the requested code image is not part of the label.
	ErrCodeNotOnLabel = errors.New("code not on label")

	// ErrPrinterUnavailable indicates PDF printing is disabled or unreachable.
	ErrPrinterUnavailable = errors.New("printer unavailable")
)

// Kind returns a stable machine-readable name for a label domain error,
// or "internal" when err is not one of the sentinels above.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrMissingRequiredField):
		return "missing_required_field"
	case errors.Is(err, ErrInvalidPrice):
		return "invalid_price"
	case errors.Is(err, ErrGenerationFailed):
		return "generation_failed"
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrUnsupportedCodeType):
		return "unsupported_code_type"
	case errors.Is(err, ErrLabelNotFound):
		return "label_not_found"
	case errors.Is(err, ErrCodeNotOnLabel):
		return "code_not_on_label"
	case errors.Is(err, ErrPrinterUnavailable):
		return "printer_unavailable"
	default:
		return "internal"
	}
}

// UserMessage returns the single human-readable message shown for each error kind.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingRequiredField):
		return "Please fill business name and product name"
	case errors.Is(err, ErrInvalidPrice):
		return "Please enter a valid selling price"
	case errors.Is(err, ErrGenerationFailed), errors.Is(err, ErrEmptyInput):
		return "Failed to generate SKU"
	case errors.Is(err, ErrUnsupportedCodeType):
		return "Please choose a supported code type"
	case errors.Is(err, ErrLabelNotFound):
		return "Generate a SKU first"
	case errors.Is(err, ErrCodeNotOnLabel):
		return "This code type is not on the current label"
	case errors.Is(err, ErrPrinterUnavailable):
		return "Label printing is not available"
	default:
		return "Something went wrong"
	}
}
