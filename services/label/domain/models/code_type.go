package models

import (
	"fmt"
	"strings"
)

// CodeType selects which scannable code(s) appear on a label.
type CodeType string

const (
	CodeTypeBarcode CodeType = "barcode"
	CodeTypeQR      CodeType = "qr"
	CodeTypeBoth    CodeType = "both"
)

// ParseCodeType accepts the canonical names case-insensitively.
func ParseCodeType(s string) (CodeType, error) {
	switch ct := CodeType(strings.ToLower(strings.TrimSpace(s))); ct {
	case CodeTypeBarcode, CodeTypeQR, CodeTypeBoth:
		return ct, nil
	default:
		return "", fmt.Errorf("unknown code type %q", s)
	}
}

// HasBarcode reports whether the label carries a linear barcode.
func (c CodeType) HasBarcode() bool {
	return c == CodeTypeBarcode || c == CodeTypeBoth
}

// HasQR reports whether the label carries a QR code.
func (c CodeType) HasQR() bool {
	return c == CodeTypeQR || c == CodeTypeBoth
}

// String returns the underlying string value.
func (c CodeType) String() string {
	return string(c)
}

// CodeTypeSet is the ordered option set a deployment offers, plus its default.
// Deployments differ: {barcode, qr} in one, {qr, barcode, both} in another.
type CodeTypeSet struct {
	options []CodeType
	def     CodeType
}

// NewCodeTypeSet parses a list such as "qr,barcode,both" (comma or pipe separated)
// and a default. An empty default selects the first option.
func NewCodeTypeSet(list, def string) (CodeTypeSet, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == '|' })

	set := CodeTypeSet{}
	seen := make(map[CodeType]bool, len(fields))
	for _, f := range fields {
		ct, err := ParseCodeType(f)
		if err != nil {
			return CodeTypeSet{}, err
		}
		if seen[ct] {
			continue
		}
		seen[ct] = true
		set.options = append(set.options, ct)
	}
	if len(set.options) == 0 {
		return CodeTypeSet{}, fmt.Errorf("code type set must not be empty")
	}

	if strings.TrimSpace(def) == "" {
		set.def = set.options[0]
		return set, nil
	}
	d, err := ParseCodeType(def)
	if err != nil {
		return CodeTypeSet{}, fmt.Errorf("default: %w", err)
	}
	if !seen[d] {
		return CodeTypeSet{}, fmt.Errorf("default code type %q is not in the option set", d)
	}
	set.def = d
	return set, nil
}

// Options returns a copy of the option list in configured order.
func (s CodeTypeSet) Options() []CodeType {
	out := make([]CodeType, len(s.options))
	copy(out, s.options)
	return out
}

// Default returns the preselected option.
func (s CodeTypeSet) Default() CodeType {
	return s.def
}

// Contains reports whether ct is one of the offered options.
func (s CodeTypeSet) Contains(ct CodeType) bool {
	for _, o := range s.options {
		if o == ct {
			return true
		}
	}
	return false
}

// Resolve maps raw form input onto the set: blank selects the default,
// anything else must parse and be offered.
func (s CodeTypeSet) Resolve(raw string) (CodeType, error) {
	if strings.TrimSpace(raw) == "" {
		return s.def, nil
	}
	ct, err := ParseCodeType(raw)
	if err != nil {
		return "", err
	}
	if !s.Contains(ct) {
		return "", fmt.Errorf("code type %q is not offered", ct)
	}
	return ct, nil
}
