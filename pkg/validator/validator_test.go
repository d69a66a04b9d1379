package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/skulabel/pkg/httpx"
	pkgvalidator "github.com/ghuser/skulabel/pkg/validator"
)

type labelForm struct {
	BusinessName string `json:"business_name" validate:"max=10"`
	ProductName  string `json:"product_name"  validate:"required,max=10"`
	CodeType     string `json:"code_type"     validate:"omitempty,oneof=barcode qr both"`
	SKU          string `json:"sku"           validate:"omitempty,printascii"`
}

func TestValidate_valid(t *testing.T) {
	s := labelForm{BusinessName: "Acme", ProductName: "Widget", CodeType: "qr"}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	if err := pkgvalidator.Validate(&labelForm{}); err == nil {
		t.Fatal("expected validation error for empty product name")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		form  labelForm
		field string
		want  string
	}{
		{"required", labelForm{}, "product_name", "This field is required"},
		{"max", labelForm{ProductName: "12345678901"}, "product_name", "Maximum length is 10"},
		{"oneof", labelForm{ProductName: "Widget", CodeType: "ean13"}, "code_type", "Must be one of: barcode qr both"},
		{"printascii", labelForm{ProductName: "Widget", SKU: "AC\x01"}, "sku", "Must contain only printable ASCII characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&tt.form))
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q (all: %v)", tt.field, m[tt.field], tt.want, m)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

func TestValidateRequest_valid(t *testing.T) {
	body := `{"business_name":"Acme","product_name":"Widget","code_type":"both"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[labelForm](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.ProductName != "Widget" || req.CodeType != "both" {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[labelForm](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_tooLarge(t *testing.T) {
	body := `{"product_name":"` + strings.Repeat("x", 200) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	var ok bool
	httpx.RequestBodyLimit(32)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = pkgvalidator.ValidateRequest[labelForm](w, r)
	})).ServeHTTP(w, r)

	if ok {
		t.Fatal("expected ok=false for oversized body")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}

func TestValidateRequest_failedValidation(t *testing.T) {
	body := `{"business_name":"Acme","product_name":"Widget","code_type":"ean13"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[labelForm](w, r)
	if ok {
		t.Fatal("expected ok=false for unknown code type")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	for _, want := range []string{"Validation failed", "validation_failed", "code_type"} {
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("expected %q in body, got: %s", want, w.Body.String())
		}
	}
}
