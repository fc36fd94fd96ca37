package utils

import (
	"strings"
	"testing"
)

type bookingForm struct {
	BusNo string `validate:"required"`
	Seat  int    `validate:"required,gt=0"`
}

func TestValidateStructPasses(t *testing.T) {
	if errs := ValidateStruct(bookingForm{BusNo: "B1", Seat: 3}); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateStructRequired(t *testing.T) {
	errs := ValidateStruct(bookingForm{Seat: 3})
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if errs["BusNo"] != "This field is required" {
		t.Fatalf("unexpected message: %q", errs["BusNo"])
	}
}

func TestValidateStructZeroIntIsMissing(t *testing.T) {
	errs := ValidateStruct(bookingForm{BusNo: "B1"})
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if _, ok := errs["Seat"]; !ok {
		t.Fatalf("expected Seat error, got %v", errs)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"BusNo": "This field is required"})
	if !strings.Contains(out, "BusNo: This field is required") {
		t.Fatalf("unexpected output: %q", out)
	}
}
