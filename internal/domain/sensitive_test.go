package domain

import (
	"reflect"
	"testing"
)

func TestSensitiveFindings_Detected(t *testing.T) {
	f := SensitiveFindings{
		CategoryMaritalParental: {"married"},
		CategoryAge:             {"35 years old"},
		CategoryReligion:        {},
	}

	// Canonical order regardless of map insertion; empty entries excluded.
	want := []string{"age", "marital_parental"}
	if got := f.Detected(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSensitiveFindings_DetectedEmpty(t *testing.T) {
	if got := (SensitiveFindings{}).Detected(); got != nil {
		t.Fatalf("expected nil for no findings, got %v", got)
	}
	var nilFindings SensitiveFindings
	if got := nilFindings.Detected(); got != nil {
		t.Fatalf("expected nil for nil findings, got %v", got)
	}
}
