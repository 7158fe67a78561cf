package errors

import (
	"fmt"
	"testing"
)

func TestEstimateError_Error(t *testing.T) {
	withField := NewInvalidInputError("total_area", "total area must be greater than zero square feet")
	want := "[error] INVALID_INPUT: total area must be greater than zero square feet (field: total_area)"
	if got := withField.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	withoutField := NewRatesLoadError("material with empty id")
	want = "[fatal] RATES_LOAD_FAILED: material with empty id"
	if got := withoutField.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIsInvalidInput(t *testing.T) {
	if !IsInvalidInput(NewInvalidInputError("bedrooms", "bedroom count must not be negative")) {
		t.Error("IsInvalidInput(invalid input error) = false")
	}
	if IsInvalidInput(NewDuplicateMaterialError("cement")) {
		t.Error("IsInvalidInput(duplicate material error) = true")
	}
	if IsInvalidInput(fmt.Errorf("plain error")) {
		t.Error("IsInvalidInput(plain error) = true")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityFatal, "fatal"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}
