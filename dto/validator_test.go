package dto

import "testing"

func TestDeviceIDValidation(t *testing.T) {
	tests := []struct {
		deviceID string
		valid    bool
	}{
		{"abcd1234", true},
		{"device_A-1234567890", true},
		{"short", false},
		{"", false},
		{"has spaces not allowed", false},
		{"emoji🚀device", false},
	}

	for _, tt := range tests {
		err := GetValidator().Struct(DeviceSessionRequest{DeviceID: tt.deviceID})
		if tt.valid && err != nil {
			t.Errorf("device id %q rejected: %v", tt.deviceID, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("device id %q accepted", tt.deviceID)
		}
	}
}

func TestCompleteSessionRequestBounds(t *testing.T) {
	if err := GetValidator().Struct(CompleteSessionRequest{Minutes: 5, Task: "Study"}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := GetValidator().Struct(CompleteSessionRequest{Minutes: 0}); err == nil {
		t.Fatal("zero minutes accepted")
	}
	if err := GetValidator().Struct(CompleteSessionRequest{Minutes: 181}); err == nil {
		t.Fatal("out-of-range minutes accepted")
	}
}

func TestBreakdownRequestBounds(t *testing.T) {
	if err := GetValidator().Struct(BreakdownRequest{Task: "Do the dishes"}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if err := GetValidator().Struct(BreakdownRequest{Task: "ab"}); err == nil {
		t.Fatal("too-short task accepted")
	}
	if err := GetValidator().Struct(BreakdownRequest{}); err == nil {
		t.Fatal("missing task accepted")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	err := GetValidator().Struct(BreakdownRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := FormatValidationErrors(err)
	if len(formatted) != 1 {
		t.Fatalf("expected 1 error, got %d", len(formatted))
	}
	if formatted[0].Field != "Task" || formatted[0].Message == "" {
		t.Fatalf("unexpected formatted error: %+v", formatted[0])
	}
}
