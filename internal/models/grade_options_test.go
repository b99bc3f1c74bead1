package models

import (
	"testing"
)

var expectedStandardValues = []string{"10", "9.5", "9", "8.5", "8", "7.5", "7", "6.5", "6", "5.5", "5", "4", "3", "2", "1"}

func TestGradeOptionsFor_Ungraded(t *testing.T) {
	options := GradeOptionsFor(GradingServiceUngraded)

	if len(options) != 1 {
		t.Fatalf("expected exactly 1 option, got %d", len(options))
	}
	if options[0].Value != "N/A" || options[0].Label != "N/A (Ungraded)" {
		t.Errorf("unexpected option %+v", options[0])
	}
}

func TestGradeOptionsFor_Services(t *testing.T) {
	tests := []struct {
		service       string
		wantAuthentic bool
	}{
		{GradingServicePSA, true},
		{GradingServiceSGC, true},
		{GradingServiceJSA, true},
		{GradingServiceBGS, false},
		{"Beckett", false},
		{"", false},
		{"psa", false},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			options := GradeOptionsFor(tt.service)

			wantLen := len(expectedStandardValues)
			if tt.wantAuthentic {
				wantLen++
			}
			if len(options) != wantLen {
				t.Fatalf("GradeOptionsFor(%q) returned %d options, want %d", tt.service, len(options), wantLen)
			}

			for i, value := range expectedStandardValues {
				if options[i].Value != value {
					t.Errorf("option %d = %q, want %q", i, options[i].Value, value)
				}
			}

			last := options[len(options)-1]
			if tt.wantAuthentic {
				if last.Value != "A" || last.Label != "A (Authentic)" {
					t.Errorf("expected trailing authentic option, got %+v", last)
				}
			} else if last.Value == "A" {
				t.Errorf("did not expect authentic option for %q", tt.service)
			}
		})
	}
}

func TestGradeOptionsFor_Labels(t *testing.T) {
	options := GradeOptionsFor(GradingServicePSA)

	if options[0].Label != "10 (Gem Mint)" {
		t.Errorf("first label = %q, want %q", options[0].Label, "10 (Gem Mint)")
	}
	if options[14].Label != "1 (Poor-Fair)" {
		t.Errorf("last numeric label = %q, want %q", options[14].Label, "1 (Poor-Fair)")
	}
}

func TestGradeOptionsFor_ReturnsCopy(t *testing.T) {
	options := GradeOptionsFor(GradingServiceBGS)
	options[0].Value = "mutated"

	again := GradeOptionsFor(GradingServiceBGS)
	if again[0].Value != "10" {
		t.Errorf("mutating a returned slice changed the table: got %q", again[0].Value)
	}
}

func TestIsValidGrade(t *testing.T) {
	tests := []struct {
		service string
		grade   string
		want    bool
	}{
		{GradingServiceUngraded, "N/A", true},
		{GradingServiceUngraded, "10", false},
		{GradingServicePSA, "A", true},
		{GradingServiceBGS, "A", false},
		{GradingServiceBGS, "9.5", true},
		{GradingServicePSA, "9.0", false},
	}

	for _, tt := range tests {
		if got := IsValidGrade(tt.service, tt.grade); got != tt.want {
			t.Errorf("IsValidGrade(%q, %q) = %v, want %v", tt.service, tt.grade, got, tt.want)
		}
	}
}
