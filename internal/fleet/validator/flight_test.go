package validator

import (
	"testing"

	"skyledger/pkg/model"
)

func TestFlightValidator(t *testing.T) {
	v := NewFlightValidator()

	valid := model.FlightSpec{
		ID:          "AI-101",
		Origin:      "DEL",
		Destination: "BOM",
		Departure:   "08:00",
		Fare:        5500,
	}

	tests := []struct {
		name        string
		mutate      func(s *model.FlightSpec)
		expectValid bool
	}{
		{"valid spec", func(s *model.FlightSpec) {}, true},
		{"missing id", func(s *model.FlightSpec) { s.ID = "" }, false},
		{"short origin", func(s *model.FlightSpec) { s.Origin = "DE" }, false},
		{"numeric destination", func(s *model.FlightSpec) { s.Destination = "B0M" }, false},
		{"zero fare", func(s *model.FlightSpec) { s.Fare = 0 }, false},
		{"negative fare", func(s *model.FlightSpec) { s.Fare = -100 }, false},
		{"bad time shape", func(s *model.FlightSpec) { s.Departure = "8:00" }, false},
		{"hour out of range", func(s *model.FlightSpec) { s.Departure = "25:00" }, false},
		{"minute out of range", func(s *model.FlightSpec) { s.Departure = "08:61" }, false},
		{"same origin and destination", func(s *model.FlightSpec) { s.Destination = "DEL" }, false},
		{"midnight", func(s *model.FlightSpec) { s.Departure = "00:00" }, true},
		{"late evening", func(s *model.FlightSpec) { s.Departure = "23:59" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := valid
			tt.mutate(&spec)
			err := v.Validate(&spec)
			if tt.expectValid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.expectValid && err == nil {
				t.Error("expected validation failure, got nil")
			}
		})
	}
}
