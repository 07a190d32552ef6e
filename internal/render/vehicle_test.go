package render

import (
	"strings"
	"testing"

	"github.com/ppiankov/launchwatch/internal/model"
	"github.com/ppiankov/launchwatch/internal/stats"
)

func TestFormatCost(t *testing.T) {
	tests := []struct {
		usd  int64
		want string
	}{
		{50_000_000, "$50,000,000"},
		{6_700_000, "$6,700,000"},
		{0, "TBD"},
	}

	for _, tt := range tests {
		if got := FormatCost(tt.usd); got != tt.want {
			t.Errorf("FormatCost(%d): expected %q, got %q", tt.usd, tt.want, got)
		}
	}
}

func TestFormatHeight(t *testing.T) {
	if got := FormatHeight(70); got != "70 m" {
		t.Errorf("expected 70 m, got %q", got)
	}
	if got := FormatHeight(22.25); got != "22.25 m" {
		t.Errorf("expected 22.25 m, got %q", got)
	}
}

func TestVehicleCard(t *testing.T) {
	v := model.Vehicle{
		Name:          "Falcon 9",
		Active:        true,
		Description:   "api text",
		Height:        model.Distance{Meters: 70},
		CostPerLaunch: 50_000_000,
		Wikipedia:     "https://en.wikipedia.org/wiki/Falcon_9",
	}

	out, err := Render(VehicleCard(v))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Falcon 9", ">Active<", "70 m", "$50,000,000", FallbackImage, "Wikipedia", "reusable two-stage"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected card to contain %q, got %s", want, out)
		}
	}
	if strings.Contains(out, "api text") {
		t.Error("expected description override to replace API text")
	}
	if strings.Contains(out, "Test flight") {
		t.Error("expected no video button without video")
	}
}

func TestVehicleCard_Starship(t *testing.T) {
	out, err := Render(VehicleCard(model.Starship()))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Test flight", "ap-BkkrRg-o", "$10,000,000", "121 m"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected card to contain %q", want)
		}
	}
}

func TestVehicleDescription_Fallback(t *testing.T) {
	v := model.Vehicle{Name: "Big Falcon Rocket", Description: "api text"}
	if got := VehicleDescription(v); got != "api text" {
		t.Errorf("expected API description, got %q", got)
	}
}

func TestStatsTable(t *testing.T) {
	s := stats.Compute(nil)
	out, err := Render(StatsTable(s))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<td>2008</td>", "<td>127</td>", ">426<", ">99.1%<"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected stats to contain %q", want)
		}
	}
}
