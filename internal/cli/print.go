package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/launchwatch/internal/model"
	"github.com/ppiankov/launchwatch/internal/render"
	"github.com/ppiankov/launchwatch/internal/stats"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func printLaunches(w io.Writer, view []model.Launch, mode model.Mode) {
	if len(view) == 0 {
		fmt.Fprintln(w, "No missions found.")
		return
	}
	fmt.Fprintf(w, "%-12s  %-5s  %-7s  %-22s  %s\n", "DATE", "ORBIT", "STATUS", "VEHICLE", "MISSION")
	for _, l := range view {
		orbit := l.OrbitAbbrev()
		if orbit == "" {
			orbit = "TBD"
		}
		status := "-"
		if mode == model.ModePast {
			status = "Failure"
			if l.Succeeded() {
				status = "Success"
			}
		}
		fmt.Fprintf(w, "%-12s  %-5s  %-7s  %-22s  %s\n", render.FormatDate(l), orbit, status, truncate(l.VehicleName(), 22), l.Name)
	}
	fmt.Fprintf(w, "\n%d missions\n", len(view))
}

func printVehicles(w io.Writer, vehicles []model.Vehicle) {
	fmt.Fprintf(w, "%-16s  %-8s  %-8s  %s\n", "NAME", "STATUS", "HEIGHT", "COST")
	for _, v := range vehicles {
		status := "Inactive"
		if v.Active {
			status = "Active"
		}
		fmt.Fprintf(w, "%-16s  %-8s  %-8s  %s\n", v.Name, status, render.FormatHeight(v.Height.Meters), render.FormatCost(v.CostPerLaunch))
	}
}

func printStats(w io.Writer, s stats.Summary) {
	fmt.Fprintln(w, "YEAR  LAUNCHES")
	for _, y := range s.Years() {
		fmt.Fprintf(w, "%d  %8d\n", y, s.PerYear[y])
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Launches:     %d\n", s.Total)
	fmt.Fprintf(w, "Failures:     %d\n", s.Failure)
	fmt.Fprintf(w, "Success rate: %s\n", s.SuccessRateString())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
