package services

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/saqi004/calories/models"

	"gopkg.in/yaml.v3"
)

type ReportFormat string

const (
	FormatText ReportFormat = "text"
	FormatJSON ReportFormat = "json"
	FormatYAML ReportFormat = "yaml"
)

func ParseReportFormat(raw string) (ReportFormat, error) {
	n := strings.ToLower(strings.TrimSpace(raw))
	switch ReportFormat(n) {
	case FormatText, FormatJSON, FormatYAML:
		return ReportFormat(n), nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("invalid format %q (expected text|json|yaml)", raw)
	}
}

// WriteReport renders est to w in the requested format.
func WriteReport(w io.Writer, est *models.Estimate, format ReportFormat) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(est)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(est); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintf(w,
			"Your BMR is: %.2f %s\nYour daily caloric needs are: %.2f %s\n",
			est.BMR, CalorieUnit, est.DailyCalories, CalorieUnit,
		)
		return err
	}
}
