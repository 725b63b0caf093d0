package services

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/saqi004/calories/models"

	"gopkg.in/yaml.v3"
)

func sampleEstimate() *models.Estimate {
	return &models.Estimate{
		Input:         models.BiometricInput{Gender: models.Female, WeightKg: 60, HeightCm: 165, AgeYears: 25, ActivityLevel: models.Sedentary},
		BMR:           1405.33,
		DailyCalories: 1686.4,
		Multiplier:    1.2,
		Unit:          CalorieUnit,
	}
}

func TestWriteReport_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, sampleEstimate(), FormatText); err != nil {
		t.Fatal(err)
	}
	want := "Your BMR is: 1405.33 calories/day\nYour daily caloric needs are: 1686.40 calories/day\n"
	if buf.String() != want {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWriteReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, sampleEstimate(), FormatJSON); err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if doc["daily_calories"].(float64) != 1686.4 {
		t.Fatalf("unexpected doc: %v", doc)
	}
	if _, ok := doc["bmi"]; ok {
		t.Fatal("zero bmi should be omitted")
	}
}

func TestWriteReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReport(&buf, sampleEstimate(), FormatYAML); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "activity_level: sedentary") {
		t.Fatalf("yaml missing input echo:\n%s", buf.String())
	}
	var doc struct {
		BMR float64 `yaml:"bmr"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil || doc.BMR != 1405.33 {
		t.Fatalf("yaml decode: %v %+v", err, doc)
	}
}

func TestParseReportFormat(t *testing.T) {
	for raw, want := range map[string]ReportFormat{"": FormatText, "JSON": FormatJSON, " yaml ": FormatYAML} {
		got, err := ParseReportFormat(raw)
		if err != nil || got != want {
			t.Fatalf("ParseReportFormat(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseReportFormat("xml"); err == nil {
		t.Fatal("expected error for xml")
	}
}
