package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/saqi004/calories/utils"
)

func TestPromptSession_ReferenceRun(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("Male\n70\n175\n30\nmoderate\n")
	est, err := NewPromptSession(in, &out, NewCalorieService()).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantPrompts := promptGender + promptWeight + promptHeight + promptAge + promptActivity
	if out.String() != wantPrompts {
		t.Fatalf("prompts mismatch:\n got %q\nwant %q", out.String(), wantPrompts)
	}

	var report bytes.Buffer
	if err := WriteReport(&report, est, FormatText); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	want := "Your BMR is: 1695.67 calories/day\nYour daily caloric needs are: 2628.28 calories/day\n"
	if report.String() != want {
		t.Fatalf("report = %q, want %q", report.String(), want)
	}
}

func TestPromptSession_VeryActiveSpelling(t *testing.T) {
	in := strings.NewReader("female\n60\n165\n25\nvery active\n")
	est, err := NewPromptSession(in, &bytes.Buffer{}, NewCalorieService()).Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.Multiplier != 1.9 {
		t.Fatalf("multiplier = %v", est.Multiplier)
	}
}

func TestPromptSession_AbortsOnParseError(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("male\nheavy\n175\n30\nlight\n")
	_, err := NewPromptSession(in, &out, NewCalorieService()).Run(context.Background())
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if strings.Contains(out.String(), promptHeight) {
		t.Fatal("session continued after a parse error")
	}
}

func TestPromptSession_InvalidGenderSurfacesAfterInput(t *testing.T) {
	in := strings.NewReader("nonbinary\n70\n175\n30\nlight\n")
	_, err := NewPromptSession(in, &bytes.Buffer{}, NewCalorieService()).Run(context.Background())
	if !errors.Is(err, utils.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestPromptSession_TruncatedInput(t *testing.T) {
	in := strings.NewReader("male\n70\n")
	_, err := NewPromptSession(in, &bytes.Buffer{}, NewCalorieService()).Run(context.Background())
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}
