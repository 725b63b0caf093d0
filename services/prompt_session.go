package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/saqi004/calories/models"
)

const (
	promptGender   = "Enter your gender (male/female): "
	promptWeight   = "Enter your weight in kilograms: "
	promptHeight   = "Enter your height in centimeters: "
	promptAge      = "Enter your age in years: "
	promptActivity = "Enter your activity level (sedentary, light, moderate, active, very active): "
)

// PromptSession asks for the five inputs one line at a time. The first
// parse or category error ends the session; nothing is re-prompted.
type PromptSession struct {
	in  *bufio.Scanner
	out io.Writer
	svc *CalorieService
}

func NewPromptSession(in io.Reader, out io.Writer, svc *CalorieService) *PromptSession {
	return &PromptSession{in: bufio.NewScanner(in), out: out, svc: svc}
}

// Run collects the inputs and returns the estimate. The result is not
// printed; see WriteReport.
func (p *PromptSession) Run(ctx context.Context) (*models.Estimate, error) {
	in, err := p.Collect()
	if err != nil {
		return nil, err
	}
	return p.svc.Estimate(ctx, in)
}

// Collect reads and parses the five answers without computing anything.
func (p *PromptSession) Collect() (models.BiometricInput, error) {
	var in models.BiometricInput

	raw, err := p.ask(promptGender)
	if err != nil {
		return in, err
	}
	in.Gender = ParseGender(raw)

	if raw, err = p.ask(promptWeight); err != nil {
		return in, err
	}
	if in.WeightKg, err = ParseWeight(raw); err != nil {
		return in, err
	}

	if raw, err = p.ask(promptHeight); err != nil {
		return in, err
	}
	if in.HeightCm, err = ParseHeight(raw); err != nil {
		return in, err
	}

	if raw, err = p.ask(promptAge); err != nil {
		return in, err
	}
	if in.AgeYears, err = ParseAge(raw); err != nil {
		return in, err
	}

	if raw, err = p.ask(promptActivity); err != nil {
		return in, err
	}
	in.ActivityLevel = ParseActivityLevel(raw)

	return in, nil
}

// ErrNoInput is returned when the input stream ends before every prompt
// has been answered.
var ErrNoInput = errors.New("input ended before all answers were given")

func (p *PromptSession) ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrNoInput
	}
	return p.in.Text(), nil
}
