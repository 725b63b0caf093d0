package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/saqi004/calories/models"
	"github.com/saqi004/calories/services"
	"github.com/saqi004/calories/utils"
)

const (
	ExitSuccess           = 0
	ExitInvalidCategory   = 1
	ExitInvalidInvocation = 2
	ExitInternalError     = 4
)

type invocation struct {
	format      services.ReportFormat
	interactive bool
	raw         map[string]string
}

var inputFlags = []string{"gender", "weight", "height", "age", "activity"}

func parseInvocation(args []string) (invocation, error) {
	fs := flag.NewFlagSet("calories", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	inv := invocation{raw: make(map[string]string)}
	vals := make(map[string]*string, len(inputFlags))
	vals["gender"] = fs.String("gender", "", "male|female")
	vals["weight"] = fs.String("weight", "", "Weight in kilograms.")
	vals["height"] = fs.String("height", "", "Height in centimeters.")
	vals["age"] = fs.String("age", "", "Age in whole years.")
	vals["activity"] = fs.String("activity", "", "sedentary|light|moderate|active|very_active")
	format := fs.String("format", string(services.FormatText), "Output format: text|json|yaml")

	if err := fs.Parse(args); err != nil {
		return inv, err
	}
	if fs.NArg() != 0 {
		return inv, fmt.Errorf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}

	f, err := services.ParseReportFormat(*format)
	if err != nil {
		return inv, err
	}
	inv.format = f

	var missing []string
	for _, name := range inputFlags {
		if v := *vals[name]; v != "" {
			inv.raw[name] = v
		} else {
			missing = append(missing, "-"+name)
		}
	}
	switch len(missing) {
	case len(inputFlags):
		inv.interactive = true
	case 0:
	default:
		return inv, fmt.Errorf("missing %s (give all five inputs or none)", strings.Join(missing, ", "))
	}
	return inv, nil
}

func (inv invocation) input() (models.BiometricInput, error) {
	var in models.BiometricInput
	var err error
	in.Gender = services.ParseGender(inv.raw["gender"])
	if in.WeightKg, err = services.ParseWeight(inv.raw["weight"]); err != nil {
		return in, err
	}
	if in.HeightCm, err = services.ParseHeight(inv.raw["height"]); err != nil {
		return in, err
	}
	if in.AgeYears, err = services.ParseAge(inv.raw["age"]); err != nil {
		return in, err
	}
	in.ActivityLevel = services.ParseActivityLevel(inv.raw["activity"])
	return in, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	inv, err := parseInvocation(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitInvalidInvocation
	}

	ctx := context.Background()
	svc := services.NewCalorieService()

	var est *models.Estimate
	if inv.interactive {
		est, err = services.NewPromptSession(stdin, stdout, svc).Run(ctx)
	} else {
		var in models.BiometricInput
		if in, err = inv.input(); err == nil {
			est, err = svc.Estimate(ctx, in)
		}
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitCode(err)
	}

	if err := services.WriteReport(stdout, est, inv.format); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitInternalError
	}
	return ExitSuccess
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, utils.ErrInvalidCategory):
		return ExitInvalidCategory
	case errors.Is(err, services.ErrParse), errors.Is(err, services.ErrNoInput),
		errors.Is(err, services.ErrOutOfRange):
		return ExitInvalidInvocation
	default:
		return ExitInternalError
	}
}
