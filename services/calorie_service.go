package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/saqi004/calories/models"
	"github.com/saqi004/calories/utils"
)

const (
	outcomeOK              = "ok"
	outcomeInvalidCategory = "invalid_category"
	outcomeCanceled        = "canceled"
	outcomeOutOfRange      = "out_of_range"

	CalorieUnit = "calories/day"
)

// ErrOutOfRange is returned when finite inputs overflow the formulas.
var ErrOutOfRange = errors.New("inputs produce a non-finite estimate")

type CalorieService struct{}

func NewCalorieService() *CalorieService {
	return &CalorieService{}
}

// Estimate runs ComputeBMR then ComputeDailyCalories and rounds both for
// display. BMI is attached when it can be derived; its absence never fails
// the estimate.
func (s *CalorieService) Estimate(ctx context.Context, in models.BiometricInput) (*models.Estimate, error) {
	if err := ctx.Err(); err != nil {
		incEstimate(outcomeCanceled)
		return nil, err
	}

	bmr, err := utils.ComputeBMR(in.Gender, in.WeightKg, in.HeightCm, float64(in.AgeYears))
	if err != nil {
		return nil, s.fail(err)
	}
	daily, err := utils.ComputeDailyCalories(bmr, in.ActivityLevel)
	if err != nil {
		return nil, s.fail(err)
	}
	if !isFinite(bmr) || !isFinite(daily) {
		incEstimate(outcomeOutOfRange)
		return nil, fmt.Errorf("estimate calories: %w", ErrOutOfRange)
	}
	factor, _ := in.ActivityLevel.Multiplier()

	est := &models.Estimate{
		Input:         in,
		BMR:           utils.Round2(bmr),
		DailyCalories: utils.Round2(daily),
		Multiplier:    factor,
		Unit:          CalorieUnit,
	}
	if bmi, err := utils.CalculateBMI(in.HeightCm, in.WeightKg); err == nil {
		est.BMI = utils.Round2(bmi)
		est.BMICategory = utils.BMICategory(bmi)
	}

	incEstimate(outcomeOK)
	observeBMR(string(in.Gender), bmr)
	return est, nil
}

func isFinite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

func (s *CalorieService) fail(err error) error {
	if errors.Is(err, utils.ErrInvalidCategory) {
		incEstimate(outcomeInvalidCategory)
	}
	return fmt.Errorf("estimate calories: %w", err)
}

// ActivityLevelInfo describes one entry of the multiplier table.
type ActivityLevelInfo struct {
	Level      models.ActivityLevel `json:"level"`
	Multiplier float64              `json:"multiplier"`
}

func (s *CalorieService) ActivityLevels() []ActivityLevelInfo {
	out := make([]ActivityLevelInfo, 0, len(models.ActivityLevels))
	for _, l := range models.ActivityLevels {
		f, _ := l.Multiplier()
		out = append(out, ActivityLevelInfo{Level: l, Multiplier: f})
	}
	return out
}
