package utils

import "github.com/saqi004/calories/models"

// ComputeBMR returns the Harris-Benedict basal metabolic rate in kcal/day.
// Weight is in kilograms, height in centimeters, age in years. No rounding
// and no range checks are applied.
func ComputeBMR(gender models.Gender, weightKg, heightCm, ageYears float64) (float64, error) {
	switch gender {
	case models.Male:
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*ageYears, nil
	case models.Female:
		return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*ageYears, nil
	default:
		return 0, &InvalidCategoryError{
			Field:   "gender",
			Value:   string(gender),
			Allowed: []string{string(models.Male), string(models.Female)},
		}
	}
}

// ComputeDailyCalories scales bmr by the multiplier of level.
func ComputeDailyCalories(bmr float64, level models.ActivityLevel) (float64, error) {
	factor, ok := level.Multiplier()
	if !ok {
		allowed := make([]string, 0, len(models.ActivityLevels))
		for _, l := range models.ActivityLevels {
			allowed = append(allowed, string(l))
		}
		return 0, &InvalidCategoryError{Field: "activity_level", Value: string(level), Allowed: allowed}
	}
	return bmr * factor, nil
}
