package models

// Gender selects the Harris-Benedict coefficient set.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ActivityLevel is the self-reported activity category used to scale BMR.
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

// ActivityLevels lists every recognized level in ascending order.
var ActivityLevels = []ActivityLevel{Sedentary, Light, Moderate, Active, VeryActive}

// Multiplier returns the Harris-Benedict activity factor for l.
// ok is false for any value outside ActivityLevels.
func (l ActivityLevel) Multiplier() (factor float64, ok bool) {
	switch l {
	case Sedentary:
		return 1.2, true
	case Light:
		return 1.375, true
	case Moderate:
		return 1.55, true
	case Active:
		return 1.725, true
	case VeryActive:
		return 1.9, true
	default:
		return 0, false
	}
}

// BiometricInput holds the five typed values a single estimate needs.
type BiometricInput struct {
	Gender        Gender        `json:"gender" yaml:"gender"`
	WeightKg      float64       `json:"weight_kg" yaml:"weight_kg"`
	HeightCm      float64       `json:"height_cm" yaml:"height_cm"`
	AgeYears      int           `json:"age_years" yaml:"age_years"`
	ActivityLevel ActivityLevel `json:"activity_level" yaml:"activity_level"`
}
