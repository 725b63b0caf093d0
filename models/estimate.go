package models

// Estimate is the presentation form of one calculation. BMR and
// DailyCalories are kcal/day rounded to two decimals.
type Estimate struct {
	Input         BiometricInput `json:"input" yaml:"input"`
	BMR           float64        `json:"bmr" yaml:"bmr"`
	DailyCalories float64        `json:"daily_calories" yaml:"daily_calories"`
	Multiplier    float64        `json:"activity_multiplier" yaml:"activity_multiplier"`
	BMI           float64        `json:"bmi,omitempty" yaml:"bmi,omitempty"`
	BMICategory   string         `json:"bmi_category,omitempty" yaml:"bmi_category,omitempty"`
	Unit          string         `json:"unit" yaml:"unit"`
}
