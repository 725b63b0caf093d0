package utils

import (
	"errors"
	"math"
)

// Plausible adult bounds; outside them BMI is not reported.
const (
	minHeightCm = 50.0
	maxHeightCm = 250.0
	minWeightKg = 10.0
	maxWeightKg = 400.0
)

var (
	errNonPositiveBody = errors.New("height and weight must be positive")
	errImplausibleBody = errors.New("height/weight out of plausible range")
)

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errNonPositiveBody
	}
	if heightCm < minHeightCm || heightCm > maxHeightCm || weightKg < minWeightKg || weightKg > maxWeightKg {
		return 0, errImplausibleBody
	}
	m := heightCm / 100
	return weightKg / (m * m), nil
}

// BMICategory maps a BMI value to its WHO weight band.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obesity class I"
	case bmi < 40:
		return "Obesity class II"
	}
	return "Obesity class III"
}

// Round2 rounds for display only.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }
