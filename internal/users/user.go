package users

import (
	"math"
	"time"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile holds the body and preference data of a user. Height and
// weight are optional, BMI can only be computed when both are set.
type Profile struct {
	UserID         int      `json:"userId"`
	HeightCm       *float64 `json:"heightCm"`
	WeightKg       *float64 `json:"weightKg"`
	FitnessGoal    string   `json:"fitnessGoal,omitempty"`
	PreferredTheme string   `json:"preferredTheme,omitempty"`
}

const (
	BMICategoryUnderweight = "Underweight"
	BMICategoryNormal      = "Normal weight"
	BMICategoryOverweight  = "Overweight"
	BMICategoryObese       = "Obese"
)

type BMIResult struct {
	Value    *float64 `json:"bmi"`
	Category string   `json:"bmiCategory,omitempty"`
}

// CalculateBMI returns the body mass index (1 decimal) and its category,
// or an empty result when height or weight is missing or height is not positive.
func CalculateBMI(heightCm, weightKg *float64) BMIResult {
	if heightCm == nil || weightKg == nil || *heightCm <= 0 {
		return BMIResult{}
	}

	heightM := *heightCm / 100
	bmi := math.Round(*weightKg/(heightM*heightM)*10) / 10
	return BMIResult{
		Value:    &bmi,
		Category: bmiCategory(bmi),
	}
}

func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return BMICategoryUnderweight
	case bmi < 25:
		return BMICategoryNormal
	case bmi < 30:
		return BMICategoryOverweight
	default:
		return BMICategoryObese
	}
}
