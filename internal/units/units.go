// Package units converts body measurements between the units the app accepts
// and derives BMI from them.
package units

import (
	"fmt"
	"math"
	"strings"
)

// WeightUnit is the unit a weight was recorded in.
type WeightUnit string

// HeightUnit is the unit a height was recorded in.
type HeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lbs"

	Centimeters HeightUnit = "cm"
	Inches      HeightUnit = "inches"
)

const (
	kgPerPound   = 0.453592
	cmPerInch    = 2.54
	weightMsg    = "Weight seems unrealistic. Please check the value."
	heightMsg    = "Height seems unrealistic. Please check the value."
	bmiPrecision = 100
)

// ParseWeightUnit normalizes a user supplied weight unit.
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch u := WeightUnit(strings.ToLower(strings.TrimSpace(s))); u {
	case Kilograms, Pounds:
		return u, nil
	default:
		return "", fmt.Errorf("unsupported weight unit %q", s)
	}
}

// ParseHeightUnit normalizes a user supplied height unit.
func ParseHeightUnit(s string) (HeightUnit, error) {
	switch u := HeightUnit(strings.ToLower(strings.TrimSpace(s))); u {
	case Centimeters, Inches:
		return u, nil
	default:
		return "", fmt.Errorf("unsupported height unit %q", s)
	}
}

// WeightToKg converts weight to kilograms.
func WeightToKg(weight float64, unit WeightUnit) float64 {
	if unit == Pounds {
		return weight * kgPerPound
	}
	return weight
}

// HeightToCm converts height to centimeters.
func HeightToCm(height float64, unit HeightUnit) float64 {
	if unit == Inches {
		return height * cmPerInch
	}
	return height
}

// BMI returns weightKg / heightM² rounded to two decimals. A zero height
// yields 0, which callers treat as "undefined".
func BMI(weight float64, weightUnit WeightUnit, height float64, heightUnit HeightUnit) float64 {
	weightKg := WeightToKg(weight, weightUnit)
	heightM := HeightToCm(height, heightUnit) / 100
	if heightM == 0 {
		return 0
	}
	return math.Round(weightKg/(heightM*heightM)*bmiPrecision) / bmiPrecision
}

// ValidateMeasurements checks a weight/height pair against plausible ranges
// for a child. It returns human readable messages; an empty result means the
// pair is acceptable.
func ValidateMeasurements(weight float64, weightUnit WeightUnit, height float64, heightUnit HeightUnit) []string {
	var errs []string

	if weight <= 0 {
		errs = append(errs, "Weight must be greater than 0")
	}
	if height <= 0 {
		errs = append(errs, "Height must be greater than 0")
	}

	switch weightUnit {
	case Kilograms:
		if weight < 1 || weight > 200 {
			errs = append(errs, weightMsg)
		}
	case Pounds:
		if weight < 2 || weight > 440 {
			errs = append(errs, weightMsg)
		}
	default:
		errs = append(errs, "Weight unit must be kg or lbs")
	}

	switch heightUnit {
	case Centimeters:
		if height < 30 || height > 250 {
			errs = append(errs, heightMsg)
		}
	case Inches:
		if height < 12 || height > 98 {
			errs = append(errs, heightMsg)
		}
	default:
		errs = append(errs, "Height unit must be cm or inches")
	}

	return errs
}
