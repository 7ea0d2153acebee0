package services

import (
	"strings"
)

// FoodInfo holds per-unit macronutrients for one food item.
type FoodInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

// FoodItem is one entry in a logged meal. Unknown foods can carry their own
// macro values, which are used as-is.
type FoodItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	FoodInfo
}

// NutritionTotals aggregates the macros of a whole meal.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Fiber    float64 `json:"fiber"`
}

// Built-in food table (per unit).
var foodDatabase = map[string]FoodInfo{
	// Fruits
	"manzana": {Calories: 52, Protein: 0.26, Carbs: 13.8, Fats: 0.17, Fiber: 2.4},
	"platano": {Calories: 89, Protein: 1.09, Carbs: 23, Fats: 0.33, Fiber: 2.6},
	"naranja": {Calories: 47, Protein: 0.9, Carbs: 11.75, Fats: 0.12, Fiber: 2.4},

	// Protein sources
	"pollo":  {Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6, Fiber: 0},
	"huevo":  {Calories: 155, Protein: 13, Carbs: 1.1, Fats: 11, Fiber: 0},
	"salmon": {Calories: 208, Protein: 20, Carbs: 0, Fats: 13, Fiber: 0},
	"atun":   {Calories: 132, Protein: 29.1, Carbs: 0, Fats: 1.3, Fiber: 0},

	// Carbohydrates
	"arroz": {Calories: 206, Protein: 2.7, Carbs: 45, Fats: 0.3, Fiber: 0.4},
	"pan":   {Calories: 265, Protein: 9, Carbs: 49, Fats: 3.3, Fiber: 2.7},
	"pasta": {Calories: 371, Protein: 13, Carbs: 75, Fats: 1.1, Fiber: 3},

	// Vegetables
	"lechuga": {Calories: 15, Protein: 1.2, Carbs: 2.9, Fats: 0.2, Fiber: 1.3},
	"tomate":  {Calories: 18, Protein: 0.9, Carbs: 3.9, Fats: 0.2, Fiber: 1.2},
	"brocoli": {Calories: 34, Protein: 2.8, Carbs: 7, Fats: 0.4, Fiber: 2.4},
}

// MET values per activity type.
var activityMETs = map[string]float64{
	"running":          9.8,
	"running_fast":     12.3,
	"cycling_moderate": 6.8,
	"cycling_intense":  12.8,
	"cycling":          6.8,
	"walking":          3.5,
}

const defaultMET = 5

// CalculateNutrition sums the macros of a meal, preferring the built-in food
// table and falling back to the values supplied with the item.
func CalculateNutrition(foods []FoodItem) NutritionTotals {
	var totals NutritionTotals

	for _, food := range foods {
		info, ok := foodDatabase[strings.ToLower(food.Name)]
		if !ok {
			info = food.FoodInfo
		}

		quantity := food.Quantity
		if quantity == 0 {
			quantity = 1
		}

		totals.Calories += info.Calories * quantity
		totals.Protein += info.Protein * quantity
		totals.Carbs += info.Carbs * quantity
		totals.Fats += info.Fats * quantity
		totals.Fiber += info.Fiber * quantity
	}

	return totals
}

// CaloriesBurned estimates calories for an activity from body weight (kg),
// activity type and duration in minutes.
func CaloriesBurned(weightKg float64, activityType string, durationMinutes float64) float64 {
	met, ok := activityMETs[activityType]
	if !ok {
		met = defaultMET
	}
	return (met * weightKg * durationMinutes) / 60
}

// DistanceFromSteps converts a step count to kilometers using an average
// stride length in meters.
func DistanceFromSteps(steps int, strideLengthM float64) float64 {
	if strideLengthM <= 0 {
		strideLengthM = 0.65
	}
	return (float64(steps) * strideLengthM) / 1000
}

// CaloriesFromSteps approximates calories burned by walking a number of
// steps at the given body weight.
func CaloriesFromSteps(steps int, weightKg float64) float64 {
	caloriesPerStep := weightKg * 0.04 / 1000
	return float64(steps) * caloriesPerStep
}

// BMI returns the body-mass index for height in cm and weight in kg, or 0
// when either is missing.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}

// BMILabel classifies a BMI value using the standard WHO cut-offs.
func BMILabel(bmi float64) string {
	switch {
	case bmi <= 0:
		return "unknown"
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}
