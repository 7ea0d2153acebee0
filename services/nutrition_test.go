package services

import (
	"math"
	"testing"
)

func TestCalculateNutrition(t *testing.T) {
	tests := []struct {
		name         string
		foods        []FoodItem
		wantCalories float64
		wantProtein  float64
	}{
		{
			name:         "known food single unit",
			foods:        []FoodItem{{Name: "manzana", Quantity: 1}},
			wantCalories: 52,
			wantProtein:  0.26,
		},
		{
			name:         "quantity multiplies macros",
			foods:        []FoodItem{{Name: "pollo", Quantity: 2}},
			wantCalories: 330,
			wantProtein:  62,
		},
		{
			name:         "zero quantity counts as one",
			foods:        []FoodItem{{Name: "platano"}},
			wantCalories: 89,
			wantProtein:  1.09,
		},
		{
			name:         "lookup ignores case",
			foods:        []FoodItem{{Name: "Manzana", Quantity: 1}},
			wantCalories: 52,
			wantProtein:  0.26,
		},
		{
			name: "unknown food uses supplied macros",
			foods: []FoodItem{{
				Name:     "protein bar",
				Quantity: 1,
				FoodInfo: FoodInfo{Calories: 200, Protein: 20},
			}},
			wantCalories: 200,
			wantProtein:  20,
		},
		{
			name: "mixed meal sums items",
			foods: []FoodItem{
				{Name: "arroz", Quantity: 1},
				{Name: "pollo", Quantity: 1},
			},
			wantCalories: 371,
			wantProtein:  33.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := CalculateNutrition(tt.foods)
			if math.Abs(totals.Calories-tt.wantCalories) > 1e-9 {
				t.Errorf("Calories = %f, want %f", totals.Calories, tt.wantCalories)
			}
			if math.Abs(totals.Protein-tt.wantProtein) > 1e-9 {
				t.Errorf("Protein = %f, want %f", totals.Protein, tt.wantProtein)
			}
		})
	}
}

func TestCaloriesBurned(t *testing.T) {
	tests := []struct {
		name         string
		weight       float64
		activityType string
		minutes      float64
		want         float64
	}{
		{"running one hour", 70, "running", 60, 686},
		{"walking half hour", 80, "walking", 30, 140},
		{"unknown activity uses default met", 60, "swimming", 60, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CaloriesBurned(tt.weight, tt.activityType, tt.minutes)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CaloriesBurned() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestDistanceFromSteps(t *testing.T) {
	// 10000 steps at the default 0.65m stride
	if got := DistanceFromSteps(10000, 0); math.Abs(got-6.5) > 1e-9 {
		t.Errorf("DistanceFromSteps(10000, 0) = %f, want 6.5", got)
	}
	if got := DistanceFromSteps(1000, 1); math.Abs(got-1) > 1e-9 {
		t.Errorf("DistanceFromSteps(1000, 1) = %f, want 1", got)
	}
}

func TestCaloriesFromSteps(t *testing.T) {
	got := CaloriesFromSteps(10000, 70)
	if math.Abs(got-28) > 1e-9 {
		t.Errorf("CaloriesFromSteps(10000, 70) = %f, want 28", got)
	}
}

func TestBMI(t *testing.T) {
	got := BMI(175, 70)
	if math.Abs(got-22.857142857) > 1e-6 {
		t.Errorf("BMI(175, 70) = %f, want ~22.86", got)
	}
	if got := BMI(0, 70); got != 0 {
		t.Errorf("BMI with missing height = %f, want 0", got)
	}
	if got := BMI(175, 0); got != 0 {
		t.Errorf("BMI with missing weight = %f, want 0", got)
	}
}

func TestBMILabel(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{0, "unknown"},
		{17, "underweight"},
		{18.5, "normal"},
		{24.9, "normal"},
		{25, "overweight"},
		{29.9, "overweight"},
		{30, "obese"},
	}

	for _, tt := range tests {
		if got := BMILabel(tt.bmi); got != tt.want {
			t.Errorf("BMILabel(%f) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}
