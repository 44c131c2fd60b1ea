package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an account holder.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FirstName string         `gorm:"size:255" json:"firstname"`
	LastName  string         `gorm:"size:255" json:"lastname"`
	Contact   string         `gorm:"size:50" json:"contact"`
	Username  string         `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Email     string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserDetails carries the computed goal profile for a user. Stored
// macros are the daily targets derived from weight and calorie goal.
type UserDetails struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	UserID              uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Height              float64   `json:"height"` // cm
	Weight              float64   `json:"weight"` // kg
	Age                 int       `json:"age"`
	Gender              string    `gorm:"size:20" json:"gender"`
	ActivityLevel       float64   `json:"activity_level"`
	WeightGoal          float64   `json:"weight_goal"` // kg per week, signed
	BMI                 float64   `json:"bmi"`
	MaintenanceCalories float64   `json:"maintenance_calories"`
	ProteinTarget       float64   `json:"protein_target"`
	CarbsTarget         float64   `json:"carbs_target"`
	FatsTarget          float64   `json:"fats_target"`
	FiberTarget         float64   `json:"fiber_target"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Vitals is one sugar/weight reading.
type Vitals struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	SugarReading  float64   `gorm:"not null" json:"sugar_reading"`
	WeightReading float64   `gorm:"not null" json:"weight_reading"`
	CreatedAt     time.Time `json:"created_at"`
}

// DailyIntake accumulates what a user logged on one calendar day.
type DailyIntake struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_user_date" json:"user_id"`
	Date      time.Time `gorm:"not null;index:idx_user_date" json:"date"`
	Calories  float64   `gorm:"default:0" json:"calories"`
	Protein   float64   `gorm:"default:0" json:"protein"`
	Carbs     float64   `gorm:"default:0" json:"carbs"`
	Fats      float64   `gorm:"default:0" json:"fats"`
	Fiber     float64   `gorm:"default:0" json:"fiber"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FoodLog records a single food a user looked up and added.
type FoodLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	FoodName      string    `gorm:"size:255;not null" json:"food_name"`
	Calories      float64   `json:"energy_kcal"`
	Protein       float64   `json:"protein_g"`
	Carbs         float64   `json:"carb_g"`
	Fat           float64   `json:"fat_g"`
	Fiber         float64   `json:"fibre_g"`
	GlycemicIndex *float64  `json:"glycemic_index"`
	CreatedAt     time.Time `json:"created_at"`
}
