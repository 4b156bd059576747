// internal/domain/exercise.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is returned when user input can't become a valid record.
var ErrValidation = errors.New("validation failed")

// Category is the muscle-group / training tag of an exercise.
type Category string

const (
	CategoryChest     Category = "Chest"
	CategoryBack      Category = "Back"
	CategoryLegs      Category = "Legs"
	CategoryShoulders Category = "Shoulders"
	CategoryArms      Category = "Arms"
	CategoryCore      Category = "Core"
	CategoryCardio    Category = "Cardio"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryChest,
	CategoryBack,
	CategoryLegs,
	CategoryShoulders,
	CategoryArms,
	CategoryCore,
	CategoryCardio,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Exercise is a catalog entry in the personal exercise library.
// Exercises are immutable once created; they can only be deleted.
type Exercise struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// ValidateExercise checks name and category of a new exercise.
func ValidateExercise(name string, category Category) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: exercise name is required", ErrValidation)
	}
	if !category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	return nil
}
