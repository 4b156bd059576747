// internal/domain/catalog.go
package domain

// seedExercises is the built-in catalog used until the user saves their first exercise.
var seedExercises = []Exercise{
	// Chest
	{ID: "p1", Name: "Bench Press (Barbell/Dumbbell)", Category: CategoryChest},
	{ID: "p2", Name: "Machine Chest Press (Vertical)", Category: CategoryChest},
	{ID: "p3", Name: "Incline Bench Press (Barbell/Dumbbell)", Category: CategoryChest},
	{ID: "p4", Name: "Incline Machine Press", Category: CategoryChest},
	{ID: "p5", Name: "Chest Fly (Dumbbell/Pec Deck)", Category: CategoryChest},

	// Back
	{ID: "c1", Name: "Lat Pulldown", Category: CategoryBack},
	{ID: "c2", Name: "Chest-Supported Machine Row", Category: CategoryBack},
	{ID: "c3", Name: "Pullover (Dumbbell/Cable)", Category: CategoryBack},
	{ID: "c4", Name: "One-Arm Dumbbell Row", Category: CategoryBack},

	// Legs
	{ID: "l1", Name: "Back Squat", Category: CategoryLegs},
	{ID: "l2", Name: "Smith Machine Squat", Category: CategoryLegs},
	{ID: "l3", Name: "Hack Squat", Category: CategoryLegs},
	{ID: "l4", Name: "Lunge (Dumbbells)", Category: CategoryLegs},
	{ID: "l5", Name: "Romanian Deadlift", Category: CategoryLegs},
	{ID: "l6", Name: "Leg Extension", Category: CategoryLegs},
	{ID: "l7", Name: "Leg Curl (Seated/Lying)", Category: CategoryLegs},
	{ID: "l8", Name: "Hip Abduction (Machine/Cable)", Category: CategoryLegs},
	{ID: "l9", Name: "Calf Raise", Category: CategoryLegs},
	{ID: "l10", Name: "45° Leg Press", Category: CategoryLegs},

	// Shoulders
	{ID: "o1", Name: "Overhead Press (Dumbbell/Barbell)", Category: CategoryShoulders},
	{ID: "o2", Name: "Machine Shoulder Press", Category: CategoryShoulders},
	{ID: "o3", Name: "Lateral Raise", Category: CategoryShoulders},

	// Arms
	{ID: "b1", Name: "Biceps Curl (EZ Bar/Dumbbell)", Category: CategoryArms},
	{ID: "b2", Name: "Hammer Curl", Category: CategoryArms},
	{ID: "b3", Name: "Triceps Pushdown (Rope/Bar)", Category: CategoryArms},
	{ID: "b4", Name: "Skull Crusher", Category: CategoryArms},
}

// SeedExercises returns a fresh copy of the built-in catalog.
func SeedExercises() []Exercise {
	return append([]Exercise(nil), seedExercises...)
}
