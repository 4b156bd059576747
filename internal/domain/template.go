// internal/domain/template.go
package domain

// Template is a named, ordered list of exercise ids used to prefill a new workout.
type Template struct {
	Name        string   `json:"name"`
	ExerciseIDs []string `json:"exerciseIds"`
}

// Templates are the built-in workout templates, keyed to SeedExercises ids.
var Templates = []Template{
	{
		Name:        "Push (Chest/Shoulders/Triceps)",
		ExerciseIDs: []string{"p3", "p1", "o1", "o3", "p5", "b3", "b4"},
	},
	{
		Name:        "Pull (Back/Biceps)",
		ExerciseIDs: []string{"c1", "c2", "c3", "c4", "b1", "b2"},
	},
	{
		Name:        "Legs",
		ExerciseIDs: []string{"l1", "l4", "l5", "l6", "l8", "l7", "l9"},
	},
}

// FindTemplate looks a template up by name.
func FindTemplate(name string) (Template, bool) {
	for _, t := range Templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}
