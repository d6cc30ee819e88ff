package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed sample_catalog.yaml
var sampleCatalog []byte

// Catalog is the in-memory set of workouts and the profile they belong to
type Catalog struct {
	Profile  Profile
	Workouts []Workout
}

type catalogDoc struct {
	Profile struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"profile"`
	Workouts []struct {
		ID             string  `yaml:"id"`
		Name           string  `yaml:"name"`
		CompletionRate float64 `yaml:"completion_rate"`
		VideoURL       string  `yaml:"video_url"`
	} `yaml:"workouts"`
}

// DefaultCatalog returns the bundled sample catalog
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(sampleCatalog)
}

// LoadCatalog decodes a YAML catalog document.
// Workouts without an id get a fresh one; rates are clamped to [0, 1].
func LoadCatalog(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{
		Profile: Profile{
			Name:  strings.TrimSpace(doc.Profile.Name),
			Email: strings.TrimSpace(doc.Profile.Email),
		},
		Workouts: make([]Workout, 0, len(doc.Workouts)),
	}

	for i, w := range doc.Workouts {
		name := strings.TrimSpace(w.Name)
		if name == "" {
			return nil, fmt.Errorf("workout %d: name is required", i+1)
		}

		workout := NewWorkout(name, w.CompletionRate)
		workout.VideoURL = strings.TrimSpace(w.VideoURL)
		if w.ID != "" {
			id, err := uuid.Parse(w.ID)
			if err != nil {
				return nil, fmt.Errorf("workout %q: invalid id: %w", name, err)
			}
			workout.ID = id
		}

		c.Workouts = append(c.Workouts, workout)
	}

	return c, nil
}

// Completed returns all fully completed workouts
func (c *Catalog) Completed() []Workout {
	var completed []Workout
	for _, w := range c.Workouts {
		if w.Status().IsFinished() {
			completed = append(completed, w)
		}
	}
	return completed
}

// AverageCompletion returns the mean completion rate, 0 for an empty catalog
func (c *Catalog) AverageCompletion() float64 {
	if len(c.Workouts) == 0 {
		return 0
	}

	var sum float64
	for _, w := range c.Workouts {
		sum += w.CompletionRate
	}
	return sum / float64(len(c.Workouts))
}
