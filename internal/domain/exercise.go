package domain

import "time"

// MeasurementType describes what kind of value an exercise or metric records.
type MeasurementType string

const (
	MeasurementWeight     MeasurementType = "weight"
	MeasurementTime       MeasurementType = "time"
	MeasurementDistance   MeasurementType = "distance"
	MeasurementCount      MeasurementType = "count"
	MeasurementPercentage MeasurementType = "percentage"
)

func (mt MeasurementType) IsValid() bool {
	switch mt {
	case MeasurementWeight,
		MeasurementTime,
		MeasurementDistance,
		MeasurementCount,
		MeasurementPercentage:
		return true
	default:
		return false
	}
}

// Measurement is a prescribed value for a single set. The unit is stored
// exactly as entered and is never normalized (unlike MetricEntry values,
// which are converted to the base unit at write time).
type Measurement struct {
	Type  MeasurementType `json:"type"`
	Value float64         `json:"value"`
	Unit  string          `json:"unit"`
}

// WeightType tags how a set's weight should be interpreted.
type WeightType string

const (
	WeightAbsolute        WeightType = "absolute"
	WeightPercentageOfMax WeightType = "percentage"
)

// SetNote is a free-text note attached to a set. Notes are append-only;
// they are never edited or deleted.
type SetNote struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Set is one prescribed unit of work within an exercise.
type Set struct {
	ID          string      `json:"id"`
	Reps        int         `json:"reps"`
	Measurement Measurement `json:"measurement"`
	WeightType  WeightType  `json:"weightType,omitempty"`
	Notes       []SetNote   `json:"notes,omitempty"`
}

// Exercise represents a single exercise inside a workout program.
// It exists only nested inside a program (or transiently inside the
// exercise picker database).
type Exercise struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	MeasurementType MeasurementType `json:"measurementType"`
	Category        string          `json:"category,omitempty"` // e.g., "Legs", "Core"
	Description     string          `json:"description,omitempty"`
	DemoVideoURL    string          `json:"demoVideoUrl,omitempty"`
	Sets            []Set           `json:"sets"`
}
