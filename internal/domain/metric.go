package domain

import "time"

// MetricType identifies a tracked metric. The built-in types below are
// always available; additional custom types can be registered from a
// CustomMetric template at runtime.
type MetricType string

const (
	MetricBodyWeight      MetricType = "weight"
	MetricBodyFat         MetricType = "bodyFat"
	MetricBenchPress      MetricType = "benchPress"
	MetricSquat           MetricType = "squat"
	MetricDeadlift        MetricType = "deadlift"
	MetricRunningDistance MetricType = "runningDistance"
	MetricRunningTime     MetricType = "runningTime"
	MetricSwimming        MetricType = "swimming"
	MetricPushUps         MetricType = "pushUps"
)

// MetricEntry is a single timestamped measurement for an athlete.
//
// Value is ALWAYS stored in the metric type's canonical base unit; the
// conversion happens once at write time and the originally-entered unit is
// not retained. Entries are append-only: deletable by id, never edited.
type MetricEntry struct {
	ID        string     `json:"id"`
	AthleteID string     `json:"athleteId"`
	Type      MetricType `json:"type"`
	Value     float64    `json:"value"` // canonical base unit
	Date      time.Time  `json:"date"`
	Note      string     `json:"note,omitempty"`
}

// MetricUnit describes one unit a custom metric accepts, with its
// conversion factor to the base unit.
type MetricUnit struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Abbreviation     string          `json:"abbreviation,omitempty"`
	Type             MeasurementType `json:"type"`
	BaseUnit         string          `json:"baseUnit,omitempty"`
	ConversionFactor float64         `json:"conversionFactor,omitempty"`
}

// CustomMetric is a coach- or athlete-defined metric template. It defines
// the unit descriptor for a new metric type; it does not itself hold
// values — values live in MetricEntry once the type is registered.
type CustomMetric struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Unit           MetricUnit `json:"unit"`
	CreatedBy      string     `json:"createdBy"`
	OrganizationID string     `json:"organizationId"`
}
