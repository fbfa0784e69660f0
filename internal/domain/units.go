package domain

// UnitOption is one selectable input unit for a metric, with the pure
// numeric factor that converts an entered value to the base unit.
type UnitOption struct {
	Value  string  `json:"value"` // e.g. "kg"
	Label  string  `json:"label"`
	Factor float64 `json:"factor"` // multiplier to the base unit
}

// MetricDefinition declares a metric type's base unit and the units a
// value may be entered in.
type MetricDefinition struct {
	Type        MetricType      `json:"type"`
	Measurement MeasurementType `json:"measurement"`
	Label       string          `json:"label"`
	BaseUnit    string          `json:"baseUnit"`
	Description string          `json:"description,omitempty"`
	Units       []UnitOption    `json:"availableUnits"`
}

// Convert scales value from the given unit to the definition's base unit.
// Returns false when the unit is not one of the declared available units.
func (d MetricDefinition) Convert(value float64, unit string) (float64, bool) {
	for _, u := range d.Units {
		if u.Value == unit {
			return value * u.Factor, true
		}
	}
	return 0, false
}

var (
	// TimeUnits normalize to seconds.
	TimeUnits = []UnitOption{
		{Value: "seconds", Label: "Seconds", Factor: 1},
		{Value: "minutes", Label: "Minutes", Factor: 60},
		{Value: "hours", Label: "Hours", Factor: 3600},
	}

	// DistanceUnits normalize to meters.
	DistanceUnits = []UnitOption{
		{Value: "meters", Label: "Meters", Factor: 1},
		{Value: "kilometers", Label: "Kilometers", Factor: 1000},
		{Value: "miles", Label: "Miles", Factor: 1609.34},
		{Value: "yards", Label: "Yards", Factor: 0.9144},
	}

	// WeightUnits normalize to pounds.
	WeightUnits = []UnitOption{
		{Value: "lbs", Label: "Pounds (lbs)", Factor: 1},
		{Value: "kg", Label: "Kilograms (kg)", Factor: 2.20462},
	}

	// PercentageUnits are already normalized.
	PercentageUnits = []UnitOption{
		{Value: "%", Label: "Percentage (%)", Factor: 1},
	}

	// CountUnits are already normalized.
	CountUnits = []UnitOption{
		{Value: "reps", Label: "Repetitions", Factor: 1},
		{Value: "laps", Label: "Laps", Factor: 1},
	}
)

// BuiltinMetricDefinitions returns a fresh map of the metric types every
// organization starts with. Callers may extend their copy with custom
// metric types without affecting other holders.
func BuiltinMetricDefinitions() map[MetricType]MetricDefinition {
	return map[MetricType]MetricDefinition{
		MetricBodyWeight: {
			Type:        MetricBodyWeight,
			Measurement: MeasurementWeight,
			Label:       "Body Weight",
			BaseUnit:    "lbs",
			Description: "Track your body weight over time",
			Units:       WeightUnits,
		},
		MetricBodyFat: {
			Type:        MetricBodyFat,
			Measurement: MeasurementPercentage,
			Label:       "Body Fat",
			BaseUnit:    "%",
			Description: "Track your body fat percentage",
			Units:       PercentageUnits,
		},
		MetricBenchPress: {
			Type:        MetricBenchPress,
			Measurement: MeasurementWeight,
			Label:       "Bench Press 1RM",
			BaseUnit:    "lbs",
			Description: "Track your bench press one-rep maximum",
			Units:       WeightUnits,
		},
		MetricSquat: {
			Type:        MetricSquat,
			Measurement: MeasurementWeight,
			Label:       "Squat 1RM",
			BaseUnit:    "lbs",
			Description: "Track your squat one-rep maximum",
			Units:       WeightUnits,
		},
		MetricDeadlift: {
			Type:        MetricDeadlift,
			Measurement: MeasurementWeight,
			Label:       "Deadlift 1RM",
			BaseUnit:    "lbs",
			Description: "Track your deadlift one-rep maximum",
			Units:       WeightUnits,
		},
		MetricRunningDistance: {
			Type:        MetricRunningDistance,
			Measurement: MeasurementDistance,
			Label:       "Running Distance",
			BaseUnit:    "meters",
			Description: "Track your running distance",
			Units:       DistanceUnits,
		},
		MetricRunningTime: {
			Type:        MetricRunningTime,
			Measurement: MeasurementTime,
			Label:       "Running Time",
			BaseUnit:    "seconds",
			Description: "Track your running time",
			Units:       TimeUnits,
		},
		MetricSwimming: {
			Type:        MetricSwimming,
			Measurement: MeasurementDistance,
			Label:       "Swimming Distance",
			BaseUnit:    "meters",
			Description: "Track your swimming distance",
			Units:       DistanceUnits,
		},
		MetricPushUps: {
			Type:        MetricPushUps,
			Measurement: MeasurementCount,
			Label:       "Push-ups",
			BaseUnit:    "reps",
			Description: "Track your push-up count",
			Units:       CountUnits,
		},
	}
}

// UnitsForMeasurement returns the standard unit table for a measurement
// type, used when registering custom metrics.
func UnitsForMeasurement(mt MeasurementType) []UnitOption {
	switch mt {
	case MeasurementTime:
		return TimeUnits
	case MeasurementDistance:
		return DistanceUnits
	case MeasurementWeight:
		return WeightUnits
	case MeasurementPercentage:
		return PercentageUnits
	case MeasurementCount:
		return CountUnits
	default:
		return nil
	}
}
