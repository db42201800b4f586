package models

import "github.com/wheelibin/dusk/internal/constants"

// Category is the kind of environmental reading a sensor provides.
type Category int

const (
	Temperature Category = iota
	Lux
	Humidity
	Pressure
)

// AllCategories is the order sensors are read and reported in.
var AllCategories = []Category{Temperature, Lux, Humidity, Pressure}

func (c Category) String() string {
	switch c {
	case Temperature:
		return "temperature"
	case Lux:
		return "lux"
	case Humidity:
		return "humidity"
	case Pressure:
		return "pressure"
	}
	return "unknown"
}

// TypeSubstring is matched against the hub's sensor type, e.g. "ZHATemperature".
func (c Category) TypeSubstring() string {
	switch c {
	case Temperature:
		return constants.SensorTypeTemperature
	case Lux:
		return constants.SensorTypeLightLevel
	case Humidity:
		return constants.SensorTypeHumidity
	case Pressure:
		return constants.SensorTypePressure
	}
	return ""
}

func (c Category) Label() string {
	switch c {
	case Temperature:
		return "Temperature"
	case Lux:
		return "Light Level"
	case Humidity:
		return "Humidity"
	case Pressure:
		return "Pressure"
	}
	return ""
}

func (c Category) Unit() string {
	switch c {
	case Temperature:
		return "°C"
	case Lux:
		return "lux"
	case Humidity:
		return "%"
	case Pressure:
		return "hPa"
	}
	return ""
}

// Normalized reports whether the hub sends the value with two decimal
// digits shifted into the integer (2502 for 25.02).
func (c Category) Normalized() bool {
	return c == Temperature || c == Humidity
}

// SensorIDs holds at most one sensor id per category. A missing key means
// no sensor of that category was found.
type SensorIDs map[Category]string

type SensorReading struct {
	ID       string
	Category Category
	Value    int
	// the sensor's lastupdated value, empty if the hub didn't send one
	Timestamp string
}

type GroupState struct {
	ID    string
	Name  string
	AllOn bool
	AnyOn bool
}

// CycleResult is what one cycle's read phase hands to its decision phase.
type CycleResult struct {
	CycleID  string
	Readings []SensorReading
}

// Lux returns the light level read this cycle, nil if there is no light sensor.
func (r CycleResult) Lux() *int {
	for _, reading := range r.Readings {
		if reading.Category == Lux {
			lux := reading.Value
			return &lux
		}
	}
	return nil
}
