package sensors

import "fmt"

// MissingFieldError is returned when a sensor doesn't report the value its
// type promises, e.g. a temperature sensor without a temperature.
type MissingFieldError struct {
	SensorID string
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("sensor (%s) has no %s value", e.SensorID, e.Field)
}
