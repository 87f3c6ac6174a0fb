package utils

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

const (
	msgRequired  = "This field is required"
	msgNotNumber = "Must be a valid number"
)

var errNotNumber = errors.New("not a number")

// Reading is a validated temperature/humidity pair.
type Reading struct {
	Temperature float64
	Humidity    float64
}

// ParseReading validates a raw telemetry payload. Errors are collected for
// every bad field instead of stopping at the first one, so the client sees
// the full picture in one response.
func ParseReading(payload map[string]any) (Reading, map[string]string) {
	fieldErrors := map[string]string{}
	temperature := parseField(payload, "temp_value", fieldErrors)
	humidity := parseField(payload, "humidity", fieldErrors)
	if len(fieldErrors) > 0 {
		return Reading{}, fieldErrors
	}
	return Reading{Temperature: temperature, Humidity: humidity}, nil
}

func parseField(payload map[string]any, field string, fieldErrors map[string]string) float64 {
	raw, exists := payload[field]
	if !exists || raw == nil {
		fieldErrors[field] = msgRequired
		return 0
	}

	value, err := toFloat(raw)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		fieldErrors[field] = msgNotNumber
		return 0
	}
	return value
}

// toFloat coerces the value forms a JSON payload can carry for a number:
// an actual number, or a numeric string sent by the sensor firmware.
func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, errNotNumber
	}
}
