package constants

import "time"

const MainUpdateInterval = 10 * time.Second
const DefaultRequestTimeout = 10 * time.Second

const DefaultLuxThreshold = 1000
const DefaultGroupName = "Garden"

// activation window, compared against now shifted by WindowOffset (UTC)
const WindowOffset = 2 * time.Hour
const WindowStart = "13:23"
const WindowEnd = "22:00"

// hub sensor type substrings
const SensorTypeTemperature = "Temperature"
const SensorTypeLightLevel = "LightLevel"
const SensorTypeHumidity = "Humidity"
const SensorTypePressure = "Pressure"

// cycle outcomes (metrics/history)
const CycleOutcomeOK = "ok"
const CycleOutcomeFailed = "failed"
