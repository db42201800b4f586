package deconz

// Wire types for the hub's REST API. Optional fields are pointers so a
// missing value can be told apart from a zero reading.

type SensorConfig struct {
	On        bool  `json:"on"`
	Reachable *bool `json:"reachable"`
	Battery   *int  `json:"battery"`
}

type SensorState struct {
	LastUpdated *string `json:"lastupdated"`
	Temperature *int    `json:"temperature"`
	Lux         *int    `json:"lux"`
	Humidity    *int    `json:"humidity"`
	Pressure    *int    `json:"pressure"`
}

type Sensor struct {
	Type   *string      `json:"type"`
	Name   string       `json:"name"`
	Config SensorConfig `json:"config"`
	State  SensorState  `json:"state"`
}

type GroupState struct {
	AllOn bool `json:"all_on"`
	AnyOn bool `json:"any_on"`
}

type GroupAction struct {
	On     bool  `json:"on"`
	Toggle *bool `json:"toggle"`
}

type Group struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	State  GroupState  `json:"state"`
	Action GroupAction `json:"action"`
}
