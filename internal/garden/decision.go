package garden

// Decision is what a cycle does to the light group.
type Decision int

const (
	// no matching group, nothing to decide on
	Idle Decision = iota
	// the group is already in the desired state
	NoOp
	SwitchOn
	SwitchOff
)

func (d Decision) String() string {
	switch d {
	case Idle:
		return "idle"
	case NoOp:
		return "no-op"
	case SwitchOn:
		return "switch on"
	case SwitchOff:
		return "switch off"
	}
	return "unknown"
}

// Decide returns the write needed to bring the group to its desired state,
// or NoOp when it is already there.
//
// Outside the active window the group is kept off. Inside it, the group
// goes off when brighter than threshold and on when darker. A reading equal
// to the threshold, or no reading at all, leaves the group as it is.
func Decide(active bool, lux *int, threshold int, on bool) Decision {
	if !active {
		if on {
			return SwitchOff
		}
		return NoOp
	}

	if lux == nil {
		return NoOp
	}

	switch {
	case *lux > threshold && on:
		return SwitchOff
	case *lux < threshold && !on:
		return SwitchOn
	}
	return NoOp
}
