package interaction

import "fmt"

// HoldState is the controller's hold/throw state: Idle, Waiting or Charging.
type HoldState interface {
	holdState()
	String() string
}

// Idle means nothing is held
type Idle struct{}

// Waiting means an object is held but the charge threshold is not reached.
// Since is when the action was last pressed.
type Waiting struct {
	Since float64
}

// Charging means an object is held and the throw force is ramping up
type Charging struct {
	Since float64
	Force float32
}

func (Idle) holdState()     {}
func (Waiting) holdState()  {}
func (Charging) holdState() {}

func (Idle) String() string { return "Idle" }

func (s Waiting) String() string { return fmt.Sprintf("Waiting(since=%.3f)", s.Since) }

func (s Charging) String() string {
	return fmt.Sprintf("Charging(since=%.3f, force=%.2f)", s.Since, s.Force)
}

// IsHolding reports whether the state carries a held object
func IsHolding(s HoldState) bool {
	switch s.(type) {
	case Waiting, Charging:
		return true
	default:
		return false
	}
}
