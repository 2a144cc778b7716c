package configreview

import "github.com/pkg/errors"

// Represents a state of config checker managed by the config checker
// controller.
type CheckerState string

// Valid checker states.
const (
	CheckerStateDisabled CheckerState = "disabled"
	CheckerStateEnabled  CheckerState = "enabled"
)

// Represents a configuration checker controller. It manages the enable or
// disable states of the checkers. The checkers are enabled by default.
type checkerController interface {
	setGlobalState(checkerName string, state CheckerState) error
	getGlobalState(checkerName string) CheckerState
	isCheckerEnabled(checkerName string) bool
}

// Implementation of the checker controller interface.
type checkerControllerImpl struct {
	globalStates map[string]bool
}

// Constructs the checker controller object.
func newCheckerController() checkerController {
	return &checkerControllerImpl{
		globalStates: make(map[string]bool),
	}
}

// Returns the state of a checker with the given name.
func (c checkerControllerImpl) getGlobalState(checkerName string) CheckerState {
	if c.isCheckerEnabled(checkerName) {
		return CheckerStateEnabled
	}
	return CheckerStateDisabled
}

// Sets the global state for a given checker.
func (c checkerControllerImpl) setGlobalState(checkerName string, state CheckerState) error {
	switch state {
	case CheckerStateEnabled, CheckerStateDisabled:
		c.globalStates[checkerName] = state == CheckerStateEnabled
		return nil
	default:
		return errors.Errorf("invalid checker state: %s", state)
	}
}

// Returns true if a checker with the given name is enabled.
func (c checkerControllerImpl) isCheckerEnabled(checkerName string) bool {
	if enabled, ok := c.globalStates[checkerName]; ok {
		return enabled
	}
	return true
}
