package pod

import "tably/models"

// Board commands issued by the operations clients.
const (
	CmdConfirmArrival = "confirm_arrival"
	CmdStartCleaning  = "start_cleaning"
	CmdMarkClean      = "mark_clean"
)

// nextStatus maps a board command onto the pod lifecycle
// AVAILABLE → RESERVED → OCCUPIED → CLEANING → AVAILABLE.
// Commands applied to the wrong current status are rejected.
func nextStatus(cmd string, current models.PodStatus) (models.PodStatus, error) {
	switch cmd {
	case CmdConfirmArrival:
		if current == models.PodReserved {
			return models.PodOccupied, nil
		}
	case CmdStartCleaning:
		if current == models.PodOccupied {
			return models.PodCleaning, nil
		}
	case CmdMarkClean:
		if current == models.PodCleaning {
			return models.PodAvailable, nil
		}
	default:
		return "", NewTransitionError("unknown board command: " + cmd)
	}
	return "", NewTransitionError("command " + cmd + " not valid while pod is " + string(current))
}
