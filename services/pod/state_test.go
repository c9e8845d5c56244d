package pod

import (
	"testing"

	"tably/models"
)

func TestLifecycleHappyPath(t *testing.T) {
	status := models.PodReserved

	status, err := nextStatus(CmdConfirmArrival, status)
	if err != nil || status != models.PodOccupied {
		t.Fatalf("confirm arrival: got %v, %v", status, err)
	}
	status, err = nextStatus(CmdStartCleaning, status)
	if err != nil || status != models.PodCleaning {
		t.Fatalf("start cleaning: got %v, %v", status, err)
	}
	status, err = nextStatus(CmdMarkClean, status)
	if err != nil || status != models.PodAvailable {
		t.Fatalf("mark clean: got %v, %v", status, err)
	}
}

func TestCommandsRejectedInWrongStatus(t *testing.T) {
	cases := []struct {
		cmd     string
		current models.PodStatus
	}{
		{CmdConfirmArrival, models.PodAvailable},
		{CmdConfirmArrival, models.PodOccupied},
		{CmdConfirmArrival, models.PodCleaning},
		{CmdStartCleaning, models.PodAvailable},
		{CmdStartCleaning, models.PodReserved},
		{CmdStartCleaning, models.PodCleaning},
		{CmdMarkClean, models.PodAvailable},
		{CmdMarkClean, models.PodReserved},
		{CmdMarkClean, models.PodOccupied},
	}
	for _, tc := range cases {
		if _, err := nextStatus(tc.cmd, tc.current); err == nil {
			t.Fatalf("expected %s to be rejected while %s", tc.cmd, tc.current)
		}
	}
}

func TestUnknownCommandRejected(t *testing.T) {
	if _, err := nextStatus("reboot", models.PodAvailable); err == nil {
		t.Fatalf("expected unknown command to be rejected")
	}
}
