package pod

import (
	"fmt"
	"time"

	"tably/config"
	"tably/cron"
	"tably/models"
	"tably/utils"

	"go.uber.org/zap"
)

// List returns the pod board for one location.
func (s *DefaultPodService) List(tenantID, locationID string) ([]models.Pod, error) {
	pods, err := s.Repo.ListByLocation(tenantID, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pods: %w", err)
	}
	return pods, nil
}

// CreatePod registers a new pod on the board.
func (s *DefaultPodService) CreatePod(pod *models.Pod) error {
	if pod.Label == "" {
		return fmt.Errorf("pod label is required")
	}
	return s.Repo.Create(pod)
}

// ConfirmArrival moves a reserved pod to occupied when the customer shows up.
func (s *DefaultPodService) ConfirmArrival(tenantID, podID string) (*models.Pod, error) {
	return s.apply(tenantID, podID, CmdConfirmArrival)
}

// StartCleaning moves an occupied pod into cleaning and schedules an
// overdue check so a forgotten pod gets flagged.
func (s *DefaultPodService) StartCleaning(tenantID, podID string) (*models.Pod, error) {
	pod, err := s.apply(tenantID, podID, CmdStartCleaning)
	if err != nil {
		return nil, err
	}
	if s.Tasks != nil {
		grace := time.Duration(config.AppConfig.CleaningGraceMinutes) * time.Minute
		if err := cron.EnqueueCleaningCheck(s.Tasks, tenantID, podID, grace); err != nil {
			utils.GetLogger().Error("failed to enqueue cleaning check",
				zap.String("podId", podID), zap.Error(err))
		}
	}
	return pod, nil
}

// MarkClean returns a cleaned pod to the available pool.
func (s *DefaultPodService) MarkClean(tenantID, podID string) (*models.Pod, error) {
	return s.apply(tenantID, podID, CmdMarkClean)
}

// Reserve attaches an order to an available pod.
func (s *DefaultPodService) Reserve(tenantID, podID, orderID string) (*models.Pod, error) {
	pod, err := s.Repo.SetStatus(tenantID, podID, models.PodAvailable, models.PodReserved, orderID)
	if err != nil {
		return nil, NewTransitionError(err.Error())
	}
	return pod, nil
}

// Release frees a reserved pod whose order was cancelled.
func (s *DefaultPodService) Release(tenantID, podID string) (*models.Pod, error) {
	pod, err := s.Repo.SetStatus(tenantID, podID, models.PodReserved, models.PodAvailable, "")
	if err != nil {
		return nil, NewTransitionError(err.Error())
	}
	return pod, nil
}

// RemovePod retires a pod from the board.
func (s *DefaultPodService) RemovePod(tenantID, podID string) error {
	return s.Repo.Delete(tenantID, podID)
}

func (s *DefaultPodService) apply(tenantID, podID, cmd string) (*models.Pod, error) {
	pod, err := s.Repo.GetByID(tenantID, podID)
	if err != nil {
		return nil, fmt.Errorf("pod %s not found: %w", podID, err)
	}
	next, err := nextStatus(cmd, pod.Status)
	if err != nil {
		return nil, err
	}
	updated, err := s.Repo.SetStatus(tenantID, podID, pod.Status, next, pod.OrderID)
	if err != nil {
		return nil, NewTransitionError(err.Error())
	}
	return updated, nil
}
