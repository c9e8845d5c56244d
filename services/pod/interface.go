package pod

import (
	podRepo "tably/database/repository/pod"
	"tably/models"

	"github.com/hibiken/asynq"
)

// Service exposes the pod operations board: listing the board and applying
// the three lifecycle commands. Transitions are validated against the
// current status; the board clients only poll and issue commands.
type Service interface {
	List(tenantID, locationID string) ([]models.Pod, error)
	CreatePod(pod *models.Pod) error
	ConfirmArrival(tenantID, podID string) (*models.Pod, error)
	StartCleaning(tenantID, podID string) (*models.Pod, error)
	MarkClean(tenantID, podID string) (*models.Pod, error)
	// Reserve attaches an order to an available pod at order creation.
	Reserve(tenantID, podID, orderID string) (*models.Pod, error)
	// Release frees a pod when its order is cancelled.
	Release(tenantID, podID string) (*models.Pod, error)
	// RemovePod retires a pod from the board.
	RemovePod(tenantID, podID string) error
}

// DefaultPodService implements Service.
type DefaultPodService struct {
	Repo  podRepo.PodRepository
	Tasks *asynq.Client
}
