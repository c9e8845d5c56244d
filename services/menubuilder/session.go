package menubuilder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tably/models"
	"tably/utils"

	"github.com/google/uuid"
)

const defaultSessionTTL = 30 * time.Minute

func (s *DefaultSessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return defaultSessionTTL
}

// Start creates a new builder session. When reorder carries a prior order,
// its line-item quantities are copied verbatim into the cart and the session
// skips the menu steps straight to checkout.
func (s *DefaultSessionService) Start(tenantID, locationID, userID string, reorder *models.Order) (*BuilderSession, error) {
	steps, err := s.MenuRepo.GetSteps(tenantID, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu catalog: %w", err)
	}
	catalog := NewCatalog(steps)

	session := &BuilderSession{
		SessionID:  uuid.New().String(),
		TenantID:   tenantID,
		LocationID: locationID,
		UserID:     userID,
		State:      NewSelectionState(),
		CreatedAt:  time.Now(),
	}
	if reorder != nil {
		for _, entry := range reorder.Items {
			session.State.setCartKey(entry.MenuItemID, entry.Quantity)
		}
		session.StepIndex = len(catalog.Steps)
		session.CheckoutReady = true
		session.ReorderFrom = reorder.ID
	}
	session.TotalCents = ComputeTotal(session.State, catalog)

	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get retrieves a session by ID.
func (s *DefaultSessionService) Get(sessionID string) (*BuilderSession, error) {
	return s.load(sessionID)
}

// Select records the single choice for a SINGLE section.
func (s *DefaultSessionService) Select(sessionID, sectionID, itemID string) (*BuilderSession, error) {
	return s.mutate(sessionID, func(session *BuilderSession, catalog *Catalog) error {
		section, ok := catalog.Section(sectionID)
		if !ok {
			return fmt.Errorf("section %s not in catalog", sectionID)
		}
		if section.SelectionMode != models.SelectionSingle {
			return fmt.Errorf("section %s is not single-choice", sectionID)
		}
		session.State.SelectSingle(section, itemID)
		return nil
	})
}

// Adjust applies a quantity delta to a MULTIPLE item.
func (s *DefaultSessionService) Adjust(sessionID, itemID string, delta int) (*BuilderSession, error) {
	return s.mutate(sessionID, func(session *BuilderSession, catalog *Catalog) error {
		session.State.AdjustQuantity(itemID, delta)
		return nil
	})
}

// SetQuantity stores an absolute quantity, with slider-aware zero handling.
func (s *DefaultSessionService) SetQuantity(sessionID, itemID string, quantity int) (*BuilderSession, error) {
	return s.mutate(sessionID, func(session *BuilderSession, catalog *Catalog) error {
		mode := models.SelectionMultiple
		if item, ok := catalog.Item(itemID); ok {
			mode = item.SelectionMode
		}
		session.State.SetQuantityDirect(itemID, quantity, mode)
		return nil
	})
}

// SetSlider writes a clamped slider value.
func (s *DefaultSessionService) SetSlider(sessionID, itemID string, value int) (*BuilderSession, error) {
	return s.mutate(sessionID, func(session *BuilderSession, catalog *Catalog) error {
		item, ok := catalog.Item(itemID)
		if !ok {
			return fmt.Errorf("item %s not in catalog", itemID)
		}
		if item.SelectionMode != models.SelectionSlider {
			return fmt.Errorf("item %s is not slider-backed", itemID)
		}
		session.State.SetSliderValue(itemID, value, item.SliderConfig)
		return nil
	})
}

// Advance moves the session to the next step once the current one is
// complete. Leaving the final step additionally requires a base dish and
// flips the session to checkout-ready.
func (s *DefaultSessionService) Advance(sessionID string) (*BuilderSession, error) {
	return s.mutate(sessionID, func(session *BuilderSession, catalog *Catalog) error {
		if session.CheckoutReady || session.StepIndex >= len(catalog.Steps) {
			session.CheckoutReady = true
			return nil
		}
		step := catalog.Steps[session.StepIndex]
		if blocking := BlockingSections(step, session.State); len(blocking) > 0 {
			return NewValidationError("step is missing required selections", blocking)
		}
		if session.StepIndex == len(catalog.Steps)-1 {
			if err := CanCheckout(catalog, session.State); err != nil {
				return err
			}
			session.CheckoutReady = true
		}
		session.StepIndex++
		return nil
	})
}

// Cancel discards a session.
func (s *DefaultSessionService) Cancel(sessionID string) error {
	ctx := context.Background()
	if err := utils.GetSessionCacheClient().Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel builder session: %w", err)
	}
	return nil
}

// Complete removes a session after successful order submission.
func (s *DefaultSessionService) Complete(sessionID string) error {
	return s.Cancel(sessionID)
}

func (s *DefaultSessionService) mutate(sessionID string, apply func(*BuilderSession, *Catalog) error) (*BuilderSession, error) {
	session, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	steps, err := s.MenuRepo.GetSteps(session.TenantID, session.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu catalog: %w", err)
	}
	catalog := NewCatalog(steps)

	if err := apply(session, catalog); err != nil {
		return nil, err
	}
	session.TotalCents = ComputeTotal(session.State, catalog)

	if err := s.save(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultSessionService) load(sessionID string) (*BuilderSession, error) {
	ctx := context.Background()
	data, err := utils.GetSessionCacheClient().Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var session BuilderSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse builder session: %w", err)
	}
	if session.State == nil {
		session.State = NewSelectionState()
	}
	if session.State.Selections == nil {
		session.State.Selections = make(map[string]string)
	}
	if session.State.Cart == nil {
		session.State.Cart = make(map[string]int)
	}
	return &session, nil
}

func (s *DefaultSessionService) save(session *BuilderSession) error {
	ctx := context.Background()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal builder session: %w", err)
	}
	if err := utils.GetSessionCacheClient().Set(ctx, sessionKey(session.SessionID), data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to store builder session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "builder:session:" + sessionID
}
