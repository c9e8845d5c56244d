package handlers

// HandlerBundle groups all HTTP handlers for route registration.
type HandlerBundle struct {
	Menu    *MenuHandler
	Builder *BuilderHandler
	Order   *OrderHandler
	Pod     *PodHandler
	Loyalty *LoyaltyHandler
	Admin   *AdminHandler
}
