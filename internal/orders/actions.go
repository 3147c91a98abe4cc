package orders

import "github.com/YahirAlvarez/makeapp/internal/models"

// statusOrder fixes the order in which allowed targets are listed so
// dashboards render buttons deterministically.
var statusOrder = []models.OrderStatus{
	models.StatusPending,
	models.StatusProcessing,
	models.StatusShipped,
	models.StatusDelivered,
	models.StatusCancelled,
}

// AllowedTargets returns the statuses role may move an order with the
// given current status to. It is a pure view over the transition
// table; dashboards derive their action buttons from it instead of
// hardcoding per-state markup.
func AllowedTargets(from models.OrderStatus, role models.Role) []models.OrderStatus {
	var out []models.OrderStatus
	for _, to := range statusOrder {
		if CanTransition(from, to, role) == nil {
			out = append(out, to)
		}
	}
	return out
}
