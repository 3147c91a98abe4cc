// Package orders implements the order lifecycle engine: the status
// state machine, the cart-to-order split and the checkout service.
package orders

import (
	"errors"
	"fmt"

	"github.com/YahirAlvarez/makeapp/internal/models"
)

var (
	// ErrUnknownStatus is returned when the requested status is not a
	// lifecycle state at all.
	ErrUnknownStatus = errors.New("unknown order status")
	// ErrUnreachableStatus is returned when the target status is not
	// reachable from the order's current status for any role.
	ErrUnreachableStatus = errors.New("status not reachable from current status")
	// ErrRoleNotAllowed is returned when the transition exists but the
	// acting role may not perform it.
	ErrRoleNotAllowed = errors.New("role may not perform this transition")
)

type edge struct {
	from, to models.OrderStatus
}

// transitions maps each valid (from, to) edge to the roles allowed to
// perform it. pending→processing→shipped→delivered is the happy path;
// delivered is terminal; cancelled is reachable from everything but
// delivered and can be reactivated back to pending by the seller.
var transitions = map[edge][]models.Role{
	{models.StatusPending, models.StatusProcessing}:   {models.RoleSeller},
	{models.StatusProcessing, models.StatusShipped}:   {models.RoleSeller},
	{models.StatusShipped, models.StatusDelivered}:    {models.RoleBuyer},
	{models.StatusPending, models.StatusCancelled}:    {models.RoleBuyer, models.RoleSeller},
	{models.StatusProcessing, models.StatusCancelled}: {models.RoleSeller},
	{models.StatusShipped, models.StatusCancelled}:    {models.RoleSeller},
	{models.StatusCancelled, models.StatusPending}:    {models.RoleSeller},
}

// ParseStatus validates a status string from the wire.
func ParseStatus(s string) (models.OrderStatus, error) {
	switch st := models.OrderStatus(s); st {
	case models.StatusPending, models.StatusProcessing, models.StatusShipped,
		models.StatusDelivered, models.StatusCancelled:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// CanTransition reports whether role may move an order from one status
// to another. An empty role means the caller did not identify itself;
// the transition is then allowed if any role may perform it, which
// matches the role-less clients of the legacy API. Requesting the
// current status again is unreachable: the edge set has no self loops,
// so an already-applied transition is rejected on repeat.
func CanTransition(from, to models.OrderStatus, role models.Role) error {
	roles, ok := transitions[edge{from, to}]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrUnreachableStatus, from, to)
	}
	if role == "" || role == models.RoleAdmin {
		return nil
	}
	for _, r := range roles {
		if r == role {
			return nil
		}
	}
	return fmt.Errorf("%w: %s may not set %s -> %s", ErrRoleNotAllowed, role, from, to)
}
