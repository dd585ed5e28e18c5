package services

import (
	"foodorder/internal/apperrors"
	"foodorder/internal/models"
)

// AccessGuard decides whether a principal may read or mutate an order.
// Privileged callers bypass ownership checks. Read-path violations report
// NotFound so a caller cannot probe for the existence of another user's
// order; write-path violations report Forbidden.
type AccessGuard struct{}

// NewAccessGuard creates a new AccessGuard.
func NewAccessGuard() *AccessGuard {
	return &AccessGuard{}
}

// CanView checks read access to an order.
func (g *AccessGuard) CanView(order *models.Order, userID string, privileged bool) error {
	if privileged || order.UserID == userID {
		return nil
	}
	return apperrors.NotFound("order with ID %s not found", order.ID)
}

// CanModify checks write access to an order.
func (g *AccessGuard) CanModify(order *models.Order, userID string, privileged bool) error {
	if privileged || order.UserID == userID {
		return nil
	}
	return apperrors.Forbidden("not allowed to modify order %s", order.ID)
}
