package services_test

import (
	"testing"

	"foodorder/internal/apperrors"
	"foodorder/internal/models"
	"foodorder/internal/repositories"
	"foodorder/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paymentFixture places an order for a fresh user and returns the wired
// payment service alongside it.
func paymentFixture(t *testing.T) (*services.PaymentService, *repositories.MockUnitOfWork, *recordingGateway, *models.User, *models.Order) {
	t.Helper()

	uow := repositories.NewMockUnitOfWork()
	gateway := &recordingGateway{}
	payments := services.NewPaymentService(uow, gateway)
	orders := services.NewOrderService(uow, services.NewAccessGuard(), gateway)

	user := &models.User{Name: "U", Email: "u@example.com", Password: "x", Role: models.RoleUser, Active: true}
	require.NoError(t, uow.UserRepo.Create(user))

	food := seedFood(t, uow, "Pizza", 10.0, 5)
	addCartLine(t, uow, user, food, 2)
	order, err := orders.PlaceOrder(user.Email, "somewhere")
	require.NoError(t, err)
	gateway.placed = nil

	return payments, uow, gateway, user, order
}

func TestPaymentService_Initiate(t *testing.T) {
	service, _, _, user, order := paymentFixture(t)

	payment, err := service.Initiate(order.ID, user.Email)
	require.NoError(t, err)

	assert.Equal(t, order.ID, payment.OrderID)
	assert.Equal(t, models.PaymentPending, payment.Status)
	assert.Equal(t, order.TotalAmount, payment.Amount)
	assert.Equal(t, "UPI", payment.Mode)
	assert.Nil(t, payment.PaymentDate)
}

func TestPaymentService_Initiate_ForeignOrder(t *testing.T) {
	service, uow, _, _, order := paymentFixture(t)

	intruder := &models.User{Name: "I", Email: "i@example.com", Password: "x", Role: models.RoleUser, Active: true}
	require.NoError(t, uow.UserRepo.Create(intruder))

	_, err := service.Initiate(order.ID, intruder.Email)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestPaymentService_Initiate_UnknownOrder(t *testing.T) {
	service, _, _, user, _ := paymentFixture(t)

	_, err := service.Initiate("no-such-order", user.Email)
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestPaymentService_Complete_Paid(t *testing.T) {
	service, uow, gateway, user, order := paymentFixture(t)

	_, err := service.Initiate(order.ID, user.Email)
	require.NoError(t, err)

	// Stray cart line to prove completion clears it.
	addCartLine(t, uow, &models.User{ID: user.ID}, &models.Food{ID: "f", Name: "Stray", Price: 1}, 1)

	payment, err := service.Complete(order.ID, "paid")
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPaid, payment.Status)
	require.NotNil(t, payment.PaymentDate)

	stored, err := uow.OrderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPaid, stored.Status)
	assert.Contains(t, stored.StatusTimeline, string(models.OrderPaid))

	cart, _ := uow.CartRepo.GetByUserID(user.ID)
	assert.Empty(t, cart)

	assert.Equal(t, []string{order.ID}, gateway.completed)
}

func TestPaymentService_Complete_Failed(t *testing.T) {
	service, uow, gateway, user, order := paymentFixture(t)

	_, err := service.Initiate(order.ID, user.Email)
	require.NoError(t, err)

	payment, err := service.Complete(order.ID, "FAILED")
	require.NoError(t, err)

	assert.Equal(t, models.PaymentFailed, payment.Status)
	assert.Nil(t, payment.PaymentDate)

	// The order stays as placed.
	stored, err := uow.OrderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderPlaced, stored.Status)
	assert.Empty(t, gateway.completed)
}

func TestPaymentService_Complete_AlreadySettled(t *testing.T) {
	service, _, _, user, order := paymentFixture(t)

	_, err := service.Initiate(order.ID, user.Email)
	require.NoError(t, err)
	_, err = service.Complete(order.ID, "PAID")
	require.NoError(t, err)

	_, err = service.Complete(order.ID, "PAID")
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))
}

func TestPaymentService_Complete_NoAttempt(t *testing.T) {
	service, _, _, _, order := paymentFixture(t)

	_, err := service.Complete(order.ID, "PAID")
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestPaymentService_RetryCreatesNewAttempt(t *testing.T) {
	service, _, _, user, order := paymentFixture(t)

	first, err := service.Initiate(order.ID, user.Email)
	require.NoError(t, err)
	_, err = service.Complete(order.ID, "FAILED")
	require.NoError(t, err)

	second, err := service.Initiate(order.ID, user.Email)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// The latest attempt is the pending retry, and settling it paid does
	// not touch the earlier failed one.
	latest, err := service.GetStatus(order.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, models.PaymentPending, latest.Status)

	settled, err := service.Complete(order.ID, "PAID")
	require.NoError(t, err)
	assert.Equal(t, second.ID, settled.ID)
	assert.Equal(t, models.PaymentPaid, settled.Status)
}
