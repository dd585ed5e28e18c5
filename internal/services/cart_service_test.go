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

func cartFixture(t *testing.T) (*services.CartService, *repositories.MockUnitOfWork, *models.User, *models.Food) {
	t.Helper()

	uow := repositories.NewMockUnitOfWork()
	service := services.NewCartService(uow.CartRepo, uow.UserRepo, uow.FoodRepo)

	user := &models.User{Name: "U", Email: "u@example.com", Password: "x", Role: models.RoleUser, Active: true}
	require.NoError(t, uow.UserRepo.Create(user))
	food := seedFood(t, uow, "Pizza", 10.0, 20)

	return service, uow, user, food
}

func TestCartService_AddToCart(t *testing.T) {
	service, _, user, food := cartFixture(t)

	summary, err := service.AddToCart(user.Email, food.ID, 2)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)

	line := summary.Items[0]
	assert.Equal(t, food.ID, line.FoodID)
	assert.Equal(t, int64(2), line.Quantity)
	assert.Equal(t, "Pizza", line.FoodName)
	assert.Equal(t, 10.0, line.Price)
	assert.Equal(t, 1, summary.TotalItems)
	assert.Equal(t, 20.0, summary.TotalAmount)
}

func TestCartService_AddToCart_MergesExistingLine(t *testing.T) {
	service, _, user, food := cartFixture(t)

	_, err := service.AddToCart(user.Email, food.ID, 2)
	require.NoError(t, err)
	summary, err := service.AddToCart(user.Email, food.ID, 3)
	require.NoError(t, err)

	require.Len(t, summary.Items, 1)
	assert.Equal(t, int64(5), summary.Items[0].Quantity)
	assert.Equal(t, 50.0, summary.TotalAmount)
}

func TestCartService_AddToCart_SnapshotsSurvivePriceChange(t *testing.T) {
	service, uow, user, food := cartFixture(t)

	_, err := service.AddToCart(user.Email, food.ID, 1)
	require.NoError(t, err)

	food.Price = 99.0
	require.NoError(t, uow.FoodRepo.Update(food))

	summary, err := service.GetMyCart(user.Email)
	require.NoError(t, err)
	assert.Equal(t, 10.0, summary.Items[0].Price)
	assert.Equal(t, 10.0, summary.TotalAmount)
}

func TestCartService_AddToCart_Invalid(t *testing.T) {
	service, _, user, food := cartFixture(t)

	_, err := service.AddToCart(user.Email, food.ID, 0)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	_, err = service.AddToCart(user.Email, food.ID, -1)
	assert.True(t, apperrors.IsKind(err, apperrors.KindBadRequest))

	_, err = service.AddToCart(user.Email, "no-such-food", 1)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCartService_UpdateItem(t *testing.T) {
	service, _, user, food := cartFixture(t)

	summary, err := service.AddToCart(user.Email, food.ID, 2)
	require.NoError(t, err)
	itemID := summary.Items[0].ID

	summary, err = service.UpdateItem(itemID, user.Email, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.Items[0].Quantity)
	assert.Equal(t, 40.0, summary.TotalAmount)

	// Zero quantity removes the line.
	summary, err = service.UpdateItem(itemID, user.Email, 0)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.TotalAmount)
}

func TestCartService_UpdateItem_ForeignLine(t *testing.T) {
	service, uow, user, food := cartFixture(t)

	summary, err := service.AddToCart(user.Email, food.ID, 2)
	require.NoError(t, err)
	itemID := summary.Items[0].ID

	intruder := &models.User{Name: "I", Email: "i@example.com", Password: "x", Role: models.RoleUser, Active: true}
	require.NoError(t, uow.UserRepo.Create(intruder))

	_, err = service.UpdateItem(itemID, intruder.Email, 1)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	_, err = service.RemoveItem(itemID, intruder.Email)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	// The owner's line is untouched.
	summary, err = service.GetMyCart(user.Email)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, int64(2), summary.Items[0].Quantity)
}

func TestCartService_RemoveItem(t *testing.T) {
	service, _, user, food := cartFixture(t)

	summary, err := service.AddToCart(user.Email, food.ID, 2)
	require.NoError(t, err)

	summary, err = service.RemoveItem(summary.Items[0].ID, user.Email)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)

	_, err = service.RemoveItem("no-such-item", user.Email)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestCartService_ClearCart(t *testing.T) {
	service, uow, user, food := cartFixture(t)

	other := seedFood(t, uow, "Biryani", 20.0, 20)
	_, err := service.AddToCart(user.Email, food.ID, 1)
	require.NoError(t, err)
	_, err = service.AddToCart(user.Email, other.ID, 1)
	require.NoError(t, err)

	require.NoError(t, service.ClearCart(user.Email))

	summary, err := service.GetMyCart(user.Email)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)

	// Clearing an already empty cart succeeds.
	assert.NoError(t, service.ClearCart(user.Email))
}
