package repositories

// MockUnitOfWork bundles the in-memory repositories. Do runs the callback
// directly against them; there is no rollback, so tests that need rollback
// behavior use the SQLite-backed GORMUnitOfWork instead.
type MockUnitOfWork struct {
	FoodRepo    *MockFoodRepository
	UserRepo    *MockUserRepository
	CartRepo    *MockCartRepository
	OrderRepo   *MockOrderRepository
	PaymentRepo *MockPaymentRepository
}

// NewMockUnitOfWork creates a MockUnitOfWork with fresh in-memory repositories.
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		FoodRepo:    NewMockFoodRepository(),
		UserRepo:    NewMockUserRepository(),
		CartRepo:    NewMockCartRepository(),
		OrderRepo:   NewMockOrderRepository(),
		PaymentRepo: NewMockPaymentRepository(),
	}
}

func (u *MockUnitOfWork) Foods() FoodRepository {
	return u.FoodRepo
}

func (u *MockUnitOfWork) Users() UserRepository {
	return u.UserRepo
}

func (u *MockUnitOfWork) Carts() CartRepository {
	return u.CartRepo
}

func (u *MockUnitOfWork) Orders() OrderRepository {
	return u.OrderRepo
}

func (u *MockUnitOfWork) Payments() PaymentRepository {
	return u.PaymentRepo
}

// Do runs fn against the in-memory repositories without transactional
// isolation.
func (u *MockUnitOfWork) Do(fn func(r Repositories) error) error {
	return fn(u)
}
