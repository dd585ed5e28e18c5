package repositories

import (
	"gorm.io/gorm"
)

// Repositories bundles the per-table repositories so a workflow can reach
// all of them through one handle, inside or outside a transaction.
type Repositories interface {
	Foods() FoodRepository
	Users() UserRepository
	Carts() CartRepository
	Orders() OrderRepository
	Payments() PaymentRepository
}

// UnitOfWork runs a function against a transaction-scoped Repositories
// bundle. If the function returns an error, every write made through the
// bundle is rolled back. Outside of Do, the bundle methods serve
// non-transactional access.
type UnitOfWork interface {
	Repositories
	Do(fn func(r Repositories) error) error
}

// GORMUnitOfWork implements UnitOfWork on top of gorm.DB.Transaction.
type GORMUnitOfWork struct {
	db *gorm.DB
}

// NewGORMUnitOfWork creates a new instance of GORMUnitOfWork.
func NewGORMUnitOfWork(db *gorm.DB) *GORMUnitOfWork {
	return &GORMUnitOfWork{
		db: db,
	}
}

func (u *GORMUnitOfWork) Foods() FoodRepository {
	return NewGORMFoodRepository(u.db)
}

func (u *GORMUnitOfWork) Users() UserRepository {
	return NewGORMUserRepository(u.db)
}

func (u *GORMUnitOfWork) Carts() CartRepository {
	return NewGORMCartRepository(u.db)
}

func (u *GORMUnitOfWork) Orders() OrderRepository {
	return NewGORMOrderRepository(u.db)
}

func (u *GORMUnitOfWork) Payments() PaymentRepository {
	return NewGORMPaymentRepository(u.db)
}

// Do executes fn inside a database transaction. The bundle handed to fn is
// bound to the transaction, so all writes commit or roll back together.
func (u *GORMUnitOfWork) Do(fn func(r Repositories) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMUnitOfWork(tx))
	})
}
