package services

import (
	"foodorder/internal/models"
	"foodorder/internal/repositories"
)

// DashboardData is the admin rollup: simple counts and sums only.
type DashboardData struct {
	TotalUsers   int64          `json:"total_users"`
	TotalOrders  int64          `json:"total_orders"`
	TotalRevenue float64        `json:"total_revenue"`
	RecentOrders []models.Order `json:"recent_orders"`
}

// DashboardService aggregates read-only figures for the admin dashboard.
type DashboardService struct {
	userRepo  repositories.UserRepository
	orderRepo repositories.OrderRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(userRepo repositories.UserRepository, orderRepo repositories.OrderRepository) *DashboardService {
	return &DashboardService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

// GetDashboardData collects user count, order count, total revenue and the
// five most recent orders.
func (s *DashboardService) GetDashboardData() (*DashboardData, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}

	totalOrders, err := s.orderRepo.Count()
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.orderRepo.TotalRevenue()
	if err != nil {
		return nil, err
	}

	recent, err := s.orderRepo.GetRecent(5)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		TotalUsers:   totalUsers,
		TotalOrders:  totalOrders,
		TotalRevenue: totalRevenue,
		RecentOrders: recent,
	}, nil
}
