package analytics

import (
	"context"

	"fitsphere/internal/domain"
	"fitsphere/internal/repository"
)

type Service struct {
	analytics *repository.AnalyticsRepository
	users     *repository.UserRepository
	products  *repository.ProductRepository
	payments  *repository.PaymentRepository
	videos    *repository.VideoRepository
}

func NewService(
	analytics *repository.AnalyticsRepository,
	users *repository.UserRepository,
	products *repository.ProductRepository,
	payments *repository.PaymentRepository,
	videos *repository.VideoRepository,
) *Service {
	return &Service{
		analytics: analytics,
		users:     users,
		products:  products,
		payments:  payments,
		videos:    videos,
	}
}

type Dashboard struct {
	TotalUsers           int64            `json:"total_users"`
	TotalProducts        int64            `json:"total_products"`
	BookingsByStatus     map[string]int64 `json:"bookings_by_status"`
	OrdersByStatus       map[string]int64 `json:"orders_by_status"`
	TotalPayments        int64            `json:"total_payments"`
	SuccessfulPayments   int64            `json:"successful_payments"`
	BookingRevenue       float64          `json:"booking_revenue"`
	OrderRevenue         float64          `json:"order_revenue"`
	PendingReconciliation int64           `json:"pending_reconciliation"`
	MostWatchedVideos    []domain.Video   `json:"most_watched_videos"`
	LowStockProducts     []domain.Product `json:"low_stock_products"`
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}

	var err error
	if d.TotalUsers, err = s.users.CountByRole(ctx, domain.RoleUser); err != nil {
		return nil, err
	}
	if d.TotalProducts, err = s.products.CountAll(ctx); err != nil {
		return nil, err
	}
	if d.BookingsByStatus, err = s.analytics.CountBookingsByStatus(ctx); err != nil {
		return nil, err
	}
	if d.OrdersByStatus, err = s.analytics.CountOrdersByStatus(ctx); err != nil {
		return nil, err
	}
	if d.TotalPayments, d.SuccessfulPayments, err = s.payments.CountByStatus(ctx); err != nil {
		return nil, err
	}
	if d.BookingRevenue, d.OrderRevenue, err = s.analytics.Revenue(ctx); err != nil {
		return nil, err
	}
	if d.PendingReconciliation, err = s.analytics.CountReconciliation(ctx); err != nil {
		return nil, err
	}
	if d.MostWatchedVideos, err = s.videos.MostWatched(ctx, 5); err != nil {
		return nil, err
	}
	if d.LowStockProducts, err = s.analytics.LowStockProducts(ctx, 5); err != nil {
		return nil, err
	}

	return d, nil
}
