package booking

import (
	"context"

	"fitsphere/internal/domain"
	"fitsphere/internal/repository"
)

// BookingRepository is the booking ledger, the single source of truth for
// slot occupancy.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*domain.Booking, error)
	GetLiveSlots(ctx context.Context, trainerID, date string) ([]string, error)
	List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	All(ctx context.Context) ([]domain.Booking, error)
	SetRazorpayOrderID(ctx context.Context, bookingID, razorpayOrderID string) error
	MarkPaid(ctx context.Context, bookingID, paymentID string) (bool, error)
	UpdateFields(ctx context.Context, bookingID string, u repository.BookingStatusUpdate) error
}

type UserReader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type ProgramRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	IncrementEnrolled(ctx context.Context, id string) error
}

type TrainerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Trainer, error)
	IncrementSessions(ctx context.Context, id string) error
}

type VenueReader interface {
	Get(ctx context.Context) (*domain.VenueSettings, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	FlagReconciliation(ctx context.Context, paymentID string) error
}

// Notifier is fire-and-forget; implementations must never fail the calling
// request.
type Notifier interface {
	Notify(ctx context.Context, t domain.NotificationType, message string)
}
