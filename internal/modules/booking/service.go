package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"fitsphere/internal/domain"
	"fitsphere/internal/gateway"
	"fitsphere/internal/repository"
)

type Service struct {
	bookings BookingRepository
	users    UserReader
	programs ProgramRepository
	trainers TrainerRepository
	venue    VenueReader
	payments PaymentRepository
	gw       gateway.Client
	notifier Notifier
}

func NewService(
	bookings BookingRepository,
	users UserReader,
	programs ProgramRepository,
	trainers TrainerRepository,
	venue VenueReader,
	payments PaymentRepository,
	gw gateway.Client,
	notifier Notifier,
) *Service {
	return &Service{
		bookings: bookings,
		users:    users,
		programs: programs,
		trainers: trainers,
		venue:    venue,
		payments: payments,
		gw:       gw,
		notifier: notifier,
	}
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// CreateBooking validates the request, denormalizes user/program/trainer
// details onto the booking and inserts it as pending/pending. The unique
// index over live bookings is the last word on slot conflicts; the
// availability pre-check only exists for a friendlier error.
func (s *Service) CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (*domain.Booking, error) {
	if !validDate(req.BookingDate) {
		return nil, fmt.Errorf("%w: booking_date must be YYYY-MM-DD", ErrValidation)
	}
	if !domain.IsValidTimeSlot(req.TimeSlot) {
		return nil, fmt.Errorf("%w: unknown time slot %q", ErrValidation, req.TimeSlot)
	}

	mode := domain.AttendanceMode(req.AttendanceMode)
	if mode != domain.AttendanceGym && mode != domain.AttendanceHomeVisit {
		return nil, fmt.Errorf("%w: unknown attendance mode %q", ErrValidation, req.AttendanceMode)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	program, err := s.programs.GetByID(ctx, req.ProgramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: program %s", ErrNotFound, req.ProgramID)
		}
		return nil, err
	}

	trainer, err := s.trainers.GetByID(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trainer %s", ErrNotFound, req.TrainerID)
		}
		return nil, err
	}

	b := &domain.Booking{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		UserName:       user.Name,
		UserEmail:      user.Email,
		UserPhone:      user.Phone,
		ProgramID:      program.ID,
		ProgramTitle:   program.Title,
		TrainerID:      trainer.ID,
		TrainerName:    trainer.Name,
		BookingDate:    req.BookingDate,
		TimeSlot:       req.TimeSlot,
		AttendanceMode: mode,
		Amount:         program.Price,
		Status:         domain.BookingPending,
		PaymentStatus:  domain.PaymentPending,
		Notes:          req.Notes,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	switch mode {
	case domain.AttendanceHomeVisit:
		if !program.SupportsHomeVisit {
			return nil, ErrUnsupportedMode
		}
		if req.Location == nil || req.Location.Address == "" ||
			(req.Location.Latitude == 0 && req.Location.Longitude == 0) {
			return nil, ErrMissingLocation
		}
		b.Location = req.Location
		b.Amount += program.HomeVisitSurcharge
	case domain.AttendanceGym:
		if !program.SupportsGym {
			return nil, ErrUnsupportedMode
		}
		venue, err := s.venue.Get(ctx)
		if err == nil {
			b.VenueLocation = &domain.Location{
				Address:   venue.Address,
				Latitude:  venue.Latitude,
				Longitude: venue.Longitude,
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	taken, err := s.bookings.GetLiveSlots(ctx, trainer.ID, req.BookingDate)
	if err != nil {
		return nil, err
	}
	for _, slot := range taken {
		if slot == req.TimeSlot {
			return nil, ErrSlotTaken
		}
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	s.notifier.Notify(ctx, domain.NotifNewBooking,
		fmt.Sprintf("New booking: %s with %s on %s %s", b.ProgramTitle, b.TrainerName, b.BookingDate, b.TimeSlot))

	return b, nil
}

// AvailableSlots partitions the fixed slot enumeration against live bookings
// for a trainer on a date.
func (s *Service) AvailableSlots(ctx context.Context, trainerID, date string) (*AvailableSlotsResponse, error) {
	if !validDate(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if _, err := s.trainers.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trainer %s", ErrNotFound, trainerID)
		}
		return nil, err
	}

	taken, err := s.bookings.GetLiveSlots(ctx, trainerID, date)
	if err != nil {
		return nil, err
	}
	takenSet := make(map[string]bool, len(taken))
	for _, slot := range taken {
		takenSet[slot] = true
	}

	resp := &AvailableSlotsResponse{
		Date:      date,
		TrainerID: trainerID,
		Available: make([]string, 0, len(domain.TimeSlots)),
		Booked:    make([]string, 0, len(taken)),
	}
	for _, slot := range domain.TimeSlots {
		if takenSet[slot] {
			resp.Booked = append(resp.Booked, slot)
		} else {
			resp.Available = append(resp.Available, slot)
		}
	}
	return resp, nil
}

// CreatePaymentIntent opens a gateway order for the booking amount. Amounts
// are converted to minor currency units for the gateway. Retrying re-links a
// fresh gateway order as long as the booking is still unpaid.
func (s *Service) CreatePaymentIntent(ctx context.Context, bookingID, callerID, callerRole string) (*CreatePaymentResponse, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != callerID && callerRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	if b.PaymentStatus == domain.PaymentSuccess {
		return nil, ErrAlreadyProcessed
	}

	amountMinor := int64(math.Round(b.Amount * 100))
	orderID, err := s.gw.CreateOrder(ctx, amountMinor, b.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if err := s.bookings.SetRazorpayOrderID(ctx, b.ID, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlreadyProcessed
		}
		return nil, err
	}

	return &CreatePaymentResponse{
		BookingID:       b.ID,
		RazorpayOrderID: orderID,
		Amount:          amountMinor,
		Currency:        s.gw.Currency(),
		RazorpayKeyID:   s.gw.KeyID(),
		AmountRupees:    b.Amount,
	}, nil
}

// VerifyPayment settles a booking. The signature check is pure and happens
// before any lookup; MarkPaid's conditional update is the idempotency guard,
// so a replayed valid callback reports the same success without triggering
// any side effect twice. Counter bumps after the audit row are best-effort: a
// failure flags the payment for reconciliation rather than unwinding a
// settled booking.
func (s *Service) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (*domain.Booking, error) {
	if !s.gw.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		s.notifier.Notify(ctx, domain.NotifFailedPayment,
			fmt.Sprintf("Signature verification failed for order %s", req.RazorpayOrderID))
		return nil, ErrInvalidSignature
	}

	b, err := s.bookings.GetByRazorpayOrderID(ctx, req.RazorpayOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	changed, err := s.bookings.MarkPaid(ctx, b.ID, req.RazorpayPaymentID)
	if err != nil {
		return nil, err
	}
	if !changed {
		// Replayed verification. The booking settled already; answer with
		// the settled state and skip every side effect.
		return s.bookings.GetByID(ctx, b.ID)
	}

	p := &domain.Payment{
		ID:                uuid.NewString(),
		BookingID:         b.ID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		RazorpaySignature: req.RazorpaySignature,
		Amount:            b.Amount,
		Status:            domain.PaymentSuccess,
		CreatedAt:         time.Now().UTC(),
	}
	auditMissing := false
	if err := s.payments.Create(ctx, p); err != nil && !isDuplicateKey(err) {
		log.Printf("booking: payment audit insert failed for order %s: %v", req.RazorpayOrderID, err)
		auditMissing = true
		s.notifier.Notify(ctx, domain.NotifSystem,
			fmt.Sprintf("Reconciliation needed: audit row missing for booking %s (order %s)", b.ID, req.RazorpayOrderID))
	}

	// Flagging goes through the audit row; when that row never landed the
	// flag would silently no-op, so fall back to a persisted notification.
	flagReconciliation := func(reason string) {
		if auditMissing {
			s.notifier.Notify(ctx, domain.NotifSystem,
				fmt.Sprintf("Reconciliation needed for booking %s: %s", b.ID, reason))
			return
		}
		if err := s.payments.FlagReconciliation(ctx, p.ID); err != nil {
			log.Printf("booking: reconciliation flag failed for payment %s: %v", p.ID, err)
		}
	}

	if err := s.trainers.IncrementSessions(ctx, b.TrainerID); err != nil {
		log.Printf("booking: session counter failed for trainer %s: %v", b.TrainerID, err)
		flagReconciliation("trainer session counter not applied")
	}
	if err := s.programs.IncrementEnrolled(ctx, b.ProgramID); err != nil {
		log.Printf("booking: enrolled counter failed for program %s: %v", b.ProgramID, err)
		flagReconciliation("program enrolled counter not applied")
	}

	s.notifier.Notify(ctx, domain.NotifSystem,
		fmt.Sprintf("Payment received for booking %s (%s)", b.ID, b.ProgramTitle))

	return s.bookings.GetByID(ctx, b.ID)
}

var allowedTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending:   {domain.BookingCancelled},
	domain.BookingConfirmed: {domain.BookingCancelled, domain.BookingCompleted},
}

func canTransition(from, to domain.BookingStatus) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// UpdateStatus applies an administrative edit. Confirmation is not reachable
// from here; it only ever happens through payment verification. Cancelling
// frees the slot implicitly because occupancy is computed over live statuses.
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req UpdateStatusRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	u := repository.BookingStatusUpdate{
		Notes:       req.Notes,
		BookingDate: req.BookingDate,
		TimeSlot:    req.TimeSlot,
	}
	if req.BookingDate != nil && !validDate(*req.BookingDate) {
		return nil, fmt.Errorf("%w: booking_date must be YYYY-MM-DD", ErrValidation)
	}
	if req.TimeSlot != nil && !domain.IsValidTimeSlot(*req.TimeSlot) {
		return nil, fmt.Errorf("%w: unknown time slot %q", ErrValidation, *req.TimeSlot)
	}
	if req.Status != nil {
		to := domain.BookingStatus(*req.Status)
		switch to {
		case domain.BookingPending, domain.BookingConfirmed, domain.BookingCancelled, domain.BookingCompleted:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *req.Status)
		}
		if to != b.Status {
			if !canTransition(b.Status, to) {
				return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, b.Status, to)
			}
			status := string(to)
			u.Status = &status
		}
	}

	if err := s.bookings.UpdateFields(ctx, bookingID, u); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrSlotTaken
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

func (s *Service) GetBooking(ctx context.Context, bookingID, callerID, callerRole string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != callerID && callerRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	return s.bookings.List(ctx, f)
}

func (s *Service) MyBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) AllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.All(ctx)
}
