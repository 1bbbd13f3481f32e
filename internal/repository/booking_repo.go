package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"fitsphere/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	UserID          string    `gorm:"column:user_id;index"`
	UserName        string    `gorm:"column:user_name"`
	UserEmail       string    `gorm:"column:user_email"`
	UserPhone       string    `gorm:"column:user_phone"`
	ProgramID       string    `gorm:"column:program_id"`
	ProgramTitle    string    `gorm:"column:program_title"`
	TrainerID       string    `gorm:"column:trainer_id;index"`
	TrainerName     string    `gorm:"column:trainer_name"`
	BookingDate     string    `gorm:"column:booking_date"`
	TimeSlot        string    `gorm:"column:time_slot"`
	AttendanceMode  string    `gorm:"column:attendance_mode"`
	Location        *string   `gorm:"column:location;type:text"`
	VenueLocation   *string   `gorm:"column:venue_location;type:text"`
	Amount          float64   `gorm:"column:amount"`
	Status          string    `gorm:"column:status"`
	PaymentStatus   string    `gorm:"column:payment_status"`
	RazorpayOrderID string    `gorm:"column:razorpay_order_id;index"`
	PaymentID       string    `gorm:"column:payment_id"`
	Notes           string    `gorm:"column:notes;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

// BookingSchema exposes the bookings table model for migration.
func BookingSchema() any { return &bookingModel{} }

func locToColumn(l *domain.Location) *string {
	if l == nil {
		return nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

func locFromColumn(s *string) *domain.Location {
	if s == nil || *s == "" {
		return nil
	}
	var l domain.Location
	if err := json.Unmarshal([]byte(*s), &l); err != nil {
		return nil
	}
	return &l
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:              m.ID,
		UserID:          m.UserID,
		UserName:        m.UserName,
		UserEmail:       m.UserEmail,
		UserPhone:       m.UserPhone,
		ProgramID:       m.ProgramID,
		ProgramTitle:    m.ProgramTitle,
		TrainerID:       m.TrainerID,
		TrainerName:     m.TrainerName,
		BookingDate:     m.BookingDate,
		TimeSlot:        m.TimeSlot,
		AttendanceMode:  domain.AttendanceMode(m.AttendanceMode),
		Location:        locFromColumn(m.Location),
		VenueLocation:   locFromColumn(m.VenueLocation),
		Amount:          m.Amount,
		Status:          domain.BookingStatus(m.Status),
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		RazorpayOrderID: m.RazorpayOrderID,
		PaymentID:       m.PaymentID,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		UserID:          b.UserID,
		UserName:        b.UserName,
		UserEmail:       b.UserEmail,
		UserPhone:       b.UserPhone,
		ProgramID:       b.ProgramID,
		ProgramTitle:    b.ProgramTitle,
		TrainerID:       b.TrainerID,
		TrainerName:     b.TrainerName,
		BookingDate:     b.BookingDate,
		TimeSlot:        b.TimeSlot,
		AttendanceMode:  string(b.AttendanceMode),
		Location:        locToColumn(b.Location),
		VenueLocation:   locToColumn(b.VenueLocation),
		Amount:          b.Amount,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		RazorpayOrderID: b.RazorpayOrderID,
		PaymentID:       b.PaymentID,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// Create inserts the booking. The partial unique index over live bookings
// rejects a second live booking for the same (trainer, date, slot); callers
// see that as gorm.ErrDuplicatedKey.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByRazorpayOrderID(ctx context.Context, razorpayOrderID string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "razorpay_order_id = ?", razorpayOrderID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetLiveSlots returns the slot labels of pending/confirmed bookings for a
// trainer on a date. Computed at request time; the ledger is the source of
// truth for occupancy.
func (r *BookingRepository) GetLiveSlots(ctx context.Context, trainerID, date string) ([]string, error) {
	var slots []string
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("trainer_id = ? AND booking_date = ? AND status IN ?", trainerID, date, []string{"pending", "confirmed"}).
		Pluck("time_slot", &slots)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return slots, nil
}

type BookingFilter struct {
	Status        string
	PaymentStatus string
	TrainerID     string
	Skip          int
	Limit         int
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilter) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.TrainerID != "" {
		q = q.Where("trainer_id = ?", f.TrainerID)
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}

	var ms []bookingModel
	tx := q.Order("created_at DESC").Offset(f.Skip).Limit(f.Limit).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// All returns every booking, oldest first, for the CSV export.
func (r *BookingRepository) All(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Order("created_at ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// SetRazorpayOrderID links the gateway order to the booking. Only unpaid
// bookings may be linked, so a retried intent can re-link but a settled one
// cannot change.
func (r *BookingRepository) SetRazorpayOrderID(ctx context.Context, bookingID, razorpayOrderID string) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND payment_status = ?", bookingID, "pending").
		Updates(map[string]any{
			"razorpay_order_id": razorpayOrderID,
			"updated_at":        time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkPaid is the idempotency guard for payment verification: the conditional
// on payment_status means a replayed valid signature affects zero rows and
// triggers none of the side effects a second time.
func (r *BookingRepository) MarkPaid(ctx context.Context, bookingID, paymentID string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND payment_status = ?", bookingID, "pending").
		Updates(map[string]any{
			"payment_status": "success",
			"status":         "confirmed",
			"payment_id":     paymentID,
			"updated_at":     time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// BookingStatusUpdate is the explicit set of admin-editable fields. There is
// deliberately no way to reach payment_status or a confirmed transition from
// here; confirmation only happens through MarkPaid.
type BookingStatusUpdate struct {
	Status      *string
	Notes       *string
	BookingDate *string
	TimeSlot    *string
}

func (r *BookingRepository) UpdateFields(ctx context.Context, bookingID string, u BookingStatusUpdate) error {
	fields := map[string]any{"updated_at": time.Now().UTC()}
	if u.Status != nil {
		fields["status"] = *u.Status
	}
	if u.Notes != nil {
		fields["notes"] = *u.Notes
	}
	if u.BookingDate != nil {
		fields["booking_date"] = *u.BookingDate
	}
	if u.TimeSlot != nil {
		fields["time_slot"] = *u.TimeSlot
	}

	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
