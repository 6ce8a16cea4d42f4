package services

import (
	"errors"
	"fmt"
	"time"

	"atelier-backend/models"
	"atelier-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerService owns the booking/payment consistency rules: for every
// booking Remaining == Price - Paid and 0 <= Paid <= Price, the payment
// history matches the booking balance, and paired writes (booking plus
// deposit, payment plus balance update) commit together or not at all.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// DepositNotes marks the companion payment created with a booking.
const DepositNotes = "deposit"

type CreateBookingInput struct {
	CustomerID uuid.UUID
	Department string
	ServiceID  uuid.UUID
	DressID    *uuid.UUID
	EventDate  models.Date
	Price      decimal.Decimal
	Deposit    decimal.Decimal
	Notes      string
}

type UpdateBookingInput struct {
	ServiceID *uuid.UUID
	DressID   *uuid.UUID
	EventDate *models.Date
	Price     *decimal.Decimal
	Notes     *string
}

type UpdatePaymentInput struct {
	Amount *decimal.Decimal
	PaidOn *models.Date
	Notes  *string
}

// CreateBooking validates the booking, checks the dress/event-date
// conflict rule and writes the booking — together with its deposit
// payment when Deposit > 0 — in one transaction.
func (s *LedgerService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if in.CustomerID == uuid.Nil {
		return nil, validationErrorf("customer is required")
	}
	if !models.ValidDepartment(in.Department) {
		return nil, validationErrorf("unknown department %q", in.Department)
	}
	if !in.Price.IsPositive() {
		return nil, validationErrorf("price must be greater than zero")
	}
	if in.Deposit.IsNegative() {
		return nil, validationErrorf("deposit cannot be negative")
	}
	if in.Deposit.GreaterThan(in.Price) {
		return nil, validationErrorf("deposit cannot exceed the agreed price")
	}
	if in.EventDate.IsZero() {
		return nil, validationErrorf("event date is required")
	}
	if in.Department == models.DeptDresses && in.DressID == nil {
		return nil, validationErrorf("a dress must be selected for dress bookings")
	}

	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", in.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErrorf("customer %s not found", in.CustomerID)
		}
		return nil, err
	}

	var service models.Service
	if err := s.db.First(&service, "id = ?", in.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErrorf("service %s not found", in.ServiceID)
		}
		return nil, err
	}

	var dress *models.Dress
	if in.DressID != nil {
		dress = &models.Dress{}
		if err := s.db.First(dress, "id = ?", *in.DressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundErrorf("dress %s not found", *in.DressID)
			}
			return nil, err
		}

		// Exact event-date equality, not overlap. Only the create path
		// checks this; edits intentionally do not.
		var clashes int64
		if err := s.db.Model(&models.Booking{}).
			Where("dress_id = ? AND event_date = ?", *in.DressID, in.EventDate).
			Count(&clashes).Error; err != nil {
			return nil, err
		}
		if clashes > 0 {
			return nil, conflictErrorf("dress %s is already booked for %s", dress.Code, in.EventDate)
		}
	}

	booking := models.Booking{
		Code:        generateBookingCode(in.Department),
		CustomerID:  customer.ID,
		BrideName:   customer.BrideName,
		GroomName:   customer.GroomName,
		Department:  in.Department,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		DressID:     in.DressID,
		EventDate:   in.EventDate,
		Price:       in.Price,
		Paid:        in.Deposit,
		Remaining:   in.Price.Sub(in.Deposit),
		Notes:       in.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if in.Deposit.IsPositive() {
			deposit := models.Payment{
				BookingID:      booking.ID,
				PaidOn:         models.Today(),
				Amount:         in.Deposit,
				BrideName:      booking.BrideName,
				GroomName:      booking.GroomName,
				RemainingAfter: booking.Remaining,
				Notes:          DepositNotes,
			}
			if err := tx.Create(&deposit).Error; err != nil {
				return err
			}
		}

		if dress != nil {
			if err := tx.Model(&models.Dress{}).Where("id = ?", dress.ID).
				Update("status", models.DressBooked).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

// UpdateBooking applies a partial edit. A price change recomputes
// Remaining from the already-recorded Paid amount and never touches
// payment rows. The dress/date conflict rule is not re-checked here.
func (s *LedgerService) UpdateBooking(id uuid.UUID, in UpdateBookingInput) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErrorf("booking %s not found", id)
		}
		return nil, err
	}

	if in.ServiceID != nil {
		var service models.Service
		if err := s.db.First(&service, "id = ?", *in.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundErrorf("service %s not found", *in.ServiceID)
			}
			return nil, err
		}
		booking.ServiceID = service.ID
		booking.ServiceName = service.Name
	}
	if in.DressID != nil {
		var dress models.Dress
		if err := s.db.First(&dress, "id = ?", *in.DressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFoundErrorf("dress %s not found", *in.DressID)
			}
			return nil, err
		}
		booking.DressID = in.DressID
	}
	if in.EventDate != nil {
		if in.EventDate.IsZero() {
			return nil, validationErrorf("event date is required")
		}
		booking.EventDate = *in.EventDate
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, validationErrorf("price must be greater than zero")
		}
		if in.Price.LessThan(booking.Paid) {
			return nil, validationErrorf("price cannot drop below the %s already paid", booking.Paid)
		}
		booking.Price = *in.Price
		booking.Remaining = in.Price.Sub(booking.Paid)
	}
	if in.Notes != nil {
		booking.Notes = *in.Notes
	}

	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

// DeleteBooking removes a booking. It is blocked while any payment still
// references it; payments must be deleted first.
func (s *LedgerService) DeleteBooking(id uuid.UUID) error {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErrorf("booking %s not found", id)
		}
		return err
	}

	var payments int64
	if err := s.db.Model(&models.Payment{}).
		Where("booking_id = ?", id).Count(&payments).Error; err != nil {
		return err
	}
	if payments > 0 {
		return conflictErrorf("booking %s still has %d payment(s); delete them first", booking.Code, payments)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&booking).Error; err != nil {
			return err
		}
		if booking.DressID != nil {
			if err := tx.Model(&models.Dress{}).Where("id = ?", *booking.DressID).
				Update("status", models.DressAvailable).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RecordPayment writes a payment and moves the booking balance in the
// same transaction. The amount is checked against the booking's current
// stored Remaining, which is authoritative even after price edits.
func (s *LedgerService) RecordPayment(bookingID uuid.UUID, amount decimal.Decimal, paidOn models.Date, notes string) (*models.Payment, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErrorf("booking %s not found", bookingID)
		}
		return nil, err
	}

	if !amount.IsPositive() {
		return nil, validationErrorf("payment amount must be greater than zero")
	}
	if amount.GreaterThan(booking.Remaining) {
		return nil, conflictErrorf("payment of %s exceeds the remaining balance of %s", amount, booking.Remaining)
	}
	if paidOn.IsZero() {
		paidOn = models.Today()
	}

	payment := models.Payment{
		BookingID:      booking.ID,
		PaidOn:         paidOn,
		Amount:         amount,
		BrideName:      booking.BrideName,
		GroomName:      booking.GroomName,
		RemainingAfter: booking.Remaining.Sub(amount),
		Notes:          notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Updates(map[string]interface{}{
				"paid":      booking.Paid.Add(amount),
				"remaining": booking.Remaining.Sub(amount),
			}).Error
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// UpdatePayment edits the payment row in place. The parent booking's
// Paid/Remaining are deliberately left untouched; re-recording a payment
// is the way to move the balance.
func (s *LedgerService) UpdatePayment(id uuid.UUID, in UpdatePaymentInput) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErrorf("payment %s not found", id)
		}
		return nil, err
	}

	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, validationErrorf("payment amount must be greater than zero")
		}
		payment.Amount = *in.Amount
	}
	if in.PaidOn != nil {
		payment.PaidOn = *in.PaidOn
	}
	if in.Notes != nil {
		payment.Notes = *in.Notes
	}

	if err := s.db.Save(&payment).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

// DeletePayment reverses the payment's effect on the parent booking and
// removes the row, in one transaction. The parent must still exist.
func (s *LedgerService) DeletePayment(id uuid.UUID) error {
	var payment models.Payment
	if err := s.db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErrorf("payment %s not found", id)
		}
		return err
	}

	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", payment.BookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErrorf("booking %s for payment %s not found", payment.BookingID, id)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Updates(map[string]interface{}{
				"paid":      booking.Paid.Sub(payment.Amount),
				"remaining": booking.Remaining.Add(payment.Amount),
			}).Error; err != nil {
			return err
		}
		return tx.Delete(&payment).Error
	})
}

// RenameCustomer updates the customer row and rewrites the denormalized
// name copies on every booking and payment row that carried the old
// value. The rewrite matches by name, not by customer id, so rows from
// the pre-cascade era stay consistent too.
func (s *LedgerService) RenameCustomer(id uuid.UUID, brideName, groomName string) (*models.Customer, error) {
	if brideName == "" {
		return nil, validationErrorf("bride name is required")
	}

	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErrorf("customer %s not found", id)
		}
		return nil, err
	}

	oldBride := customer.BrideName
	oldGroom := customer.GroomName

	err := s.db.Transaction(func(tx *gorm.DB) error {
		customer.BrideName = brideName
		customer.GroomName = groomName
		if err := tx.Save(&customer).Error; err != nil {
			return err
		}

		if brideName != oldBride {
			if err := tx.Model(&models.Booking{}).Where("bride_name = ?", oldBride).
				Update("bride_name", brideName).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Payment{}).Where("bride_name = ?", oldBride).
				Update("bride_name", brideName).Error; err != nil {
				return err
			}
		}
		if groomName != oldGroom && oldGroom != "" {
			if err := tx.Model(&models.Booking{}).Where("groom_name = ?", oldGroom).
				Update("groom_name", groomName).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Payment{}).Where("groom_name = ?", oldGroom).
				Update("groom_name", groomName).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

// DeleteCustomer is blocked while any booking references the customer.
func (s *LedgerService) DeleteCustomer(id uuid.UUID) error {
	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErrorf("customer %s not found", id)
		}
		return err
	}

	var bookings int64
	if err := s.db.Model(&models.Booking{}).
		Where("customer_id = ?", id).Count(&bookings).Error; err != nil {
		return err
	}
	if bookings > 0 {
		return conflictErrorf("customer %s still has %d booking(s)", customer.BrideName, bookings)
	}

	return s.db.Delete(&customer).Error
}

// DeleteDress is blocked while any booking references the dress.
func (s *LedgerService) DeleteDress(id uuid.UUID) error {
	var dress models.Dress
	if err := s.db.First(&dress, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErrorf("dress %s not found", id)
		}
		return err
	}

	var bookings int64
	if err := s.db.Model(&models.Booking{}).
		Where("dress_id = ?", id).Count(&bookings).Error; err != nil {
		return err
	}
	if bookings > 0 {
		return conflictErrorf("dress %s is referenced by %d booking(s)", dress.Code, bookings)
	}

	return s.db.Delete(&dress).Error
}

func generateBookingCode(department string) string {
	return fmt.Sprintf("%s-%s-%s",
		models.DepartmentPrefix(department),
		time.Now().Format("20060102"),
		utils.GenerateRandomString(6))
}
