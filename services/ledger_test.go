package services

import (
	"testing"

	"atelier-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestLedger(t *testing.T) (*LedgerService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see a different in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Service{},
		&models.Dress{},
		&models.Booking{},
		&models.Payment{},
	))

	return NewLedgerService(db), db
}

func seedCustomer(t *testing.T, db *gorm.DB, bride, groom string) *models.Customer {
	t.Helper()
	customer := &models.Customer{
		RegisteredOn: models.Today(),
		BrideName:    bride,
		GroomName:    groom,
		Phone1:       "+201001234567",
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedService(t *testing.T, db *gorm.DB, department, name string) *models.Service {
	t.Helper()
	service := &models.Service{
		Department:     department,
		Name:           name,
		SuggestedPrice: decimal.NewFromInt(3000),
	}
	require.NoError(t, db.Create(service).Error)
	return service
}

func seedDress(t *testing.T, db *gorm.DB, code string) *models.Dress {
	t.Helper()
	dress := &models.Dress{Code: code, Status: models.DressAvailable}
	require.NoError(t, db.Create(dress).Error)
	return dress
}

func money(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func assertMoney(t *testing.T, expected int64, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(money(expected)),
		"expected %d, got %s", expected, actual)
}

// assertBalanced checks the core invariant: remaining == price - paid
// and 0 <= paid <= price.
func assertBalanced(t *testing.T, db *gorm.DB, bookingID uuid.UUID) models.Booking {
	t.Helper()
	var booking models.Booking
	require.NoError(t, db.First(&booking, "id = ?", bookingID).Error)
	assert.True(t, booking.Remaining.Equal(booking.Price.Sub(booking.Paid)),
		"remaining %s != price %s - paid %s", booking.Remaining, booking.Price, booking.Paid)
	assert.False(t, booking.Paid.IsNegative(), "paid went negative: %s", booking.Paid)
	assert.False(t, booking.Paid.GreaterThan(booking.Price),
		"paid %s exceeds price %s", booking.Paid, booking.Price)
	return booking
}

func TestCreateBookingWithDeposit(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Mona", "Ahmed")
	service := seedService(t, db, models.DeptMakeup, "Bridal makeup")

	booking, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: customer.ID,
		Department: models.DeptMakeup,
		ServiceID:  service.ID,
		EventDate:  models.NewDate(2026, 10, 15),
		Price:      money(5000),
		Deposit:    money(1000),
	})
	require.NoError(t, err)

	assertMoney(t, 1000, booking.Paid)
	assertMoney(t, 4000, booking.Remaining)
	assert.Equal(t, "Mona", booking.BrideName)
	assert.Equal(t, "Bridal makeup", booking.ServiceName)
	assert.Contains(t, booking.Code, "MK-")
	assertBalanced(t, db, booking.ID)

	// Exactly one companion payment marked as the deposit.
	var payments []models.Payment
	require.NoError(t, db.Where("booking_id = ?", booking.ID).Find(&payments).Error)
	require.Len(t, payments, 1)
	assertMoney(t, 1000, payments[0].Amount)
	assertMoney(t, 4000, payments[0].RemainingAfter)
	assert.Equal(t, DepositNotes, payments[0].Notes)
	assert.Equal(t, "Mona", payments[0].BrideName)
}

func TestCreateBookingWithoutDeposit(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Sara", "")
	service := seedService(t, db, models.DeptHair, "Hair session")

	booking, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: customer.ID,
		Department: models.DeptHair,
		ServiceID:  service.ID,
		EventDate:  models.NewDate(2026, 11, 1),
		Price:      money(800),
	})
	require.NoError(t, err)

	assertMoney(t, 0, booking.Paid)
	assertMoney(t, 800, booking.Remaining)

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).
		Where("booking_id = ?", booking.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateBookingValidation(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Mona", "Ahmed")
	service := seedService(t, db, models.DeptMakeup, "Bridal makeup")

	eventDate := models.NewDate(2026, 10, 15)

	cases := []struct {
		name  string
		input CreateBookingInput
	}{
		{"missing customer", CreateBookingInput{
			Department: models.DeptMakeup, ServiceID: service.ID,
			EventDate: eventDate, Price: money(5000),
		}},
		{"zero price", CreateBookingInput{
			CustomerID: customer.ID, Department: models.DeptMakeup,
			ServiceID: service.ID, EventDate: eventDate, Price: money(0),
		}},
		{"negative price", CreateBookingInput{
			CustomerID: customer.ID, Department: models.DeptMakeup,
			ServiceID: service.ID, EventDate: eventDate, Price: money(-100),
		}},
		{"negative deposit", CreateBookingInput{
			CustomerID: customer.ID, Department: models.DeptMakeup,
			ServiceID: service.ID, EventDate: eventDate,
			Price: money(5000), Deposit: money(-1),
		}},
		{"deposit above price", CreateBookingInput{
			CustomerID: customer.ID, Department: models.DeptMakeup,
			ServiceID: service.ID, EventDate: eventDate,
			Price: money(5000), Deposit: money(5001),
		}},
		{"unknown department", CreateBookingInput{
			CustomerID: customer.ID, Department: "catering",
			ServiceID: service.ID, EventDate: eventDate, Price: money(5000),
		}},
		{"dress booking without dress", CreateBookingInput{
			CustomerID: customer.ID, Department: models.DeptDresses,
			ServiceID: service.ID, EventDate: eventDate, Price: money(5000),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ledger.CreateBooking(tc.input)
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}

	// Nothing was written by the rejected attempts.
	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateBookingUnknownReferences(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Mona", "Ahmed")
	service := seedService(t, db, models.DeptMakeup, "Bridal makeup")

	_, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: uuid.New(),
		Department: models.DeptMakeup,
		ServiceID:  service.ID,
		EventDate:  models.NewDate(2026, 10, 15),
		Price:      money(5000),
	})
	assert.True(t, IsNotFound(err))

	_, err = ledger.CreateBooking(CreateBookingInput{
		CustomerID: customer.ID,
		Department: models.DeptMakeup,
		ServiceID:  uuid.New(),
		EventDate:  models.NewDate(2026, 10, 15),
		Price:      money(5000),
	})
	assert.True(t, IsNotFound(err))
}

func TestDressDoubleBookingRejected(t *testing.T) {
	ledger, db := newTestLedger(t)
	mona := seedCustomer(t, db, "Mona", "Ahmed")
	sara := seedCustomer(t, db, "Sara", "")
	service := seedService(t, db, models.DeptDresses, "Wedding dress rental")
	dress := seedDress(t, db, "D-100")

	date := models.NewDate(2026, 10, 15)

	first, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: mona.ID,
		Department: models.DeptDresses,
		ServiceID:  service.ID,
		DressID:    &dress.ID,
		EventDate:  date,
		Price:      money(7000),
	})
	require.NoError(t, err)
	assert.Contains(t, first.Code, "DR-")

	// The dress is marked out once booked.
	var updated models.Dress
	require.NoError(t, db.First(&updated, "id = ?", dress.ID).Error)
	assert.Equal(t, models.DressBooked, updated.Status)

	// Same dress, same event date: rejected, nothing written.
	_, err = ledger.CreateBooking(CreateBookingInput{
		CustomerID: sara.ID,
		Department: models.DeptDresses,
		ServiceID:  service.ID,
		DressID:    &dress.ID,
		EventDate:  date,
		Price:      money(7000),
	})
	assert.True(t, IsConflict(err), "expected conflict, got %v", err)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// A different date is fine.
	_, err = ledger.CreateBooking(CreateBookingInput{
		CustomerID: sara.ID,
		Department: models.DeptDresses,
		ServiceID:  service.ID,
		DressID:    &dress.ID,
		EventDate:  date.AddDays(1),
		Price:      money(7000),
	})
	assert.NoError(t, err)
}

func TestRecordPaymentScenario(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Mona", "Ahmed")
	service := seedService(t, db, models.DeptPhotography, "Wedding shoot")

	booking, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: customer.ID,
		Department: models.DeptPhotography,
		ServiceID:  service.ID,
		EventDate:  models.NewDate(2026, 12, 1),
		Price:      money(5000),
		Deposit:    money(1000),
	})
	require.NoError(t, err)

	payment, err := ledger.RecordPayment(booking.ID, money(4000), models.Today(), "")
	require.NoError(t, err)
	assertMoney(t, 4000, payment.Amount)
	assertMoney(t, 0, payment.RemainingAfter)

	settled := assertBalanced(t, db, booking.ID)
	assertMoney(t, 5000, settled.Paid)
	assertMoney(t, 0, settled.Remaining)

	// Two payments, summing to the paid amount.
	var payments []models.Payment
	require.NoError(t, db.Where("booking_id = ?", booking.ID).Find(&payments).Error)
	require.Len(t, payments, 2)
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	assert.True(t, sum.Equal(settled.Paid))

	// One more pound is an overpayment: rejected, state unchanged.
	_, err = ledger.RecordPayment(booking.ID, money(1), models.Today(), "")
	assert.True(t, IsConflict(err), "expected conflict, got %v", err)

	unchanged := assertBalanced(t, db, booking.ID)
	assertMoney(t, 5000, unchanged.Paid)
	assertMoney(t, 0, unchanged.Remaining)

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).
		Where("booking_id = ?", booking.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRecordPaymentValidation(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Mona", "Ahmed")
	service := seedService(t, db, models.DeptSkincare, "Skincare program")

	booking, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: customer.ID,
		Department: models.DeptSkincare,
		ServiceID:  service.ID,
		EventDate:  models.NewDate(2026, 9, 20),
		Price:      money(2000),
	})
	require.NoError(t, err)

	_, err = ledger.RecordPayment(uuid.New(), money(100), models.Today(), "")
	assert.True(t, IsNotFound(err))

	_, err = ledger.RecordPayment(booking.ID, money(0), models.Today(), "")
	assert.True(t, IsValidation(err))

	_, err = ledger.RecordPayment(booking.ID, money(-50), models.Today(), "")
	assert.True(t, IsValidation(err))

	assertBalanced(t, db, booking.ID)
}

func TestEditedRemainingIsAuthoritative(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Mona", "Ahmed")
	service := seedService(t, db, models.DeptMakeup, "Bridal makeup")

	booking, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: customer.ID,
		Department: models.DeptMakeup,
		ServiceID:  service.ID,
		EventDate:  models.NewDate(2026, 10, 15),
		Price:      money(5000),
		Deposit:    money(4000),
	})
	require.NoError(t, err)

	// Raising the price reopens headroom; payments are judged against
	// the stored remaining, not re-derived from history.
	newPrice := money(6000)
	_, err = ledger.UpdateBooking(booking.ID, UpdateBookingInput{Price: &newPrice})
	require.NoError(t, err)

	_, err = ledger.RecordPayment(booking.ID, money(2000), models.Today(), "")
	require.NoError(t, err)

	settled := assertBalanced(t, db, booking.ID)
	assertMoney(t, 6000, settled.Paid)
	assertMoney(t, 0, settled.Remaining)
}

func TestUpdateBookingRecomputesRemaining(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Mona", "Ahmed")
	service := seedService(t, db, models.DeptMakeup, "Bridal makeup")

	booking, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: customer.ID,
		Department: models.DeptMakeup,
		ServiceID:  service.ID,
		EventDate:  models.NewDate(2026, 10, 15),
		Price:      money(5000),
		Deposit:    money(1000),
	})
	require.NoError(t, err)

	newPrice := money(4500)
	updated, err := ledger.UpdateBooking(booking.ID, UpdateBookingInput{Price: &newPrice})
	require.NoError(t, err)
	assertMoney(t, 1000, updated.Paid)
	assertMoney(t, 3500, updated.Remaining)
	assertBalanced(t, db, booking.ID)

	// The payment history is left alone.
	var payments []models.Payment
	require.NoError(t, db.Where("booking_id = ?", booking.ID).Find(&payments).Error)
	require.Len(t, payments, 1)
	assertMoney(t, 1000, payments[0].Amount)
	assertMoney(t, 4000, payments[0].RemainingAfter)

	// The price cannot drop below what was already collected.
	tooLow := money(900)
	_, err = ledger.UpdateBooking(booking.ID, UpdateBookingInput{Price: &tooLow})
	assert.True(t, IsValidation(err))

	zero := money(0)
	_, err = ledger.UpdateBooking(booking.ID, UpdateBookingInput{Price: &zero})
	assert.True(t, IsValidation(err))

	_, err = ledger.UpdateBooking(uuid.New(), UpdateBookingInput{Price: &newPrice})
	assert.True(t, IsNotFound(err))
}

func TestUpdateBookingSkipsDressConflictCheck(t *testing.T) {
	ledger, db := newTestLedger(t)
	mona := seedCustomer(t, db, "Mona", "Ahmed")
	sara := seedCustomer(t, db, "Sara", "")
	service := seedService(t, db, models.DeptDresses, "Wedding dress rental")
	dress := seedDress(t, db, "D-100")

	date := models.NewDate(2026, 10, 15)

	_, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: mona.ID,
		Department: models.DeptDresses,
		ServiceID:  service.ID,
		DressID:    &dress.ID,
		EventDate:  date,
		Price:      money(7000),
	})
	require.NoError(t, err)

	other, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: sara.ID,
		Department: models.DeptDresses,
		ServiceID:  service.ID,
		DressID:    &dress.ID,
		EventDate:  date.AddDays(5),
		Price:      money(7000),
	})
	require.NoError(t, err)

	// Moving the second booking onto the taken date is allowed: only the
	// create path enforces the conflict rule.
	moved, err := ledger.UpdateBooking(other.ID, UpdateBookingInput{EventDate: &date})
	require.NoError(t, err)
	assert.True(t, moved.EventDate.Equal(date))
}

func TestDeleteBookingBlockedByPayments(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Mona", "Ahmed")
	service := seedService(t, db, models.DeptDresses, "Wedding dress rental")
	dress := seedDress(t, db, "D-200")

	booking, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: customer.ID,
		Department: models.DeptDresses,
		ServiceID:  service.ID,
		DressID:    &dress.ID,
		EventDate:  models.NewDate(2026, 10, 15),
		Price:      money(7000),
		Deposit:    money(2000),
	})
	require.NoError(t, err)

	err = ledger.DeleteBooking(booking.ID)
	assert.True(t, IsConflict(err), "expected conflict, got %v", err)

	// Delete the payment first, then the booking goes through.
	var payment models.Payment
	require.NoError(t, db.First(&payment, "booking_id = ?", booking.ID).Error)
	require.NoError(t, ledger.DeletePayment(payment.ID))
	require.NoError(t, ledger.DeleteBooking(booking.ID))

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)

	// The dress is released.
	var updated models.Dress
	require.NoError(t, db.First(&updated, "id = ?", dress.ID).Error)
	assert.Equal(t, models.DressAvailable, updated.Status)

	err = ledger.DeleteBooking(booking.ID)
	assert.True(t, IsNotFound(err))
}

func TestDeletePaymentRestoresBalance(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Mona", "Ahmed")
	service := seedService(t, db, models.DeptMakeup, "Bridal makeup")

	booking, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: customer.ID,
		Department: models.DeptMakeup,
		ServiceID:  service.ID,
		EventDate:  models.NewDate(2026, 10, 15),
		Price:      money(5000),
		Deposit:    money(1000),
	})
	require.NoError(t, err)

	second, err := ledger.RecordPayment(booking.ID, money(1500), models.Today(), "")
	require.NoError(t, err)

	require.NoError(t, ledger.DeletePayment(second.ID))
	afterFirst := assertBalanced(t, db, booking.ID)
	assertMoney(t, 1000, afterFirst.Paid)
	assertMoney(t, 4000, afterFirst.Remaining)

	// Deleting the last payment restores the untouched booking.
	var deposit models.Payment
	require.NoError(t, db.First(&deposit, "booking_id = ?", booking.ID).Error)
	require.NoError(t, ledger.DeletePayment(deposit.ID))

	restored := assertBalanced(t, db, booking.ID)
	assertMoney(t, 0, restored.Paid)
	assertMoney(t, 5000, restored.Remaining)

	err = ledger.DeletePayment(deposit.ID)
	assert.True(t, IsNotFound(err))
}

func TestUpdatePaymentLeavesBookingAlone(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Mona", "Ahmed")
	service := seedService(t, db, models.DeptMakeup, "Bridal makeup")

	booking, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: customer.ID,
		Department: models.DeptMakeup,
		ServiceID:  service.ID,
		EventDate:  models.NewDate(2026, 10, 15),
		Price:      money(5000),
		Deposit:    money(1000),
	})
	require.NoError(t, err)

	var payment models.Payment
	require.NoError(t, db.First(&payment, "booking_id = ?", booking.ID).Error)

	newAmount := money(1200)
	newNotes := "corrected receipt"
	updated, err := ledger.UpdatePayment(payment.ID, UpdatePaymentInput{
		Amount: &newAmount,
		Notes:  &newNotes,
	})
	require.NoError(t, err)
	assertMoney(t, 1200, updated.Amount)
	assert.Equal(t, "corrected receipt", updated.Notes)

	// The booking balance is deliberately untouched by payment edits.
	var after models.Booking
	require.NoError(t, db.First(&after, "id = ?", booking.ID).Error)
	assertMoney(t, 1000, after.Paid)
	assertMoney(t, 4000, after.Remaining)

	zero := money(0)
	_, err = ledger.UpdatePayment(payment.ID, UpdatePaymentInput{Amount: &zero})
	assert.True(t, IsValidation(err))

	_, err = ledger.UpdatePayment(uuid.New(), UpdatePaymentInput{Notes: &newNotes})
	assert.True(t, IsNotFound(err))
}

func TestRenameCustomerCascade(t *testing.T) {
	ledger, db := newTestLedger(t)
	mona := seedCustomer(t, db, "Mona", "Ahmed")
	sara := seedCustomer(t, db, "Sara", "Hassan")
	service := seedService(t, db, models.DeptMakeup, "Bridal makeup")

	for _, customer := range []*models.Customer{mona, sara} {
		_, err := ledger.CreateBooking(CreateBookingInput{
			CustomerID: customer.ID,
			Department: models.DeptMakeup,
			ServiceID:  service.ID,
			EventDate:  models.NewDate(2026, 10, 15),
			Price:      money(5000),
			Deposit:    money(1000),
		})
		require.NoError(t, err)
	}

	renamed, err := ledger.RenameCustomer(mona.ID, "Mona Adel", "Ahmed")
	require.NoError(t, err)
	assert.Equal(t, "Mona Adel", renamed.BrideName)

	// Every row that carried the old name follows; everyone else is
	// untouched.
	var monaBookings, saraBookings int64
	require.NoError(t, db.Model(&models.Booking{}).
		Where("bride_name = ?", "Mona Adel").Count(&monaBookings).Error)
	require.NoError(t, db.Model(&models.Booking{}).
		Where("bride_name = ?", "Sara").Count(&saraBookings).Error)
	assert.EqualValues(t, 1, monaBookings)
	assert.EqualValues(t, 1, saraBookings)

	var stale int64
	require.NoError(t, db.Model(&models.Booking{}).
		Where("bride_name = ?", "Mona").Count(&stale).Error)
	assert.Zero(t, stale)
	require.NoError(t, db.Model(&models.Payment{}).
		Where("bride_name = ?", "Mona").Count(&stale).Error)
	assert.Zero(t, stale)

	var monaPayments int64
	require.NoError(t, db.Model(&models.Payment{}).
		Where("bride_name = ?", "Mona Adel").Count(&monaPayments).Error)
	assert.EqualValues(t, 1, monaPayments)

	_, err = ledger.RenameCustomer(mona.ID, "", "Ahmed")
	assert.True(t, IsValidation(err))

	_, err = ledger.RenameCustomer(uuid.New(), "Nour", "")
	assert.True(t, IsNotFound(err))
}

func TestDeleteCustomerBlockedByBookings(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Mona", "Ahmed")
	service := seedService(t, db, models.DeptMakeup, "Bridal makeup")

	booking, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: customer.ID,
		Department: models.DeptMakeup,
		ServiceID:  service.ID,
		EventDate:  models.NewDate(2026, 10, 15),
		Price:      money(5000),
	})
	require.NoError(t, err)

	err = ledger.DeleteCustomer(customer.ID)
	assert.True(t, IsConflict(err), "expected conflict, got %v", err)

	require.NoError(t, ledger.DeleteBooking(booking.ID))
	require.NoError(t, ledger.DeleteCustomer(customer.ID))

	err = ledger.DeleteCustomer(customer.ID)
	assert.True(t, IsNotFound(err))
}

func TestDeleteDressBlockedByBookings(t *testing.T) {
	ledger, db := newTestLedger(t)
	customer := seedCustomer(t, db, "Mona", "Ahmed")
	service := seedService(t, db, models.DeptDresses, "Wedding dress rental")
	dress := seedDress(t, db, "D-300")

	booking, err := ledger.CreateBooking(CreateBookingInput{
		CustomerID: customer.ID,
		Department: models.DeptDresses,
		ServiceID:  service.ID,
		DressID:    &dress.ID,
		EventDate:  models.NewDate(2026, 10, 15),
		Price:      money(7000),
	})
	require.NoError(t, err)

	err = ledger.DeleteDress(dress.ID)
	assert.True(t, IsConflict(err), "expected conflict, got %v", err)

	require.NoError(t, ledger.DeleteBooking(booking.ID))
	require.NoError(t, ledger.DeleteDress(dress.ID))

	err = ledger.DeleteDress(dress.ID)
	assert.True(t, IsNotFound(err))
}
