package services

import (
	"errors"
	"os"
	"strings"
	"time"

	"atelier-backend/models"
	"atelier-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// How far ahead of the event date reminders go out.
const reminderLeadDays = 7

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	utils.GetLogger().Info("Reminder scheduler started")
}

// SendDailyReminders looks one week ahead: bookings whose event date is
// exactly reminderLeadDays out get an upcoming-event reminder, and those
// of them with money still owed get a payment-due reminder as well.
func (s *ReminderService) SendDailyReminders() {
	log := utils.GetLogger()
	log.Info("Starting daily reminder processing...")

	var atelier models.Atelier
	if err := s.db.First(&atelier).Error; err != nil {
		log.Warn("No atelier profile configured; skipping reminders", zap.Error(err))
		return
	}

	target := models.Today().AddDays(reminderLeadDays)

	var bookings []models.Booking
	if err := s.db.Where("event_date = ?", target).Find(&bookings).Error; err != nil {
		log.Error("Failed to fetch upcoming bookings", zap.Error(err))
		return
	}

	for _, booking := range bookings {
		if atelier.EventReminders {
			s.sendReminder(&atelier, &booking, models.ReminderUpcomingEvent)
		}
		if atelier.PaymentReminders && booking.Remaining.IsPositive() {
			s.sendReminder(&atelier, &booking, models.ReminderPaymentDue)
		}
	}

	log.Info("Daily reminder processing completed", zap.Int("bookings", len(bookings)))
}

func (s *ReminderService) sendReminder(atelier *models.Atelier, booking *models.Booking, reminderType string) {
	log := utils.GetLogger()

	var template models.ReminderTemplate
	if err := s.db.Where("type = ? AND is_active = true", reminderType).
		First(&template).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("Failed to load reminder template", zap.String("type", reminderType), zap.Error(err))
		}
		return
	}

	var customer models.Customer
	if err := s.db.First(&customer, "id = ?", booking.CustomerID).Error; err != nil {
		log.Error("Failed to load customer for reminder",
			zap.String("booking", booking.Code), zap.Error(err))
		return
	}

	message := renderTemplate(template.Message, booking)

	// WhatsApp when the number is E.164 and the channel is enabled,
	// otherwise SMS.
	channel := "sms"
	to := customer.Phone1
	if atelier.WhatsAppNotifications && strings.HasPrefix(customer.Phone1, "+") {
		to = "whatsapp:" + customer.Phone1
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Warn("Failed to send reminder", zap.String("to", customer.Phone1), zap.Error(err))
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Info("Reminder sent", zap.String("to", customer.Phone1), zap.String("sid", *resp.Sid))
	}

	reminderLog := models.ReminderLog{
		CustomerID:   customer.ID,
		BookingID:    booking.ID,
		TemplateID:   template.ID,
		Type:         reminderType,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Error("Failed to log reminder", zap.String("booking", booking.Code), zap.Error(err))
	}
}

func renderTemplate(message string, booking *models.Booking) string {
	message = strings.ReplaceAll(message, "[BrideName]", booking.BrideName)
	message = strings.ReplaceAll(message, "[ServiceName]", booking.ServiceName)
	message = strings.ReplaceAll(message, "[EventDate]", booking.EventDate.String())
	message = strings.ReplaceAll(message, "[Remaining]", booking.Remaining.StringFixed(2))
	return message
}
