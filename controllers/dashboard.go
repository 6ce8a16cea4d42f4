package controllers

import (
	"fmt"
	"net/http"
	"time"

	"atelier-backend/config"
	"atelier-backend/models"
	"atelier-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalCustomers     int             `json:"totalCustomers"`
	TotalBookings      int             `json:"totalBookings"`
	MonthlyCollections float64         `json:"monthlyCollections"`
	TotalOutstanding   float64         `json:"totalOutstanding"`
	DressesOut         int             `json:"dressesOut"`
	UpcomingEvents     []UpcomingEvent `json:"upcomingEvents"`
	RecentPayments     []RecentPayment `json:"recentPayments"`
}

type UpcomingEvent struct {
	BrideName   string `json:"brideName"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"` // e.g. "Tomorrow", "3 days"
}

type RecentPayment struct {
	BrideName string  `json:"brideName"`
	Amount    float64 `json:"amount"`
	PaidOn    string  `json:"paidOn"` // e.g. "Today", "Yesterday"
}

func GetDashboardOverview(c *gin.Context) {
	var totalCustomers int64
	config.DB.Model(&models.Customer{}).Count(&totalCustomers)

	var totalBookings int64
	config.DB.Model(&models.Booking{}).Count(&totalBookings)

	// This month's collections
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var monthlyCollections float64
	config.DB.Model(&models.Payment{}).
		Where("paid_on >= ?", models.DateOf(firstOfMonth)).
		Select("COALESCE(SUM(amount), 0)").Scan(&monthlyCollections)

	var totalOutstanding float64
	config.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(remaining), 0)").Scan(&totalOutstanding)

	var dressesOut int64
	config.DB.Model(&models.Dress{}).
		Where("status <> ?", models.DressAvailable).Count(&dressesOut)

	// Events in the next 30 days
	today := models.Today()
	var upcoming []models.Booking
	config.DB.Where("event_date BETWEEN ? AND ?", today, today.AddDays(30)).
		Order("event_date").Limit(7).Find(&upcoming)

	upcomingEvents := make([]UpcomingEvent, 0, len(upcoming))
	for _, b := range upcoming {
		upcomingEvents = append(upcomingEvents, UpcomingEvent{
			BrideName:   b.BrideName,
			ServiceName: b.ServiceName,
			Date:        relativeDay(utils.DaysBetween(now, b.EventDate.Time())),
		})
	}

	var recent []models.Payment
	config.DB.Order("created_at DESC").Limit(5).Find(&recent)

	recentPayments := make([]RecentPayment, 0, len(recent))
	for _, p := range recent {
		amount, _ := p.Amount.Float64()
		recentPayments = append(recentPayments, RecentPayment{
			BrideName: p.BrideName,
			Amount:    amount,
			PaidOn:    relativeDay(utils.DaysBetween(now, p.PaidOn.Time())),
		})
	}

	c.JSON(http.StatusOK, DashboardOverview{
		TotalCustomers:     int(totalCustomers),
		TotalBookings:      int(totalBookings),
		MonthlyCollections: monthlyCollections,
		TotalOutstanding:   totalOutstanding,
		DressesOut:         int(dressesOut),
		UpcomingEvents:     upcomingEvents,
		RecentPayments:     recentPayments,
	})
}

// relativeDay renders a day offset as display text. Positive offsets are
// in the future ("Tomorrow"), negative in the past ("Yesterday").
func relativeDay(days int) string {
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 1:
		return fmt.Sprintf("%d days", days)
	default:
		return fmt.Sprintf("%d days ago", -days)
	}
}
