// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"atelier-backend/config"
	"atelier-backend/models"
	"atelier-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ReportController handles all reporting functions
type ReportController struct{}

// StatementRow is one line of the account statement: a booking with its
// collected and outstanding amounts.
type StatementRow struct {
	BookingCode string          `json:"bookingCode"`
	BrideName   string          `json:"brideName"`
	ServiceName string          `json:"serviceName"`
	EventDate   models.Date     `json:"eventDate"`
	Price       decimal.Decimal `json:"price"`
	Paid        decimal.Decimal `json:"paid"`
	Remaining   decimal.Decimal `json:"remaining"`
}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue   float64           `json:"currentMonthRevenue"`
	MonthGrowth           float64           `json:"monthGrowth"`
	CurrentQuarterRevenue float64           `json:"currentQuarterRevenue"`
	QuarterGrowth         float64           `json:"quarterGrowth"`
	CurrentYearRevenue    float64           `json:"currentYearRevenue"`
	YearGrowth            float64           `json:"yearGrowth"`
	TopServices           []ServiceSummary  `json:"topServices"`
	TopCustomers          []CustomerSummary `json:"topCustomers"`
	QuickStats            QuickStatistics   `json:"quickStats"`
}

type ServiceSummary struct {
	Name      string  `json:"name"`
	Count     int     `json:"count"`
	Collected float64 `json:"collected"`
}

type CustomerSummary struct {
	Name     string  `json:"name"`
	Payments int     `json:"payments"`
	Paid     float64 `json:"paid"`
}

type QuickStatistics struct {
	TotalCustomers   int     `json:"totalCustomers"`
	TotalBookings    int     `json:"totalBookings"`
	AvgBookingValue  float64 `json:"avgBookingValue"`
	TotalOutstanding float64 `json:"totalOutstanding"`
}

// GetStatements returns one row per booking with price, paid and
// remaining, optionally filtered by bride name. This is the ledger view
// the accountant works from.
func (rc *ReportController) GetStatements(c *gin.Context) {
	query := config.DB.Model(&models.Booking{})
	if name := c.Query("brideName"); name != "" {
		query = query.Where("bride_name = ?", name)
	}

	var bookings []models.Booking
	if err := query.Order("event_date").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	rows := make([]StatementRow, 0, len(bookings))
	totalPrice := decimal.Zero
	totalPaid := decimal.Zero
	totalRemaining := decimal.Zero
	for _, b := range bookings {
		rows = append(rows, StatementRow{
			BookingCode: b.Code,
			BrideName:   b.BrideName,
			ServiceName: b.ServiceName,
			EventDate:   b.EventDate,
			Price:       b.Price,
			Paid:        b.Paid,
			Remaining:   b.Remaining,
		})
		totalPrice = totalPrice.Add(b.Price)
		totalPaid = totalPaid.Add(b.Paid)
		totalRemaining = totalRemaining.Add(b.Remaining)
	}

	c.JSON(http.StatusOK, gin.H{
		"rows":           rows,
		"totalPrice":     totalPrice,
		"totalPaid":      totalPaid,
		"totalRemaining": totalRemaining,
	})
}

// GetOutstanding lists bookings that still owe money, largest balance first
func (rc *ReportController) GetOutstanding(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.Where("remaining > 0").
		Order("remaining DESC").Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve outstanding bookings")
		return
	}

	rows := make([]StatementRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, StatementRow{
			BookingCode: b.Code,
			BrideName:   b.BrideName,
			ServiceName: b.ServiceName,
			EventDate:   b.EventDate,
			Price:       b.Price,
			Paid:        b.Paid,
			Remaining:   b.Remaining,
		})
	}

	c.JSON(http.StatusOK, rows)
}

// GetReportAnalytics returns the revenue summary. Revenue is money
// actually collected (payment amounts), not booked prices.
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	now := time.Now()
	currentYear, currentMonth, _ := now.Date()
	currentLocation := now.Location()

	firstOfMonth := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, currentLocation)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	currentMonthRevenue, err := rc.getCollected(firstOfMonth, lastOfMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly revenue")
		return
	}

	lastMonthRevenue, err := rc.getCollected(
		firstOfMonth.AddDate(0, -1, 0),
		lastOfMonth.AddDate(0, -1, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last month revenue")
		return
	}

	currentQuarterRevenue, err := rc.getCollected(rc.getQuarterStart(now), rc.getQuarterEnd(now))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quarterly revenue")
		return
	}

	lastQuarterRevenue, err := rc.getCollected(
		rc.getQuarterStart(now).AddDate(0, -3, 0),
		rc.getQuarterEnd(now).AddDate(0, -3, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last quarter revenue")
		return
	}

	currentYearRevenue, err := rc.getCollected(
		time.Date(currentYear, 1, 1, 0, 0, 0, 0, currentLocation),
		time.Date(currentYear, 12, 31, 0, 0, 0, 0, currentLocation))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get yearly revenue")
		return
	}

	lastYearRevenue, err := rc.getCollected(
		time.Date(currentYear-1, 1, 1, 0, 0, 0, 0, currentLocation),
		time.Date(currentYear-1, 12, 31, 0, 0, 0, 0, currentLocation))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last year revenue")
		return
	}

	topServices, err := rc.getTopServices(firstOfMonth, lastOfMonth, 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top services")
		return
	}

	topCustomers, err := rc.getTopCustomers(firstOfMonth, lastOfMonth, 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top customers")
		return
	}

	quickStats, err := rc.getQuickStatistics()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quick statistics")
		return
	}

	summary := AnalyticsSummary{
		CurrentMonthRevenue:   currentMonthRevenue,
		MonthGrowth:           rc.calculateGrowthPercentage(currentMonthRevenue, lastMonthRevenue),
		CurrentQuarterRevenue: currentQuarterRevenue,
		QuarterGrowth:         rc.calculateGrowthPercentage(currentQuarterRevenue, lastQuarterRevenue),
		CurrentYearRevenue:    currentYearRevenue,
		YearGrowth:            rc.calculateGrowthPercentage(currentYearRevenue, lastYearRevenue),
		TopServices:           topServices,
		TopCustomers:          topCustomers,
		QuickStats:            quickStats,
	}

	c.JSON(http.StatusOK, summary)
}

// Helper functions for reports

func (rc *ReportController) getCollected(start, end time.Time) (float64, error) {
	var total float64
	err := config.DB.Model(&models.Payment{}).
		Where("paid_on BETWEEN ? AND ?", models.DateOf(start), models.DateOf(end)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (rc *ReportController) getQuarterStart(date time.Time) time.Time {
	quarter := (int(date.Month())-1)/3 + 1
	startMonth := time.Month((quarter-1)*3 + 1)
	return time.Date(date.Year(), startMonth, 1, 0, 0, 0, 0, date.Location())
}

func (rc *ReportController) getQuarterEnd(date time.Time) time.Time {
	return rc.getQuarterStart(date).AddDate(0, 3, -1)
}

func (rc *ReportController) calculateGrowthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}

func (rc *ReportController) getTopServices(start, end time.Time, limit int) ([]ServiceSummary, error) {
	var services []ServiceSummary

	err := config.DB.Table("payments").
		Select("bookings.service_name as name, COUNT(payments.id) as count, SUM(payments.amount) as collected").
		Joins("JOIN bookings ON bookings.id = payments.booking_id").
		Where("payments.paid_on BETWEEN ? AND ? AND payments.deleted_at IS NULL AND bookings.deleted_at IS NULL",
			models.DateOf(start), models.DateOf(end)).
		Group("bookings.service_name").
		Order("collected DESC").
		Limit(limit).
		Scan(&services).Error

	return services, err
}

func (rc *ReportController) getTopCustomers(start, end time.Time, limit int) ([]CustomerSummary, error) {
	var customers []CustomerSummary

	err := config.DB.Table("payments").
		Select("bride_name as name, COUNT(id) as payments, SUM(amount) as paid").
		Where("paid_on BETWEEN ? AND ? AND deleted_at IS NULL",
			models.DateOf(start), models.DateOf(end)).
		Group("bride_name").
		Order("paid DESC").
		Limit(limit).
		Scan(&customers).Error

	return customers, err
}

func (rc *ReportController) getQuickStatistics() (QuickStatistics, error) {
	var stats QuickStatistics

	var totalCustomers int64
	if err := config.DB.Model(&models.Customer{}).Count(&totalCustomers).Error; err != nil {
		return stats, err
	}
	stats.TotalCustomers = int(totalCustomers)

	var totalBookings int64
	if err := config.DB.Model(&models.Booking{}).Count(&totalBookings).Error; err != nil {
		return stats, err
	}
	stats.TotalBookings = int(totalBookings)

	if totalBookings > 0 {
		var totalBooked float64
		if err := config.DB.Model(&models.Booking{}).
			Select("COALESCE(SUM(price), 0)").Scan(&totalBooked).Error; err != nil {
			return stats, err
		}
		stats.AvgBookingValue = totalBooked / float64(totalBookings)
	}

	var outstanding float64
	if err := config.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(remaining), 0)").Scan(&outstanding).Error; err != nil {
		return stats, err
	}
	stats.TotalOutstanding = outstanding

	return stats, nil
}
