package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/logstore"
	"github.com/kuaforun/booking-backend/internal/middleware"
	"github.com/kuaforun/booking-backend/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type LogHandler struct {
	db         *gorm.DB
	dispatcher *logstore.Dispatcher

	// retentionDays is the sweep window used when the request body
	// omits daysToKeep.
	retentionDays int
}

func NewLogHandler(db *gorm.DB, dispatcher *logstore.Dispatcher, retentionDays int) *LogHandler {
	return &LogHandler{db: db, dispatcher: dispatcher, retentionDays: retentionDays}
}

// guard rejects customers; the log surface is internal.
func (h *LogHandler) guard(c *gin.Context) bool {
	if !middleware.UserRole(c).CanUseLogs() {
		httperr.Forbidden(c, "forbidden", "Log endpoints are internal.")
		return false
	}
	return true
}

// --------------------------------------------------
// Create
// --------------------------------------------------

type CreateLogRequest struct {
	Level         string         `json:"level" binding:"required,oneof=debug info warn error fatal"`
	Service       string         `json:"service" binding:"required"`
	Message       string         `json:"message" binding:"required"`
	Context       map[string]any `json:"context"`
	CorrelationID string         `json:"correlationId"`
	RequestID     string         `json:"requestId"`
}

// Create accepts the entry and returns immediately; persistence is
// best-effort behind the dispatcher and a lost write is never surfaced.
func (h *LogHandler) Create(c *gin.Context) {
	if !h.guard(c) {
		return
	}

	var req CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestDetails(c, "invalid_request", "Invalid log payload.", err.Error())
		return
	}

	h.dispatcher.Dispatch(logstore.Entry{
		TenantID:      middleware.TenantID(c),
		Level:         req.Level,
		Service:       req.Service,
		Message:       req.Message,
		Context:       req.Context,
		CorrelationID: req.CorrelationID,
		RequestID:     req.RequestID,
	})

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (h *LogHandler) List(c *gin.Context) {
	if !h.guard(c) {
		return
	}

	tenantID := middleware.TenantID(c)
	page, limit, offset := pageParams(c)

	q := h.db.
		Model(&models.LogRecord{}).
		Where("tenant_id = ?", tenantID)

	if level := c.Query("level"); level != "" {
		if !logstore.ValidLevel(level) {
			httperr.BadRequest(c, "invalid_level", "Level must be debug, info, warn, error or fatal.")
			return
		}
		q = q.Where("level = ?", level)
	}

	if service := c.Query("service"); service != "" {
		q = q.Where("service = ?", service)
	}

	if search := c.Query("search"); search != "" {
		q = q.Where("message ILIKE ?", "%"+search+"%")
	}

	from, to, err := parseTimeRange(c.Query("from"), c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "invalid_time_range", "from/to must be RFC3339 timestamps.")
		return
	}
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "log_count_failed", "Failed to count log records.")
		return
	}

	var logs []models.LogRecord
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "log_list_failed", "Failed to list log records.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}

// --------------------------------------------------
// Stats / aggregation
// --------------------------------------------------

type countRow struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

func (h *LogHandler) Stats(c *gin.Context) {
	if !h.guard(c) {
		return
	}

	tenantID := middleware.TenantID(c)

	var total int64
	if err := h.db.
		Model(&models.LogRecord{}).
		Where("tenant_id = ?", tenantID).
		Count(&total).Error; err != nil {

		httperr.Internal(c, "log_stats_failed", "Failed to compute log stats.")
		return
	}

	byLevel, err := h.groupCount(tenantID, "level")
	if err != nil {
		httperr.Internal(c, "log_stats_failed", "Failed to compute log stats.")
		return
	}

	byService, err := h.groupCount(tenantID, "service")
	if err != nil {
		httperr.Internal(c, "log_stats_failed", "Failed to compute log stats.")
		return
	}

	c.JSON(200, gin.H{
		"total":      total,
		"by_level":   byLevel,
		"by_service": byService,
	})
}

func (h *LogHandler) Aggregate(c *gin.Context) {
	if !h.guard(c) {
		return
	}

	tenantID := middleware.TenantID(c)

	var rows []countRow
	var err error

	switch c.Query("groupBy") {
	case "level":
		rows, err = h.groupCount(tenantID, "level")
	case "service":
		rows, err = h.groupCount(tenantID, "service")
	case "hour":
		err = h.db.
			Model(&models.LogRecord{}).
			Select("to_char(date_trunc('hour', created_at), 'YYYY-MM-DD HH24:00') AS key, COUNT(*) AS count").
			Where("tenant_id = ?", tenantID).
			Group("key").
			Order("key ASC").
			Scan(&rows).Error
	case "day":
		err = h.db.
			Model(&models.LogRecord{}).
			Select("to_char(date_trunc('day', created_at), 'YYYY-MM-DD') AS key, COUNT(*) AS count").
			Where("tenant_id = ?", tenantID).
			Group("key").
			Order("key ASC").
			Scan(&rows).Error
	default:
		httperr.BadRequest(c, "invalid_group_by", "groupBy must be level, service, hour or day.")
		return
	}

	if err != nil {
		httperr.Internal(c, "log_aggregate_failed", "Failed to aggregate log records.")
		return
	}

	if rows == nil {
		rows = []countRow{}
	}
	c.JSON(200, gin.H{"groups": rows})
}

func (h *LogHandler) groupCount(tenantID, column string) ([]countRow, error) {
	var rows []countRow
	err := h.db.
		Model(&models.LogRecord{}).
		Select(column + " AS key, COUNT(*) AS count").
		Where("tenant_id = ?", tenantID).
		Group(column).
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// --------------------------------------------------
// Retention
// --------------------------------------------------

type RetentionRequest struct {
	// DaysToKeep falls back to the configured retention window when
	// omitted.
	DaysToKeep int `json:"daysToKeep" binding:"omitempty,min=1"`

	// AllTenants widens the sweep beyond the request's tenant.
	AllTenants bool `json:"allTenants"`
}

// Retention deletes records strictly older than now - daysToKeep.
func (h *LogHandler) Retention(c *gin.Context) {
	if !h.guard(c) {
		return
	}

	var req RetentionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestDetails(c, "invalid_request", "Invalid retention payload.", err.Error())
		return
	}

	days := req.DaysToKeep
	if days == 0 {
		days = h.retentionDays
	}
	if days < 1 {
		httperr.BadRequest(c, "invalid_request", "daysToKeep must be at least 1.")
		return
	}

	cutoff := retentionCutoff(time.Now(), days)

	q := h.db.Where("created_at < ?", cutoff)
	if !req.AllTenants {
		q = q.Where("tenant_id = ?", middleware.TenantID(c))
	}

	res := q.Delete(&models.LogRecord{})
	if res.Error != nil {
		httperr.Internal(c, "log_retention_failed", "Failed to delete old log records.")
		return
	}

	c.JSON(200, gin.H{"deleted": res.RowsAffected})
}

// retentionCutoff is the instant before which records are swept:
// strictly older than now minus daysToKeep whole days.
func retentionCutoff(now time.Time, daysToKeep int) time.Time {
	return now.AddDate(0, 0, -daysToKeep)
}

// parseTimeRange validates the optional from/to listing filters. A
// malformed timestamp is rejected rather than silently dropped.
func parseTimeRange(fromStr, toStr string) (from, to *time.Time, err error) {
	if fromStr != "" {
		t, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if toStr != "" {
		t, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}
