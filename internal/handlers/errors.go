package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kuaforun/booking-backend/internal/httperr"
)

// messages keeps the human-readable side of each business code.
var messages = map[string]string{
	"invalid_date":              "Date must be YYYY-MM-DD.",
	"invalid_time":              "Time must be HH:MM.",
	"invalid_rating":            "Rating must be between 1 and 5.",
	"invalid_booking":           "Booking does not exist or does not match the comment.",
	"invalid_status":            "Unknown booking status.",
	"invalid_transition":        "Status transition not allowed.",
	"invalid_moderation_status": "Moderation status must be pending, approved or rejected.",
	"invalid_duration":          "Selected services have no duration.",
	"crosses_midnight":          "Booking must end on the same day.",
	"services_required":         "At least one service is required.",
	"empty_reply":               "Reply text must not be empty.",
	"missing_user":              "Caller identity could not be resolved.",
	"forbidden":                 "Role lacks permission for this action.",
	"shop_not_found":            "Shop not found.",
	"staff_not_found":           "Staff member not found.",
	"staff_inactive":            "Staff member is not active.",
	"service_not_found":         "One or more services not found.",
	"booking_not_found":         "Booking not found.",
	"comment_not_found":         "Comment not found.",
	"reply_not_found":           "Reply not found.",
	"time_conflict":             "Time range collides with an existing booking.",
	"duplicate_comment":         "A comment already exists for this shop or booking.",
	"duplicate_service":         "Service already attached to this booking.",
	"reply_exists":              "Reply already exists for this comment.",
}

var statuses = map[string]int{
	"invalid_date":              http.StatusBadRequest,
	"invalid_time":              http.StatusBadRequest,
	"invalid_rating":            http.StatusBadRequest,
	"invalid_booking":           http.StatusBadRequest,
	"invalid_status":            http.StatusBadRequest,
	"invalid_transition":        http.StatusBadRequest,
	"invalid_moderation_status": http.StatusBadRequest,
	"invalid_duration":          http.StatusBadRequest,
	"crosses_midnight":          http.StatusBadRequest,
	"services_required":         http.StatusBadRequest,
	"empty_reply":               http.StatusBadRequest,
	"missing_user":              http.StatusUnauthorized,
	"forbidden":                 http.StatusForbidden,
	"shop_not_found":            http.StatusNotFound,
	"staff_not_found":           http.StatusNotFound,
	"service_not_found":         http.StatusNotFound,
	"booking_not_found":         http.StatusNotFound,
	"comment_not_found":         http.StatusNotFound,
	"reply_not_found":           http.StatusNotFound,
	"staff_inactive":            http.StatusConflict,
	"time_conflict":             http.StatusConflict,
	"duplicate_comment":         http.StatusConflict,
	"duplicate_service":         http.StatusConflict,
	"reply_exists":              http.StatusConflict,
}

// writeError maps a usecase error onto the HTTP surface; anything that
// is not a business code becomes a 500.
func writeError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		status, ok := statuses[be.Code]
		if !ok {
			status = http.StatusInternalServerError
		}

		msg := messages[be.Code]
		if msg == "" {
			msg = "Request could not be processed."
		}

		if be.Detail != "" {
			c.JSON(status, httperr.HTTPError{Code: be.Code, Message: msg, Details: be.Detail})
			return
		}
		httperr.Write(c, status, be.Code, msg)
		return
	}

	httperr.Internal(c, "internal_error", "Unexpected error.")
}

func pageParams(c *gin.Context) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	return page, limit, (page - 1) * limit
}
