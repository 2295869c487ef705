package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/httpresp"
	"github.com/kuaforun/booking-backend/internal/middleware"
	ucComment "github.com/kuaforun/booking-backend/internal/usecase/comment"
)

type ReplyHandler struct {
	upsertUC   *ucComment.UpsertReply
	getUC      *ucComment.GetReply
	historyUC  *ucComment.GetReplyHistory
	moderateUC *ucComment.ModerateReply
}

func NewReplyHandler(
	upsertUC *ucComment.UpsertReply,
	getUC *ucComment.GetReply,
	historyUC *ucComment.GetReplyHistory,
	moderateUC *ucComment.ModerateReply,
) *ReplyHandler {
	return &ReplyHandler{
		upsertUC:   upsertUC,
		getUC:      getUC,
		historyUC:  historyUC,
		moderateUC: moderateUC,
	}
}

// --------------------------------------------------
// Create-or-replace
// --------------------------------------------------

type ReplyRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *ReplyHandler) Upsert(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	if !middleware.UserRole(c).CanReply() {
		httperr.Forbidden(c, "reply_role_required", "Only barbers may reply to comments.")
		return
	}

	authorID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "missing_user", "Caller identity could not be resolved.")
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_comment_id", "Comment id must be a UUID.")
		return
	}

	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestDetails(c, "invalid_request", "Invalid reply payload.", err.Error())
		return
	}

	reply, err := h.upsertUC.Execute(
		c.Request.Context(), tenantID, commentID, authorID, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, reply)
}

// --------------------------------------------------
// Read (visibility-filtered)
// --------------------------------------------------

func (h *ReplyHandler) Get(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_comment_id", "Comment id must be a UUID.")
		return
	}

	view, err := h.getUC.Execute(
		c.Request.Context(), tenantID, commentID, middleware.UserRole(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, view)
}

func (h *ReplyHandler) History(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	if !middleware.UserRole(c).CanSeeAnyReply() {
		httperr.Forbidden(c, "forbidden", "Role lacks permission for this action.")
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_comment_id", "Comment id must be a UUID.")
		return
	}

	rows, err := h.historyUC.Execute(c.Request.Context(), tenantID, commentID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, rows)
}

// --------------------------------------------------
// Moderation
// --------------------------------------------------

type ModerateRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

func (h *ReplyHandler) Moderate(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	if !middleware.UserRole(c).CanModerate() {
		httperr.Forbidden(c, "forbidden", "Only managers and owners moderate replies.")
		return
	}

	moderatorID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "missing_user", "Caller identity could not be resolved.")
		return
	}

	replyID, err := uuid.Parse(c.Param("replyId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_reply_id", "Reply id must be a UUID.")
		return
	}

	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestDetails(c, "invalid_request", "Invalid moderation payload.", err.Error())
		return
	}

	m, err := h.moderateUC.Execute(c.Request.Context(), ucComment.ModerateReplyInput{
		TenantID:    tenantID,
		ReplyID:     replyID,
		ModeratorID: moderatorID,
		Status:      req.Status,
		Reason:      req.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, m)
}
