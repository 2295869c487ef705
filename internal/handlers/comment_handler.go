package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/httpresp"
	"github.com/kuaforun/booking-backend/internal/middleware"
	ucComment "github.com/kuaforun/booking-backend/internal/usecase/comment"
)

type CommentHandler struct {
	createUC *ucComment.CreateComment
	updateUC *ucComment.UpdateComment
	deleteUC *ucComment.DeleteComment
	listUC   *ucComment.ListComments
}

func NewCommentHandler(
	createUC *ucComment.CreateComment,
	updateUC *ucComment.UpdateComment,
	deleteUC *ucComment.DeleteComment,
	listUC *ucComment.ListComments,
) *CommentHandler {
	return &CommentHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// --------------------------------------------------
// List / create
// --------------------------------------------------

func (h *CommentHandler) List(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	var shopID *uuid.UUID
	if raw := c.Query("shopId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_shop_id", "shopId must be a UUID.")
			return
		}
		shopID = &id
	}

	comments, err := h.listUC.Execute(c.Request.Context(), tenantID, shopID)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, comments)
}

type CreateCommentRequest struct {
	BarberShopID uuid.UUID  `json:"barberShopId" binding:"required"`
	Rating       int        `json:"rating" binding:"required,min=1,max=5"`
	Description  string     `json:"description"`
	BookingID    *uuid.UUID `json:"bookingId"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	authorID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "missing_user", "Caller identity could not be resolved.")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestDetails(c, "invalid_request", "Invalid comment payload.", err.Error())
		return
	}

	cm, err := h.createUC.Execute(c.Request.Context(), ucComment.CreateCommentInput{
		TenantID:    tenantID,
		AuthorID:    authorID,
		ShopID:      req.BarberShopID,
		Rating:      req.Rating,
		Description: req.Description,
		BookingID:   req.BookingID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cm)
}

// --------------------------------------------------
// Update / delete
// --------------------------------------------------

type UpdateCommentRequest struct {
	Rating      *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Description *string `json:"description"`
}

func (h *CommentHandler) Update(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	callerID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "missing_user", "Caller identity could not be resolved.")
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_comment_id", "Comment id must be a UUID.")
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestDetails(c, "invalid_request", "Invalid comment payload.", err.Error())
		return
	}

	cm, err := h.updateUC.Execute(c.Request.Context(), ucComment.UpdateCommentInput{
		TenantID:    tenantID,
		CommentID:   commentID,
		CallerID:    callerID,
		CallerRole:  middleware.UserRole(c),
		Rating:      req.Rating,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, cm)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	callerID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "missing_user", "Caller identity could not be resolved.")
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_comment_id", "Comment id must be a UUID.")
		return
	}

	if err := h.deleteUC.Execute(
		c.Request.Context(), tenantID, commentID, callerID, middleware.UserRole(c),
	); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
