package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kuaforun/booking-backend/internal/cache"
	"github.com/kuaforun/booking-backend/internal/config"
	"github.com/kuaforun/booking-backend/internal/handlers"
	infraRepo "github.com/kuaforun/booking-backend/internal/infra/repository"
	"github.com/kuaforun/booking-backend/internal/logstore"
	"github.com/kuaforun/booking-backend/internal/middleware"
	ucBooking "github.com/kuaforun/booking-backend/internal/usecase/booking"
	ucComment "github.com/kuaforun/booking-backend/internal/usecase/comment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
	cfg *config.Config,
) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.TenantMiddleware(cfg.DefaultTenant))
	r.Use(middleware.IdentityMiddleware())
	r.Use(middleware.RequestLogger(logger))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	commentRepo := infraRepo.NewCommentGormRepository(db)
	shopCache := cache.NewShopCache(rdb)

	logWriter := logstore.NewWriter(db)
	logDispatcher := logstore.NewDispatcher(logWriter, logger)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, logDispatcher)
	changeStatusUC := ucBooking.NewChangeStatus(bookingRepo, logDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)

	createCommentUC := ucComment.NewCreateComment(commentRepo, logDispatcher)
	updateCommentUC := ucComment.NewUpdateComment(commentRepo)
	deleteCommentUC := ucComment.NewDeleteComment(commentRepo)
	listCommentsUC := ucComment.NewListComments(commentRepo)
	upsertReplyUC := ucComment.NewUpsertReply(commentRepo, logDispatcher)
	getReplyUC := ucComment.NewGetReply(commentRepo)
	historyUC := ucComment.NewGetReplyHistory(commentRepo)
	moderateUC := ucComment.NewModerateReply(commentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	shopHandler := handlers.NewShopHandler(db, shopCache)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC, changeStatusUC, listBookingsUC, getBookingUC)
	commentHandler := handlers.NewCommentHandler(
		createCommentUC, updateCommentUC, deleteCommentUC, listCommentsUC)
	replyHandler := handlers.NewReplyHandler(
		upsertReplyUC, getReplyUC, historyUC, moderateUC)
	logHandler := handlers.NewLogHandler(db, logDispatcher, cfg.LogRetentionDays)

	// ======================================================
	// ROUTES
	// ======================================================

	// ------------------------------
	// SHOPS
	// ------------------------------
	shops := r.Group("/shops")
	{
		shops.GET("", shopHandler.List)
		shops.POST("", shopHandler.Create)
		shops.GET("/:id", shopHandler.Get)
		shops.PATCH("/:id", shopHandler.Update)
		shops.GET("/:id/hours", shopHandler.GetHours)
		shops.GET("/:id/services", shopHandler.ListServices)
	}

	// ------------------------------
	// BOOKINGS
	// ------------------------------
	bookings := r.Group("/bookings")
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("", bookingHandler.List)
		bookings.GET("/:id", bookingHandler.Get)
		bookings.PATCH("/:id/status", bookingHandler.ChangeStatus)
	}

	// ------------------------------
	// COMMENTS & REPLIES
	// ------------------------------
	comments := r.Group("/comments")
	{
		comments.GET("", commentHandler.List)
		comments.POST("", commentHandler.Create)
		comments.PATCH("/:id", commentHandler.Update)
		comments.DELETE("/:id", commentHandler.Delete)

		comments.POST("/:id/reply", replyHandler.Upsert)
		comments.GET("/:id/reply", replyHandler.Get)
		comments.GET("/:id/reply/history", replyHandler.History)

		comments.POST("/replies/:replyId/moderate", replyHandler.Moderate)
	}

	// ------------------------------
	// LOG STORE (internal)
	// ------------------------------
	logs := r.Group("/logs")
	{
		logs.POST("", logHandler.Create)
		logs.GET("", logHandler.List)
		logs.GET("/stats", logHandler.Stats)
		logs.GET("/aggregate", logHandler.Aggregate)
		logs.DELETE("/retention", logHandler.Retention)
	}
}
