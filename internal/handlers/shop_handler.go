package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kuaforun/booking-backend/internal/cache"
	"github.com/kuaforun/booking-backend/internal/httperr"
	"github.com/kuaforun/booking-backend/internal/httpresp"
	"github.com/kuaforun/booking-backend/internal/middleware"
	"github.com/kuaforun/booking-backend/internal/models"
)

// Default hours synthesized when a shop has no stored entry for a
// requested day.
const (
	defaultOpenTime  = "09:00"
	defaultCloseTime = "18:00"
)

type ShopHandler struct {
	db    *gorm.DB
	cache *cache.ShopCache
}

func NewShopHandler(db *gorm.DB, cache *cache.ShopCache) *ShopHandler {
	return &ShopHandler{db: db, cache: cache}
}

// --------------------------------------------------
// Listing / lookup
// --------------------------------------------------

func (h *ShopHandler) List(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	gender := c.Query("gender")
	name := c.Query("name")
	city := c.Query("city")
	page, limit, offset := pageParams(c)

	if gender != "" && gender != "male" && gender != "female" && gender != "unisex" {
		httperr.BadRequest(c, "invalid_gender", "Gender must be male, female or unisex.")
		return
	}

	filters := fmt.Sprintf("%s|%s|%s", gender, name, city)
	if cached, ok := h.cache.GetList(c.Request.Context(), tenantID, filters, page, limit); ok {
		httpresp.Paged(c, cached.Shops, page, limit, cached.Total)
		return
	}

	q := h.db.Model(&models.Shop{}).Where("tenant_id = ?", tenantID)

	if gender != "" {
		q = q.Where("gender = ?", gender)
	}
	if name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}
	if city != "" {
		q = q.Where("city = ?", city)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "shop_list_failed", "Failed to count shops.")
		return
	}

	var shops []models.Shop
	if err := q.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&shops).Error; err != nil {

		httperr.Internal(c, "shop_list_failed", "Failed to list shops.")
		return
	}

	h.cache.SetList(c.Request.Context(), tenantID, filters, page, limit,
		cache.CachedShopPage{Shops: shops, Total: total})

	httpresp.Paged(c, shops, page, limit, total)
}

func (h *ShopHandler) Get(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return
	}

	if shop, ok := h.cache.GetShop(c.Request.Context(), tenantID, shopID.String()); ok {
		httpresp.OK(c, shop)
		return
	}

	var shop models.Shop
	if err := h.db.
		Where("id = ? AND tenant_id = ?", shopID, tenantID).
		First(&shop).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "shop_not_found", "Shop not found.")
			return
		}
		httperr.Internal(c, "shop_get_failed", "Failed to load shop.")
		return
	}

	h.cache.SetShop(c.Request.Context(), &shop)
	httpresp.OK(c, shop)
}

// --------------------------------------------------
// Hours
// --------------------------------------------------

func (h *ShopHandler) GetHours(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return
	}

	var shop models.Shop
	if err := h.db.
		Where("id = ? AND tenant_id = ?", shopID, tenantID).
		First(&shop).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	dayStr := c.Query("day")
	if dayStr == "" {
		var hours []models.ShopHours
		if err := h.db.
			Where("shop_id = ? AND tenant_id = ?", shopID, tenantID).
			Order("weekday ASC").
			Find(&hours).Error; err != nil {

			httperr.Internal(c, "hours_get_failed", "Failed to load working hours.")
			return
		}
		httpresp.List(c, hours)
		return
	}

	day, ok := parseWeekday(dayStr)
	if !ok {
		httperr.BadRequest(c, "invalid_day", "Day must be 0 (Sunday) through 6.")
		return
	}

	var hours models.ShopHours
	err = h.db.
		Where("shop_id = ? AND tenant_id = ? AND weekday = ?", shopID, tenantID, day).
		First(&hours).Error

	if err == gorm.ErrRecordNotFound {
		// No stored entry for the day: answer with the default window
		// without persisting it.
		httpresp.OK(c, defaultHoursEntry(tenantID, shopID, day))
		return
	}
	if err != nil {
		httperr.Internal(c, "hours_get_failed", "Failed to load working hours.")
		return
	}

	httpresp.OK(c, hours)
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (h *ShopHandler) ListServices(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("shop_id = ? AND tenant_id = ? AND active = true", shopID, tenantID).
		Order("name ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "service_list_failed", "Failed to list services.")
		return
	}

	httpresp.List(c, services)
}

// --------------------------------------------------
// Create / update
// --------------------------------------------------

type ShopRequest struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Gender    string  `json:"gender" binding:"omitempty,oneof=male female unisex"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (h *ShopHandler) Create(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	if !middleware.UserRole(c).CanManageShops() {
		httperr.Forbidden(c, "forbidden", "Role lacks permission for this action.")
		return
	}

	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestDetails(c, "invalid_request", "Invalid shop payload.", err.Error())
		return
	}

	shop := models.Shop{
		TenantID:  tenantID,
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		Gender:    req.Gender,
		City:      req.City,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if shop.Gender == "" {
		shop.Gender = "unisex"
	}

	if err := h.db.Create(&shop).Error; err != nil {
		httperr.Internal(c, "shop_create_failed", "Failed to create shop.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), tenantID, shop.ID.String())
	c.JSON(http.StatusCreated, shop)
}

type ShopUpdateRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Gender  *string `json:"gender" binding:"omitempty,oneof=male female unisex"`
	City    *string `json:"city"`
}

func (h *ShopHandler) Update(c *gin.Context) {
	tenantID := middleware.TenantID(c)

	if !middleware.UserRole(c).CanManageShops() {
		httperr.Forbidden(c, "forbidden", "Role lacks permission for this action.")
		return
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return
	}

	var shop models.Shop
	if err := h.db.
		Where("id = ? AND tenant_id = ?", shopID, tenantID).
		First(&shop).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	var req ShopUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequestDetails(c, "invalid_request", "Invalid shop payload.", err.Error())
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Gender != nil {
		shop.Gender = *req.Gender
	}
	if req.City != nil {
		shop.City = *req.City
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "shop_update_failed", "Failed to update shop.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), tenantID, shop.ID.String())
	httpresp.OK(c, shop)
}

func parseWeekday(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '6' {
		return 0, false
	}
	return int(s[0] - '0'), true
}

// defaultHoursEntry synthesizes the 09:00-18:00 window returned for a
// weekday the shop never configured. It is never persisted.
func defaultHoursEntry(tenantID string, shopID uuid.UUID, day int) models.ShopHours {
	return models.ShopHours{
		TenantID:  tenantID,
		ShopID:    shopID,
		Weekday:   day,
		OpenTime:  defaultOpenTime,
		CloseTime: defaultCloseTime,
	}
}
