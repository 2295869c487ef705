package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/kuaforun/booking-backend/internal/models"
)

const shopTTL = 5 * time.Minute

// ShopCache is a read-through cache for the shop directory. Every error
// is treated as a miss so Postgres stays the source of truth.
type ShopCache struct {
	rdb *redis.Client
}

func NewShopCache(rdb *redis.Client) *ShopCache {
	return &ShopCache{rdb: rdb}
}

func shopKey(tenantID, shopID string) string {
	return fmt.Sprintf("shop:%s:%s", tenantID, shopID)
}

func listKey(tenantID, filters string, page, limit int) string {
	return fmt.Sprintf("shops:%s:%s:%d:%d", tenantID, filters, page, limit)
}

func (c *ShopCache) GetShop(ctx context.Context, tenantID, shopID string) (*models.Shop, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, shopKey(tenantID, shopID)).Bytes()
	if err != nil {
		return nil, false
	}

	var shop models.Shop
	if err := json.Unmarshal(raw, &shop); err != nil {
		return nil, false
	}
	return &shop, true
}

func (c *ShopCache) SetShop(ctx context.Context, shop *models.Shop) {
	if c.rdb == nil {
		return
	}
	if b, err := json.Marshal(shop); err == nil {
		c.rdb.Set(ctx, shopKey(shop.TenantID, shop.ID.String()), b, shopTTL)
	}
}

type CachedShopPage struct {
	Shops []models.Shop `json:"shops"`
	Total int64         `json:"total"`
}

func (c *ShopCache) GetList(ctx context.Context, tenantID, filters string, page, limit int) (*CachedShopPage, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, listKey(tenantID, filters, page, limit)).Bytes()
	if err != nil {
		return nil, false
	}

	var cached CachedShopPage
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false
	}
	return &cached, true
}

func (c *ShopCache) SetList(ctx context.Context, tenantID, filters string, page, limit int, p CachedShopPage) {
	if c.rdb == nil {
		return
	}
	if b, err := json.Marshal(p); err == nil {
		c.rdb.Set(ctx, listKey(tenantID, filters, page, limit), b, shopTTL)
	}
}

// Invalidate drops the single-shop entry and every cached list page for
// the tenant after a shop write.
func (c *ShopCache) Invalidate(ctx context.Context, tenantID, shopID string) {
	if c.rdb == nil {
		return
	}

	c.rdb.Del(ctx, shopKey(tenantID, shopID))

	iter := c.rdb.Scan(ctx, 0, fmt.Sprintf("shops:%s:*", tenantID), 100).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}
