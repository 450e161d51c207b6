// File: handlers/images.go
package handlers

import (
	"context"
	"time"

	"hostelhub/config"
	"hostelhub/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// imageResolveLimit bounds the concurrent signed-URL resolutions per response
// so a large menu cannot flood the resolver.
const imageResolveLimit = 8

func signedURLTTL() time.Duration {
	min := config.AppConfig.SignedURLTTLMin
	if min <= 0 {
		min = 15
	}
	return time.Duration(min) * time.Minute
}

// resolveMenuImages replaces every item's image key with a signed display URL,
// in place. Items without a key keep a null image.
func (h *FoodMenuHandler) resolveMenuImages(c *gin.Context, menu *models.ResolvedFoodMenu) error {
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.SetLimit(imageResolveLimit)
	ttl := signedURLTTL()

	for di := range menu.Menu {
		for _, slot := range menu.Menu[di].Meals.SlotsInOrder() {
			h.resolveSlotImages(ctx, g, slot, ttl)
		}
	}
	return g.Wait()
}

// resolveDayImages does the same for a single day slice.
func (h *FoodMenuHandler) resolveDayImages(c *gin.Context, dayMenu *models.ResolvedDayMenu) error {
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.SetLimit(imageResolveLimit)
	ttl := signedURLTTL()

	for _, slot := range dayMenu.Meals.SlotsInOrder() {
		h.resolveSlotImages(ctx, g, slot, ttl)
	}
	return g.Wait()
}

func (h *FoodMenuHandler) resolveSlotImages(ctx context.Context, g *errgroup.Group, slot *models.ResolvedMealSlot, ttl time.Duration) {
	for ii := range slot.Items {
		item := &slot.Items[ii]
		if item.Image == nil || *item.Image == "" {
			item.Image = nil
			continue
		}
		key := *item.Image
		g.Go(func() error {
			url, err := h.Storage.GetSecureDownloadURL(ctx, key, ttl)
			if err != nil {
				return err
			}
			item.Image = &url
			return nil
		})
	}
}
