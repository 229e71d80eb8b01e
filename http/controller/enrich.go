package controller

import (
	"context"
	"encoding/json"
	"time"

	"github.com/feedhub/feedhub-service/entity"
)

// enrichTimeout bounds the whole detached attempt: two generation calls plus
// one insert.
const enrichTimeout = 3 * time.Minute

// EnrichAd runs after a successful creation commit, detached from the
// request. It asks the generation service for a description, hashtags and a
// promo image, and persists the result as a single AdAIContent row. Every
// failure abandons the attempt: no retry, no partial row, nothing surfaced
// to the caller whose response has already been sent.
func (ctrl *Controller) EnrichAd(ad *entity.Ad) {
	ctx, cancel := context.WithTimeout(context.Background(), enrichTimeout)
	defer cancel()

	content, err := ctrl.Infra.AIService.GenerateAdContent(ctx, ad)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Enrich] AI content generation failed for ad %s: %v", ad.ID, err)
		return
	}

	promoImageURL, err := ctrl.Infra.AIService.GeneratePromoImage(ctx, ad)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Enrich] AI promo image generation failed for ad %s: %v", ad.ID, err)
		return
	}

	hashtags, err := json.Marshal(content.Hashtags)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Enrich] Failed to encode hashtags for ad %s: %v", ad.ID, err)
		return
	}

	record := &entity.AdAIContent{
		AdID:          ad.ID,
		AIDescription: content.Description,
		Hashtags:      hashtags,
		PromoImageURL: promoImageURL,
	}

	if err := ctrl.Repository.AIContentRepo.Create(record); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Enrich] Failed to persist AI content for ad %s: %v", ad.ID, err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Enrich] Stored AI content for ad %s", ad.ID)
}
