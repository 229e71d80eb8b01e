package controller

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/feedhub/feedhub-service/entity"
	"github.com/feedhub/feedhub-service/http/controller/dto"
	"github.com/feedhub/feedhub-service/infra"
	"github.com/feedhub/feedhub-service/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultFeedLimit  = 20
	defaultFeedOffset = 0

	feedCachePrefix = "ads:feed:"
	feedCacheTTL    = 30 * time.Second
)

// ListAds serves the paginated feed, newest first, each ad merged with its
// media. Pages are cached briefly in Redis; a cache failure falls through to
// the database.
func (ctrl *Controller) ListAds(c *gin.Context) {
	ctx := c.Request.Context()

	limit := coerceQueryInt(c.Query("limit"), defaultFeedLimit)
	offset := coerceQueryInt(c.Query("offset"), defaultFeedOffset)

	cacheKey := feedCachePrefix + strconv.Itoa(limit) + ":" + strconv.Itoa(offset)
	var cached dto.AdFeedResponseDTO
	if err := ctrl.Infra.Redis.Get(ctx, cacheKey, &cached); err == nil {
		utils.JSON200(c, cached)
		return
	}

	ads, err := ctrl.Repository.AdRepo.ListPage(limit, offset)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Ad] Failed to fetch ads page: %v", err)
		utils.JSON500(c, "Server error fetching ads")
		return
	}

	adIDs := make([]uuid.UUID, 0, len(ads))
	for _, ad := range ads {
		adIDs = append(adIDs, ad.ID)
	}

	media, err := ctrl.Repository.MediaRepo.FindByAdIDs(adIDs)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Ad] Failed to fetch media for ads page: %v", err)
		utils.JSON500(c, "Server error fetching ads")
		return
	}

	mediaByAd := make(map[uuid.UUID][]entity.Media, len(ads))
	for _, m := range media {
		mediaByAd[m.AdID] = append(mediaByAd[m.AdID], m)
	}

	for i := range ads {
		// Missing media should not occur, but the feed must not fail on it.
		if rows, ok := mediaByAd[ads[i].ID]; ok {
			ads[i].Media = rows
		} else {
			ads[i].Media = []entity.Media{}
		}
	}

	response := dto.AdFeedResponseDTO{
		Data:       ads,
		Pagination: dto.PaginationDTO{Limit: limit, Offset: offset},
	}

	if err := ctrl.Infra.Redis.Set(ctx, cacheKey, response, feedCacheTTL); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Ad] Failed to cache feed page: %v", err)
	}

	utils.JSON200(c, response)
}

// CreateAd is the transactional write path: validate everything up front,
// persist the uploads, then insert the ad and its media rows atomically.
// The enrichment and notification triggers run after commit and cannot fail
// the response.
func (ctrl *Controller) CreateAd(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAdRequestDTO
	if err := c.ShouldBind(&req); err != nil {
		utils.JSON400(c, "Invalid form data")
		return
	}

	req.UserID = strings.TrimSpace(req.UserID)
	req.Category = strings.TrimSpace(req.Category)
	req.SubCategory = strings.TrimSpace(req.SubCategory)
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Price = strings.TrimSpace(req.Price)

	if req.UserID == "" || req.Category == "" || req.SubCategory == "" ||
		req.Title == "" || req.Description == "" || req.Price == "" {
		utils.JSON400(c, "Missing required fields")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.JSON400(c, "Invalid user_id format")
		return
	}

	price, err := strconv.ParseFloat(req.Price, 64)
	if err != nil || price < 0 {
		utils.JSON400(c, "Price must be a non-negative number")
		return
	}

	if !ValidCategoryPair(req.Category, req.SubCategory) {
		utils.JSON400(c, "Unknown category / sub-category combination")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.JSON400(c, "At least one media file is required")
		return
	}
	files := form.File["media"]

	if err := ctrl.Infra.UploadService.ValidateFiles(files); err != nil {
		utils.JSON400(c, err.Error())
		return
	}

	descriptors, err := ctrl.Infra.UploadService.StoreFiles(ctx, files)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Ad] Failed to store uploads: %v", err)
		utils.JSON500(c, "Server error creating ad")
		return
	}

	tx := ctrl.Repository.BeginTransaction(ctrl.Infra.Postgres.DB)
	if tx.Error != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, tx.Error, "[Ad] Failed to open transaction: %v", tx.Error)
		ctrl.cleanupUploads(ctx, descriptors)
		utils.JSON500(c, "Server error creating ad")
		return
	}
	txRepo := ctrl.Repository.WithTransaction(tx)

	ad := &entity.Ad{
		UserID:      userID,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Title:       req.Title,
		Description: req.Description,
		Price:       price,
	}

	if err := txRepo.AdRepo.Create(ad); err != nil {
		tx.Rollback()
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Ad] Failed to insert ad: %v", err)
		ctrl.cleanupUploads(ctx, descriptors)
		utils.JSON500(c, "Server error creating ad")
		return
	}

	mediaRows := make([]entity.Media, 0, len(descriptors))
	for _, d := range descriptors {
		media := entity.Media{
			AdID:      ad.ID,
			MediaURL:  d.URL,
			MediaType: d.Type,
		}
		if err := txRepo.MediaRepo.Create(&media); err != nil {
			tx.Rollback()
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Ad] Failed to insert media row: %v", err)
			ctrl.cleanupUploads(ctx, descriptors)
			utils.JSON500(c, "Server error creating ad")
			return
		}
		mediaRows = append(mediaRows, media)
	}

	if err := tx.Commit().Error; err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Ad] Failed to commit ad transaction: %v", err)
		ctrl.cleanupUploads(ctx, descriptors)
		utils.JSON500(c, "Server error creating ad")
		return
	}

	ad.Media = mediaRows

	ctrl.invalidateFeedCache(ctx)

	// Post-commit side effects. The enrichment goroutine is detached from
	// this request; the webhook call is awaited but its failure is only
	// logged.
	go ctrl.EnrichAd(ad)

	if err := ctrl.Infra.NotifyService.SendAdCreated(ctx, ad); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Ad] Webhook notification failed for ad %s: %v", ad.ID, err)
	}

	utils.JSON201(c, gin.H{
		"message": "Ad created successfully",
		"ad":      ad,
	})
}

func (ctrl *Controller) cleanupUploads(ctx context.Context, descriptors []infra.MediaDescriptor) {
	if err := ctrl.Infra.UploadService.RemoveFiles(ctx, descriptors); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Ad] Failed to clean up uploads after rollback: %v", err)
	}
}

func (ctrl *Controller) invalidateFeedCache(ctx context.Context) {
	keys, err := ctrl.Infra.Redis.Keys(ctx, feedCachePrefix+"*")
	if err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Ad] Failed to list feed cache keys: %v", err)
		return
	}
	if err := ctrl.Infra.Redis.Delete(ctx, keys...); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Ad] Failed to invalidate feed cache: %v", err)
	}
}

// coerceQueryInt falls back to the default on absent or non-numeric input
// rather than erroring.
func coerceQueryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
