package dto

import "github.com/feedhub/feedhub-service/entity"

// CreateAdRequestDTO carries the multipart form fields of an ad creation
// request. Files arrive separately under the "media" field.
type CreateAdRequestDTO struct {
	UserID      string `form:"user_id"`
	Category    string `form:"category"`
	SubCategory string `form:"sub_category"`
	Title       string `form:"title"`
	Description string `form:"description"`
	Price       string `form:"price"`
}

type PaginationDTO struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type AdFeedResponseDTO struct {
	Data       []entity.Ad   `json:"data"`
	Pagination PaginationDTO `json:"pagination"`
}
