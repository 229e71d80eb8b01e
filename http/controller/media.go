package controller

import (
	"strings"

	"github.com/feedhub/feedhub-service/utils"
	"github.com/gin-gonic/gin"
	"github.com/minio/minio-go/v7"
)

// ServeUpload streams a stored media object back under its public /uploads
// path.
func (ctrl *Controller) ServeUpload(c *gin.Context) {
	ctx := c.Request.Context()

	filename := c.Param("filename")
	if filename == "" || strings.Contains(filename, "/") || strings.Contains(filename, "..") {
		utils.JSON400(c, "Invalid file name")
		return
	}

	bucket := ctrl.Config.EnvConfig.Minio.UploadBucket
	object, err := ctrl.Infra.Minio.GetObject(ctx, bucket, filename)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Media] Failed to open object %q: %v", filename, err)
		utils.JSON500(c, "Server error fetching media")
		return
	}
	defer object.Close()

	// GetObject is lazy; Stat is where a missing object shows up.
	stat, err := object.Stat()
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			utils.JSON404(c, "Media not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Media] Failed to stat object %q: %v", filename, err)
		utils.JSON500(c, "Server error fetching media")
		return
	}

	c.DataFromReader(200, stat.Size, stat.ContentType, object, nil)
}
