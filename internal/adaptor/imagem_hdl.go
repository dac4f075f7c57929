package adaptor

import (
	"io"
	"net/http"
	"time"

	"movie-logbook/pkg/storage"
	"movie-logbook/pkg/utils"

	"go.uber.org/zap"
)

// uploads beyond this size are rejected before buffering
const maxImageBytes = 10 << 20

type ImagemHandler struct {
	bucket storage.Bucket
	log    *zap.Logger
}

func NewImagemHandler(bucket storage.Bucket, log *zap.Logger) *ImagemHandler {
	return &ImagemHandler{
		bucket: bucket,
		log:    log.With(zap.String("handler", "imagem")),
	}
}

// Upload handles POST /api/imagens (protected). The request body carries
// the raw image bytes; the original filename travels in the X-File-Name
// header so the extension can be normalized. Responds with the public URL
// of the stored object.
func (h *ImagemHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	filename := r.Header.Get("X-File-Name")
	if filename == "" {
		filename = r.URL.Query().Get("filename")
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes+1))
	if err != nil {
		h.log.Warn("Failed to read upload body", zap.Error(err))
		utils.ResponseBadRequest(w, "Could not read image data", nil)
		return
	}
	if len(data) == 0 {
		utils.ResponseBadRequest(w, "Image data is empty", nil)
		return
	}
	if len(data) > maxImageBytes {
		utils.ResponseBadRequest(w, "Image exceeds maximum allowed size", nil)
		return
	}

	ext := storage.NormalizeExt(filename)
	object := storage.ObjectName(userID.String(), time.Now(), ext)

	if err := h.bucket.Put(r.Context(), object, data, storage.ContentTypeFor(ext), true); err != nil {
		h.log.Error("Failed to store image",
			zap.Error(err),
			zap.String("object", object),
		)
		utils.ResponseInternalError(w, "Failed to store image")
		return
	}

	h.log.Info("Image uploaded",
		zap.String("object", object),
		zap.Int("bytes", len(data)),
	)

	utils.ResponseCreated(w, "success", map[string]string{
		"path": object,
		"url":  h.bucket.PublicURL(object),
	})
}
