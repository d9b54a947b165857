package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mohd-musheer/backendChat/internal/app"
	"github.com/mohd-musheer/backendChat/internal/config"
	"github.com/mohd-musheer/backendChat/internal/domain"
	"github.com/mohd-musheer/backendChat/internal/storage"
)

type uploadForm struct {
	RoomID   string `form:"roomId" binding:"required"`
	SenderID string `form:"senderId" binding:"required"`
	TempID   string `form:"tempId"`
}

// UploadHandler accepts a multipart file, stores it, arms the
// retention timer and announces it to the room. The sender may already
// be gone by the time the event fires; attribution falls back then.
func UploadHandler(cfg *config.Config, store storage.Store, notifier *app.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.UploadMaxBytes)

		var form uploadForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing roomId or senderId"})
			return
		}

		header, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
			return
		}

		src, err := header.Open()
		if err != nil {
			log.Error().Err(err).Str("module", "adapters.http").Msg("open upload")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}
		defer src.Close()

		att, err := store.Save(header.Filename, header.Header.Get("Content-Type"), src)
		if err != nil {
			log.Error().Err(err).Str("module", "adapters.http").Msg("store upload")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
			return
		}
		store.ScheduleDelete(att.Filename)

		notifier.Notify(domain.RoomID(form.RoomID), domain.ConnID(form.SenderID), att, form.TempID, false)

		c.JSON(http.StatusOK, att)
	}
}
