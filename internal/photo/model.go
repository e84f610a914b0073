package photo

import (
	"net/http"
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "photo not found")
	ErrRoomNotFound = apperror.New(http.StatusNotFound, "room not found")
	ErrNotAnImage   = apperror.New(http.StatusBadRequest, "uploaded file must be an image")
	ErrNoThumbnail  = apperror.New(http.StatusNotFound, "thumbnail not available")
	ErrTooLarge     = apperror.New(http.StatusRequestEntityTooLarge, "uploaded file is too large")
)

// MaxUploadSize caps room photo uploads at 10 MiB.
const MaxUploadSize = 10 << 20

// Photo is an image attached to a room.
type Photo struct {
	ID            string
	RoomID        string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	Caption       *string
	CreatedAt     time.Time
}

// URL returns the public URL for the full-size image.
func URL(id string) string {
	return "/v1/photos/" + id
}

// ThumbnailURL returns the public URL for the thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/photos/" + id + "/thumbnail"
}
