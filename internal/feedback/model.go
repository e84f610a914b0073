package feedback

import (
	"net/http"
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "feedback not found")
	ErrGuestNotFound   = apperror.New(http.StatusNotFound, "guest not found")
	ErrBookingNotFound = apperror.New(http.StatusNotFound, "booking not found")
)

const MaxCommentLength = 2000

type Feedback struct {
	ID        string
	GuestID   string
	GuestName string
	BookingID *string
	Rating    int
	Comments  *string
	CreatedAt time.Time
}

type Filter struct {
	GuestID   string
	Rating    int
	Page      int
	PageSize  int
	SortOrder string
}
