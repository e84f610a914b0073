package http

import (
	"time"

	"github.com/ferndale-labs/hotel-management-backend/internal/feedback"
	"github.com/ferndale-labs/hotel-management-backend/internal/pkg/request"
)

// ListFeedbackRequest defines query parameters for listing feedback.
type ListFeedbackRequest struct {
	request.ListParams
	GuestID string `form:"guest_id" binding:"omitempty,uuid"`
	Rating  int    `form:"rating" binding:"omitempty,min=1,max=5"`
}

// Validate performs custom validation for ListFeedbackRequest.
func (r *ListFeedbackRequest) Validate() error {
	return nil
}

// CreateFeedbackRequest defines the payload for submitting feedback.
type CreateFeedbackRequest struct {
	GuestID   string  `json:"guest_id" binding:"required,uuid"`
	BookingID *string `json:"booking_id" binding:"omitempty,uuid"`
	Rating    int     `json:"rating" binding:"required,min=1,max=5"`
	Comments  *string `json:"comments" binding:"omitempty,max=2000"`
}

// Validate performs custom validation for CreateFeedbackRequest.
func (r *CreateFeedbackRequest) Validate() error {
	return nil
}

// FeedbackResponse is the shape of feedback data returned in API responses.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	GuestID   string    `json:"guest_id"`
	GuestName string    `json:"guest_name"`
	BookingID *string   `json:"booking_id"`
	Rating    int       `json:"rating"`
	Comments  *string   `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

func NewFeedbackResponse(f *feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        f.ID,
		GuestID:   f.GuestID,
		GuestName: f.GuestName,
		BookingID: f.BookingID,
		Rating:    f.Rating,
		Comments:  f.Comments,
		CreatedAt: f.CreatedAt,
	}
}
