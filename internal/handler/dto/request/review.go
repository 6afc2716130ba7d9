package request

type CreateReviewRequest struct {
	CustomerName string  `json:"customer_name" binding:"required"`
	Rating       int     `json:"rating" binding:"required"`
	Comment      *string `json:"comment,omitempty"`
}
