package request

type CreateRoomRequest struct {
	Number   int    `json:"number" binding:"required,gt=0"`
	Category string `json:"category" binding:"required"`
	// pointer so a zero rate (a free room) survives the required check
	RateCents *int64 `json:"rate_cents" binding:"required,gte=0"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
