package handler

import (
	"time"

	"github.com/trashgo/delivery-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// loginRequest binds the OAuth2-style password form posted to /auth/token.
type loginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --- Users ---

// userResponse is the public view of a user; it never carries the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// --- Orders ---

type createOrderRequest struct {
	CourierID   string `json:"courier_id,omitempty"`
	Description string `json:"description,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type statusChangeResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	ActorID   string    `json:"actor_id,omitempty"`
}

type orderResponse struct {
	ID            string                 `json:"id"`
	UserID        string                 `json:"user_id"`
	CourierID     string                 `json:"courier_id,omitempty"`
	Status        string                 `json:"status"`
	Description   string                 `json:"description,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	StatusHistory []statusChangeResponse `json:"status_history"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	history := make([]statusChangeResponse, 0, len(o.StatusHistory))
	for _, ch := range o.StatusHistory {
		history = append(history, statusChangeResponse{
			Status:    string(ch.Status),
			Timestamp: ch.Timestamp,
			ActorID:   ch.ActorID,
		})
	}
	return orderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		CourierID:     o.CourierID,
		Status:        string(o.Status),
		Description:   o.Description,
		CreatedAt:     o.CreatedAt,
		StatusHistory: history,
	}
}

func toOrderResponses(orders []*domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}
