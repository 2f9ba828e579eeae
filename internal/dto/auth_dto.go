package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// AdminLoginRequest carries the shared operator passphrase, compared verbatim.
type AdminLoginRequest struct {
	Passphrase string `json:"passphrase" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type WaiterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Active   bool   `json:"active"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"` // seconds
	Role        string          `json:"role"`
	Waiter      *WaiterResponse `json:"waiter,omitempty"`
}
