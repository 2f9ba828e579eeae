package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateWaiterRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Username string `json:"username" validate:"required,min=1,max=60"`
	Password string `json:"password" validate:"required,min=1"`
}

type ToggleWaiterRequest struct {
	Active bool `json:"active"`
}
