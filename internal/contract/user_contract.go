package contract

type UserResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	DisplayName  string `json:"display_name,omitempty"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	CAD          string `json:"cad,omitempty"`
	Approved     bool   `json:"approved"`
	ApprovedBy   string `json:"approved_by,omitempty"`
	ApprovedDate string `json:"approved_date,omitempty"`
	IsMaster     bool   `json:"is_master"`
	Pending      bool   `json:"pending"`
	CreatedAt    string `json:"created_at"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

type UpdateUserRequest struct {
	Role        *string `json:"role" validate:"omitempty,oneof=admin officer user"`
	DisplayName *string `json:"display_name" validate:"omitempty,max=80"`
}
