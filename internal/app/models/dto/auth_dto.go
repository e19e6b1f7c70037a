package dto

// RegisterRequest is the guardian signup payload.
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone" binding:"omitempty,pkphone"`
	CNIC     string `json:"cnic" binding:"omitempty,cnic"`
}

// LoginRequest is the shared admin/guardian login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the signed-in identity.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// ForgotPasswordRequest asks for a reset token to be issued.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest consumes a reset token.
type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// UpdateProfileRequest updates a guardian's own account.
type UpdateProfileRequest struct {
	FullName        string `json:"fullName" binding:"required,min=2,max=100"`
	Phone           string `json:"phone" binding:"omitempty,pkphone"`
	CNIC            string `json:"cnic" binding:"omitempty,cnic"`
	Password        string `json:"password" binding:"omitempty,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"omitempty,eqfield=Password"`
}

// GuardianProfileResponse is the guardian settings read surface.
type GuardianProfileResponse struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone,omitempty"`
	CNIC     *string `json:"cnic,omitempty"`
}
