package dto

type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Jane Doe"`
	Email    string `json:"email" validate:"required" example:"jane@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"secret123"`
}

func (r RegisterRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"jane@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

func (l LoginRequest) Validate() error {
	return GetValidator().Struct(l)
}

// AuthUser is the public view of an account returned by register and login.
// The password hash never appears here.
type AuthUser struct {
	ID               uint   `json:"id" example:"1"`
	Name             string `json:"name" example:"Jane Doe"`
	Email            string `json:"email" example:"jane@example.com"`
	Role             string `json:"role" example:"student"`
	Progress         int    `json:"progress" example:"0"`
	CompletedLessons []int  `json:"completedLessons"`
	Bookmarks        []int  `json:"bookmarks"`
}
