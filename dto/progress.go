package dto

type UpdateProgressRequest struct {
	UserID             uint  `json:"userId" validate:"required" example:"1"`
	CompletedLessons   []int `json:"completedLessons"`
	Bookmarks          []int `json:"bookmarks"`
	ProgressPercentage int   `json:"progressPercentage" example:"15"`
}

func (u UpdateProgressRequest) Validate() error {
	return GetValidator().Struct(u)
}

type Progress struct {
	CompletedLessons   []int `json:"completedLessons"`
	Bookmarks          []int `json:"bookmarks"`
	ProgressPercentage int   `json:"progressPercentage" example:"15"`
}
