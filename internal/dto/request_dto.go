package dto

// LoginRequest carries the login form. The password is part of the form but
// is not verified against anything; access to the portal is gated by the
// access code alone.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	AccessCode string `json:"access_code" binding:"required"`
}

type StartQuizRequest struct {
	Subject string `json:"subject" binding:"required"`
}

// SelectAnswerRequest uses a pointer so option index 0 still satisfies the
// required binding.
type SelectAnswerRequest struct {
	OptionIndex *int `json:"option_index" binding:"required,gte=0"`
}

type GoToQuestionRequest struct {
	Index *int `json:"index" binding:"required,gte=0"`
}

type CreateQuestionRequest struct {
	Text          string   `json:"text" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectAnswer *int     `json:"correct_answer" binding:"required,gte=0"`
	Explanation   string   `json:"explanation"`
	Subject       string   `json:"subject" binding:"required"`
}

type CreateMaterialRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"image_url"`
	PDFURL   *string `json:"pdf_url"`
	VideoURL *string `json:"video_url"`
	Subject  string  `json:"subject" binding:"required"`
}
