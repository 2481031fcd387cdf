package dto

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	AccessCode string `json:"access_code"`
	Role       string `json:"role"`
}

type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

type SubjectSummary struct {
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
}

type QuestionResponse struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Subject       string   `json:"subject"`
}

type MaterialResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url,omitempty"`
	PDFURL   *string `json:"pdf_url,omitempty"`
	VideoURL *string `json:"video_url,omitempty"`
	Subject  string  `json:"subject"`
}
