package model

// Material is a static learning resource. The URL fields are optional and
// kept as pointers so absent values serialize as null rather than "".
type Material struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"imageUrl,omitempty"`
	PDFURL   *string `json:"pdfUrl,omitempty"`
	VideoURL *string `json:"videoUrl,omitempty"`
	Subject  string  `json:"subject"`
}
