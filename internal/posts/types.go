package posts

// Post mirrors one entry of the /posts payload. Fields other than title and
// body (id, userId, ...) are ignored on decode.
type Post struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
