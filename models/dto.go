package models

type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PatchUserRequest carries a self-patch. Empty fields keep the stored value.
type PatchUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type CreateArticleRequest struct {
	Topic string `json:"topic"`
	Title string `json:"title"`
	Body  string `json:"article"`
}

// PatchArticleRequest carries a partial update. Empty fields keep the stored value.
type PatchArticleRequest struct {
	Topic string `json:"topic"`
	Title string `json:"title"`
	Body  string `json:"article"`
}

type CreateCommentRequest struct {
	Title string `json:"title"`
	Body  string `json:"comment"`
}

type PatchCommentRequest struct {
	Title string `json:"title"`
	Body  string `json:"comment"`
}

type TopicRequest struct {
	Topic string `json:"topic"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// RegisteredUser is the register response: the stored projection plus a token.
type RegisteredUser struct {
	User
	Token string `json:"token"`
}

// ListParams is the cleaned paging/search input for list queries. Offset and
// Limit are already coerced to non-negative integers and Search is sanitized.
type ListParams struct {
	Offset int
	Limit  int
	Search string
}
