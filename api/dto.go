package api

type createUserRequest struct {
	Name string `json:"name" validate:"required"`
}

type followUserRequest struct {
	UserToFollow string `json:"userToFollow" validate:"required"`
}

type postMessageRequest struct {
	Author string `json:"author" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

type editMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
