package response

type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}
