package domain

type LoginResponse struct {
	Username  string `json:"username"`
	AuthToken string `json:"auth_token"`
}
