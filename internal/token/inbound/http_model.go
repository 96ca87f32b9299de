package inbound

type GenerateResponse struct {
	Token string `json:"token"`
}

type AuthResponse struct {
	Result string `json:"result"`
}
