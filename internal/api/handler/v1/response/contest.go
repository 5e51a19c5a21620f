package response

type ContestCountResponse struct {
	Count int64 `json:"count"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
