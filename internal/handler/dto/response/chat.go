package response

type ChatResponse struct {
	Reply string `json:"reply"`
}
