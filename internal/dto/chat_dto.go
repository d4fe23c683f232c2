package dto

import "time"

type SendChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id,omitempty"`
}

type SendChatResponse struct {
	Response      string           `json:"response"`
	Status        string           `json:"status"` // "success" | "error"
	SessionId     string           `json:"session_id"`
	Intent        string           `json:"intent,omitempty"`
	Confidence    float64          `json:"confidence,omitempty"`
	ProductsShown []ProductSummary `json:"products_shown,omitempty"`
}

// ProductSummary is the client-facing slice of a catalog entry.
type ProductSummary struct {
	Name  string `json:"name"`
	Price string `json:"price,omitempty"`
	URL   string `json:"url,omitempty"`
}

type FeedbackRequest struct {
	SessionId     string `json:"session_id" validate:"required"`
	ExchangeIndex int    `json:"exchange_index" validate:"gte=0"`
	Feedback      string `json:"feedback" validate:"required"`
}

type ExchangeResponse struct {
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Intent      string    `json:"intent,omitempty"`
	Confidence  float64   `json:"confidence,omitempty"`
	Feedback    string    `json:"feedback,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type GetChatHistoryResponse struct {
	SessionId string             `json:"session_id"`
	Exchanges []ExchangeResponse `json:"exchanges"`
}
