package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bloomshop-be/internal/logger"

	"go.uber.org/zap"
)

// Gateway delivers an order message to the external notification endpoint.
// Delivery is fire-once: a failure is reported to the caller, never retried.
type Gateway interface {
	Send(ctx context.Context, text string) (*Ack, error)
}

type telegramGateway struct {
	baseURL    string
	botToken   string
	chatID     string
	httpClient *http.Client
}

// NewTelegramGateway builds the Telegram sendMessage gateway. The bot token
// comes from configuration; it is never embedded in source.
func NewTelegramGateway(baseURL, botToken, chatID string) Gateway {
	if botToken == "" {
		logger.L().Warn("Telegram bot token is empty")
	}

	return &telegramGateway{
		baseURL:  baseURL,
		botToken: botToken,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

func (t *telegramGateway) Send(ctx context.Context, text string) (*Ack, error) {
	log := logger.FromCtx(ctx).With(zap.String("chat_id", t.chatID))

	jsonBody, err := json.Marshal(sendMessageRequest{
		ChatID:    t.chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		log.Error("Failed to marshal sendMessage request", zap.Error(err))
		return nil, err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.botToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")

	log.Info("Sending order message to Telegram")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		log.Error("Telegram request failed", zap.Error(err))
		return nil, &SubmitError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, &SubmitError{StatusCode: resp.StatusCode, Detail: "failed to read telegram response"}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error("Telegram returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, &SubmitError{
			StatusCode: resp.StatusCode,
			Detail:     responseDetail(bodyBytes),
		}
	}

	var res sendMessageResponse
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding Telegram response", zap.Error(err))
		return nil, &SubmitError{StatusCode: resp.StatusCode, Detail: "malformed telegram response"}
	}
	if !res.OK {
		return nil, &SubmitError{StatusCode: resp.StatusCode, Detail: res.Description}
	}

	log.Info("Order message delivered",
		zap.Int64("message_id", res.Result.MessageID),
	)

	return &Ack{MessageID: res.Result.MessageID}, nil
}

// responseDetail extracts the error description from a Telegram error body,
// falling back to the raw body.
func responseDetail(body []byte) string {
	var res sendMessageResponse
	if err := json.Unmarshal(body, &res); err == nil && res.Description != "" {
		return res.Description
	}
	return string(body)
}
