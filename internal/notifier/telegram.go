// Package notifier delivers portal alerts to a Telegram chat through the
// Bot API. Two independent bot-token/chat-id pairs are supported, one for
// login alerts and one for registration alerts, selected by which config
// fields are populated.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	portal_errors "acceso-portal/pkg/errors"
	"acceso-portal/pkg/logger"
)

const (
	sendTimeout  = 5 * time.Second
	maxUserAgent = 50
)

type TelegramConfig struct {
	BaseURL          string
	LoginBotToken    string
	LoginChatID      string
	RegisterBotToken string
	RegisterChatID   string
}

type TelegramNotifier struct {
	cfg    TelegramConfig
	client *http.Client
	logger *logger.Logger
}

func NewTelegramNotifier(cfg TelegramConfig, l *logger.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: sendTimeout},
		logger: l,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type sendMessageResponse struct {
	Ok bool `json:"ok"`
}

func (n *TelegramNotifier) NotifyLogin(ctx context.Context, ev LoginEvent) error {
	return n.send(ctx, n.cfg.LoginBotToken, n.cfg.LoginChatID, formatLogin(ev))
}

func (n *TelegramNotifier) NotifyRegistration(ctx context.Context, ev RegistrationEvent) error {
	return n.send(ctx, n.cfg.RegisterBotToken, n.cfg.RegisterChatID, formatRegistration(ev))
}

func (n *TelegramNotifier) send(ctx context.Context, token, chatID, text string) error {
	if token == "" || chatID == "" {
		if n.logger != nil {
			n.logger.InfofCtx(ctx, "telegram pair not configured, alert dropped")
		}
		return portal_errors.ErrNotConfigured
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(n.cfg.BaseURL, "/"), token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		if n.logger != nil {
			n.logger.ErrorfCtx(ctx, "telegram send failed: %s", err)
		}
		return portal_errors.ErrNotifierFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if n.logger != nil {
			n.logger.ErrorfCtx(ctx, "telegram send failed: status %d", resp.StatusCode)
		}
		return portal_errors.ErrNotifierFailed
	}

	var body sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if n.logger != nil {
			n.logger.ErrorfCtx(ctx, "telegram response decode failed: %s", err)
		}
		return portal_errors.ErrNotifierFailed
	}
	if !body.Ok {
		if n.logger != nil {
			n.logger.ErrorfCtx(ctx, "telegram did not acknowledge the message")
		}
		return portal_errors.ErrNotifierFailed
	}

	return nil
}

func formatLogin(ev LoginEvent) string {
	result := "❌ Credenciales rechazadas"
	if ev.Matched {
		result = "✅ Acceso concedido"
	}
	return fmt.Sprintf(
		"🔐 *INTENTO DE ACCESO*\n\n📧 Email: `%s`\n%s\n\n%s",
		ev.Email, result, formatMeta(ev.Meta),
	)
}

func formatRegistration(ev RegistrationEvent) string {
	return fmt.Sprintf(
		"🆕 *NUEVO REGISTRO* (#%d)\n\n👤 Nombre: %s %s\n📧 Email: `%s`\n📱 Teléfono: %s %s\n🎫 Código: %s\n\n%s",
		ev.UserID, ev.FirstName, ev.LastName, ev.Email,
		ev.PhoneCode, ev.Phone, ev.RegistrationCode, formatMeta(ev.Meta),
	)
}

func formatMeta(m ClientMeta) string {
	ua := m.UserAgent
	if len(ua) > maxUserAgent {
		ua = ua[:maxUserAgent]
	}
	return fmt.Sprintf("📍 IP: %s\n🖥️ Device: %s\n⏰ %s",
		m.IP, ua, m.At.Format("2006-01-02 15:04:05 MST"))
}
