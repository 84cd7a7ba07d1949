package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"
)

// MailerConfig holds the raw HTTP mailer credentials. The teacher's
// equivalent config targets Resend; this repo keeps the same
// hand-rolled-POST shape against a generically named mailer endpoint so
// it can be pointed at Resend, Postmark, or any compatible transactional
// mail API without adding an SDK dependency.
type MailerConfig struct {
	APIKey string
	APIURL string
	From   string
}

func NewMailerConfig() *MailerConfig {
	apiKey := os.Getenv("MAILER_API_KEY")
	apiURL := os.Getenv("MAILER_API_URL")
	fromEmail := os.Getenv("FROM_EMAIL")
	if apiKey == "" || apiURL == "" || fromEmail == "" {
		log.Fatal("Missing mailer environment variables")
	}
	return &MailerConfig{APIKey: apiKey, APIURL: apiURL, From: fromEmail}
}

type mailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html"`
}

// MailerService sends plaintext/HTML email notifications.
type MailerService struct {
	Config *MailerConfig
}

func NewMailerService(lc fx.Lifecycle, config *MailerConfig) *MailerService {
	service := &MailerService{Config: config}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("Mailer service initialized")
			return nil
		},
	})
	return service
}

func (m *MailerService) SendEmail(to, subject, body string) error {
	payload := mailRequest{From: m.Config.From, To: []string{to}, Subject: subject, Html: body}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.Config.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.Config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("failed to send email, status code: %d, error: %v", resp.StatusCode, errResp)
	}

	log.Println("Email sent successfully to", to)
	return nil
}

// MailerModule wires the mailer client for fx.New composition.
var MailerModule = fx.Module("mailer",
	fx.Provide(NewMailerConfig),
	fx.Provide(NewMailerService),
)
