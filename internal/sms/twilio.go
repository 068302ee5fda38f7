package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shenikar/crime_reporting_system/internal/config"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioClient talks to the Twilio Messages REST API.
type TwilioClient struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	httpClient *http.Client
}

// NewTwilioClient returns a provider client, or nil when the credentials are
// not configured. A nil client puts the Sender into simulation mode.
func NewTwilioClient(cfg *config.Config) *TwilioClient {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioPhoneNumber == "" {
		return nil
	}
	return &TwilioClient{
		accountSID: cfg.TwilioAccountSID,
		authToken:  cfg.TwilioAuthToken,
		fromNumber: cfg.TwilioPhoneNumber,
		baseURL:    twilioAPIBase,
		httpClient: &http.Client{
			Timeout: cfg.SMSTimeout,
		},
	}
}

// SendMessage posts a message to Twilio and returns the message SID.
func (c *TwilioClient) SendMessage(ctx context.Context, to, body string) (string, error) {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.fromNumber)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create twilio request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send twilio request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read twilio response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("twilio returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var message struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(respBody, &message); err != nil {
		return "", fmt.Errorf("failed to unmarshal twilio response: %w", err)
	}
	return message.SID, nil
}
