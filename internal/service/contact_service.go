package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrContactRelayFailed 表示第三方表单中转服务返回了失败状态。
var ErrContactRelayFailed = errors.New("contact relay failed")

// messageMinimum 为留言内容的最小长度（按字符计）。
const messageMinimum = 10

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ContactInput carries one contact form submission.
type ContactInput struct {
	Name      string
	Email     string
	Subject   string
	Phone     string
	Message   string
	UserAgent string
}

// ContactService forwards contact form submissions to a third-party form
// relay endpoint. Success or failure is decided by HTTP status alone; there
// is no retry — submissions are user-initiated and user-retried.
type ContactService struct {
	endpoint   string
	httpClient httpDoer
	now        func() time.Time
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewContactService 构造 ContactService。
func NewContactService(endpoint string) *ContactService {
	return &ContactService{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
}

// SetHTTPClient 替换用于访问第三方服务的 HTTP 客户端，主要面向测试场景。
func (s *ContactService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.httpClient = &http.Client{Timeout: 10 * time.Second}
		return
	}
	s.httpClient = client
}

// SetClock 替换时间源，主要面向测试场景。
func (s *ContactService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Validate checks a submission locally and returns one error per invalid
// field. Phone is optional.
func (s *ContactService) Validate(input ContactInput) []FieldError {
	var fields []FieldError

	if strings.TrimSpace(input.Name) == "" {
		fields = append(fields, FieldError{Field: "name", Message: "Name is required"})
	}

	email := strings.TrimSpace(input.Email)
	switch {
	case email == "":
		fields = append(fields, FieldError{Field: "email", Message: "Email is required"})
	case !emailPattern.MatchString(email):
		fields = append(fields, FieldError{Field: "email", Message: "Please enter a valid email address"})
	}

	if strings.TrimSpace(input.Subject) == "" {
		fields = append(fields, FieldError{Field: "subject", Message: "Subject is required"})
	}

	message := strings.TrimSpace(input.Message)
	switch {
	case message == "":
		fields = append(fields, FieldError{Field: "message", Message: "Message is required"})
	case utf8.RuneCountInString(message) < messageMinimum:
		fields = append(fields, FieldError{Field: "message", Message: "Message must be at least 10 characters"})
	}

	return fields
}

// Submit validates the input and posts it to the relay endpoint.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) error {
	if fields := s.Validate(input); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		phone = "Not provided"
	}

	payload := map[string]string{
		"Name":            strings.TrimSpace(input.Name),
		"Email":           strings.TrimSpace(input.Email),
		"Subject":         strings.TrimSpace(input.Subject),
		"Phone Number":    phone,
		"Message":         strings.TrimSpace(input.Message),
		"_replyto":        strings.TrimSpace(input.Email),
		"_subject":        fmt.Sprintf("New Contact Form Submission: %s", strings.TrimSpace(input.Subject)),
		"Form Source":     "INARA TECH Website Contact Form",
		"Submission Time": s.now().Format("2006-01-02 15:04:05"),
	}
	if ua := strings.TrimSpace(input.UserAgent); ua != "" {
		payload["User Agent"] = ua
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode contact payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	client := s.httpClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrContactRelayFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		msg := strings.TrimSpace(string(detail))
		if msg != "" {
			return fmt.Errorf("%w: %s (%s)", ErrContactRelayFailed, resp.Status, msg)
		}
		return fmt.Errorf("%w: %s", ErrContactRelayFailed, resp.Status)
	}

	return nil
}
