package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"gopkg.in/gomail.v2"

	"sportconnect-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer

	// In-memory storage for verification codes
	verificationCodes map[string]VerificationCode
	mutex             sync.RWMutex
}

type VerificationCode struct {
	Code      string    `json:"code"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	service := &EmailService{
		config:            cfg,
		dialer:            dialer,
		verificationCodes: make(map[string]VerificationCode),
	}

	go service.cleanupExpiredCodes()

	return service
}

func (es *EmailService) generateVerificationCode() string {
	const digits = "0123456789"
	code := make([]byte, 4)

	for i := range code {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		code[i] = digits[num.Int64()]
	}

	return string(code)
}

// SendVerificationEmail mails a 4-digit code valid for 10 minutes. A still
// valid unused code is reused instead of generating a new one.
func (es *EmailService) SendVerificationEmail(email, name string) (string, error) {
	es.mutex.RLock()
	existingCode, exists := es.verificationCodes[email]
	es.mutex.RUnlock()

	var code string
	if exists && !existingCode.Used && time.Now().Before(existingCode.ExpiresAt) {
		code = existingCode.Code
	} else {
		code = es.generateVerificationCode()

		es.mutex.Lock()
		es.verificationCodes[email] = VerificationCode{
			Code:      code,
			Email:     email,
			ExpiresAt: time.Now().Add(10 * time.Minute),
			Used:      false,
		}
		es.mutex.Unlock()
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "SportConnect - Email Verification")

	textBody := fmt.Sprintf(`Hello %s!

Welcome to SportConnect! Please verify your email address to complete your registration.

Your verification code is: %s

This code will expire in 10 minutes.

If you didn't create an account with SportConnect, please ignore this email.

The SportConnect Team`, name, code)

	m.SetBody("text/plain", textBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send verification email: %w", err)
	}

	return code, nil
}

// VerifyCode checks a submitted code and marks it used on success.
func (es *EmailService) VerifyCode(email, code string) bool {
	es.mutex.Lock()
	defer es.mutex.Unlock()

	stored, exists := es.verificationCodes[email]
	if !exists || stored.Used || time.Now().After(stored.ExpiresAt) {
		return false
	}
	if stored.Code != code {
		return false
	}

	stored.Used = true
	es.verificationCodes[email] = stored
	return true
}

// GetVerificationCode exposes the pending code for an email. Debug use only.
func (es *EmailService) GetVerificationCode(email string) (string, bool) {
	es.mutex.RLock()
	defer es.mutex.RUnlock()

	stored, exists := es.verificationCodes[email]
	if !exists || stored.Used || time.Now().After(stored.ExpiresAt) {
		return "", false
	}
	return stored.Code, true
}

// SendWelcomeEmail mails the post-verification welcome message.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to SportConnect!")

	textBody := fmt.Sprintf(`Hello %s!

Your email is verified and your SportConnect account is ready.

Log your activities and meals, plan routes with live navigation, and join
routes shared by the community.

Train well!
The SportConnect Team`, name)

	m.SetBody("text/plain", textBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

func (es *EmailService) cleanupExpiredCodes() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		es.mutex.Lock()
		now := time.Now()
		for email, code := range es.verificationCodes {
			if code.Used || now.After(code.ExpiresAt) {
				delete(es.verificationCodes, email)
			}
		}
		es.mutex.Unlock()
	}
}
