package services

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/sondregut/trackspeed-site/internal/email"
	"github.com/sondregut/trackspeed-site/internal/models"
	"github.com/sondregut/trackspeed-site/internal/push"
	"github.com/sondregut/trackspeed-site/internal/sms"
	"github.com/sondregut/trackspeed-site/internal/unsubscribe"
	"gorm.io/gorm"
)

var (
	ErrEmailNotConfigured = errors.New("no email provider configured")
	ErrSMSNotConfigured   = errors.New("no SMS provider configured")
	ErrPushNotConfigured  = errors.New("no push function configured")
)

// CampaignService performs admin-triggered email/SMS/push sends and writes
// one audit row per outbound message. There is no scheduler; production
// campaign automation lives outside this codebase.
type CampaignService struct {
	db                *gorm.DB
	emails            email.Sender
	sms               *sms.Client
	push              *push.Client
	siteBaseURL       string
	unsubscribeSecret string
}

func NewCampaignService(db *gorm.DB, emails email.Sender, smsClient *sms.Client, pushClient *push.Client, siteBaseURL, unsubscribeSecret string) *CampaignService {
	return &CampaignService{
		db:                db,
		emails:            emails,
		sms:               smsClient,
		push:              pushClient,
		siteBaseURL:       siteBaseURL,
		unsubscribeSecret: unsubscribeSecret,
	}
}

// SendTestEmail delivers one email to an arbitrary recipient and logs it.
func (s *CampaignService) SendTestEmail(to, subject, html string) (*models.EmailSendLog, error) {
	if s.emails == nil {
		return nil, ErrEmailNotConfigured
	}
	return s.sendOne(to, subject, html), nil
}

// SendCampaignEmail fans an email out to every opted-in contact, appending
// a personal unsubscribe footer. Returns sent/failed counts.
func (s *CampaignService) SendCampaignEmail(subject, html string) (sent, failed int, err error) {
	if s.emails == nil {
		return 0, 0, ErrEmailNotConfigured
	}

	var contacts []models.Contact
	if err := s.db.Where("unsubscribed = false").Find(&contacts).Error; err != nil {
		return 0, 0, err
	}

	for _, contact := range contacts {
		body := html + s.unsubscribeFooter(contact.Email)
		log := s.sendOne(contact.Email, subject, body)
		if log.Status == models.SendStatusSent {
			sent++
		} else {
			failed++
		}
	}
	return sent, failed, nil
}

func (s *CampaignService) sendOne(to, subject, html string) *models.EmailSendLog {
	log := models.EmailSendLog{
		Recipient: to,
		Subject:   subject,
		Provider:  s.emails.Provider(),
	}

	messageID, err := s.emails.Send(to, subject, html)
	if err != nil {
		log.Status = models.SendStatusFailed
		log.Error = err.Error()
		slog.Error("email send failed", "recipient", to, "error", err)
	} else {
		log.Status = models.SendStatusSent
		log.ProviderMessageID = messageID
	}

	if dbErr := s.db.Create(&log).Error; dbErr != nil {
		slog.Error("email send log write failed", "recipient", to, "error", dbErr)
	}
	return &log
}

func (s *CampaignService) unsubscribeFooter(emailAddr string) string {
	token := unsubscribe.Token(s.unsubscribeSecret, emailAddr)
	link := fmt.Sprintf("%s/unsubscribe?email=%s&token=%s",
		strings.TrimRight(s.siteBaseURL, "/"), url.QueryEscape(emailAddr), token)
	return fmt.Sprintf(`<p style="font-size:12px;color:#888;margin-top:32px;">
		You receive this because you signed up at trackspeed.app.
		<a href="%s">Unsubscribe</a></p>`, link)
}

// SendTestSMS delivers one SMS and logs it.
func (s *CampaignService) SendTestSMS(to, body string) (*models.SMSSendLog, error) {
	if s.sms == nil {
		return nil, ErrSMSNotConfigured
	}

	log := models.SMSSendLog{Recipient: to, Body: body}

	sid, err := s.sms.Send(to, body)
	if err != nil {
		log.Status = models.SendStatusFailed
		log.Error = err.Error()
		slog.Error("sms send failed", "recipient", to, "error", err)
	} else {
		log.Status = models.SendStatusSent
		log.ProviderSID = sid
	}

	if dbErr := s.db.Create(&log).Error; dbErr != nil {
		slog.Error("sms send log write failed", "recipient", to, "error", dbErr)
	}
	return &log, nil
}

// DispatchPush proxies a notification to the external push function and
// logs the outcome.
func (s *CampaignService) DispatchPush(title, body, audience string) (*models.NotificationLog, error) {
	if !s.push.Configured() {
		return nil, ErrPushNotConfigured
	}
	if audience == "" {
		audience = "all"
	}

	log := models.NotificationLog{Title: title, Body: body, Audience: audience}

	if err := s.push.Dispatch(title, body, audience); err != nil {
		log.Status = models.SendStatusFailed
		log.Error = err.Error()
		slog.Error("push dispatch failed", "audience", audience, "error", err)
	} else {
		log.Status = models.SendStatusSent
	}

	if dbErr := s.db.Create(&log).Error; dbErr != nil {
		slog.Error("notification log write failed", "error", dbErr)
	}
	return &log, nil
}
