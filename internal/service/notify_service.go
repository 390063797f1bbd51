package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// NotifyService sends plan-ready emails to parents via Amazon SES
type NotifyService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

// NewNotifyService creates a new notification service. When fromEmail is
// empty the service is disabled and all sends become no-ops.
func NewNotifyService(awsRegion, fromEmail, fromName, appBaseURL string) (*NotifyService, error) {
	if fromEmail == "" {
		log.Println("Notification service disabled: SES_FROM_EMAIL not configured")
		return &NotifyService{enabled: false}, nil
	}

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)

	log.Printf("Notification service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &NotifyService{
		client:     client,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
	}, nil
}

// IsEnabled returns whether the notification service is enabled
func (s *NotifyService) IsEnabled() bool {
	return s.enabled
}

// SendPlanReadyEmail tells a parent that a new monthly plan is available
func (s *NotifyService) SendPlanReadyEmail(ctx context.Context, toEmail, childName, monthYear string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): plan ready for %s", childName)
		return nil
	}
	if toEmail == "" {
		return nil
	}

	planLink := fmt.Sprintf("%s/plans", s.appBaseURL)

	subject := fmt.Sprintf("%s's learning plan for %s is ready", childName, monthYear)
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #4a90e2;">New learning plan ready</h1>
		<p>%s's learning plan for %s has been generated.</p>
		<p><a href="%s" style="display: inline-block; padding: 12px 30px; background-color: #4a90e2; color: white; text-decoration: none; border-radius: 5px;">View the plan</a></p>
		<p style="font-size: 12px; color: #666;">This is an automated email from PlanWeaver. Please do not reply.</p>
	</div>
</body>
</html>
`, childName, monthYear, planLink)

	textBody := fmt.Sprintf(`%s's learning plan for %s has been generated.

View the plan: %s
`, childName, monthYear, planLink)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

// send delivers an email via SES
func (s *NotifyService) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := s.fromEmail
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data: aws.String(subject),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data: aws.String(htmlBody),
					},
					Text: &types.Content{
						Data: aws.String(textBody),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent: %s to %s", subject, toEmail)
	return nil
}
