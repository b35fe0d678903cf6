package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"soulsynergy/internal/config"
)

type EmailService interface {
	SendEmailVerification(ctx context.Context, toEmail, fullName, verificationToken string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error
	SendBookingConfirmedEmail(ctx context.Context, toEmail, clientName, expertName, date, timeSlot string) error
	SendBookingRejectedEmail(ctx context.Context, toEmail, clientName, expertName, reason string) error
}

type emailService struct {
	client *resend.Client
	config *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &emailService{
		client: client,
		config: cfg,
	}
}

func (s *emailService) SendEmailVerification(ctx context.Context, toEmail, fullName, verificationToken string) error {
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", s.config.FrontendURL, verificationToken)

	html := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h1 style="color: #7c3aed;">SoulSynergy</h1>
	<h2>Здравствуйте, %s!</h2>
	<p>Спасибо за регистрацию на SoulSynergy. Подтвердите ваш email, чтобы активировать аккаунт:</p>
	<div style="text-align: center; margin: 30px 0;">
		<a href="%s" style="background-color: #7c3aed; color: #ffffff; padding: 14px 28px; text-decoration: none; border-radius: 6px; font-weight: bold;">
			Подтвердить email
		</a>
	</div>
	<p style="font-size: 14px; color: #6b7280;">Ссылка действительна 24 часа. Если вы не регистрировались, просто проигнорируйте это письмо.</p>
</div>`, fullName, verifyURL)

	return s.send(ctx, toEmail, "Подтвердите ваш email — SoulSynergy", html)
}

func (s *emailService) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.config.FrontendURL, resetToken)

	html := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h1 style="color: #7c3aed;">SoulSynergy</h1>
	<h2>Здравствуйте, %s!</h2>
	<p>Мы получили запрос на сброс пароля. Перейдите по ссылке, чтобы задать новый пароль:</p>
	<div style="text-align: center; margin: 30px 0;">
		<a href="%s" style="background-color: #7c3aed; color: #ffffff; padding: 14px 28px; text-decoration: none; border-radius: 6px; font-weight: bold;">
			Сбросить пароль
		</a>
	</div>
	<p style="font-size: 14px; color: #6b7280;">Ссылка действительна 1 час. Если вы не запрашивали сброс, проигнорируйте это письмо.</p>
</div>`, fullName, resetURL)

	return s.send(ctx, toEmail, "Сброс пароля — SoulSynergy", html)
}

func (s *emailService) SendBookingConfirmedEmail(ctx context.Context, toEmail, clientName, expertName, date, timeSlot string) error {
	html := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h1 style="color: #7c3aed;">SoulSynergy</h1>
	<h2>Здравствуйте, %s!</h2>
	<p>Эксперт <strong>%s</strong> подтвердил вашу запись.</p>
	<div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px;">
		<div><strong>Дата:</strong> %s</div>
		<div><strong>Время:</strong> %s</div>
	</div>
</div>`, clientName, expertName, date, timeSlot)

	return s.send(ctx, toEmail, "Запись подтверждена — SoulSynergy", html)
}

func (s *emailService) SendBookingRejectedEmail(ctx context.Context, toEmail, clientName, expertName, reason string) error {
	html := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h1 style="color: #7c3aed;">SoulSynergy</h1>
	<h2>Здравствуйте, %s!</h2>
	<p>К сожалению, эксперт <strong>%s</strong> отклонил вашу запись.</p>
	<div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px;">
		<strong>Причина:</strong> %s
	</div>
	<p>Вы можете выбрать другое время или другого эксперта.</p>
</div>`, clientName, expertName, reason)

	return s.send(ctx, toEmail, "Запись отклонена — SoulSynergy", html)
}

func (s *emailService) send(ctx context.Context, toEmail, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("SoulSynergy <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
