package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendEmailVerification(ctx context.Context, toEmail, fullName, verificationToken string) error {
	args := m.Called(ctx, toEmail, fullName, verificationToken)
	return args.Error(0)
}

func (m *EmailService) SendPasswordResetEmail(ctx context.Context, toEmail, fullName, resetToken string) error {
	args := m.Called(ctx, toEmail, fullName, resetToken)
	return args.Error(0)
}

func (m *EmailService) SendBookingConfirmedEmail(ctx context.Context, toEmail, clientName, expertName, date, timeSlot string) error {
	args := m.Called(ctx, toEmail, clientName, expertName, date, timeSlot)
	return args.Error(0)
}

func (m *EmailService) SendBookingRejectedEmail(ctx context.Context, toEmail, clientName, expertName, reason string) error {
	args := m.Called(ctx, toEmail, clientName, expertName, reason)
	return args.Error(0)
}
