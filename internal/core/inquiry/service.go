// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package inquiry

import (
	"context"
	"log/slog"

	"github.com/mumudesign/studio-api/internal/platform/apperr"
	"github.com/mumudesign/studio-api/internal/platform/validate"
)

// # Service Layer

// Service validates consultation requests and hands them to the relay.
// Nothing is stored locally; the relay endpoint is the system of record for
// inquiries.
type Service struct {
	sender Sender
	logger *slog.Logger
}

// NewService constructs a new [Service] with its relay dependency.
func NewService(sender Sender, logger *slog.Logger) *Service {
	return &Service{sender: sender, logger: logger}
}

/*
Submit validates and forwards a consultation request.

Description: All fields are required and the privacy consent box must be
checked. A relay failure surfaces as an upstream error so the caller can
show a retry prompt while keeping the form contents.

Parameters:
  - context: context.Context
  - inquiry: Inquiry

Returns:
  - error: Validation errors, or BadGateway when the relay refuses
*/
func (service *Service) Submit(context context.Context, inquiry Inquiry) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, inquiry.Name)
	validator.Required(FieldPhone, inquiry.Phone)
	validator.Required(FieldMessage, inquiry.Message)
	validator.True(FieldConsent, inquiry.Consent, "privacy consent is required")
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.sender.Send(context, inquiry); err != nil {
		service.logger.Error("inquiry_relay_failed", slog.String("error", err.Error()))
		return apperr.BadGateway("inquiry could not be delivered, please retry", err)
	}

	service.logger.Info("inquiry_relayed")
	return nil
}
