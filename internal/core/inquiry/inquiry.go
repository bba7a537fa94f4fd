// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package inquiry

// Inquiry is a consultation request from the quick-inquiry or contact form.
type Inquiry struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Consent bool   `json:"consent"`
}

// Validation field identifiers.
const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldMessage = "message"
	FieldConsent = "consent"
)
