// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package inquiry

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mumudesign/studio-api/internal/platform/constants"
)

// Sender defines the contract for forwarding an inquiry to the hosted
// form-relay endpoint.
type Sender interface {
	// Send forwards the inquiry. Only success or failure is reported; the
	// relay's response body is not consumed.
	Send(ctx context.Context, inquiry Inquiry) error
}

// Relay is the HTTP [Sender] posting form-encoded submissions to the
// configured relay endpoint. One submission, one request: no retry, no
// structured response.
type Relay struct {
	endpoint string
	client   *http.Client
}

// NewRelay constructs a [Relay] for the given endpoint URL.
func NewRelay(endpoint string) *Relay {
	return &Relay{
		endpoint: endpoint,
		client:   &http.Client{Timeout: constants.RelayRequestTimeout},
	}
}

// Send implements [Sender].
func (relay *Relay) Send(ctx context.Context, inquiry Inquiry) error {
	form := url.Values{}
	form.Set("name", inquiry.Name)
	form.Set("phone", inquiry.Phone)
	form.Set("message", inquiry.Message)
	form.Set("consent", strconv.FormatBool(inquiry.Consent))

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, relay.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("inquiry_relay_request_failed: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept", "application/json")

	response, err := relay.client.Do(request)
	if err != nil {
		return fmt.Errorf("inquiry_relay_send_failed: %w", err)
	}
	defer response.Body.Close()

	// Success/failure only; the relay's payload carries nothing we use.
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("inquiry_relay_rejected: status %d", response.StatusCode)
	}

	return nil
}
