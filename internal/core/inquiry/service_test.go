// Copyright (c) 2026 Mumu Design Studio. All rights reserved.
// Author: dev@mumudesign.kr

package inquiry_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumudesign/studio-api/internal/core/inquiry"
	"github.com/mumudesign/studio-api/internal/platform/apperr"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validInquiry() inquiry.Inquiry {
	return inquiry.Inquiry{
		Name:    "김수현",
		Phone:   "010-1234-5678",
		Message: "아파트 리모델링 상담을 받고 싶습니다.",
		Consent: true,
	}
}

/*
TestSubmit_ForwardsFormEncoded verifies the relay receives a form-encoded
POST with every field, and that a 2xx response counts as delivered.
*/
func TestSubmit_ForwardsFormEncoded(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		require.NoError(t, request.ParseForm())
		received = map[string]string{
			"name":    request.PostFormValue("name"),
			"phone":   request.PostFormValue("phone"),
			"message": request.PostFormValue("message"),
			"consent": request.PostFormValue("consent"),
		}
		assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	service := inquiry.NewService(inquiry.NewRelay(server.URL), discardLogger())

	err := service.Submit(context.Background(), validInquiry())
	require.NoError(t, err)

	assert.Equal(t, "김수현", received["name"])
	assert.Equal(t, "010-1234-5678", received["phone"])
	assert.Equal(t, "true", received["consent"])
	assert.NotEmpty(t, received["message"])
}

/*
TestSubmit_Validation covers required fields and the consent requirement.
*/
func TestSubmit_Validation(t *testing.T) {
	service := inquiry.NewService(inquiry.NewRelay("http://relay.invalid"), discardLogger())
	ctx := context.Background()

	testCases := []struct {
		name   string
		mutate func(*inquiry.Inquiry)
	}{
		{"missing name", func(in *inquiry.Inquiry) { in.Name = "" }},
		{"missing phone", func(in *inquiry.Inquiry) { in.Phone = "" }},
		{"missing message", func(in *inquiry.Inquiry) { in.Message = "" }},
		{"consent unchecked", func(in *inquiry.Inquiry) { in.Consent = false }},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			input := validInquiry()
			testCase.mutate(&input)

			err := service.Submit(ctx, input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestSubmit_RelayFailure verifies that a non-2xx relay response surfaces as
an upstream error, not a validation problem.
*/
func TestSubmit_RelayFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	service := inquiry.NewService(inquiry.NewRelay(server.URL), discardLogger())

	err := service.Submit(context.Background(), validInquiry())
	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_ERROR", apperr.As(err).Code)
}
