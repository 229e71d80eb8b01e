package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMailerService_SendMail(t *testing.T) {
	var received MailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s := &MailerService{MailerServiceURL: server.URL, client: &http.Client{Timeout: 5 * time.Second}}
	mail := MailRequest{To: "sam@example.com", Subject: "Verify Your Email", HTML: "<p>hi</p>"}
	assert.NoError(t, s.SendMail(context.Background(), mail))
	assert.Equal(t, mail, received)
}

func TestMailerService_SendMailFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := &MailerService{MailerServiceURL: server.URL, client: &http.Client{Timeout: 5 * time.Second}}
	err := s.SendMail(context.Background(), MailRequest{To: "sam@example.com"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
