package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeEmailSender struct {
	to, subject, html string
	err               error
}

func (f *fakeEmailSender) Send(ctx context.Context, to, subject, html string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.to, f.subject, f.html = to, subject, html
	return "email-123", nil
}

func newEmailTestRouter(sender EmailSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/send-contact", NewEmailHandler(sender).SendContact)
	return r
}

func TestSendContactValidation(t *testing.T) {
	r := newEmailTestRouter(&fakeEmailSender{})

	for _, body := range []string{
		`{}`,
		`{"to":"a@b.com"}`,
		`{"to":"a@b.com","subject":"hi"}`,
		`not json`,
	} {
		w := doJSON(r, http.MethodPost, "/send-contact", body, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, w.Code)
		}
	}
}

func TestSendContactSuccess(t *testing.T) {
	sender := &fakeEmailSender{}
	r := newEmailTestRouter(sender)

	w := doJSON(r, http.MethodPost, "/send-contact", `{"to":"a@b.com","subject":"hi","html":"<b>hola</b>"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	if sender.to != "a@b.com" || sender.subject != "hi" || sender.html != "<b>hola</b>" {
		t.Fatalf("sender received %q %q %q", sender.to, sender.subject, sender.html)
	}
}

func TestSendContactProviderError(t *testing.T) {
	r := newEmailTestRouter(&fakeEmailSender{err: errors.New("rate limited")})

	w := doJSON(r, http.MethodPost, "/send-contact", `{"to":"a@b.com","subject":"hi","html":"x"}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
