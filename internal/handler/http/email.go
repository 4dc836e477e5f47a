package http

import (
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/email"
)

// EmailHandler exposes a diagnostic endpoint that fires a test
// notification at the configured department recipients.
type EmailHandler interface {
	SendTest(w http.ResponseWriter, r *http.Request)
}

type emailHandlerImpl struct {
	emailService email.Service
}

func NewEmailHandler(emailService email.Service) EmailHandler {
	return &emailHandlerImpl{
		emailService: emailService,
	}
}

// SendTest implements EmailHandler.
func (h *emailHandlerImpl) SendTest(w http.ResponseWriter, r *http.Request) {
	// The SendResult carries the failure detail; the caller asked for a
	// diagnostic, not an error page.
	result, _ := h.emailService.SendTestEmail(r.Context())
	response.OK(w, result)
}
