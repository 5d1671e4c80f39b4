package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/twilio/twilio-go/client"
	"go.uber.org/zap"
)

const (
	twilioSignatureHeader   = "X-Twilio-Signature"
	twilioIdempotencyHeader = "I-Twilio-Idempotency-Token"
)

// TwilioSignature verifies X-Twilio-Signature against the public URL the
// provider called. publicBaseURL replaces scheme and host because the
// service usually runs behind a proxy. A bad signature is answered with 403;
// this is authentication, so it does not fail open.
func TwilioSignature(authToken, publicBaseURL string, logger *zap.Logger) func(next http.Handler) http.Handler {
	validator := client.NewRequestValidator(authToken)
	base := strings.TrimRight(publicBaseURL, "/")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				logger.Warn("Unreadable webhook body", zap.String("path", r.URL.Path), zap.Error(err))
				forbidden(w, r)
				return
			}

			params := make(map[string]string, len(r.PostForm))
			for k, v := range r.PostForm {
				if len(v) > 0 {
					params[k] = v[0]
				}
			}

			url := base + r.URL.RequestURI()
			if !validator.Validate(url, params, r.Header.Get(twilioSignatureHeader)) {
				logger.Warn("Webhook signature rejected",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("url", url))
				forbidden(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func forbidden(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusForbidden)
	render.JSON(w, r, map[string]interface{}{
		"error":   ErrorCodeInvalidSignature,
		"message": ErrorMessageInvalidSignature,
	})
}
