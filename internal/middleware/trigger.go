package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/render"
)

// TriggerSecretHeader carries the shared secret of the sweep trigger.
const TriggerSecretHeader = "X-Trigger-Secret"

// TriggerSecret rejects requests whose X-Trigger-Secret header does not
// equal secret. An empty secret rejects everything.
func TriggerSecret(secret string) func(next http.Handler) http.Handler {
	want := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(TriggerSecretHeader))
			if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, map[string]interface{}{
					"error":   ErrorCodeUnauthorized,
					"message": ErrorMessageUnauthorized,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
