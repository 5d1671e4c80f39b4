package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/popeskul/crewreach/internal/callback"
	"github.com/popeskul/crewreach/internal/gateway"
	"github.com/popeskul/crewreach/internal/service"
)

const contentTypeXML = "text/xml; charset=utf-8"

// WebhookHandler serves the provider callbacks. Every request is answered
// with 200 and a routing document so the provider never retries because of
// an internal failure; errors are logged instead.
type WebhookHandler struct {
	telephony service.TelephonyService
	dedupe    service.Deduper
	gateway   gateway.Gateway
	logger    *zap.Logger
}

func NewWebhookHandler(svc *service.Service, gw gateway.Gateway, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		telephony: svc.Telephony,
		dedupe:    svc.Dedupe,
		gateway:   gw,
		logger:    logger,
	}
}

// Routes mounts the provider endpoints on r.
func (h *WebhookHandler) Routes(r chi.Router) {
	r.Post("/voice/incoming", h.IncomingCall)
	r.Post("/voice/screen", h.Screen)
	r.Post("/voice/screen-result", h.ScreenResult)
	r.Post("/voice/dial-status", h.DialStatus)
	r.Post("/voice/recording", h.Recording)
	r.Post("/sms/incoming", h.IncomingSMS)
	r.Post("/sms/status", h.SMSStatus)
}

func (h *WebhookHandler) IncomingCall(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	ev := service.CallEvent{
		CallSID: r.PostForm.Get("CallSid"),
		From:    r.PostForm.Get("From"),
		To:      r.PostForm.Get("To"),
	}

	doc, err := h.telephony.IncomingCall(r.Context(), ev)
	if err != nil {
		h.logger.Warn("Incoming call handled with fallback",
			zap.String("call_sid", ev.CallSID),
			zap.String("to", ev.To),
			zap.Error(err))
	}
	h.writeDocument(w, doc)
}

func (h *WebhookHandler) Screen(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	p, ok := h.callbackParams(r)
	if !ok {
		h.writeKind(w, gateway.DocumentReject)
		return
	}

	doc, err := h.telephony.Screen(r.Context(), p)
	if err != nil {
		h.logger.Warn("Screen prompt handled with fallback",
			zap.String("tenant_id", p.TenantID.String()),
			zap.Error(err))
	}
	h.writeDocument(w, doc)
}

func (h *WebhookHandler) ScreenResult(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	p, ok := h.callbackParams(r)
	if !ok {
		h.writeKind(w, gateway.DocumentReject)
		return
	}

	doc, err := h.telephony.ScreenResult(r.Context(), p, r.PostForm.Get("Digits"))
	if err != nil {
		h.logger.Warn("Screen result handled with fallback",
			zap.String("tenant_id", p.TenantID.String()),
			zap.Error(err))
	}
	h.writeDocument(w, doc)
}

func (h *WebhookHandler) DialStatus(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	p, ok := h.callbackParams(r)
	if !ok {
		h.writeKind(w, gateway.DocumentHangup)
		return
	}

	ev := service.DialEvent{
		CallSID: r.PostForm.Get("CallSid"),
		Outcome: service.ParseDialOutcome(r.PostForm.Get("DialCallStatus")),
	}
	if ev.CallSID != "" && ev.Outcome != service.DialAnswered {
		ev.Replay = !h.claim(r.Context(), "dial:"+ev.CallSID)
	}

	doc, err := h.telephony.DialOutcome(r.Context(), p, ev)
	if err != nil {
		h.logger.Warn("Dial outcome handled with fallback",
			zap.String("tenant_id", p.TenantID.String()),
			zap.String("call_sid", ev.CallSID),
			zap.String("outcome", string(ev.Outcome)),
			zap.Error(err))
	}
	h.writeDocument(w, doc)
}

func (h *WebhookHandler) Recording(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	p, ok := h.callbackParams(r)
	if !ok {
		h.writeKind(w, gateway.DocumentReject)
		return
	}

	duration, _ := strconv.Atoi(r.PostForm.Get("RecordingDuration"))
	ev := service.RecordingEvent{
		CallSID:         r.PostForm.Get("CallSid"),
		RecordingSID:    r.PostForm.Get("RecordingSid"),
		RecordingURL:    r.PostForm.Get("RecordingUrl"),
		DurationSeconds: duration,
	}

	// Recording arrives both as the record action and as the status
	// callback; only the first one is stored.
	key := ev.RecordingSID
	if key == "" {
		key = ev.RecordingURL
	}
	if !h.claim(r.Context(), "rec:"+key) {
		h.writeKind(w, gateway.DocumentReject)
		return
	}

	doc, err := h.telephony.Recording(r.Context(), p, ev)
	if err != nil {
		h.logger.Warn("Recording dropped",
			zap.String("tenant_id", p.TenantID.String()),
			zap.String("call_sid", ev.CallSID),
			zap.Error(err))
	}
	h.writeDocument(w, doc)
}

func (h *WebhookHandler) IncomingSMS(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	ev := service.SMSEvent{
		MessageSID: r.PostForm.Get("MessageSid"),
		From:       r.PostForm.Get("From"),
		To:         r.PostForm.Get("To"),
		Body:       r.PostForm.Get("Body"),
		MediaURLs:  mediaURLs(r),
	}

	if h.claim(r.Context(), "sms:"+ev.MessageSID) {
		if err := h.telephony.IncomingSMS(r.Context(), ev); err != nil {
			h.logger.Warn("Inbound SMS dropped",
				zap.String("message_sid", ev.MessageSID),
				zap.String("to", ev.To),
				zap.Error(err))
		}
	}
	h.writeKind(w, gateway.DocumentEmpty)
}

func (h *WebhookHandler) SMSStatus(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	ev := service.StatusEvent{
		MessageSID:   r.PostForm.Get("MessageSid"),
		Status:       r.PostForm.Get("MessageStatus"),
		ErrorCode:    r.PostForm.Get("ErrorCode"),
		ErrorMessage: r.PostForm.Get("ErrorMessage"),
	}

	if h.claim(r.Context(), "status:"+ev.MessageSID+":"+ev.Status) {
		if err := h.telephony.DeliveryStatus(r.Context(), ev); err != nil {
			h.logger.Warn("Delivery status dropped",
				zap.String("message_sid", ev.MessageSID),
				zap.String("status", ev.Status),
				zap.Error(err))
		}
	}
	h.writeKind(w, gateway.DocumentEmpty)
}

func (h *WebhookHandler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("Unreadable webhook body",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		h.writeKind(w, gateway.DocumentEmpty)
		return false
	}
	return true
}

func (h *WebhookHandler) callbackParams(r *http.Request) (callback.Params, bool) {
	p, err := callback.Parse(r.URL.Query())
	if err != nil {
		h.logger.Warn("Callback without identity",
			zap.String("path", r.URL.Path),
			zap.Error(err))
		return callback.Params{}, false
	}
	return p, true
}

// claim reports whether this delivery is the first one for key. The
// deduper fails open, so an error still lets the event through.
func (h *WebhookHandler) claim(ctx context.Context, key string) bool {
	fresh, err := h.dedupe.Claim(ctx, key)
	if err != nil {
		h.logger.Warn("Dedupe unavailable", zap.String("key", key), zap.Error(err))
	}
	if !fresh {
		h.logger.Debug("Duplicate webhook ignored", zap.String("key", key))
	}
	return fresh
}

func (h *WebhookHandler) writeKind(w http.ResponseWriter, kind gateway.DocumentKind) {
	h.writeDocument(w, h.gateway.BuildRoutingDocument(kind, gateway.RoutingParams{}))
}

func (h *WebhookHandler) writeDocument(w http.ResponseWriter, doc string) {
	if doc == "" {
		doc = h.gateway.BuildRoutingDocument(gateway.DocumentEmpty, gateway.RoutingParams{})
	}
	w.Header().Set("Content-Type", contentTypeXML)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

func mediaURLs(r *http.Request) []string {
	n, err := strconv.Atoi(r.PostForm.Get("NumMedia"))
	if err != nil || n <= 0 {
		return nil
	}
	urls := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if u := r.PostForm.Get(fmt.Sprintf("MediaUrl%d", i)); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
