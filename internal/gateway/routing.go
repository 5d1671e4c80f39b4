package gateway

import (
	"strconv"

	"github.com/twilio/twilio-go/twiml"
	"go.uber.org/zap"
)

const (
	fallbackDocument = `<?xml version="1.0" encoding="UTF-8"?><Response><Hangup/></Response>`
	emptyDocument    = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

	defaultDialTimeout   = 20
	defaultVoicemailMax  = 120
	acceptGateDigit      = "1"
	acceptGateTimeout    = "10"
	defaultHangupMessage = "Sorry, we can't take your call right now. Please try again later."
	defaultVoicemailText = "Please leave a message after the tone."
	defaultGatePrompt    = "Incoming customer call. Press 1 to accept."
)

type router struct {
	logger *zap.Logger
}

func newRouter(logger *zap.Logger) *router {
	return &router{logger: logger}
}

func (r *router) build(kind DocumentKind, p RoutingParams) string {
	var verbs []twiml.Element

	switch kind {
	case DocumentForward:
		if p.ForwardTo == "" {
			return r.build(DocumentHangup, p)
		}
		number := &twiml.VoiceNumber{PhoneNumber: p.ForwardTo}
		if p.Gate && p.ScreenURL != "" {
			number.Url = p.ScreenURL
		}
		verbs = append(verbs, &twiml.VoiceDial{
			Action:        p.ActionURL,
			Timeout:       strconv.Itoa(orDefault(p.TimeoutSeconds, defaultDialTimeout)),
			CallerId:      p.CallerID,
			InnerElements: []twiml.Element{number},
		})
	case DocumentVoicemail:
		verbs = append(verbs,
			&twiml.VoiceSay{Message: orDefaultText(p.Message, defaultVoicemailText)},
			&twiml.VoiceRecord{
				Action:                  p.RecordingCallbackURL,
				RecordingStatusCallback: p.RecordingCallbackURL,
				MaxLength:               strconv.Itoa(orDefault(p.MaxLengthSeconds, defaultVoicemailMax)),
				PlayBeep:                "true",
			},
			&twiml.VoiceHangup{},
		)
	case DocumentHangup:
		verbs = append(verbs,
			&twiml.VoiceSay{Message: orDefaultText(p.Message, defaultHangupMessage)},
			&twiml.VoiceHangup{},
		)
	case DocumentAcceptGate:
		verbs = append(verbs,
			&twiml.VoiceGather{
				NumDigits: acceptGateDigit,
				Action:    p.ActionURL,
				Timeout:   acceptGateTimeout,
				InnerElements: []twiml.Element{
					&twiml.VoiceSay{Message: orDefaultText(p.Message, defaultGatePrompt)},
				},
			},
			&twiml.VoiceHangup{},
		)
	case DocumentReject:
		verbs = append(verbs, &twiml.VoiceHangup{})
	case DocumentEmpty:
		return emptyDocument
	default:
		r.logger.Warn("Unknown routing document kind", zap.String("kind", string(kind)))
		return fallbackDocument
	}

	doc, err := twiml.Voice(verbs)
	if err != nil {
		r.logger.Error("Failed to encode routing document", zap.String("kind", string(kind)), zap.Error(err))
		return fallbackDocument
	}
	return doc
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func orDefaultText(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
