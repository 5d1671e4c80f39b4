// Package templates renders outbound message bodies from tenant templates.
package templates

import (
	"strings"
)

// Placeholders understood by Render.
const (
	FirstName    = "first_name"
	Name         = "name"
	BusinessName = "business_name"
	ReviewLink   = "review_link"
	JobTitle     = "job_title"
	CallerNumber = "caller_number"
)

// Default bodies used when neither the tenant nor config overrides them.
const (
	DefaultArrival      = "Hi {first_name}, your technician from {business_name} is on the way."
	DefaultCancellation = "Hi {first_name}, your appointment with {business_name} has been cancelled. Reply to reschedule."
	DefaultReview       = "Hi {first_name}, thanks for choosing {business_name}! Would you leave us a quick review? {review_link}"
	DefaultReminder1    = "Hi {first_name}, just a reminder: we'd love your feedback on {business_name}. {review_link}"
	DefaultReminder2    = "Last nudge from {business_name}: your review helps a small business a lot. {review_link}"
	DefaultMissedCall   = "Sorry we missed your call! This is {business_name}. How can we help?"
)

// Vars are the substitution values for one message.
type Vars map[string]string

// Render replaces every {key} in tpl with its value. Unknown placeholders are
// left as written; an empty first_name renders as "there".
func Render(tpl string, vars Vars) string {
	if tpl == "" {
		return ""
	}

	pairs := make([]string, 0, len(vars)*2+2)
	for k, v := range vars {
		if k == FirstName && strings.TrimSpace(v) == "" {
			continue
		}
		pairs = append(pairs, "{"+k+"}", v)
	}
	if v, ok := vars[FirstName]; !ok || strings.TrimSpace(v) == "" {
		pairs = append(pairs, "{"+FirstName+"}", "there")
	}

	out := strings.NewReplacer(pairs...).Replace(tpl)
	return strings.TrimSpace(out)
}

// Placeholders returns the {key} names used in tpl, in order of appearance.
func Placeholders(tpl string) []string {
	var keys []string
	seen := make(map[string]bool)
	for {
		start := strings.IndexByte(tpl, '{')
		if start < 0 {
			return keys
		}
		end := strings.IndexByte(tpl[start:], '}')
		if end < 0 {
			return keys
		}
		key := tpl[start+1 : start+end]
		if key != "" && !strings.ContainsAny(key, "{ ") && !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
		tpl = tpl[start+end+1:]
	}
}
