package services

import "encoding/json"

// InboundEmail is the normalized form of an email webhook payload.
type InboundEmail struct {
	From    string
	Subject string
	Body    string
}

// webhookShape is one known vendor payload convention: a pure predicate plus
// an extractor, tried in a fixed priority order.
type webhookShape struct {
	name    string
	matches func(p map[string]interface{}) bool
	extract func(p map[string]interface{}) InboundEmail
}

var webhookShapes = []webhookShape{
	{
		// Zapier and other generic forwarders
		name: "generic",
		matches: func(p map[string]interface{}) bool {
			return stringField(p, "from") != "" || stringField(p, "sender") != ""
		},
		extract: func(p map[string]interface{}) InboundEmail {
			return InboundEmail{
				From:    stringField(p, "from", "sender", "from_email"),
				Subject: stringField(p, "subject"),
				Body:    stringField(p, "body", "text", "plain", "body_plain", "html", "content"),
			}
		},
	},
	{
		name: "mailgun",
		matches: func(p map[string]interface{}) bool {
			return stringField(p, "sender") != "" || stringField(p, "body-plain") != ""
		},
		extract: func(p map[string]interface{}) InboundEmail {
			return InboundEmail{
				From:    stringField(p, "sender"),
				Subject: stringField(p, "subject"),
				Body:    stringField(p, "body-plain", "stripped-text"),
			}
		},
	},
	{
		name: "sendgrid",
		matches: func(p map[string]interface{}) bool {
			_, ok := p["envelope"]
			return ok
		},
		extract: func(p map[string]interface{}) InboundEmail {
			// the envelope arrives either as a JSON string or pre-parsed
			var envelope map[string]interface{}
			switch v := p["envelope"].(type) {
			case string:
				_ = json.Unmarshal([]byte(v), &envelope)
			case map[string]interface{}:
				envelope = v
			}
			return InboundEmail{
				From:    stringField(envelope, "from"),
				Subject: stringField(p, "subject"),
				Body:    stringField(p, "text", "html"),
			}
		},
	},
	{
		name: "postmark",
		matches: func(p map[string]interface{}) bool {
			_, ok := p["FromFull"]
			return ok || stringField(p, "TextBody") != ""
		},
		extract: func(p map[string]interface{}) InboundEmail {
			from := stringField(p, "From")
			if full, ok := p["FromFull"].(map[string]interface{}); ok {
				if email := stringField(full, "Email"); email != "" {
					from = email
				}
			}
			return InboundEmail{
				From:    from,
				Subject: stringField(p, "Subject"),
				Body:    stringField(p, "TextBody", "HtmlBody"),
			}
		},
	},
}

// ParseEmailWebhook normalizes the webhook body by trying each known shape in
// priority order, then falls back to best-guess keys with the raw payload as
// a last-resort body.
func ParseEmailWebhook(p map[string]interface{}) (InboundEmail, string) {
	for _, shape := range webhookShapes {
		if shape.matches(p) {
			return shape.extract(p), shape.name
		}
	}
	body := stringField(p, "body", "text", "content", "message", "html")
	if body == "" {
		if raw, err := json.Marshal(p); err == nil {
			body = string(raw)
		}
	}
	return InboundEmail{
		From:    stringField(p, "from", "sender", "email", "from_email"),
		Subject: stringField(p, "subject", "Subject"),
		Body:    body,
	}, "fallback"
}

// stringField returns the first non-empty string value among the given keys.
func stringField(p map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := p[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
