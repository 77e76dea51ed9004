package respond

import (
	"regexp"
)

var (
	// The Anthropic pattern must be applied before the OpenAI one since it
	// is the more specific prefix.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// Database passwords inside DSNs
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

	// Webhook URLs carry authentication tokens in the path
	webhookPattern = regexp.MustCompile(`https://(hooks\.slack\.com|discord\.com/api/webhooks)/\S+`)
)

// SanitizeError masks API keys, DSN passwords, and webhook tokens in an
// error message so it can be logged safely.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = webhookPattern.ReplaceAllString(msg, "https://$1/****")

	return msg
}
