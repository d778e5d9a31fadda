package mailer

// Template names recognized by the notify worker.
const (
	TemplateWelcome      = "welcome"
	TemplateSwapDecision = "swap_decision"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// When Template is set the worker renders subject/text/html from it using
// Data; otherwise the literal Subject/Text/HTML fields are sent as-is.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}
