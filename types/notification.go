package types

// Audience is the recipient class a rendered notification targets.
type Audience string

const (
	AudienceStaff     Audience = "staff"
	AudienceSubmitter Audience = "submitter"
)

// RenderedNotification is one ready-to-send document. It is built per request
// and never persisted.
type RenderedNotification struct {
	Audience   Audience
	Recipients []string
	Subject    string
	HTML       string
	Text       string
}

// Message is what a mail transport receives.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Outcome is the result of a best-effort collaborator call. Failures carry a
// diagnostic for logs and are never surfaced to the caller.
type Outcome struct {
	OK         bool   `json:"ok"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

func Succeeded() Outcome {
	return Outcome{OK: true}
}

func Failed(err error) Outcome {
	if err == nil {
		return Outcome{OK: false}
	}
	return Outcome{OK: false, Diagnostic: err.Error()}
}
