package mailer

// Message is a multipart email to deliver.
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// Config holds SMTP connection parameters.
type Config struct {
	Host     string
	Port     int
	From     string
	FromName string
	Username string
	Password string
	TLS      bool
}
