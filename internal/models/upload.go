package models

import "io"

// Upload is a file received in a multipart request
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// Email is an outgoing message handed to the mailer
type Email struct {
	ToName  string
	ToEmail string
	Subject string
	Body    string
}
