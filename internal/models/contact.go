package models

import "time"

// ContactForm is a message submitted from the contact page
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactReceipt acknowledges an accepted contact form
type ContactReceipt struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SubmittedAt time.Time `json:"submitted_at"`
}
