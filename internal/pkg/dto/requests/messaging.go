package requests

type SMSMessage struct {
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
}

type EmailMessage struct {
	From          string `json:"from"`
	ReceiverEmail string `json:"receiver_email"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
}
