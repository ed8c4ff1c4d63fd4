package model

type SendContactRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type SendContactResult struct {
	EmailID string `json:"emailId"`
}
