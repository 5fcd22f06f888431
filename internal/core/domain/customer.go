package domain

// ContactPerson is one person attached to a customer account.
type ContactPerson struct {
	PersonID    string `json:"personId"`
	CustomerID  string `json:"customerId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
}
