package dto

import "github.com/harbourline/freight_console_app/internal/core/domain"

// ContactPersonRequest is one person in a bulk contact creation.
type ContactPersonRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
}

// BulkCreateContactsRequest creates several contact persons for one
// customer. Creation is sequential and stops at the first failure.
type BulkCreateContactsRequest struct {
	Persons []ContactPersonRequest `json:"persons" binding:"required,min=1,dive"`
}

// ToContactPerson converts a request into the domain record.
func (r ContactPersonRequest) ToContactPerson(customerID string) domain.ContactPerson {
	return domain.ContactPerson{
		CustomerID:  customerID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Designation: r.Designation,
	}
}
