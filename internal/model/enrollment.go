package model

import "time"

// Enrollment is a user's registration record for the event. Holding
// an enrollment is a prerequisite for buying a ticket, and therefore
// for booking a hotel room. Each user has at most one enrollment
// (users.id is unique in the `enrollments` table).
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the enrollment (unique).
//  Name      – attendee's full name.
//  CPF       – attendee's national registry number.
//  Birthday  – attendee's date of birth.
//  Phone     – contact phone number.
//  Street    – street line of the attendee's address.
//  City      – city of the attendee's address.
//  State     – state of the attendee's address.
//  PostCode  – postal code of the attendee's address.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Enrollment struct {
	ID        uint64    // enrollments.id
	UserID    uint64    // enrollments.user_id
	Name      string    // enrollments.name
	CPF       string    // enrollments.cpf
	Birthday  time.Time // enrollments.birthday
	Phone     string    // enrollments.phone
	Street    string    // enrollments.street
	City      string    // enrollments.city
	State     string    // enrollments.state
	PostCode  string    // enrollments.post_code
	CreatedAt time.Time // enrollments.created_at
	UpdatedAt time.Time // enrollments.updated_at
}
