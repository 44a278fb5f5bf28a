package entity

import "github.com/google/uuid"

// HowDoesItWork is one ordered step describing how a service is delivered.
type HowDoesItWork struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"serviceId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
}

// Include is something the service covers.
type Include struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"serviceId"`
	Text      string    `json:"text"`
	Position  int       `json:"position"`
}

// Exclude is something the service does not cover.
type Exclude struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"serviceId"`
	Text      string    `json:"text"`
	Position  int       `json:"position"`
}

// Faq is a question and answer attached to a service.
type Faq struct {
	ID        uuid.UUID `json:"id"`
	ServiceID uuid.UUID `json:"serviceId"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Position  int       `json:"position"`
}
