package entity

import "github.com/google/uuid"

// SubCategory groups listings under a category. ServiceIDs keeps insertion
// order; Services is filled only when the list was expanded.
type SubCategory struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	CategoryID uuid.UUID   `json:"categoryId"`
	ServiceIDs []uuid.UUID `json:"-"`
	Services   []*Service  `json:"service"`
}

// ContainsService reports whether the reverse list references serviceID.
func (sc *SubCategory) ContainsService(serviceID uuid.UUID) bool {
	for _, id := range sc.ServiceIDs {
		if id == serviceID {
			return true
		}
	}

	return false
}
