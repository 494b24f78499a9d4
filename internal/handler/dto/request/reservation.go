package request

import "strings"

type CreateReservationRequest struct {
	EventID   *string `json:"eventId,omitempty"`
	PartnerID string  `json:"partnerId" binding:"required"`
	Seats     int     `json:"seats" binding:"required,gt=0,lte=10"`
}

// GetEventID falls back to the seeded default when the caller omits the
// event, matching the single-event client contract.
func (r CreateReservationRequest) GetEventID(defaultEventID string) string {
	if r.EventID == nil {
		return defaultEventID
	}
	trimmed := strings.TrimSpace(*r.EventID)
	if trimmed == "" {
		return defaultEventID
	}
	return trimmed
}
