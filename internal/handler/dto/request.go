package dto

import "github.com/adityamhatre/VSBookingSchedulerNotificationServer/internal/domain"

// BookingEventRequest is the payload the booking front end sends for created
// and updated lifecycle events. Field names mirror what the front end already
// emits.
type BookingEventRequest struct {
	BookingID               string `json:"bookingId"`
	MainPerson              string `json:"mainPerson" binding:"required"`
	CheckIn                 string `json:"checkIn" binding:"required"`
	CheckOut                string `json:"checkOut" binding:"required"`
	Accommodations          string `json:"accommodations"`
	TotalNumberOfPeople     string `json:"totalNumberOfPeople"`
	BookedBy                string `json:"bookedBy"`
	AdvancedPaymentReceived bool   `json:"advancedPaymentReceived"`
	AdvancedPaymentType     string `json:"advancedPaymentType"`
	AdvancedPaymentAmount   *int   `json:"advancedPaymentAmount"`
	PhoneNumber             string `json:"phoneNumber"`
	Notes                   string `json:"notes"`
}

// ToBooking converts the request into the domain record. A missing payment
// amount becomes the "not applicable" sentinel.
func (r BookingEventRequest) ToBooking() *domain.Booking {
	amount := domain.PaymentAmountNotApplicable
	if r.AdvancedPaymentAmount != nil {
		amount = *r.AdvancedPaymentAmount
	}

	return &domain.Booking{
		ID:                      r.BookingID,
		MainPerson:              r.MainPerson,
		CheckIn:                 r.CheckIn,
		CheckOut:                r.CheckOut,
		Accommodations:          r.Accommodations,
		TotalNumberOfPeople:     r.TotalNumberOfPeople,
		BookedBy:                r.BookedBy,
		AdvancedPaymentReceived: r.AdvancedPaymentReceived,
		AdvancedPaymentType:     r.AdvancedPaymentType,
		AdvancedPaymentAmount:   amount,
		PhoneNumber:             r.PhoneNumber,
		Notes:                   r.Notes,
	}
}
