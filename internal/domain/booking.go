package domain

// PaymentAmountNotApplicable is the sentinel the front end sends when no
// advance payment was taken for a booking.
const PaymentAmountNotApplicable = -1

type Booking struct {
	ID                      string `json:"bookingId"`
	MainPerson              string `json:"mainPerson"`
	CheckIn                 string `json:"checkIn"`
	CheckOut                string `json:"checkOut"`
	Accommodations          string `json:"accommodations"`
	TotalNumberOfPeople     string `json:"totalNumberOfPeople"`
	BookedBy                string `json:"bookedBy"`
	AdvancedPaymentReceived bool   `json:"advancedPaymentReceived"`
	AdvancedPaymentType     string `json:"advancedPaymentType"`
	AdvancedPaymentAmount   int    `json:"advancedPaymentAmount"`
	PhoneNumber             string `json:"phoneNumber"`
	Notes                   string `json:"notes"`
	Notified                bool   `json:"notified"`
}
