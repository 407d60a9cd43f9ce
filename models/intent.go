package models

// Intent is a recognized label for a free-text customer message.
type Intent string

const (
	IntentBooking        Intent = "booking"
	IntentCancel         Intent = "cancel"
	IntentPriceInquiry   Intent = "price_inquiry"
	IntentRoomSelection  Intent = "room_selection"
	IntentDateInput      Intent = "date_input"
	IntentGuestCount     Intent = "guest_count"
	IntentConfirm        Intent = "confirm"
	IntentModify         Intent = "modify"
	IntentGeneralInquiry Intent = "general_inquiry"
)
