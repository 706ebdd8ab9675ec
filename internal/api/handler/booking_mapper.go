package handler

import (
	"github.com/stayhub/hotel-booking/internal/core/ports"
)

func toBookingResponse(v *ports.BookingView) bookingResponse {
	return bookingResponse{
		ID:             v.ID,
		BookingRef:     v.Reference,
		HotelName:      v.HotelName,
		HotelCity:      v.HotelCity,
		RoomTypeName:   v.RoomTypeName,
		CheckIn:        v.CheckIn.Format(dateLayout),
		CheckOut:       v.CheckOut.Format(dateLayout),
		Adults:         v.Adults,
		Children:       v.Children,
		Rooms:          v.Rooms,
		TotalPrice:     centsToPrice(v.TotalCents),
		Status:         string(v.Status),
		BookingDate:    v.BookedAt.UTC().Format(dateLayout),
		GuestFirstName: v.GuestFirstName,
		GuestLastName:  v.GuestLastName,
		GuestEmail:     v.GuestEmail,
		GuestPhone:     v.GuestPhone,
		PaymentStatus:  string(v.PaymentStatus),
		PaymentMethod:  v.PaymentMethod,
		TransactionID:  v.TransactionID,
	}
}

func toBookingResponses(views []ports.BookingView) []bookingResponse {
	out := make([]bookingResponse, len(views))
	for i := range views {
		out[i] = toBookingResponse(&views[i])
	}
	return out
}
