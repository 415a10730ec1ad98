package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/shared/timezone"
)

func TestAddBookingRequest_ToModel(t *testing.T) {
	start := timezone.Now().Add(time.Hour)
	end := start.Add(2 * time.Hour)

	req := dto.AddBookingRequest{
		ItemID: "test-item-id",
		Start:  start,
		End:    end,
	}

	bookerID := "test-booker-id"
	booking := req.ToModel(bookerID)

	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.ItemID, booking.ItemID)
	assert.Equal(t, bookerID, booking.BookerID)
	assert.Equal(t, model.StatusWaiting, booking.Status, "new bookings always start WAITING")
	assert.True(t, booking.StartTime.Equal(start))
	assert.True(t, booking.EndTime.Equal(end))
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, booking.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	bookingModel := model.Booking{
		ID:         "test-id",
		StartTime:  now.Add(time.Hour),
		EndTime:    now.Add(2 * time.Hour),
		ItemID:     "test-item-id",
		ItemName:   "Test Item",
		BookerID:   "test-booker-id",
		BookerName: "Test Booker",
		Status:     model.StatusApproved,
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, bookingModel.Status, response.Status)
	assert.Equal(t, bookingModel.ItemID, response.Item.ID)
	assert.Equal(t, bookingModel.ItemName, response.Item.Name)
	assert.Equal(t, bookingModel.BookerID, response.Booker.ID)
	assert.Equal(t, bookingModel.BookerName, response.Booker.Name)
	assert.True(t, response.Start.Equal(bookingModel.StartTime))
	assert.True(t, response.End.Equal(bookingModel.EndTime))
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: "test-id-1", Status: model.StatusWaiting},
		{ID: "test-id-2", Status: model.StatusRejected},
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings)

	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, "test-id-1", response.Bookings[0].ID)
	assert.Equal(t, model.StatusRejected, response.Bookings[1].Status)
}

func TestGetBookingsResponse_FromModels_Empty(t *testing.T) {
	var response dto.GetBookingsResponse
	response.FromModels(nil)

	assert.NotNil(t, response.Bookings, "empty list serializes as [], not null")
	assert.Len(t, response.Bookings, 0)
}
