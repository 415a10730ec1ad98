package dto

import (
	"time"

	"github.com/google/uuid"

	"shareit/internal/domains/booking/model"
	gModel "shareit/shared/model"
	"shareit/shared/timezone"
)

type AddBookingRequest struct {
	ItemID string    `json:"itemId" validate:"required"`
	Start  time.Time `json:"start"  validate:"required"`
	End    time.Time `json:"end"    validate:"required"`
}

func (a *AddBookingRequest) ToModel(bookerID string) model.Booking {
	return model.Booking{
		ID:        uuid.NewString(),
		StartTime: timezone.ToAppTime(a.Start),
		EndTime:   timezone.ToAppTime(a.End),
		ItemID:    a.ItemID,
		BookerID:  bookerID,
		Status:    model.StatusWaiting,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type BookerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ItemSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     string        `json:"id"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status string        `json:"status"`
	Booker BookerSummary `json:"booker"`
	Item   ItemSummary   `json:"item"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Start = model.StartTime
	r.End = model.EndTime
	r.Status = model.Status
	r.Booker = BookerSummary{ID: model.BookerID, Name: model.BookerName}
	r.Item = ItemSummary{ID: model.ItemID, Name: model.ItemName}
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
