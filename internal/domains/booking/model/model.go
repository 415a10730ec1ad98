package model

import (
	"time"

	gModel "shareit/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldItemID    = "item_id"
	FieldBookerID  = "booker_id"
	FieldStatus    = "status"

	FieldOwnerID = "owner_id"
)

const (
	StatusWaiting  = "WAITING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Booking struct {
	ID        string    `db:"id"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	ItemID    string    `db:"item_id"`
	BookerID  string    `db:"booker_id"`
	Status    string    `db:"status"`

	ItemName   string `db:"item_name"   table:"items" column:"name"`
	OwnerID    string `db:"owner_id"    table:"items" column:"owner_id"`
	BookerName string `db:"booker_name" table:"users" column:"name"`

	gModel.Metadata
}

// GetJoinQuery pulls the item and booker details every read needs, and exposes
// items.owner_id so visibility filters can match against the owner side.
func (Booking) GetJoinQuery() string {
	return "JOIN items ON items.id = bookings.item_id JOIN users ON users.id = bookings.booker_id"
}
