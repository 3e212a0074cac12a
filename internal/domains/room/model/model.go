package model

const (
	EntityName = "room"
)

type RoomType string

const (
	Superior RoomType = "Superior"
	Deluxe   RoomType = "Deluxe"
	Suite    RoomType = "Suite"
)

// RoomTypes lists every room type in display order.
func RoomTypes() []RoomType {
	return []RoomType{Superior, Deluxe, Suite}
}

func (t RoomType) Valid() bool {
	switch t {
	case Superior, Deluxe, Suite:
		return true
	}

	return false
}

// Price is the base nightly rate in rupiah.
func (t RoomType) Price() int64 {
	switch t {
	case Superior:
		return 430000
	case Deluxe:
		return 738000
	case Suite:
		return 938000
	}

	return 0
}

// Status is a housekeeping tag. Occupancy is always derived from bookings.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
	StatusCleaning  Status = "cleaning"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusBooked, StatusCleaning:
		return true
	}

	return false
}

type Room struct {
	Number string
	Floor  int
	Type   RoomType
	Price  int64
	Status Status
}
