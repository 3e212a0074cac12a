package dto

import (
	"fmt"

	"hms/internal/domains/availability/engine"
	roomModel "hms/internal/domains/room/model"
	"hms/shared/date"
	"hms/shared/failure"
)

// WindowRequest is the status query taken from the check_in and check_out parameters.
type WindowRequest struct {
	CheckIn  string `json:"check_in"  validate:"datestr"`
	CheckOut string `json:"check_out" validate:"datestr"`
}

func (r WindowRequest) Bounds() (start, end date.Optional, err error) {
	start, err = date.ParseOptional(r.CheckIn)
	if err != nil {
		return start, end, failure.BadRequest(fmt.Errorf("check_in: %w", err)) //nolint:wrapcheck
	}

	end, err = date.ParseOptional(r.CheckOut)
	if err != nil {
		return start, end, failure.BadRequest(fmt.Errorf("check_out: %w", err)) //nolint:wrapcheck
	}

	return start, end, nil
}

type RoomStatusResponse struct {
	Number   string               `json:"number"`
	Floor    int                  `json:"floor"`
	Type     roomModel.RoomType   `json:"type"`
	Price    int64                `json:"price"`
	Occupied bool                 `json:"occupied"`
	Reserved bool                 `json:"reserved"`
	Display  engine.DisplayStatus `json:"display"`
}

type RoomStatusesResponse struct {
	Window engine.Window        `json:"window"`
	Rooms  []RoomStatusResponse `json:"rooms"`
}

func (r *RoomStatusesResponse) FromModels(w engine.Window, rooms []roomModel.Room, statuses map[string]engine.RoomStatus) {
	r.Window = w
	r.Rooms = make([]RoomStatusResponse, len(rooms))

	for i, room := range rooms {
		status := statuses[room.Number]

		r.Rooms[i] = RoomStatusResponse{
			Number:   room.Number,
			Floor:    room.Floor,
			Type:     room.Type,
			Price:    room.Price,
			Occupied: status.Occupied,
			Reserved: status.Reserved,
			Display:  engine.Display(status),
		}
	}
}

type RoomTypeCount struct {
	Type      roomModel.RoomType `json:"type"`
	Price     int64              `json:"price"`
	Total     int                `json:"total"`
	Occupied  int                `json:"occupied"`
	Available int                `json:"available"`
}

type DashboardResponse struct {
	Window    engine.Window   `json:"window"`
	Stats     engine.Stats    `json:"stats"`
	RoomTypes []RoomTypeCount `json:"room_types"`
}

func (r *DashboardResponse) FromModels(w engine.Window, stats engine.Stats, rooms []roomModel.Room, statuses map[string]engine.RoomStatus) {
	r.Window = w
	r.Stats = stats

	types := roomModel.RoomTypes()
	index := make(map[roomModel.RoomType]int, len(types))
	r.RoomTypes = make([]RoomTypeCount, len(types))

	for i, roomType := range types {
		index[roomType] = i
		r.RoomTypes[i] = RoomTypeCount{Type: roomType, Price: roomType.Price()}
	}

	for _, room := range rooms {
		i, ok := index[room.Type]
		if !ok {
			continue
		}

		r.RoomTypes[i].Total++
		if statuses[room.Number].Occupied {
			r.RoomTypes[i].Occupied++
		} else {
			r.RoomTypes[i].Available++
		}
	}
}

type BoardResponse struct {
	Window   engine.Window  `json:"window"`
	Vacant   int            `json:"vacant"`
	Reserved int            `json:"reserved"`
	Occupied int            `json:"occupied"`
	Floors   []engine.Floor `json:"floors"`
}

func (r *BoardResponse) FromModels(w engine.Window, floors []engine.Floor) {
	r.Window = w
	r.Floors = floors

	for _, floor := range floors {
		for _, room := range floor.Rooms {
			switch room.Status {
			case engine.DisplayOccupied:
				r.Occupied++
			case engine.DisplayReserved:
				r.Reserved++
			case engine.DisplayVacant:
				r.Vacant++
			}
		}
	}
}
