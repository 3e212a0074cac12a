package dto

import (
	"hms/internal/domains/room/model"
)

type RoomResponse struct {
	Number string         `json:"number"`
	Floor  int            `json:"floor"`
	Type   model.RoomType `json:"type"`
	Price  int64          `json:"price"`
	Status model.Status   `json:"status"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.Number = room.Number
	r.Floor = room.Floor
	r.Type = room.Type
	r.Price = room.Price
	r.Status = room.Status
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
