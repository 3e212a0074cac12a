// Package inventory holds the hotel's fixed room layout.
package inventory

import (
	"strconv"

	"hms/internal/domains/room/model"
)

type floorPlan struct {
	floor int
	first int
	last  int
}

var floors = []floorPlan{
	{floor: 1, first: 101, last: 121},
	{floor: 2, first: 201, last: 220},
	{floor: 3, first: 301, last: 321},
}

var exceptions = map[string]model.RoomType{
	"109": model.Suite,
	"306": model.Deluxe,
	"307": model.Deluxe,
	"308": model.Deluxe,
	"309": model.Suite,
}

// Generate returns every room, floor by floor in ascending number order.
// Rooms not listed as exceptions are Superior.
func Generate() []model.Room {
	rooms := make([]model.Room, 0, Size())

	for _, plan := range floors {
		for number := plan.first; number <= plan.last; number++ {
			rooms = append(rooms, newRoom(strconv.Itoa(number), plan.floor))
		}
	}

	return rooms
}

// Size is the number of rooms Generate returns.
func Size() int {
	total := 0
	for _, plan := range floors {
		total += plan.last - plan.first + 1
	}

	return total
}

// Floors lists the floor numbers in ascending order.
func Floors() []int {
	res := make([]int, len(floors))
	for i, plan := range floors {
		res[i] = plan.floor
	}

	return res
}

func newRoom(number string, floor int) model.Room {
	roomType, ok := exceptions[number]
	if !ok {
		roomType = model.Superior
	}

	return model.Room{
		Number: number,
		Floor:  floor,
		Type:   roomType,
		Price:  roomType.Price(),
		Status: model.StatusAvailable,
	}
}
