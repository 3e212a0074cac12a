// Package engine derives per-room occupancy from bookings.
//
// A stay occupies its room over the half-open interval [checkIn, checkOut):
// the check-out day is free for the next guest. Every function here is pure
// and safe to call on store snapshots.
package engine

import (
	bookingModel "hms/internal/domains/booking/model"
	roomModel "hms/internal/domains/room/model"
	"hms/shared/date"
)

// Window is a normalized status query. Start never comes after End.
type Window struct {
	Start date.Date `json:"start"`
	End   date.Date `json:"end"`
}

type RoomStatus struct {
	Occupied bool `json:"occupied"`
	Reserved bool `json:"reserved"`
}

// NormalizeWindow fills a missing bound from the other one, falls back to
// today when both are missing, and swaps bounds given in reverse.
func NormalizeWindow(start, end date.Optional, today date.Date) Window {
	switch {
	case start.Valid && end.Valid:
		if end.Date.Before(start.Date) {
			return Window{Start: end.Date, End: start.Date}
		}

		return Window{Start: start.Date, End: end.Date}
	case start.Valid:
		return Window{Start: start.Date, End: start.Date}
	case end.Valid:
		return Window{Start: end.Date, End: end.Date}
	default:
		return Window{Start: today, End: today}
	}
}

// Occupies reports whether the stay overlaps the window.
func Occupies(b bookingModel.Booking, w Window) bool {
	return b.CheckInDate.Before(w.End) && b.CheckOutDate.After(w.Start)
}

// Arrives reports whether the booking checks in the day after the window starts.
func Arrives(b bookingModel.Booking, w Window) bool {
	return !b.CheckInDate.IsZero() && b.CheckInDate.Equal(w.Start.AddDays(1))
}

// ComputeRoomStatuses returns an entry for every room. Bookings on rooms that
// are not in the inventory are ignored, and overlapping bookings on one room
// are not treated as a conflict.
func ComputeRoomStatuses(rooms []roomModel.Room, bookings []bookingModel.Booking, w Window) map[string]RoomStatus {
	statuses := make(map[string]RoomStatus, len(rooms))
	for _, room := range rooms {
		statuses[room.Number] = RoomStatus{}
	}

	for _, b := range bookings {
		status, known := statuses[b.RoomNumber]
		if !known {
			continue
		}

		if Occupies(b, w) {
			status.Occupied = true
		}

		if Arrives(b, w) {
			status.Reserved = true
		}

		statuses[b.RoomNumber] = status
	}

	return statuses
}

type Stats struct {
	Total     int   `json:"total"`
	Occupied  int   `json:"occupied"`
	Reserved  int   `json:"reserved"`
	Available int   `json:"available"`
	Revenue   int64 `json:"revenue"`
}

// Summarize counts a room that is both occupied and reserved as occupied only.
// Revenue covers every booking in the store, not just the window.
func Summarize(rooms []roomModel.Room, statuses map[string]RoomStatus, bookings []bookingModel.Booking) Stats {
	stats := Stats{Total: len(rooms)}

	for _, room := range rooms {
		status := statuses[room.Number]

		switch {
		case status.Occupied:
			stats.Occupied++
		case status.Reserved:
			stats.Reserved++
		}
	}

	stats.Available = stats.Total - stats.Occupied

	for _, b := range bookings {
		stats.Revenue += b.Revenue()
	}

	return stats
}

type DisplayStatus string

const (
	DisplayOccupied DisplayStatus = "Occupied"
	DisplayReserved DisplayStatus = "Reserved"
	DisplayVacant   DisplayStatus = "Vacant"
)

func Display(status RoomStatus) DisplayStatus {
	switch {
	case status.Occupied:
		return DisplayOccupied
	case status.Reserved:
		return DisplayReserved
	default:
		return DisplayVacant
	}
}

type BoardRoom struct {
	Number string             `json:"number"`
	Type   roomModel.RoomType `json:"type"`
	Status DisplayStatus      `json:"status"`
}

type Floor struct {
	Floor int         `json:"floor"`
	Rooms []BoardRoom `json:"rooms"`
}

// GroupByFloor keeps the inventory order inside each floor and orders floors as listed.
func GroupByFloor(floors []int, rooms []roomModel.Room, statuses map[string]RoomStatus) []Floor {
	index := make(map[int]int, len(floors))
	res := make([]Floor, len(floors))

	for i, floor := range floors {
		index[floor] = i
		res[i] = Floor{Floor: floor, Rooms: []BoardRoom{}}
	}

	for _, room := range rooms {
		i, ok := index[room.Floor]
		if !ok {
			continue
		}

		res[i].Rooms = append(res[i].Rooms, BoardRoom{
			Number: room.Number,
			Type:   room.Type,
			Status: Display(statuses[room.Number]),
		})
	}

	return res
}
