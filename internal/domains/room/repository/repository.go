package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"slices"

	"hms/internal/domains/room/model"
)

// Room is the read-only room inventory. Rooms are created once and never change.
type Room interface {
	GetAll(ctx context.Context) []model.Room
	Get(ctx context.Context, number string) (model.Room, bool)
}

type repositoryImpl struct {
	rooms  []model.Room
	lookup map[string]int
}

func New(rooms []model.Room) Room {
	lookup := make(map[string]int, len(rooms))
	for i, room := range rooms {
		lookup[room.Number] = i
	}

	return &repositoryImpl{
		rooms:  slices.Clone(rooms),
		lookup: lookup,
	}
}

func (r *repositoryImpl) GetAll(_ context.Context) []model.Room {
	return slices.Clone(r.rooms)
}

func (r *repositoryImpl) Get(_ context.Context, number string) (model.Room, bool) {
	i, ok := r.lookup[number]
	if !ok {
		return model.Room{}, false
	}

	return r.rooms[i], true
}
