package storage

import (
	"errors"

	"trackmirror/pkg/pagination"
)

type Direction int

const (
	DirectionUnspecified Direction = iota
	DirectionAfter
	DirectionBefore
)

var (
	ErrDirectionUnset = errors.New("direction must be set")
)

type ListTracksParams struct {
	Cursor    pagination.Cursor
	Direction Direction
	Limit     int
}
