package model

import "slices"

const EntityName = "room"

// Name identifies a bookable room. The set of rooms is closed.
type Name string

const (
	BTB                Name = "BTB"
	SR                 Name = "SR"
	PP                 Name = "PP"
	KPS                Name = "KPS"
	PVH                Name = "PVH"
	Seminar            Name = "Seminar"
	KohKong            Name = "Koh Kong"
	DirectorRoom       Name = "Director Room"
	DeputyDirectorRoom Name = "Deputy Director Room"
)

// Catalogue lists every room in display order.
var Catalogue = []Name{
	BTB,
	SR,
	PP,
	KPS,
	PVH,
	Seminar,
	KohKong,
	DirectorRoom,
	DeputyDirectorRoom,
}

func (n Name) IsValid() bool {
	return slices.Contains(Catalogue, n)
}

func (n Name) String() string {
	return string(n)
}

// Window is a half-open [Start, End) span of clock times on one day.
type Window struct {
	Start string
	End   string
}
