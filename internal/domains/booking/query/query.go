// Package query filters, sorts and pages an in-memory booking collection.
package query

import (
	"cmp"
	"errors"
	"roombook/internal/domains/booking/model"
	roomModel "roombook/internal/domains/room/model"
	"slices"
	"strings"
)

type SortField string

const (
	SortByDate      SortField = "date"
	SortByCreatedAt SortField = "createdAt"
	SortByClassName SortField = "className"
	SortByRoomName  SortField = "roomName"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

var (
	ErrInvalidSortField = errors.New("invalid sortBy parameter")
	ErrInvalidSortOrder = errors.New("invalid sortOrder parameter")
)

type comparator func(a, b model.Booking) int

var comparators = map[SortField]comparator{
	SortByDate: func(a, b model.Booking) int {
		return cmp.Compare(a.Date, b.Date)
	},
	SortByCreatedAt: func(a, b model.Booking) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	},
	SortByClassName: func(a, b model.Booking) int {
		return cmp.Compare(a.ClassName, b.ClassName)
	},
	SortByRoomName: func(a, b model.Booking) int {
		return cmp.Compare(a.ClassName, b.ClassName)
	},
}

// Spec is a list request. Zero fields do not filter.
type Spec struct {
	StartDate string
	EndDate   string
	ClassName roomModel.Name
	GroupName string
	BookedBy  string
	Status    model.Status
	SortBy    SortField
	SortOrder SortOrder
	Page      int
	Limit     int
}

// IsEmpty reports whether the spec asks for the raw collection.
func (s Spec) IsEmpty() bool {
	return s == Spec{}
}

// Paginated reports whether both page and limit are set.
func (s Spec) Paginated() bool {
	return s.Page > 0 && s.Limit > 0
}

// Validate checks the sort parameters.
func (s Spec) Validate() error {
	if s.SortBy != "" {
		if _, ok := comparators[s.SortBy]; !ok {
			return ErrInvalidSortField
		}
	}

	if s.SortOrder != "" && s.SortOrder != SortAsc && s.SortOrder != SortDesc {
		return ErrInvalidSortOrder
	}

	return nil
}

// Result holds one page and the size of the filtered set before paging.
type Result struct {
	Bookings []model.Booking
	Total    int
}

// Run filters, stable-sorts and pages all. The input slice is not modified.
func Run(all []model.Booking, spec Spec) (Result, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, err
	}

	filtered := make([]model.Booking, 0, len(all))

	for _, booking := range all {
		if spec.matches(booking) {
			filtered = append(filtered, booking)
		}
	}

	sortField := spec.SortBy
	if sortField == "" {
		sortField = SortByDate
	}

	compare := comparators[sortField]
	if spec.SortOrder == SortDesc {
		ascending := compare
		compare = func(a, b model.Booking) int { return ascending(b, a) }
	}

	slices.SortStableFunc(filtered, compare)

	result := Result{Bookings: filtered, Total: len(filtered)}

	if spec.Paginated() {
		result.Bookings = page(filtered, spec.Page, spec.Limit)
	}

	return result, nil
}

func (s Spec) matches(booking model.Booking) bool {
	if s.StartDate != "" && booking.Date < s.StartDate {
		return false
	}

	if s.EndDate != "" && booking.Date > s.EndDate {
		return false
	}

	if s.ClassName != "" && booking.ClassName != s.ClassName {
		return false
	}

	if s.GroupName != "" && !containsFold(booking.GroupName, s.GroupName) && !containsFold(booking.Purpose, s.GroupName) {
		return false
	}

	if s.BookedBy != "" && !containsFold(booking.BookedBy, s.BookedBy) {
		return false
	}

	if s.Status != "" && booking.Status != s.Status {
		return false
	}

	return true
}

// page slices one page out of bookings. The bound check runs before any multiplication so
// huge page or limit values yield an empty page instead of overflowing.
func page(bookings []model.Booking, pageNumber, limit int) []model.Booking {
	pages := min(len(bookings), 1)
	if limit < len(bookings) {
		pages = (len(bookings) + limit - 1) / limit
	}

	if pageNumber-1 >= pages {
		return []model.Booking{}
	}

	start := (pageNumber - 1) * limit
	end := start + min(limit, len(bookings)-start)

	return bookings[start:end]
}

func containsFold(value, term string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}
