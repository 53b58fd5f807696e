package dto

import (
	"net/http"
	"roombook/internal/domains/booking/model"
	"roombook/internal/domains/booking/query"
	roomModel "roombook/internal/domains/room/model"
	"roombook/shared"
	gDto "roombook/shared/dto"
	gModel "roombook/shared/model"
	"roombook/shared/validator"
	"time"

	"github.com/google/uuid"
)

const (
	RequestParamStartDate = "startDate"
	RequestParamEndDate   = "endDate"
	RequestParamClassName = "className"
	RequestParamGroupName = "groupName"
	RequestParamBookedBy  = "bookedBy"
	RequestParamStatus    = "status"
)

type CreateBookingRequest struct {
	Date        string                  `json:"date"        validate:"required,day"`
	StartTime   string                  `json:"startTime"   validate:"required,clock"`
	EndTime     string                  `json:"endTime"     validate:"required,clock"`
	GroupName   string                  `json:"groupName"   validate:"required"`
	ClassName   roomModel.Name          `json:"className"   validate:"required,enum"`
	BookedBy    string                  `json:"bookedBy"    validate:"required"`
	Purpose     string                  `json:"purpose"     validate:"required"`
	Description *string                 `json:"description" validate:"omitempty"`
	Attendees   *int                    `json:"attendees"   validate:"omitempty,gte=0"`
	Status      model.Status            `json:"status"      validate:"omitempty,enum"`
	Recurring   *model.RecurringPattern `json:"recurring"   validate:"-"`
}

// ToModel builds a new booking stamped with now. Status defaults to confirmed.
func (c *CreateBookingRequest) ToModel(now time.Time) model.Booking {
	status := model.StatusConfirmed
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:          uuid.NewString(),
		Date:        c.Date,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		GroupName:   c.GroupName,
		ClassName:   c.ClassName,
		BookedBy:    c.BookedBy,
		Purpose:     c.Purpose,
		Description: c.Description,
		Attendees:   c.Attendees,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt: now,
		},
	}
}

type UpdateBookingRequest struct {
	Date        string         `json:"date"        validate:"required,day"`
	StartTime   string         `json:"startTime"   validate:"required,clock"`
	EndTime     string         `json:"endTime"     validate:"required,clock"`
	GroupName   string         `json:"groupName"   validate:"required"`
	ClassName   roomModel.Name `json:"className"   validate:"required,enum"`
	BookedBy    string         `json:"bookedBy"    validate:"required"`
	Purpose     *string        `json:"purpose"     validate:"omitempty"`
	Description *string        `json:"description" validate:"omitempty"`
	Attendees   *int           `json:"attendees"   validate:"omitempty,gte=0"`
	Status      *model.Status  `json:"status"      validate:"omitempty,enum"`
}

// Apply merges the request over existing. Identity, creation time and the
// recurring pattern are kept; optional fields change only when supplied.
func (u *UpdateBookingRequest) Apply(existing model.Booking, now time.Time) model.Booking {
	updated := existing

	updated.Date = u.Date
	updated.StartTime = u.StartTime
	updated.EndTime = u.EndTime
	updated.GroupName = u.GroupName
	updated.ClassName = u.ClassName
	updated.BookedBy = u.BookedBy

	if u.Purpose != nil {
		updated.Purpose = *u.Purpose
	}

	if u.Description != nil {
		updated.Description = u.Description
	}

	if u.Attendees != nil {
		updated.Attendees = u.Attendees
	}

	if u.Status != nil {
		updated.Status = *u.Status
	}

	updated.UpdatedAt = &now

	return updated
}

type BookingResponse struct {
	ID          string                  `json:"id"`
	Date        string                  `json:"date"`
	StartTime   string                  `json:"startTime"`
	EndTime     string                  `json:"endTime"`
	GroupName   string                  `json:"groupName"`
	ClassName   string                  `json:"className"`
	BookedBy    string                  `json:"bookedBy"`
	Purpose     string                  `json:"purpose"`
	Description *string                 `json:"description,omitempty"`
	Attendees   *int                    `json:"attendees,omitempty"`
	Status      string                  `json:"status"`
	Recurring   *model.RecurringPattern `json:"recurring,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Date = model.Date
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.GroupName = model.GroupName
	r.ClassName = model.ClassName.String()
	r.BookedBy = model.BookedBy
	r.Purpose = model.Purpose
	r.Description = model.Description
	r.Attendees = model.Attendees
	r.Status = string(model.Status)
	r.Recurring = model.Recurring
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// CreateBookingResult is one booking, or the persisted occurrences of a series.
type CreateBookingResult struct {
	Series   bool
	Bookings []BookingResponse
	Skipped  int
}

type ListBookingsRequest struct {
	StartDate string         `json:"startDate" validate:"omitempty,day"`
	EndDate   string         `json:"endDate"   validate:"omitempty,day"`
	ClassName roomModel.Name `json:"className" validate:"omitempty"`
	GroupName string         `json:"groupName" validate:"omitempty"`
	BookedBy  string         `json:"bookedBy"  validate:"omitempty"`
	Status    model.Status   `json:"status"    validate:"omitempty,enum"`
	gDto.QueryParams
}

// FromRequest reads filters and paging from the query string.
func (l *ListBookingsRequest) FromRequest(r *http.Request) error {
	if err := l.QueryParams.FromRequest(r); err != nil {
		return err //nolint:wrapcheck
	}

	queryParams := r.URL.Query()

	l.StartDate = queryParams.Get(RequestParamStartDate)
	l.EndDate = queryParams.Get(RequestParamEndDate)
	l.ClassName = roomModel.Name(queryParams.Get(RequestParamClassName))
	l.GroupName = queryParams.Get(RequestParamGroupName)
	l.BookedBy = queryParams.Get(RequestParamBookedBy)
	l.Status = model.Status(queryParams.Get(RequestParamStatus))

	return validator.ValidateStruct(l)
}

func (l *ListBookingsRequest) ToSpec() query.Spec {
	return query.Spec{
		StartDate: l.StartDate,
		EndDate:   l.EndDate,
		ClassName: l.ClassName,
		GroupName: l.GroupName,
		BookedBy:  l.BookedBy,
		Status:    l.Status,
		SortBy:    query.SortField(l.SortBy),
		SortOrder: query.SortOrder(l.SortOrder),
		Page:      l.Page,
		Limit:     l.Limit,
	}
}

type ListBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// FromResult builds the paging envelope. Without paging the whole result is one page.
func (r *ListBookingsResponse) FromResult(result query.Result, page, limit int) {
	if page <= 0 || limit <= 0 {
		page, limit = 1, result.Total
	}

	r.Bookings = FromModels(result.Bookings)
	r.Total = result.Total
	r.Page = page
	r.Limit = limit
	r.TotalPages = shared.CalculateTotalPage(result.Total, limit)
}

// ListBookingsResult is a bare collection when no parameters were given, an envelope otherwise.
type ListBookingsResult struct {
	Bookings []BookingResponse
	Envelope *ListBookingsResponse
}

type StatisticsResponse struct {
	Total    int            `json:"total"`
	ByRoom   map[string]int `json:"byRoom"`
	ByStatus map[string]int `json:"byStatus"`
	Today    int            `json:"today"`
	Upcoming int            `json:"upcoming"`
	Past     int            `json:"past"`
}

type BackupResponse struct {
	Key       string `json:"key"`
	Count     int    `json:"count"`
	CreatedAt string `json:"createdAt"`
}

type BackupItem struct {
	Key          string `json:"key"`
	Size         int64  `json:"size"`
	LastModified string `json:"lastModified,omitempty"`
}

type RestoreBackupRequest struct {
	Key string `json:"key" validate:"required"`
}

type RestoreBackupResponse struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
