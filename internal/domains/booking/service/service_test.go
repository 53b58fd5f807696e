package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"path/filepath"
	"roombook/config"
	"roombook/infras/kafka"
	kafkaMocks "roombook/infras/kafka/mocks"
	otelMocks "roombook/infras/otel/mocks"
	s3Infra "roombook/infras/s3"
	s3Mocks "roombook/infras/s3/mocks"
	"roombook/internal/domains/booking/mocks"
	"roombook/internal/domains/booking/model"
	"roombook/internal/domains/booking/model/dto"
	"roombook/internal/domains/booking/repository"
	roomModel "roombook/internal/domains/room/model"
	"roombook/shared/cache"
	cacheMocks "roombook/shared/cache/mocks"
	"roombook/shared/failure"
	sharedModel "roombook/shared/model"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

type fixture struct {
	service *serviceImpl
	repo    *mocks.MockBooking
	s3      *s3Mocks.MockS3
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.External.S3.BackupDirectory = "backups"

	return cfg
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBooking(ctrl)
	s3 := s3Mocks.NewMockS3(ctrl)

	svc := New(repo, testConfig(), cache.NewNoop(), otelMocks.NewOtel(), s3, kafka.New(&config.Config{})).(*serviceImpl)
	svc.now = func() time.Time { return fixedNow }

	return fixture{service: svc, repo: repo, s3: s3}
}

func existing(id string, room roomModel.Name, date, start, end string) model.Booking {
	return model.Booking{
		ID:        id,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		GroupName: "Grade 10A",
		ClassName: room,
		BookedBy:  "Sokha",
		Purpose:   "Lesson",
		Status:    model.StatusConfirmed,
		Metadata:  sharedModel.Metadata{CreatedAt: fixedNow.Add(-time.Hour)},
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Date:      "2025-03-12",
		StartTime: "09:00",
		EndTime:   "10:00",
		GroupName: "Grade 11B",
		ClassName: roomModel.BTB,
		BookedBy:  "Dara",
		Purpose:   "Science fair",
	}
}

func assertFailure(t *testing.T, err error, code int, message string) {
	t.Helper()

	var fail *failure.Failure

	require.ErrorAs(t, err, &fail)
	assert.Equal(t, code, fail.Code)

	if message != "" {
		assert.Equal(t, message, fail.Message)
	}
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *dto.CreateBookingRequest)
		message string
	}{
		{name: "missing date", mutate: func(req *dto.CreateBookingRequest) { req.Date = "" }, message: "date is required"},
		{name: "missing start time", mutate: func(req *dto.CreateBookingRequest) { req.StartTime = "" }, message: "startTime is required"},
		{name: "missing group name", mutate: func(req *dto.CreateBookingRequest) { req.GroupName = "" }, message: "groupName is required"},
		{name: "missing room", mutate: func(req *dto.CreateBookingRequest) { req.ClassName = "" }, message: "className is required"},
		{name: "missing booked by", mutate: func(req *dto.CreateBookingRequest) { req.BookedBy = "" }, message: "bookedBy is required"},
		{name: "missing purpose", mutate: func(req *dto.CreateBookingRequest) { req.Purpose = "" }, message: "purpose is required"},
		{name: "first missing field wins", mutate: func(req *dto.CreateBookingRequest) { req.GroupName, req.Purpose = "", "" }, message: "groupName is required"},
		{name: "malformed date", mutate: func(req *dto.CreateBookingRequest) { req.Date = "12/03/2025" }, message: "date must be a valid date (YYYY-MM-DD)"},
		{name: "malformed time", mutate: func(req *dto.CreateBookingRequest) { req.EndTime = "9:00" }, message: "endTime must be a valid time (HH:MM)"},
		{name: "unknown room", mutate: func(req *dto.CreateBookingRequest) { req.ClassName = "Gym" }, message: "className is not a valid option"},
		{name: "unknown status", mutate: func(req *dto.CreateBookingRequest) { req.Status = "tentative" }, message: "status is not a valid option"},
		{name: "end before start", mutate: func(req *dto.CreateBookingRequest) { req.StartTime, req.EndTime = "11:00", "10:00" }, message: MessageInvalidRange},
		{name: "empty span", mutate: func(req *dto.CreateBookingRequest) { req.EndTime = req.StartTime }, message: MessageInvalidRange},
		{name: "invalid recurring pattern", mutate: func(req *dto.CreateBookingRequest) {
			req.Recurring = &model.RecurringPattern{Frequency: model.FrequencyDaily, Interval: 0, EndDate: "2025-03-20"}
		}, message: "Invalid recurring pattern"},
		{name: "recurring end before start", mutate: func(req *dto.CreateBookingRequest) {
			req.Recurring = &model.RecurringPattern{Frequency: model.FrequencyDaily, Interval: 1, EndDate: "2025-03-01"}
		}, message: "Invalid recurring pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			req := createRequest()
			tt.mutate(&req)

			_, err := f.service.Create(context.Background(), req)

			assertFailure(t, err, http.StatusBadRequest, tt.message)
		})
	}
}

func TestCreate_Single(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stored := []model.Booking{
		existing("a", roomModel.BTB, "2025-03-12", "08:00", "09:00"),
		existing("b", roomModel.BTB, "2025-03-12", "10:00", "11:00"),
	}

	var written []model.Booking

	f.repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)
	f.repo.EXPECT().WriteAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, bookings []model.Booking) error {
		written = bookings

		return nil
	})

	res, err := f.service.Create(ctx, createRequest())

	require.NoError(t, err)
	assert.False(t, res.Series)
	require.Len(t, res.Bookings, 1)

	created := res.Bookings[0]
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, string(model.StatusConfirmed), created.Status)
	assert.Equal(t, "BTB", created.ClassName)
	assert.Empty(t, created.UpdatedAt)

	require.Len(t, written, 3)
	assert.Equal(t, "a", written[0].ID)
	assert.Equal(t, "b", written[1].ID)
	assert.Equal(t, created.ID, written[2].ID)
	assert.Equal(t, fixedNow, written[2].CreatedAt)
}

func TestCreate_Conflict(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().ReadAll(gomock.Any()).Return([]model.Booking{
		existing("a", roomModel.BTB, "2025-03-12", "09:30", "10:30"),
	}, nil)

	_, err := f.service.Create(context.Background(), createRequest())

	assertFailure(t, err, http.StatusConflict, MessageConflict)
}

func TestCreate_CancelledBookingStillBlocks(t *testing.T) {
	f := newFixture(t)

	cancelled := existing("a", roomModel.BTB, "2025-03-12", "09:00", "10:00")
	cancelled.Status = model.StatusCancelled

	f.repo.EXPECT().ReadAll(gomock.Any()).Return([]model.Booking{cancelled}, nil)

	_, err := f.service.Create(context.Background(), createRequest())

	assertFailure(t, err, http.StatusConflict, MessageConflict)
}

func TestCreate_StorageFailure(t *testing.T) {
	t.Run("read", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ReadAll(gomock.Any()).Return(nil, errors.New("disk unavailable"))

		_, err := f.service.Create(context.Background(), createRequest())

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("write", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ReadAll(gomock.Any()).Return([]model.Booking{}, nil)
		f.repo.EXPECT().WriteAll(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := f.service.Create(context.Background(), createRequest())

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestCreate_SeriesSkipsConflicts(t *testing.T) {
	f := newFixture(t)
	stored := []model.Booking{existing("a", roomModel.BTB, "2025-03-19", "09:30", "10:30")}

	var written []model.Booking

	f.repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)
	f.repo.EXPECT().WriteAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, bookings []model.Booking) error {
		written = bookings

		return nil
	})

	req := createRequest()
	req.Recurring = &model.RecurringPattern{Frequency: model.FrequencyWeekly, Interval: 1, EndDate: "2025-03-26"}

	res, err := f.service.Create(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, res.Series)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Bookings, 2)
	assert.Equal(t, "2025-03-12", res.Bookings[0].Date)
	assert.Equal(t, "2025-03-26", res.Bookings[1].Date)
	assert.NotEqual(t, res.Bookings[0].ID, res.Bookings[1].ID)
	require.NotNil(t, res.Bookings[0].Recurring)
	assert.Equal(t, *req.Recurring, *res.Bookings[0].Recurring)

	require.Len(t, written, 3)
	assert.Equal(t, "a", written[0].ID)
}

func TestCreate_SeriesAllConflicting(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().ReadAll(gomock.Any()).Return([]model.Booking{
		existing("a", roomModel.BTB, "2025-03-12", "09:00", "10:00"),
		existing("b", roomModel.BTB, "2025-03-13", "09:00", "10:00"),
	}, nil)

	req := createRequest()
	req.Recurring = &model.RecurringPattern{Frequency: model.FrequencyDaily, Interval: 1, EndDate: "2025-03-13"}

	_, err := f.service.Create(context.Background(), req)

	assertFailure(t, err, http.StatusConflict, MessageConflict)
}

func updateRequest() dto.UpdateBookingRequest {
	return dto.UpdateBookingRequest{
		Date:      "2025-03-12",
		StartTime: "09:00",
		EndTime:   "10:30",
		GroupName: "Grade 10A",
		ClassName: roomModel.BTB,
		BookedBy:  "Sokha",
	}
}

func TestUpdate(t *testing.T) {
	pattern := &model.RecurringPattern{Frequency: model.FrequencyWeekly, Interval: 1, EndDate: "2025-04-30"}

	target := existing("a", roomModel.BTB, "2025-03-12", "09:00", "10:00")
	target.Recurring = pattern

	t.Run("self overlap is not a conflict and fields merge", func(t *testing.T) {
		f := newFixture(t)

		var written []model.Booking

		f.repo.EXPECT().ReadAll(gomock.Any()).Return([]model.Booking{target, existing("b", roomModel.SR, "2025-03-12", "09:00", "10:00")}, nil)
		f.repo.EXPECT().WriteAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, bookings []model.Booking) error {
			written = bookings

			return nil
		})

		status := model.StatusPending
		req := updateRequest()
		req.Status = &status

		res, err := f.service.Update(context.Background(), "a", req)

		require.NoError(t, err)
		assert.Equal(t, "a", res.ID)
		assert.Equal(t, "10:30", res.EndTime)
		assert.Equal(t, "pending", res.Status)
		assert.Equal(t, "Lesson", res.Purpose, "purpose kept when omitted")
		assert.NotEmpty(t, res.UpdatedAt)
		assert.Equal(t, pattern, res.Recurring)

		require.Len(t, written, 2)
		assert.Equal(t, "a", written[0].ID, "position kept")
		assert.Equal(t, target.CreatedAt, written[0].CreatedAt)
		require.NotNil(t, written[0].UpdatedAt)
		assert.Equal(t, fixedNow, *written[0].UpdatedAt)
	})

	t.Run("overlap with another booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ReadAll(gomock.Any()).Return([]model.Booking{target, existing("b", roomModel.BTB, "2025-03-12", "10:00", "11:00")}, nil)

		_, err := f.service.Update(context.Background(), "a", updateRequest())

		assertFailure(t, err, http.StatusConflict, MessageConflict)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ReadAll(gomock.Any()).Return([]model.Booking{target}, nil)

		_, err := f.service.Update(context.Background(), "missing", updateRequest())

		assertFailure(t, err, http.StatusNotFound, MessageNotFound)
	})

	t.Run("invalid request touches no storage", func(t *testing.T) {
		f := newFixture(t)

		req := updateRequest()
		req.BookedBy = ""

		_, err := f.service.Update(context.Background(), "a", req)

		assertFailure(t, err, http.StatusBadRequest, "bookedBy is required")
	})
}

func TestDelete(t *testing.T) {
	stored := []model.Booking{
		existing("a", roomModel.BTB, "2025-03-12", "09:00", "10:00"),
		existing("b", roomModel.SR, "2025-03-12", "09:00", "10:00"),
		existing("c", roomModel.PP, "2025-03-12", "09:00", "10:00"),
	}

	t.Run("removes and keeps order", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)
		f.repo.EXPECT().WriteAll(gomock.Any(), []model.Booking{stored[0], stored[2]}).Return(nil)

		require.NoError(t, f.service.Delete(context.Background(), "b"))
		assert.Len(t, stored, 3, "input collection untouched")
	})

	t.Run("unknown id writes nothing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)

		err := f.service.Delete(context.Background(), "missing")

		assertFailure(t, err, http.StatusNotFound, MessageNotFound)
	})
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	stored := []model.Booking{existing("a", roomModel.BTB, "2025-03-12", "09:00", "10:00")}

	f.repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil).Times(2)

	res, err := f.service.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", res.ID)

	_, err = f.service.Get(context.Background(), "missing")
	assertFailure(t, err, http.StatusNotFound, MessageNotFound)
}

func TestList(t *testing.T) {
	stored := []model.Booking{
		existing("a", roomModel.BTB, "2025-03-14", "09:00", "10:00"),
		existing("b", roomModel.SR, "2025-03-12", "09:00", "10:00"),
		existing("c", roomModel.BTB, "2025-03-13", "09:00", "10:00"),
	}

	t.Run("no parameters returns the full collection in storage order", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)

		res, err := f.service.List(context.Background(), dto.ListBookingsRequest{})

		require.NoError(t, err)
		assert.Nil(t, res.Envelope)
		require.Len(t, res.Bookings, 3)
		assert.Equal(t, "a", res.Bookings[0].ID)
	})

	t.Run("filtered and paged", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)

		req := dto.ListBookingsRequest{ClassName: roomModel.BTB}
		req.Page, req.Limit = 1, 1

		res, err := f.service.List(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, res.Envelope)
		assert.Equal(t, 2, res.Envelope.Total)
		assert.Equal(t, 2, res.Envelope.TotalPages)
		assert.Equal(t, 1, res.Envelope.Page)
		assert.Equal(t, 1, res.Envelope.Limit)
		require.Len(t, res.Envelope.Bookings, 1)
		assert.Equal(t, "c", res.Envelope.Bookings[0].ID)
	})

	t.Run("filter without paging is a single page", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)

		res, err := f.service.List(context.Background(), dto.ListBookingsRequest{Status: model.StatusConfirmed})

		require.NoError(t, err)
		require.NotNil(t, res.Envelope)
		assert.Equal(t, 3, res.Envelope.Total)
		assert.Equal(t, 3, res.Envelope.Limit)
		assert.Equal(t, 1, res.Envelope.TotalPages)
		assert.Equal(t, "b", res.Envelope.Bookings[0].ID)
	})

	t.Run("second page of twenty five", func(t *testing.T) {
		f := newFixture(t)

		many := make([]model.Booking, 0, 25)
		for i := range 25 {
			many = append(many, existing(fmt.Sprintf("%02d", i), roomModel.PP, fmt.Sprintf("2025-04-%02d", i+1), "09:00", "10:00"))
		}

		f.repo.EXPECT().ReadAll(gomock.Any()).Return(many, nil)

		req := dto.ListBookingsRequest{}
		req.Page, req.Limit = 2, 10

		res, err := f.service.List(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, res.Envelope)
		assert.Equal(t, 25, res.Envelope.Total)
		assert.Equal(t, 3, res.Envelope.TotalPages)
		require.Len(t, res.Envelope.Bookings, 10)
		assert.Equal(t, "10", res.Envelope.Bookings[0].ID)
	})

	t.Run("page far past the end is empty", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)

		req := dto.ListBookingsRequest{}
		req.Page, req.Limit = math.MaxInt, 10

		res, err := f.service.List(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, res.Envelope)
		assert.Empty(t, res.Envelope.Bookings)
		assert.Equal(t, 3, res.Envelope.Total)
	})

	t.Run("invalid sort field", func(t *testing.T) {
		f := newFixture(t)

		req := dto.ListBookingsRequest{}
		req.SortBy = "attendees"

		_, err := f.service.List(context.Background(), req)

		assertFailure(t, err, http.StatusBadRequest, "")
	})
}

func TestStatistics(t *testing.T) {
	f := newFixture(t)

	pending := existing("c", roomModel.SR, "2025-03-11", "09:00", "10:00")
	pending.Status = model.StatusPending

	f.repo.EXPECT().ReadAll(gomock.Any()).Return([]model.Booking{
		existing("a", roomModel.BTB, "2025-03-09", "09:00", "10:00"),
		existing("b", roomModel.BTB, "2025-03-10", "09:00", "10:00"),
		pending,
	}, nil)

	res, err := f.service.Statistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.ByRoom["BTB"])
	assert.Equal(t, 1, res.ByRoom["SR"])
	assert.Equal(t, 0, res.ByRoom["Koh Kong"])
	assert.Len(t, res.ByRoom, len(roomModel.Catalogue))
	assert.Equal(t, 2, res.ByStatus["confirmed"])
	assert.Equal(t, 1, res.ByStatus["pending"])
	assert.Equal(t, 0, res.ByStatus["cancelled"])
	assert.Equal(t, 1, res.Past)
	assert.Equal(t, 1, res.Today)
	assert.Equal(t, 1, res.Upcoming)
}

func TestSnapshot_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBooking(ctrl)
	store := cacheMocks.NewMockCache(ctrl)
	stored := []model.Booking{existing("a", roomModel.BTB, "2025-03-12", "09:00", "10:00")}

	svc := New(repo, testConfig(), store, otelMocks.NewOtel(), s3Mocks.NewMockS3(ctrl), kafka.New(&config.Config{}))

	t.Run("miss reads storage and fills the cache", func(t *testing.T) {
		store.EXPECT().Get(gomock.Any(), cacheAllBookings, gomock.Any()).Return(cache.Nil)
		repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)
		store.EXPECT().Save(gomock.Any(), cacheAllBookings, stored, 60).Return(nil)

		_, err := svc.Get(context.Background(), "a")
		require.NoError(t, err)
	})

	t.Run("hit skips storage", func(t *testing.T) {
		store.EXPECT().Get(gomock.Any(), cacheAllBookings, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
			*value.(*[]model.Booking) = stored

			return nil
		})

		res, err := svc.Get(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, "a", res.ID)
	})

	t.Run("writes invalidate", func(t *testing.T) {
		repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)
		repo.EXPECT().WriteAll(gomock.Any(), []model.Booking{}).Return(nil)
		store.EXPECT().Delete(gomock.Any(), cacheAllBookings).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), "a"))
	})

	t.Run("invalidation failure does not fail the write", func(t *testing.T) {
		repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)
		repo.EXPECT().WriteAll(gomock.Any(), []model.Booking{}).Return(nil)
		store.EXPECT().Delete(gomock.Any(), cacheAllBookings).Return(errors.New("redis down"))

		require.NoError(t, svc.Delete(context.Background(), "a"))
	})
}

func TestPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBooking(ctrl)
	publisher := kafkaMocks.NewMockClient(ctrl)

	svc := New(repo, testConfig(), cache.NewNoop(), otelMocks.NewOtel(), s3Mocks.NewMockS3(ctrl), publisher)

	stored := []model.Booking{existing("a", roomModel.BTB, "2025-03-12", "09:00", "10:00")}

	repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)
	repo.EXPECT().WriteAll(gomock.Any(), gomock.Any()).Return(nil)
	publisher.EXPECT().Enabled().Return(true)
	publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, messages ...kafka.Message) error {
		require.Len(t, messages, 1)
		assert.Equal(t, "a", messages[0].Key)

		event, ok := messages[0].Value.(Event)
		require.True(t, ok)
		assert.Equal(t, eventDeleted, event.Type)
		assert.Equal(t, "a", event.Booking.ID)

		return errors.New("broker unreachable")
	})

	require.NoError(t, svc.Delete(context.Background(), "a"), "publish failures are not surfaced")
}

func TestBackup(t *testing.T) {
	stored := []model.Booking{existing("a", roomModel.BTB, "2025-03-12", "09:00", "10:00")}

	t.Run("disabled", func(t *testing.T) {
		f := newFixture(t)
		f.s3.EXPECT().Enabled().Return(false).Times(3)

		_, err := f.service.Backup(context.Background())
		assertFailure(t, err, http.StatusNotImplemented, MessageBackupDisabled)

		_, err = f.service.ListBackups(context.Background())
		assertFailure(t, err, http.StatusNotImplemented, MessageBackupDisabled)

		_, err = f.service.Restore(context.Background(), dto.RestoreBackupRequest{Key: "bookings-1.json"})
		assertFailure(t, err, http.StatusNotImplemented, MessageBackupDisabled)
	})

	t.Run("uploads the collection", func(t *testing.T) {
		f := newFixture(t)
		f.s3.EXPECT().Enabled().Return(true)
		f.repo.EXPECT().ReadAll(gomock.Any()).Return(stored, nil)
		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), "backups", "bookings-20250310T080000Z.json", "application/json", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, _ string, data []byte) (string, error) {
				var decoded []model.Booking
				require.NoError(t, json.Unmarshal(data, &decoded))
				assert.Len(t, decoded, 1)

				return "backups/bookings-20250310T080000Z.json", nil
			})

		res, err := f.service.Backup(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "bookings-20250310T080000Z.json", res.Key)
		assert.Equal(t, 1, res.Count)
	})

	t.Run("lists only backup files", func(t *testing.T) {
		f := newFixture(t)
		f.s3.EXPECT().Enabled().Return(true)
		f.s3.EXPECT().ListFiles(gomock.Any(), "backups").Return([]s3Infra.Object{
			{Name: "bookings-20250310T080000Z.json", Size: 120},
			{Name: "notes.txt", Size: 4},
		}, nil)

		res, err := f.service.ListBackups(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []dto.BackupItem{{Key: "bookings-20250310T080000Z.json", Size: 120}}, res)
	})
}

func TestRestore(t *testing.T) {
	key := "bookings-20250310T080000Z.json"
	encode := func(t *testing.T, bookings []model.Booking) []byte {
		t.Helper()

		raw, err := json.Marshal(bookings)
		require.NoError(t, err)

		return raw
	}

	t.Run("replaces the collection", func(t *testing.T) {
		f := newFixture(t)
		backup := []model.Booking{
			existing("a", roomModel.BTB, "2025-03-12", "09:00", "10:00"),
			existing("b", roomModel.BTB, "2025-03-12", "10:00", "11:00"),
		}

		f.s3.EXPECT().Enabled().Return(true)
		f.s3.EXPECT().DownloadFile(gomock.Any(), "backups", key).Return(encode(t, backup), nil)
		f.repo.EXPECT().WriteAll(gomock.Any(), gomock.Len(2)).Return(nil)

		res, err := f.service.Restore(context.Background(), dto.RestoreBackupRequest{Key: key})

		require.NoError(t, err)
		assert.Equal(t, 2, res.Count)
	})

	t.Run("rejects overlapping backups", func(t *testing.T) {
		f := newFixture(t)
		backup := []model.Booking{
			existing("a", roomModel.BTB, "2025-03-12", "09:00", "10:00"),
			existing("b", roomModel.BTB, "2025-03-12", "09:30", "11:00"),
		}

		f.s3.EXPECT().Enabled().Return(true)
		f.s3.EXPECT().DownloadFile(gomock.Any(), "backups", key).Return(encode(t, backup), nil)

		_, err := f.service.Restore(context.Background(), dto.RestoreBackupRequest{Key: key})

		assertFailure(t, err, http.StatusBadRequest, MessageBackupOverlap)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		f := newFixture(t)
		backup := []model.Booking{
			existing("a", roomModel.BTB, "2025-03-12", "09:00", "10:00"),
			existing("a", roomModel.SR, "2025-03-12", "09:00", "10:00"),
		}

		f.s3.EXPECT().Enabled().Return(true)
		f.s3.EXPECT().DownloadFile(gomock.Any(), "backups", key).Return(encode(t, backup), nil)

		_, err := f.service.Restore(context.Background(), dto.RestoreBackupRequest{Key: key})

		assertFailure(t, err, http.StatusBadRequest, MessageBackupInvalid)
	})

	t.Run("rejects corrupt backups", func(t *testing.T) {
		f := newFixture(t)

		f.s3.EXPECT().Enabled().Return(true)
		f.s3.EXPECT().DownloadFile(gomock.Any(), "backups", key).Return([]byte("{"), nil)

		_, err := f.service.Restore(context.Background(), dto.RestoreBackupRequest{Key: key})

		assertFailure(t, err, http.StatusBadRequest, MessageBackupInvalid)
	})

	t.Run("rejects keys outside the backup directory", func(t *testing.T) {
		f := newFixture(t)
		f.s3.EXPECT().Enabled().Return(true)

		_, err := f.service.Restore(context.Background(), dto.RestoreBackupRequest{Key: "../bookings-x.json"})

		assertFailure(t, err, http.StatusBadRequest, MessageBackupKey)
	})
}

func TestCreate_ConcurrentRequestsForOneSlot(t *testing.T) {
	repo := repository.NewFile(filepath.Join(t.TempDir(), "bookings.json"), otelMocks.NewOtel())
	svc := New(repo, testConfig(), cache.NewNoop(), otelMocks.NewOtel(), nil, kafka.New(&config.Config{}))

	const workers = 16

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.Create(context.Background(), createRequest())

			mu.Lock()
			defer mu.Unlock()

			switch failure.GetCode(err) {
			case http.StatusConflict:
				conflicts++
			default:
				if err == nil {
					succeeded++
				}
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)

	bookings, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
