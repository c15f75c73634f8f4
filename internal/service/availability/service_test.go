package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-MarketplaceService/internal/service/availability/models"
)

type fakeAvailabilityRepo struct {
	stored *domain.VendorAvailability
}

func (f *fakeAvailabilityRepo) GetByVendorID(_ context.Context, vendorID int64) (*domain.VendorAvailability, error) {
	if f.stored == nil || f.stored.VendorID != vendorID {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	return f.stored, nil
}

func (f *fakeAvailabilityRepo) Upsert(_ context.Context, avail *domain.VendorAvailability) (*domain.VendorAvailability, error) {
	stored := *avail
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.stored = &stored
	return &stored, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpdateRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		VendorID:            7,
		Monday:              true,
		Wednesday:           true,
		Friday:              true,
		WorkStart:           "09:00",
		WorkEnd:             "18:00",
		ResponseTimeMinutes: 60,
	}
}

func TestUpdate_VendorOwnsSchedule(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), validUpdateRequest(), 7, domain.RoleVendor)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.VendorID)
	assert.True(t, resp.Monday)
	assert.False(t, resp.Tuesday)
	assert.Equal(t, "09:00", resp.WorkStart)
	assert.Equal(t, "18:00", resp.WorkEnd)
	assert.Equal(t, 60, resp.ResponseTimeMinutes)
}

func TestUpdate_AccessControl(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, nopLogger{})

	// Чужой вендор
	_, err := svc.Update(context.Background(), validUpdateRequest(), 8, domain.RoleVendor)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Клиент
	_, err = svc.Update(context.Background(), validUpdateRequest(), 7, domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Админ обновляет любое расписание
	_, err = svc.Update(context.Background(), validUpdateRequest(), 999, domain.RoleAdmin)
	assert.NoError(t, err)
}

func TestUpdate_Validation(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.UpdateScheduleRequest)
	}{
		{name: "bad start format", mutate: func(r *models.UpdateScheduleRequest) { r.WorkStart = "9:00" }},
		{name: "bad end format", mutate: func(r *models.UpdateScheduleRequest) { r.WorkEnd = "18.00" }},
		{name: "start equals end", mutate: func(r *models.UpdateScheduleRequest) { r.WorkEnd = "09:00" }},
		{name: "start after end", mutate: func(r *models.UpdateScheduleRequest) { r.WorkStart = "19:00" }},
		{name: "negative response time", mutate: func(r *models.UpdateScheduleRequest) { r.ResponseTimeMinutes = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdateRequest()
			tt.mutate(req)
			_, err := svc.Update(context.Background(), req, 7, domain.RoleVendor)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetByVendorID(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, nopLogger{})

	// Расписания ещё нет
	_, err := svc.GetByVendorID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	// После создания читается обратно
	_, err = svc.Update(context.Background(), validUpdateRequest(), 7, domain.RoleVendor)
	require.NoError(t, err)

	resp, err := svc.GetByVendorID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.VendorID)
	assert.True(t, resp.Friday)
	assert.Equal(t, "09:00", resp.WorkStart)
}
