package roomtypeadmin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	storage "github.com/m04kA/SMC-HotelService/internal/infra/storage/roomtype"
)

type fakeRoomTypes struct {
	roomTypes map[int64]*domain.RoomType
	nextID    int64
}

func (f *fakeRoomTypes) Create(_ context.Context, roomType *domain.RoomType) (*domain.RoomType, error) {
	f.nextID++
	rt := *roomType
	rt.ID = f.nextID
	f.roomTypes[rt.ID] = &rt
	return &rt, nil
}

func (f *fakeRoomTypes) Update(_ context.Context, roomType *domain.RoomType) error {
	if _, ok := f.roomTypes[roomType.ID]; !ok {
		return storage.ErrRoomTypeNotFound
	}
	rt := *roomType
	f.roomTypes[rt.ID] = &rt
	return nil
}

func (f *fakeRoomTypes) GetByID(_ context.Context, id int64) (*domain.RoomType, error) {
	rt, ok := f.roomTypes[id]
	if !ok {
		return nil, storage.ErrRoomTypeNotFound
	}
	return rt, nil
}

type fakeAudit struct {
	entries []*domain.AuditEntry
}

func (f *fakeAudit) Append(_ context.Context, entry *domain.AuditEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture() (*Service, *fakeRoomTypes, *fakeAudit) {
	repo := &fakeRoomTypes{roomTypes: make(map[int64]*domain.RoomType)}
	audit := &fakeAudit{}
	svc := NewService(repo, audit, passthroughTxManager{}, nopLogger{})
	return svc, repo, audit
}

func TestCreate_WritesAuditEntry(t *testing.T) {
	svc, _, audit := newFixture()

	saved, err := svc.Create(context.Background(), &domain.RoomType{
		Name:       "Deluxe",
		BaseRate:   15000,
		TotalRooms: 10,
	}, "admin:1")
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, domain.AuditActionRoomTypeEdit, audit.entries[0].Action)
	assert.Equal(t, "admin:1", audit.entries[0].Actor)
	assert.Equal(t, "create", audit.entries[0].Metadata["op"])
	assert.Nil(t, audit.entries[0].BookingID)
}

func TestUpdate_WritesAuditEntry(t *testing.T) {
	svc, repo, audit := newFixture()

	saved, err := svc.Create(context.Background(), &domain.RoomType{
		Name:       "Deluxe",
		BaseRate:   15000,
		TotalRooms: 10,
	}, "admin:1")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), &domain.RoomType{
		ID:         saved.ID,
		Name:       "Deluxe Sea View",
		BaseRate:   18000,
		TotalRooms: 8,
	}, "admin:2")
	require.NoError(t, err)
	assert.Equal(t, int64(18000), updated.BaseRate)
	assert.Equal(t, "Deluxe Sea View", repo.roomTypes[saved.ID].Name)

	require.Len(t, audit.entries, 2)
	assert.Equal(t, "admin:2", audit.entries[1].Actor)
	assert.Equal(t, "update", audit.entries[1].Metadata["op"])
	assert.Equal(t, int64(18000), audit.entries[1].Metadata["baseRate"])
}

func TestUpdate_UnknownRoomType(t *testing.T) {
	svc, _, audit := newFixture()

	_, err := svc.Update(context.Background(), &domain.RoomType{
		ID:         99,
		Name:       "Ghost",
		BaseRate:   100,
		TotalRooms: 1,
	}, "admin:1")

	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
	assert.Empty(t, audit.entries, "failed update leaves no audit trail")
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newFixture()

	tests := []struct {
		name     string
		roomType *domain.RoomType
		actor    string
	}{
		{"nil room type", nil, "admin:1"},
		{"empty name", &domain.RoomType{BaseRate: 100, TotalRooms: 1}, "admin:1"},
		{"negative base rate", &domain.RoomType{Name: "X", BaseRate: -1, TotalRooms: 1}, "admin:1"},
		{"zero total rooms", &domain.RoomType{Name: "X", BaseRate: 100}, "admin:1"},
		{"missing actor", &domain.RoomType{Name: "X", BaseRate: 100, TotalRooms: 1}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.roomType, tt.actor)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_RequiresID(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.Update(context.Background(), &domain.RoomType{
		Name:       "X",
		BaseRate:   100,
		TotalRooms: 1,
	}, "admin:1")

	assert.ErrorIs(t, err, ErrInvalidInput)
}
