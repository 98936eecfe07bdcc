package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"oceanview/config"
	"oceanview/infras/otel/mocks"
	roomMocks "oceanview/internal/domains/room/mocks"
	"oceanview/internal/domains/room/model"
	"oceanview/internal/domains/room/model/dto"
	"oceanview/internal/domains/room/service"
	cacheMocks "oceanview/shared/cache/mocks"
	"oceanview/shared/constant"
	gDto "oceanview/shared/dto"
	"oceanview/shared/failure"
	gModel "oceanview/shared/model"
	"oceanview/shared/timezone"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateRoomRequest{
				Number:   "101",
				Type:     model.TypeStandard,
				BaseRate: 100,
			},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "duplicate room number",
			req: dto.CreateRoomRequest{
				Number:   "101",
				Type:     model.TypeStandard,
				BaseRate: 100,
			},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "repository error",
			req: dto.CreateRoomRequest{
				Number:   "102",
				Type:     model.TypeDeluxe,
				BaseRate: 180,
			},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyActor, "front-desk")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	room := model.Room{
		ID:       "room-1",
		Number:   "101",
		Type:     model.TypeStandard,
		BaseRate: 100,
		Status:   model.StatusAvailable,
		Clean:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	tests := []struct {
		name      string
		id        string
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache miss, found in db",
			id:   "room-1",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantID: "room-1",
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "room-1",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, res.ID)
			}
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Room{{ID: "room-1", Number: "101", Status: model.StatusAvailable}}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Rooms, 1)
}

func TestRoomService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateRoomStatusRequest
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
	}{
		{
			name: "successful status change",
			req:  dto.UpdateRoomStatusRequest{Status: model.StatusUnderMaintenance},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "room not found",
			req:  dto.UpdateRoomStatusRequest{Status: model.StatusAvailable},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)
			tt.setupMock(mockRepo)

			err := svc.UpdateStatus(context.Background(), tt.req, "room-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Occupancy(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	counts := map[string]int{
		model.StatusAvailable:        5,
		model.StatusReserved:         2,
		model.StatusOccupied:         3,
		model.StatusUnderMaintenance: 0,
	}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			first, _ := filter.Filters[0].(gDto.Filter)
			status, _ := first.Value.(string)

			return counts[status], nil
		}).
		Times(4)

	res, err := svc.Occupancy(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 10, res.TotalRooms)
	assert.Equal(t, 3, res.Occupied)
	assert.Equal(t, 2, res.Reserved)
	assert.InDelta(t, 0.5, res.OccupancyRate, 1e-9)
}
