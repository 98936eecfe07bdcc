package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"oceanview/config"
	"oceanview/infras/otel/mocks"
	guestMocks "oceanview/internal/domains/guest/mocks"
	"oceanview/internal/domains/guest/model"
	"oceanview/internal/domains/guest/model/dto"
	"oceanview/internal/domains/guest/service"
)

func TestGuestService_Register(t *testing.T) {
	req := dto.RegisterGuestRequest{
		Name:       "Jordan Baker",
		NationalID: "ID-778899",
		Email:      "jordan@example.com",
		Phone:      "+62811111111",
	}

	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest)
		wantErr   bool
		wantName  string
	}{
		{
			name: "new guest registered",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().
					GetByNationalID(gomock.Any(), "ID-778899").
					Return(model.Guest{}, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantName: "Jordan Baker",
		},
		{
			name: "returning guest refreshed",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().
					GetByNationalID(gomock.Any(), "ID-778899").
					Return(model.Guest{ID: "guest-1", Name: "J. Baker", NationalID: "ID-778899"}, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantName: "Jordan Baker",
		},
		{
			name: "lookup error",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().
					GetByNationalID(gomock.Any(), "ID-778899").
					Return(model.Guest{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := guestMocks.NewMockGuest(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

			res, err := svc.Register(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantName, res.Name)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestGuestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Guest{}, nil)

	_, err := svc.Get(context.Background(), "missing")
	assert.Error(t, err)
}
