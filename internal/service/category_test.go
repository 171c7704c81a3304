package service

import (
	"context"
	"testing"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	category, err := svc.Create(context.Background(), domain.CreateCategoryInput{
		Name:  "Training",
		Color: "#00ff00",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Training", category.Name)
	assert.True(t, category.IsTraining())
}

func TestCategoryService_Create_InvalidColor(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo)

	for _, color := range []string{"", "red", "00ff00", "#0f0"} {
		_, err := svc.Create(context.Background(), domain.CreateCategoryInput{
			Name:  "Padel",
			Color: color,
		})

		require.Error(t, err, "color %q", color)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestCategoryService_List(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo)

	categories := []*domain.Category{{ID: "c1", Name: "Padel"}}
	repo.EXPECT().List(mock.Anything).Return(categories, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, categories, got)
}
