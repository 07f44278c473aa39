package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-BookingService/internal/domain"
	zenotiClient "github.com/m04kA/SPA-BookingService/internal/integrations/zenoti"
)

type mockZenoti struct {
	listCentersFn    func(ctx context.Context) ([]*domain.Center, error)
	getCenterFn      func(ctx context.Context, centerID string) (*domain.Center, error)
	listCategoriesFn func(ctx context.Context, centerID string, page, size int) ([]*domain.Category, error)
	getCategoryFn    func(ctx context.Context, centerID, categoryID string) (*domain.Category, error)
	listServicesFn   func(ctx context.Context, centerID, categoryID string, page, size int) ([]*domain.Service, error)
	getServiceFn     func(ctx context.Context, centerID, serviceID string) (*domain.Service, error)
	listTherapistsFn func(ctx context.Context, centerID string) ([]*domain.Therapist, error)
}

func (m *mockZenoti) ListCenters(ctx context.Context) ([]*domain.Center, error) {
	return m.listCentersFn(ctx)
}

func (m *mockZenoti) GetCenter(ctx context.Context, centerID string) (*domain.Center, error) {
	return m.getCenterFn(ctx, centerID)
}

func (m *mockZenoti) ListCategories(ctx context.Context, centerID string, page, size int) ([]*domain.Category, error) {
	return m.listCategoriesFn(ctx, centerID, page, size)
}

func (m *mockZenoti) GetCategory(ctx context.Context, centerID, categoryID string) (*domain.Category, error) {
	return m.getCategoryFn(ctx, centerID, categoryID)
}

func (m *mockZenoti) ListServices(ctx context.Context, centerID, categoryID string, page, size int) ([]*domain.Service, error) {
	return m.listServicesFn(ctx, centerID, categoryID, page, size)
}

func (m *mockZenoti) GetService(ctx context.Context, centerID, serviceID string) (*domain.Service, error) {
	return m.getServiceFn(ctx, centerID, serviceID)
}

func (m *mockZenoti) ListTherapists(ctx context.Context, centerID string) ([]*domain.Therapist, error) {
	return m.listTherapistsFn(ctx, centerID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestListCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("ExcludesAddonAndFeeCategories", func(t *testing.T) {
		mock := &mockZenoti{
			listCategoriesFn: func(ctx context.Context, centerID string, page, size int) ([]*domain.Category, error) {
				return []*domain.Category{
					{ID: "c1", Name: "Massages"},
					{ID: "c2", Name: "Add-On"},
					{ID: "c3", Name: "Charges & Fees"},
					{ID: "c4", Name: "charges and fees"},
					{ID: "c5", Name: "Facials"},
				}, nil
			},
		}
		svc := NewService(mock, nopLogger{})

		categories, err := svc.ListCategories(ctx, "center-1", "")
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "c1", categories[0].ID)
		assert.Equal(t, "c5", categories[1].ID)
	})

	t.Run("MarksOnlyMatchingCategoryActive", func(t *testing.T) {
		mock := &mockZenoti{
			listCategoriesFn: func(ctx context.Context, centerID string, page, size int) ([]*domain.Category, error) {
				return []*domain.Category{
					{ID: "c1", Name: "Massages"},
					{ID: "c2", Name: "Facials"},
					{ID: "c3", Name: "Body Treatments"},
				}, nil
			},
		}
		svc := NewService(mock, nopLogger{})

		categories, err := svc.ListCategories(ctx, "center-1", "c2")
		require.NoError(t, err)
		require.Len(t, categories, 3)

		active := 0
		for _, category := range categories {
			if category.Active {
				active++
				assert.Equal(t, "c2", category.ID)
			}
		}
		assert.Equal(t, 1, active)
	})

	t.Run("UnknownActiveIDLeavesAllInactive", func(t *testing.T) {
		mock := &mockZenoti{
			listCategoriesFn: func(ctx context.Context, centerID string, page, size int) ([]*domain.Category, error) {
				return []*domain.Category{{ID: "c1", Name: "Massages"}}, nil
			},
		}
		svc := NewService(mock, nopLogger{})

		categories, err := svc.ListCategories(ctx, "center-1", "no-such-id")
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.False(t, categories[0].Active)
	})

	t.Run("EmptyCenterIDIsInvalid", func(t *testing.T) {
		svc := NewService(&mockZenoti{}, nopLogger{})

		_, err := svc.ListCategories(ctx, "", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestListAddons(t *testing.T) {
	ctx := context.Background()

	newAddonServices := func(n int) []*domain.Service {
		services := make([]*domain.Service, n)
		for i := range services {
			services[i] = &domain.Service{ID: fmt.Sprintf("s%d", i+1), Name: fmt.Sprintf("Addon %d", i+1)}
		}
		return services
	}

	mockWithAddons := func(services []*domain.Service) *mockZenoti {
		return &mockZenoti{
			listCategoriesFn: func(ctx context.Context, centerID string, page, size int) ([]*domain.Category, error) {
				return []*domain.Category{
					{ID: "cat-massages", Name: "Massages"},
					{ID: "cat-addon", Name: "Add-On"},
				}, nil
			},
			listServicesFn: func(ctx context.Context, centerID, categoryID string, page, size int) ([]*domain.Service, error) {
				assert.Equal(t, "cat-addon", categoryID)
				return services, nil
			},
		}
	}

	t.Run("SplitsFirstFourIntoSuggested", func(t *testing.T) {
		svc := NewService(mockWithAddons(newAddonServices(7)), nopLogger{})

		addons, err := svc.ListAddons(ctx, "center-1")
		require.NoError(t, err)
		require.Len(t, addons.Suggested, 4)
		require.Len(t, addons.All, 3)

		// Upstream ordering is preserved across the split
		assert.Equal(t, "s1", addons.Suggested[0].ID)
		assert.Equal(t, "s4", addons.Suggested[3].ID)
		assert.Equal(t, "s5", addons.All[0].ID)
		assert.Equal(t, "s7", addons.All[2].ID)
	})

	t.Run("FewerThanLimitAllSuggested", func(t *testing.T) {
		svc := NewService(mockWithAddons(newAddonServices(2)), nopLogger{})

		addons, err := svc.ListAddons(ctx, "center-1")
		require.NoError(t, err)
		assert.Len(t, addons.Suggested, 2)
		assert.Empty(t, addons.All)
	})

	t.Run("NoAddonServices", func(t *testing.T) {
		svc := NewService(mockWithAddons(nil), nopLogger{})

		addons, err := svc.ListAddons(ctx, "center-1")
		require.NoError(t, err)
		assert.True(t, addons.IsEmpty())
	})

	t.Run("NoAddonCategory", func(t *testing.T) {
		mock := &mockZenoti{
			listCategoriesFn: func(ctx context.Context, centerID string, page, size int) ([]*domain.Category, error) {
				return []*domain.Category{{ID: "c1", Name: "Massages"}}, nil
			},
		}
		svc := NewService(mock, nopLogger{})

		_, err := svc.ListAddons(ctx, "center-1")
		assert.ErrorIs(t, err, ErrNoAddonCategory)
	})
}

func TestGetCategoryOptionalContract(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&mockZenoti{}, nopLogger{})

	// Missing identifiers mean "nothing selected", not an error
	category, err := svc.GetCategory(ctx, "", "c1")
	require.NoError(t, err)
	assert.Nil(t, category)

	category, err = svc.GetCategory(ctx, "center-1", "")
	require.NoError(t, err)
	assert.Nil(t, category)
}

func TestGetServiceOptionalContract(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&mockZenoti{}, nopLogger{})

	service, err := svc.GetService(ctx, "", "s1")
	require.NoError(t, err)
	assert.Nil(t, service)

	service, err = svc.GetService(ctx, "center-1", "")
	require.NoError(t, err)
	assert.Nil(t, service)
}

func TestGetCenter(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		mock := &mockZenoti{
			getCenterFn: func(ctx context.Context, centerID string) (*domain.Center, error) {
				return nil, zenotiClient.ErrCenterNotFound
			},
		}
		svc := NewService(mock, nopLogger{})

		_, err := svc.GetCenter(ctx, "missing")
		assert.ErrorIs(t, err, ErrCenterNotFound)
	})

	t.Run("UpstreamFailureIsInternal", func(t *testing.T) {
		mock := &mockZenoti{
			getCenterFn: func(ctx context.Context, centerID string) (*domain.Center, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := NewService(mock, nopLogger{})

		_, err := svc.GetCenter(ctx, "center-1")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestListTherapists(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyCenterIDReturnsEmptyListWithoutCall", func(t *testing.T) {
		called := false
		mock := &mockZenoti{
			listTherapistsFn: func(ctx context.Context, centerID string) ([]*domain.Therapist, error) {
				called = true
				return nil, nil
			},
		}
		svc := NewService(mock, nopLogger{})

		therapists, err := svc.ListTherapists(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, therapists)
		assert.False(t, called)
	})

	t.Run("NilUpstreamListBecomesEmpty", func(t *testing.T) {
		mock := &mockZenoti{
			listTherapistsFn: func(ctx context.Context, centerID string) ([]*domain.Therapist, error) {
				return nil, nil
			},
		}
		svc := NewService(mock, nopLogger{})

		therapists, err := svc.ListTherapists(ctx, "center-1")
		require.NoError(t, err)
		assert.NotNil(t, therapists)
		assert.Empty(t, therapists)
	})
}

func TestResolveTherapist(t *testing.T) {
	svc := NewService(&mockZenoti{}, nopLogger{})

	therapists := []*domain.Therapist{
		{ID: "t1", FirstName: "Anna"},
		{ID: "t2", FirstName: "Maria"},
	}

	t.Run("Found", func(t *testing.T) {
		therapist := svc.ResolveTherapist(therapists, "t2")
		require.NotNil(t, therapist)
		assert.Equal(t, "Maria", therapist.FirstName)
	})

	t.Run("NotFound", func(t *testing.T) {
		assert.Nil(t, svc.ResolveTherapist(therapists, "t9"))
	})

	t.Run("EmptyInputs", func(t *testing.T) {
		assert.Nil(t, svc.ResolveTherapist(nil, "t1"))
		assert.Nil(t, svc.ResolveTherapist(therapists, ""))
	})
}
