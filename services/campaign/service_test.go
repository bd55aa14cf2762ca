package campaign

import (
	"context"
	"testing"

	campaignRepo "meydancha/database/repository/campaign"
	fieldRepo "meydancha/database/repository/field"
	"meydancha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCampaignRepo struct {
	campaignRepo.CampaignRepository
	created   *models.Campaign
	byID      *models.Campaign
	setActive *bool
}

func (f *fakeCampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	f.created = c
	return nil
}

func (f *fakeCampaignRepo) GetByID(ctx context.Context, id string) (*models.Campaign, error) {
	if f.byID == nil {
		return nil, campaignRepo.ErrCampaignNotFound
	}
	return f.byID, nil
}

func (f *fakeCampaignRepo) SetActive(ctx context.Context, id string, active bool) (*models.Campaign, error) {
	f.setActive = &active
	c := *f.byID
	c.Active = active
	return &c, nil
}

type fakeFieldRepo struct {
	fieldRepo.FieldRepository
	ownerID string
}

func (f *fakeFieldRepo) GetByID(ctx context.Context, id string) (*models.Field, error) {
	return &models.Field{ID: id, OwnerID: f.ownerID}, nil
}

func newService(fieldOwner string) (*DefaultCampaignService, *fakeCampaignRepo) {
	repo := &fakeCampaignRepo{}
	svc := &DefaultCampaignService{
		Repo:      repo,
		FieldRepo: &fakeFieldRepo{ownerID: fieldOwner},
	}
	return svc, repo
}

func TestCreateCampaign(t *testing.T) {
	ctx := context.Background()
	req := models.CampaignRequest{
		FieldID:         "f1",
		Name:            "Summer special",
		DiscountPercent: 20,
		StartDate:       "2025-06-01",
		EndDate:         "2025-06-30",
	}

	t.Run("owner creates an active campaign", func(t *testing.T) {
		svc, repo := newService("owner-1")

		c, err := svc.Create(ctx, "owner-1", req)
		require.NoError(t, err)
		assert.True(t, c.Active)
		assert.Equal(t, 20, c.DiscountPercent)
		assert.NotNil(t, repo.created)
	})

	t.Run("discount bounds", func(t *testing.T) {
		svc, _ := newService("owner-1")
		for _, pct := range []int{0, 91, 100, -5} {
			bad := req
			bad.DiscountPercent = pct
			_, err := svc.Create(ctx, "owner-1", bad)
			assert.ErrorIs(t, err, ErrInvalidDiscount, "percent %d", pct)
		}
	})

	t.Run("end date before start date", func(t *testing.T) {
		svc, _ := newService("owner-1")
		bad := req
		bad.StartDate, bad.EndDate = bad.EndDate, bad.StartDate
		_, err := svc.Create(ctx, "owner-1", bad)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("malformed dates", func(t *testing.T) {
		svc, _ := newService("owner-1")
		bad := req
		bad.StartDate = "June 1"
		_, err := svc.Create(ctx, "owner-1", bad)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("only the field owner may create", func(t *testing.T) {
		svc, _ := newService("owner-1")
		_, err := svc.Create(ctx, "other-owner", req)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})
}

func TestSetCampaignActive(t *testing.T) {
	ctx := context.Background()

	stored := &models.Campaign{ID: "c1", FieldID: "f1", OwnerID: "owner-1", Active: true}

	t.Run("owner toggles freely", func(t *testing.T) {
		svc, repo := newService("owner-1")
		repo.byID = stored

		c, err := svc.SetActive(ctx, "c1", "owner-1", models.RoleOwner, false)
		require.NoError(t, err)
		assert.False(t, c.Active)

		_, err = svc.SetActive(ctx, "c1", "owner-1", models.RoleOwner, true)
		require.NoError(t, err)
	})

	t.Run("admin may deactivate but not activate", func(t *testing.T) {
		svc, repo := newService("owner-1")
		repo.byID = stored

		_, err := svc.SetActive(ctx, "c1", "admin-1", models.RoleAdmin, false)
		require.NoError(t, err)

		_, err = svc.SetActive(ctx, "c1", "admin-1", models.RoleAdmin, true)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})

	t.Run("stranger may not touch it", func(t *testing.T) {
		svc, repo := newService("owner-1")
		repo.byID = stored

		_, err := svc.SetActive(ctx, "c1", "u1", models.RolePlayer, false)
		assert.ErrorIs(t, err, ErrNotAllowed)
	})
}

func TestCampaignCovers(t *testing.T) {
	c := models.Campaign{
		Active:    true,
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	}

	assert.True(t, c.Covers("2025-06-01"))
	assert.True(t, c.Covers("2025-06-15"))
	assert.True(t, c.Covers("2025-06-30"))
	assert.False(t, c.Covers("2025-05-31"))
	assert.False(t, c.Covers("2025-07-01"))

	inactive := c
	inactive.Active = false
	assert.False(t, inactive.Covers("2025-06-15"))
}
