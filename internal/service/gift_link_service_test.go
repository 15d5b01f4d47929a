package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/griffin1995/gift-sync/internal/errs"
	"github.com/griffin1995/gift-sync/internal/models"
)

func newTestGiftLinkService(linkRepo *fakeGiftLinkRepo, userRepo *fakeUserRepo) GiftLinkService {
	return NewGiftLinkService(linkRepo, userRepo, "https://prznt.app", zap.NewNop())
}

func TestCreateLinkGeneratesServerSideToken(t *testing.T) {
	linkRepo := newFakeGiftLinkRepo()
	svc := newTestGiftLinkService(linkRepo, newFakeUserRepo())

	first, err := svc.CreateLink(context.Background(), &models.CreateGiftLinkRequest{UserID: testUserID})
	require.NoError(t, err)
	second, err := svc.CreateLink(context.Background(), &models.CreateGiftLinkRequest{UserID: testUserID})
	require.NoError(t, err)

	_, err = uuid.Parse(first.LinkToken)
	assert.NoError(t, err, "token should be a generated UUID")
	assert.NotEqual(t, first.LinkToken, second.LinkToken)
	assert.True(t, first.IsActive)
}

func TestCreateLinkSurvivesRepairFailure(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.createErr = errors.New("insert denied")
	linkRepo := newFakeGiftLinkRepo()
	svc := newTestGiftLinkService(linkRepo, userRepo)

	// Unlike swipe sessions, a failed user repair must not abort link creation
	link, err := svc.CreateLink(context.Background(), &models.CreateGiftLinkRequest{UserID: testUserID})
	require.NoError(t, err)
	assert.NotEmpty(t, link.LinkToken)
	assert.Len(t, linkRepo.links, 1)
}

func TestGetByTokenDistinguishesMissingFromInactive(t *testing.T) {
	linkRepo := newFakeGiftLinkRepo()
	userRepo := newFakeUserRepo()
	svc := newTestGiftLinkService(linkRepo, userRepo)

	link, err := svc.CreateLink(context.Background(), &models.CreateGiftLinkRequest{UserID: testUserID})
	require.NoError(t, err)
	linkRepo.links[link.LinkToken].IsActive = false

	_, missingErr := svc.GetByToken(context.Background(), "no-such-token")
	require.Error(t, missingErr)
	assert.ErrorIs(t, missingErr, errs.ErrNotFound)

	_, inactiveErr := svc.GetByToken(context.Background(), link.LinkToken)
	require.Error(t, inactiveErr)
	assert.ErrorIs(t, inactiveErr, errs.ErrNotFound)

	// Same classification, different message text
	assert.NotEqual(t, missingErr.Error(), inactiveErr.Error())
	assert.Contains(t, missingErr.Error(), "not found in database")
	assert.Contains(t, inactiveErr.Error(), "exists but is not active")
}

func TestGetByTokenActive(t *testing.T) {
	linkRepo := newFakeGiftLinkRepo()
	svc := newTestGiftLinkService(linkRepo, newFakeUserRepo())

	created, err := svc.CreateLink(context.Background(), &models.CreateGiftLinkRequest{UserID: testUserID})
	require.NoError(t, err)

	found, err := svc.GetByToken(context.Background(), created.LinkToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestShareURL(t *testing.T) {
	svc := newTestGiftLinkService(newFakeGiftLinkRepo(), newFakeUserRepo())
	assert.Equal(t, "https://prznt.app/gift/abc", svc.ShareURL("abc"))
}
