package service

import (
	"context"
	"errors"
	"testing"

	"exchange-ledger/internal/core/domain"
	"exchange-ledger/internal/core/ports"
	"exchange-ledger/internal/core/ports/mocks"
	"exchange-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupBankService(t *testing.T) (*BankServiceImpl, *mocks.MockBankAccountRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockBankAccountRepository(ctrl)
	return NewBankService(repo, zerolog.Nop()), repo, ctrl
}

func TestBankService_Create_FirstAccountBecomesDefault(t *testing.T) {
	svc, repo, ctrl := setupBankService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().GetByAccountNumber(ctx, "111").Return(nil, nil)
	repo.EXPECT().ListByUser(ctx, userID).Return(nil, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.BankAccount) error {
			assert.True(t, a.IsDefault)
			return nil
		})

	account, err := svc.Create(ctx, ports.BankAccountCreateRequest{
		UserID:         userID,
		AccountNumber:  "111",
		BankName:       "BANK",
		AccountBalance: dec("500"),
	})
	require.NoError(t, err)
	assert.True(t, account.IsDefault)
}

func TestBankService_Create_DefaultFlagClearsPrevious(t *testing.T) {
	svc, repo, ctrl := setupBankService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().GetByAccountNumber(ctx, "222").Return(nil, nil)
	repo.EXPECT().ListByUser(ctx, userID).Return([]domain.BankAccount{
		{AccountNumber: "111", UserID: userID, IsDefault: true},
	}, nil)
	repo.EXPECT().ClearDefault(ctx, userID).Return(nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	account, err := svc.Create(ctx, ports.BankAccountCreateRequest{
		UserID:         userID,
		AccountNumber:  "222",
		BankName:       "BANK",
		AccountBalance: dec("100"),
		IsDefault:      true,
	})
	require.NoError(t, err)
	assert.True(t, account.IsDefault)
}

func TestBankService_Create_SecondAccountNotDefault(t *testing.T) {
	svc, repo, ctrl := setupBankService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().GetByAccountNumber(ctx, "222").Return(nil, nil)
	repo.EXPECT().ListByUser(ctx, userID).Return([]domain.BankAccount{
		{AccountNumber: "111", UserID: userID, IsDefault: true},
	}, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	account, err := svc.Create(ctx, ports.BankAccountCreateRequest{
		UserID:         userID,
		AccountNumber:  "222",
		BankName:       "BANK",
		AccountBalance: dec("100"),
	})
	require.NoError(t, err)
	assert.False(t, account.IsDefault)
}

func TestBankService_Create_DuplicateNumber(t *testing.T) {
	svc, repo, ctrl := setupBankService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().GetByAccountNumber(ctx, "111").Return(&domain.BankAccount{AccountNumber: "111"}, nil)

	_, err := svc.Create(ctx, ports.BankAccountCreateRequest{
		UserID:        uuid.New(),
		AccountNumber: "111",
		BankName:      "BANK",
	})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LDG_003", appErr.Code)
}

func TestBankService_Delete_NotOwned(t *testing.T) {
	svc, repo, ctrl := setupBankService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().GetByAccountNumber(ctx, "111").Return(&domain.BankAccount{
		AccountNumber: "111",
		UserID:        uuid.New(),
	}, nil)

	err := svc.Delete(ctx, uuid.New(), "111")
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LDG_001", appErr.Code)
}

func TestBankService_Delete_Success(t *testing.T) {
	svc, repo, ctrl := setupBankService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	repo.EXPECT().GetByAccountNumber(ctx, "111").Return(&domain.BankAccount{
		ID:            uuid.New(),
		AccountNumber: "111",
		UserID:        userID,
	}, nil)
	repo.EXPECT().Delete(ctx, "111").Return(nil)

	require.NoError(t, svc.Delete(ctx, userID, "111"))
}
