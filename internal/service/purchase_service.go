package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Krittamet-rrt/walletapi/internal/core/domain"
	"github.com/Krittamet-rrt/walletapi/internal/core/ports"
	"github.com/Krittamet-rrt/walletapi/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// PurchaseServiceImpl implements ports.PurchaseService.
type PurchaseServiceImpl struct {
	itemRepo     ports.ItemRepository
	walletRepo   ports.WalletRepository
	merchantRepo ports.MerchantRepository
	txRepo       ports.TransactionRepository
	transactor   ports.DBTransactor
	log          zerolog.Logger
}

// NewPurchaseService creates a new PurchaseServiceImpl.
func NewPurchaseService(
	itemRepo ports.ItemRepository,
	walletRepo ports.WalletRepository,
	merchantRepo ports.MerchantRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *PurchaseServiceImpl {
	return &PurchaseServiceImpl{
		itemRepo:     itemRepo,
		walletRepo:   walletRepo,
		merchantRepo: merchantRepo,
		txRepo:       txRepo,
		transactor:   transactor,
		log:          log,
	}
}

// BuyItem executes the purchase algorithm with pessimistic locking.
// Wallet debit, merchant credit and the transaction record commit together;
// any failure before commit leaves all balances untouched.
//
// Lock order is always wallet then merchant, so concurrent purchases cannot
// deadlock against each other.
func (s *PurchaseServiceImpl) BuyItem(ctx context.Context, itemID, walletID int64) (*ports.PurchaseResult, error) {
	// Item lookup needs no lock: price is read once and used for the
	// whole operation.
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get item: %w", err))
	}
	if item == nil {
		return nil, apperror.ErrItemNotFound()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock & get wallet
	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, walletID)
	if err != nil {
		return nil, s.purchaseError("lock wallet", err)
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	// Lock & get merchant
	merchant, err := s.merchantRepo.GetByIDForUpdate(ctx, dbTx, item.MerchantID)
	if err != nil {
		return nil, s.purchaseError("lock merchant", err)
	}
	if merchant == nil {
		// The item points at a merchant row that no longer exists.
		s.log.Error().
			Int64("item_id", item.ID).
			Int64("merchant_id", item.MerchantID).
			Msg("item references missing merchant")
		return nil, apperror.ErrMerchantIntegrity(fmt.Errorf("merchant %d for item %d not found", item.MerchantID, item.ID))
	}

	// Business rule: a balance exactly equal to the price passes.
	if !wallet.CanAfford(item.Price) {
		return nil, apperror.ErrInsufficientBalance()
	}

	newWalletBalance := wallet.Balance.Sub(item.Price)
	newMerchantBalance := merchant.Balance.Add(item.Price)

	if err := s.walletRepo.UpdateBalance(ctx, dbTx, wallet.ID, newWalletBalance); err != nil {
		return nil, s.purchaseError("debit wallet", err)
	}
	if err := s.merchantRepo.UpdateBalance(ctx, dbTx, merchant.ID, newMerchantBalance); err != nil {
		return nil, s.purchaseError("credit merchant", err)
	}

	txn := domain.NewPurchaseTransaction(item, wallet.ID, time.Now())
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, s.purchaseError("create transaction", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, s.purchaseError("commit tx", err)
	}

	s.log.Info().
		Int64("tx_id", txn.ID).
		Int64("wallet_id", wallet.ID).
		Int64("item_id", item.ID).
		Int64("merchant_id", merchant.ID).
		Str("price", item.Price.String()).
		Str("wallet_balance", newWalletBalance.String()).
		Msg("purchase completed")

	return &ports.PurchaseResult{
		WalletBalance: newWalletBalance,
		Item: ports.PurchasedItem{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
		},
		Merchant: ports.PurchasedMerchant{
			Name: merchant.Name,
		},
		Transaction: txn,
	}, nil
}

// purchaseError classifies a persistence failure inside the purchase
// transaction. Serialization and deadlock rejections are retryable and
// surface as a conflict; everything else is internal.
func (s *PurchaseServiceImpl) purchaseError(op string, err error) *apperror.AppError {
	wrapped := fmt.Errorf("%s: %w", op, err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 40001 serialization_failure, 40P01 deadlock_detected
		if pgErr.Code == "40001" || pgErr.Code == "40P01" {
			return apperror.ErrPurchaseConflict(wrapped)
		}
	}
	return apperror.InternalError(wrapped)
}
