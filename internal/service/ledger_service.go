package service

import (
	"context"
	"fmt"

	"github.com/Krittamet-rrt/walletapi/internal/core/domain"
	"github.com/Krittamet-rrt/walletapi/internal/core/ports"
	"github.com/Krittamet-rrt/walletapi/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	walletRepo   ports.WalletRepository
	merchantRepo ports.MerchantRepository
	itemRepo     ports.ItemRepository
	txRepo       ports.TransactionRepository
	log          zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	merchantRepo ports.MerchantRepository,
	itemRepo ports.ItemRepository,
	txRepo ports.TransactionRepository,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		walletRepo:   walletRepo,
		merchantRepo: merchantRepo,
		itemRepo:     itemRepo,
		txRepo:       txRepo,
		log:          log,
	}
}

// ---- Wallets ----

// CreateWallet inserts a new wallet.
func (s *LedgerServiceImpl) CreateWallet(ctx context.Context, w *domain.Wallet) error {
	if err := s.walletRepo.Create(ctx, w); err != nil {
		return apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}
	s.log.Info().Int64("wallet_id", w.ID).Str("name", w.Name).Msg("wallet created")
	return nil
}

// GetWallet fetches a wallet by ID.
func (s *LedgerServiceImpl) GetWallet(ctx context.Context, id int64) (*domain.Wallet, error) {
	w, err := s.walletRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWalletNotFound()
	}
	return w, nil
}

// UpdateWallet applies a partial update and returns the updated wallet.
func (s *LedgerServiceImpl) UpdateWallet(ctx context.Context, id int64, upd domain.WalletUpdate) (*domain.Wallet, error) {
	w, err := s.GetWallet(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.ApplyTo(w)
	if err := s.walletRepo.Update(ctx, w); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}
	return w, nil
}

// DeleteWallet removes a wallet by ID.
func (s *LedgerServiceImpl) DeleteWallet(ctx context.Context, id int64) error {
	if _, err := s.GetWallet(ctx, id); err != nil {
		return err
	}
	if err := s.walletRepo.Delete(ctx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("delete wallet: %w", err))
	}
	s.log.Info().Int64("wallet_id", id).Msg("wallet deleted")
	return nil
}

// ---- Merchants ----

// CreateMerchant inserts a new merchant.
func (s *LedgerServiceImpl) CreateMerchant(ctx context.Context, m *domain.Merchant) error {
	if err := s.merchantRepo.Create(ctx, m); err != nil {
		return apperror.InternalError(fmt.Errorf("create merchant: %w", err))
	}
	s.log.Info().Int64("merchant_id", m.ID).Str("name", m.Name).Msg("merchant created")
	return nil
}

// ListMerchants returns all merchants.
func (s *LedgerServiceImpl) ListMerchants(ctx context.Context) ([]domain.Merchant, error) {
	merchants, err := s.merchantRepo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list merchants: %w", err))
	}
	return merchants, nil
}

// GetMerchant fetches a merchant by ID.
func (s *LedgerServiceImpl) GetMerchant(ctx context.Context, id int64) (*domain.Merchant, error) {
	m, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get merchant: %w", err))
	}
	if m == nil {
		return nil, apperror.ErrMerchantNotFound()
	}
	return m, nil
}

// UpdateMerchant applies a partial update and returns the updated merchant.
func (s *LedgerServiceImpl) UpdateMerchant(ctx context.Context, id int64, upd domain.MerchantUpdate) (*domain.Merchant, error) {
	m, err := s.GetMerchant(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.ApplyTo(m)
	if err := s.merchantRepo.Update(ctx, m); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update merchant: %w", err))
	}
	return m, nil
}

// DeleteMerchant removes a merchant; its items go with it.
func (s *LedgerServiceImpl) DeleteMerchant(ctx context.Context, id int64) error {
	if _, err := s.GetMerchant(ctx, id); err != nil {
		return err
	}
	if err := s.merchantRepo.Delete(ctx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("delete merchant: %w", err))
	}
	s.log.Info().Int64("merchant_id", id).Msg("merchant deleted")
	return nil
}

// ---- Items ----

// CreateItem inserts a new item after verifying the owning merchant exists.
func (s *LedgerServiceImpl) CreateItem(ctx context.Context, i *domain.Item) error {
	if _, err := s.GetMerchant(ctx, i.MerchantID); err != nil {
		return err
	}
	if err := s.itemRepo.Create(ctx, i); err != nil {
		return apperror.InternalError(fmt.Errorf("create item: %w", err))
	}
	s.log.Info().
		Int64("item_id", i.ID).
		Int64("merchant_id", i.MerchantID).
		Str("name", i.Name).
		Msg("item created")
	return nil
}

// ListItems returns all items.
func (s *LedgerServiceImpl) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list items: %w", err))
	}
	return items, nil
}

// GetItem fetches an item by ID.
func (s *LedgerServiceImpl) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	i, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get item: %w", err))
	}
	if i == nil {
		return nil, apperror.ErrItemNotFound()
	}
	return i, nil
}

// UpdateItem applies a partial update and returns the updated item.
func (s *LedgerServiceImpl) UpdateItem(ctx context.Context, id int64, upd domain.ItemUpdate) (*domain.Item, error) {
	i, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.ApplyTo(i)
	if err := s.itemRepo.Update(ctx, i); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update item: %w", err))
	}
	return i, nil
}

// DeleteItem removes an item by ID.
func (s *LedgerServiceImpl) DeleteItem(ctx context.Context, id int64) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("delete item: %w", err))
	}
	s.log.Info().Int64("item_id", id).Msg("item deleted")
	return nil
}

// ---- Transactions ----

// ListTransactions returns the purchase history, newest first.
func (s *LedgerServiceImpl) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, nil
}

// GetTransaction fetches a transaction by ID.
func (s *LedgerServiceImpl) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	t, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get transaction: %w", err))
	}
	if t == nil {
		return nil, apperror.ErrTransactionNotFound()
	}
	return t, nil
}
