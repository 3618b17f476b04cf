package services

import (
	"github.com/currex/currex_backend/internal/core/ports"
	portssvc "github.com/currex/currex_backend/internal/core/ports/services"
	"github.com/currex/currex_backend/internal/platform/config"
)

// NewServiceContainer wires every service against one repository provider.
// The conversion workflow reuses the exchange-rate and wallet services rather
// than reaching into their repositories directly.
func NewServiceContainer(repos *ports.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	currencySvc := NewCurrencyService(repos.Currency)
	rateSvc := NewExchangeRateService(repos.ExchangeRate)
	walletSvc := NewWalletService(repos.Wallet)
	txnSvc := NewTransactionService(repos.Transaction, rateSvc, walletSvc)
	userSvc := NewUserService(repos.User, cfg.StartingCurrency, cfg.StartingBalance)

	return &portssvc.ServiceContainer{
		Currency:     currencySvc,
		ExchangeRate: rateSvc,
		Wallet:       walletSvc,
		Transaction:  txnSvc,
		User:         userSvc,
	}
}

// Compile-time interface checks.
var (
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.WalletSvcFacade       = (*WalletService)(nil)
	_ portssvc.TransactionSvcFacade  = (*TransactionService)(nil)
	_ portssvc.UserSvcFacade         = (*UserService)(nil)
)
