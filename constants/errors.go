package constants

import "errors"

var (
	// miscellaneous

	ErrUserNotConfirmed = errors.New("user not confirmed")

	// load

	ErrConfigurationLoadFailed       = errors.New("failed to load configuration")
	ErrConfigurationValidationFailed = errors.New("failed to validate configuration")
	ErrCollectorLoadFailed           = errors.New("failed to load collector engine")
	ErrTransactorLoadFailed          = errors.New("failed to load transactor engine")

	// configuration

	ErrMissingConfiguration     = errors.New("missing configuration")
	ErrNoRecipientSource        = errors.New("no recipient source specified, provide either csv or json file")
	ErrAmbiguousRecipientSource = errors.New("both csv and json recipient sources specified")
	ErrNoTotalAmountSource      = errors.New("either total amount or use of wallet balance has to be specified")
	ErrAmbiguousTotalAmount     = errors.New("total amount and use of wallet balance are mutually exclusive")
	ErrAmbiguousFeePolicy       = errors.New("fee rate and confirmation target are mutually exclusive")
	ErrInvalidDustThreshold     = errors.New("invalid dust threshold")
	ErrInvalidBatchSize         = errors.New("invalid batch size")

	// recipients

	ErrNoRecipients          = errors.New("no recipients parsed from source")
	ErrZeroTotalWeight       = errors.New("total weight is zero")
	ErrAllOutputsDust        = errors.New("all outputs were dust or invalid")
	ErrInvalidRecipientShare = errors.New("invalid recipient share")

	// node

	ErrInvalidAddress       = errors.New("invalid address")
	ErrRpcCallFailed        = errors.New("rpc call failed")
	ErrNoCookieCredentials  = errors.New("no rpc credentials and no cookie file found")
	ErrNoSpendableBalance   = errors.New("no spendable balance")
	ErrBalanceFetchFailed   = errors.New("failed to fetch wallet balances")
	ErrPsbtCreationFailed   = errors.New("failed to create funded psbt")
	ErrPsbtSigningFailed    = errors.New("failed to sign psbt")
	ErrPsbtIncomplete       = errors.New("PSBT not complete")
	ErrBroadcastFailed      = errors.New("failed to broadcast transaction")
	ErrMempoolInfoFetchFail = errors.New("failed to fetch mempool info")

	// execution

	ErrExecuteDistributionUserTerminated = errors.New("distribution terminated by user")

	// context validation

	ErrMissingEngine           = errors.New("missing engine")
	ErrMissingCollectorEngine  = errors.New("undefined collector engine")
	ErrMissingTransactorEngine = errors.New("undefined transactor engine")
	ErrMissingReporterEngine   = errors.New("undefined reporter engine")

	// notifications

	ErrInvalidNotificatorConfiguration = errors.New("invalid notificator configuration")
	ErrUnsupportedNotificator          = errors.New("unsupported notificator")
)
