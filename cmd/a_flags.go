package cmd

const (
	CSV_FLAG              = "csv"
	JSON_FLAG             = "json"
	TOTAL_AMOUNT_FLAG     = "total-amount"
	USE_BALANCE_FLAG      = "use-balance"
	SEND_FLAG             = "send"
	BATCH_SIZE_FLAG       = "batch-size"
	FEE_RATE_FLAG         = "fee-rate"
	CONF_TARGET_FLAG      = "conf-target"
	RBF_FLAG              = "rbf"
	MIN_OUTPUT_FLAG       = "min-output"
	FEE_FROM_OUTPUTS_FLAG = "fee-from-outputs"
	COMMENT_FLAG          = "comment"
	CONFIRM_FLAG          = "confirm"
	NOTIFICATOR_FLAG      = "notificator"
	REPORT_TO_STDOUT      = "report-to-stdout"
	SILENT_FLAG           = "silent"

	AMB_ADDRESS_FLAG = "amb-address"
	GOV_ADDRESS_FLAG = "gov-address"
	AMB_PCT_FLAG     = "amb-pct"

	RPC_HOST_FLAG   = "rpc-host"
	RPC_PORT_FLAG   = "rpc-port"
	RPC_USER_FLAG   = "rpc-user"
	RPC_PASS_FLAG   = "rpc-pass"
	RPC_WALLET_FLAG = "rpc-wallet"

	SKIP_VERSION_CHECK_FLAG = "skip-version-check"
)
