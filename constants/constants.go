package constants

const (
	ITCPAY_REPOSITORY = "interchained/itcpay"

	VERSION  = "0.4.1"
	CODENAME = "itcpay"

	// on-chain amounts use 8 fractional digits
	COIN_DECIMALS = 8

	DEFAULT_RPC_HOST             = "127.0.0.1"
	DEFAULT_RPC_PORT             = "8332"
	DEFAULT_CHANGE_TYPE          = "bech32"
	DEFAULT_CONFIRMATION_TARGET  = int64(6)
	DEFAULT_DUST_THRESHOLD       = "0.00001000"
	DEFAULT_RPC_TIMEOUT_SECONDS  = 60
	DEFAULT_DISTRIBUTION_COMMENT = "itcpay distribution"

	// subdirectories of the node data dir probed for cookie auth
	COOKIE_FILE_NAME = ".cookie"

	PLAN_REPORT_FILE_NAME    = "plan.csv"
	RESULTS_REPORT_FILE_NAME = "results.csv"
	REPORT_SUMMARY_FILE_NAME = "summary.json"
	REPORTS_DIRECTORY        = "reports"
	DRY_RUN_REPORTS_SUBDIR   = "dry"

	DRY_RUN_NOTE = "(dry run - no transaction will be broadcast)"
)

var (
	// data dir names probed for a cookie file when rpc credentials
	// are not supplied explicitly
	COOKIE_SEARCH_DIRECTORIES = []string{"Interchained", "Bitcoin"}
)
