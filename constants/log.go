package constants

import "slices"

const (
	LOG_MESSAGE_DISTRIBUTION_PLAN     = "distribution plan"
	LOG_MESSAGE_DISTRIBUTION_EXECUTED = "distribution executed"

	LOG_FIELD_RUN_ID         = "run_id"
	LOG_FIELD_OUTPUTS        = "outputs"
	LOG_FIELD_BATCHES        = "batches"
	LOG_FIELD_BATCH_RESULTS  = "batch_results"
	LOG_FIELD_TOTAL_AMOUNT   = "total_amount"
	LOG_FIELD_DROPPED_DUST   = "dropped_dust"
	LOG_FIELD_TRANSACTION_ID = "tx_id"
)

var (
	LOG_TOP_LEVEL_HIDDEN_FIELDS = []string{
		"phase",
		"stage",
	}
)

func init() {
	slices.Sort(LOG_TOP_LEVEL_HIDDEN_FIELDS)
}
