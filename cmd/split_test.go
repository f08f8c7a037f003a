package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDefaultsMatchGovernancePolicy(t *testing.T) {
	assert := assert.New(t)

	ambPct, err := splitCmd.Flags().GetInt64(AMB_PCT_FLAG)
	assert.Nil(err)
	assert.Equal(int64(80), ambPct)

	send, err := splitCmd.Flags().GetBool(SEND_FLAG)
	assert.Nil(err)
	assert.False(send)
}
