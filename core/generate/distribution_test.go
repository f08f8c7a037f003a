package generate

import (
	"os"
	"path"
	"testing"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/configuration"
	"github.com/interchained/itcpay/constants"
	"github.com/interchained/itcpay/test/mock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestContext(collector *mock.SimpleCollector) *DistributionGenerationContext {
	config := configuration.GetDefaultRuntimeConfiguration()
	return &DistributionGenerationContext{
		GenerateDistributionEngineContext: *common.NewGenerateDistributionEngineContext(collector),
		configuration:                     &config,
		StageData:                         &StageData{},
	}
}

func writeTempFile(t *testing.T, name string, content string) string {
	t.Helper()
	filePath := path.Join(t.TempDir(), name)
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return filePath
}

func TestLoadRecipientsCsv(t *testing.T) {
	assert := assert.New(t)

	csvPath := writeTempFile(t, "recipients.csv", `Address,Share
itc1qaaa,1
itc1qbbb, 2

itc1qccc,not-a-number
itc1qddd
itc1qeee,0.5
`)

	ctx := newTestContext(mock.InitSimpleCollector())
	ctx, err := LoadRecipients(ctx, &common.GenerateDistributionOptions{CsvSourcePath: csvPath})
	assert.Nil(err)
	// header, blank, unparseable and short rows are all skipped
	assert.Len(ctx.StageData.Recipients, 3)
	assert.Equal("itc1qaaa", ctx.StageData.Recipients[0].Address)
	assert.Equal("itc1qbbb", ctx.StageData.Recipients[1].Address)
	assert.True(ctx.StageData.Recipients[2].Share.Equal(decimal.RequireFromString("0.5")))
}

func TestLoadRecipientsJson(t *testing.T) {
	assert := assert.New(t)

	jsonPath := writeTempFile(t, "recipients.json", `[
		{"address": "itc1qaaa", "share": "1"},
		{"address": "itc1qbbb", "share": "3"}
	]`)

	ctx := newTestContext(mock.InitSimpleCollector())
	ctx, err := LoadRecipients(ctx, &common.GenerateDistributionOptions{JsonSourcePath: jsonPath})
	assert.Nil(err)
	assert.Len(ctx.StageData.Recipients, 2)
}

func TestLoadRecipientsJsonSkipsBlankAddress(t *testing.T) {
	assert := assert.New(t)

	jsonPath := writeTempFile(t, "recipients.json", `[
		{"share": "1"},
		{"address": "  ", "share": "2"},
		{"address": "itc1qaaa", "share": "3"}
	]`)

	ctx := newTestContext(mock.InitSimpleCollector())
	ctx, err := LoadRecipients(ctx, &common.GenerateDistributionOptions{JsonSourcePath: jsonPath})
	assert.Nil(err)
	// entries without an address are skipped like malformed csv rows
	assert.Len(ctx.StageData.Recipients, 1)
	assert.Equal("itc1qaaa", ctx.StageData.Recipients[0].Address)
}

func TestLoadRecipientsSourceErrors(t *testing.T) {
	assert := assert.New(t)

	ctx := newTestContext(mock.InitSimpleCollector())
	_, err := LoadRecipients(ctx, &common.GenerateDistributionOptions{})
	assert.ErrorIs(err, constants.ErrNoRecipientSource)

	_, err = LoadRecipients(ctx, &common.GenerateDistributionOptions{CsvSourcePath: "a.csv", JsonSourcePath: "b.json"})
	assert.ErrorIs(err, constants.ErrAmbiguousRecipientSource)

	emptyPath := writeTempFile(t, "empty.csv", "address,share\n")
	_, err = LoadRecipients(ctx, &common.GenerateDistributionOptions{CsvSourcePath: emptyPath})
	assert.ErrorIs(err, constants.ErrNoRecipients)
}

func TestNormalizeSharesClampsNegatives(t *testing.T) {
	assert := assert.New(t)

	ctx := newTestContext(mock.InitSimpleCollector())
	ctx.StageData.Recipients = []common.Recipient{
		{Address: "itc1qaaa", Share: decimal.RequireFromString("2")},
		{Address: "itc1qbbb", Share: decimal.RequireFromString("-5")},
		{Address: "itc1qccc", Share: decimal.RequireFromString("3")},
	}

	ctx, err := NormalizeShares(ctx, &common.GenerateDistributionOptions{})
	assert.Nil(err)
	assert.True(ctx.StageData.WeightedRecipients[1].Weight.IsZero())
	// negative shares never subtract from the pool
	assert.Equal("5", ctx.StageData.TotalWeight.String())
}

func TestNormalizeSharesZeroTotalWeight(t *testing.T) {
	assert := assert.New(t)

	ctx := newTestContext(mock.InitSimpleCollector())
	ctx.StageData.Recipients = []common.Recipient{
		{Address: "itc1qaaa", Share: decimal.Zero},
		{Address: "itc1qbbb", Share: decimal.RequireFromString("-1")},
	}

	_, err := NormalizeShares(ctx, &common.GenerateDistributionOptions{})
	assert.ErrorIs(err, constants.ErrZeroTotalWeight)
}

func TestResolveTotalAmountSourceValidation(t *testing.T) {
	assert := assert.New(t)

	collector := mock.InitSimpleCollector()
	ctx := newTestContext(collector)

	_, err := ResolveTotalAmount(ctx, &common.GenerateDistributionOptions{
		TotalAmount:      decimal.RequireFromString("10"),
		UseWalletBalance: true,
	})
	assert.ErrorIs(err, constants.ErrAmbiguousTotalAmount)

	_, err = ResolveTotalAmount(ctx, &common.GenerateDistributionOptions{})
	assert.ErrorIs(err, constants.ErrNoTotalAmountSource)

	// source validation happens before any remote call
	assert.Equal(0, collector.GetBalancesCalls)
}

func TestResolveTotalAmountFromWalletBalance(t *testing.T) {
	assert := assert.New(t)

	collector := mock.InitSimpleCollector()
	collector.SetOpts(&mock.SimpleCollectorOpts{
		TrustedBalance:   decimal.RequireFromString("41.999999999"),
		UntrustedPending: decimal.RequireFromString("100"),
	})
	ctx := newTestContext(collector)

	ctx, err := ResolveTotalAmount(ctx, &common.GenerateDistributionOptions{UseWalletBalance: true})
	assert.Nil(err)
	// trusted only, quantized down
	assert.Equal("41.99999999", ctx.StageData.Plan.TotalAmount.String())
	assert.NotEmpty(ctx.StageData.Plan.RunId)
}

func TestResolveTotalAmountNoSpendableBalance(t *testing.T) {
	assert := assert.New(t)

	collector := mock.InitSimpleCollector()
	collector.SetOpts(&mock.SimpleCollectorOpts{TrustedBalance: decimal.Zero})
	ctx := newTestContext(collector)

	_, err := ResolveTotalAmount(ctx, &common.GenerateDistributionOptions{UseWalletBalance: true})
	assert.ErrorIs(err, constants.ErrNoSpendableBalance)
}

func buildOutputsContext(collector *mock.SimpleCollector, totalAmount string, shares ...string) *DistributionGenerationContext {
	ctx := newTestContext(collector)
	weighted := make([]common.WeightedRecipient, 0, len(shares))
	totalWeight := decimal.Zero
	for i, share := range shares {
		weight := decimal.RequireFromString(share)
		weighted = append(weighted, common.WeightedRecipient{
			Address: []string{"itc1qaaa", "itc1qbbb", "itc1qccc", "itc1qddd"}[i],
			Weight:  weight,
		})
		totalWeight = totalWeight.Add(weight)
	}
	ctx.StageData.WeightedRecipients = weighted
	ctx.StageData.TotalWeight = totalWeight
	ctx.StageData.Plan = common.DistributionPlan{
		RunId:       "test-run",
		TotalAmount: decimal.RequireFromString(totalAmount),
	}
	return ctx
}

func TestBuildOutputsProportionalSplit(t *testing.T) {
	assert := assert.New(t)

	ctx := buildOutputsContext(mock.InitSimpleCollector(), "100", "1", "1", "2")
	ctx, err := BuildOutputs(ctx, &common.GenerateDistributionOptions{
		DustThreshold: decimal.RequireFromString("0.00001"),
	})
	assert.Nil(err)
	assert.Len(ctx.StageData.Outputs, 3)
	assert.Equal("25", ctx.StageData.Outputs[0].Amount.String())
	assert.Equal("25", ctx.StageData.Outputs[1].Amount.String())
	assert.Equal("50", ctx.StageData.Outputs[2].Amount.String())
}

func TestBuildOutputsTruncatesAndKeepsResidual(t *testing.T) {
	assert := assert.New(t)

	// 100 / 3 cannot be represented exactly - each output is truncated
	// and the residual stays with the wallet
	ctx := buildOutputsContext(mock.InitSimpleCollector(), "100", "1", "1", "1")
	ctx, err := BuildOutputs(ctx, &common.GenerateDistributionOptions{
		DustThreshold: decimal.RequireFromString("0.00001"),
	})
	assert.Nil(err)
	assert.Len(ctx.StageData.Outputs, 3)

	total := decimal.Zero
	for _, output := range ctx.StageData.Outputs {
		assert.Equal("33.33333333", output.Amount.String())
		total = total.Add(output.Amount)
	}
	assert.True(total.LessThanOrEqual(decimal.RequireFromString("100")))
}

func TestBuildOutputsDustDroppedNotRedistributed(t *testing.T) {
	assert := assert.New(t)

	ctx := buildOutputsContext(mock.InitSimpleCollector(), "100", "1000000000", "1")
	ctx, err := BuildOutputs(ctx, &common.GenerateDistributionOptions{
		DustThreshold: decimal.RequireFromString("0.00001"),
	})
	assert.Nil(err)
	assert.Len(ctx.StageData.Outputs, 1)
	assert.Equal(1, ctx.StageData.DroppedAsDust)
	// surviving output keeps its proportional amount, the dust share is
	// not folded back in
	assert.Equal("99.99999990", ctx.StageData.Outputs[0].Amount.StringFixed(8))
}

func TestBuildOutputsZeroDustThresholdRetainsTinyOutputs(t *testing.T) {
	assert := assert.New(t)

	// a zero threshold is honored as configured, not swapped for the
	// default, only zero-amount outputs get dropped
	ctx := buildOutputsContext(mock.InitSimpleCollector(), "0.000005", "1", "1000000000")
	ctx, err := BuildOutputs(ctx, &common.GenerateDistributionOptions{
		DustThreshold: decimal.Zero,
	})
	assert.Nil(err)
	assert.Len(ctx.StageData.Outputs, 1)
	assert.Equal(1, ctx.StageData.DroppedAsDust)
	assert.Equal("0.00000499", ctx.StageData.Outputs[0].Amount.StringFixed(8))
}

func TestBuildOutputsAllDust(t *testing.T) {
	assert := assert.New(t)

	ctx := buildOutputsContext(mock.InitSimpleCollector(), "0.00001", "1", "1")
	_, err := BuildOutputs(ctx, &common.GenerateDistributionOptions{
		DustThreshold: decimal.RequireFromString("0.00001"),
	})
	assert.ErrorIs(err, constants.ErrAllOutputsDust)
}

func TestBuildOutputsInvalidAddressAborts(t *testing.T) {
	assert := assert.New(t)

	collector := mock.InitSimpleCollector()
	collector.SetOpts(&mock.SimpleCollectorOpts{
		InvalidAddresses: map[string]bool{"itc1qbbb": true},
	})
	ctx := buildOutputsContext(collector, "100", "1", "1")
	_, err := BuildOutputs(ctx, &common.GenerateDistributionOptions{
		DustThreshold: decimal.RequireFromString("0.00001"),
	})
	assert.ErrorIs(err, constants.ErrInvalidAddress)
	assert.ErrorContains(err, "itc1qbbb")
}
