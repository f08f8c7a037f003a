package notifications

import (
	"testing"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/constants"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPopulateMessageTemplate(t *testing.T) {
	assert := assert.New(t)

	summary := &common.DistributionSummary{
		RunId:            "run-1",
		PaidRecipients:   12,
		Batches:          3,
		TotalDistributed: decimal.RequireFromString("99.5"),
	}

	message := PopulateMessageTemplate("<TotalDistributed> to <PaidRecipients> recipients in <Batches> batches (<Custom>)", summary, map[string]string{"Custom": "extra"})
	assert.Equal("99.50000000 ITC to 12 recipients in 3 batches (extra)", message)
}

func TestValidateDiscordConfiguration(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(ValidateDiscordConfiguration([]byte(`{"webhook_id": "123", "webhook_token": "abc"}`)))

	err := ValidateDiscordConfiguration([]byte(`{"webhook_token": "abc"}`))
	assert.ErrorIs(err, constants.ErrInvalidNotificatorConfiguration)

	err = ValidateDiscordConfiguration([]byte(`{"webhook_url": "https://example.com/not-a-webhook"}`))
	assert.ErrorIs(err, constants.ErrInvalidNotificatorConfiguration)
}

func TestValidateWebhookConfiguration(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(ValidateWebhookConfiguration([]byte(`{"url": "https://hooks.example.com/x", "auth": "none"}`)))

	err := ValidateWebhookConfiguration([]byte(`{"auth": "bearer", "url": "https://hooks.example.com/x"}`))
	assert.ErrorIs(err, constants.ErrInvalidNotificatorConfiguration)

	err = ValidateWebhookConfiguration([]byte(`{}`))
	assert.ErrorIs(err, constants.ErrInvalidNotificatorConfiguration)
}

func TestValidateNotificatorConfigurationDispatch(t *testing.T) {
	assert := assert.New(t)

	err := ValidateNotificatorConfiguration("carrier-pigeon", []byte(`{}`))
	assert.ErrorIs(err, constants.ErrUnsupportedNotificator)

	err = ValidateNotificatorConfiguration(TELEGRAM_NOTIFICATOR, []byte(`{"api_token": ""}`))
	assert.ErrorIs(err, constants.ErrInvalidNotificatorConfiguration)
}
