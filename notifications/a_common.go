package notifications

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/interchained/itcpay/common"
	"github.com/shopspring/decimal"
)

// PopulateMessageTemplate replaces <FieldName> placeholders with the matching
// summary field. Decimal fields render through FormatAmount so templates show
// coin amounts rather than raw strings.
func PopulateMessageTemplate(messageTemplate string, summary *common.DistributionSummary, additionalData map[string]string) string {
	v := reflect.ValueOf(*summary)
	typeOfS := v.Type()

	for i := 0; i < v.NumField(); i++ {
		val := fmt.Sprintf("%v", v.Field(i).Interface())
		if d, ok := v.Field(i).Interface().(decimal.Decimal); ok {
			val = common.FormatAmount(d)
		}
		messageTemplate = strings.ReplaceAll(messageTemplate, fmt.Sprintf("<%s>", typeOfS.Field(i).Name), val)
	}
	for k, v := range additionalData {
		messageTemplate = strings.ReplaceAll(messageTemplate, fmt.Sprintf("<%s>", k), v)
	}

	return messageTemplate
}
