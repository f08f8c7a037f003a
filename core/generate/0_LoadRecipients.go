package generate

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/interchained/itcpay/common"
	"github.com/interchained/itcpay/constants"
	"github.com/shopspring/decimal"
)

// parseCsvRecipients reads a two-column address,share table. Blank and
// short rows are skipped silently, a header row whose first cell begins
// with "address" is skipped intentionally, and rows whose share does
// not parse as a decimal are dropped row by row rather than failing the
// whole file.
func parseCsvRecipients(reader io.Reader) ([]common.Recipient, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	recipients := make([]common.Recipient, 0)
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 2 {
			continue
		}
		address, share := strings.TrimSpace(row[0]), strings.TrimSpace(row[1])
		if address == "" || share == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(address), "address") {
			continue
		}
		shareValue, err := decimal.NewFromString(share)
		if err != nil {
			slog.Warn("skipping recipient row with unparseable share", "address", address, "share", share)
			continue
		}
		recipients = append(recipients, common.Recipient{
			Address: address,
			Share:   shareValue,
		})
	}
	return recipients, nil
}

// parseJsonRecipients mirrors the csv path's leniency, objects with a
// blank address are skipped instead of failing the file.
func parseJsonRecipients(data []byte) ([]common.Recipient, error) {
	parsed := make([]common.Recipient, 0)
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}
	recipients := make([]common.Recipient, 0, len(parsed))
	for _, recipient := range parsed {
		if strings.TrimSpace(recipient.Address) == "" {
			slog.Warn("skipping recipient entry without address", "share", recipient.Share)
			continue
		}
		recipients = append(recipients, recipient)
	}
	return recipients, nil
}

func LoadRecipients(ctx *DistributionGenerationContext, options *common.GenerateDistributionOptions) (*DistributionGenerationContext, error) {
	logger := slog.Default().With("phase", "load_recipients")

	var recipients []common.Recipient
	switch {
	case len(options.InlineRecipients) > 0:
		recipients = options.InlineRecipients
	case options.CsvSourcePath != "" && options.JsonSourcePath != "":
		return ctx, constants.ErrAmbiguousRecipientSource
	case options.CsvSourcePath != "":
		file, err := os.Open(options.CsvSourcePath)
		if err != nil {
			return ctx, err
		}
		defer file.Close()
		recipients, err = parseCsvRecipients(file)
		if err != nil {
			return ctx, err
		}
	case options.JsonSourcePath != "":
		data, err := os.ReadFile(options.JsonSourcePath)
		if err != nil {
			return ctx, err
		}
		recipients, err = parseJsonRecipients(data)
		if err != nil {
			return ctx, err
		}
	default:
		return ctx, constants.ErrNoRecipientSource
	}

	if len(recipients) == 0 {
		return ctx, constants.ErrNoRecipients
	}

	logger.Debug("recipients loaded", "count", len(recipients))
	ctx.StageData.Recipients = recipients
	return ctx, nil
}
