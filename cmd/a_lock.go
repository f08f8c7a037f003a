package cmd

import (
	"log/slog"
	"os"
	"path"

	"code.cloudfoundry.org/filelock"
	"github.com/interchained/itcpay/state"
)

// lockWallet takes an exclusive lock for the wallet under the reports
// directory so two distributions cannot run from the same working
// directory at once. The returned unlock releases it.
func lockWallet(wallet string) (unlock func() error, err error) {
	if wallet == "" {
		wallet = "default"
	}
	lockFileDir := path.Join(state.Global.GetReportsDirectory(), wallet)
	if err := os.MkdirAll(lockFileDir, 0700); err != nil {
		slog.Debug("failed to create lock file directory", "error", err.Error())
		return nil, err
	}
	lockFilePath := path.Join(lockFileDir, ".lock")
	lock := filelock.NewLocker(lockFilePath)

	f, err := lock.Open()
	if err != nil {
		slog.Debug("failed to lock file", "error", err.Error())
		return nil, err
	}
	slog.Debug("locked file", "file", lockFilePath)

	return func() error {
		err := f.Close()
		os.Remove(lockFilePath)
		return err
	}, nil
}
