package state

import (
	"os"
	"path"

	"github.com/interchained/itcpay/constants"
)

var (
	Global           State
	CONFIG_FILE_NAME = "itcpay.hjson"
)

type StateInitOptions struct {
	WantsJsonOutput bool
	Debug           bool
}

type State struct {
	workingDirectory string
	wantsJsonOutput  bool
	debug            bool
}

func Init(workingDirectory string, options StateInitOptions) error {
	if err := os.MkdirAll(workingDirectory, 0700); err != nil {
		return err
	}
	Global = State{
		workingDirectory: workingDirectory,
		wantsJsonOutput:  options.WantsJsonOutput,
		debug:            options.Debug,
	}
	return nil
}

func (state *State) GetWorkingDirectory() string {
	return state.workingDirectory
}

func (state *State) GetReportsDirectory() string {
	return path.Join(state.workingDirectory, constants.REPORTS_DIRECTORY)
}

func (state *State) GetWantsOutputJson() bool {
	return state.wantsJsonOutput
}

func (state *State) GetConfigurationFilePath() string {
	configurationFilePath := os.Getenv("CONFIGURATION_FILE")
	if configurationFilePath != "" {
		return configurationFilePath
	}
	return path.Join(state.GetWorkingDirectory(), CONFIG_FILE_NAME)
}

func (state *State) GetIsInDebugMode() bool {
	return state.debug
}
