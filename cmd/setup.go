package cmd

import (
	"fmt"

	"github.com/negative-space-software/fileshare-cli/pkg/conf"
	"github.com/negative-space-software/fileshare-cli/pkg/prompt"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:           "setup",
	Short:         "Edits connection settings",
	Args:          cobra.NoArgs,
	RunE:          runSetup,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

const (
	setupKeyName = "Change SSH key name"
	setupDir     = "Change remote directory"
	setupHost    = "Change host"
	setupPort    = "Change port"
	setupTest    = "Test connection"
	setupQuit    = "Quit setup"
)

func runSetup(cmd *cobra.Command, args []string) error {
	env, err := newCmdEnv()
	if err != nil {
		return err
	}

	actions := []string{setupKeyName, setupDir, setupHost, setupPort, setupTest, setupQuit}

	for {
		choice, ok, sErr := prompt.Select("Setup", actions)
		if sErr != nil {
			return sErr
		}
		if !ok || choice == setupQuit {
			return nil
		}

		switch choice {
		case setupKeyName:
			err = changeSetting(env, "SSH key name", conf.KeySSHKeyName, prompt.ValidateNonEmpty)
		case setupDir:
			err = changeSetting(env, "Remote directory", conf.KeyServerDir, prompt.ValidateAbsDir)
		case setupHost:
			err = changeSetting(env, "Server host", conf.KeyServerHost, prompt.ValidateHost)
		case setupPort:
			err = changeSetting(env, "Server port", conf.KeyServerPort, prompt.ValidatePort)
		case setupTest:
			env.console.PrintlnInfoStep("Connecting to %s", env.settings.Addr())
			if tErr := env.client.TestConnection(); tErr != nil {
				env.console.PrintlnErrorStep("Connection failed: %v", tErr)
			} else {
				env.console.PrintlnOkStep("Connection to %s succeeded", env.settings.Addr())
			}
		}
		if err != nil {
			return err
		}
	}
}

func changeSetting(env *cmdEnv, title, key string, validate prompt.Validator) error {
	value, ok, err := prompt.Input(
		fmt.Sprintf("%s [%s]", title, env.settings.Get(key)),
		env.settings.Get(key),
		validate,
	)
	if err != nil {
		return err
	}
	if !ok {
		env.console.PrintlnWarnStep("Unchanged")
		return nil
	}

	if err = env.settings.Set(key, value); err != nil {
		return err
	}
	env.console.PrintlnOkStep("%s set to %s", title, value)
	return nil
}
