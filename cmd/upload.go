package cmd

import (
	"fmt"
	"os"

	"github.com/negative-space-software/fileshare-cli/pkg/conout"
	"github.com/negative-space-software/fileshare-cli/pkg/prompt"
	"github.com/negative-space-software/fileshare-cli/pkg/transfer"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:           "upload",
	Short:         "Uploads a file or folder to the server",
	Args:          cobra.NoArgs,
	RunE:          runUpload,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	env, err := newCmdEnv()
	if err != nil {
		return err
	}
	if err = env.requireConfigured(); err != nil {
		return err
	}

	// Gather upload candidates from the working directory
	entries, err := os.ReadDir(".")
	if err != nil {
		return fmt.Errorf("failed to read current directory: %w", err)
	}
	var options []string
	for _, e := range entries {
		name := e.Name()
		if name[0] == '.' {
			continue
		}
		if e.IsDir() {
			name += "/"
		}
		options = append(options, name)
	}
	if len(options) == 0 {
		env.console.PrintlnWarnStep("Nothing to upload in the current directory")
		return nil
	}

	choice, ok, err := prompt.Select("Select a file or folder to upload", options)
	if err != nil {
		return err
	}
	if !ok {
		env.console.PrintlnWarnStep("Upload cancelled")
		return nil
	}

	isDir := choice[len(choice)-1] == '/'
	target := choice
	if isDir {
		target = choice[:len(choice)-1]
	}

	confirmed, ok, err := prompt.Confirm(
		fmt.Sprintf("Upload %s to %s?", choice, env.settings.Addr()), true)
	if err != nil {
		return err
	}
	if !ok || !confirmed {
		env.console.PrintlnWarnStep("Upload cancelled")
		return nil
	}

	progress := newUploadProgress(env.console)
	var result *transfer.Result
	if isDir {
		result, err = env.client.UploadFolder(target, progress.update)
	} else {
		result, err = env.client.UploadFile(target, progress.update)
	}
	if err != nil {
		progress.abort()
		return err
	}
	progress.finish()

	env.console.Rule()
	env.console.PrintlnOkStep("Upload complete")
	env.console.Details("Shared", [][2]string{
		{"Name", result.Name},
		{"URL", result.URL},
	})
	return nil
}

// uploadProgress drives one progress bar per transferred file
type uploadProgress struct {
	console   *conout.Console
	bar       *conout.ProgressBar
	name      string
	doneTotal int64
}

func newUploadProgress(console *conout.Console) *uploadProgress {
	return &uploadProgress{console: console}
}

func (up *uploadProgress) update(written, total int64, name string) {
	if up.bar == nil || up.name != name {
		if up.bar != nil {
			up.bar.Done()
			up.console.PrintlnOkStep("%s (%s)", up.name, humanize.Bytes(uint64(up.doneTotal)))
		}
		up.bar = conout.NewProgressBar(os.Stdout, name, total)
		up.name = name
		up.doneTotal = total
	}
	up.bar.Update(written)
}

func (up *uploadProgress) finish() {
	if up.bar != nil {
		up.bar.Done()
		up.console.PrintlnOkStep("%s (%s)", up.name, humanize.Bytes(uint64(up.doneTotal)))
		up.bar = nil
	}
}

// abort clears a partial progress line without claiming success
func (up *uploadProgress) abort() {
	if up.bar != nil {
		up.bar.Done()
		up.bar = nil
	}
}
