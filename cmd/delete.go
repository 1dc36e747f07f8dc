package cmd

import (
	"fmt"

	"github.com/negative-space-software/fileshare-cli/pkg/prompt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:           "delete",
	Short:         "Deletes files from the server",
	Args:          cobra.NoArgs,
	RunE:          runDelete,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	env, err := newCmdEnv()
	if err != nil {
		return err
	}
	if err = env.requireConfigured(); err != nil {
		return err
	}

	env.console.PrintlnInfoStep("Listing remote files on %s", env.settings.Addr())
	entries, err := env.client.ListFiles()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		env.console.PrintlnWarnStep("The remote directory is empty")
		return nil
	}

	options := make([]string, 0, len(entries))
	nameByOption := make(map[string]string, len(entries))
	for _, e := range entries {
		label := fmt.Sprintf("%s (%s)", e.Name, humanize.Bytes(uint64(e.Size)))
		if e.Kind == "directory" {
			label = e.Name + "/"
		}
		options = append(options, label)
		nameByOption[label] = e.Name
	}

	picked, ok, err := prompt.MultiSelect("Select files to delete", options)
	if err != nil {
		return err
	}
	if !ok {
		env.console.PrintlnWarnStep("Deletion cancelled")
		return nil
	}

	names := make([]string, 0, len(picked))
	for _, label := range picked {
		names = append(names, nameByOption[label])
	}

	confirmed, ok, err := prompt.Confirm(
		fmt.Sprintf("Delete %d item(s) from the server?", len(names)), false)
	if err != nil {
		return err
	}
	if !ok || !confirmed {
		env.console.PrintlnWarnStep("Deletion cancelled")
		return nil
	}

	results, err := env.client.DeleteMultipleFiles(names)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.OK {
			env.console.PrintlnOkStep("Deleted %s", r.Name)
			continue
		}
		failed++
		env.console.PrintlnErrorStep("%s: %v", r.Name, r.Err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d deletions failed", failed, len(results))
	}
	return nil
}
