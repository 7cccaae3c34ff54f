package controllers

import "github.com/spf13/cobra"

// RepoDirFlag names the persistent flag selecting the repository directory.
const RepoDirFlag = "directory"

func repoDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString(RepoDirFlag)
	if dir == "" {
		return "."
	}
	return dir
}
