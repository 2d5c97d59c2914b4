package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/charmbracelet/huh"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
)

const repoSlug = "blackcoderx/pm2md"

var errDevBuild = errors.New("development build, set a version with -ldflags \"-X main.version=x.y.z\" to enable updates")

func init() {
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pm2md version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pm2md", version)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update pm2md to the latest release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := currentVersion()
		if err != nil {
			return err
		}

		latest, found, err := selfupdate.DetectLatest(repoSlug)
		if err != nil {
			return fmt.Errorf("failed to detect latest release: %w", err)
		}
		if !found || latest.Version.LTE(current) {
			fmt.Println("pm2md", current, "is the latest version")
			return nil
		}

		var proceed bool
		err = huh.NewConfirm().
			Title(fmt.Sprintf("Update pm2md %s to %s?", current, latest.Version)).
			Value(&proceed).
			Run()
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !proceed {
			return nil
		}

		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("could not locate executable: %w", err)
		}
		if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
			return fmt.Errorf("failed to update binary: %w", err)
		}

		fmt.Println("✓ updated to", latest.Version)
		return nil
	},
}

// currentVersion parses the build version, rejecting development builds.
func currentVersion() (semver.Version, error) {
	if version == "dev" {
		return semver.Version{}, errDevBuild
	}
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return semver.Version{}, fmt.Errorf("invalid build version %q: %w", version, err)
	}
	return v, nil
}
