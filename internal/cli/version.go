package cli

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/eugenc/dialer-dashboard/internal/buildinfo"
	"github.com/eugenc/dialer-dashboard/internal/updater"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	RunE:    runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub Releases for a newer version")
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("%s %s\n",
		styleBrand.Render("dialer-dashboard"),
		styleVersion.Render(buildinfo.Version))
	fmt.Printf("  %s %s\n", styleLabel.Render("Commit:"), buildinfo.CommitHash)
	fmt.Printf("  %s %s\n", styleLabel.Render("Built:"), buildinfo.BuildDate)
	fmt.Printf("  %s %s/%s\n", styleLabel.Render("OS/Arch:"), runtime.GOOS, runtime.GOARCH)
	fmt.Printf("  %s %s\n", styleLabel.Render("Go:"), runtime.Version())
	if !buildinfo.Release() {
		fmt.Println(styleHint.Render("  (source build, version not stamped)"))
	}

	if !versionCheck {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	result, err := updater.CheckForUpdate(ctx)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if result.Available {
		fmt.Printf("\n%s %s\n", styleSuccess.Render("Update available:"), result.LatestVersion)
		fmt.Println(styleHint.Render(result.ReleaseURL))
	} else {
		fmt.Println(styleHint.Render("\nUp to date."))
	}
	return nil
}
