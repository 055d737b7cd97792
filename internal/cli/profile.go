package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Davincible/qrecc/internal/validation"
	"github.com/Davincible/qrecc/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewProfileCommand creates the profile management command group
func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage named correction byte counts",
		Long: `Profiles give names to correction byte counts so they can be passed
with --profile instead of --ecc.

Built-in profiles cover the per-block correction byte counts of QR versions
1 to 4 at levels L, M, Q and H (for example "1-M" is 10 bytes). User
profiles are stored next to the config file.`,
		Example: `  # List all profiles
  qrecc profile list

  # Add a profile
  qrecc profile add labels -k 12 -d "Shipping labels" --tags print

  # Remove it again
  qrecc profile delete labels`,
	}

	cmd.AddCommand(
		newProfileListCommand(),
		newProfileShowCommand(),
		newProfileAddCommand(),
		newProfileDeleteCommand(),
	)

	return cmd
}

func newProfileListCommand() *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in and user profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			profiles := filterProfiles(cm.ListProfiles(), tags)

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), profiles)
			}
			return printProfilesTable(cmd.OutOrStdout(), profiles)
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Only show user profiles carrying all of these tags")

	return cmd
}

func newProfileShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			profile, err := cm.GetProfile(args[0])
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), profile)
			}

			w := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold)
			cyan.Fprintln(w, profile.Name)
			fmt.Fprintf(w, "  Correction bytes: %d\n", profile.CorrectionBytes)
			if profile.Description != "" {
				fmt.Fprintf(w, "  Description:      %s\n", profile.Description)
			}
			if len(profile.Tags) > 0 {
				fmt.Fprintf(w, "  Tags:             %s\n", strings.Join(profile.Tags, ", "))
			}
			if profile.Builtin {
				fmt.Fprintln(w, "  Built in")
			}
			return nil
		},
	}

	return cmd
}

func newProfileAddCommand() *cobra.Command {
	var (
		k           int
		description string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add or replace a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if err := validation.ValidateProfileName(name); err != nil {
				return err
			}
			if err := validation.ValidateCorrectionCount(k); err != nil {
				return err
			}

			cm, err := loadConfig()
			if err != nil {
				return err
			}

			profile := &config.Profile{
				Name:            name,
				Description:     description,
				CorrectionBytes: k,
				Tags:            tags,
			}
			if err := cm.AddProfile(profile); err != nil {
				return fmt.Errorf("failed to add profile: %w", err)
			}

			green := color.New(color.FgGreen, color.Bold)
			green.Fprintf(cmd.OutOrStdout(), "✓ Saved profile %s (%d correction bytes)\n", name, k)
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "ecc", "k", 0, "Number of correction bytes")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Profile description")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Profile tags")
	_ = cmd.MarkFlagRequired("ecc")

	return cmd
}

func newProfileDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig()
			if err != nil {
				return err
			}

			if err := cm.DeleteProfile(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])
			return nil
		},
	}

	return cmd
}

func filterProfiles(profiles []*config.Profile, tags []string) []*config.Profile {
	if len(tags) == 0 {
		return profiles
	}

	var filtered []*config.Profile
	for _, p := range profiles {
		if hasAllTags(p.Tags, tags) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func hasAllTags(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if strings.EqualFold(h, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func printProfilesTable(w io.Writer, profiles []*config.Profile) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tK\tSOURCE\tDESCRIPTION")
	for _, p := range profiles {
		source := "user"
		if p.Builtin {
			source = "builtin"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", p.Name, p.CorrectionBytes, source, p.Description)
	}
	return tw.Flush()
}
