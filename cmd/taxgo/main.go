package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/taxgo/taxgo/internal/compare"
	"github.com/taxgo/taxgo/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taxgo",
	Short: "India income-tax regime comparison CLI",
	Long:  "Computes annual income-tax liability under the Old and New regimes and recommends the cheaper one",
}

var compareCmd = &cobra.Command{
	Use:   "compare [profile-file]",
	Short: "Compare tax liability under both regimes",
	Long: `Compare income-tax liability under the Old and New regimes for one
taxpayer profile.

Examples:
  ./taxgo compare profile.yaml
  ./taxgo compare profile.yaml --format json --pretty
  ./taxgo compare profile.yaml --rules rules_2026.yaml --format csv
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profileFile := args[0]

		parser := config.NewInputParser()

		rulesFile, _ := cmd.Flags().GetString("rules")
		rules, err := parser.LoadRules(rulesFile)
		if err != nil {
			log.Fatal(err)
		}

		profile, err := parser.LoadProfile(profileFile)
		if err != nil {
			log.Fatal(err)
		}

		engine := compare.NewEngine(rules)
		result, err := engine.Compare(profile)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		pretty, _ := cmd.Flags().GetBool("pretty")

		formatter := compare.GetFormatterByName(outputFormat, pretty)
		if formatter == nil {
			log.Fatalf("unknown output format %q (expected table, json, or csv)", outputFormat)
		}

		out, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(out)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [profile-file]",
	Short: "Validate a taxpayer profile file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profileFile := args[0]

		parser := config.NewInputParser()
		if _, err := parser.LoadProfile(profileFile); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Profile file %s is valid\n", profileFile)
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func init() {
	compareCmd.Flags().String("format", "table", "Output format: table, json, or csv")
	compareCmd.Flags().String("rules", "", "Tax-year rules YAML file (defaults to FY 2025-26 rules)")
	compareCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
