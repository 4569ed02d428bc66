package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"farmcare/pkg/climate"
)

var rulesFile string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the adjustment rule table in effect",
	Long: `Print the adjustment rules the server would use: the file named by
--file or RULES_PATH (.csv, .xlsx, .yaml), or the built-in table.
The YAML output can be edited and fed back through RULES_PATH.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := rulesFile
		if path == "" {
			path = cfg.RulesPath
		}
		e, err := climate.LoadEngine(path)
		if err != nil {
			return err
		}
		if output == "yaml" {
			b, err := climate.MarshalYAML(e.Rules())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		}
		return render(cmd.OutOrStdout(), map[string]any{"rules": e.Rules()})
	},
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesFile, "file", "f", "", "Rule table to load instead of RULES_PATH")
	rootCmd.AddCommand(rulesCmd)
}

func render(w io.Writer, v any) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
