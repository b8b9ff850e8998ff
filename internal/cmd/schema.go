package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planlint/internal/plan"
	"github.com/felixgeelhaar/planlint/internal/tool"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [plan|tools]",
	Short: "Generate the JSON schema for plan or tool spec documents",
	Long: `Generate the JSON schema used to validate input documents.

Examples:
  planlint schema plan
  planlint schema tools -o tools.schema.json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"plan", "tools"},
	RunE:      runSchema,
}

var schemaOutput string

func init() {
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write the schema to a file instead of stdout")

	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error

	switch args[0] {
	case "plan":
		data, err = plan.GenerateSchema()
	case "tools":
		data, err = tool.GenerateSchema()
	default:
		return fmt.Errorf("unknown schema target %q (supported: plan, tools)", args[0])
	}
	if err != nil {
		return err
	}

	if schemaOutput != "" {
		return os.WriteFile(schemaOutput, append(data, '\n'), 0644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
