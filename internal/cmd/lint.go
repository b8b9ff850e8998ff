package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/planlint/internal/errors"
	"github.com/felixgeelhaar/planlint/internal/lint"
	"github.com/felixgeelhaar/planlint/internal/plan"
	"github.com/felixgeelhaar/planlint/internal/tool"
	"github.com/felixgeelhaar/planlint/internal/ux"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate a plan against its tool contracts",
	Long: `Validate an execution plan against the declared tool specs.

Checks performed:
  E001 - step names a tool absent from the registry
  E002 - required parameter missing, or supplied parameter undeclared
  E003 - parameter value type contradicts the declared type
  E004 - parameter value matches a secret pattern
  W001 - circular dependency between steps
  W002 - dependency edge points at a step that does not exist
  W003 - declared output of a side-effect-free step is never referenced

Exit codes:
  0 - plan is clean (warnings allowed)
  3 - plan carries error-severity findings
  4 - inputs are malformed (duplicate ids, bad specs)`,
	RunE: runLint,
}

var (
	lintPlanPath    string
	lintToolsPath   string
	lintSecrets     []string
	lintSecretsFile string
	lintFix         bool
	lintFixOut      string
	lintFormat      string
	lintOutput      string
	lintNoColor     bool
)

func init() {
	lintCmd.Flags().StringVarP(&lintPlanPath, "plan", "p", "", "plan file (default: plan.yaml, plan.yml, plan.json)")
	lintCmd.Flags().StringVarP(&lintToolsPath, "tools", "t", "", "tool specs file (default: tools.yaml, tools.yml, tools.json)")
	lintCmd.Flags().StringArrayVar(&lintSecrets, "secret", nil, "secret pattern to flag (repeatable)")
	lintCmd.Flags().StringVar(&lintSecretsFile, "secrets-file", "", "file with one secret pattern per line")
	lintCmd.Flags().BoolVar(&lintFix, "fix", false, "apply synthesized patches and write the corrected plan")
	lintCmd.Flags().StringVar(&lintFixOut, "fix-out", "", "write the corrected plan here instead of overwriting")
	lintCmd.Flags().StringVarP(&lintFormat, "format", "f", "text", "output format: text, json, sarif")
	lintCmd.Flags().StringVarP(&lintOutput, "output", "o", "", "write the report to a file instead of stdout")
	lintCmd.Flags().BoolVar(&lintNoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	planPath := lintPlanPath
	if planPath == "" {
		discovered, err := ux.DiscoverPlanFile()
		if err != nil {
			return err
		}
		planPath = discovered
	}
	toolsPath := lintToolsPath
	if toolsPath == "" {
		discovered, err := ux.DiscoverToolsFile()
		if err != nil {
			return err
		}
		toolsPath = discovered
	}

	if err := ux.ValidateRequiredFile(planPath, "plan file"); err != nil {
		return err
	}
	if err := ux.ValidateRequiredFile(toolsPath, "tool specs file"); err != nil {
		return err
	}

	rawSpecs, err := os.ReadFile(toolsPath)
	if err != nil {
		return fmt.Errorf("read tool specs file: %w", err)
	}
	if err := tool.ValidateDocument(rawSpecs, isYAMLPath(toolsPath)); err != nil {
		return err
	}
	specs, err := tool.LoadSpecs(toolsPath)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(planPath)
	if err != nil {
		return fmt.Errorf("read plan file: %w", err)
	}
	if err := plan.ValidateDocument(raw, isYAMLPath(planPath)); err != nil {
		return err
	}
	p, err := plan.Parse(raw, isYAMLPath(planPath))
	if err != nil {
		return err
	}

	secrets, err := collectSecrets()
	if err != nil {
		return err
	}

	autoFix := lintFix || lintFixOut != ""
	linter, err := lint.New(specs, lint.Options{AutoFix: autoFix})
	if err != nil {
		return err
	}

	result, err := linter.Lint(p, secrets)
	if err != nil {
		return err
	}

	writer := cmd.OutOrStdout()
	if lintOutput != "" {
		f, err := os.Create(lintOutput)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	formatter, err := ux.NewFormatter(lintFormat, &ux.FormatterOptions{
		Writer:      writer,
		NoColor:     lintNoColor,
		ArtifactURI: planPath,
	})
	if err != nil {
		return err
	}
	if err := formatter.Format(result); err != nil {
		return err
	}

	if autoFix && len(result.Patches()) > 0 {
		fixed, err := result.ApplyPatch(p)
		if err != nil {
			return err
		}
		dest := lintFixOut
		if dest == "" {
			dest = planPath
		}
		if err := plan.Save(fixed, dest); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote corrected plan to %s\n", dest)
	}

	if result.HasErrors() {
		return errors.New(errors.ErrCodeFindings, "plan validation failed")
	}
	return nil
}

func isYAMLPath(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// collectSecrets merges --secret flags with the optional secrets file.
// The file holds one pattern per line; blank lines and # comments are
// skipped.
func collectSecrets() ([]string, error) {
	secrets := append([]string{}, lintSecrets...)

	if lintSecretsFile == "" {
		return secrets, nil
	}

	f, err := os.Open(lintSecretsFile)
	if err != nil {
		return nil, fmt.Errorf("open secrets file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		secrets = append(secrets, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read secrets file: %w", err)
	}
	return secrets, nil
}
