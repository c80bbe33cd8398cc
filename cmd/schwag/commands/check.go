package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bguiz/schwag/internal/issues"
	"github.com/bguiz/schwag/schema"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	format    string
	normalize bool
	redact    bool
}

// SetupCheckFlags creates the flag set for the check command.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.normalize, "normalize", true, "normalize derived schema names")
	fs.BoolVar(&flags.redact, "redact", false, "omit offending values from issues")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: schwag check [flags] <schema-file> <ref> <value-file>\n\n")
		_, _ = fmt.Fprintf(output, "Validate a JSON value against a node of a schema document.\n")
		_, _ = fmt.Fprintf(output, "The ref has the form '<schemaName>#/<json-pointer>'; use '-' as\n")
		_, _ = fmt.Fprintf(output, "the value file to read from stdin.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  schwag check petstore.yaml 'PetStore#/paths/~1pets/get/responses/200' pet.json\n")
		_, _ = fmt.Fprintf(output, "  echo '{\"name\":\"rex\"}' | schwag check petstore.yaml 'PetStore#/paths/~1pets/get/responses/200' -\n")
	}

	return fs, flags
}

type checkResult struct {
	Valid  bool           `json:"valid" yaml:"valid"`
	Issues []issues.Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

// HandleCheck implements the check command.
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return fmt.Errorf("check command requires schema file, ref, and value file")
	}

	reg, err := loadRegistry([]string{fs.Arg(0)}, "", flags.normalize)
	if err != nil {
		return err
	}

	var raw []byte
	if fs.Arg(2) == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(fs.Arg(2))
	}
	if err != nil {
		return fmt.Errorf("reading value: %w", err)
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("value is not valid JSON: %w", err)
	}

	var opts []schema.Option
	if flags.redact {
		opts = append(opts, schema.WithRedactedValues())
	}

	found := schema.New(reg, opts...).Validate(fs.Arg(1), value)
	result := checkResult{
		Valid:  !issues.HasErrors(found),
		Issues: found,
	}

	if flags.format != FormatText {
		if err := OutputStructured(result, flags.format); err != nil {
			return err
		}
	} else {
		for _, issue := range found {
			fmt.Println(issue.String())
		}
		if result.Valid {
			fmt.Println("valid")
		}
	}

	if !result.Valid {
		return fmt.Errorf("value does not conform to %s", fs.Arg(1))
	}
	return nil
}
