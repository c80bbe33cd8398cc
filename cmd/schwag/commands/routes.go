package commands

import (
	"flag"
	"fmt"

	"github.com/bguiz/schwag/routes"
	"github.com/bguiz/schwag/validate"
)

// RoutesFlags contains flags for the routes command
type RoutesFlags struct {
	format    string
	normalize bool
}

// SetupRoutesFlags creates the flag set for the routes command.
func SetupRoutesFlags() (*flag.FlagSet, *RoutesFlags) {
	fs := flag.NewFlagSet("routes", flag.ContinueOnError)
	flags := &RoutesFlags{}

	fs.StringVar(&flags.format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.normalize, "normalize", true, "normalize derived schema names")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: schwag routes [flags] <schema-file>...\n\n")
		_, _ = fmt.Fprintf(output, "List the route operations each schema document declares.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  schwag routes petstore.yaml\n")
		_, _ = fmt.Fprintf(output, "  schwag routes -format json petstore.yaml inventory.yaml\n")
	}

	return fs, flags
}

type routeListing struct {
	Schema    string `json:"schema" yaml:"schema"`
	Path      string `json:"path" yaml:"path"`
	ColonPath string `json:"colon_path" yaml:"colon_path"`
	Verb      string `json:"verb" yaml:"verb"`
	Params    int    `json:"params" yaml:"params"`
}

// HandleRoutes implements the routes command.
func HandleRoutes(args []string) error {
	fs, flags := SetupRoutesFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.format); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("routes command requires at least one schema file")
	}

	reg, err := loadRegistry(fs.Args(), "", flags.normalize)
	if err != nil {
		return err
	}

	var listings []routeListing
	for _, name := range reg.Names() {
		configs, err := validate.AllRouteConfigs(reg, name)
		if err != nil {
			return err
		}
		for _, rc := range configs {
			listings = append(listings, routeListing{
				Schema:    name,
				Path:      rc.Path,
				ColonPath: routes.ToColonPath(rc.Path),
				Verb:      rc.Verb,
				Params:    len(rc.Params),
			})
		}
	}

	if flags.format != FormatText {
		return OutputStructured(listings, flags.format)
	}

	for _, l := range listings {
		fmt.Printf("%-20s %-7s %-40s %d param(s)\n", l.Schema, l.Verb, l.ColonPath, l.Params)
	}
	return nil
}
