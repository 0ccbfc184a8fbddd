package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/idelchi/fss/internal/report"
)

// SizeWidth is the column width of human-readable sizes in table output.
const SizeWidth = 10

// PrintJSON outputs the report in JSON format.
func PrintJSON(rep report.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintYAML outputs the report in YAML format.
func PrintYAML(rep report.Report, writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	enc.SetIndent(2)

	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return enc.Close()
}

// PrintTable outputs the report as one "<size>\t<group>" row per group, largest
// first, followed by the total. format must already be resolved. Raw byte
// counts are left unpadded so the output stays easy to parse.
func PrintTable(rep report.Report, format FormatOption, writer io.Writer) error {
	width := SizeWidth
	if format == Bytes {
		width = 0
	}

	for _, row := range rep.Rows {
		key := row.Key
		if key == "" {
			key = `""`
		}

		if _, err := fmt.Fprintf(writer, "%*s\t%s\n", width, format.Format(row.Size), key); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(writer, "\nTotal:  %*s\n", width, format.Format(rep.Total))

	return err
}

// PrintErrors reports filesystem errors: every one of them when verbose,
// otherwise a single warning if there were any.
func PrintErrors(rep report.Report, verbose bool, writer io.Writer) {
	if verbose {
		for _, e := range rep.Errors {
			fmt.Fprintf(writer, "fss: %v\n", e)
		}

		return
	}

	if len(rep.Errors) > 0 {
		fmt.Fprintln(writer, "[fss warning] the results may be tainted. Re-run with -v/--verbose to print all errors.")
	}
}
