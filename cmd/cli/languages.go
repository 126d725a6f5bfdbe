package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevigo/code-guardian/internal/core"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Lists the supported languages and test frameworks",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "LANGUAGE\tNAME\tEXTENSIONS\tDEFAULT FRAMEWORK")
		for _, l := range core.Languages() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l, l.Label(), strings.Join(extensionsFor(l), " "), core.DefaultFramework(l))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "FRAMEWORK\tNAME")
		for _, f := range core.Frameworks() {
			fmt.Fprintf(w, "%s\t%s\n", f, f.Label())
		}
		return w.Flush()
	},
}

func extensionsFor(l core.Language) []string {
	var exts []string
	for _, ext := range core.Extensions() {
		if found, _ := core.LanguageFromPath("x" + ext); found == l {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(languagesCmd)
}
