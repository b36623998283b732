package cmd

import (
	"fmt"
	"os"

	acervo "github.com/gnames/acervo/pkg"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", acervo.Version, acervo.Build)
		os.Exit(0)
	}
}

// plantFlags maps command line flags to plant fields.
var plantFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"popular", plant.FieldPopularName, "popular name"},
	{"scientific", plant.FieldScientificName, "scientific name"},
	{"family", plant.FieldFamily, "botanical family"},
	{"origin", plant.FieldOrigin, "origin of the plant"},
	{"care", plant.FieldCare, "care notes"},
}

func addPlantFlags(cmd *cobra.Command) {
	for _, v := range plantFlags {
		cmd.Flags().String(v.flag, "", v.usage)
	}
}

// changedFields returns values of plant flags given on the command line,
// keyed by field name.
func changedFields(cmd *cobra.Command) map[string]string {
	res := make(map[string]string)
	for _, v := range plantFlags {
		if cmd.Flags().Changed(v.flag) {
			res[v.field], _ = cmd.Flags().GetString(v.flag)
		}
	}
	return res
}
