package cmd

import (
	"github.com/gnames/pgkeeper/pkg/config"
	"github.com/spf13/cobra"
)

type boolFlag struct {
	name  string
	usage string
	opt   func(bool) config.Option
}

var operationFlags = []boolFlag{
	{"vacuum", "VACUUM ANALYZE base tables", config.OptVacuum},
	{"reindex", "REINDEX indexes", config.OptReindex},
	{"refresh-matviews", "REFRESH materialized views", config.OptRefreshMatviews},
}

// addOperationFlags registers flags that enable or disable maintenance
// operations.
func addOperationFlags(cmd *cobra.Command) {
	for _, v := range operationFlags {
		cmd.Flags().Bool(v.name, true, v.usage)
	}
}

// operationOptions converts operation flags given on the command line
// to config options. Flags that were not given leave config values
// untouched.
func operationOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	for _, v := range operationFlags {
		if !cmd.Flags().Changed(v.name) {
			continue
		}
		b, err := cmd.Flags().GetBool(v.name)
		if err != nil {
			continue
		}
		res = append(res, v.opt(b))
	}
	return res
}
