/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/pgkeeper/internal/iocatalog"
	"github.com/gnames/pgkeeper/internal/iohousekeep"
	"github.com/gnames/pgkeeper/pkg/errcode"
	"github.com/gnames/pgkeeper/pkg/maintenance"
	"github.com/spf13/cobra"
)

// getListCmd returns the list command.
func getListCmd() *cobra.Command {
	var (
		kinds   []string
		showSQL bool
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List objects that would be maintained",
		Long: `List tables, indexes and materialized views that 'pgkeeper run'
would maintain, without changing anything.

Enabled operations from the config select kinds that are listed, unless
--kind is given.

Examples:
  # List everything
  pgkeeper list

  # Only indexes, as statements
  pgkeeper list --kind index --sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := selectKinds(kinds)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			err = runList(cmd.Context(), cmd.OutOrStdout(), sel, showSQL)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	listCmd.Flags().StringSliceVarP(
		&kinds, "kind", "k", nil,
		"kinds to list: table, index, matview (default: enabled operations)",
	)
	listCmd.Flags().BoolVar(
		&showSQL, "sql", false,
		"print maintenance statements instead of names",
	)

	return listCmd
}

// selectKinds parses --kind values. Without them kinds of enabled
// operations are returned.
func selectKinds(kinds []string) ([]maintenance.Kind, error) {
	if len(kinds) == 0 {
		return iohousekeep.Phases(cfg), nil
	}

	res := make([]maintenance.Kind, 0, len(kinds))
	for _, v := range kinds {
		kind, err := maintenance.ParseKind(v)
		if err != nil {
			return nil, &gn.Error{
				Code: errcode.ConfigInvalidValueError,
				Msg:  "Unknown kind <em>%s</em>, use table, index or matview",
				Vars: []any{v},
				Err:  err,
			}
		}
		res = append(res, kind)
	}
	return res, nil
}

func runList(
	ctx context.Context,
	w io.Writer,
	kinds []maintenance.Kind,
	showSQL bool,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	enum := iocatalog.New(op.Executor(), cfg, logger)
	for _, kind := range kinds {
		names, err := enum.List(ctx, kind)
		if err != nil {
			return err
		}
		gn.Info("%s: <em>%s</em> objects",
			kind.String(), humanize.Comma(int64(len(names))))
		printNames(w, kind, names, showSQL)
	}
	return nil
}

func printNames(
	w io.Writer,
	kind maintenance.Kind,
	names []maintenance.QualifiedName,
	showSQL bool,
) {
	for _, v := range names {
		if showSQL {
			fmt.Fprintln(w, kind.Statement(v))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", kind, v)
	}
}
