package iohousekeep

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/pgkeeper/pkg/errcode"
	"github.com/gnames/pgkeeper/pkg/maintenance"
)

// PhaseError is returned when a maintenance phase could not start
// because its objects could not be enumerated.
func PhaseError(kind maintenance.Kind, err error) error {
	return &gn.Error{
		Code: errcode.MaintenancePhaseError,
		Msg:  "<em>%s</em> was skipped, objects could not be listed",
		Vars: []any{kind.Operation()},
		Err:  fmt.Errorf("%s phase: %w", kind, err),
	}
}
