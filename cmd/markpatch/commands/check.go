package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/markpatch/cmd/markpatch/opts"
	"github.com/walteh/markpatch/pkg/log"
	"github.com/walteh/markpatch/pkg/patch"
	"github.com/walteh/markpatch/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(rootOpts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Locate the markers without modifying the target file",
		Long: `Check reads the target file and reports where each marker was
found. It never writes. After a successful apply the start marker has
been consumed, so check reports it as absent and fails: that is the
expected state of an already-patched file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "check").Logger().WithContext(ctx)

			patcher := patch.New(text.NewAnchorReplacer())
			result, err := patcher.Check(ctx, patch.Options{
				TargetPath: rootOpts.Config.Target,
				Rule:       buildRule(rootOpts.Config),
			})
			if result != nil {
				rootOpts.UserLogger.LogMarkerStatus(
					log.MarkerStatus{Name: "start", Index: result.StartIndex},
					log.MarkerStatus{Name: "end", Index: result.EndIndex},
				)
			}
			if err != nil {
				var markerErr *text.MarkerNotFoundError
				if errors.As(err, &markerErr) {
					rootOpts.UserLogger.LogMarkersNotFound(markerErr.StartIndex, markerErr.EndIndex)
				}
				return errors.Errorf("checking target: %w", err)
			}

			rootOpts.UserLogger.LogValidation(true,
				fmt.Sprintf("Both markers present in %s", filepath.Base(rootOpts.Config.Target)), nil)
			return nil
		},
	}

	return cmd
}
