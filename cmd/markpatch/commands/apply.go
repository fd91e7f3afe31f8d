package commands

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/markpatch/cmd/markpatch/opts"
	"github.com/walteh/markpatch/pkg/config"
	"github.com/walteh/markpatch/pkg/log"
	"github.com/walteh/markpatch/pkg/patch"
	"github.com/walteh/markpatch/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// buildRule maps the loaded config onto a region rule
func buildRule(cfg *config.Config) text.RegionRule {
	return text.RegionRule{
		StartMarker:    cfg.Patch.StartMarker,
		EndMarker:      cfg.Patch.EndMarker,
		Replacement:    cfg.Patch.Replacement,
		FileFilterGlob: cfg.Patch.FileFilterGlob,
	}
}

// NewApplyCmd creates a new apply command
func NewApplyCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the one-shot patch to the target file",
		Long: `Apply runs the patch against the configured target file.
It will:
1. Read the target file fully into memory
2. Locate the first occurrence of the start and end markers
3. Splice the replacement block in place of the anchored region
4. Overwrite the file atomically

If either marker is missing, nothing is written and the run fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			patcher := patch.New(text.NewAnchorReplacer())
			result, err := patcher.Patch(ctx, patch.Options{
				TargetPath: rootOpts.Config.Target,
				Rule:       buildRule(rootOpts.Config),
				DryRun:     dryRun,
			})
			if err != nil {
				var markerErr *text.MarkerNotFoundError
				if errors.As(err, &markerErr) {
					rootOpts.UserLogger.LogMarkerStatus(
						log.MarkerStatus{Name: "start", Index: markerErr.StartIndex},
						log.MarkerStatus{Name: "end", Index: markerErr.EndIndex},
					)
					rootOpts.UserLogger.LogMarkersNotFound(markerErr.StartIndex, markerErr.EndIndex)
				}
				return errors.Errorf("applying patch: %w", err)
			}

			zerolog.Ctx(ctx).Debug().
				Int("start_index", result.StartIndex).
				Int("end_index", result.EndIndex).
				Int("new_size", result.NewSize).
				Stringer("outcome", result.Outcome).
				Msg("patch completed")

			rootOpts.UserLogger.LogPatchSuccess(filepath.Base(rootOpts.Config.Target), dryRun)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "locate and splice in memory without writing")

	return cmd
}
