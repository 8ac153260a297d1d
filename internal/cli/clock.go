package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/Skyhigh44/Productivity/internal/clock"
	"github.com/Skyhigh44/Productivity/internal/logging"

	"github.com/spf13/cobra"
)

type clockReading struct {
	Clock string    `json:"clock"`
	At    time.Time `json:"at"`
}

func (r clockReading) Text() string { return r.Clock }

func newClockCmd(app *App) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Print the dashboard clock once per tick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return writeErr(cmd, errUsage(strconv.Itoa(count), "--count must be >= 0"))
			}
			log := logging.Component(app.Logger, "clock")

			var writeFailed error
			emit := func(t time.Time) {
				if writeFailed != nil {
					return
				}
				writeFailed = writeOut(cmd, app, clockReading{Clock: clock.Format(t, app.Config.Clock24h), At: t})
			}

			emit(app.clock.Now())
			if count == 1 {
				return writeFailed
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			printed := 1
			stop := clock.Schedule(ctx, app.Config.Tick, func(t time.Time) {
				// A tick can still race the cancel below.
				if count > 0 && printed >= count {
					return
				}
				emit(t)
				printed++
				if writeFailed != nil || (count > 0 && printed >= count) {
					cancel()
				}
			})
			log.WithField("tick", app.Config.Tick.String()).Debug("clock started")
			<-ctx.Done()
			stop()
			log.WithField("printed", printed).Debug("clock stopped")
			return writeFailed
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Stop after N readings (0 = until interrupted)")
	return cmd
}
