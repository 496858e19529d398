package draft

import (
	"context"
	"fmt"
	"time"

	"resume-builder/internal/logging"

	cron "github.com/robfig/cron/v3"
)

// StartAutosave persists a snapshot of the current draft every interval until
// the returned stop function is called. A failed save is logged and the
// schedule keeps running. A non-positive interval disables autosave.
func (s *Store) StartAutosave(interval time.Duration) (stop func(), err error) {
	if interval <= 0 {
		return func() {}, nil
	}

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		s.autosaveTick(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("schedule autosave: %w", err)
	}
	c.Start()
	logging.Logger.WithField("interval", interval.String()).Info("draft: autosave scheduled")

	return func() {
		<-c.Stop().Done()
	}, nil
}

func (s *Store) autosaveTick(ctx context.Context) {
	if err := s.SaveCurrent(ctx); err != nil {
		logging.Logger.WithError(err).Error("draft: autosave failed")
		return
	}
	logging.Logger.Debug("draft: autosaved")
}
