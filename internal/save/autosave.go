package save

import (
	"time"

	"go.uber.org/zap"
)

// AutoSlot is the slot auto-saves write to.
const AutoSlot = "auto"

// AutoSaver writes to AutoSlot when at least interval has passed since its
// last successful save. It has no goroutine; callers check it at natural
// pauses such as the end of a battle.
type AutoSaver struct {
	store    *Store
	interval time.Duration
	last     time.Time
	now      func() time.Time
	logger   *zap.Logger
}

// NewAutoSaver creates an AutoSaver. An interval of 0 disables it. The first
// check after construction is always due.
func NewAutoSaver(store *Store, interval time.Duration, logger *zap.Logger) *AutoSaver {
	return &AutoSaver{store: store, interval: interval, now: time.Now, logger: logger}
}

// Due reports whether an auto-save would run now.
func (a *AutoSaver) Due() bool {
	if a.interval <= 0 {
		return false
	}
	return a.last.IsZero() || a.now().Sub(a.last) >= a.interval
}

// MaybeSave saves state if Due and state.Settings.AutoSave are both true.
// saved reports whether a save was written.
func (a *AutoSaver) MaybeSave(state *GameState) (saved bool, err error) {
	if !state.Settings.AutoSave || !a.Due() {
		return false, nil
	}
	if _, err := a.store.Save(state, AutoSlot); err != nil {
		a.logger.Warn("auto-save failed", zap.Error(err))
		return false, err
	}
	a.last = a.now()
	return true, nil
}
