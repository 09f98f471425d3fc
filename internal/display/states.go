package display

import (
	"errors"
	"fmt"
	"time"

	"wearable_display/internal/models"
)

// stateHandlers are the entry/run/exit actions of one state. run returns the
// next state; returning the current state means stay.
type stateHandlers struct {
	entry func(c *Controller, prev models.DisplayState)
	run   func(c *Controller, now time.Time, in *tickInput) models.DisplayState
	exit  func(c *Controller, next models.DisplayState)
}

func newStateTable() map[models.DisplayState]stateHandlers {
	return map[models.DisplayState]stateHandlers{
		models.StateInit:        {entry: (*Controller).enterInit, run: (*Controller).runInit},
		models.StateSplash:      {entry: (*Controller).enterSplash, run: (*Controller).runSplash},
		models.StateBoot:        {entry: (*Controller).enterBoot, run: (*Controller).runBoot, exit: (*Controller).exitBoot},
		models.StateActive:      {entry: (*Controller).enterActive, run: (*Controller).runActive},
		models.StateOn:          {entry: (*Controller).enterOn, run: (*Controller).runOn},
		models.StateScrProgress: {entry: (*Controller).enterProgress, run: (*Controller).runProgress, exit: (*Controller).exitProgress},
		models.StateSleep:       {entry: (*Controller).enterSleep, run: (*Controller).runSleep, exit: (*Controller).exitSleep},
		models.StateOff:         {entry: (*Controller).enterOff, run: (*Controller).runOff},
	}
}

// tickInput is the command backlog collected at the start of a tick.
type tickInput struct {
	gestures []models.Gesture
	navs     []models.NavContext
	powerOff bool
	boot     bool
	progress *command
}

// Tick runs one bounded step of the state machine.
func (c *Controller) Tick() {
	now := c.clock()
	if !c.entered {
		c.entered = true
		c.stateSince = now
		c.enter(c.state, c.state)
	}

	in := c.collect()

	var next models.DisplayState
	if in.powerOff && c.state != models.StateOff {
		next = models.StateOff
	} else {
		next = c.states[c.state].run(c, now, &in)
	}
	if len(in.navs) > 0 {
		c.holdNavigation(in.navs[len(in.navs)-1], next)
	}
	if next != c.state {
		c.transition(next, now)
	}

	c.published.Store(int32(c.state))
	c.keepAwakePub.Store(c.keepAwake)
}

func (c *Controller) collect() tickInput {
	var in tickInput
	c.commands.drain(c.commands.Cap(), func(cmd command) {
		switch cmd.kind {
		case cmdGesture:
			if cmd.gesture == models.GestureLongPress {
				in.powerOff = true
				return
			}
			in.gestures = append(in.gestures, cmd.gesture)
		case cmdNavigate:
			in.navs = append(in.navs, cmd.nav)
		case cmdPowerOff:
			in.powerOff = true
		case cmdBoot:
			in.boot = true
		case cmdKeepAwake:
			c.keepAwake = cmd.enabled
		case cmdBeginProgress:
			p := cmd
			in.progress = &p
		}
	})
	return in
}

func (c *Controller) transition(next models.DisplayState, now time.Time) {
	prev := c.state
	if h := c.states[prev]; h.exit != nil {
		h.exit(c, next)
	}
	c.state = next
	c.stateSince = now
	c.enter(next, prev)

	c.log.Infow("display_state_changed", "from", prev.String(), "to", next.String(), "screen", c.register.Get().String())
	c.emit(models.EventStateChange, fmt.Sprintf("%s -> %s", prev, next),
		map[string]any{"from": prev.String(), "to": next.String()})
}

func (c *Controller) enter(s, prev models.DisplayState) {
	if h := c.states[s]; h.entry != nil {
		h.entry(c, prev)
	}
}

// ---- INIT ----

func (c *Controller) enterInit(models.DisplayState) {
	c.channels.ResetAll()
	c.progress.Reset()
	snap := c.history.Clear()
	c.register.Set(c.cfg.StartScreen)
	c.nav = models.NavContext{Screen: c.cfg.StartScreen}
	c.pendingNav = nil
	c.refresh.resetAll()
	c.bootDone = false
	c.keepAwake = false
	c.lowBattShown = false
	c.setPanel(true)
	c.emit(models.EventScreenClear, "history cleared on init", snap)
}

func (c *Controller) runInit(time.Time, *tickInput) models.DisplayState {
	return models.StateSplash
}

// ---- SPLASH / BOOT ----

func (c *Controller) enterSplash(models.DisplayState) {
	c.renderer.ShowSplash()
}

func (c *Controller) runSplash(now time.Time, _ *tickInput) models.DisplayState {
	c.forwardBootStatus()
	if c.bootDone || now.Sub(c.stateSince) >= c.cfg.SplashTimeout {
		return models.StateBoot
	}
	return models.StateSplash
}

func (c *Controller) enterBoot(models.DisplayState) {
	c.renderer.ShowBoot()
}

func (c *Controller) runBoot(now time.Time, _ *tickInput) models.DisplayState {
	c.forwardBootStatus()
	if c.bootDone {
		return models.StateActive
	}
	if now.Sub(c.stateSince) >= c.cfg.BootTimeout {
		c.log.Warnw("boot_timeout", "after", c.cfg.BootTimeout.String())
		return models.StateActive
	}
	return models.StateBoot
}

func (c *Controller) exitBoot(models.DisplayState) {
	c.progressTitle, c.progressSubtitle = "", ""
}

func (c *Controller) forwardBootStatus() {
	c.channels.Boot.drain(c.cfg.MaxDrainPerTick, func(m models.BootMessage) {
		c.renderer.AddBootStatus(m)
		if m.Complete {
			c.bootDone = true
		}
	})
}

// ---- ACTIVE / ON ----

func (c *Controller) enterActive(prev models.DisplayState) {
	c.power.RegisterActivity()
	if prev == models.StateOn {
		return
	}
	c.nav = models.NavContext{Screen: c.register.Get(), Direction: models.ScrollNone}
	c.refresh.resetAll()
	c.renderer.LoadScreen(c.nav)
}

func (c *Controller) runActive(now time.Time, in *tickInput) models.DisplayState {
	if next, leave := c.foreground(now, in); leave {
		return next
	}
	if c.keepAwake {
		return models.StateOn
	}
	if c.power.ShouldEnterSleep() {
		return models.StateSleep
	}
	return models.StateActive
}

func (c *Controller) enterOn(models.DisplayState) {
	c.log.Debugw("display_keep_awake", "screen", c.register.Get().String())
}

func (c *Controller) runOn(now time.Time, in *tickInput) models.DisplayState {
	if next, leave := c.foreground(now, in); leave {
		return next
	}
	if !c.keepAwake {
		return models.StateActive
	}
	return models.StateOn
}

// foreground is the work shared by ACTIVE and ON. Gestures go first so that
// the activity they register is seen by the sleep check later in the tick.
func (c *Controller) foreground(now time.Time, in *tickInput) (models.DisplayState, bool) {
	for _, g := range in.gestures {
		c.power.RegisterActivity()
		c.dispatchGesture(g)
	}
	if c.pendingNav != nil {
		c.navigate(*c.pendingNav)
		c.pendingNav = nil
	}
	for _, nav := range in.navs {
		c.navigate(nav)
	}
	in.navs = nil

	c.drainPlot()
	c.refreshWidgets(now)
	c.checkLowBattery()

	if in.progress != nil {
		c.progressTitle, c.progressSubtitle = in.progress.title, in.progress.subtitle
		return models.StateScrProgress, true
	}
	return c.state, false
}

// holdNavigation keeps the latest navigation that arrived outside ACTIVE/ON.
// A power-off discards it.
func (c *Controller) holdNavigation(nav models.NavContext, next models.DisplayState) {
	if c.state == models.StateOff || next == models.StateOff {
		c.log.Infow("navigate_dropped", "screen", nav.Screen.String(), "state", c.state.String())
		c.emit(models.EventNavigate, "navigation dropped: display off", map[string]any{
			"to":      nav.Screen.String(),
			"dropped": true,
		})
		return
	}
	if c.pendingNav != nil {
		c.log.Debugw("navigate_superseded", "screen", c.pendingNav.Screen.String())
	}
	c.pendingNav = &nav
	c.log.Debugw("navigate_held", "screen", nav.Screen.String(), "state", c.state.String())
}

func (c *Controller) dispatchGesture(g models.Gesture) {
	cur := c.register.Get()
	h, ok := c.gestures[cur]
	if !ok {
		c.log.Debugw("gesture_unhandled", "screen", cur.String(), "gesture", g.String())
		return
	}
	h(tickNavigator{c: c}, g)
}

func (c *Controller) navigate(nav models.NavContext) {
	if !nav.Screen.Valid() {
		c.log.Warnw("navigate_invalid_screen", "screen", int(nav.Screen))
		return
	}
	from := c.register.Get()
	c.register.Set(nav.Screen)
	c.nav = nav
	c.refresh.resetAll()
	c.renderer.LoadScreen(nav)
	c.emit(models.EventNavigate, fmt.Sprintf("%s -> %s", from, nav.Screen), map[string]any{
		"from":      from.String(),
		"to":        nav.Screen.String(),
		"direction": nav.Direction.String(),
		"args":      nav.Args,
	})
}

// drainPlot forwards at most MaxDrainPerTick records from the channel that
// feeds the current screen. Other channels keep buffering.
func (c *Controller) drainPlot() int {
	limit := c.cfg.MaxDrainPerTick
	switch screenPlotSource[c.register.Get()] {
	case plotECG:
		return c.channels.ECG.drain(limit, func(r models.ECGBioZSample) {
			c.renderer.DrawECG(r.ECGSamples(), r.ECGLeadOff)
		})
	case plotPPGWrist:
		return c.channels.PPGWrist.drain(limit, c.renderer.DrawPPGWrist)
	case plotPPGFinger:
		return c.channels.PPGFinger.drain(limit, c.renderer.DrawPPGFinger)
	}
	return 0
}

func (c *Controller) refreshWidgets(now time.Time) {
	due := c.refresh.due(c.register.Get(), now)
	if len(due) == 0 {
		return
	}
	v := c.vitals.Snapshot()
	for _, w := range due {
		c.renderer.RefreshWidget(w, v)
	}
}

// checkLowBattery shows the low battery screen once per low-battery episode.
func (c *Controller) checkLowBattery() {
	low := c.power.IsLowBattery()
	switch {
	case low && !c.lowBattShown:
		c.lowBattShown = true
		c.emit(models.EventLowBattery, "battery low", nil)
		c.navigate(models.NavContext{Screen: models.ScreenSplLowBattery, Direction: models.ScrollUp})
	case !low:
		c.lowBattShown = false
	}
}

// ---- SCR_PROGRESS ----

func (c *Controller) enterProgress(models.DisplayState) {
	c.renderer.ShowProgress(c.progressTitle, c.progressSubtitle)
	c.emit(models.EventProgress, "progress started: "+c.progressTitle, map[string]any{"title": c.progressTitle})
}

func (c *Controller) runProgress(time.Time, *tickInput) models.DisplayState {
	done := false
	c.progress.drain(c.cfg.MaxDrainPerTick, func(u models.ProgressUpdate) {
		c.renderer.UpdateProgress(u.Percent, u.Message)
		if u.Done {
			done = true
		}
	})
	if done {
		return models.StateActive
	}
	return models.StateScrProgress
}

func (c *Controller) exitProgress(models.DisplayState) {
	c.emit(models.EventProgress, "progress finished: "+c.progressTitle, map[string]any{"title": c.progressTitle})
	c.progressTitle, c.progressSubtitle = "", ""
	c.progress.Reset()
}

// ---- SLEEP ----

func (c *Controller) enterSleep(models.DisplayState) {
	snap := c.history.Save()
	c.emit(models.EventScreenSave, "screen saved for sleep", snap)
	c.setPanel(false)
	c.sleepGen = c.power.activityGeneration()
}

func (c *Controller) runSleep(_ time.Time, in *tickInput) models.DisplayState {
	if len(in.gestures) > 0 || c.power.activityGeneration() != c.sleepGen {
		return models.StateActive
	}
	return models.StateSleep
}

// exitSleep wakes the panel, restores and consumes the snapshot, and drops
// samples buffered while the panel was off.
func (c *Controller) exitSleep(next models.DisplayState) {
	if next == models.StateOff {
		return
	}
	c.setPanel(true)

	id, err := c.history.Restore()
	switch {
	case err == nil:
		c.emit(models.EventScreenRestore, "screen restored on wake", map[string]any{"screen": id.String()})
	case errors.Is(err, ErrNoSavedState):
		c.log.Debugw("wake_without_snapshot", "screen", c.register.Get().String())
	}
	snap := c.history.Clear()
	c.emit(models.EventScreenClear, "snapshot consumed on wake", snap)

	c.channels.ResetAll()
	c.refresh.resetAll()
}

// ---- OFF ----

func (c *Controller) enterOff(prev models.DisplayState) {
	c.setPanel(false)
	snap := c.history.Clear()
	c.channels.ResetAll()
	c.progress.Reset()
	c.keepAwake = false
	c.pendingNav = nil
	c.emit(models.EventPowerOff, "display powered off from "+prev.String(), snap)
}

func (c *Controller) runOff(_ time.Time, in *tickInput) models.DisplayState {
	if in.boot {
		return models.StateInit
	}
	return models.StateOff
}

// ---- helpers ----

func (c *Controller) setPanel(on bool) {
	if c.panel == nil {
		return
	}
	if err := c.panel.SetPower(on); err != nil {
		c.log.Warnw("panel_power_failed", "enable", on, "err", err)
	}
}

func (c *Controller) emit(typ, desc string, meta any) {
	ev := models.DisplayEvent{
		OccurredAt:  c.clock().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	}
	if err := c.events.TryPush(ev); err != nil {
		c.log.Debugw("display_event_dropped", "type", typ, "err", err)
	}
}

type tickNavigator struct{ c *Controller }

func (n tickNavigator) Current() models.ScreenID       { return n.c.register.Get() }
func (n tickNavigator) Navigate(nav models.NavContext) { n.c.navigate(nav) }
