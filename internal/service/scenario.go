package service

import (
	"errors"
	"fmt"
	"os"
	"time"

	"wearable_display/internal/models"

	"gopkg.in/yaml.v3"
)

// Scenario is a timed list of inputs the simulator replays, loaded from yaml:
//
//	name: walkthrough
//	loop: false
//	steps:
//	  - after: 3s
//	    gesture: SWIPE_LEFT
//	  - after: 5s
//	    navigate: SPL_PLOT_ECG
type Scenario struct {
	Name  string `yaml:"name"`
	Loop  bool   `yaml:"loop"`
	Steps []Step `yaml:"steps"`
}

// Step fires After the previous step. Exactly one action is set.
type Step struct {
	After      time.Duration `yaml:"after"`
	Gesture    string        `yaml:"gesture,omitempty"`
	Navigate   string        `yaml:"navigate,omitempty"`
	BatteryLow *bool         `yaml:"battery_low,omitempty"`
	Progress   *ProgressStep `yaml:"progress,omitempty"`
}

type ProgressStep struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

var errEmptyScenario = errors.New("scenario has no steps")

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return errEmptyScenario
	}
	var errs []error
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid scenario %q: %w", sc.Name, errors.Join(errs...))
	}
	return nil
}

func (st Step) validate() error {
	if st.After < 0 {
		return errors.New("after must not be negative")
	}
	actions := 0
	if st.Gesture != "" {
		actions++
		if _, err := models.ParseGesture(st.Gesture); err != nil {
			return err
		}
	}
	if st.Navigate != "" {
		actions++
		if _, err := models.ParseScreen(st.Navigate); err != nil {
			return err
		}
	}
	if st.BatteryLow != nil {
		actions++
	}
	if st.Progress != nil {
		actions++
		if st.Progress.Title == "" {
			return errors.New("progress title is required")
		}
	}
	if actions != 1 {
		return fmt.Errorf("want exactly one action, got %d", actions)
	}
	return nil
}

// describe names the action for logs.
func (st Step) describe() string {
	switch {
	case st.Gesture != "":
		return "gesture " + st.Gesture
	case st.Navigate != "":
		return "navigate " + st.Navigate
	case st.BatteryLow != nil:
		return fmt.Sprintf("battery_low %t", *st.BatteryLow)
	case st.Progress != nil:
		return "progress " + st.Progress.Title
	}
	return "noop"
}

// scenarioPlayer walks a scenario on simulated time.
type scenarioPlayer struct {
	sc      *Scenario
	next    int
	waited  time.Duration
	stopped bool
}

func newScenarioPlayer(sc *Scenario) *scenarioPlayer {
	if sc == nil || len(sc.Steps) == 0 {
		return &scenarioPlayer{stopped: true}
	}
	return &scenarioPlayer{sc: sc}
}

// advance moves the clock by dt and returns the steps that became due.
func (p *scenarioPlayer) advance(dt time.Duration) []Step {
	if p.stopped {
		return nil
	}
	p.waited += dt
	var due []Step
	for !p.stopped {
		st := p.sc.Steps[p.next]
		if p.waited < st.After {
			break
		}
		p.waited -= st.After
		due = append(due, st)
		p.next++
		if p.next == len(p.sc.Steps) {
			if !p.sc.Loop {
				p.stopped = true
				break
			}
			p.next = 0
			if totalDelay(p.sc) == 0 {
				// a zero-delay loop would spin forever
				p.stopped = true
			}
		}
	}
	return due
}

func (p *scenarioPlayer) done() bool { return p.stopped }

func totalDelay(sc *Scenario) time.Duration {
	var d time.Duration
	for _, st := range sc.Steps {
		d += st.After
	}
	return d
}
