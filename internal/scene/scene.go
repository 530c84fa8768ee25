// Package scene turns a list of scripted steps into animations for a bar.
package scene

import (
	"fmt"
	"strings"
	"time"

	"github.com/pablasso/fillbar/internal/anim"
	"github.com/pablasso/fillbar/internal/bar"
)

// Action names a scene step.
type Action string

const (
	ActionSet     Action = "set"     // animate to Value over Duration
	ActionAuto    Action = "auto"    // time-driven Start..End over Duration
	ActionStart   Action = "start"   // auto 0..1 with the bar's duration
	ActionInstant Action = "instant" // jump to Value
	ActionWait    Action = "wait"    // hold for Duration
)

// Step is one scripted action. Durations use time.ParseDuration syntax.
type Step struct {
	Action   Action   `mapstructure:"action" yaml:"action"`
	Value    float64  `mapstructure:"value" yaml:"value,omitempty"`
	Duration string   `mapstructure:"duration" yaml:"duration,omitempty"`
	Start    float64  `mapstructure:"start" yaml:"start,omitempty"`
	End      *float64 `mapstructure:"end" yaml:"end,omitempty"`
}

// ParseAction validates and normalizes an action name.
func ParseAction(value string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(value)))
	switch a {
	case ActionSet, ActionAuto, ActionStart, ActionInstant, ActionWait:
		return a, nil
	default:
		return "", fmt.Errorf("invalid scene action %q (valid: set, auto, start, instant, wait)", value)
	}
}

// DefaultSteps fills to half, pauses, then fills to 100%.
func DefaultSteps() []Step {
	return []Step{
		{Action: ActionSet, Value: 0.5, Duration: "2s"},
		{Action: ActionWait, Duration: "1s"},
		{Action: ActionSet, Value: 1, Duration: "2s"},
		{Action: ActionWait, Duration: "2s"},
	}
}

// Build converts steps into animations bound to b. Nothing happens to b
// until the animations are played.
func Build(b *bar.Bar, steps []Step) ([]anim.Animation, error) {
	anims := make([]anim.Animation, 0, len(steps))
	for i, s := range steps {
		a, err := build(b, s)
		if err != nil {
			return nil, fmt.Errorf("scene step %d: %w", i+1, err)
		}
		anims = append(anims, a)
	}
	return anims, nil
}

// Total returns the summed duration of anims.
func Total(anims []anim.Animation) time.Duration {
	var total time.Duration
	for _, a := range anims {
		total += a.Duration()
	}
	return total
}

func build(b *bar.Bar, s Step) (anim.Animation, error) {
	action, err := ParseAction(string(s.Action))
	if err != nil {
		return nil, err
	}
	d, err := parseDuration(s.Duration)
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionSet:
		return b.SetProgress(s.Value, d), nil
	case ActionAuto:
		end := 1.0
		if s.End != nil {
			end = *s.End
		}
		return b.AutoProgress(d, s.Start, end), nil
	case ActionStart:
		return b.Start(), nil
	case ActionInstant:
		return b.SetProgress(s.Value, 0), nil
	default:
		if d <= 0 {
			return nil, fmt.Errorf("wait needs a positive duration")
		}
		return anim.Wait(d), nil
	}
}

func parseDuration(s string) (time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid duration %q: must not be negative", s)
	}
	return d, nil
}
