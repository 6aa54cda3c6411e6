package fiber

import (
	"github.com/vnykmshr/stubfiber/pkg/common/errors"
	"github.com/vnykmshr/stubfiber/pkg/common/validation"
)

// ScheduleCron appends a recurring entry described by a cron expression.
//
// Both the five-field and the six-field (leading seconds) forms are accepted,
// as are descriptors such as "@hourly" and "@every 5m". The expression is
// evaluated once against the configured clock, in the configured location,
// to fill the Delay and Interval labels; like any other entry it runs only
// when the driver executes the scheduled list, and it is not re-armed.
func (s *Stub) ScheduleCron(action Action, expr string) (Timer, error) {
	if err := validation.ValidateNotNil("fiber", "action", action); err != nil {
		return nil, err
	}
	if err := validation.ValidateNotEmpty("fiber", "cron expression", expr); err != nil {
		return nil, err
	}

	schedule, err := s.parser.Parse(expr)
	if err != nil {
		return nil, errors.NewValidationError("fiber", "cron expression", expr, "cannot be parsed").
			WithHint(err.Error())
	}

	now := s.now().In(s.location)
	first := schedule.Next(now)
	if first.IsZero() {
		return nil, errors.NewValidationError("fiber", "cron expression", expr, "never fires").
			WithHint("check the day-of-month and month fields")
	}
	second := schedule.Next(first)

	e := Entry{
		Action: action,
		Delay:  first.Sub(now),
		Cron:   expr,
	}
	if !second.IsZero() {
		e.Interval = second.Sub(first)
	}

	return s.schedule(e), nil
}
