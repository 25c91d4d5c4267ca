package temporal

import "github.com/klntsky/temporal-api/calendar"

type fromDateProps struct {
	engine calendar.Engine
}

// FromDateOption configures a RelativeDate under construction.
type FromDateOption func(*fromDateProps)

// WithEngine injects a custom calendar engine into the builder. The
// default is the proleptic Gregorian engine operating in the UTC calendar;
// replacing it is mostly useful for testing resolution behaviour or for
// alternative calendar systems.
func WithEngine(engine calendar.Engine) FromDateOption {
	return func(props *fromDateProps) {
		props.engine = engine
	}
}
