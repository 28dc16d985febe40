package distance

import "errors"

// ErrUnknownMetric is returned when a metric string is neither "m1".."m50" nor "moo".
var ErrUnknownMetric = errors.New("distance: unknown metric")
