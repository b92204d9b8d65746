package server

import (
	"fmt"

	"chrono/internal/datetime"
	chronopb "chrono/internal/gen/api"
	"chrono/internal/wallclock"
)

// protoToDateTime validates a wire DateTime and builds the internal
// composite from it.
func protoToDateTime(pb *chronopb.DateTime) (*datetime.DateTime, error) {
	if pb == nil {
		return nil, fmt.Errorf("date_time is required")
	}
	if pb.Date == nil {
		return nil, fmt.Errorf("date_time.date is required")
	}
	if pb.Time == nil {
		return nil, fmt.Errorf("date_time.time is required")
	}
	return datetime.NewDateTime(
		pb.Date.Day, pb.Date.Month, pb.Date.Year, pb.Date.Weekday, pb.Date.YearDay,
		pb.Time.Hours, pb.Time.Minutes, pb.Time.Seconds,
	)
}

// dateTimeToProto flattens the internal composite back onto the wire.
func dateTimeToProto(dt *datetime.DateTime) *chronopb.DateTime {
	d := dt.Date()
	tod := dt.Time()
	return &chronopb.DateTime{
		Date: &chronopb.Date{
			Day:     d.Day(),
			Month:   d.Month(),
			Year:    d.Year(),
			Weekday: d.Weekday(),
			YearDay: d.YearDay(),
		},
		Time: &chronopb.TimeOfDay{
			Hours:   tod.Hours(),
			Minutes: tod.Minutes(),
			Seconds: tod.Seconds(),
		},
	}
}

// partsToDateTime builds the composite from a wall clock decomposition.
func partsToDateTime(p wallclock.Parts) (*datetime.DateTime, error) {
	return datetime.NewDateTime(
		p.Day, p.Month, p.Year, p.Weekday, p.YearDay,
		p.Hour, p.Minute, p.Second,
	)
}
