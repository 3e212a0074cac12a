package date

// Optional makes "no date given" explicit instead of overloading an empty string.
type Optional struct {
	Date  Date
	Valid bool
}

func Some(d Date) Optional {
	return Optional{Date: d, Valid: !d.IsZero()}
}

func None() Optional {
	return Optional{}
}

// ParseOptional maps an empty string to None.
func ParseOptional(value string) (Optional, error) {
	d, err := Parse(value)
	if err != nil {
		return None(), err
	}

	return Some(d), nil
}

func (o Optional) OrElse(fallback Date) Date {
	if o.Valid {
		return o.Date
	}

	return fallback
}

func (o Optional) String() string {
	if !o.Valid {
		return ""
	}

	return o.Date.String()
}

// Range is a filter window whose bounds may be left open.
// An open Start means Floor and an open End means Ceiling.
type Range struct {
	Start Optional
	End   Optional
}

func (r Range) IsOpen() bool {
	return !r.Start.Valid && !r.End.Valid
}

func (r Range) Bounds() (Date, Date) {
	return r.Start.OrElse(Floor), r.End.OrElse(Ceiling)
}

// Overlaps reports whether the stay [checkIn, checkOut) intersects the range.
func (r Range) Overlaps(checkIn, checkOut Date) bool {
	start, end := r.Bounds()

	return checkIn.Before(end) && checkOut.After(start)
}
