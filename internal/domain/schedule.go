package domain

// ScheduleLine is the standing per-shift quantity for one product.
type ScheduleLine struct {
	ProductID     string
	LitersMorning float64
	LitersEvening float64
}

// Total returns the liters across both shifts.
func (l ScheduleLine) Total() float64 {
	return l.LitersMorning + l.LitersEvening
}

// Liters returns the quantity for the given shift.
func (l ScheduleLine) Liters(s Shift) float64 {
	if s == ShiftEvening {
		return l.LitersEvening
	}
	return l.LitersMorning
}

// Schedule is the customer's recurring order. Lines are unique by ProductID;
// a product with no line is ordered in zero quantity on both shifts.
type Schedule struct {
	Lines []ScheduleLine
}

// Line returns the line for productID, if any.
func (s Schedule) Line(productID string) (ScheduleLine, bool) {
	for _, l := range s.Lines {
		if l.ProductID == productID {
			return l, true
		}
	}
	return ScheduleLine{}, false
}

// Clone returns a deep copy so callers can edit a draft without aliasing.
func (s Schedule) Clone() Schedule {
	if s.Lines == nil {
		return Schedule{}
	}
	lines := make([]ScheduleLine, len(s.Lines))
	copy(lines, s.Lines)
	return Schedule{Lines: lines}
}

// WithLine returns a copy of s where productID's line has the given quantities.
// Existing lines keep their position; new lines are appended.
func (s Schedule) WithLine(line ScheduleLine) Schedule {
	next := s.Clone()
	for i, l := range next.Lines {
		if l.ProductID == line.ProductID {
			next.Lines[i] = line
			return next
		}
	}
	next.Lines = append(next.Lines, line)
	return next
}

// Step returns a copy of s with delta liters added to one shift of productID,
// clamped at zero.
func (s Schedule) Step(productID string, shift Shift, delta float64) Schedule {
	line, ok := s.Line(productID)
	if !ok {
		line = ScheduleLine{ProductID: productID}
	}
	switch shift {
	case ShiftEvening:
		line.LitersEvening = ClampLiters(line.LitersEvening + delta)
	default:
		line.LitersMorning = ClampLiters(line.LitersMorning + delta)
	}
	return s.WithLine(line)
}

// ClampLiters floors a quantity at zero.
func ClampLiters(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
