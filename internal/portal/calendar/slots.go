package calendar

// Slot is an hour-aligned booking time with a static availability flag.
type Slot struct {
	Time      string
	Available bool
}

// slots is a placeholder table; real availability is not computed against existing bookings.
var slots = []Slot{
	{Time: "07:00", Available: true},
	{Time: "08:00", Available: true},
	{Time: "09:00", Available: true},
	{Time: "10:00", Available: false},
	{Time: "11:00", Available: true},
	{Time: "12:00", Available: true},
	{Time: "13:00", Available: false},
	{Time: "14:00", Available: true},
	{Time: "15:00", Available: true},
	{Time: "16:00", Available: true},
	{Time: "17:00", Available: false},
	{Time: "18:00", Available: true},
}

// Slots returns a copy of the daily slot table.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)

	return out
}

// SlotAvailable reports whether t names a bookable slot.
func SlotAvailable(t string) bool {
	for _, slot := range slots {
		if slot.Time == t {
			return slot.Available
		}
	}

	return false
}
