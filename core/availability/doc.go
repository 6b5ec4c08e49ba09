package availability

// Package availability derives the free time remaining on a calendar day
// after subtracting recurring and one-off blocked intervals. Resolution is
// true set subtraction over minute-of-day ranges, so overlapping blocked
// intervals are handled naturally and the result does not depend on their
// order.
