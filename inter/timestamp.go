package inter

import "time"

// Timestamp is a Unix time in nanoseconds.
type Timestamp uint64

// FromTime converts t, dropping its location.
func FromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixNano())
}

// Time returns the timestamp as a UTC time.Time.
func (t Timestamp) Time() time.Time {
	return time.Unix(0, int64(t)).UTC()
}

// Unix returns whole seconds.
func (t Timestamp) Unix() int64 {
	return int64(t) / int64(time.Second)
}

// Canonical is the form used in hash preimages: RFC 3339 in UTC with
// nanoseconds and trailing zeros removed, e.g. "2025-01-01T00:00:00Z".
func (t Timestamp) Canonical() string {
	return t.Time().Format(time.RFC3339Nano)
}

func (t Timestamp) String() string {
	return t.Canonical()
}
