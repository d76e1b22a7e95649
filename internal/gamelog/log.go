package gamelog

// New creates a log holding a copy of records, in order.
func New(records []Record) *Log {
	l := &Log{records: make([]Record, len(records))}
	copy(l.records, records)
	return l
}

// Append adds record to the end of the log.
func (l *Log) Append(record Record) {
	l.records = append(l.records, record)
}

// All returns a copy of the full history, oldest first.
func (l *Log) All() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Recent returns the last n records in their original order, or all of them when
// fewer than n exist.
func (l *Log) Recent(n int) []Record {
	if n <= 0 {
		return []Record{}
	}
	start := len(l.records) - n
	if start < 0 {
		start = 0
	}
	out := make([]Record, len(l.records)-start)
	copy(out, l.records[start:])
	return out
}

// Len reports the number of recorded games.
func (l *Log) Len() int {
	return len(l.records)
}
