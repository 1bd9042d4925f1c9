package dashboard

type joinKey struct {
	name string
	role string
}

// Stamp returns a copy of the log's records labelled with its interviewer.
func Stamp(log InterviewLog) []InterviewRecord {
	out := make([]InterviewRecord, 0, len(log.Records))
	for _, r := range log.Records {
		r.Interviewer = log.Interviewer
		out = append(out, r)
	}
	return out
}

// Concat stamps every log and appends them in argument order.
func Concat(logs ...InterviewLog) []InterviewRecord {
	n := 0
	for _, l := range logs {
		n += len(l.Records)
	}
	out := make([]InterviewRecord, 0, n)
	for _, l := range logs {
		out = append(out, Stamp(l)...)
	}
	return out
}

// Join matches roster entries against interview records on (name, role).
// Every match yields one row; roster entries without a match are dropped,
// as are rows with a blank projected cell.
func Join(roster []RosterEntry, interviews []InterviewRecord) []Row {
	index := make(map[joinKey][]string, len(interviews))
	for _, r := range interviews {
		if isBlank(r.CandidateName) || isBlank(r.Role) {
			continue
		}
		k := joinKey{name: r.CandidateName, role: r.Role}
		index[k] = append(index[k], r.Interviewer)
	}

	out := make([]Row, 0, len(roster))
	for _, e := range roster {
		if isBlank(e.EmployeeName) || isBlank(e.Role) {
			continue
		}
		for _, interviewer := range index[joinKey{name: e.EmployeeName, role: e.Role}] {
			row := Row{
				EmployeeName: e.EmployeeName,
				JoinDate:     e.JoinDate,
				Role:         e.Role,
				Interviewer:  interviewer,
			}
			if row.hasBlank() {
				continue
			}
			out = append(out, row)
		}
	}
	return out
}

// Merge runs the full transform and fails when nothing matched.
func Merge(roster []RosterEntry, logs ...InterviewLog) ([]Row, error) {
	rows := Join(roster, Concat(logs...))
	if len(rows) == 0 {
		return nil, ErrNoMatchingRows
	}
	return rows, nil
}

func (r Row) hasBlank() bool {
	for _, v := range r.Values() {
		if isBlank(v) {
			return true
		}
	}
	return false
}

// isBlank reports an empty cell. Whitespace is a value, as in the source sheets.
func isBlank(s string) bool {
	return s == ""
}
