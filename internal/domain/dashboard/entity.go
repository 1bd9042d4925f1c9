package dashboard

const (
	ColumnDate          = "Date"
	ColumnCandidateName = "Candidate Name"
	ColumnRole          = "Role"
	ColumnInterview     = "Interview"
	ColumnStatus        = "Status"
	ColumnRemark        = "Remark"
	ColumnInterviewer   = "Interviewer"

	ColumnEmployeeName = "Employee Name"
	ColumnJoinDate     = "Join Date"
	ColumnDOB          = "DOB"
	ColumnIDCard       = "ID Card"
)

// FileName is the published name of the merged spreadsheet.
const FileName = "Employee_Dashboard.xlsx"

// InterviewColumns is the header layout of an interview log file.
var InterviewColumns = []string{ColumnDate, ColumnCandidateName, ColumnRole, ColumnInterview, ColumnStatus, ColumnRemark}

// RosterColumns is the header layout of the new-employee roster file.
var RosterColumns = []string{ColumnEmployeeName, ColumnJoinDate, ColumnRole, ColumnDOB, ColumnIDCard, ColumnRemark}

// Columns is the projected dashboard layout. Order is part of the output contract.
var Columns = []string{ColumnEmployeeName, ColumnJoinDate, ColumnRole, ColumnInterviewer}

type InterviewRecord struct {
	Date          string `yaml:"date"`
	CandidateName string `yaml:"candidate_name"`
	Role          string `yaml:"role"`
	Interview     string `yaml:"interview"`
	Status        string `yaml:"status"`
	Remark        string `yaml:"remark"`
	Interviewer   string `yaml:"-"`
}

func (r InterviewRecord) Values() []string {
	return []string{r.Date, r.CandidateName, r.Role, r.Interview, r.Status, r.Remark}
}

// InterviewLog is one interviewer's daily report.
type InterviewLog struct {
	Interviewer string
	Records     []InterviewRecord
}

type RosterEntry struct {
	EmployeeName string `yaml:"employee_name"`
	JoinDate     string `yaml:"join_date"`
	Role         string `yaml:"role"`
	DOB          string `yaml:"dob"`
	IDCard       string `yaml:"id_card"`
	Remark       string `yaml:"remark"`
}

func (e RosterEntry) Values() []string {
	return []string{e.EmployeeName, e.JoinDate, e.Role, e.DOB, e.IDCard, e.Remark}
}

type Row struct {
	EmployeeName string `json:"employee_name"`
	JoinDate     string `json:"join_date"`
	Role         string `json:"role"`
	Interviewer  string `json:"interviewer"`
}

func (r Row) Values() []string {
	return []string{r.EmployeeName, r.JoinDate, r.Role, r.Interviewer}
}
