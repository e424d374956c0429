package domain

// Table names. The exporter uses these verbatim for sheet or file names.
const (
	TableOverview   = "Trip Overview"
	TableMeetings   = "Meetings"
	TableContacts   = "Contacts Directory"
	TableSummary    = "Summary"
	TableDataIssues = "Data Issues"
)

// MeetingColumns is the fixed column contract for the Meetings table.
// Downstream tooling relies on column identity, so order never changes.
var MeetingColumns = []string{
	"Customer Account Name",
	"Meeting Date",
	"Meeting Time",
	"Meeting City",
	"Meeting Address",
	"Meeting Owner",
	"Primary Contact Name",
	"Primary Contact Email",
	"Meeting Status",
	"Company Description",
}

// ContactColumns is the fixed column set for the Contacts Directory table.
var ContactColumns = []string{
	"Account ID",
	"Account Name",
	"Contact ID",
	"Name",
	"Title",
	"Email",
	"Phone",
	"Primary",
}

// IssueColumns is the fixed column set for the Data Issues table.
var IssueColumns = []string{
	"Severity",
	"Entity",
	"Entity ID",
	"Field",
	"Message",
	"Suggested Fix",
}

// Table is one named output table: a header row plus string cell rows.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Report is the assembled five-table output handed to an Exporter.
type Report struct {
	Overview   Table
	Meetings   Table
	Contacts   Table
	Summary    Table
	DataIssues Table
}

// Tables returns the report tables in their canonical output order.
func (r Report) Tables() []Table {
	return []Table{r.Overview, r.Meetings, r.Contacts, r.Summary, r.DataIssues}
}
