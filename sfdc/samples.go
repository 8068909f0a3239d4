package sfdc

type SampleQuery struct {
	Name        string `json:"name"`
	Query       string `json:"query"`
	Description string `json:"description"`
}

// SampleQueries returns ready-to-run SOQL statements exposed by the API for
// quick manual testing.
func SampleQueries() []SampleQuery {
	return []SampleQuery{
		{
			Name:        "Users",
			Query:       "SELECT Id, Name, Email, Username FROM User LIMIT 5",
			Description: "Fetch users registered in the org",
		},
		{
			Name:        "Accounts",
			Query:       "SELECT Id, Name, Type, Industry FROM Account LIMIT 10",
			Description: "Fetch account (company) records",
		},
		{
			Name:        "Opportunities",
			Query:       "SELECT Id, Name, StageName, Amount, CloseDate FROM Opportunity WHERE Amount > 0 LIMIT 10",
			Description: "Fetch opportunity records with a positive amount",
		},
		{
			Name:        "Organization",
			Query:       "SELECT Id, Name, OrganizationType, InstanceName FROM Organization",
			Description: "Fetch basic information about the org",
		},
	}
}
