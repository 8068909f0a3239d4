package sfdc

import (
	"fmt"
	"github.com/soffa-io/salesforce-gateway/counters"
	"github.com/soffa-io/salesforce-gateway/errors"
	"github.com/soffa-io/salesforce-gateway/h"
	"github.com/soffa-io/salesforce-gateway/log"
	"github.com/tidwall/gjson"
	"net/http"
	"strings"
)

// maxQueryRecords caps the records embedded in a query payload. This is a
// deliberate truncation, not pagination: records_count still reports the
// true returned total.
const maxQueryRecords = 5

var (
	connectCounter = counters.NewCounter("x_sf_connect", "Salesforce connect attempts", true)
	queryCounter   = counters.NewCounter("x_sf_query", "Salesforce SOQL queries", true)
	limitsCounter  = counters.NewCounter("x_sf_limits", "Salesforce limits fetches", true)
)

type ConnectionResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	UserInfo h.Map  `json:"user_info,omitempty"`
	OrgInfo  h.Map  `json:"org_info,omitempty"`
}

// Connector performs the read-only checks against Salesforce. Every remote
// call site is fault-isolated: failures come back as tagged payloads or a
// success=false result, never as panics.
type Connector struct {
	client *Client
}

func NewConnector(client *Client) *Connector {
	return &Connector{client: client}
}

// Connect validates the token shape, opens a session and runs the two
// auxiliary identity checks. The session is returned as an explicit value
// for the follow-up operations; it is nil whenever Success is false.
func (c *Connector) Connect(creds Credentials) (ConnectionResult, *Session) {
	if !ValidateSecurityToken(creds.SecurityToken) {
		return ConnectionResult{
			Success: false,
			Message: "invalid security token format (expected 25 alphanumeric characters)",
		}, nil
	}

	session, err := c.client.Login(creds)
	if err != nil {
		connectCounter.Err()
		log.Debugf("salesforce login failed for %s: %v", creds.Username, err)
		return ConnectionResult{
			Success: false,
			Message: fmt.Sprintf("salesforce connection failed: %s", errors.Message(err)),
		}, nil
	}
	connectCounter.Inc()

	return ConnectionResult{
		Success:  true,
		Message:  "successfully connected to salesforce",
		UserInfo: c.userInfo(session, creds.Username),
		OrgInfo:  c.orgInfo(session),
	}, session
}

// FetchLimits reads the org API limits and extracts the four usage counters.
func (c *Connector) FetchLimits(session *Session) h.Map {
	if session == nil {
		return h.Map{"error": "salesforce session is not initialized"}
	}
	resp, err := c.client.Limits(session)
	if err != nil {
		limitsCounter.Err()
		return h.Map{"error": errors.Message(err)}
	}
	if resp.Status != http.StatusOK {
		limitsCounter.Err()
		return h.Map{"error": fmt.Sprintf("failed to fetch api limits: %d", resp.Status)}
	}
	limitsCounter.Inc()
	root := gjson.ParseBytes(resp.Body)
	return h.Map{
		"daily_api_requests":  limitField(root, "DailyApiRequests"),
		"hourly_api_requests": limitField(root, "HourlyApiRequests"),
		"data_storage_mb":     limitField(root, "DataStorageMB"),
		"file_storage_mb":     limitField(root, "FileStorageMB"),
	}
}

// RunQuery executes the caller-supplied SOQL verbatim and truncates the
// embedded records to the first maxQueryRecords entries.
func (c *Connector) RunQuery(session *Session, soql string) h.Map {
	if session == nil {
		return h.Map{"error": "salesforce session is not initialized"}
	}
	result, err := c.client.Query(session, soql)
	if err != nil {
		queryCounter.Err()
		return h.Map{"error": errors.Message(err)}
	}
	queryCounter.Inc()

	records := result.Records
	count := len(records)
	if count > maxQueryRecords {
		records = records[:maxQueryRecords]
	}
	return h.Map{
		"total_size":    result.TotalSize,
		"done":          result.Done,
		"records_count": count,
		"records":       records,
	}
}

func (c *Connector) userInfo(session *Session, username string) h.Map {
	soql := fmt.Sprintf("SELECT Id, Name, Email, Username FROM User WHERE Username = '%s' LIMIT 1", escapeSoqlString(username))
	result, err := c.client.Query(session, soql)
	if err != nil {
		return h.Map{"error": errors.Message(err)}
	}
	if len(result.Records) == 0 {
		return h.Map{}
	}
	record := result.Records[0]
	return h.Map{
		"id":       record["Id"],
		"name":     record["Name"],
		"email":    record["Email"],
		"username": record["Username"],
	}
}

func (c *Connector) orgInfo(session *Session) h.Map {
	result, err := c.client.Query(session, "SELECT Id, Name, OrganizationType FROM Organization LIMIT 1")
	if err != nil {
		return h.Map{"error": errors.Message(err)}
	}
	if len(result.Records) == 0 {
		return h.Map{}
	}
	record := result.Records[0]
	return h.Map{
		"id":   record["Id"],
		"name": record["Name"],
		"type": record["OrganizationType"],
	}
}

func limitField(root gjson.Result, key string) interface{} {
	value := root.Get(key)
	if !value.Exists() {
		return h.Map{}
	}
	return value.Value()
}

func escapeSoqlString(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `'`, `\'`)
}
