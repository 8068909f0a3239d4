package sfdc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"github.com/soffa-io/salesforce-gateway/errors"
	"github.com/soffa-io/salesforce-gateway/h"
	shttp "github.com/soffa-io/salesforce-gateway/http"
	"github.com/tidwall/gjson"
	"net/url"
)

// ApiVersion is the Salesforce REST/SOAP API version targeted by the client.
const ApiVersion = "52.0"

const loginEnvelope = `<?xml version="1.0" encoding="utf-8"?>
<env:Envelope xmlns:xsd="http://www.w3.org/2001/XMLSchema"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    xmlns:env="http://schemas.xmlsoap.org/soap/envelope/">
  <env:Body>
    <n1:login xmlns:n1="urn:partner.soap.sforce.com">
      <n1:username>%s</n1:username>
      <n1:password>%s%s</n1:password>
    </n1:login>
  </env:Body>
</env:Envelope>`

// Client speaks the Salesforce wire protocols: SOAP for the initial login,
// REST for everything else.
type Client struct {
	http shttp.Client
}

func NewClient(http shttp.Client) *Client {
	return &Client{http: http}
}

type QueryResponse struct {
	TotalSize int     `json:"totalSize"`
	Done      bool    `json:"done"`
	Records   []h.Map `json:"records"`
}

// Login opens a session using the SOAP partner endpoint. The security token
// is appended to the password, which is what lets API calls in from
// unrecognized network origins.
func (c *Client) Login(creds Credentials) (*Session, error) {
	loginUrl := fmt.Sprintf("https://%s.salesforce.com/services/Soap/u/%s", creds.EffectiveDomain(), ApiVersion)
	envelope := fmt.Sprintf(loginEnvelope,
		xmlEscape(creds.Username),
		xmlEscape(creds.Password),
		xmlEscape(creds.SecurityToken),
	)
	headers := shttp.Headers{
		"Content-Type": "text/xml; charset=UTF-8",
		"SOAPAction":   "login",
	}
	resp, err := c.http.Post(loginUrl, envelope, &headers)
	if err != nil {
		return nil, err
	}

	result := parseLoginResponse(resp.Body)
	if resp.IsError || h.IsStrEmpty(result.sessionId) {
		if !h.IsStrEmpty(result.fault) {
			return nil, errors.New(result.fault)
		}
		return nil, errors.Errorf("login request failed with status %d", resp.Status)
	}

	instance, err := url.Parse(result.serverUrl)
	if err != nil {
		return nil, errors.Wrap(err, "invalid serverUrl in login response")
	}
	return &Session{
		ID:        result.sessionId,
		ServerURL: result.serverUrl,
		BaseURL:   fmt.Sprintf("https://%s/services/data/v%s/", instance.Host, ApiVersion),
	}, nil
}

// Query runs a SOQL statement through the REST query endpoint.
func (c *Client) Query(session *Session, soql string) (*QueryResponse, error) {
	endpoint := fmt.Sprintf("%squery/?q=%s", session.BaseURL, url.QueryEscape(soql))
	headers := c.authHeaders(session)
	resp, err := c.http.Get(endpoint, &headers)
	if err != nil {
		return nil, err
	}
	if resp.IsError {
		return nil, errors.Errorf("query failed with status %d: %s", resp.Status, restErrorMessage(resp.Body))
	}
	var result QueryResponse
	if err := resp.Decode(&result); err != nil {
		return nil, errors.Wrap(err, "unable to decode query response")
	}
	return &result, nil
}

// Limits fetches the org limits payload. The caller decides what a non-200
// status means, so the raw response is returned untouched.
func (c *Client) Limits(session *Session) (shttp.Response, error) {
	headers := c.authHeaders(session)
	return c.http.Get(session.BaseURL+"limits/", &headers)
}

func (c *Client) authHeaders(session *Session) shttp.Headers {
	return shttp.Headers{
		"Authorization": fmt.Sprintf("Bearer %s", session.ID),
		"Content-Type":  "application/json",
	}
}

// restErrorMessage extracts the message of the first error entry from a
// Salesforce REST error body ([{"message": ..., "errorCode": ...}]).
func restErrorMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "0.message"); msg.Exists() {
		return msg.String()
	}
	return string(body)
}

type loginResult struct {
	sessionId string
	serverUrl string
	fault     string
}

func parseLoginResponse(body []byte) loginResult {
	var result loginResult
	decoder := xml.NewDecoder(bytes.NewReader(body))
	current := ""
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			current = t.Name.Local
		case xml.EndElement:
			current = ""
		case xml.CharData:
			switch current {
			case "sessionId":
				result.sessionId = string(t)
			case "serverUrl":
				result.serverUrl = string(t)
			case "faultstring":
				result.fault = string(t)
			}
		}
	}
	return result
}

func xmlEscape(value string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(value))
	return buf.String()
}
