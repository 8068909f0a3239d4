package gateway

import (
	"fmt"
	"github.com/soffa-io/salesforce-gateway/h"
	shttp "github.com/soffa-io/salesforce-gateway/http"
	"strings"
	"testing"
)

const validToken = "ABCDEFGHIJKLMNOPQRSTUVWXY"

const fakeLoginOk = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
  <soapenv:Body>
    <loginResponse>
      <result>
        <serverUrl>https://na139.salesforce.com/services/Soap/u/52.0/00D8d000008cABC</serverUrl>
        <sessionId>00D8d000008cABC!FAKESESSION</sessionId>
      </result>
    </loginResponse>
  </soapenv:Body>
</soapenv:Envelope>`

const fakeLoginFailed = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
  <soapenv:Body>
    <soapenv:Fault>
      <faultcode>sf:INVALID_LOGIN</faultcode>
      <faultstring>INVALID_LOGIN: Invalid username, password, security token; or user locked out.</faultstring>
    </soapenv:Fault>
  </soapenv:Body>
</soapenv:Envelope>`

func interceptSalesforce(loginFails bool, queryRecords int) {
	shttp.Intercept(func(method string, url string, body interface{}, headers shttp.Headers) *shttp.Response {
		switch {
		case strings.Contains(url, "/services/Soap/u/"):
			if loginFails {
				return &shttp.Response{Status: 500, Body: []byte(fakeLoginFailed), IsError: true}
			}
			return &shttp.Response{Status: 200, Body: []byte(fakeLoginOk)}
		case strings.Contains(url, "FROM+User"):
			return shttp.NewHttpResponse(200, h.Map{
				"totalSize": 1, "done": true,
				"records": []h.Map{{"Id": "0058d000002yABC", "Name": "Jane Admin", "Email": "jane@acme.example", "Username": "jane@acme.example"}},
			})
		case strings.Contains(url, "FROM+Organization"):
			return shttp.NewHttpResponse(200, h.Map{
				"totalSize": 1, "done": true,
				"records": []h.Map{{"Id": "00D8d000008cABC", "Name": "Acme Corp", "OrganizationType": "Developer Edition"}},
			})
		case strings.Contains(url, "query/?q="):
			records := make([]h.Map, 0, queryRecords)
			for i := 0; i < queryRecords; i++ {
				records = append(records, h.Map{"Id": fmt.Sprintf("0018d00000%04d", i)})
			}
			return shttp.NewHttpResponse(200, h.Map{"totalSize": queryRecords, "done": true, "records": records})
		case strings.HasSuffix(url, "limits/"):
			return shttp.NewHttpResponse(200, h.Map{
				"DailyApiRequests":  h.Map{"Max": 15000, "Remaining": 14998},
				"HourlyApiRequests": h.Map{"Max": 1000, "Remaining": 999},
				"DataStorageMB":     h.Map{"Max": 1024, "Remaining": 1020},
				"FileStorageMB":     h.Map{"Max": 2048, "Remaining": 2040},
			})
		}
		return nil
	})
}

func credentialsPayload(token string) h.Map {
	return h.Map{
		"username":       "jane@acme.example",
		"password":       "secret",
		"security_token": token,
	}
}

func TestHealth(t *testing.T) {
	tester := NewTester(t, NewApp("test"))
	defer tester.Close()

	res := tester.GET("/health").Expect().OK()
	res.Json("$.status").Is("OK")
	res.Json("$.message").NotEmpty()
}

func TestWelcome(t *testing.T) {
	tester := NewTester(t, NewApp("test"))
	defer tester.Close()

	res := tester.GET("/").Expect().OK()
	res.Json("$.message").NotEmpty()
	res.Json("$.endpoints.test_connection").Is("/connection/test")
	res.Json("$.endpoints.api_limits").Is("/limits")
	res.Json("$.endpoints.execute_query").Is("/query")
}

func TestSampleQueries(t *testing.T) {
	tester := NewTester(t, NewApp("test"))
	defer tester.Close()

	res := tester.GET("/sample-queries").Expect().OK()
	res.Json("$.sample_queries").Length(4)
	res.Json("$.sample_queries[0].name").NotEmpty()
	res.Json("$.sample_queries[0].query").Contains("SELECT")
	res.Json("$.sample_queries[0].description").NotEmpty()
}

func TestConnectionTestWithMalformedToken(t *testing.T) {
	tester := NewTester(t, NewApp("test"))
	defer tester.Close()

	res := tester.POST("/connection/test", credentialsPayload("short")).Expect().OK()
	res.Json("$.success").IsFalse()
	res.Json("$.message").Contains("security token")
}

func TestConnectionTestSuccess(t *testing.T) {
	interceptSalesforce(false, 0)
	defer shttp.Intercept(nil)

	tester := NewTester(t, NewApp("test"))
	defer tester.Close()

	res := tester.POST("/connection/test", credentialsPayload(validToken)).Expect().OK()
	res.Json("$.success").IsTrue()
	res.Json("$.user_info.name").Is("Jane Admin")
	res.Json("$.org_info.type").Is("Developer Edition")
}

func TestConnectionTestWithBadCredentials(t *testing.T) {
	interceptSalesforce(true, 0)
	defer shttp.Intercept(nil)

	tester := NewTester(t, NewApp("test"))
	defer tester.Close()

	res := tester.POST("/connection/test", credentialsPayload(validToken)).Expect().OK()
	res.Json("$.success").IsFalse()
	res.Json("$.message").Contains("INVALID_LOGIN")
}

func TestLimitsShortCircuitsOnFailedConnect(t *testing.T) {
	interceptSalesforce(true, 0)
	defer shttp.Intercept(nil)

	tester := NewTester(t, NewApp("test"))
	defer tester.Close()

	res := tester.POST("/limits", credentialsPayload(validToken)).Expect().BadRequest()
	res.Json("$.message").Contains("INVALID_LOGIN")
}

func TestLimits(t *testing.T) {
	interceptSalesforce(false, 0)
	defer shttp.Intercept(nil)

	tester := NewTester(t, NewApp("test"))
	defer tester.Close()

	res := tester.POST("/limits", credentialsPayload(validToken)).Expect().OK()
	res.Json("$.success").IsTrue()
	res.Json("$.data.daily_api_requests.Max").Is(15000)
	res.Json("$.data.file_storage_mb.Remaining").Is(2040)
}

func TestQuery(t *testing.T) {
	interceptSalesforce(false, 12)
	defer shttp.Intercept(nil)

	tester := NewTester(t, NewApp("test"))
	defer tester.Close()

	payload := h.Map{
		"query":       "SELECT Id FROM Account",
		"credentials": credentialsPayload(validToken),
	}
	res := tester.POST("/query", payload).Expect().OK()
	res.Json("$.success").IsTrue()
	res.Json("$.query").Is("SELECT Id FROM Account")
	res.Json("$.result.total_size").Is(12)
	res.Json("$.result.records_count").Is(12)
	res.Json("$.result.records").Length(5)
}

func TestQueryRequiresQueryField(t *testing.T) {
	tester := NewTester(t, NewApp("test"))
	defer tester.Close()

	payload := h.Map{"credentials": credentialsPayload(validToken)}
	res := tester.POST("/query", payload).Expect().BadRequest()
	res.Json("$.code").Is("validation.error")
}
