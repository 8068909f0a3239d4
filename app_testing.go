package gateway

import (
	"github.com/gavv/httpexpect/v2"
	"net/http"
	"net/http/httptest"
	"testing"
)

type Tester struct {
	app    *App
	server *httptest.Server
	test   *testing.T
	expect *httpexpect.Expect
}

func NewTester(t *testing.T, app *App) Tester {
	app.bootstrap()
	server := httptest.NewServer(app.router.HttpHandler())
	return Tester{
		app:    app,
		test:   t,
		expect: httpexpect.New(t, server.URL),
		server: server,
	}
}

func (t *Tester) Close() {
	t.server.Close()
}

func (t *Tester) GET(path string) TestRequest {
	return TestRequest{
		request: t.expect.GET(path),
		test:    t.test,
	}
}

func (t *Tester) POST(path string, data interface{}) TestRequest {
	return TestRequest{
		request: t.expect.POST(path).WithJSON(data),
		test:    t.test,
	}
}

type TestRequest struct {
	request *httpexpect.Request
	test    *testing.T
}

type TestResponse struct {
	response *httpexpect.Response
	test     *testing.T
}

type TestResult struct {
	value *httpexpect.Value
}

func (t TestRequest) Expect() TestResponse {
	return TestResponse{
		response: t.request.Expect(),
		test:     t.test,
	}
}

func (t TestResponse) OK() TestResponse {
	t.response.Status(http.StatusOK)
	return t
}

func (t TestResponse) BadRequest() TestResponse {
	t.response.Status(http.StatusBadRequest)
	return t
}

func (t TestResponse) Status(status int) TestResponse {
	t.response.Status(status)
	return t
}

func (t TestResponse) Json(path string) TestResult {
	return TestResult{
		value: t.response.JSON().Path(path),
	}
}

func (t TestResult) Is(value interface{}) TestResult {
	t.value.Equal(value)
	return t
}

func (t TestResult) Contains(value string) TestResult {
	t.value.String().Contains(value)
	return t
}

func (t TestResult) IsTrue() TestResult {
	t.value.Boolean().True()
	return t
}

func (t TestResult) IsFalse() TestResult {
	t.value.Boolean().False()
	return t
}

func (t TestResult) IsArray() TestResult {
	t.value.Array()
	return t
}

func (t TestResult) Length(size int) TestResult {
	t.value.Array().Length().Equal(size)
	return t
}

func (t TestResult) NotEmpty() TestResult {
	t.value.String().NotEmpty()
	return t
}
