package http

import (
	"github.com/go-resty/resty/v2"
	"github.com/soffa-io/salesforce-gateway/errors"
	"github.com/soffa-io/salesforce-gateway/h"
	"time"
)

type Interceptor = func(method string, url string, body interface{}, headers Headers) *Response
type Headers = map[string]string

type Client interface {
	Get(url string, headers *Headers) (Response, error)
	Post(url string, payload interface{}, headers *Headers) (Response, error)
}

type Response struct {
	Status  int
	Body    []byte
	IsError bool
	Err     error
}

type DefaultHttpClient struct {
	client *resty.Client
}

var httpInterceptor Interceptor

// Intercept installs a hook that short-circuits outbound calls.
// Used by tests to simulate the remote platform.
func Intercept(interceptor Interceptor) {
	httpInterceptor = interceptor
}

func NewHttpClient(debug bool) Client {
	client := resty.New()
	client.SetDebug(debug)
	client.SetTimeout(30 * time.Second)
	return DefaultHttpClient{
		client: client,
	}
}

func (c Response) Decode(dest interface{}) error {
	return h.FromJson(c.Body, dest)
}

func (c *Response) WithJsonBody(body interface{}) *Response {
	data, _ := h.ToJson(body)
	c.Body = data
	return c
}

func NewHttpResponse(status int, body interface{}) *Response {
	data, _ := h.ToJson(body)
	return &Response{Status: status, Body: data, IsError: status >= 400}
}

func (c DefaultHttpClient) Get(url string, headers *Headers) (Response, error) {
	hd := Headers{}
	if headers != nil {
		hd = *headers
	}
	if httpInterceptor != nil {
		if response := httpInterceptor("GET", url, nil, hd); response != nil {
			return *response, nil
		}
	}
	return parseResponse(c.client.R().SetHeaders(hd).Get(url))
}

func (c DefaultHttpClient) Post(url string, body interface{}, headers *Headers) (Response, error) {
	hd := Headers{}
	if headers != nil {
		hd = *headers
	}
	if httpInterceptor != nil {
		if response := httpInterceptor("POST", url, body, hd); response != nil {
			return *response, nil
		}
	}
	return parseResponse(c.client.R().
		SetHeaders(hd).
		SetBody(body).
		Post(url))
}

func parseResponse(resp *resty.Response, err error) (Response, error) {
	if err != nil {
		return Response{}, err
	}
	if resp.IsError() {
		err = errors.Errorf("%s", resp.Body())
	}
	return Response{
		Status:  resp.StatusCode(),
		Body:    resp.Body(),
		IsError: resp.IsError(),
		Err:     err,
	}, nil
}
