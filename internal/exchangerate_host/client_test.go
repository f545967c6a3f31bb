package exchangerateHost

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service-exchangerate/internal"
)

type recordingDoer struct {
	urls   []string
	status int
	body   string
	err    error
}

func (d *recordingDoer) Do(req *http.Request) (*http.Response, error) {
	d.urls = append(d.urls, req.URL.String())
	if d.err != nil {
		return nil, d.err
	}
	status := d.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(d.body)),
		Header:     make(http.Header),
	}, nil
}

func TestClient_MakeRequest_URL(t *testing.T) {
	doer := &recordingDoer{body: `{"success":true,"quotes":{}}`}
	c := New(WithHTTPClient(doer))

	_, err := c.MakeRequest(context.Background(), internal.PathTimeframe, internal.NewQueryParams(
		"source", "GBP",
		"currencies", "EUR",
		"start_date", "2021-10-19",
		"end_date", "2021-10-20",
	))
	require.NoError(t, err)

	require.Len(t, doer.urls, 1)
	assert.Equal(t,
		"http://api.exchangerate.host/timeframe?source=GBP&currencies=EUR&start_date=2021-10-19&end_date=2021-10-20&access_key=",
		doer.urls[0])
}

func TestClient_SetOptions(t *testing.T) {
	doer := &recordingDoer{body: `{"success":true}`}
	c := New(WithHTTPClient(doer))

	c.SetOptions(internal.WithTLS(true))
	c.SetOptions(internal.WithAccessKey("123"))

	_, err := c.MakeRequest(context.Background(), internal.PathTimeframe, internal.NewQueryParams("foo", "bar", "access_key", "caller"))
	require.NoError(t, err)

	assert.Equal(t, internal.ServiceOptions{TLS: true, AccessKey: "123"}, c.Options())
	assert.Equal(t, "https://api.exchangerate.host/timeframe?foo=bar&access_key=123", doer.urls[0])
}

func TestClient_URL_EscapesLists(t *testing.T) {
	c := New()
	got := c.URL(internal.PathLive, internal.NewQueryParams("source", "GBP", "currencies", "EUR,USD"))
	assert.Equal(t, "http://api.exchangerate.host/live?source=GBP&currencies=EUR%2CUSD&access_key=", got)
}

func TestClient_MakeRequest_ServiceError(t *testing.T) {
	doer := &recordingDoer{body: `{"success":false,"error":{"code":101,"type":"missing_access_key","info":"You have not supplied an API Access Key. [Required format: access_key=YOUR_ACCESS_KEY]"}}`}
	c := New(WithHTTPClient(doer))

	env, err := c.MakeRequest(context.Background(), internal.PathLive, internal.QueryParams{})

	assert.Nil(t, env)
	var svcErr *internal.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 101, svcErr.Code)
	assert.Equal(t, "missing_access_key", svcErr.Type)
	assert.True(t, strings.HasPrefix(svcErr.Error(), "You have not supplied an API Access Key"))
}

func TestClient_MakeRequest_FailureWithoutErrorObject(t *testing.T) {
	doer := &recordingDoer{body: `{"success":false}`}
	_, err := New(WithHTTPClient(doer)).MakeRequest(context.Background(), internal.PathList, internal.QueryParams{})

	var svcErr *internal.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "request was not successful", svcErr.Info)
}

func TestClient_MakeRequest_BadJSON(t *testing.T) {
	doer := &recordingDoer{body: `<html>`}
	_, err := New(WithHTTPClient(doer)).MakeRequest(context.Background(), internal.PathList, internal.QueryParams{})
	require.ErrorContains(t, err, "unmarshal response")
}

func TestClient_MakeRequest_TransportError(t *testing.T) {
	boom := errors.New("connection refused")
	doer := &recordingDoer{err: boom}
	_, err := New(WithHTTPClient(doer)).MakeRequest(context.Background(), internal.PathList, internal.QueryParams{})
	require.ErrorIs(t, err, boom)
}

func TestClient_MakeRequest_HTTPServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/list":
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.Equal(t, "access_key=k", r.URL.RawQuery)
			_, _ = io.WriteString(w, `{"success":true,"currencies":{"GBP":"British Pound Sterling"}}`)
		default:
			http.Error(w, "upstream down", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	c := New(WithHTTPClient(srv.Client()), WithMetrics(metrics))
	c.Host = strings.TrimPrefix(srv.URL, "http://")
	c.SetOptions(internal.WithAccessKey("k"))

	env, err := c.MakeRequest(context.Background(), internal.PathList, internal.QueryParams{})
	require.NoError(t, err)
	currencies, err := env.Currencies()
	require.NoError(t, err)
	assert.Equal(t, 1, currencies.Len())

	_, err = c.MakeRequest(context.Background(), internal.PathLive, internal.QueryParams{})
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(internal.PathList, outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(internal.PathLive, outcomeHTTPError)))
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, outcomeOK, outcomeOf(nil))
	assert.Equal(t, outcomeServiceError, outcomeOf(&internal.ServiceError{}))
	assert.Equal(t, outcomeHTTPError, outcomeOf(&HTTPError{StatusCode: 502}))
	assert.Equal(t, outcomeFailed, outcomeOf(errors.New("x")))

	var m *Metrics
	m.observe("list", outcomeOK, 0)
}
