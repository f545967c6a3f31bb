package rates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"service-exchangerate/internal"
	"service-exchangerate/internal/mock"
	"service-exchangerate/internal/models"
)

type auditEntry struct {
	path   string
	status int
	asOf   *internal.Date
}

type recordingAudit struct {
	entries []auditEntry
}

func (r *recordingAudit) LogRequest(_ context.Context, _ uuid.UUID, path string, status *int, dateAsOf *internal.Date) error {
	r.entries = append(r.entries, auditEntry{path: path, status: *status, asOf: dateAsOf})
	return nil
}

func envelope(t *testing.T, body string) *internal.Envelope {
	t.Helper()
	var env internal.Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env))
	return &env
}

func newTestServer(t *testing.T) (*mock.MockRequestBuilder, *recordingAudit, *http.ServeMux) {
	t.Helper()
	requests := mock.NewMockRequestBuilder(t)
	audit := &recordingAudit{}
	mux := http.NewServeMux()
	New(internal.NewExchangeRate(requests), audit).Register(mux)
	return requests, audit, mux
}

func get(mux http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Rate(t *testing.T) {
	requests, audit, mux := newTestServer(t)

	requests.EXPECT().
		MakeRequest(testifymock.Anything, internal.PathLive, internal.NewQueryParams("source", "GBP", "currencies", "EUR")).
		Return(envelope(t, `{"success":true,"quotes":{"GBPEUR":1.186864}}`), nil).
		Once()

	rec := get(mux, "/api/v1/rate?from=gbp&to=eur")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"source":"GBP","result":"1.186864"}`, rec.Body.String())
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	require.NoError(t, err)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "/api/v1/rate", audit.entries[0].path)
	assert.Equal(t, http.StatusOK, audit.entries[0].status)
	assert.Nil(t, audit.entries[0].asOf)
}

func TestHandler_ConvertHistoricalMany(t *testing.T) {
	requests, audit, mux := newTestServer(t)

	requests.EXPECT().
		MakeRequest(testifymock.Anything, internal.PathHistorical, internal.NewQueryParams("source", "GBP", "currencies", "EUR,USD", "date", "2021-10-19")).
		Return(envelope(t, `{"success":true,"quotes":{"GBPEUR":1.186206,"GBPUSD":1.376395}}`), nil).
		Once()

	rec := get(mux, "/api/v1/convert?from=GBP&to=EUR,USD&amount=100&date=2021-10-19")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		`{"source":"GBP","date":"2021-10-19","amount":100,"result":{"GBPEUR":"118.62060000","GBPUSD":"137.63950000"}}`+"\n",
		rec.Body.String())
	require.Len(t, audit.entries, 1)
	require.NotNil(t, audit.entries[0].asOf)
	assert.Equal(t, "2021-10-19", audit.entries[0].asOf.String())
}

func TestHandler_ConvertTimeframe(t *testing.T) {
	requests, _, mux := newTestServer(t)

	requests.EXPECT().
		MakeRequest(testifymock.Anything, internal.PathTimeframe, internal.NewQueryParams(
			"source", "GBP",
			"currencies", "EUR",
			"start_date", "2021-10-19",
			"end_date", "2021-10-19",
		)).
		Return(envelope(t, `{"success":true,"quotes":{"2021-10-19":{"GBPEUR":1.186206}}}`), nil).
		Once()

	rec := get(mux, "/api/v1/convert/timeframe?from=GBP&to=EUR&amount=100&start_date=2021-10-19&end_date=2021-10-19")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"source":"GBP","start_date":"2021-10-19","end_date":"2021-10-19","amount":100,"quotes":{"2021-10-19":{"GBPEUR":"118.62060000"}}}`,
		rec.Body.String())
}

func TestHandler_Currencies(t *testing.T) {
	requests, _, mux := newTestServer(t)

	requests.EXPECT().
		MakeRequest(testifymock.Anything, internal.PathList, internal.QueryParams{}).
		Return(envelope(t, `{"success":true,"currencies":{"GBP":"British Pound Sterling","EUR":"Euro"}}`), nil).
		Once()

	rec := get(mux, "/api/v1/currencies")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"currencies":{"GBP":"British Pound Sterling","EUR":"Euro"}}`+"\n", rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(*mock.MockRequestBuilder)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing from",
			target:     "/api/v1/rate?to=EUR",
			wantStatus: http.StatusBadRequest,
			wantCode:   models.CodeBadRequest,
		},
		{
			name:       "bad amount",
			target:     "/api/v1/convert?from=GBP&to=EUR&amount=1.5",
			wantStatus: http.StatusBadRequest,
			wantCode:   models.CodeBadRequest,
		},
		{
			name:       "range required",
			target:     "/api/v1/timeframe?from=GBP&to=EUR&start_date=2021-10-19",
			wantStatus: http.StatusBadRequest,
			wantCode:   models.CodeBadRequest,
		},
		{
			name:       "future date",
			target:     "/api/v1/rate?from=GBP&to=EUR&date=2999-01-01",
			wantStatus: http.StatusBadRequest,
			wantCode:   models.CodeInvalidDate,
		},
		{
			name:       "reversed range",
			target:     "/api/v1/timeframe?from=GBP&to=EUR&start_date=2021-10-20&end_date=2021-10-19",
			wantStatus: http.StatusBadRequest,
			wantCode:   models.CodeInvalidDate,
		},
		{
			name:   "service error",
			target: "/api/v1/rate?from=GBP&to=EUR",
			setup: func(m *mock.MockRequestBuilder) {
				m.EXPECT().
					MakeRequest(testifymock.Anything, internal.PathLive, testifymock.Anything).
					Return(nil, &internal.ServiceError{Code: 101, Type: "missing_access_key", Info: "You have not supplied an API Access Key."}).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   models.CodeServiceError,
		},
		{
			name:   "quote missing",
			target: "/api/v1/rate?from=GBP&to=EUR",
			setup: func(m *mock.MockRequestBuilder) {
				m.EXPECT().
					MakeRequest(testifymock.Anything, internal.PathLive, testifymock.Anything).
					Return(envelope(t, `{"success":true,"quotes":{}}`), nil).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   models.CodeQuoteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests, audit, mux := newTestServer(t)
			if tt.setup != nil {
				tt.setup(requests)
			}

			rec := get(mux, tt.target)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body models.BusinessError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			require.Len(t, audit.entries, 1)
			assert.Equal(t, tt.wantStatus, audit.entries[0].status)
		})
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	_, audit, mux := newTestServer(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/rate", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Len(t, audit.entries, 1)
}
