package rates

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"service-exchangerate/internal"
	"service-exchangerate/internal/logger"
	"service-exchangerate/internal/models"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

type Handler struct {
	rates  *internal.ExchangeRate
	logger internal.RequestAuditLogger
}

func New(r *internal.ExchangeRate, l internal.RequestAuditLogger) *Handler {
	if l == nil {
		l = internal.NopAuditLogger{}
	}
	return &Handler{rates: r, logger: l}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/currencies", h.serve(h.getCurrencies))
	mux.HandleFunc("/api/v1/rate", h.serve(h.getRate))
	mux.HandleFunc("/api/v1/timeframe", h.serve(h.getTimeframe))
	mux.HandleFunc("/api/v1/convert", h.serve(h.getConvert))
	mux.HandleFunc("/api/v1/convert/timeframe", h.serve(h.getConvertTimeframe))
}

type RateResponse struct {
	Source internal.CurrencyCode `json:"source"`
	Date   *internal.Date        `json:"date,omitempty"`
	Amount *int64                `json:"amount,omitempty"`
	Result internal.QuoteResult  `json:"result"`
}

type TimeframeResponse struct {
	Source    internal.CurrencyCode `json:"source"`
	StartDate internal.Date         `json:"start_date"`
	EndDate   internal.Date         `json:"end_date"`
	Amount    *int64                `json:"amount,omitempty"`
	Quotes    internal.Timeframe    `json:"quotes"`
}

type CurrenciesResponse struct {
	Currencies internal.Currencies `json:"currencies"`
}

// endpointFunc returns the response body and the as-of date recorded in the audit log.
type endpointFunc func(ctx context.Context, q url.Values) (any, *internal.Date, error)

func (h *Handler) serve(fn endpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New()
		w.Header().Set(RequestIDHeader, requestID.String())

		if r.Method != http.MethodGet {
			st := http.StatusMethodNotAllowed
			writeJSON(w, st, models.BizError(models.CodeMethod, "only GET is supported"))
			h.audit(r, requestID, st, nil)
			return
		}

		out, asOf, err := fn(r.Context(), r.URL.Query())
		if err != nil {
			st := writeErr(w, err)
			h.audit(r, requestID, st, asOf)
			return
		}

		st := http.StatusOK
		writeJSON(w, st, out)
		h.audit(r, requestID, st, asOf)
	}
}

func (h *Handler) audit(r *http.Request, requestID uuid.UUID, status int, asOf *internal.Date) {
	if err := h.logger.LogRequest(r.Context(), requestID, r.URL.Path, &status, asOf); err != nil {
		logger.Log.Warn().Err(err).Str("request_id", requestID.String()).Msg("audit log failed")
	}
}

func (h *Handler) getCurrencies(ctx context.Context, _ url.Values) (any, *internal.Date, error) {
	currencies, err := h.rates.Currencies(ctx)
	if err != nil {
		return nil, nil, err
	}
	return CurrenciesResponse{Currencies: currencies}, nil, nil
}

func (h *Handler) getRate(ctx context.Context, q url.Values) (any, *internal.Date, error) {
	from, to, err := parsePair(q)
	if err != nil {
		return nil, nil, err
	}
	date, err := optionalDate(q, "date")
	if err != nil {
		return nil, nil, err
	}

	res, err := h.rates.ExchangeRate(ctx, from, to, date)
	if err != nil {
		return nil, date, err
	}
	return RateResponse{Source: from, Date: date, Result: res}, date, nil
}

func (h *Handler) getConvert(ctx context.Context, q url.Values) (any, *internal.Date, error) {
	amount, err := parseAmount(q)
	if err != nil {
		return nil, nil, err
	}
	from, to, err := parsePair(q)
	if err != nil {
		return nil, nil, err
	}
	date, err := optionalDate(q, "date")
	if err != nil {
		return nil, nil, err
	}

	res, err := h.rates.Convert(ctx, amount, from, to, date)
	if err != nil {
		return nil, date, err
	}
	return RateResponse{Source: from, Date: date, Amount: &amount, Result: res}, date, nil
}

func (h *Handler) getTimeframe(ctx context.Context, q url.Values) (any, *internal.Date, error) {
	from, to, err := parsePair(q)
	if err != nil {
		return nil, nil, err
	}
	start, end, err := parseRange(q)
	if err != nil {
		return nil, nil, err
	}

	quotes, err := h.rates.ExchangeRateBetweenDateRange(ctx, from, to, start, end)
	if err != nil {
		return nil, &end, err
	}
	return TimeframeResponse{Source: from, StartDate: start, EndDate: end, Quotes: quotes}, &end, nil
}

func (h *Handler) getConvertTimeframe(ctx context.Context, q url.Values) (any, *internal.Date, error) {
	amount, err := parseAmount(q)
	if err != nil {
		return nil, nil, err
	}
	from, to, err := parsePair(q)
	if err != nil {
		return nil, nil, err
	}
	start, end, err := parseRange(q)
	if err != nil {
		return nil, nil, err
	}

	quotes, err := h.rates.ConvertBetweenDateRange(ctx, amount, from, to, start, end)
	if err != nil {
		return nil, &end, err
	}
	return TimeframeResponse{Source: from, StartDate: start, EndDate: end, Amount: &amount, Quotes: quotes}, &end, nil
}

func parsePair(q url.Values) (internal.CurrencyCode, internal.Targets, error) {
	from, err := internal.NewCurrencyCode(q.Get("from"))
	if err != nil {
		return "", internal.Targets{}, models.BizError(models.CodeBadRequest, "from: "+err.Error())
	}
	to, err := internal.ParseTargets(q.Get("to"))
	if err != nil {
		return "", internal.Targets{}, models.BizError(models.CodeBadRequest, "to: "+err.Error())
	}
	return from, to, nil
}

func optionalDate(q url.Values, name string) (*internal.Date, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	d, err := internal.ParseDate(raw)
	if err != nil {
		return nil, models.BizError(models.CodeBadRequest, name+" must be YYYY-MM-DD")
	}
	return &d, nil
}

func parseRange(q url.Values) (internal.Date, internal.Date, error) {
	start, err := optionalDate(q, "start_date")
	if err != nil {
		return internal.Date{}, internal.Date{}, err
	}
	end, err := optionalDate(q, "end_date")
	if err != nil {
		return internal.Date{}, internal.Date{}, err
	}
	if start == nil || end == nil {
		return internal.Date{}, internal.Date{}, models.BizError(models.CodeBadRequest, "start_date and end_date are required")
	}
	return *start, *end, nil
}

func parseAmount(q url.Values) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(q.Get("amount")), 10, 64)
	if err != nil {
		return 0, models.BizError(models.CodeBadRequest, "amount must be an integer")
	}
	return amount, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeErr(w http.ResponseWriter, err error) int {
	status, body := classify(err)
	if status == http.StatusInternalServerError {
		logger.Log.Error().Err(err).Msg("request failed")
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, status, body)
	return status
}

func classify(err error) (int, models.BusinessError) {
	var dateErr *internal.InvalidDateError
	var svcErr *internal.ServiceError
	var bizErr *models.BusinessError

	switch {
	case errors.As(err, &dateErr):
		return http.StatusBadRequest, models.BusinessError{Code: models.CodeInvalidDate, Message: dateErr.Reason}
	case errors.As(err, &bizErr):
		return http.StatusBadRequest, *bizErr
	case errors.As(err, &svcErr):
		return http.StatusBadGateway, models.BusinessError{Code: models.CodeServiceError, Message: svcErr.Info, ServiceCode: svcErr.Code}
	case errors.Is(err, internal.ErrQuoteNotFound):
		return http.StatusBadGateway, models.BusinessError{Code: models.CodeQuoteNotFound, Message: err.Error()}
	default:
		return http.StatusInternalServerError, models.BusinessError{Code: models.CodeInternal, Message: "internal error"}
	}
}
