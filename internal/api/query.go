package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"logpage/internal/logwindow"
)

// Query parameter names understood by every log endpoint.
const (
	ParamAppID      = "appId"
	ParamExecutorID = "executorId"
	ParamDriverID   = "driverId"
	ParamLogType    = "logType"
	ParamOffset     = "offset"
	ParamByteLength = "byteLength"
)

// LogQuery carries the raw request parameters of a window request.
type LogQuery struct {
	AppID      string
	ExecutorID string
	DriverID   string
	LogType    string
	Offset     *int64
	ByteLength *int32
}

// ParseLogQuery reads a LogQuery from URL values. Blank integers count as
// absent; malformed ones are ErrInvalidRequest.
func ParseLogQuery(values url.Values) (LogQuery, error) {
	q := LogQuery{
		AppID:      strings.TrimSpace(values.Get(ParamAppID)),
		ExecutorID: strings.TrimSpace(values.Get(ParamExecutorID)),
		DriverID:   strings.TrimSpace(values.Get(ParamDriverID)),
		LogType:    strings.TrimSpace(values.Get(ParamLogType)),
	}
	if raw := strings.TrimSpace(values.Get(ParamOffset)); raw != "" {
		offset, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return LogQuery{}, fmt.Errorf("%w: %s must be an integer: %q", logwindow.ErrInvalidRequest, ParamOffset, raw)
		}
		q.Offset = &offset
	}
	if raw := strings.TrimSpace(values.Get(ParamByteLength)); raw != "" {
		length, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return LogQuery{}, fmt.Errorf("%w: %s must be a 32-bit integer: %q", logwindow.ErrInvalidRequest, ParamByteLength, raw)
		}
		n := int32(length)
		q.ByteLength = &n
	}
	return q, nil
}

// Request validates the identifiers and builds the core request.
func (q LogQuery) Request() (logwindow.Request, error) {
	ref, err := logwindow.NewRef(q.AppID, q.ExecutorID, q.DriverID)
	if err != nil {
		return logwindow.Request{}, err
	}
	if strings.TrimSpace(q.LogType) == "" {
		return logwindow.Request{}, fmt.Errorf("%w: %s is required", logwindow.ErrInvalidRequest, ParamLogType)
	}
	return logwindow.Request{
		Ref:     ref,
		LogType: q.LogType,
		Offset:  q.Offset,
		Length:  q.ByteLength,
	}, nil
}

// Values encodes q back into query parameters, omitting empty fields.
func (q LogQuery) Values() url.Values {
	values := url.Values{}
	setIf := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			values.Set(key, value)
		}
	}
	setIf(ParamAppID, q.AppID)
	setIf(ParamExecutorID, q.ExecutorID)
	setIf(ParamDriverID, q.DriverID)
	setIf(ParamLogType, q.LogType)
	if q.Offset != nil {
		values.Set(ParamOffset, strconv.FormatInt(*q.Offset, 10))
	}
	if q.ByteLength != nil {
		values.Set(ParamByteLength, strconv.FormatInt(int64(*q.ByteLength), 10))
	}
	return values
}

// AtPage returns a copy of q pointing at page.
func (q LogQuery) AtPage(page logwindow.Page) LogQuery {
	offset, length := page.Offset, page.Length
	q.Offset = &offset
	q.ByteLength = &length
	return q
}
