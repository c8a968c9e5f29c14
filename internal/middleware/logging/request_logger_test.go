package loggingmw

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/hotel_menu/internal/logging"
)

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var last []byte
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		last = append([]byte(nil), sc.Bytes()...)
	}
	require.NotEmpty(t, last)
	var m map[string]any
	require.NoError(t, json.Unmarshal(last, &m))
	return m
}

func TestRequestLogger_InjectsLoggerAndLogsStatus(t *testing.T) {
	var buf bytes.Buffer
	base := logging.NewWithWriter(&buf, "info")

	e := echo.New()
	e.Use(RequestLogger(base))
	e.GET("/orders", func(c echo.Context) error {
		logging.FromContext(c.Request().Context()).Info("inside_handler")
		return c.JSON(http.StatusOK, []string{})
	})

	req := httptest.NewRequest(http.MethodGet, "/orders?sessionId=session_1_abc", nil)
	req.Header.Set(echo.HeaderXRequestID, "rid-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rid-1", rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, buf.String(), `"msg":"inside_handler"`)

	line := lastLine(t, &buf)
	assert.Equal(t, "request completed", line["msg"])
	assert.EqualValues(t, 200, line["status"])
	assert.Equal(t, "session_1_abc", line["session_id"])
	assert.Equal(t, "rid-1", line["request_id"])
}

func TestRequestLogger_HTTPErrorIsRendered(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogger(logging.NewWithWriter(&buf, "info")))
	e.DELETE("/order-history", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "no order history found")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/order-history", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no order history found")

	line := lastLine(t, &buf)
	assert.Equal(t, "WARN", line["level"])
	assert.EqualValues(t, 404, line["status"])
}
