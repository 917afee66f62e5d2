package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogger_LoggingError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name                 string
		setupContext         func(c *gin.Context)
		err                  error
		errDescription       string
		logLevel             zapcore.Level
		expectedToContain    []string
		expectedToNotContain []string
	}{
		{
			name:           "Logs request info without a run",
			setupContext:   func(c *gin.Context) {},
			err:            errors.New("store offline"),
			errDescription: "sync run ended with status authorization_error",
			logLevel:       zapcore.ErrorLevel,
			expectedToContain: []string{
				`"level":"error"`,
				`"msg":"sync run ended with status authorization_error"`,
				`"error":"store offline"`,
				`"http_method":"POST"`,
				`"http_path":"/api/v1/sync"`,
			},
			expectedToNotContain: []string{
				"run_id",
			},
		},
		{
			name: "Logs the run id when present",
			setupContext: func(c *gin.Context) {
				c.Set(RunIDContextKey, "run-1")
			},
			err:            errors.New("connection refused"),
			errDescription: "sync run ended with status transport_failure",
			logLevel:       zapcore.WarnLevel,
			expectedToContain: []string{
				`"level":"warn"`,
				`"run_id":"run-1"`,
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var buffer bytes.Buffer
			core := zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(&buffer),
				zapcore.DebugLevel,
			)
			logger := NewLogger(zap.New(core))

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/sync", nil)
			tc.setupContext(c)

			logger.LoggingError(c, tc.err, tc.errDescription, tc.logLevel)
			logOutput := buffer.String()
			for _, expected := range tc.expectedToContain {
				assert.Contains(t, logOutput, expected)
			}
			for _, notExpected := range tc.expectedToNotContain {
				assert.NotContains(t, logOutput, notExpected)
			}
		})
	}
}
