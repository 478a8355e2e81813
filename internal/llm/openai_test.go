package llm

import (
	"net/http"
	"testing"
	"time"

	openaigo "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestRetryDelay(t *testing.T) {
	base := 1 * time.Second
	assert.Equal(t, 1*time.Second, RetryDelay(base, 0))
	assert.Equal(t, 2*time.Second, RetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, RetryDelay(base, 2))
}

func TestIsRetryableStatus(t *testing.T) {
	assert.True(t, isRetryableStatus(&openaigo.APIError{HTTPStatusCode: http.StatusTooManyRequests}))
	assert.True(t, isRetryableStatus(&openaigo.APIError{HTTPStatusCode: http.StatusBadGateway}))
	assert.False(t, isRetryableStatus(&openaigo.APIError{HTTPStatusCode: http.StatusBadRequest}))
	assert.True(t, isRetryableStatus(&openaigo.RequestError{HTTPStatusCode: http.StatusServiceUnavailable}))
	assert.False(t, isRetryableStatus(assert.AnError))
}
