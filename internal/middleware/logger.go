package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// sensitiveHeaderPatterns contains regex patterns for headers that must be
// redacted from logs
var sensitiveHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)authorization`),
	regexp.MustCompile(`(?i)api[-_]?key`),
	regexp.MustCompile(`(?i)token`),
	regexp.MustCompile(`(?i)secret`),
	regexp.MustCompile(`(?i)cookie`),
	regexp.MustCompile(`(?i)session`),
}

// responseWriter is a custom response writer to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// LoggerConfig holds configuration for the logger middleware
type LoggerConfig struct {
	Format string // "json" or "pretty"
}

// LogEntry represents a structured log entry for one request
type LogEntry struct {
	Timestamp   string            `json:"timestamp"`
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	StatusCode  int               `json:"status_code"`
	Latency     string            `json:"latency"`
	ClientIP    string            `json:"client_ip"`
	Headers     map[string]string `json:"headers,omitempty"`
	QueryParams string            `json:"query_params,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// RequestResponseLogger creates a middleware that logs all API requests
func RequestResponseLogger(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		// Restore the body for the next handler after reading it
		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		responseBodyWriter := &responseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBufferString(""),
		}
		c.Writer = responseBodyWriter

		c.Next()

		entry := buildLogEntry(c, time.Since(startTime))
		if config.Format == "pretty" {
			printPrettyLog(entry)
		} else {
			printJSONLog(entry)
		}
	}
}

// buildLogEntry constructs a log entry from request and response data
func buildLogEntry(c *gin.Context, latency time.Duration) LogEntry {
	entry := LogEntry{
		Timestamp:   time.Now().Format(time.RFC3339),
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		StatusCode:  c.Writer.Status(),
		Latency:     latency.String(),
		ClientIP:    c.ClientIP(),
		QueryParams: c.Request.URL.RawQuery,
		Headers:     redactHeaders(c),
	}

	if len(c.Errors) > 0 {
		entry.Error = c.Errors.String()
	}

	return entry
}

// redactHeaders copies the request headers, masking sensitive values
func redactHeaders(c *gin.Context) map[string]string {
	headers := make(map[string]string, len(c.Request.Header))
	for name, values := range c.Request.Header {
		value := strings.Join(values, ", ")
		for _, pattern := range sensitiveHeaderPatterns {
			if pattern.MatchString(name) {
				value = "[REDACTED]"
				break
			}
		}
		headers[name] = value
	}
	return headers
}

// printJSONLog outputs the log entry as a single JSON line
func printJSONLog(entry LogEntry) {
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Printf("Failed to marshal log entry: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// printPrettyLog outputs the log entry in a human-readable format
func printPrettyLog(entry LogEntry) {
	fmt.Printf("[%s] %s %s -> %d (%s) from %s\n",
		entry.Timestamp, entry.Method, entry.Path,
		entry.StatusCode, entry.Latency, entry.ClientIP)
	if entry.Error != "" {
		fmt.Printf("  error: %s\n", entry.Error)
	}
}
