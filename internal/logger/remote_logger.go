package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
}

// sendLog ships a log entry to the Loki push endpoint in the
// background. A missing REMOTE_LOG_HTTP_URI disables shipping; the env
// var is read directly to keep this package import-free of config.
func sendLog(level, message string, attrs []slog.Attr) {
	go func() {
		remoteURI := os.Getenv("REMOTE_LOG_HTTP_URI")
		if remoteURI == "" {
			return
		}

		jsonData, err := json.Marshal(buildLogEntry(level, message, attrs))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal remote log entry: %v\n", err)
			return
		}

		req, err := http.NewRequest(http.MethodPost, remoteURI, bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create remote log request: %v\n", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to send remote log: %v\n", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			fmt.Fprintf(os.Stderr, "Remote log returned error status: %d\n", resp.StatusCode)
		}
	}()
}

// buildLogEntry shapes a record for the Loki push API.
func buildLogEntry(level, message string, attrs []slog.Attr) map[string]interface{} {
	return map[string]interface{}{
		"streams": []map[string]interface{}{
			{
				"stream": map[string]string{
					"level": level,
					"job":   "product-catalog",
				},
				"values": [][]string{
					{
						fmt.Sprintf("%d", time.Now().UnixNano()),
						buildLogLine(level, message, attrs),
					},
				},
			},
		},
	}
}

func buildLogLine(level, message string, attrs []slog.Attr) string {
	logData := map[string]interface{}{
		"level":   level,
		"message": message,
		"time":    time.Now().Format(time.RFC3339),
	}
	for _, attr := range attrs {
		logData[attr.Key] = attr.Value.Any()
	}

	jsonBytes, _ := json.Marshal(logData)
	return string(jsonBytes)
}
