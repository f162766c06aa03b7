package utils

import (
	"fmt"
	"log"
	"strings"
)

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// LogSecurity is LogEvent for rejected callbacks, tagged so alerts can match on it.
// Never pass signatures or secrets as message.
func LogSecurity(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[SECURITY][%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// KV renders key/value pairs as "k=v k2=v2" for log messages.
func KV(pairs ...any) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v=%v", pairs[i], pairs[i+1])
	}
	return b.String()
}
