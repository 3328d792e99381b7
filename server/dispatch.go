package server

import (
	"net/http"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/private/protocol/json/jsonutil"

	"scmock/common"
)

const amzTargetHeader = "X-Amz-Target"

// accountHeader optionally overrides the configured account id, so tests
// can exercise account isolation without real credentials
const accountHeader = "X-Mock-Account-Id"

const jsonContentType = "application/x-amz-json-1.1"

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	action := targetAction(r.Header.Get(amzTargetHeader))
	handler, ok := actions[action]
	if !ok {
		writeError(w, &unknownOperationError{Action: action})
		return
	}

	registry := s.catalog.Registry(s.requestAccountID(r), s.requestRegion(r))
	output, err := handler(registry, r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := jsonutil.BuildJSON(output)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", jsonContentType)
	w.Write(body)
}

// targetAction strips the service prefix off the X-Amz-Target value
func targetAction(target string) string {
	if idx := strings.LastIndex(target, "."); idx >= 0 {
		return target[idx+1:]
	}
	return target
}

// requestRegion reads the region out of the SigV4 credential scope, falling
// back to the configured default. The scope has the shape
// "Credential=<key>/<date>/<region>/<service>/aws4_request".
func (s *Server) requestRegion(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	idx := strings.Index(authorization, "Credential=")
	if idx < 0 {
		return s.config.Region
	}
	scope := authorization[idx+len("Credential="):]
	if end := strings.IndexAny(scope, ", "); end >= 0 {
		scope = scope[:end]
	}
	parts := strings.Split(scope, "/")
	if len(parts) < 3 || parts[2] == common.Empty {
		return s.config.Region
	}
	return parts[2]
}

func (s *Server) requestAccountID(r *http.Request) string {
	if accountID := r.Header.Get(accountHeader); accountID != common.Empty {
		return accountID
	}
	return s.config.AccountID
}

// Operations lists the supported action names, sorted
func Operations() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
