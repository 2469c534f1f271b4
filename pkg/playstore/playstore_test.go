package playstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"

	"github.com/playfetch/playfetch/pkg/playstore/pb"
)

// newTestClient returns a logged-in client whose endpoints all point at the
// given test server.
func newTestClient(srv *httptest.Server) *Client {
	c := NewClient(&Config{
		Username:  "user@gmail.com",
		Password:  "hunter2",
		AndroidID: "0123456789abcdef",
		LangCode:  "en_US",
		Lang:      "us",
	}, "", false)
	c.authURL = srv.URL + "/auth"
	c.fdfeURL = srv.URL + "/fdfe/"
	c.storeURL = srv.URL
	c.retrySchedule = []time.Duration{time.Millisecond}
	c.session = &Session{Token: "test-token"}
	return c
}

func marshalWrapper(t *testing.T, wrapper *pb.ResponseWrapper) []byte {
	t.Helper()
	data, err := proto.Marshal(wrapper)
	if err != nil {
		t.Fatalf("failed to marshal response wrapper: %v", err)
	}
	return data
}

func TestExecuteRequestRequiresSession(t *testing.T) {
	c := NewClient(&Config{}, "", false)
	if _, err := c.ExecuteRequest(context.Background(), "details", nil, nil); err != ErrNoSession {
		t.Errorf("ExecuteRequest without session = %v, want ErrNoSession", err)
	}
}

func TestExecuteRequestHeaders(t *testing.T) {
	var got http.Header
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header
		gotMethod = r.Method
		w.Write(marshalWrapper(t, &pb.ResponseWrapper{Payload: &pb.Payload{}}))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	if _, err := c.ExecuteRequest(context.Background(), "details", nil, nil); err != nil {
		t.Fatalf("ExecuteRequest failed: %v", err)
	}

	if gotMethod != "GET" {
		t.Errorf("method = %s, want GET", gotMethod)
	}
	for _, tt := range []struct {
		header string
		want   string
	}{
		{"Authorization", "GoogleLogin auth=test-token"},
		{"X-DFE-Device-Id", "0123456789abcdef"},
		{"X-DFE-Client-Id", "am-android-google"},
		{"Accept-Language", "en_US"},
		{"X-DFE-SmallestScreenWidthDp", "320"},
		{"X-DFE-Filter-Level", "3"},
		{"User-Agent", finskyAgent},
	} {
		if got.Get(tt.header) != tt.want {
			t.Errorf("header %s = %q, want %q", tt.header, got.Get(tt.header), tt.want)
		}
	}
	if got.Get("X-DFE-Enabled-Experiments") == "" || got.Get("X-DFE-Unsupported-Experiments") == "" {
		t.Error("experiments headers not set")
	}
}

func TestExecuteRequestFormPost(t *testing.T) {
	var gotMethod, gotContentType string
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		r.ParseForm()
		gotForm = r.PostForm
		w.Write(marshalWrapper(t, &pb.ResponseWrapper{Payload: &pb.Payload{}}))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	form := url.Values{}
	form.Set("doc", "com.example.app")
	if _, err := c.ExecuteRequest(context.Background(), "purchase", nil, form); err != nil {
		t.Fatalf("ExecuteRequest failed: %v", err)
	}

	if gotMethod != "POST" {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotContentType != "application/x-www-form-urlencoded; charset=UTF-8" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotForm.Get("doc") != "com.example.app" {
		t.Errorf("form doc = %q, want com.example.app", gotForm.Get("doc"))
	}
}

func TestLogout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	c := newTestClient(srv)
	if c.Session() == nil {
		t.Fatal("expected a session")
	}
	c.Logout()
	if c.Session() != nil {
		t.Error("session should be nil after Logout")
	}
	if _, err := c.ExecuteRequest(context.Background(), "details", nil, nil); err != ErrNoSession {
		t.Errorf("ExecuteRequest after Logout = %v, want ErrNoSession", err)
	}
}

func TestPayloadErrorVariant(t *testing.T) {
	wrapper := &pb.ResponseWrapper{
		Commands: &pb.ServerCommands{DisplayErrorMessage: proto.String("Item not found.")},
	}
	if p := payload(wrapper, "testing"); p != nil {
		t.Errorf("payload() on error variant = %v, want nil", p)
	}

	wrapper = &pb.ResponseWrapper{Payload: &pb.Payload{}}
	if p := payload(wrapper, "testing"); p == nil {
		t.Error("payload() on success variant = nil, want payload")
	}
}
