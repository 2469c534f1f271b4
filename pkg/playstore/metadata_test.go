package playstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/protobuf/proto"

	"github.com/playfetch/playfetch/pkg/playstore/pb"
)

func TestAppDetails(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fdfe/details" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("doc")
		w.Write(marshalWrapper(t, &pb.ResponseWrapper{
			Payload: &pb.Payload{
				DetailsResponse: &pb.DetailsResponse{
					DocV2: &pb.DocV2{
						Docid:   proto.String("com.example.app"),
						Title:   proto.String("Example App"),
						Creator: proto.String("Example Inc."),
						Details: &pb.DocumentDetails{
							AppDetails: &pb.AppDetails{
								VersionCode:   proto.Int32(42),
								VersionString: proto.String("1.2.3"),
								PackageName:   proto.String("com.example.app"),
							},
						},
					},
				},
			},
		}))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	details, err := c.AppDetails(context.Background(), "com.example.app")
	if err != nil {
		t.Fatalf("AppDetails failed: %v", err)
	}

	if gotQuery != "com.example.app" {
		t.Errorf("doc query param = %q, want com.example.app", gotQuery)
	}
	if got := details.GetDocV2().GetTitle(); got != "Example App" {
		t.Errorf("title = %q, want Example App", got)
	}
	if got := details.GetDocV2().GetDetails().GetAppDetails().GetVersionCode(); got != 42 {
		t.Errorf("version code = %d, want 42", got)
	}
}

func TestAppDetailsErrorVariant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(marshalWrapper(t, &pb.ResponseWrapper{
			Commands: &pb.ServerCommands{DisplayErrorMessage: proto.String("Item not found.")},
		}))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	details, err := c.AppDetails(context.Background(), "com.example.missing")
	if err != nil {
		t.Fatalf("AppDetails returned a transport error: %v", err)
	}
	if details != nil {
		t.Errorf("details = %v, want nil for the error variant", details)
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fdfe/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("c"); got != "3" {
			t.Errorf("c query param = %q, want 3", got)
		}
		if got := r.URL.Query().Get("q"); got != "example" {
			t.Errorf("q query param = %q, want example", got)
		}
		w.Write(marshalWrapper(t, &pb.ResponseWrapper{
			Payload: &pb.Payload{
				SearchResponse: &pb.SearchResponse{
					Doc: []*pb.DocV2{
						{
							Docid: proto.String("search-results"),
							Child: []*pb.DocV2{
								{Docid: proto.String("com.example.app"), Title: proto.String("Example App")},
								{Docid: proto.String("com.example.other"), Title: proto.String("Other App")},
							},
						},
						{Docid: proto.String("second-cluster")},
					},
				},
			},
		}))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	doc, err := c.Search(context.Background(), "example")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if doc.GetDocid() != "search-results" {
		t.Errorf("docid = %q, want the first result document", doc.GetDocid())
	}
	if len(doc.GetChild()) != 2 {
		t.Errorf("children = %d, want 2", len(doc.GetChild()))
	}
}

func TestSearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(marshalWrapper(t, &pb.ResponseWrapper{
			Payload: &pb.Payload{
				SearchResponse: &pb.SearchResponse{
					OriginalQuery:  proto.String("exmaple"),
					SuggestedQuery: proto.String("example"),
				},
			},
		}))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	doc, err := c.Search(context.Background(), "exmaple")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if doc != nil {
		t.Errorf("doc = %v, want nil for an empty search", doc)
	}
}

func TestBrowseCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fdfe/browse" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("cat"); got != "GAME" {
			t.Errorf("cat query param = %q, want GAME", got)
		}
		w.Write(marshalWrapper(t, &pb.ResponseWrapper{
			Payload: &pb.Payload{
				BrowseResponse: &pb.BrowseResponse{
					Category: []*pb.BrowseLink{
						{Name: proto.String("Action")},
						{Name: proto.String("Arcade")},
					},
				},
			},
		}))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	browse, err := c.BrowseCategories(context.Background(), "GAME")
	if err != nil {
		t.Fatalf("BrowseCategories failed: %v", err)
	}
	if len(browse.GetCategory()) != 2 {
		t.Fatalf("categories = %d, want 2", len(browse.GetCategory()))
	}
	if got := browse.GetCategory()[0].GetName(); got != "Action" {
		t.Errorf("first category = %q, want Action", got)
	}
}

func TestListByCategory(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fdfe/list" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		w.Write(marshalWrapper(t, &pb.ResponseWrapper{
			Payload: &pb.Payload{
				ListResponse: &pb.ListResponse{
					Doc: []*pb.DocV2{
						{Child: []*pb.DocV2{{Docid: proto.String("com.example.app")}}},
					},
				},
			},
		}))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	list, err := c.ListByCategory(context.Background(), "GAME", "apps_topselling_free", 5)
	if err != nil {
		t.Fatalf("ListByCategory failed: %v", err)
	}

	for _, tt := range []struct{ param, want string }{
		{"c", "3"},
		{"cat", "GAME"},
		{"ctr", "apps_topselling_free"},
		{"n", "5"},
	} {
		if got := gotQuery[tt.param]; len(got) != 1 || got[0] != tt.want {
			t.Errorf("query param %s = %v, want %q", tt.param, got, tt.want)
		}
	}
	if len(list.GetDoc()) != 1 {
		t.Errorf("docs = %d, want 1", len(list.GetDoc()))
	}
}
