package playstore

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/protobuf/proto"

	"github.com/playfetch/playfetch/pkg/playstore/pb"
)

func TestDownload(t *testing.T) {
	apkData := bytes.Repeat([]byte{0xca, 0xfe}, 1024)
	obbData := bytes.Repeat([]byte{0x0b}, 500)
	splitData := bytes.Repeat([]byte{0x5e}, 300)

	var srvURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fdfe/details":
			w.Write(marshalWrapper(t, &pb.ResponseWrapper{
				Payload: &pb.Payload{
					DetailsResponse: &pb.DetailsResponse{
						DocV2: &pb.DocV2{
							Docid: proto.String("com.example.app"),
							Title: proto.String("Example App"),
							Offer: []*pb.Offer{{OfferType: proto.Int32(1)}},
							Details: &pb.DocumentDetails{
								AppDetails: &pb.AppDetails{VersionCode: proto.Int32(42)},
							},
						},
					},
				},
			}))
		case "/fdfe/delivery":
			add := entitledDeliveryData(srvURL + "/files/app.apk")
			add.AdditionalFile = []*pb.AppFileMetadata{
				{
					FileType:    proto.Int32(0),
					VersionCode: proto.Int32(42),
					Size:        proto.Int64(int64(len(obbData))),
					DownloadUrl: proto.String(srvURL + "/files/main.obb"),
				},
			}
			add.Split = []*pb.SplitDeliveryData{
				{
					Name:         proto.String("config.arm64_v8a"),
					DownloadSize: proto.Int64(int64(len(splitData))),
					DownloadUrl:  proto.String(srvURL + "/files/split.apk"),
				},
			}
			w.Write(marshalWrapper(t, &pb.ResponseWrapper{
				Payload: &pb.Payload{
					DeliveryResponse: &pb.DeliveryResponse{AppDeliveryData: add},
				},
			}))
		case "/files/app.apk", "/files/main.obb", "/files/split.apk":
			if cookie, err := r.Cookie("MarketDA"); err != nil || cookie.Value != "cookie-value" {
				t.Errorf("artifact request without the delivery auth cookie")
			}
			switch filepath.Base(r.URL.Path) {
			case "app.apk":
				w.Write(apkData)
			case "main.obb":
				w.Write(obbData)
			case "split.apk":
				w.Write(splitData)
			}
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()
	srvURL = srv.URL

	outDir := t.TempDir()
	var progress []int

	c := newTestClient(srv)
	err := c.Download(context.Background(), "com.example.app", &DownloadOptions{
		OutDir:         outDir,
		Tag:            "test",
		ExpansionFiles: true,
		SplitPackages:  true,
		Progress:       func(p int) { progress = append(progress, p) },
	})
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	for _, tt := range []struct {
		name string
		data []byte
	}{
		{"[test] com.example.app.apk", apkData},
		{"[test] main.42.com.example.app.obb", obbData},
		{"[test] config.arm64_v8a.42.com.example.app.apk", splitData},
	} {
		got, err := os.ReadFile(filepath.Join(outDir, tt.name))
		if err != nil {
			t.Errorf("artifact %q not written: %v", tt.name, err)
			continue
		}
		if !bytes.Equal(got, tt.data) {
			t.Errorf("artifact %q has wrong content (%d bytes)", tt.name, len(got))
		}
	}

	if len(progress) == 0 {
		t.Fatal("no progress reported")
	}
	last := -1
	finished := 0
	for _, p := range progress {
		if p <= last && p != 0 {
			t.Errorf("progress not strictly increasing per artifact: %v", progress)
			break
		}
		if p == 100 {
			finished++
			last = -1 // next artifact starts over
			continue
		}
		last = p
	}
	if finished != 3 {
		t.Errorf("progress reached 100 for %d artifacts, want 3", finished)
	}
}

func TestDownloadPurchaseFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fdfe/details":
			w.Write(marshalWrapper(t, &pb.ResponseWrapper{
				Payload: &pb.Payload{
					DetailsResponse: &pb.DetailsResponse{
						DocV2: &pb.DocV2{
							Docid: proto.String("com.example.app"),
							Details: &pb.DocumentDetails{
								AppDetails: &pb.AppDetails{VersionCode: proto.Int32(42)},
							},
						},
					},
				},
			}))
		case "/fdfe/delivery":
			w.Write(marshalWrapper(t, &pb.ResponseWrapper{
				Payload: &pb.Payload{DeliveryResponse: &pb.DeliveryResponse{}},
			}))
		case "/fdfe/purchase":
			w.Write(marshalWrapper(t, &pb.ResponseWrapper{
				Commands: &pb.ServerCommands{DisplayErrorMessage: proto.String("Your device is not compatible.")},
			}))
		}
	}))
	defer srv.Close()

	outDir := t.TempDir()
	c := newTestClient(srv)
	if err := c.Download(context.Background(), "com.example.app", &DownloadOptions{OutDir: outDir}); err == nil {
		t.Fatal("expected an error when the purchase fails")
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("no files should be written when the purchase fails, found %d", len(entries))
	}
}

func TestDownloadAppNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(marshalWrapper(t, &pb.ResponseWrapper{
			Commands: &pb.ServerCommands{DisplayErrorMessage: proto.String("Item not found.")},
		}))
	}))
	defer srv.Close()

	outDir := t.TempDir()
	c := newTestClient(srv)
	if err := c.Download(context.Background(), "com.example.missing", &DownloadOptions{OutDir: outDir}); err == nil {
		t.Fatal("expected an error for an unresolvable app")
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("no files should be written on failure, found %d", len(entries))
	}
}

func TestAddTag(t *testing.T) {
	tests := []struct {
		filename string
		tag      string
		want     string
	}{
		{"com.example.app.apk", "", "com.example.app.apk"},
		{"com.example.app.apk", "test", "[test] com.example.app.apk"},
		{"com.example.app.apk", "'quoted'", "[quoted] com.example.app.apk"},
		{"com.example.app.apk", `"double"`, "[double] com.example.app.apk"},
		{"com.example.app.apk", "  ", "com.example.app.apk"},
	}
	for _, tt := range tests {
		if got := addTag(tt.filename, tt.tag); got != tt.want {
			t.Errorf("addTag(%q, %q) = %q, want %q", tt.filename, tt.tag, got, tt.want)
		}
	}
}
