//go:build integration
// +build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/network/netpoll"

	"github.com/tiw/gaap-web-service/internal/handler"
	"github.com/tiw/gaap-web-service/internal/infrastructure/taxonomy"
	"github.com/tiw/gaap-web-service/internal/router"
	"github.com/tiw/gaap-web-service/internal/usecase"
)

const testServerAddr = "127.0.0.1:18080"

const integrationSchema = `<?xml version="1.0" encoding="utf-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
<xs:annotation><xs:appinfo>
<link:loc xlink:href='#us-gaap_Assets' xlink:label='Assets'/>
<link:loc xlink:href='#us-gaap_Liabilities' xlink:label='Liabilities'/>
</xs:appinfo></xs:annotation>
</xs:schema>`

const integrationLabelLinkbase = `<?xml version="1.0" encoding="utf-8"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
               xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:labelLink xlink:type="extended">
    <link:loc xlink:type="locator" xlink:href="us-gaap-2025.xsd#us-gaap_Assets" xlink:label="Assets"/>
    <link:label xlink:type="resource" xlink:label="Assets" xml:lang="en-US">Total Assets</link:label>

    <link:loc xlink:type="locator" xlink:href="us-gaap-2025.xsd#us-gaap_Liabilities" xlink:label="loc_Liabilities"/>
    <link:labelArc xlink:type="arc" xlink:from="loc_Liabilities" xlink:to="lab_Liabilities"/>
    <link:label xlink:type="resource" xlink:label="lab_Liabilities" xml:lang="en-US">Total Liabilities</link:label>
  </link:labelLink>
</link:linkbase>`

const integrationReferenceLinkbase = `<?xml version="1.0" encoding="utf-8"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
               xmlns:xlink="http://www.w3.org/1999/xlink"
               xmlns:ref="http://www.xbrl.org/2006/ref"
               xmlns:codification-part="http://fasb.org/codification-part/2025">
  <link:referenceLink xlink:type="extended">
    <link:loc xlink:type="locator" xlink:href="us-gaap-2025.xsd#us-gaap_Assets" xlink:label="Assets"/>
    <link:referenceArc xlink:type="arc" xlink:from="Assets" xlink:to="ref_Assets"/>
    <link:reference xlink:type="resource" xlink:label="ref_Assets">
      <codification-part:Topic>210</codification-part:Topic>
      <codification-part:SubTopic>10</codification-part:SubTopic>
      <ref:Section>S99</ref:Section>
      <ref:Paragraph>1</ref:Paragraph>
    </link:reference>
  </link:referenceLink>
</link:linkbase>`

// writeTaxonomyFixture lays out a minimal release under a temp dir
func writeTaxonomyFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	eltsDir := filepath.Join(dir, "elts")
	if err := os.MkdirAll(eltsDir, 0o755); err != nil {
		t.Fatalf("failed to create fixture dir: %v", err)
	}

	files := map[string]string{
		"us-gaap-2025.xsd":     integrationSchema,
		"us-gaap-lab-2025.xml": integrationLabelLinkbase,
		"us-gaap-ref-2025.xml": integrationReferenceLinkbase,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(eltsDir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}
	return dir
}

// TestElementHTTP exercises the full stack over a real socket:
// store, usecases, handlers, middleware, router.
func TestElementHTTP(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	dir := writeTaxonomyFixture(t)
	store := taxonomy.NewStore(dir, "2025", logger)

	elementUC := usecase.NewElementUsecase(store)
	elementHandler := handler.NewElementHandler(elementUC)
	healthHandler := handler.NewHealthHandler(store)

	h := server.New(
		server.WithHostPorts(testServerAddr),
		server.WithTransport(netpoll.NewTransporter),
	)
	router.Setup(h, elementHandler, healthHandler, t.TempDir())

	go h.Spin()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Shutdown(ctx)
	}()
	waitForServer(t)

	t.Run("label resolves directly", func(t *testing.T) {
		status, body := httpGet(t, "/element/Assets/label")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", status, body)
		}
		want := `{"element_name":"Assets","label":"Total Assets"}`
		if body != want {
			t.Errorf("body = %s, want %s", body, want)
		}
	})

	t.Run("label resolves through arc", func(t *testing.T) {
		status, body := httpGet(t, "/element/Liabilities/label")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", status, body)
		}
		var got struct {
			Label string `json:"label"`
		}
		if err := json.Unmarshal([]byte(body), &got); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if got.Label != "Total Liabilities" {
			t.Errorf("label = %q, want %q", got.Label, "Total Liabilities")
		}
	})

	t.Run("unknown element yields 404", func(t *testing.T) {
		status, body := httpGet(t, "/element/NonExistentElement/label")
		if status != http.StatusNotFound {
			t.Fatalf("status = %d, want 404, body: %s", status, body)
		}
	})

	t.Run("full resolution includes references", func(t *testing.T) {
		status, body := httpGet(t, "/element/Assets")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", status, body)
		}
		var got struct {
			ElementName string `json:"element_name"`
			References  []struct {
				Topic     string `json:"topic"`
				Section   string `json:"section"`
				Paragraph string `json:"paragraph"`
			} `json:"references"`
		}
		if err := json.Unmarshal([]byte(body), &got); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if len(got.References) != 1 {
			t.Fatalf("got %d references, want 1", len(got.References))
		}
		if got.References[0].Topic != "210" || got.References[0].Section != "S99" {
			t.Errorf("unexpected reference: %+v", got.References[0])
		}
	})

	t.Run("search filters and paginates", func(t *testing.T) {
		status, body := httpGet(t, "/search?keyword=asset")
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200, body: %s", status, body)
		}
		var got struct {
			Total    int      `json:"total"`
			Elements []string `json:"elements"`
		}
		if err := json.Unmarshal([]byte(body), &got); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if got.Total != 1 || len(got.Elements) != 1 || got.Elements[0] != "Assets" {
			t.Errorf("unexpected search result: %+v", got)
		}
	})

	t.Run("readiness probe reports ready", func(t *testing.T) {
		status, _ := httpGet(t, "/health/ready")
		if status != http.StatusOK {
			t.Errorf("status = %d, want 200", status)
		}
	})
}

func waitForServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: time.Second}
	for i := 0; i < 50; i++ {
		resp, err := client.Get(fmt.Sprintf("http://%s/ping", testServerAddr))
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatal("server did not become ready")
}

func httpGet(t *testing.T, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(fmt.Sprintf("http://%s%s", testServerAddr, path))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp.StatusCode, string(body)
}
