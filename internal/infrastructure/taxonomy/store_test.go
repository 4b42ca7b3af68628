package taxonomy

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiw/gaap-web-service/internal/domain/entity"
)

const testSchema = `<?xml version="1.0" encoding="utf-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
<xs:annotation><xs:appinfo>
<link:loc xlink:href='#us-gaap_Liabilities' xlink:label='Liabilities'/>
<link:loc xlink:href='#us-gaap_Assets' xlink:label='Assets'/>
<link:loc xlink:href='#us-gaap_Assets' xlink:label='Assets_dup'/>
<link:loc xlink:href='#us-gaap_Revenues' xlink:label='Revenues'/>
</xs:appinfo></xs:annotation>
</xs:schema>`

const testLabelLinkbase = `<?xml version="1.0" encoding="utf-8"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
               xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:labelLink xlink:type="extended">
    <link:loc xlink:type="locator" xlink:href="us-gaap-2025.xsd#us-gaap_Assets" xlink:label="Assets"/>
    <link:label xlink:type="resource" xlink:label="Assets" xml:lang="en-US">Total Assets</link:label>

    <link:loc xlink:type="locator" xlink:href="us-gaap-2025.xsd#us-gaap_Liabilities" xlink:label="loc_Liabilities"/>
    <link:labelArc xlink:type="arc" xlink:from="loc_Liabilities" xlink:to="lab_Liabilities"/>
    <link:label xlink:type="resource" xlink:label="lab_Liabilities" xml:lang="en-US">Total Liabilities</link:label>

    <link:loc xlink:type="locator" xlink:href="us-gaap-2025.xsd#Revenues" xlink:label="Revenues"/>
    <link:label xlink:type="resource" xlink:label="Revenues" xml:lang="en-US">Revenues</link:label>

    <link:loc xlink:type="locator" xlink:href="us-gaap-2025.xsd#us-gaap_Orphan" xlink:label="Orphan"/>
  </link:labelLink>
</link:linkbase>`

const testReferenceLinkbase = `<?xml version="1.0" encoding="utf-8"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
               xmlns:xlink="http://www.w3.org/1999/xlink"
               xmlns:ref="http://www.xbrl.org/2006/ref"
               xmlns:codification-part="http://fasb.org/codification-part/2025">
  <link:referenceLink xlink:type="extended">
    <link:loc xlink:type="locator" xlink:href="us-gaap-2025.xsd#us-gaap_Assets" xlink:label="Assets"/>
    <link:referenceArc xlink:type="arc" xlink:from="Assets" xlink:to="ref_Assets_1"/>
    <link:referenceArc xlink:type="arc" xlink:from="Assets" xlink:to="ref_Assets_2"/>
    <link:reference xlink:type="resource" xlink:label="ref_Assets_1">
      <codification-part:URI>https://asc.fasb.org/1943274/2147483467/210-10-S99-1</codification-part:URI>
      <codification-part:Topic>210</codification-part:Topic>
      <codification-part:SubTopic>10</codification-part:SubTopic>
      <ref:Section>S99</ref:Section>
      <ref:Paragraph>1</ref:Paragraph>
    </link:reference>
    <link:reference xlink:type="resource" xlink:label="ref_Assets_2">
      <codification-part:Topic>942</codification-part:Topic>
      <ref:Section>45</ref:Section>
    </link:reference>
  </link:referenceLink>
</link:linkbase>`

const testPresentationLinkbase = `<?xml version="1.0" encoding="utf-8"?>
<link:linkbase xmlns:link="http://www.xbrl.org/2003/linkbase"
               xmlns:xlink="http://www.w3.org/1999/xlink">
  <link:presentationLink xlink:type="extended">
    <link:loc xlink:type="locator" xlink:href="us-gaap-2025.xsd#us-gaap_Liabilities" xlink:label="Liabilities"/>
    <link:loc xlink:type="locator" xlink:href="us-gaap-2025.xsd#us-gaap_Assets" xlink:label="Assets"/>
    <link:loc xlink:type="locator" xlink:href="us-gaap-2025.xsd#us-gaap_Assets" xlink:label="Assets_dup"/>
    <link:presentationArc xlink:type="arc" xlink:from="Assets" xlink:to="Liabilities"/>
  </link:presentationLink>
</link:linkbase>`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStore lays out a minimal taxonomy release in a temp dir
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()

	eltsDir := filepath.Join(dir, "elts")
	disDir := filepath.Join(dir, "dis")
	require.NoError(t, os.MkdirAll(eltsDir, 0o755))
	require.NoError(t, os.MkdirAll(disDir, 0o755))

	files := map[string]string{
		filepath.Join(eltsDir, "us-gaap-2025.xsd"):           testSchema,
		filepath.Join(eltsDir, "us-gaap-lab-2025.xml"):       testLabelLinkbase,
		filepath.Join(eltsDir, "us-gaap-ref-2025.xml"):       testReferenceLinkbase,
		filepath.Join(disDir, "us-gaap-dis-bc-pre-2025.xml"): testPresentationLinkbase,
	}
	for path, content := range files {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return NewStore(dir, "2025", testLogger())
}

func TestElementNames(t *testing.T) {
	store := newTestStore(t)

	names := store.ElementNames(context.Background())
	assert.Equal(t, []string{"Assets", "Liabilities", "Revenues"}, names,
		"names must be deduplicated and sorted")
}

func TestElementNamesMissingSchema(t *testing.T) {
	store := NewStore(t.TempDir(), "2025", testLogger())

	names := store.ElementNames(context.Background())
	assert.Empty(t, names)
}

func TestLabel(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		elementName string
		wantLabel   string
		wantFound   bool
	}{
		{name: "direct label", elementName: "Assets", wantLabel: "Total Assets", wantFound: true},
		{name: "label through one arc hop", elementName: "Liabilities", wantLabel: "Total Liabilities", wantFound: true},
		{name: "anchor without element prefix", elementName: "Revenues", wantLabel: "Revenues", wantFound: true},
		{name: "anchor with no reachable label", elementName: "Orphan", wantFound: false},
		{name: "unknown element", elementName: "NonExistentElement", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, found := store.Label(ctx, tt.elementName)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestLabelMalformedLinkbase(t *testing.T) {
	store := newTestStore(t)
	labelFile := filepath.Join(store.dir, "elts", "us-gaap-lab-2025.xml")
	require.NoError(t, os.WriteFile(labelFile, []byte("<link:linkbase>"), 0o644))

	_, found := store.Label(context.Background(), "Assets")
	assert.False(t, found, "malformed linkbase must degrade to absent, not panic")
}

func TestReferences(t *testing.T) {
	store := newTestStore(t)

	refs := store.References(context.Background(), "Assets")
	require.Len(t, refs, 2, "every arc target's references accumulate")

	assert.Equal(t, entity.Reference{
		URI:       "https://asc.fasb.org/1943274/2147483467/210-10-S99-1",
		Topic:     "210",
		SubTopic:  "10",
		Section:   "S99",
		Paragraph: "1",
	}, refs[0])

	assert.Equal(t, entity.Reference{
		Topic:   "942",
		Section: "45",
	}, refs[1])
}

func TestReferencesUnknownElement(t *testing.T) {
	store := newTestStore(t)

	refs := store.References(context.Background(), "NonExistentElement")
	assert.Empty(t, refs)
}

func TestPresentationMetrics(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	metrics := store.PresentationMetrics(ctx, "bc")
	assert.Equal(t, []string{"Assets", "Liabilities"}, metrics,
		"metrics must be deduplicated and sorted")

	assert.Empty(t, store.PresentationMetrics(ctx, "nosuchrole"),
		"missing presentation file is not an error")
}

func TestHealthCheck(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.HealthCheck(context.Background()))

	empty := NewStore(t.TempDir(), "2025", testLogger())
	assert.Error(t, empty.HealthCheck(context.Background()))
}
