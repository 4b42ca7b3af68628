package taxonomy

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/tiw/gaap-web-service/internal/domain"
	"github.com/tiw/gaap-web-service/internal/domain/entity"
)

// locPattern matches the loc anchors declaring taxonomy elements inside the
// schema document. The schema references its own elements with single-quoted
// fragment-only hrefs.
var locPattern = regexp.MustCompile(`<link:loc xlink:href='#us-gaap_([A-Za-z0-9]+)'`)

// Store resolves taxonomy lookups against the US-GAAP release files on
// disk. It holds no state beyond the file paths: every call re-reads and
// re-parses the relevant file, so concurrent requests never interfere.
type Store struct {
	dir     string
	version string
	logger  *slog.Logger

	schemaFile string
	labelFile  string
	refFile    string
}

// NewStore creates a store for the taxonomy release under dir
func NewStore(dir, version string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		dir:        dir,
		version:    version,
		logger:     logger,
		schemaFile: filepath.Join(dir, "elts", fmt.Sprintf("us-gaap-%s.xsd", version)),
		labelFile:  filepath.Join(dir, "elts", fmt.Sprintf("us-gaap-lab-%s.xml", version)),
		refFile:    filepath.Join(dir, "elts", fmt.Sprintf("us-gaap-ref-%s.xml", version)),
	}
}

var _ domain.TaxonomyRepository = (*Store)(nil)

// Version reports the taxonomy release year
func (s *Store) Version() string {
	return s.version
}

// HealthCheck verifies the schema document is readable
func (s *Store) HealthCheck(ctx context.Context) error {
	f, err := os.Open(s.schemaFile)
	if err != nil {
		return fmt.Errorf("schema document not readable: %w", err)
	}
	return f.Close()
}

// ElementNames scans the schema document for element anchors and returns
// the names deduplicated and sorted. Read failures degrade to an empty
// slice with a logged warning.
func (s *Store) ElementNames(ctx context.Context) []string {
	content, err := os.ReadFile(s.schemaFile)
	if err != nil {
		s.logger.Warn("failed to read schema document", "file", s.schemaFile, "error", err)
		return nil
	}

	seen := make(map[string]struct{})
	for _, m := range locPattern.FindAllSubmatch(content, -1) {
		seen[string(m[1])] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Label resolves the human-readable label of an element from the label
// linkbase. Returns false when the element has no loc anchor or no label is
// reachable directly or through one arc hop.
func (s *Store) Label(ctx context.Context, elementName string) (string, bool) {
	f, err := os.Open(s.labelFile)
	if err != nil {
		s.logger.Warn("failed to open label linkbase", "file", s.labelFile, "error", err)
		return "", false
	}
	defer f.Close()

	idx, err := parseLabelLinkbase(f)
	if err != nil {
		s.logger.Warn("failed to parse label linkbase", "file", s.labelFile, "error", err)
		return "", false
	}

	locID, ok := s.lookupLoc(idx.locLabel, elementName)
	if !ok {
		return "", false
	}
	return idx.resolve(locID)
}

// References resolves the accounting-standard citations of an element from
// the reference linkbase, in document order. Parse failures degrade to an
// empty result.
func (s *Store) References(ctx context.Context, elementName string) []entity.Reference {
	f, err := os.Open(s.refFile)
	if err != nil {
		s.logger.Warn("failed to open reference linkbase", "file", s.refFile, "error", err)
		return nil
	}
	defer f.Close()

	idx, err := parseReferenceLinkbase(f)
	if err != nil {
		s.logger.Warn("failed to parse reference linkbase", "file", s.refFile, "error", err)
		return nil
	}

	locID, ok := s.lookupLoc(idx.locLabel, elementName)
	if !ok {
		return nil
	}
	return idx.resolve(locID)
}

// PresentationMetrics extracts the element names referenced by the
// presentation linkbase of a role code. A missing file yields an empty
// slice; this is the normal case for role codes outside the release.
func (s *Store) PresentationMetrics(ctx context.Context, roleCode string) []string {
	file := filepath.Join(s.dir, "dis", fmt.Sprintf("us-gaap-dis-%s-pre-%s.xml", roleCode, s.version))

	f, err := os.Open(file)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("presentation linkbase absent", "role", roleCode, "file", file)
		} else {
			s.logger.Warn("failed to open presentation linkbase", "file", file, "error", err)
		}
		return nil
	}
	defer f.Close()

	metrics, err := extractPresentationMetrics(f)
	if err != nil {
		s.logger.Warn("failed to parse presentation linkbase", "file", file, "error", err)
		return nil
	}
	return metrics
}

// lookupLoc finds the anchor identifier for an element, first with the
// us-gaap_ prefix and then without it.
func (s *Store) lookupLoc(locLabel map[string]string, elementName string) (string, bool) {
	base := filepath.Base(s.schemaFile)
	if id, ok := locLabel[base+"#us-gaap_"+elementName]; ok {
		return id, true
	}
	if id, ok := locLabel[base+"#"+elementName]; ok {
		return id, true
	}
	return "", false
}

// extractPresentationMetrics collects the element-name fragment of every
// loc href in a presentation linkbase, deduplicated and sorted.
func extractPresentationMetrics(r io.Reader) ([]string, error) {
	idx := make(map[string]struct{})

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Space != nsLinkbase || se.Name.Local != "loc" {
			continue
		}

		href := xlinkAttr(se, "href")
		if i := strings.Index(href, "#us-gaap_"); i >= 0 {
			idx[href[i+len("#us-gaap_"):]] = struct{}{}
		}
	}

	metrics := make([]string, 0, len(idx))
	for m := range idx {
		metrics = append(metrics, m)
	}
	sort.Strings(metrics)
	return metrics, nil
}
