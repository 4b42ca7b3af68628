package usecase

import (
	"context"
	"reflect"
	"testing"

	"github.com/tiw/gaap-web-service/internal/domain"
	"github.com/tiw/gaap-web-service/internal/domain/entity"
)

// Fake TaxonomyRepository for testing
type testTaxonomyRepository struct {
	elements   []string
	labels     map[string]string
	references map[string][]entity.Reference
	roles      map[string][]string
}

func newTestTaxonomyRepository() *testTaxonomyRepository {
	return &testTaxonomyRepository{
		labels:     make(map[string]string),
		references: make(map[string][]entity.Reference),
		roles:      make(map[string][]string),
	}
}

func (r *testTaxonomyRepository) ElementNames(ctx context.Context) []string {
	return r.elements
}

func (r *testTaxonomyRepository) Label(ctx context.Context, name string) (string, bool) {
	label, ok := r.labels[name]
	return label, ok
}

func (r *testTaxonomyRepository) References(ctx context.Context, name string) []entity.Reference {
	return r.references[name]
}

func (r *testTaxonomyRepository) PresentationMetrics(ctx context.Context, roleCode string) []string {
	return r.roles[roleCode]
}

func (r *testTaxonomyRepository) HealthCheck(ctx context.Context) error {
	return nil
}

func (r *testTaxonomyRepository) Version() string {
	return "2025"
}

func TestGet(t *testing.T) {
	repo := newTestTaxonomyRepository()
	repo.labels["Assets"] = "Total Assets"
	repo.references["Assets"] = []entity.Reference{
		{Topic: "210", SubTopic: "10", Section: "S99", Paragraph: "1"},
	}
	repo.labels["Liabilities"] = "Total Liabilities"

	u := NewElementUsecase(repo)
	ctx := context.Background()

	tests := []struct {
		name        string
		elementName string
		wantErr     bool
		wantLabel   string
		wantRefs    int
	}{
		{
			name:        "label and references",
			elementName: "Assets",
			wantLabel:   "Total Assets",
			wantRefs:    1,
		},
		{
			name:        "label only",
			elementName: "Liabilities",
			wantLabel:   "Total Liabilities",
			wantRefs:    0,
		},
		{
			name:        "unknown element",
			elementName: "NonExistentElement",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := u.Get(ctx, tt.elementName)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !domain.IsNotFound(err) {
					t.Errorf("expected not-found error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if info.Label == nil || *info.Label != tt.wantLabel {
				t.Errorf("label = %v, want %q", info.Label, tt.wantLabel)
			}
			if info.References == nil {
				t.Error("references must never be nil")
			}
			if len(info.References) != tt.wantRefs {
				t.Errorf("got %d references, want %d", len(info.References), tt.wantRefs)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	repo := newTestTaxonomyRepository()
	repo.labels["Assets"] = "Total Assets"
	u := NewElementUsecase(repo)
	ctx := context.Background()

	label, err := u.Label(ctx, "Assets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Total Assets" {
		t.Errorf("label = %q, want %q", label, "Total Assets")
	}

	_, err = u.Label(ctx, "NonExistentElement")
	if !domain.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestReferences(t *testing.T) {
	repo := newTestTaxonomyRepository()
	repo.references["Assets"] = []entity.Reference{
		{Topic: "210", SubTopic: "10", Section: "S99", Paragraph: "1"},
		{Topic: "942", SubTopic: "210", Section: "S99", Paragraph: "1"},
	}
	u := NewElementUsecase(repo)
	ctx := context.Background()

	refs, err := u.References(ctx, "Assets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 2 {
		t.Errorf("got %d references, want 2", len(refs))
	}

	_, err = u.References(ctx, "NonExistentElement")
	if !domain.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	repo := newTestTaxonomyRepository()
	repo.elements = []string{"Assets", "Liabilities", "FixedAssets", "Revenue"}
	u := NewElementUsecase(repo)
	ctx := context.Background()

	tests := []struct {
		name      string
		keyword   string
		skip      int
		limit     int
		want      []string
		wantTotal int
		wantErr   bool
	}{
		{
			name:      "case-insensitive substring, schema order preserved",
			keyword:   "assets",
			limit:     100,
			want:      []string{"Assets", "FixedAssets"},
			wantTotal: 2,
		},
		{
			name:      "no matches",
			keyword:   "zzz",
			limit:     100,
			want:      []string{},
			wantTotal: 0,
		},
		{
			name:      "pagination applies after filtering",
			keyword:   "assets",
			skip:      1,
			limit:     100,
			want:      []string{"FixedAssets"},
			wantTotal: 2,
		},
		{
			name:    "blank keyword rejected",
			keyword: "   ",
			limit:   100,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := u.Search(ctx, tt.keyword, tt.skip, tt.limit)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !domain.IsInvalidInput(err) {
					t.Errorf("expected invalid-input error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListPagination(t *testing.T) {
	repo := newTestTaxonomyRepository()
	repo.elements = []string{"A", "B", "C", "D", "E"}
	u := NewElementUsecase(repo)
	ctx := context.Background()

	tests := []struct {
		name  string
		skip  int
		limit int
		want  []string
	}{
		{name: "first page", skip: 0, limit: 2, want: []string{"A", "B"}},
		{name: "middle page", skip: 2, limit: 2, want: []string{"C", "D"}},
		{name: "window past the end is clamped", skip: 4, limit: 10, want: []string{"E"}},
		{name: "skip beyond total yields empty page", skip: 99, limit: 10, want: []string{}},
		{name: "negative skip treated as zero", skip: -3, limit: 2, want: []string{"A", "B"}},
		{name: "negative limit yields empty page", skip: 0, limit: -1, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := u.List(ctx, tt.skip, tt.limit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if total != 5 {
				t.Errorf("total = %d, want 5", total)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("page = %v, want %v", got, tt.want)
			}
		})
	}
}
