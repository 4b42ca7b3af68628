package usecase

import (
	"context"
	"strings"

	"github.com/tiw/gaap-web-service/internal/domain"
	"github.com/tiw/gaap-web-service/internal/domain/entity"
)

// ElementUsecase defines the interface for taxonomy element resolution
type ElementUsecase interface {
	// List returns one page of element names plus the total count.
	List(ctx context.Context, skip, limit int) ([]string, int, error)
	// Get returns the full resolution of one element.
	Get(ctx context.Context, elementName string) (*entity.ElementInfo, error)
	// Label returns the element's human-readable label.
	Label(ctx context.Context, elementName string) (string, error)
	// References returns the element's accounting-standard citations.
	References(ctx context.Context, elementName string) ([]entity.Reference, error)
	// Search returns one page of element names matching keyword plus the
	// total match count.
	Search(ctx context.Context, keyword string, skip, limit int) ([]string, int, error)
}

type elementUsecase struct {
	repo domain.TaxonomyRepository
}

// NewElementUsecase creates a new element usecase
func NewElementUsecase(repo domain.TaxonomyRepository) ElementUsecase {
	return &elementUsecase{repo: repo}
}

// List returns a page of all element names in the schema
func (u *elementUsecase) List(ctx context.Context, skip, limit int) ([]string, int, error) {
	all := u.repo.ElementNames(ctx)
	return paginate(all, skip, limit), len(all), nil
}

// Get resolves label and references for an element. An element with
// neither a label nor references is reported as not found.
func (u *elementUsecase) Get(ctx context.Context, elementName string) (*entity.ElementInfo, error) {
	info := &entity.ElementInfo{
		ElementName: elementName,
		References:  []entity.Reference{},
	}

	if label, ok := u.repo.Label(ctx, elementName); ok {
		info.Label = &label
	}
	if refs := u.repo.References(ctx, elementName); len(refs) > 0 {
		info.References = refs
	}

	if !info.Found() {
		return nil, domain.NewNotFoundError("element", elementName)
	}
	return info, nil
}

// Label resolves the element's label
func (u *elementUsecase) Label(ctx context.Context, elementName string) (string, error) {
	label, ok := u.repo.Label(ctx, elementName)
	if !ok {
		return "", domain.NewNotFoundError("label for element", elementName)
	}
	return label, nil
}

// References resolves the element's citations
func (u *elementUsecase) References(ctx context.Context, elementName string) ([]entity.Reference, error) {
	refs := u.repo.References(ctx, elementName)
	if len(refs) == 0 {
		return nil, domain.NewNotFoundError("references for element", elementName)
	}
	return refs, nil
}

// Search filters element names by case-insensitive substring match,
// preserving schema order.
func (u *elementUsecase) Search(ctx context.Context, keyword string, skip, limit int) ([]string, int, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, 0, domain.NewInvalidInputError("keyword must not be empty")
	}

	needle := strings.ToLower(keyword)
	var matched []string
	for _, name := range u.repo.ElementNames(ctx) {
		if strings.Contains(strings.ToLower(name), needle) {
			matched = append(matched, name)
		}
	}

	return paginate(matched, skip, limit), len(matched), nil
}

// paginate slices items by skip/limit, clamping out-of-range windows to
// an empty page rather than failing.
func paginate(items []string, skip, limit int) []string {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if skip >= len(items) {
		return []string{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
