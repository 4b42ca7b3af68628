package handler

import (
	"context"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"

	"github.com/tiw/gaap-web-service/internal/domain"
	"github.com/tiw/gaap-web-service/internal/domain/entity"
)

// Fake ElementUsecase for testing
type testElementUsecase struct {
	labels     map[string]string
	references map[string][]entity.Reference
	elements   []string
}

func (u *testElementUsecase) List(ctx context.Context, skip, limit int) ([]string, int, error) {
	return u.elements, len(u.elements), nil
}

func (u *testElementUsecase) Get(ctx context.Context, elementName string) (*entity.ElementInfo, error) {
	label, hasLabel := u.labels[elementName]
	refs := u.references[elementName]
	if !hasLabel && len(refs) == 0 {
		return nil, domain.NewNotFoundError("element", elementName)
	}
	info := &entity.ElementInfo{ElementName: elementName, References: []entity.Reference{}}
	if hasLabel {
		info.Label = &label
	}
	if len(refs) > 0 {
		info.References = refs
	}
	return info, nil
}

func (u *testElementUsecase) Label(ctx context.Context, elementName string) (string, error) {
	if label, ok := u.labels[elementName]; ok {
		return label, nil
	}
	return "", domain.NewNotFoundError("label for element", elementName)
}

func (u *testElementUsecase) References(ctx context.Context, elementName string) ([]entity.Reference, error) {
	if refs := u.references[elementName]; len(refs) > 0 {
		return refs, nil
	}
	return nil, domain.NewNotFoundError("references for element", elementName)
}

func (u *testElementUsecase) Search(ctx context.Context, keyword string, skip, limit int) ([]string, int, error) {
	if keyword == "" {
		return nil, 0, domain.NewInvalidInputError("keyword must not be empty")
	}
	return u.elements, len(u.elements), nil
}

func newTestEngine() *route.Engine {
	uc := &testElementUsecase{
		labels: map[string]string{"Assets": "Total Assets"},
		references: map[string][]entity.Reference{
			"Assets": {{Topic: "210", SubTopic: "10", Section: "S99", Paragraph: "1"}},
		},
		elements: []string{"Assets", "FixedAssets"},
	}
	h := NewElementHandler(uc)

	engine := route.NewEngine(config.NewOptions(nil))
	engine.GET("/elements", h.List)
	engine.GET("/element/:name", h.Get)
	engine.GET("/element/:name/label", h.GetLabel)
	engine.GET("/element/:name/references", h.GetReferences)
	engine.GET("/search", h.Search)
	return engine
}

func TestGetLabelEndpoint(t *testing.T) {
	engine := newTestEngine()

	w := ut.PerformRequest(engine, "GET", "/element/Assets/label", nil)
	resp := w.Result()

	assert.Equal(t, consts.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"element_name":"Assets","label":"Total Assets"}`, string(resp.Body()))
}

func TestGetLabelEndpointNotFound(t *testing.T) {
	engine := newTestEngine()

	w := ut.PerformRequest(engine, "GET", "/element/NonExistentElement/label", nil)
	resp := w.Result()

	assert.Equal(t, consts.StatusNotFound, resp.StatusCode())
	assert.JSONEq(t,
		`{"code":"NOT_FOUND","message":"label for element 'NonExistentElement' not found"}`,
		string(resp.Body()))
}

func TestGetElementEndpoint(t *testing.T) {
	engine := newTestEngine()

	w := ut.PerformRequest(engine, "GET", "/element/Assets", nil)
	resp := w.Result()

	assert.Equal(t, consts.StatusOK, resp.StatusCode())
	assert.JSONEq(t,
		`{"element_name":"Assets","label":"Total Assets","references":[{"topic":"210","subtopic":"10","section":"S99","paragraph":"1"}]}`,
		string(resp.Body()))
}

func TestSearchEndpointRejectsBlankKeyword(t *testing.T) {
	engine := newTestEngine()

	w := ut.PerformRequest(engine, "GET", "/search", nil)
	resp := w.Result()

	assert.Equal(t, consts.StatusBadRequest, resp.StatusCode())
}

func TestListEndpointRejectsMalformedPaging(t *testing.T) {
	engine := newTestEngine()

	w := ut.PerformRequest(engine, "GET", "/elements?skip=abc", nil)
	resp := w.Result()

	assert.Equal(t, consts.StatusBadRequest, resp.StatusCode())
	assert.JSONEq(t,
		`{"code":"BAD_REQUEST","message":"skip must be an integer"}`,
		string(resp.Body()))
}
