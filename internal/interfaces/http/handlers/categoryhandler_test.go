package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogdto "modcms/internal/application/catalog/dto"
	"modcms/internal/interfaces/http/handlers/testutil"
	"modcms/internal/shared/errors"
	"modcms/internal/shared/logger"
)

func newCategoryHandler() (*CategoryHandler, *mockCategoryService) {
	svc := new(mockCategoryService)
	return NewCategoryHandler(svc, logger.NewNop()), svc
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	handler, svc := newCategoryHandler()
	req := catalogdto.CreateCategoryRequest{Name: "Events", Code: "events"}
	svc.On("CreateCategory", mock.Anything, req).Return(&catalogdto.CategoryResponse{ID: 1, Name: "Events", Code: "events"}, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/categories", req)
	handler.CreateCategory(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data catalogdto.CategoryResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "events", data.Code)
	svc.AssertExpectations(t)
}

func TestCategoryHandler_CreateCategory_BindingFailure(t *testing.T) {
	handler, svc := newCategoryHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/categories", map[string]string{"name": "Events"})
	handler.CreateCategory(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, string(errors.KindInvalidRequest), resp.Error.Kind)
	svc.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
}

func TestCategoryHandler_CreateCategory_Duplicate(t *testing.T) {
	handler, svc := newCategoryHandler()
	svc.On("CreateCategory", mock.Anything, mock.Anything).
		Return(nil, errors.New(errors.KindDuplicateCode, "category code already exists", "events"))

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/categories", catalogdto.CreateCategoryRequest{Name: "Events", Code: "events"})
	handler.CreateCategory(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, string(errors.KindDuplicateCode), resp.Error.Kind)
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		setup      func(svc *mockCategoryService)
		wantStatus int
	}{
		{
			name:  "found",
			param: "3",
			setup: func(svc *mockCategoryService) {
				svc.On("GetCategory", mock.Anything, uint(3)).Return(&catalogdto.CategoryResponse{ID: 3}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "unknown",
			param: "9",
			setup: func(svc *mockCategoryService) {
				svc.On("GetCategory", mock.Anything, uint(9)).Return(nil, errors.New(errors.KindUnknownCategory, "category not found"))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			param:      "abc",
			setup:      func(*mockCategoryService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, svc := newCategoryHandler()
			tt.setup(svc)

			c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/categories/"+tt.param, nil)
			testutil.SetURLParam(c, "id", tt.param)
			handler.GetCategory(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestCategoryHandler_DeleteCategory_InUse(t *testing.T) {
	handler, svc := newCategoryHandler()
	svc.On("DeleteCategory", mock.Anything, uint(2)).Return(errors.New(errors.KindCategoryInUse, "category has modules"))

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/admin/categories/2", nil)
	testutil.SetURLParam(c, "id", "2")
	handler.DeleteCategory(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCategoryHandler_AddColumn(t *testing.T) {
	handler, svc := newCategoryHandler()
	req := catalogdto.AddColumnRequest{Name: "department_id", Type: "foreign-key", ForeignTable: "departments", ForeignColumn: "id"}
	svc.On("AddColumnDefinition", mock.Anything, uint(4), req).
		Return(&catalogdto.ColumnResponse{ID: 11, CategoryID: 4, Name: "department_id", Type: "foreign-key"}, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/categories/4/columns", req)
	testutil.SetURLParam(c, "id", "4")
	handler.AddColumn(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestCategoryHandler_AddColumn_RejectsUnknownType(t *testing.T) {
	handler, svc := newCategoryHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/categories/4/columns", map[string]string{"name": "x", "type": "blob"})
	testutil.SetURLParam(c, "id", "4")
	handler.AddColumn(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "AddColumnDefinition", mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryHandler_RemoveColumn(t *testing.T) {
	handler, svc := newCategoryHandler()
	svc.On("RemoveColumnDefinition", mock.Anything, uint(4), uint(11)).Return(nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/admin/categories/4/columns/11", nil)
	testutil.SetURLParam(c, "id", "4")
	testutil.SetURLParam(c, "columnId", "11")
	handler.RemoveColumn(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCategoryHandler_ImportCatalog(t *testing.T) {
	handler, svc := newCategoryHandler()
	body := "categories:\n  - name: People\n    code: people\n    modules:\n      - name: Team\n        code: team\n"
	svc.On("ImportCatalog", mock.Anything, mock.MatchedBy(func(doc *catalogdto.CatalogDocument) bool {
		return len(doc.Categories) == 1 && doc.Categories[0].Code == "people" && len(doc.Categories[0].Modules) == 1
	})).Return(&catalogdto.ImportReport{CategoriesCreated: 1, ModulesCreated: 1}, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/catalog/import", body)
	handler.ImportCatalog(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var report catalogdto.ImportReport
	require.NoError(t, json.Unmarshal(resp.Data, &report))
	assert.Equal(t, 1, report.ModulesCreated)
	svc.AssertExpectations(t)
}

func TestCategoryHandler_ImportCatalog_InvalidDocument(t *testing.T) {
	handler, svc := newCategoryHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/catalog/import", "categories:\n  - colour: red\n")
	handler.ImportCatalog(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ImportCatalog", mock.Anything, mock.Anything)
}
