package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/autoflex/autoflex-erp/internal/testutil"
	"github.com/gin-gonic/gin"
)

func replaceBOM(t *testing.T, router *gin.Engine, productID string, items []map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.DoRequest(router, http.MethodPut, "/api/v1/products/"+productID+"/materials", items)
}

func TestBOMReplaceAndList(t *testing.T) {
	router := setupAPITest(t)

	productID := createProduct(t, router, "P100", "Steel Table", "350.00")
	sheetID := createRawMaterial(t, router, "RM010", "Steel Sheet", "200.000")
	boltID := createRawMaterial(t, router, "RM020", "Bolt", "500.000")

	w := replaceBOM(t, router, productID, []map[string]interface{}{
		{"raw_material_id": sheetID, "required_quantity": "2.000"},
		{"raw_material_id": boltID, "required_quantity": "8.000"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("replace bom: status %d, body %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(router, http.MethodGet, "/api/v1/products/"+productID+"/materials", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list bom: status %d", w.Code)
	}
	lines := testutil.ParseResponse(w)["data"].([]interface{})
	if len(lines) != 2 {
		t.Fatalf("bom line count = %d, want 2", len(lines))
	}

	// A second PUT replaces the whole definition, it does not append.
	w = replaceBOM(t, router, productID, []map[string]interface{}{
		{"raw_material_id": sheetID, "required_quantity": "3.000"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("second replace: status %d, body %s", w.Code, w.Body.String())
	}
	lines = testutil.ParseResponse(w)["data"].([]interface{})
	if len(lines) != 1 {
		t.Errorf("bom line count after replace = %d, want 1", len(lines))
	}
}

func TestBOMReplaceUnknownProduct(t *testing.T) {
	router := setupAPITest(t)

	materialID := createRawMaterial(t, router, "RM010", "Steel Sheet", "200.000")

	w := replaceBOM(t, router, "no-such-product", []map[string]interface{}{
		{"raw_material_id": materialID, "required_quantity": "2.000"},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown product: status %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestBOMReplaceUnknownMaterial(t *testing.T) {
	router := setupAPITest(t)

	productID := createProduct(t, router, "P100", "Steel Table", "350.00")

	w := replaceBOM(t, router, productID, []map[string]interface{}{
		{"raw_material_id": "no-such-material", "required_quantity": "2.000"},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown material: status %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestBOMReplaceRejectsDuplicateMaterial(t *testing.T) {
	router := setupAPITest(t)

	productID := createProduct(t, router, "P100", "Steel Table", "350.00")
	materialID := createRawMaterial(t, router, "RM010", "Steel Sheet", "200.000")

	w := replaceBOM(t, router, productID, []map[string]interface{}{
		{"raw_material_id": materialID, "required_quantity": "2.000"},
		{"raw_material_id": materialID, "required_quantity": "4.000"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate material: status %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestBOMReplaceRejectsNonPositiveQuantity(t *testing.T) {
	router := setupAPITest(t)

	productID := createProduct(t, router, "P100", "Steel Table", "350.00")
	materialID := createRawMaterial(t, router, "RM010", "Steel Sheet", "200.000")

	w := replaceBOM(t, router, productID, []map[string]interface{}{
		{"raw_material_id": materialID, "required_quantity": "0.000"},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("zero quantity: status %d, want %d", w.Code, http.StatusBadRequest)
	}
}
