package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"rentalquote/services"
)

// HandleItemImport receives an xlsx master sheet upload and imports it
// into the catalog. Optional form fields: header_rows (1|2|3, default 3)
// and strategy ("append" or "merge_by_code", default merge).
// Route: POST /items/import
func HandleItemImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, _, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		opts := services.DefaultImportOptions()
		if v := e.Request.FormValue("header_rows"); v != "" {
			rows, err := strconv.Atoi(v)
			if err != nil || rows < 1 || rows > 3 {
				return ErrorToast(e, http.StatusBadRequest, "header_rows must be 1, 2 or 3")
			}
			opts.HeaderRows = rows
		}
		switch e.Request.FormValue("strategy") {
		case "":
			// keep default
		case string(services.ImportAppend):
			opts.Strategy = services.ImportAppend
		case string(services.ImportMergeByCode):
			opts.Strategy = services.ImportMergeByCode
		default:
			return ErrorToast(e, http.StatusBadRequest, "Unknown import strategy")
		}

		result, err := services.ImportCatalog(app, file, opts)
		if err != nil {
			log.Printf("item_import: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Import failed; no items were changed")
		}

		SetToast(e, "success", fmt.Sprintf("%d개 품목을 가져왔습니다", result.Total()))
		return e.JSON(http.StatusOK, result)
	}
}
