package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtlab/racketfit/internal/importer"
	"github.com/courtlab/racketfit/internal/services"
)

// ImportHandler handles HTML spec-sheet imports into the catalog
type ImportHandler struct {
	catalogService services.CatalogService
	parser         *importer.Parser
	transformer    *importer.Transformer
}

// NewImportHandler creates a new import handler with service injection
func NewImportHandler(catalogService services.CatalogService) *ImportHandler {
	return &ImportHandler{
		catalogService: catalogService,
		parser:         importer.NewParser(),
		transformer:    importer.NewTransformer(),
	}
}

// ImportSpecSheet parses an uploaded HTML spec sheet and inserts the
// extracted rackets. The whole batch is rejected when any row is invalid.
func (h *ImportHandler) ImportSpecSheet(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "HTML file upload required (field 'file')"})
		return
	}
	defer file.Close()

	rows, err := h.parser.Parse(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse spec sheet: " + err.Error()})
		return
	}

	rackets, err := h.transformer.Transform(rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to convert spec sheet: " + err.Error()})
		return
	}

	count, err := h.catalogService.ImportRackets(rackets)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to import rackets: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Spec sheet imported successfully",
		"imported":  count,
		"timestamp": time.Now(),
	})
}
